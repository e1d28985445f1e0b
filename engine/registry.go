package engine

import (
	"math/rand"

	"github.com/minaorangina/cardtable/baccarat"
	"github.com/minaorangina/cardtable/blackjack"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/poker"
	"github.com/minaorangina/cardtable/uno"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type gameSettings struct {
	id     string
	logger *zerolog.Logger
}

// GameOption tunes a game built by NewGame.
type GameOption func(*gameSettings)

// WithID fixes the session id instead of generating one.
func WithID(id string) GameOption {
	return func(s *gameSettings) { s.id = id }
}

func WithLogger(logger *zerolog.Logger) GameOption {
	return func(s *gameSettings) { s.logger = logger }
}

// NewGame constructs a game of the given variant. Variant options carried by
// options must belong to the same variant. A nil src shuffles from the clock.
func NewGame(variant game.Variant, options *game.Options, src rand.Source, opts ...GameOption) (game.Game, error) {
	if options != nil && options.Extra() != nil && options.Extra().Variant() != variant {
		return nil, errors.Wrapf(game.ErrInvalidOptions, "%s options given for a %s game",
			options.Extra().Variant(), variant)
	}

	s := gameSettings{}
	for _, opt := range opts {
		opt(&s)
	}

	switch variant {
	case game.Blackjack:
		return blackjack.New(blackjack.GameOpts{ID: s.id, Options: options, Source: src, Logger: s.logger}), nil
	case game.Uno:
		return uno.New(uno.GameOpts{ID: s.id, Options: options, Source: src, Logger: s.logger}), nil
	case game.Poker:
		return poker.New(poker.GameOpts{ID: s.id, Options: options, Source: src, Logger: s.logger}), nil
	case game.Baccarat:
		return baccarat.New(baccarat.GameOpts{ID: s.id, Options: options, Source: src, Logger: s.logger}), nil
	}
	return nil, errors.Wrapf(game.ErrInvalidConfiguration, "unknown variant %d", variant)
}
