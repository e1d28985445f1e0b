package baccarat

import (
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
)

// Card is a standard card valued for baccarat: ace 1, two to nine their
// number, tens and faces nothing.
type Card struct {
	deck.StandardCard
}

func NewCard(rank deck.Rank, suit deck.Suit) Card {
	return Card{deck.MustStandardCard(rank, suit)}
}

func (c Card) Value(ctx *game.Context) int {
	if c.Rank() >= deck.Ten {
		return 0
	}
	return c.Rank().Pips()
}

type Factory struct{}

func (Factory) CreateCards() []game.Card {
	cards := make([]game.Card, 0, 52)
	for _, c := range deck.StandardSet() {
		cards = append(cards, Card{c})
	}
	return cards
}

func (Factory) ParseCard(code string) (game.Card, error) {
	c, err := deck.ParseStandardCode(code)
	if err != nil {
		return nil, errors.Wrap(game.ErrUnknownCard, err.Error())
	}
	return Card{c}, nil
}
