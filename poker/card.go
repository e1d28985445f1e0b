package poker

import (
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/paulhankin/poker"
	"github.com/pkg/errors"
)

const aceHigh = 14

// Card is a standard card ranked ace high.
type Card struct {
	deck.StandardCard
}

func NewCard(rank deck.Rank, suit deck.Suit) Card {
	return Card{deck.MustStandardCard(rank, suit)}
}

func (c Card) Value(ctx *game.Context) int {
	if c.Rank() == deck.Ace {
		return aceHigh
	}
	return c.Rank().Pips()
}

// ranked converts c for the hand evaluator, which numbers ranks from ace 1
// and suits in the same order as the deck.
func (c Card) ranked() (poker.Card, error) {
	return poker.MakeCard(poker.Suit(c.Suit()), poker.Rank(c.Rank().Pips()))
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
