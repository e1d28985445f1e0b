package blackjack

import (
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
)

// Card is a standard card valued for blackjack: aces 11, faces 10, the rest
// their number. Soft aces are demoted by the evaluator, not the card.
type Card struct {
	deck.StandardCard
}

func NewCard(rank deck.Rank, suit deck.Suit) Card {
	return Card{deck.MustStandardCard(rank, suit)}
}

func (c Card) Value(ctx *game.Context) int {
	switch {
	case c.Rank() == deck.Ace:
		return 11
	case c.Rank().IsFace():
		return 10
	default:
		return c.Rank().Pips()
	}
}

// Factory produces the 52-card blackjack set and decodes snapshot codes.
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
		return nil, err
	}
	return Card{c}, nil
}
