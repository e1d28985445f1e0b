package uno

import (
	"fmt"

	"github.com/minaorangina/cardtable/game"
)

// Evaluator values a hand by the points it would concede.
type Evaluator struct {
	rules Rules
}

func NewEvaluator(rules Rules) Evaluator {
	return Evaluator{rules: rules}
}

func (e Evaluator) EvaluateHand(cards []game.Card, ctx *game.Context) game.HandRank {
	total := game.SumValues(cards, ctx)
	return game.HandRank{
		Value:       total,
		Description: fmt.Sprintf("Total Value: %d", total),
	}
}

// IsValidHand is true for a non-empty hand of Uno cards.
func (e Evaluator) IsValidHand(cards []game.Card, ctx *game.Context) bool {
	if !game.HasCards(cards) {
		return false
	}
	for _, c := range cards {
		if _, ok := c.(Card); !ok {
			return false
		}
	}
	return true
}

// GetPlayableCards filters hand down to the cards the current player could
// legally play. Before the first discard every card is playable.
func (e Evaluator) GetPlayableCards(hand []game.Card, ctx *game.Context) []game.Card {
	if ctx.TopDiscard() == nil {
		return hand
	}
	playable := []game.Card{}
	for _, c := range hand {
		if e.rules.IsValidMove(ctx.CurrentPlayer(), c, ctx) {
			playable = append(playable, c)
		}
	}
	return playable
}
