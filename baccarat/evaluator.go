package baccarat

import (
	"fmt"

	"github.com/minaorangina/cardtable/game"
)

// HandDetail is the baccarat reading of a hand.
type HandDetail struct {
	Total   int
	Natural bool
}

func (HandDetail) Variant() game.Variant { return game.Baccarat }

func DetailOf(r game.HandRank) HandDetail {
	d, _ := r.Detail.(HandDetail)
	return d
}

// Evaluator scores a hand as the last digit of its card total.
type Evaluator struct{}

func (Evaluator) EvaluateHand(cards []game.Card, ctx *game.Context) game.HandRank {
	total := game.SumValues(cards, ctx) % 10
	natural := len(cards) == 2 && total >= 8

	description := fmt.Sprintf("Total: %d", total)
	if natural {
		description = fmt.Sprintf("Natural %d", total)
	}
	return game.HandRank{
		Value:       total,
		Description: description,
		Detail:      HandDetail{Total: total, Natural: natural},
	}
}

// IsValidHand is true for a dealt hand of two or three cards.
func (Evaluator) IsValidHand(cards []game.Card, ctx *game.Context) bool {
	return game.HasCards(cards) && len(cards) >= 2 && len(cards) <= 3
}

func (Evaluator) GetPlayableCards(hand []game.Card, ctx *game.Context) []game.Card {
	return []game.Card{}
}
