package blackjack

import (
	"fmt"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
)

const (
	Ceiling        = 21
	charlieSize    = 5
	naturalSize    = 2
	softAceSavings = 10
)

// HandDetail is what the evaluator found out about a hand.
type HandDetail struct {
	Total int
	// Soft is set while an ace is still counted as 11.
	Soft            bool
	Natural         bool
	FiveCardCharlie bool
	Bust            bool
}

func (HandDetail) Variant() game.Variant { return game.Blackjack }

// DetailOf extracts the blackjack detail from a rank produced by Evaluator.
func DetailOf(r game.HandRank) HandDetail {
	d, _ := r.Detail.(HandDetail)
	return d
}

// Evaluator scores blackjack hands.
type Evaluator struct{}

// Total sums the cards, demoting aces from 11 to 1 while the hand would bust.
func Total(cards []game.Card, ctx *game.Context) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		total += c.Value(ctx)
		if isAce(c) {
			aces++
		}
	}
	for total > Ceiling && aces > 0 {
		total -= softAceSavings
		aces--
	}
	return total, aces > 0
}

func isAce(c game.Card) bool {
	ranked, ok := c.(interface{ Rank() deck.Rank })
	return ok && ranked.Rank() == deck.Ace
}

func (Evaluator) EvaluateHand(cards []game.Card, ctx *game.Context) game.HandRank {
	total, soft := Total(cards, ctx)
	d := HandDetail{Total: total, Soft: soft}

	var desc string
	switch {
	case len(cards) == charlieSize && total <= Ceiling:
		d.FiveCardCharlie = true
		desc = "5-Card Charlie!"
	case len(cards) == naturalSize && total == Ceiling:
		d.Natural = true
		desc = "Blackjack!"
	case total > Ceiling:
		d.Bust = true
		desc = "Bust"
	default:
		desc = fmt.Sprintf("Total: %d", total)
	}

	return game.HandRank{Value: total, Description: desc, Detail: d}
}

// IsValidHand rejects empty hands, nil cards and busts. A five-card charlie
// is always valid.
func (e Evaluator) IsValidHand(cards []game.Card, ctx *game.Context) bool {
	if !game.HasCards(cards) {
		return false
	}
	total, _ := Total(cards, ctx)
	return total <= Ceiling
}

// GetPlayableCards returns the whole hand; blackjack players never choose cards.
func (Evaluator) GetPlayableCards(hand []game.Card, ctx *game.Context) []game.Card {
	return hand
}
