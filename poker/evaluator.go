package poker

import (
	"fmt"

	"github.com/minaorangina/cardtable/game"
	"github.com/paulhankin/poker"
)

const (
	holeCards  = 2
	boardCards = 5
	fullHand   = holeCards + boardCards
)

// Board holds the community cards every hand shares.
type Board struct {
	cards []game.Card
}

func (b *Board) Cards() []game.Card {
	cards := make([]game.Card, len(b.cards))
	copy(cards, b.cards)
	return cards
}

func (b *Board) Len() int {
	return len(b.cards)
}

func (b *Board) add(cards ...game.Card) {
	b.cards = append(b.cards, cards...)
}

func (b *Board) clear() []game.Card {
	cards := b.cards
	b.cards = nil
	return cards
}

// HandDetail is the evaluator's view of a seven-card hand.
type HandDetail struct {
	Score    int16
	Complete bool
}

func (HandDetail) Variant() game.Variant { return game.Poker }

// DetailOf returns the poker detail of r, or the zero detail.
func DetailOf(r game.HandRank) HandDetail {
	d, _ := r.Detail.(HandDetail)
	return d
}

// Evaluator ranks hole cards together with the board. Until all seven cards
// are out a hand is ranked by its highest card only.
type Evaluator struct {
	board *Board
}

func NewEvaluator(board *Board) Evaluator {
	return Evaluator{board: board}
}

func (e Evaluator) EvaluateHand(cards []game.Card, ctx *game.Context) game.HandRank {
	all := append(append([]game.Card{}, cards...), e.board.Cards()...)
	if len(all) != fullHand {
		return highCard(all, ctx)
	}

	var hand [fullHand]poker.Card
	for i, c := range all {
		pc, ok := c.(Card)
		if !ok {
			return game.HandRank{Value: -1, Description: fmt.Sprintf("%v is not a poker card", c)}
		}
		ranked, err := pc.ranked()
		if err != nil {
			return game.HandRank{Value: -1, Description: err.Error()}
		}
		hand[i] = ranked
	}

	score := poker.Eval7(&hand)
	description, err := poker.Describe(hand[:])
	if err != nil {
		description = fmt.Sprintf("score %d", score)
	}
	return game.HandRank{
		Value:       int(score),
		Description: description,
		Detail:      HandDetail{Score: score, Complete: true},
	}
}

func highCard(cards []game.Card, ctx *game.Context) game.HandRank {
	best := 0
	for _, c := range cards {
		if v := c.Value(ctx); v > best {
			best = v
		}
	}
	return game.HandRank{
		Value:       best,
		Description: fmt.Sprintf("%d of %d cards", len(cards), fullHand),
		Detail:      HandDetail{},
	}
}

// IsValidHand is true for exactly two hole cards.
func (e Evaluator) IsValidHand(cards []game.Card, ctx *game.Context) bool {
	return game.HasCards(cards) && len(cards) == holeCards
}

// GetPlayableCards is always empty: hole cards are never played.
func (e Evaluator) GetPlayableCards(hand []game.Card, ctx *game.Context) []game.Card {
	return []game.Card{}
}
