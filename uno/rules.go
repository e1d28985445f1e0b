package uno

import (
	"github.com/minaorangina/cardtable/game"
)

const (
	minSeats        = 2
	maxSeats        = 10
	defaultHandSize = 7
)

// Options are the Uno table settings.
type Options struct {
	HandSize int `mapstructure:"hand_size" yaml:"hand_size"`
}

func (Options) Variant() game.Variant { return game.Uno }

// Rules match each play against the active colour and the top discard.
type Rules struct {
	game.BaseRules
	color *Color
}

// NewRules seats between minPlayers and maxPlayers, kept within 2 to 10.
func NewRules(minPlayers, maxPlayers, handSize int) Rules {
	if minPlayers < minSeats {
		minPlayers = minSeats
	}
	if maxPlayers > maxSeats || maxPlayers < minPlayers {
		maxPlayers = maxSeats
	}
	if handSize <= 0 {
		handSize = defaultHandSize
	}
	active := Wild
	return Rules{
		BaseRules: game.BaseRules{Min: minPlayers, Max: maxPlayers, HandSize: handSize},
		color:     &active,
	}
}

// ActiveColor is the colour the next card must match. Wild means any colour.
func (r Rules) ActiveColor() Color {
	return *r.color
}

func (r Rules) setColor(c Color) {
	*r.color = c
}

// IsValidMove allows wilds at any time; any other card must match the active
// colour, the top card's number, or the top card's action.
func (r Rules) IsValidMove(p *game.Player, c game.Card, ctx *game.Context) bool {
	card, ok := c.(Card)
	if !ok {
		return false
	}
	top, ok := ctx.TopDiscard().(Card)
	if !ok {
		return true
	}

	switch {
	case card.IsWild(), r.ActiveColor() == Wild:
		return true
	case card.Color() == r.ActiveColor():
		return true
	case card.Number() >= 0 && card.Number() == top.Number():
		return true
	}
	return card.Action() != NoAction && card.Action() == top.Action()
}

// IsValidPlay accepts exactly one legal card.
func (r Rules) IsValidPlay(p *game.Player, cards []game.Card, ctx *game.Context) bool {
	return len(cards) == 1 && r.IsValidMove(p, cards[0], ctx)
}

// IsGameOver is true once somebody has emptied their hand after the deal.
func (r Rules) IsGameOver(ctx *game.Context) bool {
	if ctx.Phase() < game.Playing {
		return false
	}
	return len(r.DetermineWinners(ctx)) > 0
}

// CalculateScore is the value of the cards still held.
func (r Rules) CalculateScore(p *game.Player, ctx *game.Context) int {
	return game.SumValues(p.Hand(), ctx)
}

// DetermineWinners returns the players holding no cards.
func (r Rules) DetermineWinners(ctx *game.Context) []*game.Player {
	winners := []*game.Player{}
	for _, p := range ctx.Players() {
		if p.HandSize() == 0 {
			winners = append(winners, p)
		}
	}
	return winners
}
