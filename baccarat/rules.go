package baccarat

import (
	"github.com/minaorangina/cardtable/game"
)

const (
	playerSeat = 0
	bankerSeat = 1
)

// Rules are punto banco: two fixed hands and no decisions. Seat 0 is the
// Player hand and seat 1 the Banker hand.
type Rules struct {
	game.BaseRules
}

func NewRules() Rules {
	return Rules{game.BaseRules{Min: 2, Max: 2, HandSize: 2}}
}

func PlayerSeat(ctx *game.Context) *game.Player { return ctx.Player(playerSeat) }
func BankerSeat(ctx *game.Context) *game.Player { return ctx.Player(bankerSeat) }

// PlayerDraws is true when the Player hand takes a third card.
func PlayerDraws(total int) bool {
	return total <= 5
}

// BankerDraws applies the tableau. playerThird is the value of the Player's
// third card, or nil when the Player stood.
func BankerDraws(total int, playerThird *int) bool {
	if playerThird == nil {
		return total <= 5
	}
	t := *playerThird
	switch total {
	case 0, 1, 2:
		return true
	case 3:
		return t != 8
	case 4:
		return t >= 2 && t <= 7
	case 5:
		return t >= 4 && t <= 7
	case 6:
		return t == 6 || t == 7
	}
	return false
}

func (r Rules) evaluate(p *game.Player, ctx *game.Context) game.HandRank {
	return game.EvaluateFor(Evaluator{}, p, game.House(), ctx)
}

// CanPlayerAct is always false: the tableau makes every decision.
func (r Rules) CanPlayerAct(p *game.Player, ctx *game.Context) bool {
	return false
}

func (r Rules) IsValidMove(p *game.Player, c game.Card, ctx *game.Context) bool {
	return false
}

func (r Rules) IsValidPlay(p *game.Player, cards []game.Card, ctx *game.Context) bool {
	return false
}

// IsGameOver is true once the coup has been played out.
func (r Rules) IsGameOver(ctx *game.Context) bool {
	return ctx.PlayerCount() == 0 || ctx.Phase() >= game.Scoring
}

func (r Rules) CalculateScore(p *game.Player, ctx *game.Context) int {
	return r.evaluate(p, ctx).Value
}

// DetermineWinners returns the higher hand. A tie, or an undealt coup, has
// no winner.
func (r Rules) DetermineWinners(ctx *game.Context) []*game.Player {
	player, banker := PlayerSeat(ctx), BankerSeat(ctx)
	if player == nil || banker == nil || player.HandSize() < 2 || banker.HandSize() < 2 {
		return []*game.Player{}
	}
	p, b := r.CalculateScore(player, ctx), r.CalculateScore(banker, ctx)
	switch {
	case p > b:
		return []*game.Player{player}
	case b > p:
		return []*game.Player{banker}
	}
	return []*game.Player{}
}
