package poker

import (
	"github.com/minaorangina/cardtable/game"
)

// Rules for a hand of Texas hold'em with no betting. Players check or fold
// until the river, then the best live hand takes the pot.
type Rules struct {
	game.BaseRules
	evaluator Evaluator
}

func NewRules(board *Board) Rules {
	return Rules{
		BaseRules: game.BaseRules{Min: 2, Max: 10, HandSize: holeCards},
		evaluator: NewEvaluator(board),
	}
}

// Live returns the players who have not folded, in seating order.
func Live(ctx *game.Context) []*game.Player {
	live := []*game.Player{}
	for _, p := range ctx.Players() {
		if p.State() != game.Folded {
			live = append(live, p)
		}
	}
	return live
}

func (r Rules) IsValidMove(p *game.Player, c game.Card, ctx *game.Context) bool {
	return false
}

func (r Rules) IsValidPlay(p *game.Player, cards []game.Card, ctx *game.Context) bool {
	return false
}

// IsGameOver is true at showdown, or as soon as one player is left in.
func (r Rules) IsGameOver(ctx *game.Context) bool {
	switch {
	case ctx.PlayerCount() == 0, ctx.Phase() >= game.Scoring:
		return true
	case ctx.Phase() == game.Playing:
		return len(Live(ctx)) <= 1
	}
	return false
}

// CalculateScore is the hand's evaluator score, or zero once folded.
func (r Rules) CalculateScore(p *game.Player, ctx *game.Context) int {
	if p.State() == game.Folded {
		return 0
	}
	return game.EvaluateFor(r.evaluator, p, game.House(), ctx).Value
}

// DetermineWinners returns the last player standing, or every live player
// sharing the best complete hand. It is empty while the hand is undecided.
func (r Rules) DetermineWinners(ctx *game.Context) []*game.Player {
	live := Live(ctx)
	if len(live) == 1 {
		return live
	}
	if r.evaluator.board.Len() < boardCards {
		return []*game.Player{}
	}
	return game.HighestScorers(live, func(p *game.Player) int { return r.CalculateScore(p, ctx) })
}
