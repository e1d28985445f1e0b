package blackjack

import (
	"github.com/minaorangina/cardtable/game"
)

// DealerStandValue is the total at which the dealer stops drawing.
const DealerStandValue = 17

// charlieStanding lifts a five-card charlie above every ordinary total when
// hands are compared.
const charlieStanding = 100

// Outcome is how one player's hand settled against the dealer.
type Outcome int

const (
	Pending Outcome = iota
	Win
	Push
	Loss
	Bust
)

var outcomeNames = []string{"Pending", "Win", "Push", "Loss", "Bust"}

func (o Outcome) String() string {
	if o < Pending || o > Bust {
		return "Unknown"
	}
	return outcomeNames[o]
}

// Rules are the house-dealer rules. The dealer is always the last seat.
type Rules struct {
	game.BaseRules
	evaluator Evaluator
}

func NewRules() Rules {
	return Rules{BaseRules: game.BaseRules{Min: 1, Max: 7, HandSize: 2}}
}

// Dealer returns the last seat.
func Dealer(ctx *game.Context) *game.Player {
	return ctx.Player(ctx.PlayerCount() - 1)
}

// Punters returns every seat except the dealer.
func Punters(ctx *game.Context) []*game.Player {
	players := ctx.Players()
	if len(players) == 0 {
		return players
	}
	return players[:len(players)-1]
}

func isDealer(p *game.Player, ctx *game.Context) bool {
	dealer := Dealer(ctx)
	return dealer != nil && p != nil && dealer.ID() == p.ID()
}

func (r Rules) evaluate(p *game.Player, ctx *game.Context) game.HandRank {
	return game.EvaluateFor(r.evaluator, p, game.House(), ctx)
}

// CanPlayerAct is true for the current player, unless they are the dealer or
// have busted.
func (r Rules) CanPlayerAct(p *game.Player, ctx *game.Context) bool {
	if !r.IsValidTurn(p, ctx) || isDealer(p, ctx) {
		return false
	}
	return r.evaluate(p, ctx).Value <= Ceiling
}

// IsValidTurn is true for the current player once they hold cards.
func (r Rules) IsValidTurn(p *game.Player, ctx *game.Context) bool {
	return r.BaseRules.IsValidTurn(p, ctx) && p.HandSize() > 0
}

// IsValidMove is always false: cards are only received, never played.
func (r Rules) IsValidMove(p *game.Player, c game.Card, ctx *game.Context) bool {
	return false
}

func (r Rules) IsValidPlay(p *game.Player, cards []game.Card, ctx *game.Context) bool {
	return false
}

// CanTransitionState allows any move forward through the phases.
func (r Rules) CanTransitionState(from, to game.Phase, ctx *game.Context) bool {
	return to > from
}

func (r Rules) allPuntersBust(ctx *game.Context) bool {
	for _, p := range Punters(ctx) {
		if r.evaluate(p, ctx).Value <= Ceiling {
			return false
		}
	}
	return true
}

// IsGameOver is true once every punter has bust, or the dealer has reached
// the stand value or bust.
func (r Rules) IsGameOver(ctx *game.Context) bool {
	if ctx.PlayerCount() == 0 {
		return true
	}
	if r.allPuntersBust(ctx) {
		return true
	}
	dealer := r.evaluate(Dealer(ctx), ctx).Value
	return dealer >= DealerStandValue || dealer > Ceiling
}

// CalculateScore is the player's hand total.
func (r Rules) CalculateScore(p *game.Player, ctx *game.Context) int {
	return r.evaluate(p, ctx).Value
}

func standing(d HandDetail) int {
	if d.FiveCardCharlie {
		return charlieStanding + d.Total
	}
	return d.Total
}

// Settle decides one punter's hand against the dealer's. Checks run in order:
// a bust loses, a charlie beats any dealer hand that is not also a charlie,
// a dealer bust loses to the punter, naturals beat everything but another
// natural, and otherwise the higher standing wins. Two charlies compare on
// their totals.
func (r Rules) Settle(p *game.Player, ctx *game.Context) Outcome {
	dealer := Dealer(ctx)
	if dealer == nil || isDealer(p, ctx) {
		return Pending
	}

	pd := DetailOf(r.evaluate(p, ctx))
	dd := DetailOf(r.evaluate(dealer, ctx))

	switch {
	case pd.Bust:
		return Bust
	case pd.FiveCardCharlie && !dd.FiveCardCharlie:
		return Win
	case dd.Bust:
		return Win
	case pd.Natural && dd.Natural:
		return Push
	case pd.Natural:
		return Win
	case dd.Natural:
		return Loss
	}

	ps, ds := standing(pd), standing(dd)
	switch {
	case ps > ds:
		return Win
	case ps == ds:
		return Push
	default:
		return Loss
	}
}

// DetermineWinners lists the punters who beat the dealer, in seating order.
// The dealer is never listed; no winners with a standing dealer is a house win.
func (r Rules) DetermineWinners(ctx *game.Context) []*game.Player {
	winners := []*game.Player{}
	for _, p := range Punters(ctx) {
		if r.Settle(p, ctx) == Win {
			winners = append(winners, p)
		}
	}
	return winners
}
