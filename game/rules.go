package game

// Rules decides legality, game over and winners for one variant.
type Rules interface {
	MinPlayers() int
	MaxPlayers() int
	InitialHandSize() int

	CanPlayerAct(p *Player, ctx *Context) bool
	IsValidTurn(p *Player, ctx *Context) bool
	IsValidMove(p *Player, c Card, ctx *Context) bool
	IsValidPlay(p *Player, cards []Card, ctx *Context) bool

	CanTransitionState(from, to Phase, ctx *Context) bool
	IsGameOver(ctx *Context) bool

	CalculateScore(p *Player, ctx *Context) int
	DetermineWinners(ctx *Context) []*Player
}

// BaseRules holds the player bounds and the behaviour most variants share.
// Variants embed it and supply the rest of Rules.
type BaseRules struct {
	Min      int
	Max      int
	HandSize int
}

func (r BaseRules) MinPlayers() int      { return r.Min }
func (r BaseRules) MaxPlayers() int      { return r.Max }
func (r BaseRules) InitialHandSize() int { return r.HandSize }

// AllowsPlayerCount reports whether n seats fit the bounds.
func (r BaseRules) AllowsPlayerCount(n int) bool {
	return n >= r.Min && n <= r.Max
}

// CanPlayerAct is true for the current player while they are still in play.
func (r BaseRules) CanPlayerAct(p *Player, ctx *Context) bool {
	current := ctx.CurrentPlayer()
	return p != nil && current != nil && current.ID() == p.ID() && p.State() == Active
}

func (r BaseRules) IsValidTurn(p *Player, ctx *Context) bool {
	current := ctx.CurrentPlayer()
	return p != nil && current != nil && current.ID() == p.ID()
}

// IsValidPlay accepts any non-empty set of cards the player could be holding.
func (r BaseRules) IsValidPlay(p *Player, cards []Card, ctx *Context) bool {
	return len(cards) > 0 && p.HandSize() >= len(cards)
}

var forwardChain = map[Phase][]Phase{
	Setup:   {Dealing},
	Dealing: {Betting, Playing},
	Betting: {Playing},
	Playing: {Scoring},
	Scoring: {GameOver},
}

// CanTransitionState allows the forward chain only. Betting may be skipped.
func (r BaseRules) CanTransitionState(from, to Phase, ctx *Context) bool {
	for _, next := range forwardChain[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DefaultWinners is the DetermineWinners most variants want: every seated
// player sharing the highest CalculateScore.
func DefaultWinners(r Rules, ctx *Context) []*Player {
	return HighestScorers(ctx.Players(), func(p *Player) int { return r.CalculateScore(p, ctx) })
}

// HighestScorers returns every candidate sharing the highest score, in the
// order given.
func HighestScorers(candidates []*Player, score func(*Player) int) []*Player {
	winners := []*Player{}
	best := 0
	for i, p := range candidates {
		s := score(p)
		switch {
		case i == 0 || s > best:
			winners = []*Player{p}
			best = s
		case s == best:
			winners = append(winners, p)
		}
	}
	return winners
}

// Losers returns the seats that are not in winners, in seating order.
func Losers(ctx *Context, winners []*Player) []*Player {
	losers := []*Player{}
	for _, p := range ctx.Players() {
		won := false
		for _, w := range winners {
			if w == p {
				won = true
				break
			}
		}
		if !won {
			losers = append(losers, p)
		}
	}
	return losers
}
