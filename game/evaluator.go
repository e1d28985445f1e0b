package game

// RankDetail annotates a HandRank with facts only one variant understands.
// The generic engine never reads it.
type RankDetail interface {
	Variant() Variant
}

// HandRank is the evaluated strength of a hand. Ranks compare by Value only.
type HandRank struct {
	Value       int
	Description string
	Detail      RankDetail
}

func (r HandRank) Beats(other HandRank) bool   { return r.Value > other.Value }
func (r HandRank) LosesTo(other HandRank) bool { return r.Value < other.Value }
func (r HandRank) AtLeast(other HandRank) bool { return r.Value >= other.Value }
func (r HandRank) AtMost(other HandRank) bool  { return r.Value <= other.Value }

// HandEvaluator scores hands for one variant.
type HandEvaluator interface {
	EvaluateHand(cards []Card, ctx *Context) HandRank
	IsValidHand(cards []Card, ctx *Context) bool
	GetPlayableCards(hand []Card, ctx *Context) []Card
}

// EvaluateFor evaluates the part of p's hand that viewer is allowed to see.
func EvaluateFor(ev HandEvaluator, p *Player, viewer Viewer, ctx *Context) HandRank {
	return ev.EvaluateHand(p.VisibleTo(viewer), ctx)
}

// HasCards is the baseline hand validity check: at least one card and no nil cards.
func HasCards(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if c == nil {
			return false
		}
	}
	return true
}

// SumValues adds up the contextual value of every card.
func SumValues(cards []Card, ctx *Context) int {
	total := 0
	for _, c := range cards {
		total += c.Value(ctx)
	}
	return total
}
