package game

import (
	"github.com/pkg/errors"
)

// Points is a non-negative point total.
type Points struct {
	value int
}

// NewPoints constructs Points, rejecting negative values.
func NewPoints(value int) (Points, error) {
	if value < 0 {
		return Points{}, errors.Wrapf(ErrInvalidPoints, "got %d", value)
	}
	return Points{value: value}, nil
}

// Value returns the integer total
func (p Points) Value() int {
	return p.value
}

// Add returns p + other.
func (p Points) Add(other Points) Points {
	return Points{value: p.value + other.value}
}

// Sub returns p - other, floored at zero.
func (p Points) Sub(other Points) Points {
	if other.value >= p.value {
		return Points{}
	}
	return Points{value: p.value - other.value}
}

// BetAmount is a strictly positive wager.
type BetAmount struct {
	value int
}

// NewBetAmount constructs a BetAmount, rejecting zero and negative values.
func NewBetAmount(value int) (BetAmount, error) {
	if value <= 0 {
		return BetAmount{}, errors.Wrapf(ErrInvalidBet, "got %d", value)
	}
	return BetAmount{value: value}, nil
}

func (b BetAmount) Value() int {
	return b.value
}

// VariantOptions carries options that only one variant understands.
type VariantOptions interface {
	Variant() Variant
}

// Options is the immutable table configuration shared by every variant.
type Options struct {
	minPlayers    int
	maxPlayers    int
	initialPoints Points
	minBet        BetAmount
	maxBet        BetAmount
	extra         VariantOptions
}

// NewOptions validates and constructs Options.
func NewOptions(minPlayers, maxPlayers int, initialPoints Points, minBet, maxBet BetAmount, extra VariantOptions) (Options, error) {
	if minPlayers <= 0 {
		return Options{}, errors.Wrapf(ErrInvalidOptions, "minimum players must be positive, got %d", minPlayers)
	}
	if maxPlayers < minPlayers {
		return Options{}, errors.Wrapf(ErrInvalidOptions, "maximum players %d is below minimum %d", maxPlayers, minPlayers)
	}
	if maxBet.Value() < minBet.Value() {
		return Options{}, errors.Wrapf(ErrInvalidOptions, "maximum bet %d is below minimum %d", maxBet.Value(), minBet.Value())
	}

	return Options{
		minPlayers:    minPlayers,
		maxPlayers:    maxPlayers,
		initialPoints: initialPoints,
		minBet:        minBet,
		maxBet:        maxBet,
		extra:         extra,
	}, nil
}

func (o Options) MinPlayers() int       { return o.minPlayers }
func (o Options) MaxPlayers() int       { return o.maxPlayers }
func (o Options) InitialPoints() Points { return o.initialPoints }
func (o Options) MinBet() BetAmount     { return o.minBet }
func (o Options) MaxBet() BetAmount     { return o.maxBet }
func (o Options) Extra() VariantOptions { return o.extra }

// AllowsBet reports whether amount lies within the table limits.
func (o Options) AllowsBet(amount BetAmount) bool {
	return amount.Value() >= o.minBet.Value() && amount.Value() <= o.maxBet.Value()
}
