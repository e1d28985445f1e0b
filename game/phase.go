package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Phase is a stage in the lifecycle of a game
type Phase int

const (
	Setup Phase = iota
	Dealing
	Betting
	Playing
	Scoring
	GameOver
)

var phaseNames = []string{"Setup", "Dealing", "Betting", "Playing", "Scoring", "GameOver"}

func (p Phase) String() string {
	if p < Setup || p > GameOver {
		return "Unknown"
	}
	return phaseNames[p]
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if strings.EqualFold(name, s) {
			return Phase(i), nil
		}
	}
	return Setup, errors.Errorf("unknown phase %q", s)
}

// Variant identifies a concrete game. The set is closed.
type Variant int

const (
	Blackjack Variant = iota
	Uno
	Poker
	Baccarat
)

var variantNames = []string{"blackjack", "uno", "poker", "baccarat"}

func (v Variant) String() string {
	if v < Blackjack || v > Baccarat {
		return "unknown"
	}
	return variantNames[v]
}

// Variants lists every supported variant.
func Variants() []Variant {
	return []Variant{Blackjack, Uno, Poker, Baccarat}
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(name, s) {
			return Variant(i), nil
		}
	}
	return Blackjack, errors.Errorf("unknown variant %q", s)
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
