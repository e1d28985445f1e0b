package game

import (
	"time"

	mapset "github.com/deckarep/golang-set"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Snapshot is a point-in-time capture of a session, complete enough to resume it.
// Cards are recorded by code.
type Snapshot struct {
	SessionID     string              `json:"sessionId"`
	Variant       Variant             `json:"variant"`
	Phase         Phase               `json:"phase"`
	CurrentPlayer int                 `json:"currentPlayer"`
	Clockwise     bool                `json:"clockwise"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Players       []PlayerSnapshot    `json:"players"`
	Deck          []string            `json:"deck"`
	Discard       []string            `json:"discard"`
	VariantData   jsoniter.RawMessage `json:"variantData,omitempty"`
}

// PlayerSnapshot is one seat inside a Snapshot.
type PlayerSnapshot struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	State  PlayerState `json:"state"`
	Points int         `json:"points"`
	Hand   []string    `json:"hand"`
	FaceUp []bool      `json:"faceUp"`
}

// Snapshot captures the session together with the remaining cards in d.
func (c *Context) Snapshot(d Deck) Snapshot {
	s := Snapshot{
		SessionID:     c.id,
		Variant:       c.variant,
		Phase:         c.phase,
		CurrentPlayer: c.current,
		Clockwise:     c.clockwise,
		UpdatedAt:     c.updatedAt,
		Players:       make([]PlayerSnapshot, 0, len(c.players)),
		Deck:          Codes(d.Cards()),
		Discard:       Codes(c.discard),
	}

	for _, p := range c.players {
		faceUp := make([]bool, len(p.faceUp))
		copy(faceUp, p.faceUp)
		s.Players = append(s.Players, PlayerSnapshot{
			ID:     p.id,
			Name:   p.name,
			State:  p.state,
			Points: p.points.Value(),
			Hand:   Codes(p.hand),
			FaceUp: faceUp,
		})
	}

	return s
}

// Restore replaces the session state and the contents of d with s. Nothing is
// changed unless the whole snapshot is valid: the variant must match, the turn
// pointer must name a seat, and every card must come from factory's card set
// without appearing more often than the set contains it. held lists cards kept
// outside the Context, such as a community board; they count towards the same
// limits.
func (c *Context) Restore(s Snapshot, d Deck, codec CardCodec, factory CardFactory, held ...string) error {
	if s.Variant != c.variant {
		return errors.Wrapf(ErrInvalidSnapshot, "snapshot is for %s, session is %s", s.Variant, c.variant)
	}
	if s.Phase < Setup || s.Phase > GameOver {
		return errors.Wrapf(ErrInvalidSnapshot, "unknown phase %d", s.Phase)
	}
	if len(s.Players) > 0 && (s.CurrentPlayer < 0 || s.CurrentPlayer >= len(s.Players)) {
		return errors.Wrapf(ErrInvalidSnapshot, "current player %d out of range", s.CurrentPlayer)
	}

	if err := checkCardOwnership(s, factory, held); err != nil {
		return err
	}

	deckCards, err := ParseCards(codec, s.Deck)
	if err != nil {
		return errors.Wrap(err, "restoring deck")
	}
	discard, err := ParseCards(codec, s.Discard)
	if err != nil {
		return errors.Wrap(err, "restoring discard pile")
	}

	players := make([]*Player, 0, len(s.Players))
	for _, ps := range s.Players {
		if len(ps.FaceUp) != len(ps.Hand) {
			return errors.Wrapf(ErrInvalidSnapshot, "player %s has %d cards but %d visibility flags", ps.ID, len(ps.Hand), len(ps.FaceUp))
		}
		points, err := NewPoints(ps.Points)
		if err != nil {
			return errors.Wrapf(ErrInvalidSnapshot, "player %s: %s", ps.ID, err)
		}
		hand, err := ParseCards(codec, ps.Hand)
		if err != nil {
			return errors.Wrapf(err, "restoring hand of %s", ps.ID)
		}
		faceUp := make([]bool, len(ps.FaceUp))
		copy(faceUp, ps.FaceUp)

		p := NewPlayerWithID(ps.ID, ps.Name)
		p.points = points
		p.state = ps.State
		p.restoreHand(hand, faceUp)
		players = append(players, p)
	}

	c.players = players
	c.current = s.CurrentPlayer
	c.clockwise = s.Clockwise
	c.phase = s.Phase
	c.discard = discard
	c.updatedAt = s.UpdatedAt
	d.Replace(deckCards)

	return nil
}

func checkCardOwnership(s Snapshot, factory CardFactory, held []string) error {
	known := mapset.NewSet()
	limit := map[string]int{}
	for _, card := range factory.CreateCards() {
		known.Add(card.Code())
		limit[card.Code()]++
	}

	seen := map[string]int{}
	count := func(codes []string) error {
		for _, code := range codes {
			if !known.Contains(code) {
				return errors.Wrapf(ErrUnknownCard, "%q", code)
			}
			seen[code]++
			if seen[code] > limit[code] {
				return errors.Wrapf(ErrInvalidSnapshot, "card %s is held in more than one place", code)
			}
		}
		return nil
	}

	if err := count(s.Deck); err != nil {
		return err
	}
	if err := count(s.Discard); err != nil {
		return err
	}
	for _, p := range s.Players {
		if err := count(p.Hand); err != nil {
			return err
		}
	}
	return count(held)
}
