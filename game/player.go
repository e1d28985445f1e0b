package game

import (
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// PlayerState is the coarse lifecycle state of a seat
type PlayerState int

const (
	Waiting PlayerState = iota
	Active
	Folded
	Won
	Lost
)

var playerStateNames = []string{"Waiting", "Playing", "Folded", "Won", "Lost"}

func (s PlayerState) String() string {
	if s < Waiting || s > Lost {
		return "Unknown"
	}
	return playerStateNames[s]
}

// Viewer is whoever is looking at a hand. The house sees every card; a player
// sees all of their own cards and only the face-up cards of others.
type Viewer struct {
	playerID string
	house    bool
}

// House is the all-seeing viewer used for scoring.
func House() Viewer {
	return Viewer{house: true}
}

// ViewAs returns the viewer for a seated player.
func ViewAs(playerID string) Viewer {
	return Viewer{playerID: playerID}
}

func (v Viewer) IsHouse() bool    { return v.house }
func (v Viewer) PlayerID() string { return v.playerID }

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player is a seat at the table: identity, hand, points and state.
type Player struct {
	id     string
	name   string
	hand   []Card
	faceUp []bool
	points Points
	state  PlayerState
}

// NewPlayer constructs a player with a fresh ID
func NewPlayer(name string) *Player {
	return NewPlayerWithID(NewID(), name)
}

func NewPlayerWithID(id, name string) *Player {
	return &Player{id: id, name: name, state: Waiting}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

// Hand returns a copy of every held card, face-down ones included.
func (p *Player) Hand() []Card {
	hand := make([]Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

func (p *Player) HandSize() int {
	return len(p.hand)
}

// IsFaceUp reports the visibility of the card at position i.
func (p *Player) IsFaceUp(i int) bool {
	if i < 0 || i >= len(p.faceUp) {
		return false
	}
	return p.faceUp[i]
}

func (p *Player) Points() Points {
	return p.points
}

func (p *Player) SetPoints(points Points) {
	p.points = points
}

// UpdatePoints adds delta to the total; a negative delta never takes it below zero.
func (p *Player) UpdatePoints(delta int) {
	if delta >= 0 {
		p.points = p.points.Add(Points{value: delta})
		return
	}
	p.points = p.points.Sub(Points{value: -delta})
}

func (p *Player) State() PlayerState {
	return p.state
}

func (p *Player) SetState(s PlayerState) {
	p.state = s
}

// AddCard takes ownership of c.
func (p *Player) AddCard(c Card, faceUp bool) {
	p.hand = append(p.hand, c)
	p.faceUp = append(p.faceUp, faceUp)
}

// RemoveCard gives up the first held card with the same code as c.
func (p *Player) RemoveCard(c Card) error {
	if c == nil {
		return errors.Wrap(ErrCardNotHeld, "nil card")
	}
	for i, held := range p.hand {
		if held.Code() == c.Code() {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			p.faceUp = append(p.faceUp[:i], p.faceUp[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrCardNotHeld, "%s does not hold %s", p.name, c)
}

// ClearHand empties the hand and returns the cards that were held.
func (p *Player) ClearHand() []Card {
	cards := p.hand
	p.hand = nil
	p.faceUp = nil
	return cards
}

// Reveal turns every held card face up.
func (p *Player) Reveal() {
	for i := range p.faceUp {
		p.faceUp[i] = true
	}
}

// VisibleTo returns the cards v is allowed to see, in hand order.
func (p *Player) VisibleTo(v Viewer) []Card {
	if v.IsHouse() || v.PlayerID() == p.id {
		return p.Hand()
	}

	visible := []Card{}
	for i, c := range p.hand {
		if p.faceUp[i] {
			visible = append(visible, c)
		}
	}
	return visible
}

func (p *Player) restoreHand(cards []Card, faceUp []bool) {
	p.hand = cards
	p.faceUp = faceUp
}

func (s PlayerState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PlayerState) UnmarshalText(text []byte) error {
	for i, name := range playerStateNames {
		if name == string(text) {
			*s = PlayerState(i)
			return nil
		}
	}
	return errors.Errorf("unknown player state %q", text)
}
