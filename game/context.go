package game

import (
	"time"

	"github.com/pkg/errors"
)

// Context is the mutable state of one game session. It is owned by a single
// game and handed to rules, evaluators and cards by reference.
type Context struct {
	id        string
	variant   Variant
	phase     Phase
	players   []*Player
	current   int
	clockwise bool
	updatedAt time.Time
	discard   []Card
	now       func() time.Time
}

// NewContext constructs the state for a new session in the Setup phase.
func NewContext(id string, variant Variant) *Context {
	c := &Context{
		id:        id,
		variant:   variant,
		phase:     Setup,
		clockwise: true,
		now:       time.Now,
	}
	c.Touch()
	return c
}

// SetClock replaces the time source used for update timestamps.
func (c *Context) SetClock(now func() time.Time) {
	c.now = now
	c.Touch()
}

func (c *Context) ID() string           { return c.id }
func (c *Context) Variant() Variant     { return c.variant }
func (c *Context) Phase() Phase         { return c.phase }
func (c *Context) Clockwise() bool      { return c.clockwise }
func (c *Context) UpdatedAt() time.Time { return c.updatedAt }

// Touch records a state change.
func (c *Context) Touch() {
	c.updatedAt = c.now().UTC()
}

func (c *Context) setPhase(p Phase) {
	c.phase = p
	c.Touch()
}

// Players returns the seats in seating order.
func (c *Context) Players() []*Player {
	players := make([]*Player, len(c.players))
	copy(players, c.players)
	return players
}

func (c *Context) PlayerCount() int {
	return len(c.players)
}

// Player returns the seat at index i, or nil.
func (c *Context) Player(i int) *Player {
	if i < 0 || i >= len(c.players) {
		return nil
	}
	return c.players[i]
}

// FindPlayer looks a seat up by player ID.
func (c *Context) FindPlayer(id string) *Player {
	for _, p := range c.players {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// IndexOf returns the seat index of p, or -1.
func (c *Context) IndexOf(p *Player) int {
	for i, seated := range c.players {
		if seated == p {
			return i
		}
	}
	return -1
}

// SetPlayers replaces the seating list and makes the first seat current.
func (c *Context) SetPlayers(players []*Player) {
	c.players = make([]*Player, len(players))
	copy(c.players, players)
	c.current = 0
	c.clockwise = true
	c.Touch()
}

// CurrentPlayer returns the seat whose turn it is, or nil before players are set.
func (c *Context) CurrentPlayer() *Player {
	return c.Player(c.current)
}

func (c *Context) CurrentIndex() int {
	return c.current
}

// SetCurrentPlayer moves the turn to p, which must be seated.
func (c *Context) SetCurrentPlayer(p *Player) error {
	idx := c.IndexOf(p)
	if idx < 0 {
		return ErrNotInGame
	}
	c.current = idx
	c.Touch()
	return nil
}

func (c *Context) nextIndex() int {
	n := len(c.players)
	if n == 0 {
		return 0
	}
	if c.clockwise {
		return (c.current + 1) % n
	}
	return (c.current - 1 + n) % n
}

// PeekNextPlayer returns the seat that would play next, without moving the turn.
func (c *Context) PeekNextPlayer() *Player {
	return c.Player(c.nextIndex())
}

// AdvanceNextPlayer moves the turn one seat in the current direction.
func (c *Context) AdvanceNextPlayer() *Player {
	c.current = c.nextIndex()
	c.Touch()
	return c.CurrentPlayer()
}

// ReverseDirection flips the play direction.
func (c *Context) ReverseDirection() {
	c.clockwise = !c.clockwise
	c.Touch()
}

// DealCards draws n cards from d into the current player's hand, face up.
func (c *Context) DealCards(d Deck, n int) error {
	p := c.CurrentPlayer()
	if p == nil {
		return errors.Wrap(ErrInvalidState, "no current player")
	}
	cards, err := d.DrawN(n)
	if err != nil {
		return err
	}
	for _, card := range cards {
		p.AddCard(card, true)
	}
	c.Touch()
	return nil
}

// Discard places card on top of the discard pile.
func (c *Context) Discard(card Card) {
	c.discard = append(c.discard, card)
	c.Touch()
}

// DiscardPile returns the discard pile, bottom first.
func (c *Context) DiscardPile() []Card {
	pile := make([]Card, len(c.discard))
	copy(pile, c.discard)
	return pile
}

// TopDiscard returns the most recently discarded card, or nil.
func (c *Context) TopDiscard() Card {
	if len(c.discard) == 0 {
		return nil
	}
	return c.discard[len(c.discard)-1]
}

// TakeDiscards empties the discard pile, keeping the top card when keepTop is set,
// and returns the removed cards.
func (c *Context) TakeDiscards(keepTop bool) []Card {
	if len(c.discard) == 0 {
		return nil
	}
	var taken []Card
	if keepTop {
		top := c.discard[len(c.discard)-1]
		taken = c.discard[:len(c.discard)-1]
		c.discard = []Card{top}
	} else {
		taken = c.discard
		c.discard = nil
	}
	c.Touch()
	return taken
}
