package deck

import (
	"math/rand"
	"time"

	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
)

// NewSource returns a pseudo-random source for shuffling. A zero seed is
// replaced by the current time.
func NewSource(seed int64) rand.Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.NewSource(seed)
}

// Deck represents a deck of cards. Cards are drawn from the front.
type Deck struct {
	cards   []game.Card
	factory game.CardFactory
	rng     *rand.Rand
}

// New creates a deck holding factory's full card set in production order.
// Shuffles draw from src, which belongs to this deck alone.
func New(factory game.CardFactory, src rand.Source) *Deck {
	d := &Deck{
		factory: factory,
		rng:     rand.New(src),
	}
	d.cards = factory.CreateCards()
	return d
}

// Cards returns the undrawn cards, next card first.
func (d *Deck) Cards() []game.Card {
	cards := make([]game.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Draw takes the front card.
func (d *Deck) Draw() (game.Card, error) {
	if len(d.cards) == 0 {
		return nil, game.ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DrawN takes n cards from the front. If fewer than n remain nothing is drawn.
func (d *Deck) DrawN(n int) ([]game.Card, error) {
	if n < 0 {
		return nil, errors.Errorf("cannot draw %d cards", n)
	}
	if n > len(d.cards) {
		return nil, errors.Wrapf(game.ErrNotEnoughCards, "wanted %d, %d left", n, len(d.cards))
	}
	drawn := make([]game.Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// Shuffle shuffles the deck of cards in place (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Reset throws away the current cards, rebuilds the full set and shuffles it.
func (d *Deck) Reset() {
	d.cards = d.factory.CreateCards()
	d.Shuffle()
}

// Replace swaps in cards as the draw pile, in order.
func (d *Deck) Replace(cards []game.Card) {
	d.cards = make([]game.Card, len(cards))
	copy(d.cards, cards)
}
