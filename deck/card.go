package deck

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Rank represents a rank in a deck of cards
type Rank int

var (
	rankNames   = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}
	rankSymbols = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// Pips is the printed number of the rank: ace 1 up to king 13.
func (r Rank) Pips() int {
	return int(r) + 1
}

// IsFace is true for jacks, queens and kings.
func (r Rank) IsFace() bool {
	return r >= Jack
}

// Suit represents a suit in a deck of cards
type Suit int

var (
	suitNames   = []string{"Clubs", "Diamonds", "Hearts", "Spades"}
	suitLetters = []string{"C", "D", "H", "S"}
	suitSymbols = []string{"♣", "♦", "♥", "♠"}
)

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Symbol is the unicode pip of the suit.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// IsRed is true for diamonds and hearts.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// StandardCard is one card of the French 52-card set. Variants wrap it to
// give it a value.
type StandardCard struct {
	rank Rank
	suit Suit
}

// NewStandardCard constructs a card
func NewStandardCard(rank Rank, suit Suit) (StandardCard, error) {
	if rank < Ace || rank > King || suit < Clubs || suit > Spades {
		return StandardCard{}, errors.New("arguments out of range")
	}
	return StandardCard{rank: rank, suit: suit}, nil
}

// MustStandardCard is NewStandardCard for arguments known to be in range.
func MustStandardCard(rank Rank, suit Suit) StandardCard {
	c, err := NewStandardCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c StandardCard) Rank() Rank {
	return c.rank
}

func (c StandardCard) Suit() Suit {
	return c.suit
}

func (c StandardCard) String() string {
	return fmt.Sprintf("%s of %s", rankNames[c.rank], suitNames[c.suit])
}

// Short is the compact display form, e.g. "10♥".
func (c StandardCard) Short() string {
	return rankSymbols[c.rank] + c.suit.Symbol()
}

// Code is the stable identifier of the card, e.g. "QH".
func (c StandardCard) Code() string {
	return rankSymbols[c.rank] + suitLetters[c.suit]
}

// ParseStandardCode is the inverse of StandardCard.Code.
func ParseStandardCode(code string) (StandardCard, error) {
	if len(code) < 2 {
		return StandardCard{}, errors.Errorf("card code %q too short", code)
	}
	rankPart, suitPart := code[:len(code)-1], code[len(code)-1:]

	rank := -1
	for i, sym := range rankSymbols {
		if strings.EqualFold(sym, rankPart) {
			rank = i
			break
		}
	}
	suit := -1
	for i, letter := range suitLetters {
		if strings.EqualFold(letter, suitPart) {
			suit = i
			break
		}
	}
	if rank < 0 || suit < 0 {
		return StandardCard{}, errors.Errorf("unknown card code %q", code)
	}

	return StandardCard{rank: Rank(rank), suit: Suit(suit)}, nil
}

// StandardSet returns all 52 cards, suit by suit, ace to king.
func StandardSet() []StandardCard {
	cards := make([]StandardCard, 0, len(suitNames)*len(rankNames))
	for suit := range suitNames {
		for rank := range rankNames {
			cards = append(cards, StandardCard{rank: Rank(rank), suit: Suit(suit)})
		}
	}
	return cards
}
