package game

import "fmt"

// Card is an immutable playing card. Its String is the display label and its
// Code a stable identifier used when a game is captured in a snapshot.
type Card interface {
	fmt.Stringer
	Code() string
	Value(ctx *Context) int
}

// CardFactory produces the full card set of a variant.
type CardFactory interface {
	CreateCards() []Card
}

// CardCodec turns a snapshot card code back into a card.
type CardCodec interface {
	ParseCard(code string) (Card, error)
}

// Deck is an ordered draw pile. Cards are drawn from the front.
type Deck interface {
	Cards() []Card
	Remaining() int
	Draw() (Card, error)
	DrawN(n int) ([]Card, error)
	Shuffle()
	Reset()
	// Replace swaps the pile for cards, in order, without shuffling.
	Replace(cards []Card)
}

// Codes returns the card codes of cards, in order.
func Codes(cards []Card) []string {
	codes := make([]string, 0, len(cards))
	for _, c := range cards {
		codes = append(codes, c.Code())
	}
	return codes
}

// ParseCards decodes codes with codec, in order.
func ParseCards(codec CardCodec, codes []string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := codec.ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
