package uno

import (
	"fmt"
	"strconv"

	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
)

// Color is a card colour. Wild cards carry Wild until played.
type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
	Wild
)

var (
	colorNames   = []string{"Red", "Blue", "Green", "Yellow", "Wild"}
	colorLetters = []string{"R", "B", "G", "Y", "W"}
)

func (c Color) String() string {
	return colorNames[c]
}

// Colors are the four colours a wild card can name.
func Colors() []Color {
	return []Color{Red, Blue, Green, Yellow}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	for i, name := range colorNames {
		if name == string(text) {
			*c = Color(i)
			return nil
		}
	}
	return errors.Errorf("unknown colour %q", text)
}

// Action is what a card does when played. Number cards have NoAction.
type Action int

const (
	NoAction Action = iota
	Skip
	Reverse
	DrawTwo
	ChangeColor
	DrawFour
)

var actionNames = []string{"", "Skip", "Reverse", "Draw Two", "Wild", "Wild Draw Four"}

func (a Action) String() string {
	return actionNames[a]
}

const (
	wildValue   = 50
	actionValue = 20
)

// Card is an Uno card: a coloured number, a coloured action or a wild.
type Card struct {
	color  Color
	number int
	action Action
}

func NumberCard(color Color, number int) Card {
	return Card{color: color, number: number}
}

func ActionCard(color Color, action Action) Card {
	return Card{color: color, action: action, number: -1}
}

func WildCard() Card {
	return Card{color: Wild, action: ChangeColor, number: -1}
}

func WildDrawFour() Card {
	return Card{color: Wild, action: DrawFour, number: -1}
}

func (c Card) Color() Color   { return c.color }
func (c Card) Action() Action { return c.action }

// Number is the printed number, or -1 for action and wild cards.
func (c Card) Number() int {
	return c.number
}

func (c Card) IsWild() bool {
	return c.color == Wild
}

func (c Card) String() string {
	switch {
	case c.IsWild():
		return c.action.String()
	case c.action != NoAction:
		return fmt.Sprintf("%s %s", c.color, c.action)
	}
	return fmt.Sprintf("%s %d", c.color, c.number)
}

// Code is the colour letter followed by the number or action: R7, GS, BR,
// YD2, W, W4.
func (c Card) Code() string {
	switch c.action {
	case ChangeColor:
		return "W"
	case DrawFour:
		return "W4"
	case Skip:
		return colorLetters[c.color] + "S"
	case Reverse:
		return colorLetters[c.color] + "R"
	case DrawTwo:
		return colorLetters[c.color] + "D2"
	}
	return colorLetters[c.color] + strconv.Itoa(c.number)
}

// Value is the card's score when left in a hand.
func (c Card) Value(ctx *game.Context) int {
	switch {
	case c.IsWild():
		return wildValue
	case c.action != NoAction:
		return actionValue
	}
	return c.number
}

// Factory produces the 108-card Uno set.
type Factory struct{}

func (Factory) CreateCards() []game.Card {
	cards := []game.Card{}
	for _, color := range Colors() {
		cards = append(cards, NumberCard(color, 0))
		for n := 1; n <= 9; n++ {
			cards = append(cards, NumberCard(color, n), NumberCard(color, n))
		}
		for i := 0; i < 2; i++ {
			cards = append(cards,
				ActionCard(color, Skip),
				ActionCard(color, Reverse),
				ActionCard(color, DrawTwo),
			)
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, WildCard(), WildDrawFour())
	}
	return cards
}

func (Factory) ParseCard(code string) (game.Card, error) {
	switch code {
	case "W":
		return WildCard(), nil
	case "W4":
		return WildDrawFour(), nil
	}
	if len(code) < 2 {
		return nil, errors.Wrap(game.ErrUnknownCard, code)
	}

	color := Color(-1)
	for i, letter := range colorLetters[:Wild] {
		if code[:1] == letter {
			color = Color(i)
		}
	}
	if color < 0 {
		return nil, errors.Wrap(game.ErrUnknownCard, code)
	}

	switch rest := code[1:]; rest {
	case "S":
		return ActionCard(color, Skip), nil
	case "R":
		return ActionCard(color, Reverse), nil
	case "D2":
		return ActionCard(color, DrawTwo), nil
	default:
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 || n > 9 || len(rest) != 1 {
			return nil, errors.Wrap(game.ErrUnknownCard, code)
		}
		return NumberCard(color, n), nil
	}
}
