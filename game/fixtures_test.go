package game

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// numberCard is a card worth its number.
type numberCard int

func (c numberCard) String() string         { return "card " + strconv.Itoa(int(c)) }
func (c numberCard) Code() string           { return strconv.Itoa(int(c)) }
func (c numberCard) Value(ctx *Context) int { return int(c) }

type numberFactory struct {
	n int
}

func (f numberFactory) CreateCards() []Card {
	cards := []Card{}
	for i := 1; i <= f.n; i++ {
		cards = append(cards, numberCard(i))
	}
	return cards
}

func (f numberFactory) ParseCard(code string) (Card, error) {
	n, err := strconv.Atoi(code)
	if err != nil || n < 1 || n > f.n {
		return nil, errors.Wrapf(ErrUnknownCard, "%q", code)
	}
	return numberCard(n), nil
}

// sliceDeck is an unshuffled Deck; resets are counted.
type sliceDeck struct {
	cards   []Card
	factory CardFactory
	resets  int
}

func newSliceDeck(f CardFactory) *sliceDeck {
	return &sliceDeck{cards: f.CreateCards(), factory: f}
}

func (d *sliceDeck) Cards() []Card  { return append([]Card{}, d.cards...) }
func (d *sliceDeck) Remaining() int { return len(d.cards) }
func (d *sliceDeck) Shuffle()       {}
func (d *sliceDeck) Reset() {
	d.cards = d.factory.CreateCards()
	d.resets++
}
func (d *sliceDeck) Replace(cards []Card) { d.cards = append([]Card{}, cards...) }

func (d *sliceDeck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *sliceDeck) DrawN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrNotEnoughCards
	}
	drawn := append([]Card{}, d.cards[:n]...)
	d.cards = d.cards[n:]
	return drawn, nil
}

type highCardRules struct {
	BaseRules
}

func (r highCardRules) IsValidMove(p *Player, c Card, ctx *Context) bool { return false }

func (r highCardRules) IsGameOver(ctx *Context) bool {
	return ctx.Phase() == Scoring || ctx.Phase() == GameOver
}

func (r highCardRules) CalculateScore(p *Player, ctx *Context) int {
	return SumValues(p.Hand(), ctx)
}

func (r highCardRules) DetermineWinners(ctx *Context) []*Player {
	return DefaultWinners(r, ctx)
}

type highCardEvaluator struct{}

func (highCardEvaluator) EvaluateHand(cards []Card, ctx *Context) HandRank {
	total := SumValues(cards, ctx)
	return HandRank{Value: total, Description: "Total: " + strconv.Itoa(total)}
}

func (highCardEvaluator) IsValidHand(cards []Card, ctx *Context) bool { return HasCards(cards) }

func (highCardEvaluator) GetPlayableCards(hand []Card, ctx *Context) []Card { return hand }

// highCard deals one card each, then everyone reveals.
type highCard struct {
	*Base
	deck        *sliceDeck
	round       int
	initialized []string
	cleaned     bool
	initErr     error
}

type highCardState struct {
	Round int `json:"round"`
}

func newHighCard(cards int) *highCard {
	f := numberFactory{n: cards}
	g := &highCard{deck: newSliceDeck(f)}
	g.Base = NewBase(BaseOpts{
		Context:   NewContext("session-1", Poker),
		Deck:      g.deck,
		Rules:     highCardRules{BaseRules{Min: 2, Max: 4, HandSize: 1}},
		Evaluator: highCardEvaluator{},
		Factory:   f,
		Codec:     f,
	}, g)
	return g
}

func (g *highCard) InitializeState(players []*Player) error {
	if g.initErr != nil {
		return g.initErr
	}
	g.initialized = nil
	for _, p := range players {
		g.initialized = append(g.initialized, p.ID())
	}
	return nil
}

func (g *highCard) DealInitialCards() error {
	if err := g.Transition(Dealing); err != nil {
		return err
	}
	for _, p := range g.Context().Players() {
		c, err := g.Deck().Draw()
		if err != nil {
			return err
		}
		p.AddCard(c, false)
	}
	return nil
}

func (g *highCard) StartFirstTurn() error {
	for _, p := range g.Context().Players() {
		p.SetState(Active)
	}
	g.round = 1
	return g.Transition(Playing)
}

func (g *highCard) Cleanup() error {
	g.cleaned = true
	g.ReturnCards()
	return nil
}

func (g *highCard) SaveState() (jsoniter.RawMessage, error) {
	return jsoniter.Marshal(highCardState{Round: g.round})
}

func (g *highCard) LoadState(data jsoniter.RawMessage) (func(), []string, error) {
	var s highCardState
	if err := jsoniter.Unmarshal(data, &s); err != nil {
		return nil, nil, err
	}
	if s.Round < 0 {
		return nil, nil, errors.New("negative round")
	}
	return func() { g.round = s.Round }, nil, nil
}

func seats(names ...string) []*Player {
	players := []*Player{}
	for _, name := range names {
		players = append(players, NewPlayerWithID(name, name))
	}
	return players
}
