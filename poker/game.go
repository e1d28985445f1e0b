package poker

import (
	"math/rand"

	jsoniter "github.com/json-iterator/go"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Street is how far the board has been dealt.
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
	Showdown
)

var streetNames = []string{"PreFlop", "Flop", "Turn", "River", "Showdown"}

func (s Street) String() string {
	if s < PreFlop || s > Showdown {
		return "Unknown"
	}
	return streetNames[s]
}

// boardAfter is the number of community cards out on each street.
var boardAfter = []int{0, 3, 4, 5, 5}

type GameOpts struct {
	ID      string
	Options *game.Options
	Source  rand.Source
	Logger  *zerolog.Logger
}

type Game struct {
	*game.Base
	rules         Rules
	board         *Board
	street        Street
	initialPoints game.Points
}

// ResultDetail describes every live hand at the end.
type ResultDetail struct {
	Street Street
	Board  []string
	Hands  map[string]string
}

func (ResultDetail) Variant() game.Variant { return game.Poker }

type variantState struct {
	Street Street   `json:"street"`
	Board  []string `json:"board"`
}

func New(opts GameOpts) *Game {
	if opts.ID == "" {
		opts.ID = game.NewID()
	}
	if opts.Source == nil {
		opts.Source = deck.NewSource(0)
	}

	g := &Game{board: &Board{}}
	if opts.Options != nil {
		g.initialPoints = opts.Options.InitialPoints()
	}
	g.rules = NewRules(g.board)
	g.Base = game.NewBase(game.BaseOpts{
		Context:   game.NewContext(opts.ID, game.Poker),
		Deck:      deck.New(Factory{}, opts.Source),
		Rules:     g.rules,
		Evaluator: g.rules.evaluator,
		Factory:   Factory{},
		Codec:     Factory{},
		Logger:    opts.Logger,
	}, g)
	return g
}

func (g *Game) Board() []game.Card {
	return g.board.Cards()
}

func (g *Game) Street() Street {
	return g.street
}

// Evaluate ranks p's hole cards with the board as viewer sees them.
func (g *Game) Evaluate(p *game.Player, viewer game.Viewer) game.HandRank {
	return game.EvaluateFor(g.rules.evaluator, p, viewer, g.Context())
}

func (g *Game) InitializeState(players []*game.Player) error {
	for _, p := range players {
		p.SetPoints(g.initialPoints)
	}
	g.board.clear()
	g.street = PreFlop
	return nil
}

// DealInitialCards deals two face-down hole cards, one at a time around the
// table.
func (g *Game) DealInitialCards() error {
	if err := g.Transition(game.Dealing); err != nil {
		return err
	}
	players := g.Context().Players()
	for round := 0; round < holeCards; round++ {
		for _, p := range players {
			c, err := g.Deck().Draw()
			if err != nil {
				return err
			}
			p.AddCard(c, false)
		}
	}
	return nil
}

func (g *Game) StartFirstTurn() error {
	if err := g.Transition(game.Playing); err != nil {
		return err
	}
	ctx := g.Context()
	for _, p := range ctx.Players() {
		p.SetState(game.Active)
	}
	return ctx.SetCurrentPlayer(ctx.Player(0))
}

func (g *Game) checkTurn(p *game.Player) error {
	if g.Context().Phase() != game.Playing {
		return errors.Wrapf(game.ErrInvalidState, "cannot act in phase %s", g.Context().Phase())
	}
	if !g.rules.CanPlayerAct(p, g.Context()) {
		return errors.Wrapf(game.ErrNotYourTurn, "%s", p.Name())
	}
	return nil
}

// advance passes the turn to the next player still in the hand.
func (g *Game) advance() {
	ctx := g.Context()
	for i := 0; i < ctx.PlayerCount(); i++ {
		if ctx.AdvanceNextPlayer().State() == game.Active {
			return
		}
	}
}

// Check passes the action to the next live player.
func (g *Game) Check(p *game.Player) error {
	if err := g.checkTurn(p); err != nil {
		return err
	}
	g.advance()
	return nil
}

// Fold takes p out of the hand. When one player is left the hand is over.
func (g *Game) Fold(p *game.Player) error {
	if err := g.checkTurn(p); err != nil {
		return err
	}
	p.SetState(game.Folded)
	g.Logger().Debug().Str(logging.PlayerIDKey, p.ID()).Msg("folded")

	if len(Live(g.Context())) <= 1 {
		return g.Transition(game.Scoring)
	}
	g.advance()
	return nil
}

// NextStreet burns a card and deals the flop, turn or river. After the river
// it goes to showdown: live hands are turned over and the game moves to
// scoring. Returns the community cards dealt.
func (g *Game) NextStreet() ([]game.Card, error) {
	ctx := g.Context()
	if ctx.Phase() != game.Playing {
		return nil, errors.Wrapf(game.ErrInvalidState, "cannot deal in phase %s", ctx.Phase())
	}

	next := g.street + 1
	if next == Showdown {
		for _, p := range Live(ctx) {
			p.Reveal()
		}
		g.street = Showdown
		return []game.Card{}, g.Transition(game.Scoring)
	}

	burn, err := g.Deck().Draw()
	if err != nil {
		return nil, err
	}
	cards, err := g.Deck().DrawN(boardAfter[next] - g.board.Len())
	if err != nil {
		return nil, err
	}
	ctx.Discard(burn)
	g.board.add(cards...)
	g.street = next

	for _, p := range ctx.Players() {
		if p.State() == game.Active {
			if err := ctx.SetCurrentPlayer(p); err != nil {
				return nil, err
			}
			break
		}
	}
	g.Logger().Debug().Str("street", next.String()).Strs("board", game.Codes(g.board.Cards())).Msg("dealt")
	return cards, nil
}

// GetGameResult reports the winners and a description of every live hand.
func (g *Game) GetGameResult() game.Result {
	result := g.Base.GetGameResult()
	detail := ResultDetail{
		Street: g.street,
		Board:  game.Codes(g.board.Cards()),
		Hands:  map[string]string{},
	}
	for _, p := range Live(g.Context()) {
		detail.Hands[p.ID()] = g.Evaluate(p, game.House()).Description
	}
	result.Detail = detail
	return result
}

// Cleanup marks winners and losers, then collects the hands and the board.
func (g *Game) Cleanup() error {
	ctx := g.Context()
	if ctx.Phase() == game.Playing {
		if err := g.Transition(game.Scoring); err != nil {
			return err
		}
	}
	if ctx.Phase() != game.Scoring {
		return errors.Wrapf(game.ErrInvalidTransition, "cannot end a game in phase %s", ctx.Phase())
	}

	winners := g.rules.DetermineWinners(ctx)
	for _, p := range ctx.Players() {
		if p.State() == game.Folded {
			continue
		}
		p.SetState(game.Lost)
		for _, w := range winners {
			if w == p {
				p.SetState(game.Won)
			}
		}
	}

	g.ReturnCards()
	for _, c := range g.board.clear() {
		ctx.Discard(c)
	}
	return g.Transition(game.GameOver)
}

func (g *Game) SaveState() (jsoniter.RawMessage, error) {
	return jsoniter.Marshal(variantState{Street: g.street, Board: game.Codes(g.board.Cards())})
}

// LoadState reports the board as held cards, so a board card that is also
// dealt or still in the deck fails the restore.
func (g *Game) LoadState(data jsoniter.RawMessage) (func(), []string, error) {
	if len(data) == 0 {
		return nil, nil, errors.New("missing poker state")
	}
	var s variantState
	if err := jsoniter.Unmarshal(data, &s); err != nil {
		return nil, nil, errors.Wrap(err, "decoding poker state")
	}
	if s.Street < PreFlop || s.Street > Showdown {
		return nil, nil, errors.Errorf("unknown street %d", s.Street)
	}
	if len(s.Board) != boardAfter[s.Street] {
		return nil, nil, errors.Errorf("%s needs %d board cards, got %d", s.Street, boardAfter[s.Street], len(s.Board))
	}
	board, err := game.ParseCards(Factory{}, s.Board)
	if err != nil {
		return nil, nil, err
	}
	return func() {
		g.street = s.Street
		g.board.clear()
		g.board.add(board...)
	}, s.Board, nil
}
