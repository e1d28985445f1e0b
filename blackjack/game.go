package blackjack

import (
	"math/rand"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type GameOpts struct {
	ID      string
	Options *game.Options
	Source  rand.Source
	Logger  *zerolog.Logger
}

// Game is a round of blackjack. Seats are punters in order, then the dealer.
type Game struct {
	*game.Base
	game.NoVariantState
	rules         Rules
	initialPoints game.Points
}

// ResultDetail reports how every punter settled. No winners with
// HouseWins set is a house sweep.
type ResultDetail struct {
	Outcomes    map[string]Outcome
	DealerTotal int
	DealerBust  bool
	HouseWins   bool
}

func (ResultDetail) Variant() game.Variant { return game.Blackjack }

// New constructs a game of blackjack
func New(opts GameOpts) *Game {
	if opts.ID == "" {
		opts.ID = game.NewID()
	}
	if opts.Source == nil {
		opts.Source = deck.NewSource(0)
	}

	g := &Game{rules: NewRules()}
	if opts.Options != nil {
		g.initialPoints = opts.Options.InitialPoints()
	}
	g.Base = game.NewBase(game.BaseOpts{
		Context:   game.NewContext(opts.ID, game.Blackjack),
		Deck:      deck.New(Factory{}, opts.Source),
		Rules:     g.rules,
		Evaluator: Evaluator{},
		Factory:   Factory{},
		Codec:     Factory{},
		Logger:    opts.Logger,
	}, g)
	return g
}

// Dealer returns the dealer's seat
func (g *Game) Dealer() *game.Player {
	return Dealer(g.Context())
}

// Evaluate scores p's hand as viewer sees it.
func (g *Game) Evaluate(p *game.Player, viewer game.Viewer) game.HandRank {
	return game.EvaluateFor(Evaluator{}, p, viewer, g.Context())
}

func (g *Game) InitializeState(players []*game.Player) error {
	for _, p := range players {
		p.SetPoints(g.initialPoints)
	}
	return nil
}

// DealInitialCards gives every seat two cards. The dealer's second card is
// dealt face down.
func (g *Game) DealInitialCards() error {
	if err := g.Transition(game.Dealing); err != nil {
		return err
	}

	ctx := g.Context()
	for _, p := range ctx.Players() {
		cards, err := g.Deck().DrawN(g.rules.InitialHandSize())
		if err != nil {
			return err
		}
		dealer := isDealer(p, ctx)
		for i, c := range cards {
			p.AddCard(c, !(dealer && i > 0))
		}
	}
	return nil
}

func (g *Game) StartFirstTurn() error {
	if err := g.Transition(game.Playing); err != nil {
		return err
	}
	ctx := g.Context()
	for _, p := range Punters(ctx) {
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

// Hit deals p one more card, face up. A bust ends p's turn.
func (g *Game) Hit(p *game.Player) (game.Card, error) {
	if err := g.checkTurn(p); err != nil {
		return nil, err
	}
	c, err := g.Deck().Draw()
	if err != nil {
		return nil, err
	}
	p.AddCard(c, true)

	if DetailOf(g.Evaluate(p, game.House())).Bust {
		p.SetState(game.Lost)
		g.Context().AdvanceNextPlayer()
		g.Logger().Debug().Str(logging.PlayerIDKey, p.ID()).Msg("bust")
	}
	return c, nil
}

// Stand ends p's turn.
func (g *Game) Stand(p *game.Player) error {
	if err := g.checkTurn(p); err != nil {
		return err
	}
	g.Context().AdvanceNextPlayer()
	return nil
}

// PlayDealer reveals the hole card and draws until the dealer reaches the
// stand value. If every punter has bust the dealer does not draw. Returns the
// cards drawn.
func (g *Game) PlayDealer() ([]game.Card, error) {
	ctx := g.Context()
	if ctx.Phase() != game.Playing {
		return nil, errors.Wrapf(game.ErrInvalidState, "cannot play the dealer in phase %s", ctx.Phase())
	}
	dealer := g.Dealer()
	if ctx.CurrentPlayer() != dealer {
		return nil, errors.Wrap(game.ErrNotYourTurn, "punters are still playing")
	}

	dealer.Reveal()
	dealer.SetState(game.Active)

	drawn := []game.Card{}
	if !g.rules.allPuntersBust(ctx) {
		for g.Evaluate(dealer, game.House()).Value < DealerStandValue {
			c, err := g.Deck().Draw()
			if err != nil {
				return drawn, err
			}
			dealer.AddCard(c, true)
			drawn = append(drawn, c)
		}
	}

	return drawn, g.Transition(game.Scoring)
}

// GetGameResult settles every punter against the dealer. Pushes are neither
// winners nor losers, and the dealer is never listed.
func (g *Game) GetGameResult() game.Result {
	ctx := g.Context()
	detail := ResultDetail{Outcomes: map[string]Outcome{}}
	result := game.Result{
		Winners: []*game.Player{},
		Losers:  []*game.Player{},
		Scores:  g.Scores(),
	}

	for _, p := range Punters(ctx) {
		outcome := g.rules.Settle(p, ctx)
		detail.Outcomes[p.ID()] = outcome
		switch outcome {
		case Win:
			result.Winners = append(result.Winners, p)
		case Loss, Bust:
			result.Losers = append(result.Losers, p)
		}
	}

	if dealer := g.Dealer(); dealer != nil {
		d := DetailOf(g.Evaluate(dealer, game.House()))
		detail.DealerTotal = d.Total
		detail.DealerBust = d.Bust
		detail.HouseWins = len(result.Winners) == 0 && !d.Bust
	}

	result.Detail = detail
	return result
}

// Cleanup records each seat's final state and collects every hand.
func (g *Game) Cleanup() error {
	result := g.GetGameResult()
	detail := result.Detail.(ResultDetail)

	for _, p := range Punters(g.Context()) {
		switch detail.Outcomes[p.ID()] {
		case Win:
			p.SetState(game.Won)
		case Loss, Bust:
			p.SetState(game.Lost)
		default:
			p.SetState(game.Waiting)
		}
	}
	if dealer := g.Dealer(); dealer != nil {
		if detail.HouseWins {
			dealer.SetState(game.Won)
		} else {
			dealer.SetState(game.Waiting)
		}
	}

	g.ReturnCards()
	return g.Transition(game.GameOver)
}
