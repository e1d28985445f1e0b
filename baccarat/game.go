package baccarat

import (
	"math/rand"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type GameOpts struct {
	ID      string
	Options *game.Options
	Source  rand.Source
	Logger  *zerolog.Logger
}

// Game is a single coup of punto banco.
type Game struct {
	*game.Base
	game.NoVariantState
	rules         Rules
	initialPoints game.Points
}

type ResultDetail struct {
	PlayerTotal int
	BankerTotal int
	Natural     bool
	Tie         bool
}

func (ResultDetail) Variant() game.Variant { return game.Baccarat }

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
		Context:   game.NewContext(opts.ID, game.Baccarat),
		Deck:      deck.New(Factory{}, opts.Source),
		Rules:     g.rules,
		Evaluator: Evaluator{},
		Factory:   Factory{},
		Codec:     Factory{},
		Logger:    opts.Logger,
	}, g)
	return g
}

func (g *Game) Evaluate(p *game.Player) game.HandRank {
	return g.rules.evaluate(p, g.Context())
}

func (g *Game) InitializeState(players []*game.Player) error {
	for _, p := range players {
		p.SetPoints(g.initialPoints)
	}
	return nil
}

// DealInitialCards deals Player, Banker, Player, Banker, all face up.
func (g *Game) DealInitialCards() error {
	if err := g.Transition(game.Dealing); err != nil {
		return err
	}
	players := g.Context().Players()
	for round := 0; round < g.rules.InitialHandSize(); round++ {
		for _, p := range players {
			c, err := g.Deck().Draw()
			if err != nil {
				return err
			}
			p.AddCard(c, true)
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
	return ctx.SetCurrentPlayer(PlayerSeat(ctx))
}

func (g *Game) drawTo(p *game.Player) (game.Card, error) {
	c, err := g.Deck().Draw()
	if err != nil {
		return nil, err
	}
	p.AddCard(c, true)
	return c, nil
}

// Play finishes the coup by the tableau and moves to scoring. A natural on
// either side stops all drawing. Returns the third cards drawn.
func (g *Game) Play() ([]game.Card, error) {
	ctx := g.Context()
	if ctx.Phase() != game.Playing {
		return nil, errors.Wrapf(game.ErrInvalidState, "cannot play in phase %s", ctx.Phase())
	}
	player, banker := PlayerSeat(ctx), BankerSeat(ctx)
	pd, bd := DetailOf(g.Evaluate(player)), DetailOf(g.Evaluate(banker))

	drawn := []game.Card{}
	if pd.Natural || bd.Natural {
		return drawn, g.Transition(game.Scoring)
	}

	var third *int
	if PlayerDraws(pd.Total) {
		c, err := g.drawTo(player)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
		v := c.Value(ctx)
		third = &v
	}
	if BankerDraws(bd.Total, third) {
		c, err := g.drawTo(banker)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
	}

	g.Logger().Debug().Strs("drawn", game.Codes(drawn)).Msg("coup played")
	return drawn, g.Transition(game.Scoring)
}

func (g *Game) GetGameResult() game.Result {
	result := g.Base.GetGameResult()
	ctx := g.Context()
	detail := ResultDetail{}
	if player, banker := PlayerSeat(ctx), BankerSeat(ctx); player != nil && banker != nil {
		pd, bd := DetailOf(g.Evaluate(player)), DetailOf(g.Evaluate(banker))
		detail = ResultDetail{
			PlayerTotal: pd.Total,
			BankerTotal: bd.Total,
			Natural:     pd.Natural || bd.Natural,
			Tie:         pd.Total == bd.Total,
		}
	}
	result.Detail = detail
	return result
}

// Cleanup marks the winning hand and collects the cards. On a tie both
// hands go back to waiting.
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
		switch {
		case len(winners) == 0:
			p.SetState(game.Waiting)
		case winners[0] == p:
			p.SetState(game.Won)
		default:
			p.SetState(game.Lost)
		}
	}
	g.ReturnCards()
	return g.Transition(game.GameOver)
}
