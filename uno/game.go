package uno

import (
	"math/rand"

	jsoniter "github.com/json-iterator/go"
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

// Game is a hand of Uno played to the first empty hand.
type Game struct {
	*game.Base
	rules         Rules
	effects       EffectHandler
	initialPoints game.Points
}

// ResultDetail holds the points each winner collects from the other hands.
type ResultDetail struct {
	WinnerPoints map[string]int
}

func (ResultDetail) Variant() game.Variant { return game.Uno }

type variantState struct {
	Color Color `json:"color"`
}

func New(opts GameOpts) *Game {
	if opts.ID == "" {
		opts.ID = game.NewID()
	}
	if opts.Source == nil {
		opts.Source = deck.NewSource(0)
	}

	minPlayers, maxPlayers, handSize := minSeats, maxSeats, defaultHandSize
	g := &Game{}
	if opts.Options != nil {
		minPlayers, maxPlayers = opts.Options.MinPlayers(), opts.Options.MaxPlayers()
		g.initialPoints = opts.Options.InitialPoints()
		if extra, ok := opts.Options.Extra().(Options); ok {
			handSize = extra.HandSize
		}
	}
	g.rules = NewRules(minPlayers, maxPlayers, handSize)
	g.effects = NewEffectHandler(g.drawTo)
	g.Base = game.NewBase(game.BaseOpts{
		Context:   game.NewContext(opts.ID, game.Uno),
		Deck:      deck.New(Factory{}, opts.Source),
		Rules:     g.rules,
		Evaluator: NewEvaluator(g.rules),
		Factory:   Factory{},
		Codec:     Factory{},
		Logger:    opts.Logger,
	}, g)
	return g
}

// TopCard returns the card on top of the discard pile.
func (g *Game) TopCard() (Card, bool) {
	c, ok := g.Context().TopDiscard().(Card)
	return c, ok
}

// CurrentColor is the colour the next play must match.
func (g *Game) CurrentColor() Color {
	return g.rules.ActiveColor()
}

// PlayableCards lists the cards in p's hand that could be played now.
func (g *Game) PlayableCards(p *game.Player) []game.Card {
	return g.Evaluator().GetPlayableCards(p.Hand(), g.Context())
}

func (g *Game) InitializeState(players []*game.Player) error {
	for _, p := range players {
		p.SetPoints(g.initialPoints)
	}
	g.rules.setColor(Wild)
	return nil
}

// DealInitialCards deals every hand face down and turns the first discard.
func (g *Game) DealInitialCards() error {
	if err := g.Transition(game.Dealing); err != nil {
		return err
	}
	for _, p := range g.Context().Players() {
		cards, err := g.Deck().DrawN(g.rules.InitialHandSize())
		if err != nil {
			return err
		}
		for _, c := range cards {
			p.AddCard(c, false)
		}
	}
	return g.turnFirstDiscard()
}

// turnFirstDiscard flips the top of the deck onto the discard pile. A wild
// draw four goes to the bottom of the deck and another card is turned.
func (g *Game) turnFirstDiscard() error {
	d := g.Deck()
	for tries := d.Remaining(); tries > 0; tries-- {
		c, err := d.Draw()
		if err != nil {
			return err
		}
		card := c.(Card)
		if card.Action() == DrawFour {
			d.Replace(append(d.Cards(), card))
			continue
		}
		g.Context().Discard(card)
		g.rules.setColor(card.Color())
		return nil
	}
	return errors.Wrap(game.ErrEmptyDeck, "no card to start the discard pile")
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

// PlayCard discards c from p's hand and applies its effect. A wild must name
// the colour to continue with; chosen is ignored for coloured cards.
func (g *Game) PlayCard(p *game.Player, c game.Card, chosen Color) error {
	if err := g.checkTurn(p); err != nil {
		return err
	}
	ctx := g.Context()
	card, ok := c.(Card)
	if !ok {
		return errors.Wrapf(game.ErrIllegalMove, "%v is not an uno card", c)
	}
	if !g.rules.IsValidMove(p, card, ctx) {
		return errors.Wrapf(game.ErrIllegalMove, "%s cannot follow %s on %s", card, ctx.TopDiscard(), g.CurrentColor())
	}
	if card.IsWild() && (chosen < Red || chosen >= Wild) {
		return errors.Wrapf(game.ErrIllegalMove, "%s must name a colour", card)
	}
	if err := p.RemoveCard(card); err != nil {
		return err
	}

	ctx.Discard(card)
	if card.IsWild() {
		g.rules.setColor(chosen)
	} else {
		g.rules.setColor(card.Color())
	}
	g.Logger().Debug().
		Str(logging.PlayerIDKey, p.ID()).
		Str("card", card.Code()).
		Str("color", g.CurrentColor().String()).
		Msg("card played")

	if err := g.effects.HandleCardPlayed(card, ctx); err != nil {
		return err
	}
	if p.HandSize() == 0 {
		return g.Transition(game.Scoring)
	}
	ctx.AdvanceNextPlayer()
	return nil
}

// DrawCard gives p one card and ends their turn.
func (g *Game) DrawCard(p *game.Player) (game.Card, error) {
	if err := g.checkTurn(p); err != nil {
		return nil, err
	}
	c, err := g.draw()
	if err != nil {
		return nil, err
	}
	p.AddCard(c, false)
	g.Context().AdvanceNextPlayer()
	return c, nil
}

func (g *Game) drawTo(p *game.Player, n int) error {
	for i := 0; i < n; i++ {
		c, err := g.draw()
		if err != nil {
			return err
		}
		p.AddCard(c, false)
	}
	return nil
}

// draw takes the top card, first shuffling the discard pile back into an
// empty deck. The top discard stays where it is.
func (g *Game) draw() (game.Card, error) {
	d := g.Deck()
	if d.Remaining() == 0 {
		pile := g.Context().TakeDiscards(true)
		if len(pile) == 0 {
			return nil, errors.Wrap(game.ErrEmptyDeck, "discard pile is empty too")
		}
		d.Replace(pile)
		d.Shuffle()
		g.Logger().Debug().Int("cards", len(pile)).Msg("discard pile recycled")
	}
	return d.Draw()
}

// GetGameResult lists the players who went out. Each collects the value of
// every other hand.
func (g *Game) GetGameResult() game.Result {
	result := g.Base.GetGameResult()
	detail := ResultDetail{WinnerPoints: map[string]int{}}
	for _, w := range result.Winners {
		points := 0
		for _, p := range g.Context().Players() {
			if p != w {
				points += result.Scores[p.ID()]
			}
		}
		detail.WinnerPoints[w.ID()] = points
	}
	result.Detail = detail
	return result
}

// Cleanup records who went out and collects every hand.
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

	for _, p := range ctx.Players() {
		if p.HandSize() == 0 {
			p.SetState(game.Won)
		} else {
			p.SetState(game.Lost)
		}
	}
	g.ReturnCards()
	return g.Transition(game.GameOver)
}

func (g *Game) SaveState() (jsoniter.RawMessage, error) {
	return jsoniter.Marshal(variantState{Color: g.rules.ActiveColor()})
}

func (g *Game) LoadState(data jsoniter.RawMessage) (func(), []string, error) {
	if len(data) == 0 {
		return nil, nil, errors.New("missing uno state")
	}
	var s variantState
	if err := jsoniter.Unmarshal(data, &s); err != nil {
		return nil, nil, errors.Wrap(err, "decoding uno state")
	}
	return func() { g.rules.setColor(s.Color) }, nil, nil
}
