package game

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/minaorangina/cardtable/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ResultDetail carries outcome data only one variant understands.
type ResultDetail interface {
	Variant() Variant
}

// Result is the outcome of a finished game. Scores are keyed by player ID.
type Result struct {
	Winners []*Player
	Losers  []*Player
	Scores  map[string]int
	Detail  ResultDetail
}

// Game is the lifecycle every variant implements. A driver calls Initialize,
// then StartGame, polls IsGameOver between turns, and finishes with
// GetGameResult and EndGame.
type Game interface {
	Variant() Variant
	Context() *Context
	Deck() Deck
	Rules() Rules
	Evaluator() HandEvaluator

	Initialize(players []*Player) error
	StartGame() error
	EndGame() error
	IsGameOver() bool
	GetGameResult() Result

	Snapshot() (Snapshot, error)
	Restore(s Snapshot) error
}

// Hooks are the variant-specific steps of the lifecycle.
type Hooks interface {
	// InitializeState seeds per-player state before the seats are set. If it
	// fails the session keeps its old seating.
	InitializeState(players []*Player) error
	DealInitialCards() error
	StartFirstTurn() error
	Cleanup() error

	// SaveState encodes variant data for a snapshot; nil means none.
	SaveState() (jsoniter.RawMessage, error)
	// LoadState decodes variant data and returns a function that applies it,
	// along with the codes of any cards the variant data holds. Nothing may
	// change until apply is called.
	LoadState(data jsoniter.RawMessage) (apply func(), held []string, err error)
}

type BaseOpts struct {
	Context   *Context
	Deck      Deck
	Rules     Rules
	Evaluator HandEvaluator
	Factory   CardFactory
	Codec     CardCodec
	Logger    *zerolog.Logger
}

// Base runs the lifecycle state machine and delegates the variant steps to
// its hooks. Variants embed a *Base.
type Base struct {
	ctx       *Context
	deck      Deck
	rules     Rules
	evaluator HandEvaluator
	factory   CardFactory
	codec     CardCodec
	hooks     Hooks
	logger    zerolog.Logger
}

func NewBase(opts BaseOpts, hooks Hooks) *Base {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Base{
		ctx:       opts.Context,
		deck:      opts.Deck,
		rules:     opts.Rules,
		evaluator: opts.Evaluator,
		factory:   opts.Factory,
		codec:     opts.Codec,
		hooks:     hooks,
		logger: logger.With().
			Str(logging.SessionIDKey, opts.Context.ID()).
			Str(logging.VariantKey, opts.Context.Variant().String()).
			Logger(),
	}
}

func (b *Base) Variant() Variant         { return b.ctx.Variant() }
func (b *Base) Context() *Context        { return b.ctx }
func (b *Base) Deck() Deck               { return b.deck }
func (b *Base) Rules() Rules             { return b.rules }
func (b *Base) Evaluator() HandEvaluator { return b.evaluator }
func (b *Base) Logger() *zerolog.Logger  { return &b.logger }

// Initialize seats players for a new game. The deck is reset before the
// player count is checked, so a rejected configuration still leaves a
// freshly shuffled deck behind. Nothing else changes on failure.
func (b *Base) Initialize(players []*Player) error {
	b.deck.Reset()

	n := len(players)
	if n < b.rules.MinPlayers() || n > b.rules.MaxPlayers() {
		return errors.Wrapf(ErrInvalidConfiguration, "%s needs %d to %d players, got %d",
			b.ctx.Variant(), b.rules.MinPlayers(), b.rules.MaxPlayers(), n)
	}
	seen := map[string]bool{}
	for _, p := range players {
		if p == nil {
			return errors.Wrap(ErrInvalidConfiguration, "nil player")
		}
		if seen[p.ID()] {
			return errors.Wrapf(ErrInvalidConfiguration, "player %s seated twice", p.ID())
		}
		seen[p.ID()] = true
	}

	if err := b.hooks.InitializeState(players); err != nil {
		return errors.Wrap(err, "initializing variant state")
	}

	for _, p := range players {
		p.ClearHand()
		p.SetState(Waiting)
	}
	b.ctx.TakeDiscards(false)
	b.ctx.SetPlayers(players)
	b.ctx.setPhase(Setup)

	b.logger.Debug().Int("players", n).Msg("game initialized")
	return nil
}

// StartGame deals the opening hands and sets up the first turn.
func (b *Base) StartGame() error {
	if b.ctx.Phase() != Setup {
		return errors.Wrapf(ErrInvalidState, "cannot start a game in phase %s", b.ctx.Phase())
	}
	if err := b.hooks.DealInitialCards(); err != nil {
		return errors.Wrap(err, "dealing")
	}
	if err := b.hooks.StartFirstTurn(); err != nil {
		return errors.Wrap(err, "starting first turn")
	}

	b.logger.Debug().Str(logging.PhaseKey, b.ctx.Phase().String()).Msg("game started")
	return nil
}

// EndGame runs the variant cleanup.
func (b *Base) EndGame() error {
	if b.ctx.Phase() == GameOver {
		return errors.Wrap(ErrInvalidState, "game is already over")
	}
	if err := b.hooks.Cleanup(); err != nil {
		return errors.Wrap(err, "cleaning up")
	}

	b.logger.Debug().Str(logging.PhaseKey, b.ctx.Phase().String()).Msg("game ended")
	return nil
}

// Transition moves the session to phase to, if the rules allow it.
func (b *Base) Transition(to Phase) error {
	from := b.ctx.Phase()
	if !b.rules.CanTransitionState(from, to, b.ctx) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", from, to)
	}
	b.ctx.setPhase(to)

	b.logger.Debug().Str("from", from.String()).Str("to", to.String()).Msg("phase changed")
	return nil
}

// IsGameOver asks the rules.
func (b *Base) IsGameOver() bool {
	return b.rules.IsGameOver(b.ctx)
}

// GetGameResult reports the rules' winners, everyone else as losers, and each
// player's score.
func (b *Base) GetGameResult() Result {
	winners := b.rules.DetermineWinners(b.ctx)
	return Result{
		Winners: winners,
		Losers:  Losers(b.ctx, winners),
		Scores:  b.Scores(),
	}
}

// Scores calculates every player's score.
func (b *Base) Scores() map[string]int {
	scores := map[string]int{}
	for _, p := range b.ctx.Players() {
		scores[p.ID()] = b.rules.CalculateScore(p, b.ctx)
	}
	return scores
}

// ReturnCards empties every hand onto the discard pile.
func (b *Base) ReturnCards() {
	for _, p := range b.ctx.Players() {
		for _, c := range p.ClearHand() {
			b.ctx.Discard(c)
		}
	}
}

// Snapshot captures the session, deck and variant data.
func (b *Base) Snapshot() (Snapshot, error) {
	s := b.ctx.Snapshot(b.deck)
	data, err := b.hooks.SaveState()
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "saving variant state")
	}
	s.VariantData = data
	return s, nil
}

// Restore replaces the session with s. On error nothing has changed.
func (b *Base) Restore(s Snapshot) error {
	apply, held, err := b.hooks.LoadState(s.VariantData)
	if err != nil {
		return errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	if err := b.ctx.Restore(s, b.deck, b.codec, b.factory, held...); err != nil {
		return err
	}
	apply()

	b.logger.Debug().Str(logging.PhaseKey, s.Phase.String()).Msg("game restored")
	return nil
}

// NoVariantState is embedded by variants that keep all their state in the Context.
type NoVariantState struct{}

func (NoVariantState) SaveState() (jsoniter.RawMessage, error) {
	return nil, nil
}

func (NoVariantState) LoadState(data jsoniter.RawMessage) (func(), []string, error) {
	return func() {}, nil, nil
}
