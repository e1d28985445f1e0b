package engine

import (
	"context"
	"math/rand"

	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/logging"
	"github.com/minaorangina/cardtable/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// playState represents the state of the session
// idle -> not started, or discarded
// inProgress -> started or resumed, not yet finished
// finished -> EndGame has run
type playState int

func (ps playState) String() string {
	if ps == 0 {
		return "idle"
	} else if ps == 1 {
		return "inProgress"
	} else if ps == 2 {
		return "finished"
	}
	return ""
}

const (
	idle playState = iota
	inProgress
	finished
)

type Opts struct {
	Game   game.Game
	Store  store.Store
	Logger *zerolog.Logger
}

// Engine runs one session of a game and checkpoints it to a store.
type Engine struct {
	game      game.Game
	store     store.Store
	playState playState
	logger    zerolog.Logger
}

func New(opts Opts) (*Engine, error) {
	if opts.Game == nil {
		return nil, errors.Wrap(game.ErrInvalidConfiguration, "engine needs a game")
	}
	if opts.Store == nil {
		return nil, errors.Wrap(game.ErrInvalidConfiguration, "engine needs a store")
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Engine{
		game:  opts.Game,
		store: opts.Store,
		logger: logger.With().
			Str(logging.SessionIDKey, opts.Game.Context().ID()).
			Str(logging.VariantKey, opts.Game.Variant().String()).
			Logger(),
	}, nil
}

func (e *Engine) ID() string {
	return e.game.Context().ID()
}

func (e *Engine) Game() game.Game {
	return e.game
}

// Start seats players, deals, and saves the first checkpoint.
func (e *Engine) Start(ctx context.Context, players []*game.Player) error {
	if e.playState != idle {
		return errors.Wrapf(game.ErrInvalidState, "session is %s", e.playState)
	}
	if err := e.game.Initialize(players); err != nil {
		return err
	}
	if err := e.game.StartGame(); err != nil {
		return err
	}

	e.playState = inProgress
	Metrics.SessionStarted(e.game.Variant())
	e.logger.Info().Int("players", len(players)).Msg("session started")

	return e.Checkpoint(ctx)
}

// Act runs one move against the game and checkpoints it if the move succeeds.
func (e *Engine) Act(ctx context.Context, move func() error) error {
	if e.playState != inProgress {
		return errors.Wrapf(game.ErrInvalidState, "session is %s", e.playState)
	}
	if err := move(); err != nil {
		return err
	}
	return e.Checkpoint(ctx)
}

// Checkpoint saves the current snapshot.
func (e *Engine) Checkpoint(ctx context.Context) error {
	s, err := e.game.Snapshot()
	if err != nil {
		return err
	}
	if err := e.store.Save(ctx, s); err != nil {
		return errors.Wrapf(err, "checkpointing session %s", e.ID())
	}

	Metrics.SnapshotSaved(e.store.Backend())
	e.logger.Info().
		Str(logging.PhaseKey, s.Phase.String()).
		Str(logging.BackendKey, e.store.Backend()).
		Msg("checkpoint saved")
	return nil
}

// Resume replaces the game with the session's saved snapshot.
func (e *Engine) Resume(ctx context.Context) error {
	s, err := e.store.Load(ctx, e.ID())
	if err != nil {
		return err
	}
	if err := e.game.Restore(s); err != nil {
		return err
	}

	wasActive := e.playState == inProgress
	if s.Phase == game.GameOver {
		e.playState = finished
		if wasActive {
			Metrics.SessionDropped()
		}
	} else {
		e.playState = inProgress
		if !wasActive {
			Metrics.SessionResumed()
		}
	}

	e.logger.Info().Str(logging.PhaseKey, s.Phase.String()).Msg("session resumed")
	return nil
}

// Finish collects the result, ends the game and saves the final checkpoint.
func (e *Engine) Finish(ctx context.Context) (game.Result, error) {
	if e.playState != inProgress {
		return game.Result{}, errors.Wrapf(game.ErrInvalidState, "session is %s", e.playState)
	}
	if !e.game.IsGameOver() {
		return game.Result{}, errors.Wrap(game.ErrInvalidState, "game is not over")
	}

	result := e.game.GetGameResult()
	if err := e.game.EndGame(); err != nil {
		return game.Result{}, err
	}

	e.playState = finished
	Metrics.SessionFinished(e.game.Variant())
	e.logger.Info().Int("winners", len(result.Winners)).Msg("session finished")

	return result, e.Checkpoint(ctx)
}

// Discard deletes the session's snapshot.
func (e *Engine) Discard(ctx context.Context) error {
	if err := e.store.Delete(ctx, e.ID()); err != nil {
		return err
	}
	if e.playState == inProgress {
		Metrics.SessionDropped()
	}
	e.playState = idle

	e.logger.Info().Msg("session discarded")
	return nil
}

// Load builds an engine for a saved session, taking the variant from the
// snapshot.
func Load(ctx context.Context, st store.Store, id string, options *game.Options, src rand.Source, logger *zerolog.Logger) (*Engine, error) {
	s, err := st.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := NewGame(s.Variant, options, src, WithID(id), WithLogger(logger))
	if err != nil {
		return nil, err
	}
	e, err := New(Opts{Game: g, Store: st, Logger: logger})
	if err != nil {
		return nil, err
	}
	if err := e.Resume(ctx); err != nil {
		return nil, err
	}
	return e, nil
}
