package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/minaorangina/cardtable/config"
	"github.com/minaorangina/cardtable/engine"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/logging"
	"github.com/pterm/pterm"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	resumeID := flag.String("resume", "", "id of a saved session to play on")
	flag.Parse()

	if err := run(context.Background(), *configPath, *resumeID); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, resumeID string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.New("cli", os.Stderr, cfg.LogLevel)

	opts, err := cfg.TableOptions()
	if err != nil {
		return err
	}
	logger.Debug().
		Int("min_bet", opts.MinBet().Value()).
		Int("max_bet", opts.MaxBet().Value()).
		Msg("table limits")
	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}
	if closer, ok := st.(io.Closer); ok {
		defer closer.Close()
	}

	var e *engine.Engine
	if resumeID != "" {
		e, err = engine.Load(ctx, st, resumeID, &opts, cfg.Source(), &logger)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("Resumed session %s", e.ID())
	} else {
		g, err := engine.NewGame(cfg.GameVariant(), &opts, cfg.Source(), engine.WithLogger(&logger))
		if err != nil {
			return err
		}
		e, err = engine.New(engine.Opts{Game: g, Store: st, Logger: &logger})
		if err != nil {
			return err
		}
		if err := e.Start(ctx, seat(cfg.SeatNames())); err != nil {
			return err
		}
		pterm.Info.Printfln("Started %s session %s", g.Variant(), e.ID())
	}

	printTable(e.Game())
	if err := autoplay(ctx, e); err != nil {
		return err
	}
	printTable(e.Game())

	result, err := e.Finish(ctx)
	if err != nil {
		return err
	}
	printResult(e.Game(), result)
	return nil
}

func seat(names []string) []*game.Player {
	players := make([]*game.Player, 0, len(names))
	for _, name := range names {
		players = append(players, game.NewPlayer(name))
	}
	return players
}
