package main

import (
	"context"

	"github.com/minaorangina/cardtable/baccarat"
	"github.com/minaorangina/cardtable/blackjack"
	"github.com/minaorangina/cardtable/engine"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/poker"
	"github.com/minaorangina/cardtable/uno"
	"github.com/pkg/errors"
)

const maxTurns = 2000

var ErrStalled = errors.New("game did not finish")

// autoplay plays the session to the end of its Playing phase, one
// checkpointed move at a time.
func autoplay(ctx context.Context, e *engine.Engine) error {
	switch g := e.Game().(type) {
	case *blackjack.Game:
		return playBlackjack(ctx, e, g)
	case *uno.Game:
		return playUno(ctx, e, g)
	case *poker.Game:
		return playPoker(ctx, e, g)
	case *baccarat.Game:
		return playBaccarat(ctx, e, g)
	}
	return errors.Errorf("no strategy for %s", e.Game().Variant())
}

func playing(g game.Game) bool {
	return g.Context().Phase() == game.Playing
}

// Punters hit below the dealer's stand value.
func playBlackjack(ctx context.Context, e *engine.Engine, g *blackjack.Game) error {
	for turn := 0; playing(g); turn++ {
		if turn >= maxTurns {
			return ErrStalled
		}
		p := g.Context().CurrentPlayer()
		if p == g.Dealer() {
			return e.Act(ctx, func() error {
				_, err := g.PlayDealer()
				return err
			})
		}

		move := func() error { return g.Stand(p) }
		if g.Evaluate(p, game.House()).Value < blackjack.DealerStandValue {
			move = func() error {
				_, err := g.Hit(p)
				return err
			}
		}
		if err := e.Act(ctx, move); err != nil {
			return err
		}
	}
	return nil
}

// Plays the first legal card, naming the colour held most, or draws.
func playUno(ctx context.Context, e *engine.Engine, g *uno.Game) error {
	for turn := 0; playing(g); turn++ {
		if turn >= maxTurns {
			return ErrStalled
		}
		p := g.Context().CurrentPlayer()
		playable := g.PlayableCards(p)

		var move func() error
		if len(playable) == 0 {
			move = func() error {
				_, err := g.DrawCard(p)
				return err
			}
		} else {
			move = func() error { return g.PlayCard(p, playable[0], favouriteColor(p)) }
		}
		if err := e.Act(ctx, move); err != nil {
			return err
		}
	}
	return nil
}

func favouriteColor(p *game.Player) uno.Color {
	counts := map[uno.Color]int{}
	best := uno.Red
	for _, c := range p.Hand() {
		card, ok := c.(uno.Card)
		if !ok || card.IsWild() {
			continue
		}
		counts[card.Color()]++
		if counts[card.Color()] > counts[best] {
			best = card.Color()
		}
	}
	return best
}

// Everyone checks every street through to showdown.
func playPoker(ctx context.Context, e *engine.Engine, g *poker.Game) error {
	for street := 0; playing(g); street++ {
		if street > int(poker.Showdown) {
			return ErrStalled
		}
		for range poker.Live(g.Context()) {
			p := g.Context().CurrentPlayer()
			if err := e.Act(ctx, func() error { return g.Check(p) }); err != nil {
				return err
			}
		}
		if err := e.Act(ctx, func() error {
			_, err := g.NextStreet()
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

func playBaccarat(ctx context.Context, e *engine.Engine, g *baccarat.Game) error {
	if !playing(g) {
		return nil
	}
	return e.Act(ctx, func() error {
		_, err := g.Play()
		return err
	})
}
