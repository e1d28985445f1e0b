package uno

import (
	"github.com/minaorangina/cardtable/game"
)

// EffectHandler applies an action card just after it is discarded, while the
// turn still belongs to the player who played it. The caller then passes the
// turn on as usual.
type EffectHandler struct {
	draw func(p *game.Player, n int) error
}

func NewEffectHandler(draw func(p *game.Player, n int) error) EffectHandler {
	return EffectHandler{draw: draw}
}

func (h EffectHandler) HandleCardPlayed(c Card, ctx *game.Context) error {
	switch c.Action() {
	case Skip:
		ctx.AdvanceNextPlayer()
	case Reverse:
		ctx.ReverseDirection()
		// with two seats a reverse hands the turn straight back
		if ctx.PlayerCount() == 2 {
			ctx.AdvanceNextPlayer()
		}
	case DrawTwo:
		return h.penalise(ctx, 2)
	case DrawFour:
		return h.penalise(ctx, 4)
	}
	return nil
}

// penalise makes the next player draw n cards and lose their turn.
func (h EffectHandler) penalise(ctx *game.Context, n int) error {
	return h.draw(ctx.AdvanceNextPlayer(), n)
}
