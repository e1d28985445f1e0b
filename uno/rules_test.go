package uno

import (
	"testing"

	"github.com/minaorangina/cardtable/game"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/stretchr/testify/assert"
)

type foreignCard struct{}

func (foreignCard) String() string              { return "foreign" }
func (foreignCard) Code() string                { return "??" }
func (foreignCard) Value(ctx *game.Context) int { return 0 }

func seats(n int) (*game.Context, []*game.Player) {
	ctx := game.NewContext("t", game.Uno)
	players := []*game.Player{}
	for i := 0; i < n; i++ {
		players = append(players, game.NewPlayerWithID(string(rune('a'+i)), "Player"))
	}
	ctx.SetPlayers(players)
	return ctx, players
}

func TestNewRulesBounds(t *testing.T) {
	r := NewRules(1, 12, 0)
	utils.AssertEqual(t, r.MinPlayers(), 2)
	utils.AssertEqual(t, r.MaxPlayers(), 10)
	utils.AssertEqual(t, r.InitialHandSize(), 7)

	r = NewRules(3, 4, 5)
	utils.AssertEqual(t, r.MinPlayers(), 3)
	utils.AssertEqual(t, r.MaxPlayers(), 4)
	utils.AssertEqual(t, r.InitialHandSize(), 5)
}

func TestIsValidMove(t *testing.T) {
	tests := []struct {
		name   string
		top    Card
		active Color
		card   game.Card
		want   bool
	}{
		{"same colour", NumberCard(Red, 3), Red, NumberCard(Red, 9), true},
		{"same number", NumberCard(Red, 3), Red, NumberCard(Blue, 3), true},
		{"same action", ActionCard(Red, Skip), Red, ActionCard(Green, Skip), true},
		{"nothing in common", NumberCard(Red, 3), Red, NumberCard(Blue, 4), false},
		{"different actions", ActionCard(Red, Skip), Red, ActionCard(Green, Reverse), false},
		{"wild on anything", NumberCard(Red, 3), Red, WildCard(), true},
		{"draw four on anything", ActionCard(Red, DrawTwo), Red, WildDrawFour(), true},
		{"the chosen colour after a wild", WildCard(), Green, NumberCard(Green, 1), true},
		{"another colour after a wild", WildCard(), Green, NumberCard(Blue, 1), false},
		{"an undecided wild takes anything", WildCard(), Wild, NumberCard(Blue, 1), true},
		{"a number does not match an action", ActionCard(Red, Skip), Blue, NumberCard(Yellow, 0), false},
		{"not an uno card", NumberCard(Red, 3), Red, foreignCard{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, players := seats(2)
			r := NewRules(2, 10, 7)
			ctx.Discard(tt.top)
			r.setColor(tt.active)

			if got := r.IsValidMove(players[0], tt.card, ctx); got != tt.want {
				utils.TableFailureMessage(t, tt.name, got, tt.want)
			}
		})
	}

	t.Run("anything goes on an empty pile", func(t *testing.T) {
		ctx, players := seats(2)
		r := NewRules(2, 10, 7)
		r.setColor(Red)
		utils.AssertTrue(t, r.IsValidMove(players[0], NumberCard(Blue, 4), ctx))
	})
}

func TestIsValidPlay(t *testing.T) {
	ctx, players := seats(2)
	r := NewRules(2, 10, 7)
	ctx.Discard(NumberCard(Red, 3))
	r.setColor(Red)

	utils.AssertTrue(t, r.IsValidPlay(players[0], []game.Card{NumberCard(Red, 5)}, ctx))
	utils.AssertFalse(t, r.IsValidPlay(players[0], []game.Card{NumberCard(Red, 5), NumberCard(Red, 6)}, ctx))
	utils.AssertFalse(t, r.IsValidPlay(players[0], nil, ctx))
}

func TestScoringAndWinners(t *testing.T) {
	ctx, players := seats(3)
	r := NewRules(2, 10, 7)
	players[0].AddCard(NumberCard(Red, 5), false)
	players[0].AddCard(WildCard(), false)
	players[2].AddCard(ActionCard(Blue, Skip), false)

	utils.AssertEqual(t, r.CalculateScore(players[0], ctx), 55)
	utils.AssertEqual(t, r.CalculateScore(players[1], ctx), 0)
	assert.Equal(t, []*game.Player{players[1]}, r.DetermineWinners(ctx))

	t.Run("the game is not over before the deal", func(t *testing.T) {
		utils.AssertEqual(t, ctx.Phase(), game.Setup)
		utils.AssertFalse(t, r.IsGameOver(ctx))
	})
}
