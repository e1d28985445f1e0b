package game

import (
	"testing"

	utils "github.com/minaorangina/cardtable/internal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionState(t *testing.T) {
	rules := BaseRules{Min: 1, Max: 4}
	ctx := NewContext("s", Poker)

	allowed := map[[2]Phase]bool{
		{Setup, Dealing}:    true,
		{Dealing, Betting}:  true,
		{Dealing, Playing}:  true,
		{Betting, Playing}:  true,
		{Playing, Scoring}:  true,
		{Scoring, GameOver}: true,
	}

	phases := []Phase{Setup, Dealing, Betting, Playing, Scoring, GameOver}
	for _, from := range phases {
		for _, to := range phases {
			want := allowed[[2]Phase{from, to}]
			got := rules.CanTransitionState(from, to, ctx)
			if got != want {
				utils.TableFailureMessage(t, from.String()+" -> "+to.String(), got, want)
			}
		}
	}
}

func TestBaseRules(t *testing.T) {
	ctx := NewContext("s", Poker)
	players := seats("p1", "p2")
	ctx.SetPlayers(players)
	rules := BaseRules{Min: 2, Max: 3, HandSize: 5}

	t.Run("bounds", func(t *testing.T) {
		utils.AssertEqual(t, rules.MinPlayers(), 2)
		utils.AssertEqual(t, rules.MaxPlayers(), 3)
		utils.AssertEqual(t, rules.InitialHandSize(), 5)
		utils.AssertFalse(t, rules.AllowsPlayerCount(1))
		utils.AssertTrue(t, rules.AllowsPlayerCount(3))
		utils.AssertFalse(t, rules.AllowsPlayerCount(4))
	})

	t.Run("only the current active player can act", func(t *testing.T) {
		utils.AssertFalse(t, rules.CanPlayerAct(players[0], ctx))

		players[0].SetState(Active)
		utils.AssertTrue(t, rules.CanPlayerAct(players[0], ctx))
		utils.AssertTrue(t, rules.IsValidTurn(players[0], ctx))

		players[1].SetState(Active)
		utils.AssertFalse(t, rules.CanPlayerAct(players[1], ctx))
		utils.AssertFalse(t, rules.IsValidTurn(players[1], ctx))
	})

	t.Run("a play needs cards the player could hold", func(t *testing.T) {
		p := NewPlayer("x")
		p.AddCard(numberCard(1), true)
		utils.AssertFalse(t, rules.IsValidPlay(p, nil, ctx))
		utils.AssertTrue(t, rules.IsValidPlay(p, []Card{numberCard(1)}, ctx))
		utils.AssertFalse(t, rules.IsValidPlay(p, []Card{numberCard(1), numberCard(2)}, ctx))
	})
}

func TestHighestScorers(t *testing.T) {
	ctx := NewContext("s", Poker)
	ctx.SetPlayers(seats("p1", "p2", "p3"))

	scoresOf := func(scores map[string]int) func(*Player) int {
		return func(p *Player) int { return scores[p.ID()] }
	}

	t.Run("single winner", func(t *testing.T) {
		winners := HighestScorers(ctx.Players(), scoresOf(map[string]int{"p1": 3, "p2": 9, "p3": 4}))
		assert.Len(t, winners, 1)
		utils.AssertEqual(t, winners[0].ID(), "p2")
	})

	t.Run("ties share the win", func(t *testing.T) {
		winners := HighestScorers(ctx.Players(), scoresOf(map[string]int{"p1": 9, "p2": 2, "p3": 9}))
		assert.Len(t, winners, 2)
		utils.AssertEqual(t, winners[0].ID(), "p1")
		utils.AssertEqual(t, winners[1].ID(), "p3")
	})

	t.Run("negative scores still pick the best", func(t *testing.T) {
		winners := HighestScorers(ctx.Players(), scoresOf(map[string]int{"p1": -5, "p2": -1, "p3": -9}))
		assert.Len(t, winners, 1)
		utils.AssertEqual(t, winners[0].ID(), "p2")
	})

	t.Run("only candidates are considered", func(t *testing.T) {
		t.Log("Given p2 has the best score but is not a candidate")
		candidates := []*Player{ctx.Player(0), ctx.Player(2)}

		winners := HighestScorers(candidates, scoresOf(map[string]int{"p1": 3, "p2": 9, "p3": 4}))

		t.Log("Then the best of the rest wins")
		assert.Len(t, winners, 1)
		utils.AssertEqual(t, winners[0].ID(), "p3")
	})

	t.Run("no candidates means no winners", func(t *testing.T) {
		assert.Empty(t, HighestScorers(nil, scoresOf(nil)))
	})

	t.Run("default winners use the rules' scores", func(t *testing.T) {
		ctx := NewContext("s", Poker)
		ctx.SetPlayers(seats("p1", "p2", "p3"))
		ctx.Player(0).AddCard(numberCard(4), true)
		ctx.Player(1).AddCard(numberCard(9), true)
		ctx.Player(2).AddCard(numberCard(5), true)
		ctx.Player(2).AddCard(numberCard(4), true)

		winners := DefaultWinners(highCardRules{}, ctx)

		assert.Len(t, winners, 2)
		utils.AssertEqual(t, winners[0].ID(), "p2")
		utils.AssertEqual(t, winners[1].ID(), "p3")
	})

	t.Run("losers are everyone else", func(t *testing.T) {
		losers := Losers(ctx, []*Player{ctx.Player(1)})
		assert.Len(t, losers, 2)
		utils.AssertEqual(t, losers[0].ID(), "p1")
		utils.AssertEqual(t, losers[1].ID(), "p3")
	})
}

func TestHandRank(t *testing.T) {
	low := HandRank{Value: 10, Description: "low"}
	high := HandRank{Value: 20, Description: "high"}
	same := HandRank{Value: 20, Description: "other text"}

	utils.AssertTrue(t, high.Beats(low))
	utils.AssertTrue(t, low.LosesTo(high))
	utils.AssertTrue(t, high.AtLeast(same))
	utils.AssertTrue(t, high.AtMost(same))
	utils.AssertFalse(t, high.Beats(same))
	utils.AssertFalse(t, HasCards(nil))
	utils.AssertFalse(t, HasCards([]Card{numberCard(1), nil}))
	utils.AssertTrue(t, HasCards([]Card{numberCard(1)}))
}
