package blackjack

import (
	"testing"

	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	utils "github.com/minaorangina/cardtable/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// table seats one punter per hand, then the dealer holding dealerHand.
func table(dealerHand []game.Card, hands ...[]game.Card) (*game.Context, []*game.Player) {
	ctx := game.NewContext("t", game.Blackjack)
	players := []*game.Player{}
	for i, hand := range hands {
		p := game.NewPlayerWithID(string(rune('a'+i)), "Player")
		for _, card := range hand {
			p.AddCard(card, true)
		}
		players = append(players, p)
	}
	dealer := game.NewPlayerWithID("dealer", "Dealer")
	for i, card := range dealerHand {
		dealer.AddCard(card, i == 0)
	}
	players = append(players, dealer)
	ctx.SetPlayers(players)
	return ctx, players
}

func ids(players []*game.Player) []string {
	out := []string{}
	for _, p := range players {
		out = append(out, p.ID())
	}
	return out
}

func TestRulesBounds(t *testing.T) {
	r := NewRules()
	utils.AssertEqual(t, r.MinPlayers(), 1)
	utils.AssertEqual(t, r.MaxPlayers(), 7)
	utils.AssertEqual(t, r.InitialHandSize(), 2)
}

func TestMovesAreNeverValid(t *testing.T) {
	ctx, players := table(cards(deck.Ten, deck.Seven), cards(deck.Two, deck.Three))
	r := NewRules()
	utils.AssertFalse(t, r.IsValidMove(players[0], c(deck.Two, deck.Clubs), ctx))
	utils.AssertFalse(t, r.IsValidPlay(players[0], players[0].Hand(), ctx))
}

func TestCanPlayerAct(t *testing.T) {
	r := NewRules()

	t.Run("current punter under 21", func(t *testing.T) {
		ctx, players := table(cards(deck.Ten, deck.Seven), cards(deck.Two, deck.Three), cards(deck.Four, deck.Five))
		utils.AssertTrue(t, r.CanPlayerAct(players[0], ctx))
		utils.AssertFalse(t, r.CanPlayerAct(players[1], ctx))
	})

	t.Run("busted punter", func(t *testing.T) {
		ctx, players := table(cards(deck.Ten, deck.Seven), cards(deck.King, deck.Queen, deck.Two))
		utils.AssertFalse(t, r.CanPlayerAct(players[0], ctx))
	})

	t.Run("the dealer never acts as a punter", func(t *testing.T) {
		ctx, players := table(cards(deck.Ten, deck.Six), cards(deck.Two, deck.Three))
		require.NoError(t, ctx.SetCurrentPlayer(players[1]))
		utils.AssertFalse(t, r.CanPlayerAct(players[1], ctx))
	})

	t.Run("an empty hand is not a valid turn", func(t *testing.T) {
		ctx, players := table(cards(deck.Ten, deck.Six), nil)
		utils.AssertFalse(t, r.IsValidTurn(players[0], ctx))
	})
}

func TestCanTransitionState(t *testing.T) {
	r := NewRules()
	ctx := game.NewContext("t", game.Blackjack)
	utils.AssertTrue(t, r.CanTransitionState(game.Setup, game.Dealing, ctx))
	utils.AssertTrue(t, r.CanTransitionState(game.Dealing, game.Playing, ctx))
	utils.AssertTrue(t, r.CanTransitionState(game.Playing, game.GameOver, ctx))
	utils.AssertFalse(t, r.CanTransitionState(game.Scoring, game.Playing, ctx))
	utils.AssertFalse(t, r.CanTransitionState(game.Playing, game.Playing, ctx))
}

func TestDetermineWinners(t *testing.T) {
	r := NewRules()

	tests := []struct {
		name     string
		dealer   []game.Card
		hands    [][]game.Card
		winners  []string
		outcomes []Outcome
	}{
		{
			name:     "bust players are excluded whatever the dealer holds",
			dealer:   cards(deck.Ten, deck.Six, deck.Nine),
			hands:    [][]game.Card{cards(deck.King, deck.Queen, deck.Two)},
			winners:  []string{},
			outcomes: []Outcome{Bust},
		},
		{
			name:     "five-card charlie beats a dealer natural",
			dealer:   cards(deck.Ace, deck.King),
			hands:    [][]game.Card{cards(deck.Two, deck.Two, deck.Two, deck.Two, deck.Two), cards(deck.Ten, deck.Nine)},
			winners:  []string{"a"},
			outcomes: []Outcome{Win, Loss},
		},
		{
			name:     "natural against natural is a push",
			dealer:   cards(deck.Ace, deck.King),
			hands:    [][]game.Card{cards(deck.Ace, deck.King)},
			winners:  []string{},
			outcomes: []Outcome{Push},
		},
		{
			name:     "regular 21 loses to a dealer natural",
			dealer:   cards(deck.Ace, deck.King),
			hands:    [][]game.Card{cards(deck.Seven, deck.Nine, deck.Five)},
			winners:  []string{},
			outcomes: []Outcome{Loss},
		},
		{
			name:     "natural beats a regular dealer 21",
			dealer:   cards(deck.Seven, deck.Four, deck.Jack),
			hands:    [][]game.Card{cards(deck.Ace, deck.Queen)},
			winners:  []string{"a"},
			outcomes: []Outcome{Win},
		},
		{
			name:   "precedence with a dealer on 19",
			dealer: cards(deck.Ten, deck.Nine),
			hands: [][]game.Card{
				cards(deck.Two, deck.Two, deck.Two, deck.Two, deck.Two),
				cards(deck.Ace, deck.King),
				cards(deck.Seven, deck.Nine, deck.Five),
				cards(deck.Ten, deck.Nine),
				cards(deck.Ten, deck.Eight),
			},
			winners:  []string{"a", "b", "c"},
			outcomes: []Outcome{Win, Win, Win, Push, Loss},
		},
		{
			name:   "dealer on 17",
			dealer: cards(deck.Ten, deck.Seven),
			hands: [][]game.Card{
				cards(deck.Ace, deck.King),
				cards(deck.Seven, deck.Nine, deck.Five),
				cards(deck.Ten, deck.Seven),
				cards(deck.Ace, deck.Jack),
			},
			winners:  []string{"a", "b", "d"},
			outcomes: []Outcome{Win, Win, Push, Win},
		},
		{
			name:   "dealer bust pays every standing punter",
			dealer: cards(deck.Ten, deck.Six, deck.King),
			hands: [][]game.Card{
				cards(deck.Two, deck.Three),
				cards(deck.King, deck.Queen, deck.Five),
			},
			winners:  []string{"a"},
			outcomes: []Outcome{Win, Bust},
		},
		{
			name:     "house sweep",
			dealer:   cards(deck.Ten, deck.Eight),
			hands:    [][]game.Card{cards(deck.King, deck.Queen, deck.Two), cards(deck.Ten, deck.Five, deck.Nine)},
			winners:  []string{},
			outcomes: []Outcome{Bust, Bust},
		},
		{
			name:     "two charlies compare totals",
			dealer:   cards(deck.Two, deck.Two, deck.Three, deck.Three, deck.Four),
			hands:    [][]game.Card{cards(deck.Two, deck.Three, deck.Four, deck.Five, deck.Six), cards(deck.Two, deck.Two, deck.Two, deck.Two, deck.Three), cards(deck.Two, deck.Two, deck.Three, deck.Three, deck.Four)},
			winners:  []string{"a"},
			outcomes: []Outcome{Win, Loss, Push},
		},
		{
			name:     "a dealer charlie beats an ordinary 20",
			dealer:   cards(deck.Two, deck.Two, deck.Three, deck.Three, deck.Four),
			hands:    [][]game.Card{cards(deck.Ten, deck.King)},
			winners:  []string{},
			outcomes: []Outcome{Loss},
		},
		{
			name:     "a natural still beats a dealer charlie",
			dealer:   cards(deck.Two, deck.Two, deck.Three, deck.Three, deck.Four),
			hands:    [][]game.Card{cards(deck.Ace, deck.King)},
			winners:  []string{"a"},
			outcomes: []Outcome{Win},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, players := table(tt.dealer, tt.hands...)

			winners := r.DetermineWinners(ctx)

			assert.Equal(t, tt.winners, ids(winners))
			for i, want := range tt.outcomes {
				if got := r.Settle(players[i], ctx); got != want {
					utils.TableFailureMessage(t, players[i].ID(), got, want)
				}
			}
			for _, w := range winners {
				assert.NotEqual(t, "dealer", w.ID())
			}
		})
	}
}

func TestIsGameOver(t *testing.T) {
	r := NewRules()

	t.Run("no players", func(t *testing.T) {
		utils.AssertTrue(t, r.IsGameOver(game.NewContext("t", game.Blackjack)))
	})

	t.Run("every punter bust ends the game without the dealer drawing", func(t *testing.T) {
		ctx, _ := table(cards(deck.Two, deck.Three), cards(deck.King, deck.Queen, deck.Two), cards(deck.Nine, deck.Eight, deck.Seven))
		utils.AssertTrue(t, r.IsGameOver(ctx))
	})

	t.Run("dealer stands on exactly 17", func(t *testing.T) {
		ctx, _ := table(cards(deck.Ten, deck.Seven), cards(deck.Two, deck.Three))
		utils.AssertTrue(t, r.IsGameOver(ctx))

		ctx, _ = table(cards(deck.Two, deck.Five, deck.Four, deck.Six), cards(deck.Two, deck.Three))
		utils.AssertTrue(t, r.IsGameOver(ctx))
	})

	t.Run("dealer on 16 keeps playing", func(t *testing.T) {
		ctx, _ := table(cards(deck.Ten, deck.Six), cards(deck.Two, deck.Three))
		utils.AssertFalse(t, r.IsGameOver(ctx))
	})

	t.Run("dealer bust", func(t *testing.T) {
		ctx, _ := table(cards(deck.Ten, deck.Six, deck.Nine), cards(deck.Two, deck.Three))
		utils.AssertTrue(t, r.IsGameOver(ctx))
	})

	t.Run("face-down cards still count", func(t *testing.T) {
		ctx, players := table(cards(deck.Ten, deck.Seven), cards(deck.Two, deck.Three))
		dealer := players[len(players)-1]
		utils.AssertFalse(t, dealer.IsFaceUp(1))
		utils.AssertTrue(t, r.IsGameOver(ctx))
		utils.AssertEqual(t, r.CalculateScore(dealer, ctx), 17)
	})
}

func TestOutcomeString(t *testing.T) {
	utils.AssertEqual(t, Win.String(), "Win")
	utils.AssertEqual(t, Bust.String(), "Bust")
	utils.AssertEqual(t, Outcome(-1).String(), "Unknown")
	utils.AssertEqual(t, Outcome(5).String(), "Unknown")
}
