package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/minaorangina/cardtable/baccarat"
	"github.com/minaorangina/cardtable/blackjack"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/poker"
	"github.com/minaorangina/cardtable/uno"
	"github.com/pterm/pterm"
)

// pipCard is any card built on the French-suited set.
type pipCard interface {
	Short() string
	Suit() deck.Suit
}

// cardLabel shows French-suited cards by rank and pip, red suits in red.
func cardLabel(c game.Card) string {
	pc, ok := c.(pipCard)
	if !ok {
		return c.String()
	}
	if pc.Suit().IsRed() {
		return pterm.LightRed(pc.Short())
	}
	return pc.Short()
}

func cardNames(cards []game.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, cardLabel(c))
	}
	return strings.Join(names, ", ")
}

func stateText(s game.PlayerState) string {
	switch s {
	case game.Folded, game.Lost:
		return pterm.LightRed(s.String())
	case game.Won:
		return pterm.LightGreen(s.String())
	case game.Active:
		return pterm.LightCyan(s.String())
	}
	return s.String()
}

// printTable shows every seat as the house sees it.
func printTable(g game.Game) {
	ctx := g.Context()
	pterm.DefaultSection.Printfln("%s: %s", g.Variant(), ctx.Phase())

	data := pterm.TableData{{"Seat", "State", "Hand", "Value"}}
	for _, p := range ctx.Players() {
		rank := game.EvaluateFor(g.Evaluator(), p, game.House(), ctx)
		data = append(data, []string{p.Name(), stateText(p.State()), cardNames(p.VisibleTo(game.House())), rank.Description})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	switch v := g.(type) {
	case *poker.Game:
		pterm.Info.Printfln("Board (%s): %s", v.Street(), cardNames(v.Board()))
	case *uno.Game:
		if top, ok := v.TopCard(); ok {
			pterm.Info.Printfln("Top card: %s, playing %s", top, v.CurrentColor())
		}
	}
}

// seatName names a player ID from the table, falling back to the ID itself.
func seatName(ctx *game.Context, id string) string {
	if p := ctx.FindPlayer(id); p != nil {
		return p.Name()
	}
	return id
}

func printResult(g game.Game, result game.Result) {
	names := map[string]string{}
	for id := range result.Scores {
		names[id] = seatName(g.Context(), id)
	}

	winners := []string{}
	for _, p := range result.Winners {
		winners = append(winners, pterm.LightCyan(p.Name()))
	}
	lines := []string{}
	if len(winners) == 0 {
		lines = append(lines, "No winner")
	} else {
		lines = append(lines, "Won by "+strings.Join(winners, ", "))
	}

	ids := make([]string, 0, len(result.Scores))
	for id := range result.Scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return names[ids[i]] < names[ids[j]] })
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("%s scored %d", names[id], result.Scores[id]))
	}

	switch d := result.Detail.(type) {
	case blackjack.ResultDetail:
		lines = append(lines, fmt.Sprintf("Dealer finished on %d", d.DealerTotal))
		for _, id := range ids {
			if o, ok := d.Outcomes[id]; ok {
				lines = append(lines, fmt.Sprintf("%s: %s", names[id], o))
			}
		}
		if d.HouseWins {
			lines = append(lines, pterm.LightRed("The house wins"))
		}
	case uno.ResultDetail:
		for id, pts := range d.WinnerPoints {
			lines = append(lines, fmt.Sprintf("%s collects %d points", names[id], pts))
		}
	case poker.ResultDetail:
		lines = append(lines, "Board: "+strings.Join(d.Board, " "))
		for _, id := range ids {
			if hand, ok := d.Hands[id]; ok {
				lines = append(lines, fmt.Sprintf("%s shows %s", names[id], hand))
			}
		}
	case baccarat.ResultDetail:
		lines = append(lines, fmt.Sprintf("Player %d, Banker %d", d.PlayerTotal, d.BankerTotal))
		if d.Tie {
			lines = append(lines, "Tie")
		}
	}

	pterm.DefaultBox.WithTitle(pterm.LightGreen("|RESULT|")).WithTitleTopCenter().Println(strings.Join(lines, "\n"))
}
