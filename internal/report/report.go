package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-poker-hud/internal/hud"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/sizing"
	"github.com/pable/go-poker-hud/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintRows prints an ad-hoc result set with cols as the header.
func PrintRows(w io.Writer, cols []string, rows [][]string) {
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
}

// PrintHandSummary prints a one-line header for the hand.
func PrintHandSummary(w io.Writer, h *model.Hand) {
	board := "—"
	if len(h.Board) > 0 {
		board = strings.Join(h.Board, " ")
	}
	fmt.Fprintf(w, "\nHand #%s  |  Tournament %s  |  %s  |  Table %s (%d-max)  |  BB %d  |  Board %s  |  Pot %d\n\n",
		h.ID, h.TournamentID, h.Timestamp, h.TableID, h.MaxSeats, h.BigBlind, board, h.Pot)
}

// PrintHandList prints one row per stored hand.
func PrintHandList(w io.Writer, hands []storage.HandSummary) {
	table := newTable(w)
	table.Header("HAND", "TOURNAMENT", "PLAYED", "TABLE", "BB", "PLAYERS", "HERO", "BOARD", "POT", "PFA")
	for _, h := range hands {
		board := h.Board
		if board == "" {
			board = "—"
		}
		table.Append(
			h.ID,
			h.TournamentID,
			h.Timestamp,
			h.TableID,
			strconv.Itoa(h.BigBlind),
			strconv.Itoa(h.Players),
			h.Hero,
			board,
			strconv.Itoa(h.Pot),
			h.PreflopAggressor,
		)
	}
	table.Render()
}

// PrintSeatTable prints the seats of h with positions and known hole cards.
// If focus is non-empty, that player's row is marked with ">".
func PrintSeatTable(w io.Writer, h *model.Hand, focus string) {
	table := newTable(w)
	table.Header(" ", "SEAT", "PLAYER", "POS", "STACK", "BOUNTY", "CARDS")
	for _, s := range h.Seats {
		marker := " "
		if focus != "" && s.Name == focus {
			marker = ">"
		}
		bounty := "—"
		if s.Bounty > 0 {
			bounty = fmt.Sprintf("$%.2f", s.Bounty)
		}
		cards := h.HoleCards[s.Name]
		if cards == "" {
			cards = "—"
		}
		table.Append(
			marker,
			strconv.Itoa(s.Number),
			s.Name,
			h.Position(s.Name),
			strconv.Itoa(s.Stack),
			bounty,
			cards,
		)
	}
	table.Render()
}

// PrintActionTable prints the action log of h with the betting context
// stamped on each action.
func PrintActionTable(w io.Writer, h *model.Hand, focus string) {
	table := newTable(w)
	table.Header(" ", "#", "STREET", "PLAYER", "ACTION", "AMOUNT", "TO", "POT", "TO_CALL", "FACED", "POT@BET", "SIZE")
	for _, a := range h.Actions {
		marker := " "
		if focus != "" && a.Player == focus {
			marker = ">"
		}
		kind := a.Kind.String()
		if a.AllIn {
			kind += " (all-in)"
		}
		if a.Cards != "" {
			kind += " [" + a.Cards + "]"
		}
		raiseTo := "—"
		if a.Kind == model.ActionRaise {
			raiseTo = strconv.Itoa(a.RaiseTo)
		}
		size := "—"
		if a.BetFaced > 0 && a.PotWhenBetMade > 0 {
			size = sizing.FacedBucket(a).String()
		}
		table.Append(
			marker,
			strconv.Itoa(a.Seq),
			a.Street.String(),
			a.Player,
			kind,
			strconv.Itoa(a.Amount),
			raiseTo,
			strconv.Itoa(a.PotBefore),
			strconv.Itoa(a.ToCall),
			strconv.Itoa(a.BetFaced),
			strconv.Itoa(a.PotWhenBetMade),
			size,
		)
	}
	table.Render()
}

// overviewStats are the columns of the player overview, by display name.
var overviewStats = []struct{ header, name string }{
	{"VPIP", "VPIP (%)"},
	{"PFR", "PFR (%)"},
	{"3BET", "3Bet PF (%)"},
	{"F3B", "Fold to PF 3Bet (%)"},
	{"CB_F", "CBet Flop (%)"},
	{"FCB_F", "Fold to Flop CBet (%)"},
	{"XR_F", "Check-Raise Flop (%)"},
	{"BET_R", "Bet River (%)"},
}

// PrintPlayerOverview prints the headline statistics of each player.
func PrintPlayerOverview(w io.Writer, players []*model.PlayerStatistics) {
	headers := []any{"PLAYER", "HANDS"}
	for _, c := range overviewStats {
		headers = append(headers, c.header)
	}
	headers = append(headers, "SAMPLE")

	table := newTable(w)
	table.Header(headers...)
	for _, ps := range players {
		row := []any{ps.Player, strconv.Itoa(ps.HandsPlayed)}
		for _, c := range overviewStats {
			cnt, _ := hud.Raw(ps, c.name)
			row = append(row, shortPct(cnt))
		}
		row = append(row, sampleFlag(ps.HandsPlayed))
		table.Append(row...)
	}
	table.Render()
}

// PrintHUD prints every section of the player's HUD as its own table.
func PrintHUD(w io.Writer, ps *model.PlayerStatistics) {
	order, bySection := hud.Sections(ps)
	for _, section := range order {
		fmt.Fprintf(w, "\n--- %s ---\n", section)
		PrintSection(w, bySection[section])
	}
}

// PrintSection prints entries with their sample size and a 95% Wilson
// interval on the underlying frequency.
func PrintSection(w io.Writer, entries []hud.Entry) {
	table := newTable(w)
	table.Header("STAT", "VALUE", "N", "95% CI", "SAMPLE")
	for _, e := range entries {
		ci := "—"
		if e.Name != hud.HandsPlayed && e.Counter.Opportunities > 0 {
			lo, hi := wilsonCI(e.Counter.Actions, e.Counter.Opportunities)
			ci = fmt.Sprintf("%.0f–%.0f%%", lo*100, hi*100)
		}
		table.Append(
			e.Name,
			e.Value,
			strconv.Itoa(e.Counter.Opportunities),
			ci,
			sampleFlag(e.Counter.Opportunities),
		)
	}
	table.Render()
}

// PrintBestFoldSizes prints, per street, the bet size with the best
// estimated bluff return against the player's fold-to-bet frequencies.
func PrintBestFoldSizes(w io.Writer, ps *model.PlayerStatistics) {
	table := newTable(w)
	table.Header("STREET", "BEST_SIZE", "FOLD%", "N", "EV (POTS)")
	for _, s := range model.Postflop {
		b, ev, ok := hud.BestFoldSize(ps.FoldToBet[s])
		if !ok {
			table.Append(s.String(), "—", "—", "0", "—")
			continue
		}
		c := ps.FoldToBet[s][b]
		table.Append(
			s.String(),
			b.String(),
			fmt.Sprintf("%.1f%%", c.Pct()),
			strconv.Itoa(c.Opportunities),
			fmt.Sprintf("%+.2f", ev),
		)
	}
	table.Render()
}

// PrintComposition prints the shown-hand composition of the player's river
// bets by line and size, with the break-even bluff share for each size.
func PrintComposition(w io.Writer, ps *model.PlayerStatistics) {
	table := newTable(w)
	table.Header("LINE", "SIZE", "SHOWN", "TOP", "BLUFF_CATCHER", "AIR", "BREAK_EVEN", "VERDICT")
	rows := 0
	for l := model.LineCode(0); l < model.NumLineCodes; l++ {
		for _, b := range model.SizedBuckets {
			cell := ps.RiverShowed[l][b]
			if cell.Total == 0 {
				continue
			}
			air := model.Counter{Opportunities: cell.Total, Actions: cell.Categories[model.CategoryAir]}
			table.Append(
				l.String(),
				b.String(),
				strconv.Itoa(cell.Total),
				fmt.Sprintf("%.0f%%", cell.Share(model.CategoryTopHand)),
				fmt.Sprintf("%.0f%%", cell.Share(model.CategoryBluffCatcher)),
				fmt.Sprintf("%.0f%%", cell.Share(model.CategoryAir)),
				fmt.Sprintf("%.1f%%", sizing.MDFBreakEven[b]),
				hud.BluffVsMDF(air, b),
			)
			rows++
		}
	}
	if rows == 0 {
		fmt.Fprintln(w, "(no river bets shown down)")
		return
	}
	table.Render()
}

func shortPct(c model.Counter) string {
	if c.Opportunities == 0 {
		return "—"
	}
	return fmt.Sprintf("%.0f", c.Pct())
}

func sampleFlag(n int) string {
	switch {
	case n >= 100:
		return "OK"
	case n >= 30:
		return "LOW"
	default:
		return "VERY_LOW"
	}
}

// wilsonCI computes the 95% Wilson score confidence interval for a proportion.
// Returns (lo, hi) as fractions in [0, 1].
func wilsonCI(hits, n int) (lo, hi float64) {
	if n == 0 {
		return 0, 1
	}
	z := 1.96
	p := float64(hits) / float64(n)
	nf := float64(n)
	denom := 1 + z*z/nf
	center := (p + z*z/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf)) / denom
	return math.Max(0, center-half), math.Min(1, center+half)
}
