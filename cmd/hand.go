package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/report"
	"github.com/pable/go-poker-hud/internal/storage"
)

var handFocus string

var handCmd = &cobra.Command{
	Use:   "hand <hand-id>",
	Short: "Show a stored hand with its derived betting context",
	Args:  cobra.ExactArgs(1),
	RunE:  runHand,
}

func init() {
	handCmd.Flags().StringVar(&handFocus, "player", "", "highlight a player")
}

func runHand(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()
	return showHand(db, args[0], handFocus)
}

func showHand(db *storage.DB, id, focus string) error {
	h, found, err := db.GetHand(id)
	if err != nil {
		return fmt.Errorf("get hand: %w", err)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "No hand found with id %q\n", id)
		return nil
	}
	if focus == "" {
		focus = h.Hero
	}
	report.PrintHandSummary(os.Stdout, h)
	report.PrintSeatTable(os.Stdout, h, focus)
	fmt.Fprintln(os.Stdout)
	report.PrintActionTable(os.Stdout, h, focus)
	fmt.Fprintf(os.Stdout, "\nAggressors: preflop %s | flop %s | turn %s | river %s\n",
		orDash(h.PreflopAggressor), orDash(h.FlopAggressor), orDash(h.TurnAggressor), orDash(h.RiverAggressor))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
