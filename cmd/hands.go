package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/report"
	"github.com/pable/go-poker-hud/internal/storage"
)

var (
	handsPlayer string
	handsLimit  int
)

var handsCmd = &cobra.Command{
	Use:   "hands",
	Short: "List stored hands",
	Args:  cobra.NoArgs,
	RunE:  runHands,
}

func init() {
	handsCmd.Flags().StringVar(&handsPlayer, "player", "", "only hands where this player held a seat")
	handsCmd.Flags().IntVar(&handsLimit, "last", 50, "only the N most recent hands (0 for all)")
}

func runHands(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	hands, err := db.ListHands(storage.HandFilter{Player: handsPlayer, Limit: handsLimit})
	if err != nil {
		return fmt.Errorf("list hands: %w", err)
	}
	if len(hands) == 0 {
		fmt.Fprintln(os.Stdout, "No hands stored yet. Run 'pokerhud import <file>' to add some.")
		return nil
	}
	report.PrintHandList(os.Stdout, hands)
	return nil
}
