package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/report"
	"github.com/pable/go-poker-hud/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Query stored hands, seats and actions with SQL",
	Long: `Query the hand store directly and print the rows as a table. NULL cells print as NULL.

Every hand is one row in hands, keyed by its PokerStars hand number (hand_history_id).
Seats live in hand_players and join to players by player_id; shown or dealt hole
cards live in hole_cards by player name. actions holds the full action log in
seq order, with the pot, the amount owed and the bet faced stamped when the action
was recorded. imports lists every import run, and statistics holds the last saved
snapshot of per-player counters (export --save).

Tables:
  hands         hand_history_id, tournament_id, played_at, big_blind, board, pot,
                preflop/flop/turn/river_aggressor, first_raiser, import_id, ...
  hand_players  hand_id, player_id, seat, stack, position, bounty
  players       id, name
  hole_cards    hand_id, player, cards
  actions       hand_id, seq, street, player, kind, amount, raise_to, all_in,
                pot_before, to_call, bet_faced, pot_when_bet_made, ...
  imports       id, source, started_at, finished_at, parsed, inserted, skipped
  statistics    player, hands_played, payload, updated_at

Examples:
  pokerhud sql "SELECT kind, COUNT(1) FROM actions WHERE street = 'River' GROUP BY kind"
  pokerhud sql "SELECT p.name, hp.position FROM hand_players hp JOIN players p ON p.id = hp.player_id LIMIT 10"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "(no rows)")
		return nil
	}
	report.PrintRows(os.Stdout, cols, rows)
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
