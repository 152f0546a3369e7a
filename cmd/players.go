package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/aggregator"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/report"
	"github.com/pable/go-poker-hud/internal/storage"
)

var playersMinHands int

// playersCmd prints the headline statistics of every stored player.
var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Overview of every stored player",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().IntVar(&playersMinHands, "min-hands", 1, "hide players with fewer hands")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	stats, err := loadStats(cmd.Context(), db, storage.HandFilter{})
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(os.Stdout, "No hands stored yet. Run 'pokerhud import <file>' to add some.")
		return nil
	}

	var rows []*model.PlayerStatistics
	for _, ps := range stats {
		if ps.HandsPlayed >= playersMinHands {
			rows = append(rows, ps)
		}
	}
	sortByHands(rows)
	report.PrintPlayerOverview(os.Stdout, rows)
	return nil
}

// loadStats aggregates the hands f selects.
func loadStats(ctx context.Context, db *storage.DB, f storage.HandFilter) (model.StatsByPlayer, error) {
	hands, err := db.LoadHands(f)
	if err != nil {
		return nil, fmt.Errorf("load hands: %w", err)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Debug("aggregating", "hands", len(hands), "workers", workers)
	stats, err := aggregator.AggregateParallel(ctx, hands, workers)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	return stats, nil
}

func sortByHands(rows []*model.PlayerStatistics) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].HandsPlayed != rows[j].HandsPlayed {
			return rows[i].HandsPlayed > rows[j].HandsPlayed
		}
		return rows[i].Player < rows[j].Player
	})
}
