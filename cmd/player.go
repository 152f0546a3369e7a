package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/hud"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/report"
	"github.com/pable/go-poker-hud/internal/storage"
)

var playerSection string

// playerCmd is the cobra command for the full HUD of one or more players.
var playerCmd = &cobra.Command{
	Use:   "player [<name>...]",
	Short: "Full HUD statistics for one or more players",
	Long: `Recompute every statistic for the named players from the stored hands and
print them section by section. Without arguments the configured hero is used.`,
	Args: cobra.ArbitraryArgs,
	RunE: runPlayer,
}

func init() {
	playerCmd.Flags().StringVar(&playerSection, "section", "", "only print this section (e.g. \"Flop\", \"FTS River BXB\")")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		if cfg.Hero == "" {
			return fmt.Errorf("no player given and no hero configured")
		}
		names = []string{cfg.Hero}
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	var found []*model.PlayerStatistics
	for _, name := range names {
		ps, err := playerStats(cmd.Context(), db, name)
		if err != nil {
			return err
		}
		if ps == nil {
			fmt.Fprintf(os.Stderr, "No hands found for %s\n", name)
			continue
		}
		found = append(found, ps)
	}
	if len(found) == 0 {
		return nil
	}

	fmt.Fprintln(os.Stdout)
	report.PrintPlayerOverview(os.Stdout, found)
	for _, ps := range found {
		printPlayer(ps, playerSection)
	}
	return nil
}

// playerStats aggregates the hands name was seated in. It returns nil when
// there are none.
func playerStats(ctx context.Context, db *storage.DB, name string) (*model.PlayerStatistics, error) {
	stats, err := loadStats(ctx, db, storage.HandFilter{Player: name})
	if err != nil {
		return nil, err
	}
	return stats[name], nil
}

func printPlayer(ps *model.PlayerStatistics, section string) {
	fmt.Fprintf(os.Stdout, "\n=== %s (%d hands) ===\n", ps.Player, ps.HandsPlayed)
	if section != "" {
		_, bySection := hud.Sections(ps)
		entries, ok := bySection[section]
		if !ok {
			fmt.Fprintf(os.Stderr, "No section %q\n", section)
			return
		}
		report.PrintSection(os.Stdout, entries)
		return
	}
	report.PrintHUD(os.Stdout, ps)

	fmt.Fprintf(os.Stdout, "\n--- Best Bluff Size by Street ---\n")
	report.PrintBestFoldSizes(os.Stdout, ps)
	fmt.Fprintf(os.Stdout, "\n--- River Showdown Composition ---\n")
	report.PrintComposition(os.Stdout, ps)
}
