package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/parser"
	"github.com/pable/go-poker-hud/internal/storage"
)

var (
	importWorkers   int
	importBatchSize int
)

var importCmd = &cobra.Command{
	Use:   "import <path>...",
	Short: "Parse hand-history files and store the hands",
	Long: `Parse PokerStars hand histories and store every hand not already in the database.

Arguments may be files, directories (walked for *.txt, *.txt.gz, *.txt.zst and
*.txt.bz2) or "-" for standard input. Re-importing a file only stores hands
whose id is new.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntVar(&importWorkers, "workers", 0, "parser goroutines (default: config, then every CPU)")
	importCmd.Flags().IntVar(&importBatchSize, "batch-size", 0, "hands per insert transaction (default: config)")
}

// importTotals are the counts recorded for an import run.
type importTotals struct {
	parsed, inserted, duplicates, skipped int
	unreadable                           int
}

func runImport(cmd *cobra.Command, args []string) error {
	paths, err := parser.ExpandPaths(args)
	if err != nil {
		return fmt.Errorf("expand paths: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stdout, "No hand-history files found.")
		return nil
	}

	workers, batchSize := cfg.Workers, cfg.BatchSize
	if cmd.Flags().Changed("workers") {
		workers = importWorkers
	}
	if cmd.Flags().Changed("batch-size") {
		batchSize = importBatchSize
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	runID, err := db.BeginImport(strings.Join(args, " "))
	if err != nil {
		return err
	}

	total, err := importFiles(cmd.Context(), db, runID, paths, workers, batchSize)
	if ferr := db.FinishImport(runID, total.parsed, total.inserted, total.skipped); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Parsed %d hands from %d file(s): %d new, %d already stored, %d blocks skipped.\n",
		total.parsed, len(paths)-total.unreadable, total.inserted, total.duplicates, total.skipped)
	if total.unreadable > 0 {
		fmt.Fprintf(os.Stdout, "%d file(s) could not be read.\n", total.unreadable)
	}
	return nil
}

// importFiles parses and stores every file under run runID. Unreadable files
// are logged and skipped; the totals cover everything stored before an error.
func importFiles(ctx context.Context, db *storage.DB, runID string, paths []string, workers, batchSize int) (importTotals, error) {
	var total importTotals
	for _, path := range paths {
		flog := logger.With("file", path)
		blocks, err := parser.ReadBlocks(path)
		if err != nil {
			flog.Warn("skipping unreadable file", "err", err)
			total.unreadable++
			continue
		}
		res, err := parser.ParseAll(ctx, blocks, workers, flog)
		if err != nil {
			return total, fmt.Errorf("parse %s: %w", path, err)
		}

		fresh, dupes, err := dropStored(db, res.Hands)
		if err != nil {
			return total, fmt.Errorf("check stored hands: %w", err)
		}
		inserted := 0
		for start := 0; start < len(fresh); start += batchSize {
			n, err := db.InsertHands(fresh[start:min(start+batchSize, len(fresh))], runID)
			if err != nil {
				return total, fmt.Errorf("insert hands: %w", err)
			}
			inserted += n
			total.inserted += n
		}

		flog.Info("imported", "blocks", len(blocks), "parsed", len(res.Hands),
			"new", inserted, "duplicates", dupes, "skipped", res.Skipped)
		total.parsed += len(res.Hands)
		total.duplicates += dupes
		total.skipped += res.Skipped
	}
	return total, nil
}

// dropStored removes hands already in the database, and repeats within
// hands, keeping the first occurrence.
func dropStored(db *storage.DB, hands []*model.Hand) ([]*model.Hand, int, error) {
	ids := make([]string, len(hands))
	for i, h := range hands {
		ids[i] = h.ID
	}
	stored, err := db.StoredHandIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	fresh := make([]*model.Hand, 0, len(hands))
	for _, h := range hands {
		if stored[h.ID] {
			continue
		}
		stored[h.ID] = true
		fresh = append(fresh, h)
	}
	return fresh, len(hands) - len(fresh), nil
}
