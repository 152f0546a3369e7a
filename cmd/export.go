package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/hud"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/storage"
)

var (
	exportOut      string
	exportDisplay  bool
	exportSnapshot bool
	exportSave     bool
)

// exportFile is the JSON document written by export.
type exportFile struct {
	GeneratedAt string                       `json:"generated_at"`
	Source      string                       `json:"source"` // "hands" or "snapshot"
	Players     model.StatsByPlayer          `json:"players"`
	Display     map[string]map[string]string `json:"display,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every player's accumulated statistics as JSON",
	Long: `Aggregate every stored hand and write the per-player accumulators as JSON.

With --save the result is also stored as the statistics snapshot; with
--snapshot the last stored snapshot is exported instead of recomputing.

Example:
  pokerhud export --display --out hud.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportDisplay, "display", false, "include display strings for every statistic")
	exportCmd.Flags().BoolVar(&exportSnapshot, "snapshot", false, "export the stored snapshot instead of recomputing")
	exportCmd.Flags().BoolVar(&exportSave, "save", false, "store the recomputed statistics as the snapshot")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportSnapshot && exportSave {
		return fmt.Errorf("--snapshot and --save are mutually exclusive")
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	doc := exportFile{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      "hands",
	}
	if exportSnapshot {
		doc.Source = "snapshot"
		doc.Players, err = db.LoadStatistics()
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
	} else {
		doc.Players, err = loadStats(cmd.Context(), db, storage.HandFilter{})
		if err != nil {
			return err
		}
		if exportSave {
			if err := db.SaveStatistics(doc.Players); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			logger.Info("saved statistics snapshot", "players", len(doc.Players))
		}
	}

	if exportDisplay {
		doc.Display = make(map[string]map[string]string, len(doc.Players))
		for name, ps := range doc.Players {
			values := make(map[string]string)
			for _, e := range hud.Entries(ps) {
				values[e.Name] = e.Value
			}
			doc.Display[name] = values
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	data = append(data, '\n')

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %d players to %s\n", len(doc.Players), exportOut)
	return nil
}
