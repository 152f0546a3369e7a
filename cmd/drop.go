package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var dropForce bool

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the hand store",
	Long: `Delete the SQLite hand store together with its write-ahead log files.

Stored hands, import runs and saved statistics are gone afterwards; importing
the same hand-history files again rebuilds everything. Without --force the
command only prints what it would delete.`,
	Args: cobra.NoArgs,
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "delete without asking")
}

// storeFiles lists the database file and the journal files SQLite keeps
// next to it in WAL mode.
func storeFiles(path string) []string {
	return []string{path, path + "-wal", path + "-shm"}
}

func runDrop(cmd *cobra.Command, args []string) error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "Would delete the hand store at %s.\nRun again with --force to delete it.\n", dbPath)
		return nil
	}
	removed := 0
	for _, f := range storeFiles(dbPath) {
		err := os.Remove(f)
		switch {
		case err == nil:
			removed++
			logger.Debug("removed", "path", f)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("remove %s: %w", f, err)
		}
	}
	if removed == 0 {
		fmt.Fprintf(os.Stdout, "No hand store at %s.\n", dbPath)
		return nil
	}
	fmt.Fprintf(os.Stdout, "Dropped the hand store at %s.\n", dbPath)
	return nil
}
