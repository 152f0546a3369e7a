package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/config"
)

var (
	dbPath   string
	cfgPath  string
	logLevel string

	cfg    = config.Default()
	logger = log.Default()
)

var rootCmd = &cobra.Command{
	Use:               "pokerhud",
	Short:             "Poker hand-history HUD statistics tool",
	Long:              "Parse PokerStars tournament hand histories and compute per-player HUD statistics.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", filepath.Join(config.Dir(), "hud.db"), "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(handsCmd)
	rootCmd.AddCommand(handCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(dropCmd)
}

// setup loads the config file and lets explicit flags override it.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		c.DBPath = dbPath
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	cfg = c
	dbPath = c.DBPath
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pokerhud",
	})
	return nil
}
