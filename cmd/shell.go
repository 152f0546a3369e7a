package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/report"
	"github.com/pable/go-poker-hud/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the database. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, _ []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()
	ctx := cmd.Context()

	cGreeting.Println("pokerhud shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("pokerhud")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		name, args := tokens[0], tokens[1:]

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "hands":
			shellHands(db, args)
		case "hand":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: hand <hand-id> [<player>]")
				continue
			}
			focus := ""
			if len(args) > 1 {
				focus = args[1]
			}
			if err := showHand(db, args[0], focus); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case "players":
			shellPlayers(ctx, db)
		case "player":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: player <name> [<section>]")
				continue
			}
			shellPlayer(ctx, db, args[0], strings.Join(args[1:], " "))
		case "imports":
			shellImports(db)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q — type 'help'\n", name)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"hands [<player>] [<n>]", "list the most recent stored hands"},
		{"hand <hand-id> [<player>]", "show a hand's action log"},
		{"players", "overview of every stored player"},
		{"player <name>", "full HUD for one player"},
		{"player <name> <section>", "one HUD section, e.g. 'player P1 FTS Flop'"},
		{"imports", "list import runs"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-30s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellHands(db *storage.DB, args []string) {
	f := storage.HandFilter{Limit: 20}
	for _, a := range args {
		if n, err := strconv.Atoi(a); err == nil {
			f.Limit = n
			continue
		}
		f.Player = a
	}
	hands, err := db.ListHands(f)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(hands) == 0 {
		cMuted.Println("No hands stored yet.")
		return
	}
	report.PrintHandList(os.Stdout, hands)
}

func shellPlayers(ctx context.Context, db *storage.DB) {
	stats, err := loadStats(ctx, db, storage.HandFilter{})
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	rows := make([]*model.PlayerStatistics, 0, len(stats))
	for _, ps := range stats {
		rows = append(rows, ps)
	}
	sortByHands(rows)
	report.PrintPlayerOverview(os.Stdout, rows)
}

func shellPlayer(ctx context.Context, db *storage.DB, name, section string) {
	ps, err := playerStats(ctx, db, name)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if ps == nil {
		cWarn.Fprintf(os.Stderr, "no hands for %s\n", name)
		return
	}
	cHeader.Fprintf(os.Stdout, "\n--- %s ---\n", name)
	printPlayer(ps, section)
}

func shellImports(db *storage.DB) {
	runs, err := db.ListImports()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(runs) == 0 {
		cMuted.Println("No imports recorded yet.")
		return
	}
	cHeader.Fprintf(os.Stdout, "%-36s  %-20s  %7s  %7s  %7s  %s\n",
		"RUN", "STARTED", "PARSED", "NEW", "SKIPPED", "SOURCE")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %7d  %7d  %7d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Parsed, r.Inserted, r.Skipped, r.Source)
	}
}
