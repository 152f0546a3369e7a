package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/pable/go-poker-hud/internal/hud"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/sizing"
	"github.com/pable/go-poker-hud/internal/storage"
)

const analyzeSystemPrompt = `You are a poker statistics analyst. You are given the HUD statistics a
hand-history tool computed for one tournament player, and a question about that player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite the statistic name, percentage and sample (actions/opportunities) behind a claim.
- Treat samples under 30 opportunities as unreliable and say so.
- Describe tendencies; do not give hand-by-hand or real-time playing advice.

Glossary:
- VPIP / PFR: voluntarily put chips in / raised preflop, % of hands dealt.
- CBet: the preflop aggressor bets the next street. Donk: a player bets into the previous street's aggressor.
- Probe: betting the turn or river out of position after the aggressor checked back.
- FTS <street> <size>: fold to a bet of that size (percent of pot) on that street.
- Fold thresholds: Under / At-Target / Over compare a fold frequency with the frequency that makes a
  pure bluff of that size break even.
- FTS River <line>: fold to the preflop aggressor's river bet after flop/turn line B (bet) or X (check).
- River composition: what the preflop aggressor showed down after a called river bet; Bluff vs MDF
  compares the air share with the break-even bluff share for the size.`

var (
	analyzeModel  string
	analyzeAPIKey string
	analyzeTokens int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <player> <question>",
	Short: "AI-powered descriptive profile of a player (requires ANTHROPIC_API_KEY)",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Anthropic model to use (default: config)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
	analyzeCmd.Flags().IntVar(&analyzeTokens, "max-tokens", 0, "response token limit (default: config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	name, question := args[0], args[1]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ps, err := playerStats(cmd.Context(), db, name)
	if err != nil {
		return err
	}
	if ps == nil {
		return fmt.Errorf("no hands found for %s", name)
	}

	dataJSON, err := buildPlayerContext(ps)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	modelID, maxTokens, apiKey := cfg.Analyze.Model, cfg.Analyze.MaxTokens, cfg.Analyze.APIKey
	if analyzeModel != "" {
		modelID = analyzeModel
	}
	if analyzeTokens > 0 {
		maxTokens = analyzeTokens
	}
	if analyzeAPIKey != "" {
		apiKey = analyzeAPIKey
	}
	return callAnthropic(cmd.Context(), apiKey, modelID, maxTokens, dataJSON, question)
}

// playerContext is the JSON document sent with the question.
type playerContext struct {
	Player      string            `json:"player"`
	HandsPlayed int               `json:"hands_played"`
	Stats       []contextStat     `json:"stats"`
	BestSizes   map[string]string `json:"best_bluff_size_by_street,omitempty"`
}

type contextStat struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Value   string `json:"value"`
}

// buildPlayerContext lists every statistic with at least one opportunity.
func buildPlayerContext(ps *model.PlayerStatistics) (string, error) {
	pc := playerContext{Player: ps.Player, HandsPlayed: ps.HandsPlayed}
	for _, e := range hud.Entries(ps) {
		if e.Name == hud.HandsPlayed || e.Counter.Opportunities == 0 {
			continue
		}
		pc.Stats = append(pc.Stats, contextStat{Section: e.Section, Name: e.Name, Value: e.Value})
	}
	for _, s := range model.Postflop {
		b, ev, ok := hud.BestFoldSize(ps.FoldToBet[s])
		if !ok {
			continue
		}
		if pc.BestSizes == nil {
			pc.BestSizes = make(map[string]string)
		}
		pc.BestSizes[s.String()] = fmt.Sprintf("%s (EV %+.2f pots, break-even fold %.1f%%)",
			b, ev, sizing.MDFBreakEven[b])
	}
	data, err := json.MarshalIndent(pc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func callAnthropic(ctx context.Context, apiKey, modelID string, maxTokens int, dataJSON, question string) error {
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: int64(maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
