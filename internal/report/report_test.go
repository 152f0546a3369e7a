package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-poker-hud/internal/aggregator"
	"github.com/pable/go-poker-hud/internal/handtest"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/parser"
	"github.com/pable/go-poker-hud/internal/storage"
)

func TestWilsonCI(t *testing.T) {
	lo, hi := wilsonCI(0, 0)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	lo, hi = wilsonCI(50, 100)
	assert.InDelta(t, 0.404, lo, 0.001)
	assert.InDelta(t, 0.596, hi, 0.001)

	lo, hi = wilsonCI(10, 10)
	assert.Less(t, lo, 1.0)
	assert.Equal(t, 1.0, hi)
}

func TestSampleFlag(t *testing.T) {
	assert.Equal(t, "VERY_LOW", sampleFlag(0))
	assert.Equal(t, "LOW", sampleFlag(30))
	assert.Equal(t, "OK", sampleFlag(250))
}

func TestPrintHandTables(t *testing.T) {
	h, ok := parser.ParseHand(handtest.ThreeBetFold)
	require.True(t, ok)

	var buf bytes.Buffer
	PrintHandSummary(&buf, h)
	PrintSeatTable(&buf, h, "P4")
	PrintActionTable(&buf, h, "P4")
	out := buf.String()

	assert.Contains(t, out, "Hand #2000000001")
	assert.Contains(t, out, "As Qd")
	assert.Contains(t, out, "raises")
	assert.Contains(t, out, ">")
}

func TestPrintHandList(t *testing.T) {
	var buf bytes.Buffer
	PrintHandList(&buf, []storage.HandSummary{
		{ID: "42", TournamentID: "7", BigBlind: 50, Players: 6, Pot: 300},
	})
	assert.Contains(t, buf.String(), "42")
	assert.Contains(t, buf.String(), "—", "empty board renders as a dash")
}

func TestPrintPlayerViews(t *testing.T) {
	var hands []*model.Hand
	for _, b := range handtest.All {
		h, ok := parser.ParseHand(b)
		require.True(t, ok)
		hands = append(hands, h)
	}
	stats := aggregator.Aggregate(hands)

	var buf bytes.Buffer
	PrintPlayerOverview(&buf, []*model.PlayerStatistics{stats["Hero"], stats["P1"]})
	assert.Contains(t, buf.String(), "Hero")
	assert.Contains(t, buf.String(), "VERY_LOW")

	buf.Reset()
	PrintHUD(&buf, stats["Hero"])
	assert.Contains(t, buf.String(), "--- Preflop ---")
	assert.Contains(t, buf.String(), "River BXB Composition")

	buf.Reset()
	PrintComposition(&buf, stats["Hero"])
	assert.Contains(t, buf.String(), "BXB")
	assert.Contains(t, buf.String(), "50.0%")

	buf.Reset()
	PrintComposition(&buf, stats["P1"])
	assert.Contains(t, buf.String(), "no river bets shown down")

	buf.Reset()
	PrintBestFoldSizes(&buf, stats["Villain"])
	assert.Contains(t, buf.String(), "46-56%")
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	PrintRows(&buf, []string{"kind", "n"}, [][]string{{"bets", "3"}, {"folds", "NULL"}})
	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "kind")
	assert.Contains(t, out, "bets")
	assert.Contains(t, out, "NULL")
}
