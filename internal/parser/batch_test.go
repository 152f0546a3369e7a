package parser

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-poker-hud/internal/handtest"
)

func TestParseAllKeepsOrder(t *testing.T) {
	blocks := []string{handtest.HeadsUpWalk, handtest.Malformed, handtest.ThreeBetFold, handtest.CBetFold}
	res, err := ParseAll(context.Background(), blocks, 3, log.Default())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Hands, 3)
	assert.Equal(t, "1234567890", res.Hands[0].ID)
	assert.Equal(t, "2000000001", res.Hands[1].ID)
	assert.Equal(t, "3000000001", res.Hands[2].ID)
}

func TestParseAllMatchesSequential(t *testing.T) {
	res, err := ParseAll(context.Background(), handtest.All, 0, nil)
	require.NoError(t, err)
	require.Len(t, res.Hands, len(handtest.All))
	for i, block := range handtest.All {
		want, ok := ParseHand(block)
		require.True(t, ok)
		assert.Equal(t, want, res.Hands[i])
	}
}

func TestParseAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := ParseAll(ctx, handtest.All, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Hands)
	assert.Zero(t, res.Skipped)
}
