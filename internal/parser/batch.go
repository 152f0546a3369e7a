package parser

import (
	"context"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/pable/go-poker-hud/internal/model"
)

// BatchResult holds the hands parsed from a set of blocks, in block order.
type BatchResult struct {
	Hands   []*model.Hand
	Skipped int // blocks without a valid header
}

// ParseAll parses blocks on up to workers goroutines. Blocks are
// independent, so a malformed one only increments Skipped. When ctx is
// cancelled no further blocks are started; the hands parsed so far are
// returned together with the context error.
func ParseAll(ctx context.Context, blocks []string, workers int, logger *log.Logger) (*BatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.Default()
	}

	parsed := make([]*model.Hand, len(blocks))
	done := make([]bool, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, block := range blocks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if h, ok := ParseHand(block); ok {
				parsed[i] = h
			}
			done[i] = true
			return nil
		})
	}
	err := g.Wait()

	res := &BatchResult{Hands: make([]*model.Hand, 0, len(blocks))}
	for i, h := range parsed {
		if !done[i] {
			continue
		}
		if h == nil {
			res.Skipped++
			logger.Debug("skipping block without header", "first_line", firstLine(blocks[i]))
			continue
		}
		res.Hands = append(res.Hands, h)
	}
	if err == nil {
		err = ctx.Err()
	}
	return res, err
}

func firstLine(block string) string {
	line, _, _ := strings.Cut(block, "\n")
	if len(line) > 80 {
		line = line[:80]
	}
	return line
}
