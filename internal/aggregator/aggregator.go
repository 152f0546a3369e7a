// Package aggregator folds finalized hands into per-player statistics.
package aggregator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pable/go-poker-hud/internal/model"
)

// Aggregate computes statistics for every player dealt into hands.
func Aggregate(hands []*model.Hand) model.StatsByPlayer {
	stats := make(model.StatsByPlayer)
	for _, h := range hands {
		Accumulate(stats, h)
	}
	return stats
}

// AggregateParallel splits hands into one shard per worker, aggregates each
// shard independently and merges the results. The result equals Aggregate.
func AggregateParallel(ctx context.Context, hands []*model.Hand, workers int) (model.StatsByPlayer, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(hands) {
		workers = max(1, len(hands))
	}
	partials := make([]model.StatsByPlayer, workers)
	chunk := (len(hands) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := min(w*chunk, len(hands))
		hi := min(lo+chunk, len(hands))
		g.Go(func() error {
			part := make(model.StatsByPlayer)
			for _, h := range hands[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				Accumulate(part, h)
			}
			partials[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(model.StatsByPlayer)
	for _, p := range partials {
		out.Merge(p)
	}
	return out, nil
}

// Accumulate adds the statistics of one hand into stats. Hands without
// positions are skipped. h is never modified.
func Accumulate(stats model.StatsByPlayer, h *model.Hand) {
	if h == nil || len(h.Positions) == 0 {
		return
	}
	v := newHandView(stats, h)
	if len(v.dealt) == 0 {
		return
	}
	for _, p := range v.order {
		stats.Get(p).HandsPlayed++
	}

	v.preflop()
	v.postflop()
	v.foldToBetBySize()
	v.callFoldTurn()
	v.callCallFoldRiver()
	v.tripleBarrel()
	v.riverDonkAfterBetting()
	v.riverLines()
}

// handView is the per-hand working set shared by the statistic families.
type handView struct {
	h     *model.Hand
	stats model.StatsByPlayer
	pfa   string

	order []string // dealt players in seat order
	dealt map[string]bool

	// decisions per betting street; blinds, returns and collects are left out
	decisions [model.NumStreets][]model.Action
}

func newHandView(stats model.StatsByPlayer, h *model.Hand) *handView {
	v := &handView{
		h:     h,
		stats: stats,
		pfa:   h.PreflopAggressor,
		order: h.DealtPlayers(),
		dealt: make(map[string]bool),
	}
	for _, p := range v.order {
		v.dealt[p] = true
	}
	for _, a := range h.Actions {
		if a.Street.IsBetting() && a.Kind.IsDecision() {
			v.decisions[a.Street] = append(v.decisions[a.Street], a)
		}
	}
	return v
}

func (v *handView) player(name string) *model.PlayerStatistics {
	return v.stats.Get(name)
}

// aggressiveIn reports whether any action in acts[from:to] is a bet or raise.
func aggressiveIn(acts []model.Action, from, to int) bool {
	for i := max(from, 0); i < to && i < len(acts); i++ {
		if acts[i].Kind.IsAggressive() {
			return true
		}
	}
	return false
}

// aggressiveByOtherIn is aggressiveIn restricted to players other than p.
func aggressiveByOtherIn(acts []model.Action, from, to int, p string) bool {
	for i := max(from, 0); i < to && i < len(acts); i++ {
		if acts[i].Kind.IsAggressive() && acts[i].Player != p {
			return true
		}
	}
	return false
}

// firstBy returns the index of the first action by p at or after from, or -1.
func firstBy(acts []model.Action, p string, from int) int {
	for i := max(from, 0); i < len(acts); i++ {
		if acts[i].Player == p {
			return i
		}
	}
	return -1
}

// firstOfKind returns the index of the first action by p of one of kinds, or -1.
func firstOfKind(acts []model.Action, p string, kinds ...model.ActionKind) int {
	for i, a := range acts {
		if a.Player != p {
			continue
		}
		for _, k := range kinds {
			if a.Kind == k {
				return i
			}
		}
	}
	return -1
}

// lastAggressive returns the index of the last bet or raise, or -1.
func lastAggressive(acts []model.Action) int {
	for i := len(acts) - 1; i >= 0; i-- {
		if acts[i].Kind.IsAggressive() {
			return i
		}
	}
	return -1
}

// callersAfter returns the dealt players that called after index from.
func (v *handView) callersAfter(acts []model.Action, from int) map[string]bool {
	out := make(map[string]bool)
	for i := from + 1; i < len(acts); i++ {
		if acts[i].Kind == model.ActionCall && v.dealt[acts[i].Player] {
			out[acts[i].Player] = true
		}
	}
	return out
}

// facesBet reports whether a was taken facing a sized bet.
func facesBet(a model.Action) bool {
	return a.BetFaced > 0 && a.PotWhenBetMade > 0
}
