package aggregator

import (
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/sizing"
)

// foldToBetBySize counts, per postflop street, each dealt player's first
// action that faced a bet, keyed by the bucket of the faced bet.
func (v *handView) foldToBetBySize() {
	for _, s := range model.Postflop {
		seen := make(map[string]bool)
		for _, a := range v.decisions[s] {
			if !v.dealt[a.Player] || seen[a.Player] || !facesBet(a) {
				continue
			}
			seen[a.Player] = true
			v.player(a.Player).FoldToBet[s][sizing.FacedBucket(a)].Add(a.Kind == model.ActionFold)
		}
	}
}

// callFoldTurn follows players who called the last flop bet into their first
// turn action facing a bet.
func (v *handView) callFoldTurn() {
	flop := v.decisions[model.StreetFlop]
	last := lastAggressive(flop)
	if last < 0 {
		return
	}
	callers := v.callersAfter(flop, last)
	seen := make(map[string]bool)
	for _, a := range v.decisions[model.StreetTurn] {
		if !callers[a.Player] || seen[a.Player] || !facesBet(a) {
			continue
		}
		seen[a.Player] = true
		v.player(a.Player).CallFold[sizing.FacedBucket(a)].Add(a.Kind == model.ActionFold)
	}
}
