package aggregator

import (
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/sizing"
)

// riverLine is the preflop aggressor's flop/turn line ending in a river bet.
type riverLine struct {
	code   model.LineCode
	bet    model.Action
	betIdx int
	bucket model.SizeBucket
}

// pfaRiverLine reconstructs the preflop aggressor's line. ok is false when
// the aggressor did not bet or check both the flop and the turn, did not bet
// the river, or the river bet has no pot to size against.
func (v *handView) pfaRiverLine() (riverLine, bool) {
	if v.pfa == "" {
		return riverLine{}, false
	}
	flop, turn, river := v.decisions[model.StreetFlop], v.decisions[model.StreetTurn], v.decisions[model.StreetRiver]
	fi := firstOfKind(flop, v.pfa, model.ActionBet, model.ActionCheck)
	if fi < 0 {
		return riverLine{}, false
	}
	ti := firstOfKind(turn, v.pfa, model.ActionBet, model.ActionCheck)
	if ti < 0 {
		return riverLine{}, false
	}
	ri := firstOfKind(river, v.pfa, model.ActionBet)
	if ri < 0 || river[ri].PotBefore <= 0 {
		return riverLine{}, false
	}
	bet := river[ri]
	return riverLine{
		code:   model.LineFor(flop[fi].Kind == model.ActionBet, turn[ti].Kind == model.ActionBet),
		bet:    bet,
		betIdx: ri,
		bucket: sizing.BucketOf(bet.Amount, bet.PotBefore),
	}, true
}

// facing reports whether a was taken facing exactly the line's river bet.
func (l riverLine) facing(a model.Action) bool {
	return a.BetFaced == l.bet.Amount && a.PotWhenBetMade == l.bet.PotBefore
}

// riverLines counts folds to the aggressor's river bet by line and size, and
// the category of the hand the aggressor showed after being called.
func (v *handView) riverLines() {
	line, ok := v.pfaRiverLine()
	if !ok {
		return
	}
	river := v.decisions[model.StreetRiver]

	called := false
	seen := make(map[string]bool)
	for _, a := range river[line.betIdx+1:] {
		if a.Player == v.pfa || !v.dealt[a.Player] || seen[a.Player] || !line.facing(a) {
			continue
		}
		seen[a.Player] = true
		v.player(a.Player).FoldByLine[line.code][line.bucket].Add(a.Kind == model.ActionFold)
		called = called || a.Kind == model.ActionCall
	}

	if !called || len(v.h.Board) < 5 {
		return
	}
	cat := v.shownCategory(v.pfa)
	if cat == model.CategoryUnknown {
		return
	}
	cell := &v.player(v.pfa).RiverShowed[line.code][line.bucket]
	cell.Categories[cat]++
	cell.Total++
}

// shownCategory classifies the first described hand p showed.
func (v *handView) shownCategory(p string) model.HandCategory {
	for _, a := range v.h.ShowdownActions() {
		if a.Player == p && a.Kind == model.ActionShow && a.Description != "" {
			return model.CategorizeShown(a.Description)
		}
	}
	return model.CategoryUnknown
}
