package aggregator

import "github.com/pable/go-poker-hud/internal/model"

// callCallFoldRiver follows players who called the last bet on both the flop
// and the turn into their first river action facing a bet, split by position
// against the river aggressor (or the turn aggressor when nobody bet the
// river). Reactions whose position cannot be resolved are not counted.
func (v *handView) callCallFoldRiver() {
	flop, turn := v.decisions[model.StreetFlop], v.decisions[model.StreetTurn]
	lf, lt := lastAggressive(flop), lastAggressive(turn)
	if lf < 0 || lt < 0 {
		return
	}
	flopCallers := v.callersAfter(flop, lf)
	callers := make(map[string]bool)
	for p := range v.callersAfter(turn, lt) {
		if flopCallers[p] {
			callers[p] = true
		}
	}
	if len(callers) == 0 {
		return
	}

	ref := v.h.RiverAggressor
	if ref == "" {
		ref = v.h.TurnAggressor
	}
	seen := make(map[string]bool)
	for _, a := range v.decisions[model.StreetRiver] {
		if !callers[a.Player] || seen[a.Player] || a.BetFaced <= 0 {
			continue
		}
		seen[a.Player] = true
		ip, ok := v.h.InPosition(a.Player, ref, model.StreetRiver)
		if !ok {
			continue
		}
		v.player(a.Player).Record(pick(ip, model.StatCallCallFoldRiverIP, model.StatCallCallFoldRiverOOP), a.Kind == model.ActionFold)
	}
}

// tripleBarrel handles the preflop aggressor betting flop, turn and river:
// players that checked and called the flop and turn bets get an opportunity
// to fold to the river bet.
func (v *handView) tripleBarrel() {
	if v.pfa == "" {
		return
	}
	var betIdx [model.NumStreets]int
	for _, s := range model.Postflop {
		betIdx[s] = firstOfKind(v.decisions[s], v.pfa, model.ActionBet)
		if betIdx[s] < 0 {
			return
		}
	}

	candidates := make(map[string]bool)
	for _, p := range v.order {
		if p != v.pfa {
			candidates[p] = true
		}
	}
	for _, s := range []model.Street{model.StreetFlop, model.StreetTurn} {
		acts := v.decisions[s]
		next := make(map[string]bool)
		for p := range candidates {
			if checkedBefore(acts, p, betIdx[s]) && calledAfter(acts, p, betIdx[s]) {
				next[p] = true
			}
		}
		candidates = next
	}

	river := v.decisions[model.StreetRiver]
	for p := range candidates {
		if j := firstBy(river, p, betIdx[model.StreetRiver]+1); j >= 0 {
			v.player(p).Record(model.StatCCFTripleBarrel, river[j].Kind == model.ActionFold)
		}
	}
}

// riverDonkAfterBetting handles a non-aggressor who bet the flop and the
// turn and then faces a river bet from someone else before acting.
func (v *handView) riverDonkAfterBetting() {
	flop, turn, river := v.decisions[model.StreetFlop], v.decisions[model.StreetTurn], v.decisions[model.StreetRiver]
	if len(river) == 0 {
		return
	}
	for _, p := range v.order {
		if p == v.pfa || firstOfKind(flop, p, model.ActionBet) < 0 || firstOfKind(turn, p, model.ActionBet) < 0 {
			continue
		}
		donk := -1
		for i, a := range river {
			if a.Player == p {
				break
			}
			if a.Kind == model.ActionBet {
				donk = i
				break
			}
		}
		if donk < 0 {
			continue
		}
		if j := firstBy(river, p, donk+1); j >= 0 {
			v.player(p).Record(model.StatBBFvsDonkRiver, river[j].Kind == model.ActionFold)
		}
	}
}

func checkedBefore(acts []model.Action, p string, idx int) bool {
	for _, a := range acts[:idx] {
		if a.Player == p && a.Kind == model.ActionCheck {
			return true
		}
	}
	return false
}

func calledAfter(acts []model.Action, p string, idx int) bool {
	for _, a := range acts[idx+1:] {
		if a.Player == p && a.Kind == model.ActionCall {
			return true
		}
	}
	return false
}
