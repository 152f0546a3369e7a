package aggregator

import (
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/sizing"
)

func (v *handView) postflop() {
	for _, s := range model.Postflop {
		if len(v.decisions[s]) > 0 {
			v.street(s)
		}
	}
}

// street runs the single-street families: c-bets, donks, probes, bets
// against a missed c-bet, check-call/fold/raise and river bets.
func (v *handView) street(s model.Street) {
	acts := v.decisions[s]
	agg := v.h.Aggressor(s - 1)

	aggIdx := -1
	if agg != "" {
		aggIdx = firstBy(acts, agg, 0)
	}
	canCBet := aggIdx >= 0 && !aggressiveIn(acts, 0, aggIdx)
	if canCBet {
		v.cbet(s, acts, agg, aggIdx)
	}
	missed := canCBet && acts[aggIdx].Kind == model.ActionCheck

	var (
		donkSeen  = make(map[string]bool)
		probeSeen = make(map[string]bool)
		bvmcSeen  = make(map[string]bool)
		checkedAt = make(map[string]int)
		faced     = make(map[string]bool)
		skipped   bool
	)
	aggActedBefore := func(i int) bool { return aggIdx >= 0 && aggIdx < i }
	missedSpot := func(p string, i int) bool {
		return missed && p != agg && aggIdx < i && !aggressiveIn(acts, aggIdx+1, i)
	}

	for i, a := range acts {
		p := a.Player
		if !v.dealt[p] {
			continue
		}
		ps := v.player(p)
		noPriorAgg := !aggressiveIn(acts, 0, i)

		if agg != "" && p != agg && !donkSeen[p] && !aggActedBefore(i) && noPriorAgg {
			if oop, ok := v.h.OutOfPositionTo(p, agg, s); ok && oop {
				donkSeen[p] = true
				if id, ok := model.DonkStats.For(s); ok {
					ps.Opportunity(id)
				}
			}
		}
		if agg == "" && s != model.StreetFlop && !probeSeen[p] && noPriorAgg {
			probeSeen[p] = true
			if id, ok := model.ProbeStats.For(s); ok {
				ps.Opportunity(id)
			}
		}
		if !bvmcSeen[p] && missedSpot(p, i) {
			bvmcSeen[p] = true
			if id, ok := model.BetVsMissedStats.For(s); ok {
				ps.Opportunity(id)
			}
		}

		switch a.Kind {
		case model.ActionBet:
			if agg != "" && p != agg && !aggActedBefore(i) && noPriorAgg {
				if oop, ok := v.h.OutOfPositionTo(p, agg, s); ok && oop {
					v.donk(s, acts, i, agg)
				}
			}
			if agg == "" && s != model.StreetFlop && noPriorAgg {
				v.probe(s, acts, i)
			}
			if missedSpot(p, i) {
				if id, ok := model.BetVsMissedStats.For(s); ok {
					ps.Act(id)
				}
				if j := firstBy(acts, agg, i+1); j >= 0 {
					if id, ok := model.FoldToBetVsMissed.For(s); ok {
						v.player(agg).Record(id, acts[j].Kind == model.ActionFold)
					}
				}
			}
		case model.ActionRaise:
			v.checkRaised(s, acts, i, checkedAt)
		}

		if a.Kind == model.ActionCheck {
			checkedAt[p] = i
		} else if at, ok := checkedAt[p]; ok && !faced[p] && aggressiveByOtherIn(acts, at+1, i, p) {
			faced[p] = true
			v.checkThen(s, ps, a.Kind)
		}

		if s == model.StreetFlop && p == v.pfa && missed && !skipped && aggressiveByOtherIn(acts, aggIdx+1, i, p) {
			skipped = true
			ps.Record(model.StatPFASkipCBetCheckCallFlop, a.Kind == model.ActionCall)
			ps.Record(model.StatPFASkipCBetCheckFoldFlop, a.Kind == model.ActionFold)
			ps.Record(model.StatPFASkipCBetCheckRaiseFlop, a.Kind == model.ActionRaise)
		}

		if s == model.StreetRiver && a.ToCall == 0 {
			ps.Record(model.StatBetRiver, a.Kind == model.ActionBet)
		}
	}
}

// cbet records the c-bet opportunity of agg, whose first action on the
// street is acts[aggIdx], and the reactions to a c-bet.
func (v *handView) cbet(s model.Street, acts []model.Action, agg string, aggIdx int) {
	ps := v.player(agg)
	bet := acts[aggIdx].Kind == model.ActionBet
	if id, ok := model.CBetStats.For(s); ok {
		ps.Record(id, bet)
	}
	if s == model.StreetFlop && agg == v.pfa {
		if ip, ok := v.h.InPosition(agg, agg, s); ok {
			ps.Record(pick(ip, model.StatCBetFlopIP, model.StatCBetFlopOOP), bet)
		}
	}
	if !bet {
		return
	}

	seen := make(map[string]bool)
	for _, r := range acts[aggIdx+1:] {
		if r.Player == agg || !v.dealt[r.Player] || seen[r.Player] {
			continue
		}
		seen[r.Player] = true
		rs := v.player(r.Player)
		fold := r.Kind == model.ActionFold
		if id, ok := model.FoldToCBetStats.For(s); ok {
			rs.Record(id, fold)
		}
		ip, ok := v.h.InPosition(r.Player, agg, s)
		if !ok {
			continue
		}
		table := model.FoldToCBetOOPStats
		if ip {
			table = model.FoldToCBetIPStats
		}
		if id, ok := table.For(s); ok {
			rs.Record(id, fold)
		}
		if s == model.StreetFlop && facesBet(r) {
			rs.FoldToCBet[model.SideOf(ip)][sizing.FacedBucket(r)].Add(fold)
		}
	}
}

// donk records the aggressor's reaction to the donk bet at acts[i].
func (v *handView) donk(s model.Street, acts []model.Action, i int, agg string) {
	bet := acts[i]
	if id, ok := model.DonkStats.For(s); ok {
		v.player(bet.Player).Act(id)
	}
	j := firstBy(acts, agg, i+1)
	if j < 0 {
		return
	}
	as := v.player(agg)
	fold := acts[j].Kind == model.ActionFold
	if id, ok := model.FoldToDonkStats.For(s); ok {
		as.Record(id, fold)
	}
	as.FoldToDonk[s][sizing.BucketOf(bet.Amount, bet.PotBefore)].Add(fold)
}

// probe records the probe bet at acts[i] and every later reaction to it.
func (v *handView) probe(s model.Street, acts []model.Action, i int) {
	bettor := acts[i].Player
	if id, ok := model.ProbeStats.For(s); ok {
		v.player(bettor).Act(id)
	}
	id, ok := model.FoldToProbeStats.For(s)
	if !ok {
		return
	}
	seen := make(map[string]bool)
	for _, r := range acts[i+1:] {
		if r.Player == bettor || !v.dealt[r.Player] || seen[r.Player] {
			continue
		}
		seen[r.Player] = true
		v.player(r.Player).Record(id, r.Kind == model.ActionFold)
	}
}

// checkRaised finds the bet that the raise at acts[i] check-raised and gives
// its bettor a fold-to-check-raise opportunity.
func (v *handView) checkRaised(s model.Street, acts []model.Action, i int, checkedAt map[string]int) {
	raiser := acts[i].Player
	at, checked := checkedAt[raiser]
	if !checked {
		return
	}
	for j := i - 1; j >= 0; j-- {
		b := acts[j]
		if b.Kind != model.ActionBet || b.Player == raiser || at >= j {
			continue
		}
		id, ok := model.FoldToCheckRaiseStats.For(s)
		if !ok {
			return
		}
		next := firstBy(acts, b.Player, i+1)
		v.player(b.Player).Record(id, next >= 0 && acts[next].Kind == model.ActionFold)
		return
	}
}

// checkThen records the reaction of a player who checked and then faced a bet.
func (v *handView) checkThen(s model.Street, ps *model.PlayerStatistics, kind model.ActionKind) {
	if id, ok := model.CheckCallStats.For(s); ok {
		ps.Record(id, kind == model.ActionCall)
	}
	if id, ok := model.CheckFoldStats.For(s); ok {
		ps.Record(id, kind == model.ActionFold)
	}
	if id, ok := model.CheckRaiseStats.For(s); ok {
		ps.Record(id, kind == model.ActionRaise)
	}
}

func pick(cond bool, a, b model.StatID) model.StatID {
	if cond {
		return a
	}
	return b
}
