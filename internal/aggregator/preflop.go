package aggregator

import "github.com/pable/go-poker-hud/internal/model"

// raise levels while walking preflop
const (
	levelBlinds = iota
	levelOpen
	levelThreeBet
	levelFourBet
)

func (v *handView) preflop() {
	acts := v.decisions[model.StreetPreflop]

	for _, p := range v.order {
		ps := v.player(p)
		var vpip, pfr bool
		for _, a := range acts {
			if a.Player != p {
				continue
			}
			vpip = vpip || a.Kind.IsVoluntary()
			pfr = pfr || a.Kind.IsAggressive()
		}
		ps.Record(model.StatVPIP, vpip)
		ps.Record(model.StatPFR, pfr)
	}

	limpers := v.limpers(acts)

	level, openIdx := levelBlinds, -1
	var opener, lastRaiser, threeBettor string
	for i, a := range acts {
		if !v.dealt[a.Player] {
			continue
		}
		ps := v.player(a.Player)
		cat := model.CategoryOf(v.h.Position(a.Player))
		opened := level > levelBlinds

		if !opened && !aggressiveIn(acts, 0, i) {
			if id, ok := model.OpenRaiseStat(cat); ok {
				ps.Opportunity(id)
			}
		}
		if opened && level == levelOpen && a.Player != opener {
			if id, ok := model.CallOpenRaiseStat(cat); ok {
				ps.Opportunity(id)
			}
		}

		squeeze := level == levelOpen && (limpers > 0 || v.calledBetween(acts, openIdx+1, i, opener))
		if opened && a.Player != lastRaiser {
			switch level {
			case levelOpen:
				ps.Opportunity(model.StatThreeBet)
				if squeeze {
					ps.Opportunity(model.StatSqueeze)
				}
			case levelThreeBet:
				ps.Opportunity(model.StatFourBet)
			}
		}

		steal, facingSteal := v.stealFaced(a.Player, level, lastRaiser)
		if facingSteal {
			ps.Opportunity(steal)
		}

		switch a.Kind {
		case model.ActionBet, model.ActionRaise:
			switch {
			case !opened:
				level = levelOpen
				opener = a.Player
				openIdx = i
				if id, ok := model.OpenRaiseStat(cat); ok {
					ps.Act(id)
				}
			case level == levelOpen && a.Player != lastRaiser:
				ps.Act(model.StatThreeBet)
				v.player(opener).Opportunity(model.StatFoldToThreeBet)
				if squeeze {
					ps.Act(model.StatSqueeze)
				}
				level = levelThreeBet
				threeBettor = a.Player
			case level == levelThreeBet && a.Player != lastRaiser:
				ps.Act(model.StatFourBet)
				if threeBettor != "" {
					v.player(threeBettor).Opportunity(model.StatFoldToFourBet)
				}
				level = levelFourBet
			}
			lastRaiser = a.Player

		case model.ActionCall:
			if opened && level == levelOpen && a.Player != opener && !v.completesAgainstButton(a, opener) {
				if id, ok := model.CallOpenRaiseStat(cat); ok {
					ps.Act(id)
				}
			}

		case model.ActionFold:
			if level == levelThreeBet && a.Player == opener && lastRaiser != a.Player {
				ps.Act(model.StatFoldToThreeBet)
			}
			if level == levelFourBet && a.Player == threeBettor {
				ps.Act(model.StatFoldToFourBet)
			}
			if facingSteal {
				ps.Act(steal)
			}
		}
	}
}

// limpers counts calls by dealt players before the first raise. A big blind
// call with nothing owed is a completion, not a limp.
func (v *handView) limpers(acts []model.Action) int {
	n := 0
	for _, a := range acts {
		if a.Kind.IsAggressive() {
			break
		}
		if a.Kind != model.ActionCall || !v.dealt[a.Player] {
			continue
		}
		if model.CategoryOf(v.h.Position(a.Player)) == model.CategoryBB && a.ToCall == 0 {
			continue
		}
		n++
	}
	return n
}

// calledBetween reports whether someone other than opener called in acts[from:to].
func (v *handView) calledBetween(acts []model.Action, from, to int, opener string) bool {
	for i := max(from, 0); i < to; i++ {
		if acts[i].Kind == model.ActionCall && acts[i].Player != opener {
			return true
		}
	}
	return false
}

// stealFaced returns the fold-vs-steal statistic when player is the big
// blind facing a single open from the button, cutoff or small blind.
func (v *handView) stealFaced(player string, level int, raiser string) (model.StatID, bool) {
	if level != levelOpen || raiser == player {
		return 0, false
	}
	if model.CategoryOf(v.h.Position(player)) != model.CategoryBB {
		return 0, false
	}
	switch v.h.Position(raiser) {
	case "BTN":
		return model.StatFoldBBvsBTNSteal, true
	case "CO":
		return model.StatFoldBBvsCOSteal, true
	case "SB":
		return model.StatFoldBBvsSBSteal, true
	}
	return 0, false
}

// completesAgainstButton reports a big blind call of exactly the big blind
// less the posted small blind against an opener on the button seat.
func (v *handView) completesAgainstButton(a model.Action, opener string) bool {
	if model.CategoryOf(v.h.Position(a.Player)) != model.CategoryBB || v.h.BigBlind <= 0 {
		return false
	}
	btn, ok := v.h.SeatByNumber(v.h.ButtonSeat)
	if !ok || btn.Name != opener {
		return false
	}
	return a.Amount == v.h.BigBlind-v.postedSmallBlind()
}

func (v *handView) postedSmallBlind() int {
	for _, a := range v.h.Actions {
		if a.Kind == model.ActionPostSmallBlind {
			return a.Amount
		}
	}
	return 0
}
