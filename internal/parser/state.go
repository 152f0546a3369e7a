package parser

import "github.com/pable/go-poker-hud/internal/model"

// bettingState tracks the chips in play while a hand is being parsed.
type bettingState struct {
	pot           int
	toCall        int // highest street investment a player must match
	lastBet       int // size of the last bet or raise increment
	potBeforeLast int // pot before the last bet or raise
	invested      map[string]int
	aggressor     string
}

func newBettingState() *bettingState {
	return &bettingState{invested: make(map[string]int)}
}

// resetStreet starts a new postflop street. carry is the aggressor committed
// on the previous street.
func (st *bettingState) resetStreet(carry string) {
	st.toCall = 0
	st.lastBet = 0
	st.potBeforeLast = st.pot
	clear(st.invested)
	st.aggressor = carry
}

// stamp fills the derived fields of a from the state before a is applied.
func (st *bettingState) stamp(a *model.Action) {
	a.PotBefore = st.pot
	a.ToCall = max(0, st.toCall-st.invested[a.Player])
	if a.ToCall > 0 {
		a.BetFaced = st.lastBet
		a.PotWhenBetMade = st.potBeforeLast
	} else {
		a.BetFaced = 0
		a.PotWhenBetMade = st.pot
	}
}

// apply updates the state, and the aggressor and blind fields of h, for a.
func (st *bettingState) apply(h *model.Hand, a model.Action) {
	switch a.Kind {
	case model.ActionPostAnte:
		st.pot += a.Amount
	case model.ActionPostSmallBlind:
		st.pot += a.Amount
		st.invested[a.Player] += a.Amount
		st.toCall = max(st.toCall, a.Amount)
	case model.ActionPostBigBlind:
		st.pot += a.Amount
		st.invested[a.Player] += a.Amount
		h.BigBlind = a.Amount
		st.potBeforeLast = st.pot - a.Amount
		st.lastBet = a.Amount
		st.toCall = max(st.toCall, a.Amount)
		st.aggressor = a.Player
	case model.ActionCall:
		st.pot += a.Amount
		st.invested[a.Player] += a.Amount
	case model.ActionBet:
		st.potBeforeLast = st.pot
		st.pot += a.Amount
		st.invested[a.Player] += a.Amount
		st.toCall = a.Amount
		st.lastBet = a.Amount
		st.takeInitiative(h, a)
	case model.ActionRaise:
		added := max(0, a.RaiseTo-st.invested[a.Player])
		st.potBeforeLast = st.pot
		st.pot += added
		st.invested[a.Player] += added
		st.toCall = a.RaiseTo
		st.lastBet = a.Amount
		st.takeInitiative(h, a)
	case model.ActionUncalledReturned:
		st.pot -= a.Amount
	}
}

func (st *bettingState) takeInitiative(h *model.Hand, a model.Action) {
	st.aggressor = a.Player
	if a.Street == model.StreetPreflop {
		h.PreflopAggressor = a.Player
	}
}
