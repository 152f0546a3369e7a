package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeWayFlop: A and B see a flop with C, who folds to B's bet.
func threeWayFlop() *Hand {
	h := &Hand{
		Seats: []Seat{
			{Number: 1, Name: "A", Stack: 1000},
			{Number: 2, Name: "B", Stack: 1000},
			{Number: 3, Name: "C", Stack: 1000},
			{Number: 4, Name: "Busted", Stack: 0},
		},
		Positions: map[string]string{"A": "SB", "B": "BB", "C": "BTN"},
	}
	for i, a := range []Action{
		{Street: StreetPreDeal, Player: "A", Kind: ActionPostSmallBlind, Amount: 10},
		{Street: StreetPreDeal, Player: "B", Kind: ActionPostBigBlind, Amount: 20},
		{Street: StreetPreflop, Player: "C", Kind: ActionCall, Amount: 20},
		{Street: StreetPreflop, Player: "A", Kind: ActionCall, Amount: 10},
		{Street: StreetPreflop, Player: "B", Kind: ActionCheck},
		{Street: StreetFlop, Player: "A", Kind: ActionCheck},
		{Street: StreetFlop, Player: "B", Kind: ActionBet, Amount: 30},
		{Street: StreetFlop, Player: "C", Kind: ActionFold},
		{Street: StreetFlop, Player: "A", Kind: ActionCall, Amount: 30},
		{Street: StreetTurn, Player: "A", Kind: ActionCheck},
		{Street: StreetTurn, Player: "B", Kind: ActionCheck},
	} {
		a.Seq = i + 1
		h.Actions = append(h.Actions, a)
	}
	h.ResolveActorOrder()
	return h
}

func TestResolveActorOrder(t *testing.T) {
	h := threeWayFlop()
	assert.Nil(t, h.ActorOrder[StreetPreflop], "preflop order is not resolved")
	assert.Equal(t, []string{"A", "B", "C"}, h.ActorOrder[StreetFlop])
	assert.Equal(t, []string{"A", "B"}, h.ActorOrder[StreetTurn])
	assert.Nil(t, h.ActorOrder[StreetRiver])
}

func TestInPosition(t *testing.T) {
	h := threeWayFlop()

	ip, ok := h.InPosition("B", "A", StreetFlop)
	require.True(t, ok)
	assert.True(t, ip)

	ip, ok = h.InPosition("A", "B", StreetTurn)
	require.True(t, ok)
	assert.False(t, ip)

	_, ok = h.InPosition("C", "A", StreetTurn)
	assert.False(t, ok, "C never acted on the turn")

	// B acts before C on the flop, so B is not last to act.
	ip, ok = h.InPosition("B", "B", StreetFlop)
	require.True(t, ok)
	assert.False(t, ip)

	// On the turn only A remains before B.
	ip, ok = h.InPosition("B", "B", StreetTurn)
	require.True(t, ok)
	assert.True(t, ip)

	oop, ok := h.OutOfPositionTo("A", "B", StreetFlop)
	require.True(t, ok)
	assert.True(t, oop)
	_, ok = h.OutOfPositionTo("A", "Nobody", StreetFlop)
	assert.False(t, ok)
}

func TestHandQueries(t *testing.T) {
	h := threeWayFlop()
	assert.Equal(t, []string{"A", "B", "C"}, h.DealtPlayers(), "players without chips are not dealt in")
	assert.True(t, h.FoldedOn("C", StreetFlop))
	assert.False(t, h.FoldedOn("A", StreetFlop))
	assert.True(t, h.SawStreet(StreetTurn))
	assert.False(t, h.SawStreet(StreetRiver))
	assert.Len(t, h.ActionsOn(StreetFlop), 4)

	s, ok := h.SeatByNumber(3)
	require.True(t, ok)
	assert.Equal(t, "C", s.Name)
	_, ok = h.SeatByNumber(9)
	assert.False(t, ok)

	h.SetAggressor(StreetFlop, "B")
	assert.Equal(t, "B", h.Aggressor(StreetFlop))
	assert.Empty(t, h.Aggressor(StreetShowdown))
}

func TestEnumRoundTrips(t *testing.T) {
	for s := StreetPreDeal; s < NumStreets; s++ {
		got, ok := ParseStreet(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	for k := ActionPostAnte; k < numActionKinds; k++ {
		got, ok := ParseActionKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	for b := Bucket0to29; b < NumSizeBuckets; b++ {
		got, ok := ParseSizeBucket(b.String())
		assert.True(t, ok)
		assert.Equal(t, b, got)
	}
	_, ok := ParseActionKind("juggles")
	assert.False(t, ok)
}

func TestLineFor(t *testing.T) {
	assert.Equal(t, LineBBB, LineFor(true, true))
	assert.Equal(t, LineBXB, LineFor(true, false))
	assert.Equal(t, LineXBB, LineFor(false, true))
	assert.Equal(t, LineXXB, LineFor(false, false))
}

func TestCategorizeShown(t *testing.T) {
	cases := map[string]HandCategory{
		"three of a kind, Kings":       CategoryTopHand,
		"a straight, Ace to Five":      CategoryTopHand,
		"two pair, Aces and Nines":     CategoryTopHand,
		"a flush, Ace high":            CategoryTopHand,
		"a pair of Queens":             CategoryBluffCatcher,
		"high card Ace":                CategoryAir,
		"":                             CategoryUnknown,
		"something the client invents": CategoryUnknown,
	}
	for desc, want := range cases {
		assert.Equal(t, want, CategorizeShown(desc), desc)
	}
}

func TestPositionCategories(t *testing.T) {
	cases := map[string]PositionCategory{
		"UTG": CategoryEP, "UTG+2": CategoryEP,
		"MP": CategoryMP, "LJ": CategoryMP, "HJ": CategoryMP,
		"CO": CategoryCO, "BTN": CategoryBTN, "SB": CategorySB, "BB": CategoryBB,
		"": CategoryNone,
	}
	for pos, want := range cases {
		assert.Equal(t, want, CategoryOf(pos), pos)
	}

	_, ok := OpenRaiseStat(CategoryBB)
	assert.False(t, ok, "the big blind cannot open")
	id, ok := CallOpenRaiseStat(CategoryBB)
	require.True(t, ok)
	assert.Equal(t, StatCallOpenRaiseBB, id)
	id, ok = CallOpenRaiseStat(CategoryCO)
	require.True(t, ok)
	assert.Equal(t, StatCallOpenRaiseCO, id)
}

func TestStatRegistry(t *testing.T) {
	keys := make(map[string]bool)
	names := make(map[string]bool)
	for i, d := range Definitions() {
		assert.Equal(t, StatID(i), d.ID, "registry is in id order")
		assert.False(t, keys[d.Key], "duplicate key %s", d.Key)
		assert.False(t, names[d.DisplayName()], "duplicate name %s", d.DisplayName())
		keys[d.Key], names[d.DisplayName()] = true, true

		id, ok := LookupStat(d.DisplayName())
		require.True(t, ok)
		assert.Equal(t, d.ID, id)
		id, ok = StatByKey(d.Key)
		require.True(t, ok)
		assert.Equal(t, d.ID, id)
	}
	assert.Len(t, keys, int(NumStats))

	id, ok := LookupStat("3Bet PF (%)")
	require.True(t, ok)
	assert.Equal(t, StatThreeBet, id)

	_, ok = ProbeStats.For(StreetFlop)
	assert.False(t, ok, "there is no flop probe")
	id, ok = ProbeStats.For(StreetRiver)
	require.True(t, ok)
	assert.Equal(t, StatProbeRiver, id)
}

func TestCounters(t *testing.T) {
	var c Counter
	assert.Zero(t, c.Pct())
	c.Add(true)
	c.Add(false)
	assert.InDelta(t, 50.0, c.Pct(), 1e-9)

	var comp Composition
	assert.Zero(t, comp.Share(CategoryAir))
	comp.Categories[CategoryAir], comp.Total = 1, 4
	assert.InDelta(t, 25.0, comp.Share(CategoryAir), 1e-9)
	assert.Zero(t, comp.Share(CategoryUnknown))
}

func TestMergeAndClone(t *testing.T) {
	a := NewPlayerStatistics("P")
	a.HandsPlayed = 2
	a.Record(StatVPIP, true)
	a.FoldToBet[StreetFlop][Bucket46to56].Add(true)
	a.RiverShowed[LineBXB][Bucket80to100].Categories[CategoryTopHand] = 1
	a.RiverShowed[LineBXB][Bucket80to100].Total = 1

	b := a.Clone()
	b.Player = "other"
	b.Record(StatVPIP, false)
	assert.Equal(t, Counter{Opportunities: 1, Actions: 1}, a.Stat(StatVPIP), "clone is independent")

	a.Merge(b)
	assert.Equal(t, "P", a.Player)
	assert.Equal(t, 4, a.HandsPlayed)
	assert.Equal(t, Counter{Opportunities: 3, Actions: 2}, a.Stat(StatVPIP))
	assert.Equal(t, Counter{Opportunities: 2, Actions: 2}, a.FoldToBet[StreetFlop][Bucket46to56])
	assert.Equal(t, 2, a.RiverShowed[LineBXB][Bucket80to100].Total)
	a.Merge(nil)
	assert.Equal(t, 4, a.HandsPlayed)

	m := StatsByPlayer{}
	m.Get("P").HandsPlayed++
	o := StatsByPlayer{"P": a, "Q": NewPlayerStatistics("Q")}
	m.Merge(o)
	assert.Equal(t, 5, m["P"].HandsPlayed)
	m["Q"].HandsPlayed = 9
	assert.Zero(t, o["Q"].HandsPlayed, "merged accumulators are copies")
}
