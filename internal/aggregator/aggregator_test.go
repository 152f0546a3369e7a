package aggregator

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-poker-hud/internal/handtest"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/parser"
)

func parse(t *testing.T, blocks ...string) []*model.Hand {
	t.Helper()
	var hands []*model.Hand
	for _, b := range blocks {
		h, ok := parser.ParseHand(b)
		require.True(t, ok, "block did not parse")
		hands = append(hands, h)
	}
	return hands
}

func statsFor(t *testing.T, blocks ...string) model.StatsByPlayer {
	t.Helper()
	return Aggregate(parse(t, blocks...))
}

func counter(o, a int) model.Counter {
	return model.Counter{Opportunities: o, Actions: a}
}

func TestHeadsUpWalk(t *testing.T) {
	stats := statsFor(t, handtest.HeadsUpWalk)
	require.Len(t, stats, 2)

	for _, p := range []string{"Alice", "Bob"} {
		assert.Equal(t, 1, stats[p].HandsPlayed, p)
		assert.Equal(t, counter(1, 0), stats[p].Stat(model.StatVPIP), p)
		assert.Equal(t, counter(1, 0), stats[p].Stat(model.StatPFR), p)
	}
	assert.Equal(t, counter(1, 0), stats["Alice"].Stat(model.StatOpenRaiseBTN))
	assert.Equal(t, model.Counter{}, stats["Bob"].Stat(model.StatCallOpenRaiseBB))
}

func TestThreeBetFold(t *testing.T) {
	stats := statsFor(t, handtest.ThreeBetFold)

	p4, p3, p5 := stats["P4"], stats["P3"], stats["P5"]
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatPFR))
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatOpenRaiseEP))
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatFoldToThreeBet))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatFourBet))

	assert.Equal(t, counter(1, 1), p3.Stat(model.StatThreeBet))
	assert.Equal(t, counter(1, 1), p3.Stat(model.StatVPIP))
	assert.Equal(t, counter(1, 0), p3.Stat(model.StatCallOpenRaiseBB))
	assert.Equal(t, model.Counter{}, p3.Stat(model.StatSqueeze))
	assert.Equal(t, model.Counter{}, p3.Stat(model.StatFoldBBvsBTNSteal))

	assert.Equal(t, counter(1, 0), p5.Stat(model.StatThreeBet))
	assert.Equal(t, counter(1, 0), p5.Stat(model.StatCallOpenRaiseMP))
	assert.Equal(t, model.Counter{}, p5.Stat(model.StatOpenRaiseMP))

	for _, p := range []string{"P1", "P2", "P3", "P4", "P5", "P6"} {
		assert.Equal(t, 1, stats[p].HandsPlayed, p)
		assert.Equal(t, model.BySize{}, stats[p].FoldToBet[model.StreetPreflop], "%s: fold to bet by size is postflop only", p)
	}
}

func TestMissedCBet(t *testing.T) {
	stats := statsFor(t, handtest.MissedCBet)
	p1, p4 := stats["P1"], stats["P4"]

	assert.Equal(t, counter(1, 0), p4.Stat(model.StatCBetFlop))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatCBetFlopOOP))
	assert.Equal(t, counter(1, 1), p1.Stat(model.StatBetVsMissedCBetFlop))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatFoldToBetVsMissedCBetFlop))

	assert.Equal(t, counter(1, 1), p4.Stat(model.StatCheckCallFlop))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatCheckFoldFlop))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatCheckRaiseFlop))
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatPFASkipCBetCheckCallFlop))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatPFASkipCBetCheckFoldFlop))

	// P1 inherits the initiative on the turn and river and checks behind.
	assert.Equal(t, counter(1, 0), p1.Stat(model.StatCBetTurn))
	assert.Equal(t, counter(1, 0), p1.Stat(model.StatCBetRiver))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatDonkTurn))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatDonkRiver))
	assert.Equal(t, model.Counter{}, p4.Stat(model.StatProbeTurn))

	assert.Equal(t, counter(1, 0), p4.Stat(model.StatBetRiver))
	assert.Equal(t, counter(1, 0), p1.Stat(model.StatBetRiver))

	assert.Equal(t, counter(1, 0), p4.FoldToBet[model.StreetFlop][model.Bucket46to56])
	assert.Equal(t, counter(1, 1), p1.Stat(model.StatCallOpenRaiseBTN))
	assert.Equal(t, counter(1, 0), stats["P2"].Stat(model.StatSqueeze))
	assert.Equal(t, counter(1, 0), stats["P3"].Stat(model.StatSqueeze))
}

func TestMissedCBetReraised(t *testing.T) {
	stats := statsFor(t, handtest.MissedCBetReraised)
	p1, p4 := stats["P1"], stats["P4"]

	assert.Equal(t, counter(1, 0), p4.Stat(model.StatCBetFlop))
	assert.Equal(t, counter(1, 1), p1.Stat(model.StatBetVsMissedCBetFlop))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatFoldToBetVsMissedCBetFlop))

	// Only the first reaction after the missed c-bet counts.
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatPFASkipCBetCheckCallFlop))
	assert.Equal(t, counter(1, 0), p4.Stat(model.StatPFASkipCBetCheckFoldFlop))
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatPFASkipCBetCheckRaiseFlop))
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatCheckRaiseFlop))
	assert.Equal(t, counter(1, 0), p1.Stat(model.StatFoldToCheckRaiseFlop))
}

func TestCompletesAgainstButton(t *testing.T) {
	h := &model.Hand{
		ButtonSeat: 1,
		BigBlind:   25,
		Seats: []model.Seat{
			{Number: 1, Name: "Btn", Stack: 1000},
			{Number: 2, Name: "Big", Stack: 1000},
		},
		Positions: map[string]string{"Btn": "BTN", "Big": "BB"},
		Actions: []model.Action{
			{Seq: 1, Street: model.StreetPreDeal, Player: "Btn", Kind: model.ActionPostSmallBlind, Amount: 12},
			{Seq: 2, Street: model.StreetPreDeal, Player: "Big", Kind: model.ActionPostBigBlind, Amount: 25},
		},
	}
	v := newHandView(model.StatsByPlayer{}, h)
	call := func(player string, amount int) model.Action {
		return model.Action{Street: model.StreetPreflop, Player: player, Kind: model.ActionCall, Amount: amount}
	}

	assert.True(t, v.completesAgainstButton(call("Big", 13), "Btn"))
	assert.False(t, v.completesAgainstButton(call("Big", 12), "Btn"), "odd blinds: 12 is short of the difference")
	assert.False(t, v.completesAgainstButton(call("Big", 50), "Btn"))
	assert.False(t, v.completesAgainstButton(call("Big", 13), "Big"), "opener is not on the button")
	assert.False(t, v.completesAgainstButton(call("Btn", 13), "Btn"), "caller is not the big blind")
}

func TestCBetFold(t *testing.T) {
	stats := statsFor(t, handtest.CBetFold)
	p1, p4 := stats["P1"], stats["P4"]

	assert.Equal(t, counter(1, 1), p4.Stat(model.StatCBetFlop))
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatCBetFlopOOP))
	assert.Equal(t, model.Counter{}, p4.Stat(model.StatCBetFlopIP))

	assert.Equal(t, counter(1, 1), p1.Stat(model.StatFoldToCBetFlop))
	assert.Equal(t, counter(1, 1), p1.Stat(model.StatFoldToCBetFlopIP))
	assert.Equal(t, model.Counter{}, p1.Stat(model.StatFoldToCBetFlopOOP))
	assert.Equal(t, counter(1, 1), p1.FoldToCBet[model.SideIP][model.Bucket46to56])
	assert.Equal(t, counter(1, 1), p1.FoldToBet[model.StreetFlop][model.Bucket46to56])
}

func TestDonkFold(t *testing.T) {
	stats := statsFor(t, handtest.DonkFold)
	p1, p3 := stats["P1"], stats["P3"]

	assert.Equal(t, counter(1, 1), p1.Stat(model.StatOpenRaiseBTN))
	assert.Equal(t, counter(1, 0), p3.Stat(model.StatFoldBBvsBTNSteal))
	assert.Equal(t, counter(1, 1), p3.Stat(model.StatCallOpenRaiseBB))

	assert.Equal(t, counter(1, 1), p3.Stat(model.StatDonkFlop))
	assert.Equal(t, counter(1, 1), p1.Stat(model.StatFoldToDonkFlop))
	assert.Equal(t, counter(1, 1), p1.FoldToDonk[model.StreetFlop][model.Bucket46to56])
	assert.Equal(t, model.Counter{}, p1.Stat(model.StatCBetFlop))
}

func TestCheckRaise(t *testing.T) {
	stats := statsFor(t, handtest.CheckRaise)
	p3, p4 := stats["P3"], stats["P4"]

	assert.Equal(t, counter(1, 1), p4.Stat(model.StatCBetFlop))
	assert.Equal(t, counter(1, 0), p3.Stat(model.StatDonkFlop))
	assert.Equal(t, counter(1, 1), p3.Stat(model.StatCheckRaiseFlop))
	assert.Equal(t, counter(1, 0), p3.Stat(model.StatCheckCallFlop))
	assert.Equal(t, counter(1, 0), p3.Stat(model.StatCheckFoldFlop))
	assert.Equal(t, counter(1, 1), p4.Stat(model.StatFoldToCheckRaiseFlop))

	assert.Equal(t, counter(1, 0), p3.Stat(model.StatFoldToCBetFlop))
	assert.Equal(t, counter(1, 0), p3.Stat(model.StatFoldToCBetFlopOOP))
	assert.Equal(t, counter(1, 0), p3.FoldToCBet[model.SideOOP][model.Bucket46to56])

	// 400 raised into 575 is 69.6% of the pot.
	assert.Equal(t, counter(1, 1), p4.FoldToBet[model.StreetFlop][model.Bucket57to70])
	assert.Equal(t, counter(1, 0), p3.FoldToBet[model.StreetFlop][model.Bucket46to56])
}

func TestRiverValueLine(t *testing.T) {
	stats := statsFor(t, handtest.RiverValueLine)
	hero, villain := stats["Hero"], stats["Villain"]

	assert.Equal(t, counter(1, 0), villain.FoldByLine[model.LineBXB][model.Bucket80to100])

	cell := hero.RiverShowed[model.LineBXB][model.Bucket80to100]
	assert.Equal(t, 1, cell.Total)
	assert.Equal(t, 1, cell.Categories[model.CategoryTopHand])
	assert.InDelta(t, 100.0, cell.Share(model.CategoryTopHand), 1e-9)
	assert.Equal(t, counter(1, 1), hero.Stat(model.StatBetRiver))
}

func TestTripleBarrel(t *testing.T) {
	stats := statsFor(t, handtest.TripleBarrel)
	hero, villain := stats["Hero"], stats["Villain"]

	for _, id := range []model.StatID{model.StatCBetFlop, model.StatCBetTurn, model.StatCBetRiver} {
		assert.Equal(t, counter(1, 1), hero.Stat(id), id.String())
	}
	assert.Equal(t, counter(1, 0), villain.Stat(model.StatFoldToCBetFlop))
	assert.Equal(t, counter(1, 0), villain.Stat(model.StatFoldToCBetTurn))
	assert.Equal(t, counter(1, 1), villain.Stat(model.StatFoldToCBetRiver))
	assert.Equal(t, counter(1, 1), villain.Stat(model.StatFoldToCBetRiverOOP))

	assert.Equal(t, counter(1, 1), villain.Stat(model.StatCCFTripleBarrel))
	assert.Equal(t, counter(1, 1), villain.Stat(model.StatCallCallFoldRiverOOP))
	assert.Equal(t, model.Counter{}, villain.Stat(model.StatCallCallFoldRiverIP))
	assert.Equal(t, counter(1, 0), villain.CallFold[model.Bucket46to56])
	assert.Equal(t, counter(1, 1), villain.FoldByLine[model.LineBBB][model.Bucket46to56])
	assert.Equal(t, counter(1, 1), villain.FoldToBet[model.StreetRiver][model.Bucket46to56])

	assert.Equal(t, counter(1, 1), hero.Stat(model.StatBetRiver))
	assert.Equal(t, counter(1, 0), villain.Stat(model.StatBetRiver))
	assert.Equal(t, 0, hero.RiverShowed[model.LineBBB][model.Bucket46to56].Total)
}

func TestNineHandedFourBet(t *testing.T) {
	stats := statsFor(t, handtest.NineHandedAntes)
	require.Len(t, stats, 9)
	s5, s9 := stats["S5"], stats["S9"]

	assert.Equal(t, counter(1, 1), s9.Stat(model.StatOpenRaiseEP))
	assert.Equal(t, counter(1, 0), stats["S8"].Stat(model.StatOpenRaiseEP))
	assert.Equal(t, counter(1, 1), s5.Stat(model.StatThreeBet))
	assert.Equal(t, counter(1, 0), s9.Stat(model.StatFoldToThreeBet))
	assert.Equal(t, counter(1, 1), s9.Stat(model.StatFourBet))
	assert.Equal(t, counter(1, 0), s5.Stat(model.StatFoldToFourBet))
	assert.Equal(t, counter(1, 1), s5.Stat(model.StatVPIP))
	assert.Equal(t, counter(1, 0), stats["S7"].Stat(model.StatVPIP))
	assert.Equal(t, model.Counter{}, stats["S7"].Stat(model.StatFoldBBvsBTNSteal))
}

func TestHandWithoutPositionsIsSkipped(t *testing.T) {
	stats := Aggregate([]*model.Hand{{ID: "1"}, nil})
	assert.Empty(t, stats)
}

func TestAggregateDoesNotMutateHands(t *testing.T) {
	hands := parse(t, handtest.All...)
	pristine := parse(t, handtest.All...)
	Aggregate(hands)
	if diff := cmp.Diff(pristine, hands); diff != "" {
		t.Errorf("hands changed (-before +after):\n%s", diff)
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	hands := parse(t, handtest.All...)
	reversed := make([]*model.Hand, len(hands))
	for i, h := range hands {
		reversed[len(hands)-1-i] = h
	}
	assert.Equal(t, Aggregate(hands), Aggregate(reversed))
}

func TestMergeMatchesSinglePass(t *testing.T) {
	hands := parse(t, handtest.All...)
	whole := Aggregate(hands)

	left, right := Aggregate(hands[:4]), Aggregate(hands[4:])
	merged := make(model.StatsByPlayer)
	merged.Merge(left)
	merged.Merge(right)
	assert.Equal(t, whole, merged)

	swapped := make(model.StatsByPlayer)
	swapped.Merge(right)
	swapped.Merge(left)
	assert.Equal(t, whole, swapped)

	// merging must not alias the inputs
	before := left["P4"].Stat(model.StatPFR)
	merged["P4"].Record(model.StatPFR, true)
	assert.Equal(t, before, left["P4"].Stat(model.StatPFR))
}

func TestAggregateParallelMatchesSequential(t *testing.T) {
	hands := parse(t, handtest.All...)
	want := Aggregate(hands)
	for _, workers := range []int{0, 1, 3, 64} {
		got, err := AggregateParallel(context.Background(), hands, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestAggregateParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := AggregateParallel(ctx, parse(t, handtest.All...), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregateParallelEmpty(t *testing.T) {
	got, err := AggregateParallel(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}
