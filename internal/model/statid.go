package model

import "fmt"

// StatID identifies a scalar opportunity/action statistic.
type StatID int

const (
	StatVPIP StatID = iota
	StatPFR
	StatThreeBet
	StatFoldToThreeBet
	StatSqueeze
	StatFourBet
	StatFoldToFourBet
	StatFoldBBvsBTNSteal
	StatFoldBBvsCOSteal
	StatFoldBBvsSBSteal
	StatOpenRaiseEP
	StatOpenRaiseMP
	StatOpenRaiseCO
	StatOpenRaiseBTN
	StatOpenRaiseSB
	StatCallOpenRaiseEP
	StatCallOpenRaiseMP
	StatCallOpenRaiseCO
	StatCallOpenRaiseBTN
	StatCallOpenRaiseSB
	StatCallOpenRaiseBB

	StatCBetFlop
	StatCBetFlopIP
	StatCBetFlopOOP
	StatFoldToCBetFlop
	StatFoldToCBetFlopIP
	StatFoldToCBetFlopOOP
	StatDonkFlop
	StatFoldToDonkFlop
	StatBetVsMissedCBetFlop
	StatFoldToBetVsMissedCBetFlop
	StatCheckCallFlop
	StatCheckFoldFlop
	StatCheckRaiseFlop
	StatFoldToCheckRaiseFlop
	StatPFASkipCBetCheckCallFlop
	StatPFASkipCBetCheckFoldFlop
	StatPFASkipCBetCheckRaiseFlop

	StatCBetTurn
	StatFoldToCBetTurn
	StatFoldToCBetTurnIP
	StatFoldToCBetTurnOOP
	StatDonkTurn
	StatFoldToDonkTurn
	StatProbeTurn
	StatFoldToProbeTurn
	StatBetVsMissedCBetTurn
	StatFoldToBetVsMissedCBetTurn
	StatCheckCallTurn
	StatCheckFoldTurn
	StatCheckRaiseTurn
	StatFoldToCheckRaiseTurn

	StatCBetRiver
	StatFoldToCBetRiver
	StatFoldToCBetRiverIP
	StatFoldToCBetRiverOOP
	StatBetRiver
	StatDonkRiver
	StatFoldToDonkRiver
	StatProbeRiver
	StatFoldToProbeRiver
	StatBetVsMissedCBetRiver
	StatFoldToBetVsMissedCBetRiver
	StatCheckCallRiver
	StatCheckFoldRiver
	StatCheckRaiseRiver
	StatFoldToCheckRaiseRiver
	StatCallCallFoldRiverIP
	StatCallCallFoldRiverOOP
	StatCCFTripleBarrel
	StatBBFvsDonkRiver

	NumStats
)

// Section groups statistics for display.
type Section int

const (
	SectionPreflop Section = iota
	SectionOpenRaise
	SectionCallOpenRaise
	SectionFlop
	SectionTurn
	SectionRiver
)

func (s Section) String() string {
	switch s {
	case SectionPreflop:
		return "Preflop"
	case SectionOpenRaise:
		return "Open Raise"
	case SectionCallOpenRaise:
		return "Call Open Raise"
	case SectionFlop:
		return "Flop"
	case SectionTurn:
		return "Turn"
	case SectionRiver:
		return "River"
	}
	return "?"
}

// StatDefinition describes one scalar statistic.
type StatDefinition struct {
	ID      StatID
	Key     string // stable snake_case key used in storage and exports
	Label   string // display label; the display name is Label + " (%)"
	Section Section
}

// DisplayName is the name the statistic is shown under.
func (d StatDefinition) DisplayName() string {
	return d.Label + " (%)"
}

var statRegistry = [NumStats]StatDefinition{
	{StatVPIP, "vpip", "VPIP", SectionPreflop},
	{StatPFR, "pfr", "PFR", SectionPreflop},
	{StatThreeBet, "three_bet_pf", "3Bet PF", SectionPreflop},
	{StatFoldToThreeBet, "fold_to_pf_3bet", "Fold to PF 3Bet", SectionPreflop},
	{StatSqueeze, "squeeze_pf", "Squeeze PF", SectionPreflop},
	{StatFourBet, "four_bet_pf", "4Bet PF", SectionPreflop},
	{StatFoldToFourBet, "fold_to_pf_4bet", "Fold to PF 4Bet", SectionPreflop},
	{StatFoldBBvsBTNSteal, "fold_bb_vs_btn_steal", "Fold BB vs BTN Steal", SectionPreflop},
	{StatFoldBBvsCOSteal, "fold_bb_vs_co_steal", "Fold BB vs CO Steal", SectionPreflop},
	{StatFoldBBvsSBSteal, "fold_bb_vs_sb_steal", "Fold BB vs SB Steal", SectionPreflop},
	{StatOpenRaiseEP, "open_raise_ep", "OR EP", SectionOpenRaise},
	{StatOpenRaiseMP, "open_raise_mp", "OR MP", SectionOpenRaise},
	{StatOpenRaiseCO, "open_raise_co", "OR CO", SectionOpenRaise},
	{StatOpenRaiseBTN, "open_raise_btn", "OR BTN", SectionOpenRaise},
	{StatOpenRaiseSB, "open_raise_sb", "OR SB", SectionOpenRaise},
	{StatCallOpenRaiseEP, "call_open_raise_ep", "Call OR EP", SectionCallOpenRaise},
	{StatCallOpenRaiseMP, "call_open_raise_mp", "Call OR MP", SectionCallOpenRaise},
	{StatCallOpenRaiseCO, "call_open_raise_co", "Call OR CO", SectionCallOpenRaise},
	{StatCallOpenRaiseBTN, "call_open_raise_btn", "Call OR BTN", SectionCallOpenRaise},
	{StatCallOpenRaiseSB, "call_open_raise_sb", "Call OR SB", SectionCallOpenRaise},
	{StatCallOpenRaiseBB, "call_open_raise_bb", "Call OR BB", SectionCallOpenRaise},

	{StatCBetFlop, "cbet_flop", "CBet Flop", SectionFlop},
	{StatCBetFlopIP, "cbet_flop_ip", "CBet Flop IP", SectionFlop},
	{StatCBetFlopOOP, "cbet_flop_oop", "CBet Flop OOP", SectionFlop},
	{StatFoldToCBetFlop, "fold_to_flop_cbet", "Fold to Flop CBet", SectionFlop},
	{StatFoldToCBetFlopIP, "fold_to_flop_cbet_ip", "Fold to Flop CBet IP", SectionFlop},
	{StatFoldToCBetFlopOOP, "fold_to_flop_cbet_oop", "Fold to Flop CBet OOP", SectionFlop},
	{StatDonkFlop, "donk_bet_flop", "Donk Bet Flop", SectionFlop},
	{StatFoldToDonkFlop, "fold_to_donk_bet_flop", "Fold to Donk Flop", SectionFlop},
	{StatBetVsMissedCBetFlop, "bet_vs_missed_cbet_flop", "Bet vs Missed CBet Flop", SectionFlop},
	{StatFoldToBetVsMissedCBetFlop, "fold_to_bet_vs_missed_cbet_flop", "Fold to Bet vs Missed CBet Flop", SectionFlop},
	{StatCheckCallFlop, "check_call_flop", "Check-Call Flop", SectionFlop},
	{StatCheckFoldFlop, "check_fold_flop", "Check-Fold Flop", SectionFlop},
	{StatCheckRaiseFlop, "check_raise_flop", "Check-Raise Flop", SectionFlop},
	{StatFoldToCheckRaiseFlop, "fold_to_check_raise_flop", "Fold to XR Flop", SectionFlop},
	{StatPFASkipCBetCheckCallFlop, "pfa_skipped_cbet_then_check_call_flop", "PFA SkipCB&XC Flop", SectionFlop},
	{StatPFASkipCBetCheckFoldFlop, "pfa_skipped_cbet_then_check_fold_flop", "PFA SkipCB&XF Flop", SectionFlop},
	{StatPFASkipCBetCheckRaiseFlop, "pfa_skipped_cbet_then_check_raise_flop", "PFA SkipCB&XR Flop", SectionFlop},

	{StatCBetTurn, "cbet_turn", "CBet Turn", SectionTurn},
	{StatFoldToCBetTurn, "fold_to_turn_cbet", "Fold to Turn CBet", SectionTurn},
	{StatFoldToCBetTurnIP, "fold_to_turn_cbet_ip", "Fold to Turn CBet IP", SectionTurn},
	{StatFoldToCBetTurnOOP, "fold_to_turn_cbet_oop", "Fold to Turn CBet OOP", SectionTurn},
	{StatDonkTurn, "donk_bet_turn", "Donk Bet Turn", SectionTurn},
	{StatFoldToDonkTurn, "fold_to_donk_bet_turn", "Fold to Donk Turn", SectionTurn},
	{StatProbeTurn, "probe_bet_turn", "Probe Bet Turn", SectionTurn},
	{StatFoldToProbeTurn, "fold_to_probe_bet_turn", "Fold to Probe Turn", SectionTurn},
	{StatBetVsMissedCBetTurn, "bet_vs_missed_cbet_turn", "Bet vs Missed CBet Turn", SectionTurn},
	{StatFoldToBetVsMissedCBetTurn, "fold_to_bet_vs_missed_cbet_turn", "Fold to Bet vs Missed CBet Turn", SectionTurn},
	{StatCheckCallTurn, "check_call_turn", "Check-Call Turn", SectionTurn},
	{StatCheckFoldTurn, "check_fold_turn", "Check-Fold Turn", SectionTurn},
	{StatCheckRaiseTurn, "check_raise_turn", "Check-Raise Turn", SectionTurn},
	{StatFoldToCheckRaiseTurn, "fold_to_check_raise_turn", "Fold to XR Turn", SectionTurn},

	{StatCBetRiver, "cbet_river", "CBet River", SectionRiver},
	{StatFoldToCBetRiver, "fold_to_river_cbet", "Fold to River CBet", SectionRiver},
	{StatFoldToCBetRiverIP, "fold_to_river_cbet_ip", "Fold to River CBet IP", SectionRiver},
	{StatFoldToCBetRiverOOP, "fold_to_river_cbet_oop", "Fold to River CBet OOP", SectionRiver},
	{StatBetRiver, "bet_river", "Bet River", SectionRiver},
	{StatDonkRiver, "donk_bet_river", "Donk Bet River", SectionRiver},
	{StatFoldToDonkRiver, "fold_to_donk_bet_river", "Fold to Donk River", SectionRiver},
	{StatProbeRiver, "probe_bet_river", "Probe Bet River", SectionRiver},
	{StatFoldToProbeRiver, "fold_to_probe_bet_river", "Fold to Probe River", SectionRiver},
	{StatBetVsMissedCBetRiver, "bet_vs_missed_cbet_river", "Bet vs Missed CBet River", SectionRiver},
	{StatFoldToBetVsMissedCBetRiver, "fold_to_bet_vs_missed_cbet_river", "Fold to Bet vs Missed CBet River", SectionRiver},
	{StatCheckCallRiver, "check_call_river", "Check-Call River", SectionRiver},
	{StatCheckFoldRiver, "check_fold_river", "Check-Fold River", SectionRiver},
	{StatCheckRaiseRiver, "check_raise_river", "Check-Raise River", SectionRiver},
	{StatFoldToCheckRaiseRiver, "fold_to_check_raise_river", "Fold to XR River", SectionRiver},
	{StatCallCallFoldRiverIP, "call_call_fold_river_ip", "CCF River IP", SectionRiver},
	{StatCallCallFoldRiverOOP, "call_call_fold_river_oop", "CCF River OOP", SectionRiver},
	{StatCCFTripleBarrel, "ccf_triple_barrel", "CCF vs Triple Barrel", SectionRiver},
	{StatBBFvsDonkRiver, "bbf_vs_donk_river", "BBF vs Donk River", SectionRiver},
}

var (
	statsByKey     = make(map[string]StatID, NumStats)
	statsByDisplay = make(map[string]StatID, NumStats)
)

func init() {
	for i, d := range statRegistry {
		if d.ID != StatID(i) {
			panic(fmt.Sprintf("stat registry out of order at %d (%s)", i, d.Key))
		}
		statsByKey[d.Key] = d.ID
		statsByDisplay[d.DisplayName()] = d.ID
	}
}

// Definition returns the registry entry for id.
func (id StatID) Definition() StatDefinition {
	return statRegistry[id]
}

func (id StatID) String() string {
	if id < 0 || id >= NumStats {
		return "?"
	}
	return statRegistry[id].Key
}

// Definitions returns every scalar statistic in display order.
func Definitions() []StatDefinition {
	return statRegistry[:]
}

// StatByKey resolves a storage key such as "three_bet_pf".
func StatByKey(key string) (StatID, bool) {
	id, ok := statsByKey[key]
	return id, ok
}

// LookupStat resolves a display name such as "3Bet PF (%)".
func LookupStat(display string) (StatID, bool) {
	id, ok := statsByDisplay[display]
	return id, ok
}

// Per-street tables for the statistic families that repeat across streets.
// Entries for streets a family does not cover are -1.
type streetStats [NumStreets]StatID

func perStreet(flop, turn, river StatID) streetStats {
	t := streetStats{-1, -1, -1, -1, -1, -1, -1}
	t[StreetFlop], t[StreetTurn], t[StreetRiver] = flop, turn, river
	return t
}

// For returns the statistic for street s, and whether the family covers it.
func (t streetStats) For(s Street) (StatID, bool) {
	if s < 0 || s >= NumStreets || t[s] < 0 {
		return 0, false
	}
	return t[s], true
}

var (
	CBetStats             = perStreet(StatCBetFlop, StatCBetTurn, StatCBetRiver)
	FoldToCBetStats       = perStreet(StatFoldToCBetFlop, StatFoldToCBetTurn, StatFoldToCBetRiver)
	FoldToCBetIPStats     = perStreet(StatFoldToCBetFlopIP, StatFoldToCBetTurnIP, StatFoldToCBetRiverIP)
	FoldToCBetOOPStats    = perStreet(StatFoldToCBetFlopOOP, StatFoldToCBetTurnOOP, StatFoldToCBetRiverOOP)
	DonkStats             = perStreet(StatDonkFlop, StatDonkTurn, StatDonkRiver)
	FoldToDonkStats       = perStreet(StatFoldToDonkFlop, StatFoldToDonkTurn, StatFoldToDonkRiver)
	ProbeStats            = perStreet(-1, StatProbeTurn, StatProbeRiver)
	FoldToProbeStats      = perStreet(-1, StatFoldToProbeTurn, StatFoldToProbeRiver)
	BetVsMissedStats      = perStreet(StatBetVsMissedCBetFlop, StatBetVsMissedCBetTurn, StatBetVsMissedCBetRiver)
	FoldToBetVsMissed     = perStreet(StatFoldToBetVsMissedCBetFlop, StatFoldToBetVsMissedCBetTurn, StatFoldToBetVsMissedCBetRiver)
	CheckCallStats        = perStreet(StatCheckCallFlop, StatCheckCallTurn, StatCheckCallRiver)
	CheckFoldStats        = perStreet(StatCheckFoldFlop, StatCheckFoldTurn, StatCheckFoldRiver)
	CheckRaiseStats       = perStreet(StatCheckRaiseFlop, StatCheckRaiseTurn, StatCheckRaiseRiver)
	FoldToCheckRaiseStats = perStreet(StatFoldToCheckRaiseFlop, StatFoldToCheckRaiseTurn, StatFoldToCheckRaiseRiver)
)

// OpenRaiseStat returns the open-raise statistic for a position category.
func OpenRaiseStat(c PositionCategory) (StatID, bool) {
	switch c {
	case CategoryEP:
		return StatOpenRaiseEP, true
	case CategoryMP:
		return StatOpenRaiseMP, true
	case CategoryCO:
		return StatOpenRaiseCO, true
	case CategoryBTN:
		return StatOpenRaiseBTN, true
	case CategorySB:
		return StatOpenRaiseSB, true
	}
	return 0, false
}

// CallOpenRaiseStat returns the call-open-raise statistic for a position category.
func CallOpenRaiseStat(c PositionCategory) (StatID, bool) {
	if c == CategoryBB {
		return StatCallOpenRaiseBB, true
	}
	if id, ok := OpenRaiseStat(c); ok {
		return id + (StatCallOpenRaiseEP - StatOpenRaiseEP), true
	}
	return 0, false
}
