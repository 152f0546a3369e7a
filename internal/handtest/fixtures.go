// Package handtest holds hand-history fixtures shared by package tests.
package handtest

import (
	"fmt"
	"strings"
)

func header(id, level, clock string) string {
	return fmt.Sprintf("PokerStars Hand #%s: Tournament #3141592653, $1.00+$0.10 USD Hold'em No Limit - Level %s - 2024/01/15 %s ET", id, level, clock)
}

func block(parts ...[]string) string {
	var lines []string
	for _, p := range parts {
		lines = append(lines, p...)
	}
	return strings.Join(lines, "\n") + "\n"
}

func sixMax(table string) []string {
	return []string{
		"Table '3141592653 " + table + "' 6-max Seat #1 is the button",
		"Seat 1: P1 (3000 in chips)",
		"Seat 2: P2 (3000 in chips)",
		"Seat 3: P3 (3000 in chips)",
		"Seat 4: P4 (3000 in chips)",
		"Seat 5: P5 (3000 in chips)",
		"Seat 6: P6 (3000 in chips)",
		"P2: posts small blind 25",
		"P3: posts big blind 50",
	}
}

func headsUp(table string) []string {
	return []string{
		"Table '3141592653 " + table + "' 2-max Seat #1 is the button",
		"Seat 1: Hero (5000 in chips)",
		"Seat 2: Villain (5000 in chips)",
		"Hero: posts small blind 50",
		"Villain: posts big blind 100",
	}
}

// HeadsUpWalk: Alice (button, small blind) folds to Bob.
var HeadsUpWalk = block([]string{
	header("1234567890", "I (10/20)", "12:00:00"),
	"Table '3141592653 1' 2-max Seat #1 is the button",
	"Seat 1: Alice (1500 in chips)",
	"Seat 2: Bob (1500 in chips)",
	"Alice: posts small blind 10",
	"Bob: posts big blind 20",
	"*** HOLE CARDS ***",
	"Dealt to Alice [7c 2d]",
	"Alice: folds",
	"Uncalled bet (10) returned to Bob",
	"Bob collected 20 from pot",
	"*** SUMMARY ***",
	"Total pot 20 | Rake 0",
	"Seat 1: Alice (button) (small blind) folded before Flop",
	"Seat 2: Bob (big blind) collected (20)",
})

// ThreeBetFold: UTG (P4) opens to 3x, the big blind (P3) 3-bets and UTG folds.
var ThreeBetFold = block([]string{
	header("2000000001", "II (25/50)", "12:05:00"),
}, sixMax("2"), []string{
	"*** HOLE CARDS ***",
	"Dealt to P4 [As Qd]",
	"P4: raises 100 to 150",
	"P5: folds",
	"P6: folds",
	"P1: folds",
	"P2: folds",
	"P3: raises 350 to 500",
	"P4: folds",
	"Uncalled bet (350) returned to P3",
	"P3 collected 325 from pot",
	"*** SUMMARY ***",
	"Total pot 325 | Rake 0",
})

// MissedCBet: P4 opens, P1 calls on the button. P4 checks the flop, P1 bets
// half the pot and P4 calls; turn and river are checked through.
var MissedCBet = block([]string{
	header("2000000002", "II (25/50)", "12:06:00"),
}, sixMax("2"), []string{
	"*** HOLE CARDS ***",
	"Dealt to P4 [8h 8d]",
	"P4: raises 100 to 150",
	"P5: folds",
	"P6: folds",
	"P1: calls 150",
	"P2: folds",
	"P3: folds",
	"*** FLOP *** [Kc 9d 4s]",
	"P4: checks",
	"P1: bets 187",
	"P4: calls 187",
	"*** TURN *** [Kc 9d 4s] [2h]",
	"P4: checks",
	"P1: checks",
	"*** RIVER *** [Kc 9d 4s 2h] [3c]",
	"P4: checks",
	"P1: checks",
	"*** SHOW DOWN ***",
	"P4: shows [8h 8d] (a pair of Eights)",
	"P1: mucks hand",
	"P4 collected 749 from pot",
	"*** SUMMARY ***",
	"Total pot 749 | Rake 0",
	"Board [Kc 9d 4s 2h 3c]",
})

// MissedCBetReraised: P4 skips the c-bet, check-raises P1's bet and folds
// to the 3-bet.
var MissedCBetReraised = block([]string{
	header("2000000004", "II (25/50)", "12:08:00"),
}, sixMax("2"), []string{
	"*** HOLE CARDS ***",
	"P4: raises 100 to 150",
	"P5: folds",
	"P6: folds",
	"P1: calls 150",
	"P2: folds",
	"P3: folds",
	"*** FLOP *** [Kc 9d 4s]",
	"P4: checks",
	"P1: bets 187",
	"P4: raises 413 to 600",
	"P1: raises 900 to 1500",
	"P4: folds",
	"Uncalled bet (900) returned to P1",
	"P1 collected 1575 from pot",
	"*** SUMMARY ***",
	"Total pot 1575 | Rake 0",
	"Board [Kc 9d 4s]",
})

// BoardOverride carries a stray board line before the summary.
var BoardOverride = block([]string{
	header("2000000003", "II (25/50)", "12:07:00"),
}, sixMax("2"), []string{
	"*** HOLE CARDS ***",
	"P4: raises 100 to 150",
	"P5: folds",
	"P6: folds",
	"P1: calls 150",
	"P2: folds",
	"P3: folds",
	"*** FLOP *** [Ah Kd 2c]",
	"Board [7s 8s 9s]",
	"P4: checks",
	"P1: checks",
	"*** SUMMARY ***",
	"Total pot 375 | Rake 0",
	"Board [Ah Kd 2c]",
})

// CBetFold: P4 opens, P1 calls, P4 c-bets 200 into 375 and P1 folds.
var CBetFold = block([]string{
	header("3000000001", "II (25/50)", "12:10:00"),
}, sixMax("2"), []string{
	"*** HOLE CARDS ***",
	"Dealt to P4 [Ah Kh]",
	"P4: raises 100 to 150",
	"P5: folds",
	"P6: folds",
	"P1: calls 150",
	"P2: folds",
	"P3: folds",
	"*** FLOP *** [Qs 7d 2c]",
	"P4: bets 200",
	"P1: folds",
	"Uncalled bet (200) returned to P4",
	"P4 collected 375 from pot",
	"*** SUMMARY ***",
	"Total pot 375 | Rake 0",
	"Board [Qs 7d 2c]",
})

// RiverValueLine: heads-up, Hero bets flop, checks turn and bets 75% of the
// pot on the river; Villain calls and Hero shows a set.
var RiverValueLine = block([]string{
	header("4000000001", "III (50/100)", "12:20:00"),
}, headsUp("3"), []string{
	"*** HOLE CARDS ***",
	"Dealt to Hero [Kc Kd]",
	"Hero: raises 150 to 250",
	"Villain: calls 150",
	"*** FLOP *** [Ks 8h 3d]",
	"Villain: checks",
	"Hero: bets 250",
	"Villain: calls 250",
	"*** TURN *** [Ks 8h 3d] [2c]",
	"Villain: checks",
	"Hero: checks",
	"*** RIVER *** [Ks 8h 3d 2c] [Jd]",
	"Villain: checks",
	"Hero: bets 750",
	"Villain: calls 750",
	"*** SHOW DOWN ***",
	"Hero: shows [Kc Kd] (three of a kind, Kings)",
	"Villain: mucks hand",
	"Hero collected 2500 from pot",
	"*** SUMMARY ***",
	"Total pot 2500 | Rake 0",
	"Board [Ks 8h 3d 2c Jd]",
	"Seat 1: Hero (button) (small blind) showed [Kc Kd] and won (2500) with three of a kind, Kings",
	"Seat 2: Villain (big blind) mucked",
})

// TripleBarrel: heads-up, Hero bets half pot on every street; Villain
// check-calls flop and turn and folds the river.
var TripleBarrel = block([]string{
	header("4000000002", "III (50/100)", "12:22:00"),
}, headsUp("3"), []string{
	"*** HOLE CARDS ***",
	"Hero: raises 150 to 250",
	"Villain: calls 150",
	"*** FLOP *** [Ts 6h 2d]",
	"Villain: checks",
	"Hero: bets 250",
	"Villain: calls 250",
	"*** TURN *** [Ts 6h 2d] [Qc]",
	"Villain: checks",
	"Hero: bets 500",
	"Villain: calls 500",
	"*** RIVER *** [Ts 6h 2d Qc] [4s]",
	"Villain: checks",
	"Hero: bets 1000",
	"Villain: folds",
	"Uncalled bet (1000) returned to Hero",
	"Hero collected 2000 from pot",
	"*** SUMMARY ***",
	"Total pot 2000 | Rake 0",
	"Board [Ts 6h 2d Qc 4s]",
})

// DonkFold: P1 opens the button, the big blind calls and donk-bets the flop.
var DonkFold = block([]string{
	header("5000000001", "II (25/50)", "12:30:00"),
}, sixMax("4"), []string{
	"*** HOLE CARDS ***",
	"P4: folds",
	"P5: folds",
	"P6: folds",
	"P1: raises 75 to 125",
	"P2: folds",
	"P3: calls 75",
	"*** FLOP *** [9c 8c 7d]",
	"P3: bets 150",
	"P1: folds",
	"Uncalled bet (150) returned to P3",
	"P3 collected 275 from pot",
	"*** SUMMARY ***",
	"Total pot 275 | Rake 0",
	"Board [9c 8c 7d]",
})

// CheckRaise: P4 opens, the big blind calls, checks, and raises the c-bet.
var CheckRaise = block([]string{
	header("5000000002", "II (25/50)", "12:31:00"),
}, sixMax("4"), []string{
	"*** HOLE CARDS ***",
	"P4: raises 100 to 150",
	"P5: folds",
	"P6: folds",
	"P1: folds",
	"P2: folds",
	"P3: calls 100",
	"*** FLOP *** [Jh 5s 5d]",
	"P3: checks",
	"P4: bets 200",
	"P3: raises 400 to 600",
	"P4: folds",
	"Uncalled bet (400) returned to P3",
	"P3 collected 725 from pot",
	"*** SUMMARY ***",
	"Total pot 725 | Rake 0",
	"Board [Jh 5s 5d]",
})

// NineHandedAntes is a full-ring hand with antes, a 3-bet and a 4-bet
// all-in called preflop.
var NineHandedAntes = block([]string{
	header("6000000001", "V (100/200)", "13:00:00"),
	"Table '3141592653 7' 9-max Seat #5 is the button",
	"Seat 1: S1 (8000 in chips)",
	"Seat 2: S2 (8000 in chips, $2.50 bounty)",
	"Seat 3: S3 (8000 in chips)",
	"Seat 4: S4 (8000 in chips)",
	"Seat 5: S5 (8000 in chips)",
	"Seat 6: S6 (8000 in chips)",
	"Seat 7: S7 (8000 in chips)",
	"Seat 8: S8 (8000 in chips)",
	"Seat 9: S9 (8000 in chips)",
	"S1: posts the ante 25",
	"S2: posts the ante 25",
	"S3: posts the ante 25",
	"S4: posts the ante 25",
	"S5: posts the ante 25",
	"S6: posts the ante 25",
	"S7: posts the ante 25",
	"S8: posts the ante 25",
	"S9: posts the ante 25",
	"S6: posts small blind 100",
	"S7: posts big blind 200",
	"*** HOLE CARDS ***",
	"S8: folds",
	"S9: raises 200 to 400",
	"S1: folds",
	"S2: folds",
	"S3: folds",
	"S4: folds",
	"S5: raises 800 to 1200",
	"S6: folds",
	"S7: folds",
	"S9: raises 6775 to 7975 and is all-in",
	"S5: calls 6775",
	"*** FLOP *** [2s 3s 4s]",
	"*** TURN *** [2s 3s 4s] [5d]",
	"*** RIVER *** [2s 3s 4s 5d] [Kh]",
	"*** SHOW DOWN ***",
	"S9: shows [Ac Ad] (a straight, Ace to Five)",
	"S5: shows [Kc Ks] (a straight, Ace to Five)",
	"S9 collected 8238 from pot",
	"S5 collected 8237 from pot",
	"*** SUMMARY ***",
	"Total pot 16475 | Rake 0",
	"Board [2s 3s 4s 5d Kh]",
})

// Malformed has no hand header.
const Malformed = "this is not a hand history\nSeat 1: Nobody (100 in chips)\n"

// Session concatenates hands the way a client writes them to one file.
func Session(hands ...string) string {
	return strings.Join(hands, "\n\n\n")
}

// All lists every well-formed fixture.
var All = []string{
	HeadsUpWalk, ThreeBetFold, MissedCBet, BoardOverride, CBetFold,
	RiverValueLine, TripleBarrel, DonkFold, CheckRaise, NineHandedAntes,
}
