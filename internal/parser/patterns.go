package parser

import (
	"regexp"

	"github.com/pable/go-poker-hud/internal/model"
)

// HeaderPrefix starts every hand block.
const HeaderPrefix = "PokerStars Hand #"

var (
	reHeader = regexp.MustCompile(`^PokerStars Hand #(\d+): Tournament #(\d+),` +
		`.*?` +
		`(?:- Match Round .*?,)?\s*Level\s+.*?` +
		` - ` +
		`(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} \w+)`)
	reTable = regexp.MustCompile(`^Table '(\d+) (\d+)' (\d+)-max Seat #(\d+) is the button`)
	reSeat  = regexp.MustCompile(`^Seat (\d+): (.*?) \((\d+) in chips(?:, \$([\d\.]+) bounty)?\)`)
	reDealt = regexp.MustCompile(`^Dealt to (.*?) \[(.*?)\]`)

	reAnte = regexp.MustCompile(`^(.*?): posts the ante (\d+)`)
	reSB   = regexp.MustCompile(`^(.*?): posts small blind (\d+)`)
	reBB   = regexp.MustCompile(`^(.*?): posts big blind (\d+)`)

	reFolds  = regexp.MustCompile(`^(.*?): folds`)
	reChecks = regexp.MustCompile(`^(.*?): checks`)
	reCalls  = regexp.MustCompile(`^(.*?): calls (\d+)( and is all-in)?`)
	reBets   = regexp.MustCompile(`^(.*?): bets (\d+)( and is all-in)?`)
	reRaises = regexp.MustCompile(`^(.*?): raises (\d+) to (\d+)( and is all-in)?`)

	reUncalled  = regexp.MustCompile(`^Uncalled bet \((\d+)\) returned to (.*)`)
	reCollected = regexp.MustCompile(`^(.*?):? collected (\d+) from (?:side |main )?pot`)
	reShows     = regexp.MustCompile(`^(.*?): shows \[(.*?)\](?: \((.*?)\))?`)
	reNoShow    = regexp.MustCompile(`^(.*?): doesn't show hand`)
	reMucks     = regexp.MustCompile(`^(.*?): mucks hand`)

	reBoardLine = regexp.MustCompile(`^Board \[(.*?)\]`)
	reBoardAny  = regexp.MustCompile(`Board \[(.*?)\]`)
)

// streetMarkers maps section markers to the street they open.
var streetMarkers = []struct {
	prefix string
	street model.Street
}{
	{"*** HOLE CARDS ***", model.StreetPreflop},
	{"*** FLOP ***", model.StreetFlop},
	{"*** TURN ***", model.StreetTurn},
	{"*** RIVER ***", model.StreetRiver},
	{"*** SHOW DOWN ***", model.StreetShowdown},
	{"*** SUMMARY ***", model.StreetSummary},
}
