// Package parser turns raw hand-history text into finalized model.Hand
// records.
package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pable/go-poker-hud/internal/model"
)

// handParser is the per-block state machine.
type handParser struct {
	hand  *model.Hand
	block string

	street      model.Street
	buttonKnown bool
	positioned  bool
	seen        [model.NumStreets]bool
	state       *bettingState
}

// ParseHand parses one hand block. It returns false when the first line is
// not a valid hand header; lines that match no known grammar are skipped.
func ParseHand(block string) (*model.Hand, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	m := reHeader.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if m == nil {
		return nil, false
	}

	p := &handParser{
		hand: &model.Hand{
			ID:           m[1],
			TournamentID: m[2],
			Timestamp:    m[3],
			Positions:    make(map[string]string),
			HoleCards:    make(map[string]string),
		},
		block:  block,
		street: model.StreetPreDeal,
		state:  newBettingState(),
	}
	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p.line(line)
	}
	p.finish()
	return p.hand, true
}

func (p *handParser) line(line string) {
	for _, mk := range streetMarkers {
		if strings.HasPrefix(line, mk.prefix) {
			if mk.street != p.street {
				p.enterStreet(mk.street)
			}
			return
		}
	}

	if m := reTable.FindStringSubmatch(line); m != nil {
		p.hand.TableID = m[1]
		p.hand.MaxSeats = atoi(m[3])
		p.hand.ButtonSeat = atoi(m[4])
		p.buttonKnown = true
		return
	}
	if m := reSeat.FindStringSubmatch(line); m != nil {
		seat := model.Seat{Number: atoi(m[1]), Name: m[2], Stack: atoi(m[3])}
		if m[4] != "" {
			seat.Bounty, _ = strconv.ParseFloat(m[4], 64)
		}
		p.setSeat(seat)
		return
	}
	if m := reDealt.FindStringSubmatch(line); m != nil {
		p.hand.Hero = m[1]
		p.hand.HoleCards[m[1]] = m[2]
		return
	}

	if !p.positioned && p.buttonKnown && p.street.IsBetting() && p.mentionsSeatedPlayer(line) {
		p.assignPositions()
	}

	if m := reBoardLine.FindStringSubmatch(line); m != nil {
		p.hand.Board = strings.Fields(m[1])
		return
	}
	a, ok := parseAction(line)
	if !ok || a.Player == "" {
		return
	}
	if a.Kind == model.ActionShow {
		p.hand.HoleCards[a.Player] = a.Cards
	}

	a.Street = p.street
	switch {
	case p.street.IsBetting():
		p.add(a)
	case p.street == model.StreetPreDeal && a.Kind.IsBlind():
		p.add(a)
	case p.street == model.StreetShowdown || p.street == model.StreetSummary:
		switch a.Kind {
		case model.ActionShow, model.ActionMuck, model.ActionDeclineShow, model.ActionCollect, model.ActionUncalledReturned:
			p.record(a)
		}
	}
}

// parseAction classifies a player action line.
func parseAction(line string) (model.Action, bool) {
	if m := reAnte.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionPostAnte, Amount: atoi(m[2])}, true
	}
	if m := reSB.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionPostSmallBlind, Amount: atoi(m[2])}, true
	}
	if m := reBB.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionPostBigBlind, Amount: atoi(m[2])}, true
	}
	if m := reFolds.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionFold}, true
	}
	if m := reChecks.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionCheck}, true
	}
	if m := reCalls.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionCall, Amount: atoi(m[2]), AllIn: m[3] != ""}, true
	}
	if m := reBets.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionBet, Amount: atoi(m[2]), AllIn: m[3] != ""}, true
	}
	if m := reRaises.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionRaise, Amount: atoi(m[2]), RaiseTo: atoi(m[3]), AllIn: m[4] != ""}, true
	}
	if m := reUncalled.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[2], Kind: model.ActionUncalledReturned, Amount: atoi(m[1])}, true
	}
	if m := reCollected.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionCollect, Amount: atoi(m[2])}, true
	}
	if m := reShows.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionShow, Cards: m[2], Description: m[3]}, true
	}
	if m := reNoShow.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionDeclineShow}, true
	}
	if m := reMucks.FindStringSubmatch(line); m != nil {
		return model.Action{Player: m[1], Kind: model.ActionMuck}, true
	}
	return model.Action{}, false
}

func (p *handParser) enterStreet(next model.Street) {
	if p.street.IsBetting() {
		p.hand.SetAggressor(p.street, p.state.aggressor)
	}
	p.street = next

	switch next {
	case model.StreetFlop, model.StreetTurn, model.StreetRiver:
		p.state.resetStreet(p.hand.Aggressor(next - 1))
	case model.StreetPreflop:
		if p.buttonKnown && !p.positioned {
			p.assignPositions()
		}
	case model.StreetSummary:
		if m := reBoardAny.FindStringSubmatch(p.block); m != nil {
			p.hand.Board = strings.Fields(m[1])
		}
	}
}

// add stamps the derived fields of a, appends it and applies it to the
// betting state.
func (p *handParser) add(a model.Action) {
	p.state.stamp(&a)
	p.record(a)
	p.state.apply(p.hand, a)

	if a.Street.IsBetting() {
		p.seen[a.Street] = true
	}
	if a.Street == model.StreetPreflop && a.Kind.IsAggressive() {
		p.hand.PreflopRaises++
		if p.hand.PreflopRaises == 1 && p.hand.FirstRaiser == "" {
			p.hand.FirstRaiser = a.Player
		}
	}
}

func (p *handParser) record(a model.Action) {
	a.Seq = len(p.hand.Actions) + 1
	p.hand.Actions = append(p.hand.Actions, a)
}

func (p *handParser) setSeat(seat model.Seat) {
	for i := range p.hand.Seats {
		if p.hand.Seats[i].Number == seat.Number {
			p.hand.Seats[i] = seat
			return
		}
	}
	p.hand.Seats = append(p.hand.Seats, seat)
	sort.Slice(p.hand.Seats, func(i, j int) bool { return p.hand.Seats[i].Number < p.hand.Seats[j].Number })
}

func (p *handParser) mentionsSeatedPlayer(line string) bool {
	for _, s := range p.hand.Seats {
		if s.Name != "" && strings.Contains(line, s.Name+": ") {
			return true
		}
	}
	return false
}

func (p *handParser) assignPositions() {
	var active []model.Seat
	for _, s := range p.hand.Seats {
		if s.Active() {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return
	}
	p.hand.Positions = AssignPositions(active, p.hand.ButtonSeat)
	p.positioned = true
}

// finish commits the aggressor of the street the block ended on and
// resolves actor order.
func (p *handParser) finish() {
	switch p.street {
	case model.StreetRiver:
		p.hand.RiverAggressor = p.state.aggressor
	case model.StreetTurn:
		if !p.seen[model.StreetRiver] {
			p.hand.TurnAggressor = p.state.aggressor
		}
	case model.StreetFlop:
		if !p.seen[model.StreetTurn] && !p.seen[model.StreetRiver] {
			p.hand.FlopAggressor = p.state.aggressor
		}
	}
	p.hand.Pot = p.state.pot
	p.hand.ResolveActorOrder()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
