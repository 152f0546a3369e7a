package model

// Street is a betting round, plus the pseudo-streets that bracket a hand.
type Street int

const (
	StreetPreDeal Street = iota
	StreetPreflop
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
	StreetSummary

	NumStreets
)

func (s Street) String() string {
	switch s {
	case StreetPreDeal:
		return "Pre-deal"
	case StreetPreflop:
		return "Preflop"
	case StreetFlop:
		return "Flop"
	case StreetTurn:
		return "Turn"
	case StreetRiver:
		return "River"
	case StreetShowdown:
		return "Showdown"
	case StreetSummary:
		return "Summary"
	default:
		return "?"
	}
}

// IsBetting reports whether players can bet on s.
func (s Street) IsBetting() bool {
	return s >= StreetPreflop && s <= StreetRiver
}

// Postflop lists the streets that follow the flop deal, in order.
var Postflop = [3]Street{StreetFlop, StreetTurn, StreetRiver}

// ParseStreet is the inverse of Street.String.
func ParseStreet(s string) (Street, bool) {
	for st := StreetPreDeal; st < NumStreets; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return StreetPreDeal, false
}

// ActionKind tags the variant of an Action.
type ActionKind int

const (
	ActionPostAnte ActionKind = iota
	ActionPostSmallBlind
	ActionPostBigBlind
	ActionFold
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionUncalledReturned
	ActionCollect
	ActionShow
	ActionMuck
	ActionDeclineShow

	numActionKinds
)

var actionKindNames = [numActionKinds]string{
	ActionPostAnte:         "posts_ante",
	ActionPostSmallBlind:   "posts_sb",
	ActionPostBigBlind:     "posts_bb",
	ActionFold:             "folds",
	ActionCheck:            "checks",
	ActionCall:             "calls",
	ActionBet:              "bets",
	ActionRaise:            "raises",
	ActionUncalledReturned: "uncalled_bet_returned",
	ActionCollect:          "collected_pot",
	ActionShow:             "shows_hand",
	ActionMuck:             "mucks_hand",
	ActionDeclineShow:      "doesnt_show_hand",
}

func (k ActionKind) String() string {
	if k < 0 || k >= numActionKinds {
		return "?"
	}
	return actionKindNames[k]
}

// ParseActionKind is the inverse of ActionKind.String.
func ParseActionKind(s string) (ActionKind, bool) {
	for k, name := range actionKindNames {
		if name == s {
			return ActionKind(k), true
		}
	}
	return 0, false
}

// IsBlind reports whether k is a forced post.
func (k ActionKind) IsBlind() bool {
	return k == ActionPostAnte || k == ActionPostSmallBlind || k == ActionPostBigBlind
}

// IsAggressive reports whether k is a bet or a raise.
func (k ActionKind) IsAggressive() bool {
	return k == ActionBet || k == ActionRaise
}

// IsVoluntary reports whether k puts chips in voluntarily.
func (k ActionKind) IsVoluntary() bool {
	return k == ActionCall || k == ActionBet || k == ActionRaise
}

// IsDecision reports whether k is a betting decision that establishes
// actor order on a street.
func (k ActionKind) IsDecision() bool {
	switch k {
	case ActionBet, ActionRaise, ActionCall, ActionCheck, ActionFold:
		return true
	}
	return false
}

// Action is one entry in a hand's action log.
//
// Amount holds the posted, called or bet amount; for raises it is the raise
// increment and RaiseTo holds the total the player is raising to. Cards and
// Description are only set for shows. The last four fields are stamped when
// the action is recorded and never recomputed.
type Action struct {
	Seq         int
	Street      Street
	Player      string
	Kind        ActionKind
	Amount      int
	RaiseTo     int
	AllIn       bool
	Cards       string
	Description string

	PotBefore      int // pot total before this action
	ToCall         int // amount still owed by this player
	BetFaced       int // size of the bet being faced, 0 if none
	PotWhenBetMade int // pot at the moment the faced bet was made
}

// Seat is one seat at the table at the start of a hand.
type Seat struct {
	Number int
	Name   string
	Stack  int
	Bounty float64 // 0 when the tournament has no bounties
}

// Active reports whether the seat holds a player with chips.
func (s Seat) Active() bool {
	return s.Name != "" && s.Stack > 0
}

// Hand is a finalized hand record produced by the parser.
type Hand struct {
	ID           string // hand history id
	TournamentID string
	Timestamp    string // as printed in the header, e.g. "2024/01/01 12:00:00 ET"
	TableID      string
	MaxSeats     int
	ButtonSeat   int
	BigBlind     int

	Seats     []Seat            // in seat-number order
	Positions map[string]string // player name -> position label
	Hero      string
	HoleCards map[string]string // player name -> cards as printed, e.g. "Ah Kd"
	Board     []string

	Actions []Action
	Pot     int // pot total when the block ended

	PreflopAggressor string
	FlopAggressor    string
	TurnAggressor    string
	RiverAggressor   string

	PreflopRaises int    // bets and raises made preflop
	FirstRaiser   string // first player to bet or raise preflop

	// ActorOrder holds, for Flop/Turn/River, the players in order of their
	// first decision on that street.
	ActorOrder [NumStreets][]string
}

// Aggressor returns the committed aggressor for a betting street.
func (h *Hand) Aggressor(s Street) string {
	switch s {
	case StreetPreflop:
		return h.PreflopAggressor
	case StreetFlop:
		return h.FlopAggressor
	case StreetTurn:
		return h.TurnAggressor
	case StreetRiver:
		return h.RiverAggressor
	}
	return ""
}

// SetAggressor commits the aggressor for a betting street.
func (h *Hand) SetAggressor(s Street, name string) {
	switch s {
	case StreetPreflop:
		h.PreflopAggressor = name
	case StreetFlop:
		h.FlopAggressor = name
	case StreetTurn:
		h.TurnAggressor = name
	case StreetRiver:
		h.RiverAggressor = name
	}
}

// Position returns the position label for a player, or "".
func (h *Hand) Position(name string) string {
	return h.Positions[name]
}

// SeatByNumber returns the seat with the given number.
func (h *Hand) SeatByNumber(n int) (Seat, bool) {
	for _, s := range h.Seats {
		if s.Number == n {
			return s, true
		}
	}
	return Seat{}, false
}

// ActionsOn returns the actions recorded on street s, in sequence order.
func (h *Hand) ActionsOn(s Street) []Action {
	var out []Action
	for _, a := range h.Actions {
		if a.Street == s {
			out = append(out, a)
		}
	}
	return out
}

// DealtPlayers returns the players that were dealt into the hand: seated
// with chips and holding a position (or being the hero). When none
// qualify it falls back to every player with a position.
func (h *Hand) DealtPlayers() []string {
	var out []string
	for _, s := range h.Seats {
		if !s.Active() {
			continue
		}
		if _, ok := h.Positions[s.Name]; ok || s.Name == h.Hero {
			out = append(out, s.Name)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, s := range h.Seats {
		if _, ok := h.Positions[s.Name]; ok {
			out = append(out, s.Name)
		}
	}
	return out
}

// FoldedOn reports whether player folded at any point on street s.
func (h *Hand) FoldedOn(player string, s Street) bool {
	for _, a := range h.Actions {
		if a.Street == s && a.Player == player && a.Kind == ActionFold {
			return true
		}
	}
	return false
}

// SawStreet reports whether any action was recorded on betting street s.
func (h *Hand) SawStreet(s Street) bool {
	for _, a := range h.Actions {
		if a.Street == s {
			return true
		}
	}
	return false
}

// ShowdownActions returns the actions recorded at showdown plus the
// shows recorded in the summary section.
func (h *Hand) ShowdownActions() []Action {
	var out []Action
	for _, a := range h.Actions {
		if a.Street == StreetShowdown || (a.Street == StreetSummary && a.Kind == ActionShow) {
			out = append(out, a)
		}
	}
	return out
}
