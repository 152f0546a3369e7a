package model

// Counter is an opportunity/action pair.
type Counter struct {
	Opportunities int `json:"opportunities"`
	Actions       int `json:"actions"`
}

// Pct returns 100 * actions / opportunities, or 0 with no opportunities.
func (c Counter) Pct() float64 {
	if c.Opportunities == 0 {
		return 0
	}
	return float64(c.Actions) / float64(c.Opportunities) * 100
}

// Add records one opportunity, and one action when acted is true.
func (c *Counter) Add(acted bool) {
	c.Opportunities++
	if acted {
		c.Actions++
	}
}

func (c Counter) plus(o Counter) Counter {
	return Counter{Opportunities: c.Opportunities + o.Opportunities, Actions: c.Actions + o.Actions}
}

// BySize is a counter per bet-size bucket.
type BySize [NumSizeBuckets]Counter

func (b BySize) plus(o BySize) BySize {
	for i := range b {
		b[i] = b[i].plus(o[i])
	}
	return b
}

// Composition counts shown hand categories for one (line, bucket) cell.
type Composition struct {
	Categories [NumHandCategories]int `json:"categories"`
	Total      int                    `json:"total"`
}

// Share returns the percentage of shown hands in category c.
func (c Composition) Share(cat HandCategory) float64 {
	if c.Total == 0 || cat < 0 || cat >= NumHandCategories {
		return 0
	}
	return float64(c.Categories[cat]) / float64(c.Total) * 100
}

// Side splits a statistic by in-position / out-of-position.
type Side int

const (
	SideIP Side = iota
	SideOOP
)

func (s Side) String() string {
	if s == SideIP {
		return "IP"
	}
	return "OOP"
}

// SideOf maps an in-position flag to a Side.
func SideOf(ip bool) Side {
	if ip {
		return SideIP
	}
	return SideOOP
}

// PlayerStatistics accumulates every counter for one player. All fields are
// counts, so two accumulators merge by pairwise addition.
type PlayerStatistics struct {
	Player      string                                    `json:"player"`
	HandsPlayed int                                       `json:"hands_played"`
	Stats       [NumStats]Counter                         `json:"stats"`
	FoldToBet   [NumStreets]BySize                        `json:"fold_to_bet_by_size"`
	FoldToCBet  [2]BySize                                 `json:"fold_to_flop_cbet_by_size"` // flop only, by Side
	FoldToDonk  [NumStreets]BySize                        `json:"fold_to_donk_by_size"`
	CallFold    BySize                                    `json:"call_fold_turn_by_size"`
	FoldByLine  [NumLineCodes]BySize                      `json:"fold_to_river_bet_by_line"`
	RiverShowed [NumLineCodes][NumSizeBuckets]Composition `json:"river_composition_by_line"`
}

// NewPlayerStatistics returns an empty accumulator for player.
func NewPlayerStatistics(player string) *PlayerStatistics {
	return &PlayerStatistics{Player: player}
}

// Stat returns the counter for id.
func (p *PlayerStatistics) Stat(id StatID) Counter {
	return p.Stats[id]
}

// Record adds one opportunity for id, and an action when acted is true.
func (p *PlayerStatistics) Record(id StatID, acted bool) {
	p.Stats[id].Add(acted)
}

// Opportunity records an opportunity for id without an action.
func (p *PlayerStatistics) Opportunity(id StatID) {
	p.Stats[id].Opportunities++
}

// Act records an action for id without an opportunity.
func (p *PlayerStatistics) Act(id StatID) {
	p.Stats[id].Actions++
}

// Merge adds every counter of o into p. The player name of p is kept.
func (p *PlayerStatistics) Merge(o *PlayerStatistics) {
	if o == nil {
		return
	}
	p.HandsPlayed += o.HandsPlayed
	for i := range p.Stats {
		p.Stats[i] = p.Stats[i].plus(o.Stats[i])
	}
	for s := range p.FoldToBet {
		p.FoldToBet[s] = p.FoldToBet[s].plus(o.FoldToBet[s])
		p.FoldToDonk[s] = p.FoldToDonk[s].plus(o.FoldToDonk[s])
	}
	for i := range p.FoldToCBet {
		p.FoldToCBet[i] = p.FoldToCBet[i].plus(o.FoldToCBet[i])
	}
	p.CallFold = p.CallFold.plus(o.CallFold)
	for l := range p.FoldByLine {
		p.FoldByLine[l] = p.FoldByLine[l].plus(o.FoldByLine[l])
		for b := range p.RiverShowed[l] {
			cell := &p.RiverShowed[l][b]
			other := o.RiverShowed[l][b]
			for c := range cell.Categories {
				cell.Categories[c] += other.Categories[c]
			}
			cell.Total += other.Total
		}
	}
}

// Clone returns a deep copy of p.
func (p *PlayerStatistics) Clone() *PlayerStatistics {
	c := *p
	return &c
}

// StatsByPlayer maps player names to their accumulators.
type StatsByPlayer map[string]*PlayerStatistics

// Get returns the accumulator for player, creating it if needed.
func (m StatsByPlayer) Get(player string) *PlayerStatistics {
	ps, ok := m[player]
	if !ok {
		ps = NewPlayerStatistics(player)
		m[player] = ps
	}
	return ps
}

// Merge adds every accumulator in o into m. Accumulators taken from o are
// copied, so o stays independent of m.
func (m StatsByPlayer) Merge(o StatsByPlayer) {
	for name, ps := range o {
		if cur, ok := m[name]; ok {
			cur.Merge(ps)
			continue
		}
		m[name] = ps.Clone()
	}
}
