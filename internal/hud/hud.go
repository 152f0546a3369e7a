// Package hud renders player statistics as named display entries.
package hud

import (
	"fmt"
	"strconv"

	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/sizing"
)

// HandsPlayed is the name of the hands-played entry.
const HandsPlayed = "Hands Played"

// Entry is one displayed statistic.
type Entry struct {
	Section string
	Name    string
	Counter model.Counter
	Value   string
}

type cellKind int

const (
	kindCounter cellKind = iota
	kindComposition
	kindBluffVsMDF
)

// cell binds a display name to the counter it reads.
type cell struct {
	kind    cellKind
	section string
	name    string
	count   func(*model.PlayerStatistics) model.Counter
	bucket  model.SizeBucket
	table   *sizing.Thresholds // nil for unclassified statistics
	line    model.LineCode
}

var (
	cells       = buildCells()
	cellsByName = indexCells(cells)
)

func indexCells(cs []cell) map[string]int {
	m := make(map[string]int, len(cs))
	for i, c := range cs {
		m[c.name] = i
	}
	return m
}

func buildCells() []cell {
	var out []cell
	for _, d := range model.Definitions() {
		id := d.ID
		out = append(out, cell{
			section: d.Section.String(),
			name:    d.DisplayName(),
			count:   func(ps *model.PlayerStatistics) model.Counter { return ps.Stat(id) },
		})
	}

	sized := func(section, prefix string, get func(*model.PlayerStatistics, model.SizeBucket) model.Counter) {
		for _, b := range model.SizedBuckets {
			out = append(out, cell{
				section: section,
				name:    fmt.Sprintf("%s %s (%%)", prefix, b),
				count:   func(ps *model.PlayerStatistics) model.Counter { return get(ps, b) },
				bucket:  b,
				table:   sizing.FoldThresholds,
			})
		}
	}

	for _, s := range model.Postflop {
		prefix := "FTS " + s.String()
		sized(prefix, prefix, func(ps *model.PlayerStatistics, b model.SizeBucket) model.Counter {
			return ps.FoldToBet[s][b]
		})
	}
	for _, side := range []model.Side{model.SideIP, model.SideOOP} {
		prefix := "Fold CBet Flop " + side.String()
		sized(prefix, prefix, func(ps *model.PlayerStatistics, b model.SizeBucket) model.Counter {
			return ps.FoldToCBet[side][b]
		})
	}
	for _, s := range model.Postflop {
		prefix := "Fold Donk " + s.String()
		sized(prefix, prefix, func(ps *model.PlayerStatistics, b model.SizeBucket) model.Counter {
			return ps.FoldToDonk[s][b]
		})
	}
	sized("Call-Fold Turn", "CF Turn", func(ps *model.PlayerStatistics, b model.SizeBucket) model.Counter {
		return ps.CallFold[b]
	})
	for l := model.LineCode(0); l < model.NumLineCodes; l++ {
		prefix := "FTS River " + l.String()
		sized(prefix, prefix, func(ps *model.PlayerStatistics, b model.SizeBucket) model.Counter {
			return ps.FoldByLine[l][b]
		})
	}

	for l := model.LineCode(0); l < model.NumLineCodes; l++ {
		section := fmt.Sprintf("River %s Composition", l)
		for _, b := range model.SizedBuckets {
			base := fmt.Sprintf("River %s %s", l, b)
			showed := func(ps *model.PlayerStatistics) model.Composition { return ps.RiverShowed[l][b] }
			for c := model.HandCategory(0); c < model.NumHandCategories; c++ {
				var table *sizing.Thresholds
				if c == model.CategoryAir {
					table = sizing.BluffThresholds
				}
				out = append(out, cell{
					kind:    kindComposition,
					section: section,
					name:    fmt.Sprintf("%s %s (%%)", base, c),
					count: func(ps *model.PlayerStatistics) model.Counter {
						sh := showed(ps)
						return model.Counter{Opportunities: sh.Total, Actions: sh.Categories[c]}
					},
					bucket: b,
					table:  table,
					line:   l,
				})
			}
			bluff := func(ps *model.PlayerStatistics) model.Counter {
				sh := showed(ps)
				return model.Counter{Opportunities: sh.Total, Actions: sh.Categories[model.CategoryAir]}
			}
			out = append(out,
				cell{kind: kindComposition, section: section, name: base + " Bluff (%)", count: bluff, bucket: b, line: l},
				cell{kind: kindComposition, section: section, name: base + " Value (%)", bucket: b, line: l,
					count: func(ps *model.PlayerStatistics) model.Counter {
						c := bluff(ps)
						return model.Counter{Opportunities: c.Opportunities, Actions: c.Opportunities - c.Actions}
					}},
				cell{kind: kindBluffVsMDF, section: section, name: base + " Bluff vs MDF", count: bluff, bucket: b,
					table: sizing.BluffThresholds, line: l},
			)
		}
	}
	return out
}

// Format renders a counter as "12.5% (1/8)".
func Format(c model.Counter) string {
	return fmt.Sprintf("%.1f%% (%d/%d)", c.Pct(), c.Actions, c.Opportunities)
}

// FormatClassified is Format followed by the label of the percentage
// against table, when the bucket has a band.
func FormatClassified(c model.Counter, b model.SizeBucket, t *sizing.Thresholds) string {
	s := Format(c)
	if label, ok := sizing.Classify(b, c.Pct(), t); ok {
		s += " " + label.String()
	}
	return s
}

var bluffLabels = map[sizing.Label]string{
	sizing.Under:    "Under-Bluffing",
	sizing.AtTarget: "Balanced",
	sizing.Over:     "Over-Bluffing",
}

// BluffVsMDF renders the bluff share of c against the bluff table, or "N/A"
// when nothing was shown.
func BluffVsMDF(c model.Counter, b model.SizeBucket) string {
	if c.Opportunities == 0 {
		return "N/A"
	}
	pct := c.Pct()
	label, ok := sizing.Classify(b, pct, sizing.BluffThresholds)
	if !ok {
		return fmt.Sprintf("%.1f%%", pct)
	}
	return fmt.Sprintf("%s (%.1f%%)", bluffLabels[label], pct)
}

func (c cell) render(ps *model.PlayerStatistics) Entry {
	cnt := c.count(ps)
	e := Entry{Section: c.section, Name: c.name, Counter: cnt}
	switch {
	case c.kind == kindBluffVsMDF:
		e.Value = BluffVsMDF(cnt, c.bucket)
	case c.table != nil:
		e.Value = FormatClassified(cnt, c.bucket, c.table)
	default:
		e.Value = Format(cnt)
	}
	return e
}

// Entries lists every statistic of ps in display order. Composition entries
// are only listed for (line, size) cells with at least one shown hand.
func Entries(ps *model.PlayerStatistics) []Entry {
	out := []Entry{handsEntry(ps)}
	for _, c := range cells {
		if c.kind != kindCounter && ps.RiverShowed[c.line][c.bucket].Total == 0 {
			continue
		}
		out = append(out, c.render(ps))
	}
	return out
}

func handsEntry(ps *model.PlayerStatistics) Entry {
	return Entry{
		Section: "General",
		Name:    HandsPlayed,
		Counter: model.Counter{Opportunities: ps.HandsPlayed, Actions: ps.HandsPlayed},
		Value:   strconv.Itoa(ps.HandsPlayed),
	}
}

// Sections groups Entries by section, keeping display order.
func Sections(ps *model.PlayerStatistics) (order []string, bySection map[string][]Entry) {
	bySection = make(map[string][]Entry)
	for _, e := range Entries(ps) {
		if _, ok := bySection[e.Section]; !ok {
			order = append(order, e.Section)
		}
		bySection[e.Section] = append(bySection[e.Section], e)
	}
	return order, bySection
}

// Lookup returns the entry for a display name such as "FTS Flop 46-56% (%)".
func Lookup(ps *model.PlayerStatistics, name string) (Entry, bool) {
	if name == HandsPlayed {
		return handsEntry(ps), true
	}
	i, ok := cellsByName[name]
	if !ok {
		return Entry{}, false
	}
	return cells[i].render(ps), true
}

// Raw returns the opportunity/action pair behind a display name.
func Raw(ps *model.PlayerStatistics, name string) (model.Counter, bool) {
	e, ok := Lookup(ps, name)
	return e.Counter, ok
}

// RawValue returns the numeric value behind a display name: the hand count
// for "Hands Played", otherwise the percentage. Unknown names yield 0.
func RawValue(ps *model.PlayerStatistics, name string) float64 {
	if name == HandsPlayed {
		return float64(ps.HandsPlayed)
	}
	c, ok := Raw(ps, name)
	if !ok {
		return 0
	}
	return c.Pct()
}

// Names lists every display name in order, including composition entries.
func Names() []string {
	out := []string{HandsPlayed}
	for _, c := range cells {
		out = append(out, c.name)
	}
	return out
}
