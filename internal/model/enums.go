package model

import "strings"

// SizeBucket is a bet-as-percent-of-pot range.
type SizeBucket int

const (
	Bucket0to29 SizeBucket = iota
	Bucket30to45
	Bucket46to56
	Bucket57to70
	Bucket80to100
	Bucket101Plus
	BucketNA

	NumSizeBuckets
)

var bucketNames = [NumSizeBuckets]string{
	Bucket0to29:   "0-29%",
	Bucket30to45:  "30-45%",
	Bucket46to56:  "46-56%",
	Bucket57to70:  "57-70%",
	Bucket80to100: "80-100%",
	Bucket101Plus: "101%+",
	BucketNA:      "N/A",
}

func (b SizeBucket) String() string {
	if b < 0 || b >= NumSizeBuckets {
		return "?"
	}
	return bucketNames[b]
}

// ParseSizeBucket is the inverse of SizeBucket.String.
func ParseSizeBucket(s string) (SizeBucket, bool) {
	for i, n := range bucketNames {
		if n == s {
			return SizeBucket(i), true
		}
	}
	return BucketNA, false
}

// SizedBuckets lists the buckets shown in reports (everything but N/A).
var SizedBuckets = [...]SizeBucket{Bucket0to29, Bucket30to45, Bucket46to56, Bucket57to70, Bucket80to100, Bucket101Plus}

// LineCode encodes whether the preflop aggressor bet (B) or checked (X) on
// the flop and turn before betting the river.
type LineCode int

const (
	LineBBB LineCode = iota
	LineBXB
	LineXBB
	LineXXB

	NumLineCodes
)

var lineNames = [NumLineCodes]string{LineBBB: "BBB", LineBXB: "BXB", LineXBB: "XBB", LineXXB: "XXB"}

func (l LineCode) String() string {
	if l < 0 || l >= NumLineCodes {
		return "?"
	}
	return lineNames[l]
}

// LineFor builds the line code for the given flop and turn decisions. The
// river is always a bet.
func LineFor(betFlop, betTurn bool) LineCode {
	switch {
	case betFlop && betTurn:
		return LineBBB
	case betFlop:
		return LineBXB
	case betTurn:
		return LineXBB
	default:
		return LineXXB
	}
}

// HandCategory is the coarse strength class of a hand shown at showdown.
type HandCategory int

const (
	CategoryTopHand HandCategory = iota
	CategoryBluffCatcher
	CategoryAir

	NumHandCategories

	CategoryUnknown HandCategory = -1
)

func (c HandCategory) String() string {
	switch c {
	case CategoryTopHand:
		return "Top"
	case CategoryBluffCatcher:
		return "BluffCatcher"
	case CategoryAir:
		return "Air"
	}
	return "Unknown"
}

var (
	topHandKeywords      = []string{"straight flush", "four of a kind", "quads", "full house", "flush", "straight", "three of a kind", "two pair"}
	bluffCatcherKeywords = []string{"a pair", "one pair"}
	airKeywords          = []string{"high card"}
)

// CategorizeShown classifies a shown-hand description such as
// "a pair of Kings" or "two pair, Aces and Nines".
func CategorizeShown(desc string) HandCategory {
	if desc == "" {
		return CategoryUnknown
	}
	d := strings.ToLower(desc)
	for _, group := range []struct {
		words []string
		cat   HandCategory
	}{
		{topHandKeywords, CategoryTopHand},
		{bluffCatcherKeywords, CategoryBluffCatcher},
		{airKeywords, CategoryAir},
	} {
		for _, kw := range group.words {
			if strings.Contains(d, kw) {
				return group.cat
			}
		}
	}
	return CategoryUnknown
}

// PositionCategory groups position labels for preflop statistics.
type PositionCategory int

const (
	CategoryEP PositionCategory = iota
	CategoryMP
	CategoryCO
	CategoryBTN
	CategorySB
	CategoryBB

	NumPositionCategories

	CategoryNone PositionCategory = -1
)

func (c PositionCategory) String() string {
	switch c {
	case CategoryEP:
		return "EP"
	case CategoryMP:
		return "MP"
	case CategoryCO:
		return "CO"
	case CategoryBTN:
		return "BTN"
	case CategorySB:
		return "SB"
	case CategoryBB:
		return "BB"
	}
	return ""
}

// CategoryOf maps a position label to its category.
func CategoryOf(position string) PositionCategory {
	switch position {
	case "UTG", "UTG+1", "UTG+2":
		return CategoryEP
	case "MP", "MP1", "LJ", "HJ":
		return CategoryMP
	case "CO":
		return CategoryCO
	case "BTN":
		return CategoryBTN
	case "SB":
		return CategorySB
	case "BB":
		return CategoryBB
	}
	return CategoryNone
}
