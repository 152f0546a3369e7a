package sizing

import "github.com/pable/go-poker-hud/internal/model"

// Band is the (lower, upper) pair for one bucket.
type Band struct {
	Lower float64
	Upper float64
}

// Thresholds holds one band per sized bucket. The N/A bucket has no band.
type Thresholds struct {
	name  string
	bands [model.NumSizeBuckets]Band
	set   [model.NumSizeBuckets]bool
}

func newThresholds(name string, bands map[model.SizeBucket]Band) *Thresholds {
	t := &Thresholds{name: name}
	for b, band := range bands {
		t.bands[b] = band
		t.set[b] = true
	}
	return t
}

// Name identifies the table in logs and reports.
func (t *Thresholds) Name() string { return t.name }

// Band returns the band for b.
func (t *Thresholds) Band(b model.SizeBucket) (Band, bool) {
	if t == nil || b < 0 || b >= model.NumSizeBuckets || !t.set[b] {
		return Band{}, false
	}
	return t.bands[b], true
}

// The "71-100%" bands of the published tables apply to the 80-100% bucket.
var (
	// FoldThresholds classifies fold frequencies against a bet size.
	FoldThresholds = newThresholds("fold", map[model.SizeBucket]Band{
		model.Bucket0to29:   {22.5, 23.5},
		model.Bucket30to45:  {31.0, 32.0},
		model.Bucket46to56:  {35.8, 36.9},
		model.Bucket57to70:  {41.1, 42.2},
		model.Bucket80to100: {50.0, 51.0},
		model.Bucket101Plus: {60.0, 61.0},
	})

	// BluffThresholds classifies river bluff frequencies against a bet size.
	BluffThresholds = newThresholds("bluff", map[model.SizeBucket]Band{
		model.Bucket0to29:   {18.5, 19.5},
		model.Bucket30to45:  {23.68, 24.5},
		model.Bucket46to56:  {26.41, 27.5},
		model.Bucket57to70:  {29.1, 30.5},
		model.Bucket80to100: {33.0, 34.0},
		model.Bucket101Plus: {40.0, 41.0},
	})
)

// MDFBreakEven is the break-even bluff share per bucket, used as the
// reference point of the bluff-vs-MDF entry.
var MDFBreakEven = [model.NumSizeBuckets]float64{
	model.Bucket0to29:   22.5,
	model.Bucket30to45:  31.0,
	model.Bucket46to56:  35.9,
	model.Bucket57to70:  41.2,
	model.Bucket80to100: 50.0,
	model.Bucket101Plus: 60.0,
}

// Label is the outcome of classifying a frequency.
type Label int

const (
	Under Label = iota
	AtTarget
	Over
)

func (l Label) String() string {
	switch l {
	case Under:
		return "Under"
	case AtTarget:
		return "At-Target"
	case Over:
		return "Over"
	}
	return "?"
}

// Classify places value against the band for b in table t: at or below the
// lower bound is Under, at or below the upper bound is AtTarget, anything
// above is Over. ok is false for N/A buckets, non-finite values and buckets
// the table does not cover.
func Classify(b model.SizeBucket, value float64, t *Thresholds) (Label, bool) {
	band, ok := t.Band(b)
	if !ok || isNonFinite(value) {
		return 0, false
	}
	switch {
	case value <= band.Lower:
		return Under, true
	case value <= band.Upper:
		return AtTarget, true
	default:
		return Over, true
	}
}
