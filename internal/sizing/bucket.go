// Package sizing maps bet sizes to percent-of-pot buckets and classifies
// frequencies against per-bucket threshold bands.
package sizing

import (
	"math"

	"github.com/pable/go-poker-hud/internal/model"
)

// Bucket maps a bet expressed as a percent of the pot to its bucket.
// NaN and infinite values map to BucketNA. The boundaries are applied
// literally: 71% to 79.99% lands in the 80-100% bucket.
func Bucket(pct float64) model.SizeBucket {
	switch {
	case isNonFinite(pct):
		return model.BucketNA
	case pct <= 29.99:
		return model.Bucket0to29
	case pct <= 45.99:
		return model.Bucket30to45
	case pct <= 56.99:
		return model.Bucket46to56
	case pct <= 70.99:
		return model.Bucket57to70
	case pct <= 100.99:
		return model.Bucket80to100
	default:
		return model.Bucket101Plus
	}
}

// Pct returns bet as a percent of pot. ok is false when pot is not positive.
func Pct(bet, pot int) (pct float64, ok bool) {
	if pot <= 0 {
		return 0, false
	}
	return float64(bet) / float64(pot) * 100, true
}

// BucketOf buckets bet against pot, returning BucketNA for a zero pot.
func BucketOf(bet, pot int) model.SizeBucket {
	pct, ok := Pct(bet, pot)
	if !ok {
		return model.BucketNA
	}
	return Bucket(pct)
}

// FacedBucket buckets the bet an action was facing.
func FacedBucket(a model.Action) model.SizeBucket {
	return BucketOf(a.BetFaced, a.PotWhenBetMade)
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
