package hud

import (
	"math"

	"github.com/pable/go-poker-hud/internal/model"
)

// potFraction is the bet, as a fraction of the pot, assumed for a bucket
// when estimating the value of a bluff.
var potFraction = map[model.SizeBucket]float64{
	model.Bucket0to29:   0.29,
	model.Bucket30to45:  0.45,
	model.Bucket46to56:  0.56,
	model.Bucket57to70:  0.70,
	model.Bucket80to100: 1.00,
	model.Bucket101Plus: 1.50,
}

// BestFoldSize picks the bucket where a pure bluff earns the most against
// the observed fold frequencies: fold% - (1 - fold%) * size. Buckets without
// opportunities are ignored; ok is false when none has any.
func BestFoldSize(folds model.BySize) (best model.SizeBucket, ev float64, ok bool) {
	ev = math.Inf(-1)
	for _, b := range model.SizedBuckets {
		c := folds[b]
		if c.Opportunities == 0 {
			continue
		}
		p := c.Pct() / 100
		if v := p - (1-p)*potFraction[b]; v > ev {
			best, ev, ok = b, v, true
		}
	}
	if !ok {
		return model.BucketNA, 0, false
	}
	return best, ev, true
}
