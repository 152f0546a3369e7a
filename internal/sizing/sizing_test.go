package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pable/go-poker-hud/internal/model"
)

func TestBucketBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want model.SizeBucket
	}{
		{0, model.Bucket0to29},
		{29.99, model.Bucket0to29},
		{30, model.Bucket30to45},
		{45.99, model.Bucket30to45},
		{46, model.Bucket46to56},
		{56.99, model.Bucket46to56},
		{57, model.Bucket57to70},
		{70.99, model.Bucket57to70},
		{71, model.Bucket80to100},
		{79.5, model.Bucket80to100},
		{100.99, model.Bucket80to100},
		{101, model.Bucket101Plus},
		{250, model.Bucket101Plus},
		{math.NaN(), model.BucketNA},
		{math.Inf(1), model.BucketNA},
		{math.Inf(-1), model.BucketNA},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Bucket(c.pct), "pct=%v", c.pct)
	}
}

func TestBucketOfPot(t *testing.T) {
	assert.Equal(t, model.Bucket57to70, BucketOf(57, 100))
	assert.Equal(t, model.Bucket80to100, BucketOf(71, 100))
	assert.Equal(t, model.Bucket46to56, BucketOf(50, 100))
	assert.Equal(t, model.BucketNA, BucketOf(50, 0))
	assert.Equal(t, model.BucketNA, BucketOf(50, -10))
}

func TestFacedBucketIsStable(t *testing.T) {
	a := model.Action{BetFaced: 66, PotWhenBetMade: 120}
	first := FacedBucket(a)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FacedBucket(a))
	}
	assert.Equal(t, model.Bucket46to56, first)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		bucket model.SizeBucket
		value  float64
		want   Label
	}{
		{model.Bucket46to56, 20, Under},
		{model.Bucket46to56, 35.8, Under},
		{model.Bucket46to56, 36.0, AtTarget},
		{model.Bucket46to56, 36.9, AtTarget},
		{model.Bucket46to56, 37, Over},
		{model.Bucket101Plus, 61.5, Over},
		{model.Bucket0to29, 0, Under},
	}
	for _, c := range cases {
		got, ok := Classify(c.bucket, c.value, FoldThresholds)
		assert.True(t, ok)
		assert.Equal(t, c.want, got, "bucket=%s value=%v", c.bucket, c.value)
	}
}

func TestClassifyUsesTheGivenTable(t *testing.T) {
	fold, _ := Classify(model.Bucket80to100, 40, FoldThresholds)
	bluff, _ := Classify(model.Bucket80to100, 40, BluffThresholds)
	assert.Equal(t, Under, fold)
	assert.Equal(t, Over, bluff)
}

func TestClassifyRejectsUndefined(t *testing.T) {
	_, ok := Classify(model.BucketNA, 10, FoldThresholds)
	assert.False(t, ok)
	_, ok = Classify(model.Bucket30to45, math.NaN(), FoldThresholds)
	assert.False(t, ok)
	_, ok = Classify(model.Bucket30to45, 10, nil)
	assert.False(t, ok)
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "Under", Under.String())
	assert.Equal(t, "At-Target", AtTarget.String())
	assert.Equal(t, "Over", Over.String())
}
