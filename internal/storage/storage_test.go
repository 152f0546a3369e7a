package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-poker-hud/internal/aggregator"
	"github.com/pable/go-poker-hud/internal/handtest"
	"github.com/pable/go-poker-hud/internal/model"
	"github.com/pable/go-poker-hud/internal/parser"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func parseAll(t *testing.T, blocks ...string) []*model.Hand {
	t.Helper()
	var out []*model.Hand
	for _, b := range blocks {
		h, ok := parser.ParseHand(b)
		require.True(t, ok)
		out = append(out, h)
	}
	return out
}

func TestHandInsertAndExists(t *testing.T) {
	db := openMemDB(t)

	n, err := db.InsertHands(parseAll(t, handtest.HeadsUpWalk), "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	exists, err := db.HandExists("1234567890")
	require.NoError(t, err)
	assert.True(t, exists, "expected hand to exist after insert")

	exists, err = db.HandExists("nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadHandsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	parsed := parseAll(t, handtest.All...)

	n, err := db.InsertHands(parsed, "")
	require.NoError(t, err)
	require.Equal(t, len(parsed), n)

	loaded, err := db.LoadHands(HandFilter{})
	require.NoError(t, err)
	if diff := cmp.Diff(parsed, loaded); diff != "" {
		t.Errorf("loaded hands differ from parsed (-parsed +loaded):\n%s", diff)
	}
}

func TestAggregationOverLoadedHands(t *testing.T) {
	db := openMemDB(t)
	parsed := parseAll(t, handtest.All...)
	_, err := db.InsertHands(parsed, "")
	require.NoError(t, err)

	loaded, err := db.LoadHands(HandFilter{})
	require.NoError(t, err)

	want := aggregator.Aggregate(parsed)
	got := aggregator.Aggregate(loaded)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statistics differ (-parsed +loaded):\n%s", diff)
	}
}

func TestInsertIdempotency(t *testing.T) {
	db := openMemDB(t)
	hands := parseAll(t, handtest.CBetFold, handtest.DonkFold)

	n, err := db.InsertHands(hands, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Re-importing the same hands stores nothing new.
	n, err = db.InsertHands(hands, "")
	require.NoError(t, err)
	assert.Zero(t, n)

	more := parseAll(t, handtest.CBetFold, handtest.CheckRaise)
	n, err = db.InsertHands(more, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := db.LoadHands(HandFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStoredHandIDs(t *testing.T) {
	db := openMemDB(t)
	_, err := db.InsertHands(parseAll(t, handtest.CBetFold, handtest.DonkFold), "")
	require.NoError(t, err)

	got, err := db.StoredHandIDs([]string{"3000000001", "5000000001", "999"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"3000000001": true, "5000000001": true}, got)
}

func TestHandFilters(t *testing.T) {
	db := openMemDB(t)
	_, err := db.InsertHands(parseAll(t, handtest.All...), "")
	require.NoError(t, err)

	hero, err := db.LoadHands(HandFilter{Player: "Hero"})
	require.NoError(t, err)
	require.Len(t, hero, 2)
	assert.Equal(t, "4000000001", hero[0].ID)
	assert.Equal(t, "4000000002", hero[1].ID)

	last, err := db.LoadHands(HandFilter{Limit: 3})
	require.NoError(t, err)
	require.Len(t, last, 3)
	assert.Equal(t, "6000000001", last[2].ID, "limited loads keep oldest-first order")

	list, err := db.ListHands(HandFilter{Player: "P1"})
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, "5000000002", list[0].ID, "hand list is newest first")
	assert.Equal(t, 6, list[0].Players)
	assert.Equal(t, 50, list[0].BigBlind)

	none, err := db.LoadHands(HandFilter{Player: "Nobody"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetHand(t *testing.T) {
	db := openMemDB(t)
	parsed := parseAll(t, handtest.RiverValueLine)
	_, err := db.InsertHands(parsed, "")
	require.NoError(t, err)

	h, found, err := db.GetHand("4000000001")
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, cmp.Diff(parsed[0], h))
	assert.Equal(t, "Kc Kd", h.HoleCards["Hero"])

	_, found, err = db.GetHand("404")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPlayerNames(t *testing.T) {
	db := openMemDB(t)
	_, err := db.InsertHands(parseAll(t, handtest.HeadsUpWalk, handtest.RiverValueLine), "")
	require.NoError(t, err)

	names, err := db.PlayerNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Hero", "Villain"}, names)
}

func TestImportRuns(t *testing.T) {
	db := openMemDB(t)

	id, err := db.BeginImport("session.txt")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	n, err := db.InsertHands(parseAll(t, handtest.CBetFold), id)
	require.NoError(t, err)
	require.NoError(t, db.FinishImport(id, 2, n, 1))

	runs, err := db.ListImports()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "session.txt", runs[0].Source)
	assert.Equal(t, 2, runs[0].Parsed)
	assert.Equal(t, 1, runs[0].Inserted)
	assert.Equal(t, 1, runs[0].Skipped)
	assert.False(t, runs[0].FinishedAt.IsZero())

	assert.Error(t, db.FinishImport("no-such-run", 0, 0, 0))
}

func TestStatisticsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	stats := aggregator.Aggregate(parseAll(t, handtest.All...))

	require.NoError(t, db.SaveStatistics(stats))
	got, err := db.LoadStatistics()
	require.NoError(t, err)
	if diff := cmp.Diff(stats, got); diff != "" {
		t.Errorf("statistics snapshot differs (-saved +loaded):\n%s", diff)
	}

	// Saving again replaces rather than duplicates.
	require.NoError(t, db.SaveStatistics(stats))
	got, err = db.LoadStatistics()
	require.NoError(t, err)
	assert.Len(t, got, len(stats))
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	_, err := db.InsertHands(parseAll(t, handtest.HeadsUpWalk), "")
	require.NoError(t, err)

	cols, rows, err := db.QueryRaw("SELECT hand_history_id, import_id FROM hands")
	require.NoError(t, err)
	assert.Equal(t, []string{"hand_history_id", "import_id"}, cols)
	assert.Equal(t, [][]string{{"1234567890", "NULL"}}, rows)

	_, _, err = db.QueryRaw("SELECT * FROM no_such_table")
	assert.Error(t, err)
}
