// pkg/selection/selection_test.go
package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Clean1ines/hot100/pkg/aggregate"
	"github.com/Clean1ines/hot100/pkg/chart"
	"github.com/Clean1ines/hot100/pkg/ranges"
)

var all = ranges.Range{Min: 1, Max: 100}

func date(n int) time.Time {
	return time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*n)
}

func build(weeks ...[]chart.Entry) []*aggregate.Record {
	a := aggregate.New()
	for i, entries := range weeks {
		a.Add(chart.Snapshot{Date: date(i), Entries: entries})
	}
	return a.Records()
}

func scenario() []*aggregate.Record {
	a := chart.Entry{Artist: "A", Title: "Song", Rank: 5}
	b := chart.Entry{Artist: "B", Title: "Hit", Rank: 1}
	w2 := a
	w2.Rank = 3
	w3 := a
	w3.Rank = 8
	return build([]chart.Entry{a, b}, []chart.Entry{w2, b}, []chart.Entry{w3, b})
}

func TestSelectScoreOrder(t *testing.T) {
	got := Select(scenario(), Options{Peak: ranges.Range{Min: 1, Max: 5}})
	assert.Equal(t, []string{"b - hit", "a - song"}, Keys(got))
}

func TestSelectPeakFilter(t *testing.T) {
	got := Select(scenario(), Options{Peak: ranges.Range{Min: 2, Max: 5}})
	assert.Equal(t, []string{"a - song"}, Keys(got))

	got = Select(scenario(), Options{Peak: ranges.Range{Min: 4, Max: 100}})
	assert.Empty(t, got)
}

func TestFilterPeakIdempotent(t *testing.T) {
	recs := scenario()
	r := ranges.Range{Min: 2, Max: 3}
	once := FilterPeak(recs, r)
	twice := FilterPeak(once, r)
	assert.Equal(t, Keys(once), Keys(twice))
}

func TestArtistFilter(t *testing.T) {
	recs := build([]chart.Entry{
		{Artist: "The Beatles", Title: "Let It Be", Rank: 1},
		{Artist: "Rolling Stones", Title: "Angie", Rank: 2},
		{Artist: "Mariah Carey", Title: "Hero", Rank: 3},
	})

	got := Select(recs, Options{Peak: all, Artists: []string{"beatles"}})
	assert.Equal(t, []string{"the beatles - let it be"}, Keys(got))

	got = Select(recs, Options{Peak: all, Artists: []string{"BEATLES", " rolling stones", ""}})
	assert.Equal(t, []string{"the beatles - let it be", "rolling stones - angie"}, Keys(got))

	got = Select(recs, Options{Peak: all, Artists: []string{"hero"}})
	assert.Empty(t, got, "title text must not match the artist filter")
}

func TestTruncateThenChronological(t *testing.T) {
	recs := build(
		[]chart.Entry{{Artist: "Old", Title: "Tune", Rank: 1}, {Artist: "Mid", Title: "Tune", Rank: 2}},
		[]chart.Entry{{Artist: "Old", Title: "Tune", Rank: 1}, {Artist: "New", Title: "Tune", Rank: 1}},
		[]chart.Entry{{Artist: "Mid", Title: "Tune", Rank: 1}},
	)

	byScore := Select(recs, Options{Peak: all, Top: 2})
	assert.Equal(t, []string{"old - tune", "mid - tune"}, Keys(byScore))

	chrono := Select(recs, Options{Peak: all, Top: 2, Chronological: true})
	assert.Equal(t, []string{"old - tune", "mid - tune"}, Keys(chrono))
	assert.True(t, chrono[0].PeakDate.Before(chrono[1].PeakDate))

	allChrono := Select(recs, Options{Peak: all, Chronological: true})
	assert.Equal(t, []string{"old - tune", "new - tune", "mid - tune"}, Keys(allChrono))
}

func TestChronologicalTieKeepsFirstAppearance(t *testing.T) {
	recs := build([]chart.Entry{
		{Artist: "Low", Title: "Score", Rank: 9},
		{Artist: "High", Title: "Score", Rank: 1},
	})
	got := Select(recs, Options{Peak: all, Chronological: true})
	assert.Equal(t, []string{"low - score", "high - score"}, Keys(got))
}

func TestSelectDeterministic(t *testing.T) {
	recs := build(
		[]chart.Entry{{Artist: "A", Title: "1", Rank: 2}, {Artist: "B", Title: "2", Rank: 2}, {Artist: "C", Title: "3", Rank: 7}},
		[]chart.Entry{{Artist: "C", Title: "3", Rank: 7}, {Artist: "D", Title: "4", Rank: 2}},
	)
	opts := Options{Peak: all, Top: 3}
	first := Keys(Select(recs, opts))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Keys(Select(recs, opts)))
	}
	assert.Equal(t, []string{"a - 1", "b - 2", "d - 4"}, first)
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	recs := scenario()
	before := Keys(recs)
	Select(recs, Options{Peak: all, Chronological: true})
	assert.Equal(t, before, Keys(recs))
}

func TestTruncateBounds(t *testing.T) {
	recs := scenario()
	assert.Len(t, Truncate(recs, 0), 2)
	assert.Len(t, Truncate(recs, 10), 2)
	assert.Len(t, Truncate(recs, 1), 1)
}
