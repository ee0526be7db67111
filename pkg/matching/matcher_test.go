// pkg/matching/matcher_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTitle(t *testing.T) {
	cases := map[string]string{
		"Bohemian Rhapsody - Remastered 2011": "bohemian rhapsody",
		"Let It Be - Remastered":              "let it be",
		"Work (feat. Drake)":                  "work",
		"Umbrella":                            "umbrella",
		"Hey Jude - 2015 Remaster":            "hey jude - 2015 remaster",
		"Yesterday - Remastered 2009 Version": "yesterday",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanTitle(in), in)
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("", ""))
	assert.Equal(t, 100.0, Ratio("queen", "queen"))
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	// "abcd" против "abce": одна замена = удаление + вставка.
	assert.InDelta(t, 75.0, Ratio("abcd", "abce"), 1e-9)
	assert.Equal(t, Ratio("kitten", "sitting"), Ratio("sitting", "kitten"))
}

func TestBestPrefersCleanedRemaster(t *testing.T) {
	candidates := []TrackMetadata{
		{Title: "Bohemian Rhapsody (cover)", Artists: []string{"Panic! At The Disco"}},
		{Title: "Bohemian Rhapsody - Remastered 2011", Artists: []string{"Queen"}},
	}
	m, ok := Best("queen - bohemian rhapsody", candidates)
	require.True(t, ok)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, "queen - bohemian rhapsody", m.Compared)
	assert.Equal(t, 100.0, m.Ratio)
}

func TestBestJoinsArtists(t *testing.T) {
	candidates := []TrackMetadata{
		{Title: "Work", Artists: []string{"Rihanna"}},
		{Title: "Work (feat. Drake)", Artists: []string{"Rihanna", "Drake"}},
	}
	m, ok := Best("rihanna, drake - work", candidates)
	require.True(t, ok)
	assert.Equal(t, 1, m.Index)
}

func TestBestTieBreaks(t *testing.T) {
	// Одинаковый Ratio, но у второго кандидата меньше расстояние Левенштейна.
	candidates := []TrackMetadata{
		{Title: "ba", Artists: []string{"x"}},
		{Title: "ac", Artists: []string{"x"}},
	}
	require.Equal(t, Ratio("x - ba", "x - ab"), Ratio("x - ac", "x - ab"))
	m, ok := Best("x - ab", candidates)
	require.True(t, ok)
	assert.Equal(t, 1, m.Index)

	// Полное равенство: остается первый по выдаче.
	same := []TrackMetadata{
		{Title: "ab", Artists: []string{"x"}},
		{Title: "ab", Artists: []string{"x"}},
	}
	m, _ = Best("x - ab", same)
	assert.Equal(t, 0, m.Index)
}

func TestBestKeepsCandidateWhenNothingMatches(t *testing.T) {
	m, ok := Best("zzz", []TrackMetadata{{Title: "abc", Artists: []string{"q"}}})
	require.True(t, ok)
	assert.Equal(t, 0, m.Index)
}

func TestBestEmpty(t *testing.T) {
	_, ok := Best("queen - bohemian rhapsody", nil)
	assert.False(t, ok)
}
