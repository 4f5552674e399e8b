package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termtris/constants"
)

// TestAddRanksDescending verifies entries sort by score and Add
// reports the 1-based rank
func TestAddRanksDescending(t *testing.T) {
	tbl := NewTable()

	assert.Equal(t, 1, tbl.Add(Entry{Score: 500, Lines: 4, Level: 1}))
	assert.Equal(t, 1, tbl.Add(Entry{Score: 1200, Lines: 11, Level: 2}))
	assert.Equal(t, 3, tbl.Add(Entry{Score: 100, Lines: 1, Level: 1}))

	entries := tbl.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 1200, entries[0].Score)
	assert.Equal(t, 500, entries[1].Score)
	assert.Equal(t, 100, entries[2].Score)
}

// TestTableBounded verifies the table truncates to the maximum and a
// low score no longer qualifies once it is full
func TestTableBounded(t *testing.T) {
	tbl := NewTable()
	for i := 1; i <= constants.MaxHighScores; i++ {
		tbl.Add(Entry{Score: i * 100})
	}
	require.Len(t, tbl.Entries(), constants.MaxHighScores)

	assert.False(t, tbl.WouldQualify(50))
	assert.Equal(t, 0, tbl.Add(Entry{Score: 50}))
	assert.Len(t, tbl.Entries(), constants.MaxHighScores)

	// A qualifying score displaces the current minimum
	assert.True(t, tbl.WouldQualify(150))
	rank := tbl.Add(Entry{Score: 150})
	assert.Equal(t, constants.MaxHighScores, rank)
	assert.Equal(t, 150, tbl.Entries()[constants.MaxHighScores-1].Score)
}

// TestWouldQualifyWhileSparse verifies anything qualifies before the
// table fills, including zero
func TestWouldQualifyWhileSparse(t *testing.T) {
	tbl := NewTable()
	assert.True(t, tbl.WouldQualify(0))

	assert.Equal(t, 1, tbl.Add(Entry{Score: 0}))
}

// TestTieKeepsEarlierEntry verifies stable ordering on equal scores:
// the earlier game ranks above the later one
func TestTieKeepsEarlierEntry(t *testing.T) {
	tbl := NewTable()
	tbl.Add(Entry{Score: 300, Lines: 3})
	rank := tbl.Add(Entry{Score: 300, Lines: 2})

	assert.Equal(t, 2, rank)
	assert.Equal(t, 3, tbl.Entries()[0].Lines)
}

// TestFormatScore verifies thousands separators
func TestFormatScore(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		7:       "7",
		123:     "123",
		1000:    "1,000",
		45678:   "45,678",
		1000000: "1,000,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatScore(in), "score %d", in)
	}
}
