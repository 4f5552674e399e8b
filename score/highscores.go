// Package score keeps the in-session high-score table. Scores live
// only for the process lifetime; persisting them is out of scope.
package score

import (
	"sort"
	"strings"

	"github.com/lixenwraith/termtris/constants"
)

// Entry is one finished game
type Entry struct {
	Score int
	Lines int
	Level int
}

// Table is the bounded, descending high-score list
type Table struct {
	entries []Entry
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{}
}

// WouldQualify reports whether a score would enter the table
func (t *Table) WouldQualify(score int) bool {
	if len(t.entries) < constants.MaxHighScores {
		return true
	}
	return t.entries[len(t.entries)-1].Score < score
}

// Add records a finished game if it qualifies and returns its
// 1-based rank, or 0 if it did not make the table
func (t *Table) Add(e Entry) int {
	if !t.WouldQualify(e.Score) {
		return 0
	}
	t.entries = append(t.entries, e)
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	if len(t.entries) > constants.MaxHighScores {
		t.entries = t.entries[:constants.MaxHighScores]
	}
	for i := range t.entries {
		if t.entries[i] == e {
			return i + 1
		}
	}
	return 0
}

// Entries returns the table in descending score order
func (t *Table) Entries() []Entry {
	return t.entries
}

// FormatScore renders a score with thousands separators
func FormatScore(score int) string {
	digits := []byte{}
	if score == 0 {
		return "0"
	}
	for i := 0; score > 0; i++ {
		if i > 0 && i%3 == 0 {
			digits = append(digits, ',')
		}
		digits = append(digits, byte('0'+score%10))
		score /= 10
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String()
}
