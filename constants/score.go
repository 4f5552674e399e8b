package constants

// Line-Clear Scoring
// Per-clear award is the line value multiplied by the current level.
// A tetris (800) strictly outscores any split of the same four rows
// (two doubles total 600).
const (
	ScoreSingle = 100 // 1 row
	ScoreDouble = 300 // 2 rows
	ScoreTriple = 500 // 3 rows
	ScoreTetris = 800 // 4 rows

	// ScoreHardDropCell is awarded per cell of hard-drop distance
	ScoreHardDropCell = 1
)

// MaxHighScores is the size of the in-session high-score table
const MaxHighScores = 10
