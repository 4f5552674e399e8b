package input

// Action discriminates the semantic commands the game accepts
type Action uint8

const (
	ActionNone Action = iota

	// Piece commands
	ActionMoveLeft  // Left arrow, h
	ActionMoveRight // Right arrow, l
	ActionRotateCW  // Up arrow, x, k
	ActionRotateCCW // z
	ActionSoftDrop  // Down arrow, j
	ActionHardDrop  // Space

	// Session commands
	ActionTogglePause // p
	ActionToggleAudio // m (forwarded to audio, never engine-relevant)
	ActionReset       // r
	ActionQuit        // q, Esc, Ctrl+C
)
