package events

// Type discriminates game events
type Type uint8

const (
	// TypePieceMoved signals a successful lateral or soft-drop step
	// Trigger: Board move commands | Consumer: audio (move blip)
	TypePieceMoved Type = iota

	// TypePieceRotated signals a successful rotation (kicked or not)
	// Trigger: Board rotate commands | Consumer: audio
	TypePieceRotated

	// TypeHardDropped signals an instant drop to the floor
	// Trigger: Board hard-drop command | Consumer: audio
	TypeHardDropped

	// TypePieceLocked signals the active piece was written into the well
	// Trigger: lock-delay expiry or hard drop | Consumer: audio
	TypePieceLocked

	// TypeLinesCleared signals removed rows; Lines holds the count and
	// Tetris marks a 4-row clear (distinct fanfare)
	// Trigger: Board clear phase | Consumer: audio, UI flash
	TypeLinesCleared

	// TypeLevelUp signals a level step; Level holds the new level
	// Trigger: Board clear phase | Consumer: UI
	TypeLevelUp

	// TypeGameOver signals a spawn collision ended the session
	// Trigger: Board spawn phase | Consumer: audio, UI
	TypeGameOver
)

// Event is a fire-and-forget notification from the engine to its
// collaborators. At-most-once: the queue overwrites oldest entries
// when full, and the engine never depends on consumption.
type Event struct {
	Type   Type
	Lines  int
	Tetris bool
	Level  int
}
