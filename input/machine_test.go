package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func keyEvent(key tcell.Key) tcell.Event {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEvent(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestProcessSpecialKeys verifies the arrow-key and control bindings
func TestProcessSpecialKeys(t *testing.T) {
	m := NewMachine()

	assert.Equal(t, ActionMoveLeft, m.Process(keyEvent(tcell.KeyLeft)))
	assert.Equal(t, ActionMoveRight, m.Process(keyEvent(tcell.KeyRight)))
	assert.Equal(t, ActionRotateCW, m.Process(keyEvent(tcell.KeyUp)))
	assert.Equal(t, ActionSoftDrop, m.Process(keyEvent(tcell.KeyDown)))
	assert.Equal(t, ActionQuit, m.Process(keyEvent(tcell.KeyEscape)))
	assert.Equal(t, ActionQuit, m.Process(keyEvent(tcell.KeyCtrlC)))
}

// TestProcessRuneKeys verifies the vi-style and convenience rune
// bindings
func TestProcessRuneKeys(t *testing.T) {
	m := NewMachine()

	want := map[rune]Action{
		' ': ActionHardDrop,
		'h': ActionMoveLeft,
		'l': ActionMoveRight,
		'k': ActionRotateCW,
		'x': ActionRotateCW,
		'z': ActionRotateCCW,
		'j': ActionSoftDrop,
		'p': ActionTogglePause,
		'm': ActionToggleAudio,
		'r': ActionReset,
		'q': ActionQuit,
	}
	for r, a := range want {
		assert.Equal(t, a, m.Process(runeEvent(r)), "rune %q", r)
	}
}

// TestProcessUnbound verifies unknown keys and runes map to no action
func TestProcessUnbound(t *testing.T) {
	m := NewMachine()

	assert.Equal(t, ActionNone, m.Process(runeEvent('w')))
	assert.Equal(t, ActionNone, m.Process(keyEvent(tcell.KeyF1)))
}

// TestProcessNonKeyEvent verifies non-keyboard terminal events are
// ignored
func TestProcessNonKeyEvent(t *testing.T) {
	m := NewMachine()

	resize := tcell.NewEventResize(80, 24)
	assert.Equal(t, ActionNone, m.Process(resize))
	assert.Equal(t, ActionNone, m.Process(tcell.NewEventInterrupt(time.Now())))
}
