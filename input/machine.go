package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic Actions. The key tables
// are static data so remapping stays a one-place change.
type Machine struct {
	keyTable  map[tcell.Key]Action
	runeTable map[rune]Action
}

// NewMachine creates a machine with the default key bindings
func NewMachine() *Machine {
	return &Machine{
		keyTable: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyUp:     ActionRotateCW,
			tcell.KeyDown:   ActionSoftDrop,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		runeTable: map[rune]Action{
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
		},
	}
}

// Process maps a terminal event to an Action. Unbound keys and
// non-key events return ActionNone.
func (m *Machine) Process(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	if key.Key() == tcell.KeyRune {
		return m.runeTable[key.Rune()]
	}
	return m.keyTable[key.Key()]
}
