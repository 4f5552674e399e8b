package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/termtris/constants"
	"github.com/lixenwraith/termtris/events"
)

// State is the Board's coarse phase. Spawning and Clearing complete
// synchronously inside the call that triggers them, so only the
// phases that persist across ticks are modeled.
type State uint8

const (
	// StateFalling: the active piece descends on gravity ticks
	StateFalling State = iota

	// StateLocking: the piece is grounded; the lock delay is running.
	// Any successful move, rotate or descent returns it to Falling.
	StateLocking

	// StateGameOver: spawn position collided; terminal until Reset
	StateGameOver
)

// Board owns the whole game session: the well, the active and next
// pieces, score, level, lines and the gravity/lock-delay timers.
// Single-threaded cooperative model: the loop calls Update with
// elapsed time and dispatches input commands between ticks; nothing
// here blocks or suspends.
//
// Invariants enforced here:
//   - exactly zero (GameOver) or one active piece exists
//   - the active piece always satisfies CanPlace
//   - score and lines never decrease within a session
type Board struct {
	grid   *Grid
	active Piece
	next   Shape
	source ShapeSource
	queue  *events.Queue

	state  State
	paused bool

	score int
	level int
	lines int

	gravityAcc time.Duration
	lockAcc    time.Duration
}

// NewBoard creates a fresh session and spawns the first piece
func NewBoard(source ShapeSource, queue *events.Queue) *Board {
	b := &Board{
		grid:   NewGrid(),
		source: source,
		queue:  queue,
		level:  1,
	}
	b.next = source.Next()
	b.spawn()
	return b
}

// GravityInterval returns the time between gravity steps at a level:
// 1000ms shrinking by 0.8x per level, floored at 50ms. Monotonically
// non-increasing in level.
func GravityInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := time.Duration(float64(constants.BaseGravityInterval) *
		math.Pow(constants.GravityDecayFactor, float64(level-1)))
	if interval < constants.MinGravityInterval {
		interval = constants.MinGravityInterval
	}
	return interval
}

// Update advances the gravity and lock-delay timers by dt. Buffered
// input for the tick must be dispatched before calling Update so
// movement stays responsive. No-op while paused or after game over.
func (b *Board) Update(dt time.Duration) {
	if b.paused {
		return
	}
	switch b.state {
	case StateFalling:
		b.gravityAcc += dt
		interval := GravityInterval(b.level)
		for b.gravityAcc >= interval && b.state == StateFalling {
			b.gravityAcc -= interval
			b.stepDown()
		}
	case StateLocking:
		b.lockAcc += dt
		if b.lockAcc >= constants.LockDelay {
			b.lockPiece()
		}
	}
}

// stepDown is one gravity-driven descent attempt. Blocked below means
// the piece is grounded and the lock delay starts.
func (b *Board) stepDown() {
	if p, ok := TryMove(b.grid, b.active, 1, 0); ok {
		b.active = p
		return
	}
	b.state = StateLocking
	b.lockAcc = 0
}

// resumeFalling implements the standard lock reset: a successful
// move or rotate during the lock delay restarts the fall
func (b *Board) resumeFalling() {
	if b.state == StateLocking {
		b.state = StateFalling
		b.lockAcc = 0
	}
}

// movable reports whether movement commands are currently accepted
func (b *Board) movable() bool {
	return !b.paused && b.state != StateGameOver
}

// MoveLeft shifts the active piece one column left. Rejection is
// silent; the piece is unchanged.
func (b *Board) MoveLeft() bool { return b.shift(-1) }

// MoveRight shifts the active piece one column right
func (b *Board) MoveRight() bool { return b.shift(1) }

func (b *Board) shift(dCol int) bool {
	if !b.movable() {
		return false
	}
	p, ok := TryMove(b.grid, b.active, 0, dCol)
	if !ok {
		return false
	}
	b.active = p
	b.queue.Push(events.Event{Type: events.TypePieceMoved})
	b.resumeFalling()
	return true
}

// Rotate turns the active piece, applying the wall-kick search
func (b *Board) Rotate(dir RotationDir) bool {
	if !b.movable() {
		return false
	}
	p, ok := TryRotate(b.grid, b.active, dir)
	if !ok {
		return false
	}
	b.active = p
	b.queue.Push(events.Event{Type: events.TypePieceRotated})
	b.resumeFalling()
	return true
}

// SoftDrop repeats the downward attempt immediately. A blocked piece
// in the Falling state starts its lock delay.
func (b *Board) SoftDrop() bool {
	if !b.movable() {
		return false
	}
	p, ok := TryMove(b.grid, b.active, 1, 0)
	if ok {
		b.active = p
		b.queue.Push(events.Event{Type: events.TypePieceMoved})
		b.resumeFalling()
		return true
	}
	if b.state == StateFalling {
		b.state = StateLocking
		b.lockAcc = 0
	}
	return false
}

// HardDrop sends the piece straight to the floor and locks it with
// zero delay, awarding one point per cell of distance
func (b *Board) HardDrop() bool {
	if !b.movable() {
		return false
	}
	dist := DropDistance(b.grid, b.active)
	b.active = b.active.Translated(dist, 0)
	b.score += dist * constants.ScoreHardDropCell
	b.queue.Push(events.Event{Type: events.TypeHardDropped})
	b.lockPiece()
	return true
}

// lockPiece writes the active piece into the well, clears full rows,
// applies scoring and leveling, and spawns the next piece.
func (b *Board) lockPiece() {
	cells := b.active.Cells()
	for _, c := range cells {
		// Cells that ended above the well are discarded; the stack
		// reaching the spawn area ends the game on the next spawn.
		if c.Row >= 0 && c.Row < constants.GridHeight {
			b.grid.Set(c.Row, c.Col, b.active.Shape)
		}
	}
	b.queue.Push(events.Event{Type: events.TypePieceLocked})

	b.clearFullRows(cells)
	b.spawn()
}

// clearFullRows evaluates only the rows the locked piece touched,
// clears them in ascending order and applies the scoring table
func (b *Board) clearFullRows(locked [4]Cell) {
	var full []int
	for row := 0; row < constants.GridHeight; row++ {
		touched := false
		for _, c := range locked {
			if c.Row == row {
				touched = true
				break
			}
		}
		if touched && b.grid.RowFull(row) {
			full = append(full, row)
		}
	}
	if len(full) == 0 {
		return
	}

	b.grid.ClearRows(full)
	n := len(full)
	b.score += lineScore(n) * b.level
	b.lines += n

	if level := b.lines/constants.LinesPerLevel + 1; level > b.level {
		b.level = level
		b.queue.Push(events.Event{Type: events.TypeLevelUp, Level: level})
	}
	b.queue.Push(events.Event{Type: events.TypeLinesCleared, Lines: n, Tetris: n == 4})
}

// lineScore is the base award for clearing n rows at once. Strictly
// superlinear: one tetris outscores any split of the same four rows.
func lineScore(n int) int {
	switch n {
	case 1:
		return constants.ScoreSingle
	case 2:
		return constants.ScoreDouble
	case 3:
		return constants.ScoreTriple
	case 4:
		return constants.ScoreTetris
	}
	return 0
}

// spawn promotes the preview shape to the active piece. A colliding
// spawn position is the terminal condition.
func (b *Board) spawn() {
	p := Spawn(b.next)
	if !CanPlace(b.grid, p) {
		b.state = StateGameOver
		b.queue.Push(events.Event{Type: events.TypeGameOver})
		return
	}
	b.active = p
	b.next = b.source.Next()
	b.state = StateFalling
	b.gravityAcc = 0
	b.lockAcc = 0
}

// TogglePause flips the pause flag. While paused all timers freeze
// and movement commands are rejected; pause and Reset stay accepted.
func (b *Board) TogglePause() {
	if b.state == StateGameOver {
		return
	}
	b.paused = !b.paused
}

// Reset starts a fresh session on the same shape source
func (b *Board) Reset() {
	b.grid.Reset()
	b.score = 0
	b.level = 1
	b.lines = 0
	b.paused = false
	b.gravityAcc = 0
	b.lockAcc = 0
	b.next = b.source.Next()
	b.spawn()
}

// Accessors for collaborators; the mutable internals stay owned here.

func (b *Board) State() State { return b.state }

func (b *Board) Paused() bool { return b.paused }

func (b *Board) GameOver() bool { return b.state == StateGameOver }

func (b *Board) Score() int { return b.score }

func (b *Board) Level() int { return b.level }

func (b *Board) Lines() int { return b.lines }

// Snapshot is a read-only view of the Board for rendering. Copying
// the cell matrix keeps the renderer free of aliasing into engine
// state.
type Snapshot struct {
	Cells [constants.GridHeight][constants.GridWidth]Shape

	Active    Piece
	HasActive bool
	Ghost     Piece
	HasGhost  bool

	Next   Shape
	Score  int
	Level  int
	Lines  int
	Paused bool
	Over   bool
}

// Snapshot captures the current board state for a render pass
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Cells:  b.grid.cells,
		Next:   b.next,
		Score:  b.score,
		Level:  b.level,
		Lines:  b.lines,
		Paused: b.paused,
		Over:   b.state == StateGameOver,
	}
	if b.state != StateGameOver {
		s.Active = b.active
		s.HasActive = true
		s.Ghost = b.active.Translated(DropDistance(b.grid, b.active), 0)
		s.HasGhost = true
	}
	return s
}
