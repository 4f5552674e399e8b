package constants

import "time"

// Well Geometry
const (
	// GridWidth is the width of the well in cells
	GridWidth = 10

	// GridHeight is the height of the visible well in cells
	GridHeight = 20
)

// Piece Timing
const (
	// BaseGravityInterval is the time between gravity steps at level 1
	BaseGravityInterval = 1000 * time.Millisecond

	// MinGravityInterval is the floor for the gravity interval at high levels
	MinGravityInterval = 50 * time.Millisecond

	// GravityDecayFactor shrinks the gravity interval per level
	GravityDecayFactor = 0.8

	// LockDelay is the grace period after a piece lands before it locks.
	// A successful move, rotate or descent during the delay resets it.
	LockDelay = 500 * time.Millisecond
)

// Leveling
const (
	// LinesPerLevel is the number of cleared lines per level step
	LinesPerLevel = 10
)
