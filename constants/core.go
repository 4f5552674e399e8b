package constants

import "time"

// Game Loop Timing
const (
	// FrameInterval is the render/update frame rate interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = 63
)
