package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; larger values
	// trade latency for underrun resistance
	AudioBufferDuration = 100 * time.Millisecond
)
