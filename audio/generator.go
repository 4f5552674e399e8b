package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/termtris/constants"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constants.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * constants.AudioSampleRate)
	releaseSamples := int(releaseSec * constants.AudioSampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// scale multiplies the buffer by a gain factor in place
func (b floatBuffer) scale(gain float64) floatBuffer {
	for i := range b {
		b[i] *= gain
	}
	return b
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// durationToSamples converts seconds to a sample count
func durationToSamples(d float64) int {
	return int(d * constants.AudioSampleRate)
}

// tone is one enveloped note at the given frequency and length
func tone(waveType int, freq, seconds, gain float64) floatBuffer {
	buf := oscillator(waveType, freq, durationToSamples(seconds))
	applyEnvelope(buf, 0.005, 0.03)
	return buf.scale(gain)
}

// --- Effect generators (one buffer each, rendered once at startup) ---

func generateMoveSound() floatBuffer {
	return tone(waveSquare, 220, 0.03, 0.15)
}

func generateRotateSound() floatBuffer {
	return tone(waveSquare, 330, 0.04, 0.15)
}

func generateDropSound() floatBuffer {
	// Quick downward thunk: low saw with a noise tail
	body := tone(waveSaw, 110, 0.06, 0.3)
	tail := tone(waveNoise, 0, 0.03, 0.1)
	return concatFloatBuffers(body, tail)
}

func generateLockSound() floatBuffer {
	return tone(waveSquare, 150, 0.05, 0.25)
}

func generateClearSound() floatBuffer {
	// Rising three-note arpeggio C5-E5-G5
	buf := tone(waveSine, 523.25, 0.07, 0.3)
	buf = concatFloatBuffers(buf, tone(waveSine, 659.26, 0.07, 0.3))
	buf = concatFloatBuffers(buf, tone(waveSine, 783.99, 0.09, 0.3))
	return buf
}

func generateTetrisSound() floatBuffer {
	// Four-note fanfare ending an octave up
	buf := tone(waveSquare, 523.25, 0.08, 0.25)
	buf = concatFloatBuffers(buf, tone(waveSquare, 659.26, 0.08, 0.25))
	buf = concatFloatBuffers(buf, tone(waveSquare, 783.99, 0.08, 0.25))
	buf = concatFloatBuffers(buf, tone(waveSquare, 1046.50, 0.16, 0.25))
	return buf
}

func generateGameOverSound() floatBuffer {
	// Slow descending line
	buf := tone(waveSquare, 392.00, 0.15, 0.25)
	buf = concatFloatBuffers(buf, tone(waveSquare, 329.63, 0.15, 0.25))
	buf = concatFloatBuffers(buf, tone(waveSquare, 261.63, 0.15, 0.25))
	buf = concatFloatBuffers(buf, tone(waveSquare, 196.00, 0.3, 0.25))
	return buf
}

// musicNote is one melody step; eighths of 0 marks a rest
type musicNote struct {
	freq    float64
	eighths int
}

// backgroundMelody is the looped theme line (A minor)
var backgroundMelody = []musicNote{
	{659.26, 2}, {493.88, 1}, {523.25, 1}, {587.33, 2}, {523.25, 1}, {493.88, 1},
	{440.00, 2}, {440.00, 1}, {523.25, 1}, {659.26, 2}, {587.33, 1}, {523.25, 1},
	{493.88, 3}, {523.25, 1}, {587.33, 2}, {659.26, 2},
	{523.25, 2}, {440.00, 2}, {440.00, 2}, {0, 2},
}

func generateBackgroundMusic() floatBuffer {
	const eighth = 0.15 // seconds; ~100 BPM
	var buf floatBuffer
	for _, n := range backgroundMelody {
		seconds := float64(n.eighths) * eighth
		if n.freq == 0 {
			buf = concatFloatBuffers(buf, make(floatBuffer, durationToSamples(seconds)))
			continue
		}
		buf = concatFloatBuffers(buf, tone(waveSquare, n.freq, seconds, 0.08))
	}
	return buf
}
