package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termtris/events"
)

// TestNewSoundManagerRendersEffects verifies construction pre-renders
// every effect without touching an audio device
func TestNewSoundManagerRendersEffects(t *testing.T) {
	sm := NewSoundManager()

	require.NotEmpty(t, sm.moveBuf)
	require.NotEmpty(t, sm.rotateBuf)
	require.NotEmpty(t, sm.dropBuf)
	require.NotEmpty(t, sm.lockBuf)
	require.NotEmpty(t, sm.clearBuf)
	require.NotEmpty(t, sm.tetrisBuf)
	require.NotEmpty(t, sm.gameOverBuf)
	assert.False(t, sm.initialized)
}

// TestUninitializedIsSilentNoOp verifies every playback entry point is
// safe without a speaker (headless terminals, CI)
func TestUninitializedIsSilentNoOp(t *testing.T) {
	sm := NewSoundManager()

	sm.PlayMove()
	sm.PlayRotate()
	sm.PlayDrop()
	sm.PlayLock()
	sm.PlayClear()
	sm.PlayTetris()
	sm.PlayGameOver()
	sm.SetMusicPaused(true)
	sm.SetMusicPaused(false)
	sm.Cleanup()
}

// TestHandleEventDispatch verifies every engine event type is accepted
// without a speaker, including the tetris variant of a clear
func TestHandleEventDispatch(t *testing.T) {
	sm := NewSoundManager()

	for _, ev := range []events.Event{
		{Type: events.TypePieceMoved},
		{Type: events.TypePieceRotated},
		{Type: events.TypeHardDropped},
		{Type: events.TypePieceLocked},
		{Type: events.TypeLinesCleared, Lines: 2},
		{Type: events.TypeLinesCleared, Lines: 4, Tetris: true},
		{Type: events.TypeLevelUp, Level: 3},
		{Type: events.TypeGameOver},
	} {
		sm.HandleEvent(ev)
	}
}

// TestToggleMute verifies the flip and its reported state
func TestToggleMute(t *testing.T) {
	sm := NewSoundManager()
	assert.False(t, sm.Muted())

	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())

	assert.False(t, sm.ToggleMute())
	assert.False(t, sm.Muted())
}

// TestBufferStreamerContract verifies the StreamSeeker behavior the
// music loop depends on: full drain, length, and rewind
func TestBufferStreamerContract(t *testing.T) {
	s := &bufferStreamer{buf: make(floatBuffer, 100)}
	assert.Equal(t, 100, s.Len())

	samples := make([][2]float64, 64)
	n, ok := s.Stream(samples)
	assert.Equal(t, 64, n)
	assert.True(t, ok)
	assert.Equal(t, 64, s.Position())

	n, ok = s.Stream(samples)
	assert.Equal(t, 36, n)
	assert.True(t, ok)

	n, ok = s.Stream(samples)
	assert.Zero(t, n)
	assert.False(t, ok, "exhausted streamer reports done")

	require.NoError(t, s.Seek(0))
	n, ok = s.Stream(samples)
	assert.Equal(t, 64, n)
	assert.True(t, ok)
}

// TestBufferStreamerDuplicatesChannels verifies mono content is mirrored
// to both output channels
func TestBufferStreamerDuplicatesChannels(t *testing.T) {
	s := &bufferStreamer{buf: floatBuffer{0.5, -0.25}}
	samples := make([][2]float64, 2)
	n, _ := s.Stream(samples)

	require.Equal(t, 2, n)
	assert.Equal(t, [2]float64{0.5, 0.5}, samples[0])
	assert.Equal(t, [2]float64{-0.25, -0.25}, samples[1])
}
