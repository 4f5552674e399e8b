package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/termtris/constants"
	"github.com/lixenwraith/termtris/events"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// bufferStreamer streams a pre-rendered mono buffer to both channels.
// Implements beep.StreamSeeker so the music loop can rewind it.
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

func (s *bufferStreamer) Len() int { return len(s.buf) }

func (s *bufferStreamer) Position() int { return s.pos }

func (s *bufferStreamer) Seek(p int) error {
	s.pos = p
	return nil
}

// SoundManager synthesizes and plays all game audio. Effects are
// rendered once at construction; playback is fire-and-forget through
// the speaker. Degrades gracefully: if speaker init fails (headless,
// CI), every method stays a safe no-op.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool

	musicCtrl *beep.Ctrl

	moveBuf     floatBuffer
	rotateBuf   floatBuffer
	dropBuf     floatBuffer
	lockBuf     floatBuffer
	clearBuf    floatBuffer
	tetrisBuf   floatBuffer
	gameOverBuf floatBuffer
}

// NewSoundManager renders all effect buffers; no audio device is
// touched until Initialize
func NewSoundManager() *SoundManager {
	return &SoundManager{
		moveBuf:     generateMoveSound(),
		rotateBuf:   generateRotateSound(),
		dropBuf:     generateDropSound(),
		lockBuf:     generateLockSound(),
		clearBuf:    generateClearSound(),
		tetrisBuf:   generateTetrisSound(),
		gameOverBuf: generateGameOverSound(),
	}
}

// Initialize opens the speaker and starts the looped background
// music. An error means no audio backend; the game runs silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	music := beep.Loop(-1, &bufferStreamer{buf: generateBackgroundMusic()})
	sm.musicCtrl = &beep.Ctrl{Streamer: music}
	speaker.Play(sm.musicCtrl)

	sm.initialized = true
	return nil
}

// Cleanup silences everything. Safe without initialization.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.musicCtrl = nil
	sm.initialized = false
}

// play fires one pre-rendered effect, respecting init and mute state
func (sm *SoundManager) play(buf floatBuffer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Play(&bufferStreamer{buf: buf})
}

func (sm *SoundManager) PlayMove()     { sm.play(sm.moveBuf) }
func (sm *SoundManager) PlayRotate()   { sm.play(sm.rotateBuf) }
func (sm *SoundManager) PlayDrop()     { sm.play(sm.dropBuf) }
func (sm *SoundManager) PlayLock()     { sm.play(sm.lockBuf) }
func (sm *SoundManager) PlayClear()    { sm.play(sm.clearBuf) }
func (sm *SoundManager) PlayTetris()   { sm.play(sm.tetrisBuf) }
func (sm *SoundManager) PlayGameOver() { sm.play(sm.gameOverBuf) }

// HandleEvent reacts to one engine event. Called by the game loop
// while draining the queue once per frame.
func (sm *SoundManager) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.TypePieceMoved:
		sm.PlayMove()
	case events.TypePieceRotated:
		sm.PlayRotate()
	case events.TypeHardDropped:
		sm.PlayDrop()
	case events.TypePieceLocked:
		sm.PlayLock()
	case events.TypeLinesCleared:
		if ev.Tetris {
			sm.PlayTetris()
		} else {
			sm.PlayClear()
		}
	case events.TypeGameOver:
		sm.PlayGameOver()
	}
}

// ToggleMute flips the mute state and returns the new value. Muting
// pauses the music loop; effects are simply not started.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.setMusicPausedLocked(sm.muted)
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetMusicPaused freezes or resumes the background loop; used when
// the game pauses so the well and the music stop together
func (sm *SoundManager) SetMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.muted && !paused {
		return // stay silent while muted
	}
	sm.setMusicPausedLocked(paused)
}

func (sm *SoundManager) setMusicPausedLocked(paused bool) {
	if !sm.initialized || sm.musicCtrl == nil {
		return
	}
	speaker.Lock()
	sm.musicCtrl.Paused = paused
	speaker.Unlock()
}

// effectDuration is how long the longest one-shot effect plays; used
// by tests to bound sleep-free assertions
func effectDuration(buf floatBuffer) time.Duration {
	return time.Duration(float64(len(buf)) / constants.AudioSampleRate * float64(time.Second))
}
