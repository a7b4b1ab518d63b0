// Package audio plays short synthesized sound cues for game events.
// Audio is optional: when the output device cannot be opened the game runs
// silently.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue identifies a sound.
type Cue int

const (
	CueJump Cue = iota
	CueWin
	CueLose
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
}

// Mute is a Player that discards every cue.
type Mute struct{}

// Play does nothing.
func (Mute) Play(Cue) {}

// SoundManager mixes cues onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before playing.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all playing cues.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts a cue. It does nothing before Initialize succeeds.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CueStreamer(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// CueStreamer builds a finite streamer for the cue.
func CueStreamer(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueJump:
		return beep.Take(sr.N(120*time.Millisecond), NewSweepGenerator(sr, 320, 720, 120*time.Millisecond, 0.2))
	case CueWin:
		note := 110 * time.Millisecond
		return beep.Seq(
			beep.Take(sr.N(note), NewSweepGenerator(sr, 523, 523, note, 0.2)),
			beep.Take(sr.N(note), NewSweepGenerator(sr, 659, 659, note, 0.2)),
			beep.Take(sr.N(2*note), NewSweepGenerator(sr, 784, 784, 2*note, 0.2)),
		)
	case CueLose:
		return beep.Take(sr.N(400*time.Millisecond), NewSweepGenerator(sr, 400, 110, 400*time.Millisecond, 0.25))
	default:
		return nil
	}
}
