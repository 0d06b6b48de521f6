// Package audio plays short interface cues for selection, cart, and
// error feedback. The speaker is initialized best-effort; when no audio
// device is available every cue is a silent no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues owns the speaker and mixes one-shot tones into it.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

func NewCues(enabled bool) *Cues {
	return &Cues{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Initialize opens the speaker. Failure leaves the cues disabled and is
// returned for logging only.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		c.enabled = false
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close.
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Select is a short high tick for toggling selection.
func (c *Cues) Select() {
	c.play(NewTone(880, 40*time.Millisecond, WaveSine, 0.3, sampleRate))
}

// Cart is a two-note rise for cart membership changes.
func (c *Cues) Cart() {
	c.play(beep.Seq(
		NewTone(523.25, 60*time.Millisecond, WaveTriangle, 0.3, sampleRate),
		NewTone(783.99, 80*time.Millisecond, WaveTriangle, 0.3, sampleRate),
	))
}

// Open marks entering the detail view.
func (c *Cues) Open() {
	c.play(NewTone(659.25, 70*time.Millisecond, WaveSine, 0.25, sampleRate))
}

// Error is a low square buzz for rejected input.
func (c *Cues) Error() {
	c.play(NewTone(110, 120*time.Millisecond, WaveSquare, 0.2, sampleRate))
}
