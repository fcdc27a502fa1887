// Package audio plays short synthesized cues for interactive frontends.
// Everything degrades to a no-op before Initialize or after Cleanup, so
// headless callers can hold a Player without a sound device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and a mixer the cues are queued on.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlayAlert is the sensor-activation cue: a short high blip.
func (p *Player) PlayAlert() {
	p.play(newTone(sampleRate, 880, 60*time.Millisecond))
}

// PlayCapture is the goal-reached cue: a lower two-step chime.
func (p *Player) PlayCapture() {
	p.play(beep.Seq(
		newTone(sampleRate, 440, 80*time.Millisecond),
		newTone(sampleRate, 660, 120*time.Millisecond),
	))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
