// Package audio plays the countdown expiry chime through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	// Two descending tones, a major third apart
	chimeHighFrequencyHz = 880.0
	chimeLowFrequencyHz  = 698.46
	chimeToneDurationMs  = 220
	chimeGapDurationMs   = 40
	chimeAmplitude       = 0.25

	// Exponential decay rate of each tone, per second
	chimeDecayPerSecond = 9.0
)

// Player owns the speaker. A zero Player is not initialized and every
// Play call is a no-op, so a machine without audio keeps working.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; call Initialize before playing
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything queued on the mixer
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

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayChime queues the expiry chime
func (p *Player) PlayChime() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(NewChime(sampleRate))
	speaker.Unlock()
}

// NewChime builds the finite two-tone chime stream
func NewChime(sr beep.SampleRate) beep.Streamer {
	tone := sr.N(time.Millisecond * chimeToneDurationMs)
	return beep.Seq(
		beep.Take(tone, NewToneGenerator(sr, chimeHighFrequencyHz)),
		beep.Silence(sr.N(time.Millisecond*chimeGapDurationMs)),
		beep.Take(tone, NewToneGenerator(sr, chimeLowFrequencyHz)),
	)
}

// ToneGenerator generates a sine tone that decays from a soft attack
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator at freq Hz
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack avoids a click, then exponential decay
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*chimeDecayPerSecond)

		// Second harmonic gives a bell-like colour
		sample := math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2*t)
		sample *= chimeAmplitude * envelope / 1.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
