// Package audio synthesizes short formation-transition chimes.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// oscillator generates a raw sine of fixed length
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newOscillator(freq float64, duration time.Duration) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: sampleRate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) *envelope {
	return &envelope{
		streamer:       s,
		attackSamples:  sampleRate.N(attack),
		releaseSamples: sampleRate.N(release),
		totalSamples:   sampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if rem := e.totalSamples - e.position; rem < e.releaseSamples && e.releaseSamples > 0 {
			vol = float64(rem) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Chime plays transition cues through the speaker
// Construction failure is non-fatal: a zero Chime stays silent
type Chime struct {
	ready bool
}

// NewChime initializes the speaker. The scene runs fine without sound,
// so callers treat an error as a downgrade, not a failure
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, err
	}
	return &Chime{ready: true}, nil
}

// Scatter plays the rising open-hand cue
func (c *Chime) Scatter() {
	c.play(523.25, 150*time.Millisecond) // C5
}

// Gather plays the falling closed-hand cue
func (c *Chime) Gather() {
	c.play(392.00, 150*time.Millisecond) // G4
}

func (c *Chime) play(freq float64, duration time.Duration) {
	if !c.ready {
		return
	}
	tone := newEnvelope(
		newOscillator(freq, duration),
		duration,
		10*time.Millisecond,
		60*time.Millisecond,
	)
	speaker.Play(tone)
}

// Close releases the speaker
func (c *Chime) Close() {
	if c.ready {
		speaker.Close()
	}
}
