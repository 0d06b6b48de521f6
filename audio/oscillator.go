package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator streams a fixed-duration tone with a short linear fade-out
// so cues end without a click.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	fade     int
	wave     WaveType
	volume   float64
	rate     beep.SampleRate
}

// NewTone creates a finite tone streamer.
func NewTone(freq float64, duration time.Duration, wave WaveType, volume float64, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	fade := rate.N(10 * time.Millisecond)
	if fade > samples/2 {
		fade = samples / 2
	}
	return &oscillator{
		freq:     freq,
		duration: samples,
		fade:     fade,
		wave:     wave,
		volume:   volume,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		gain := o.volume
		if remain := o.duration - o.position; remain < o.fade && o.fade > 0 {
			gain *= float64(remain) / float64(o.fade)
		}
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
