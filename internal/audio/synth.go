package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency slides linearly from start to end.
type sweep struct {
	start, end float64
	phase      float64
	position   int
	duration   int
	wave       WaveType
	rate       beep.SampleRate
	rng        *rand.Rand
}

// NewSweep creates an oscillator sliding from start to end Hz over duration.
// A constant tone is a sweep with start == end.
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps. s is cut at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(duration), s),
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// flapSound is a short rising chirp.
func flapSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	chirp := NewSweep(300, 900, d, WaveSquare, rate)
	return newVolume(NewEnvelope(chirp, d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.25)
}

// pointSound is a two-note chime.
func pointSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64, d time.Duration) beep.Streamer {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			// Tone above Nyquist for this rate; fall back to the plain oscillator
			tone = NewSweep(freq, freq, d, WaveSine, rate)
		}
		return NewEnvelope(tone, d, 3*time.Millisecond, d/2, rate)
	}
	return newVolume(beep.Seq(
		note(987.77, 80*time.Millisecond),
		note(1318.51, 160*time.Millisecond),
	), 0.4)
}

// hitSound is a noise burst over a low thud.
func hitSound(rate beep.SampleRate) beep.Streamer {
	d := 150 * time.Millisecond
	noise := NewEnvelope(NewSweep(0, 0, d, WaveNoise, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
	thud := NewEnvelope(NewSweep(120, 50, d, WaveSine, rate), d, 2*time.Millisecond, 100*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.3), newVolume(thud, 0.5))
}

// dieSound is a long falling saw.
func dieSound(rate beep.SampleRate) beep.Streamer {
	d := 450 * time.Millisecond
	fall := NewSweep(600, 90, d, WaveSaw, rate)
	return newVolume(NewEnvelope(fall, d, 10*time.Millisecond, 200*time.Millisecond, rate), 0.3)
}

// synthesize returns the generated sound for a cue.
func synthesize(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueFlap:
		return flapSound(rate)
	case core.CuePoint:
		return pointSound(rate)
	case core.CueHit:
		return hitSound(rate)
	case core.CueDie:
		return dieSound(rate)
	default:
		return nil
	}
}
