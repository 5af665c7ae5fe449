package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/carrot-jump/internal/assets"
)

const (
	sampleRate = beep.SampleRate(44100)

	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration, shaped by a linear attack/release envelope.
type sweep struct {
	rate     beep.SampleRate
	wave     string
	fromHz   float64
	toHz     float64
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

func newSweep(s *assets.Sound, rate beep.SampleRate) *sweep {
	return &sweep{
		rate:    rate,
		wave:    s.Wave,
		fromHz:  s.FromHz,
		toHz:    s.ToHz,
		total:   rate.N(s.Duration()),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.total)
		freq := s.fromHz + (s.toHz-s.fromHz)*progress

		val := s.sample() * s.envelope()
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) sample() float64 {
	switch s.wave {
	case "square":
		if s.phase < 0.5 {
			return 1
		}
		return -1
	case "saw":
		return 2 * (s.phase - 0.5)
	case "triangle":
		return 1 - 4*math.Abs(s.phase-0.5)
	default:
		return math.Sin(2 * math.Pi * s.phase)
	}
}

func (s *sweep) envelope() float64 {
	if s.attack > 0 && s.position < s.attack {
		return float64(s.position) / float64(s.attack)
	}
	if remaining := s.total - s.position; s.release > 0 && remaining < s.release {
		return float64(remaining) / float64(s.release)
	}
	return 1
}

func (s *sweep) Err() error { return nil }

// cue builds the streamer for a sound at the given master volume in [0,1].
func cue(s *assets.Sound, master float64) beep.Streamer {
	return withVolume(newSweep(s, sampleRate), s.Volume*master)
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
