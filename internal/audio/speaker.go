package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/core"
)

// Options control the speaker output.
type Options struct {
	Enabled bool
	Volume  float64 // master volume in [0,1]
}

// Speaker mixes cues into the system audio device.
type Speaker struct {
	mu      sync.Mutex
	catalog *assets.Catalog
	mixer   *beep.Mixer
	volume  float64
	closed  bool
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeaker initialises the audio device and starts the mixer.
// The device is process-wide and initialised once.
func NewSpeaker(catalog *assets.Catalog, volume float64) (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", speakerErr)
	}

	s := &Speaker{
		catalog: catalog,
		mixer:   &beep.Mixer{},
		volume:  core.ClampF(volume, 0, 1),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cue on the mixer.
func (s *Speaker) Play(key string) {
	snd, ok := s.catalog.Sound(key)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(cue(snd, s.volume))
	speaker.Unlock()
}

// Close stops all cues. The device itself stays open for the process.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Open returns a speaker, or Silent when audio is disabled or the device
// cannot be initialised. Failure is logged, not returned.
func Open(catalog *assets.Catalog, opts Options) Player {
	if !opts.Enabled {
		return Silent{}
	}
	s, err := NewSpeaker(catalog, opts.Volume)
	if err != nil {
		log.Warn("audio disabled", "err", err)
		return Silent{}
	}
	return s
}
