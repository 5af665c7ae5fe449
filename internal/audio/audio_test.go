package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/carrot-jump/internal/assets"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Play("jump")
	r.Play("carrot")
	r.Play("jump")

	assert.Equal(t, []string{"jump", "carrot", "jump"}, r.Plays())
	assert.Equal(t, 2, r.Count("jump"))
	assert.Equal(t, 0, r.Count("missing"))

	r.Reset()
	assert.Empty(t, r.Plays())
}

func TestOpenDisabledIsSilent(t *testing.T) {
	c, err := assets.Default()
	require.NoError(t, err)

	p := Open(c, Options{Enabled: false, Volume: 1})
	assert.IsType(t, Silent{}, p)
	p.Play("jump")
}

func TestSweepLength(t *testing.T) {
	snd := &assets.Sound{Key: "k", Wave: "sine", FromHz: 400, ToHz: 800, DurationMS: 10}
	s := newSweep(snd, sampleRate)
	want := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
	require.NoError(t, s.Err())

	n, ok := s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestSweepRange(t *testing.T) {
	for _, wave := range []string{"sine", "square", "saw", "triangle"} {
		t.Run(wave, func(t *testing.T) {
			snd := &assets.Sound{Key: "k", Wave: wave, FromHz: 200, ToHz: 1200, DurationMS: 50}
			s := newSweep(snd, sampleRate)
			buf := make([][2]float64, 512)
			n, ok := s.Stream(buf)
			require.True(t, ok)
			for i := 0; i < n; i++ {
				assert.GreaterOrEqual(t, buf[i][0], -1.0)
				assert.LessOrEqual(t, buf[i][0], 1.0)
				assert.Equal(t, buf[i][0], buf[i][1])
			}
		})
	}
}

func TestSweepEnvelopeStartsSilent(t *testing.T) {
	snd := &assets.Sound{Key: "k", Wave: "square", FromHz: 440, ToHz: 440, DurationMS: 100}
	s := newSweep(snd, sampleRate)
	buf := make([][2]float64, 1)
	_, ok := s.Stream(buf)
	require.True(t, ok)
	assert.Zero(t, buf[0][0])
}
