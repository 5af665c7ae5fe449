package assets

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/carrot-jump/internal/core"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, key := range []string{"background", "platform", "bunny-stand", "bunny-jump", "carrot"} {
		tex, ok := c.Texture(key)
		require.True(t, ok, "texture %q missing", key)
		assert.Positive(t, tex.Width)
		assert.Positive(t, tex.Height)
		assert.NotEmpty(t, tex.Art)
	}

	for _, key := range []string{"jump", "carrot"} {
		snd, ok := c.Sound(key)
		require.True(t, ok, "sound %q missing", key)
		assert.Positive(t, snd.Duration())
	}
	assert.ElementsMatch(t, []string{"jump", "carrot"}, c.SoundKeys())

	_, ok := c.Texture("dragon")
	assert.False(t, ok)
}

func TestTextureColors(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	platform, _ := c.Texture("platform")
	assert.Equal(t, core.ColorGreen, platform.CellColor())
	assert.Equal(t, color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}, platform.RGBA())
}

func TestGlyphSampling(t *testing.T) {
	data := []byte(`
textures:
  - key: box
    width: 10
    height: 10
    art:
      - "ab"
      - "cd"
`)
	c, err := Load(data)
	require.NoError(t, err)
	tex, _ := c.Texture("box")

	assert.Equal(t, 'a', tex.Glyph(0, 0))
	assert.Equal(t, 'b', tex.Glyph(0.75, 0.1))
	assert.Equal(t, 'c', tex.Glyph(0.1, 0.9))
	assert.Equal(t, 'd', tex.Glyph(1.5, 1.5))
	assert.Equal(t, 'a', tex.Glyph(-1, -1))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, tex.RGBA())
}

func TestGlyphWithoutArt(t *testing.T) {
	c, err := Load([]byte("textures:\n  - {key: solid, width: 1, height: 1}\n"))
	require.NoError(t, err)
	tex, _ := c.Texture("solid")
	assert.Equal(t, '█', tex.Glyph(0.5, 0.5))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero width", "textures:\n  - {key: a, width: 0, height: 1}\n", ErrInvalid},
		{"missing key", "textures:\n  - {width: 1, height: 1}\n", ErrInvalid},
		{"unknown color", "textures:\n  - {key: a, width: 1, height: 1, color: plaid}\n", ErrInvalid},
		{"bad rgb", "textures:\n  - {key: a, width: 1, height: 1, rgb: '#12'}\n", ErrInvalid},
		{"non hex rgb", "textures:\n  - {key: a, width: 1, height: 1, rgb: '#zzzzzz'}\n", ErrInvalid},
		{"duplicate texture", "textures:\n  - {key: a, width: 1, height: 1}\n  - {key: a, width: 2, height: 2}\n", ErrDuplicateKey},
		{"bad sound", "sounds:\n  - {key: s, from_hz: 100, to_hz: 200, duration_ms: 0}\n", ErrInvalid},
		{"duplicate sound", "sounds:\n  - {key: s, from_hz: 1, to_hz: 1, duration_ms: 1}\n  - {key: s, from_hz: 1, to_hz: 1, duration_ms: 1}\n", ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load([]byte("textures: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assets: cannot parse manifest")
}

func TestSoundDuration(t *testing.T) {
	s := Sound{DurationMS: 180}
	assert.Equal(t, 180*time.Millisecond, s.Duration())
}
