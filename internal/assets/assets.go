// Package assets loads the texture and sound catalog the game registers by key.
// Textures are glyph art with a size in world units; sounds are synthesised
// sweeps, so nothing is decoded from image or audio files.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/carrot-jump/internal/core"
)

//go:embed manifest.yaml
var defaultManifest []byte

// Texture is a drawable image registered under a key.
type Texture struct {
	Key    string   `yaml:"key"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Color  string   `yaml:"color"`
	RGB    string   `yaml:"rgb"`
	Art    []string `yaml:"art"`

	cellColor core.Color
	rgba      color.RGBA
	rows      [][]rune
}

// CellColor returns the terminal colour of the texture.
func (t *Texture) CellColor() core.Color {
	return t.cellColor
}

// RGBA returns the colour used by pixel frontends.
func (t *Texture) RGBA() color.RGBA {
	return t.rgba
}

// Glyph samples the art at the relative position (u, v) in [0,1).
// A space means the cell is transparent.
func (t *Texture) Glyph(u, v float64) rune {
	if len(t.rows) == 0 {
		return '█'
	}
	row := t.rows[clampIndex(int(v*float64(len(t.rows))), len(t.rows))]
	if len(row) == 0 {
		return ' '
	}
	return row[clampIndex(int(u*float64(len(row))), len(row))]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Sound describes a synthesised one-shot cue.
type Sound struct {
	Key        string  `yaml:"key"`
	Wave       string  `yaml:"wave"`
	FromHz     float64 `yaml:"from_hz"`
	ToHz       float64 `yaml:"to_hz"`
	DurationMS int     `yaml:"duration_ms"`
	Volume     float64 `yaml:"volume"`
}

// Duration returns the length of the cue.
func (s *Sound) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// Manifest is the on-disk layout of the catalog.
type Manifest struct {
	Textures []Texture `yaml:"textures"`
	Sounds   []Sound   `yaml:"sounds"`
}

// Catalog indexes textures and sounds by key.
type Catalog struct {
	textures map[string]*Texture
	sounds   map[string]*Sound
}

// Sentinel errors returned while parsing a manifest.
var (
	ErrDuplicateKey = errors.New("assets: duplicate key")
	ErrInvalid      = errors.New("assets: invalid entry")
)

// Load parses a YAML manifest into a catalog.
func Load(data []byte) (*Catalog, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}

	c := &Catalog{
		textures: make(map[string]*Texture, len(m.Textures)),
		sounds:   make(map[string]*Sound, len(m.Sounds)),
	}

	for i := range m.Textures {
		t := &m.Textures[i]
		if err := t.prepare(); err != nil {
			return nil, err
		}
		if _, dup := c.textures[t.Key]; dup {
			return nil, fmt.Errorf("%w: texture %q", ErrDuplicateKey, t.Key)
		}
		c.textures[t.Key] = t
	}

	for i := range m.Sounds {
		s := &m.Sounds[i]
		if s.Key == "" || s.DurationMS <= 0 || s.FromHz <= 0 || s.ToHz <= 0 {
			return nil, fmt.Errorf("%w: sound %q needs key, frequencies and duration", ErrInvalid, s.Key)
		}
		if _, dup := c.sounds[s.Key]; dup {
			return nil, fmt.Errorf("%w: sound %q", ErrDuplicateKey, s.Key)
		}
		c.sounds[s.Key] = s
	}

	return c, nil
}

// Default returns the catalog built into the binary.
func Default() (*Catalog, error) {
	return Load(defaultManifest)
}

func (t *Texture) prepare() error {
	if t.Key == "" || t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: texture %q needs key and positive size", ErrInvalid, t.Key)
	}

	c, ok := core.ParseColor(t.Color)
	if t.Color != "" && !ok {
		return fmt.Errorf("%w: texture %q has unknown color %q", ErrInvalid, t.Key, t.Color)
	}
	t.cellColor = c

	rgba, err := parseHex(t.RGB)
	if err != nil {
		return fmt.Errorf("%w: texture %q: %v", ErrInvalid, t.Key, err)
	}
	t.rgba = rgba

	t.rows = make([][]rune, len(t.Art))
	for i, line := range t.Art {
		t.rows[i] = []rune(line)
	}
	return nil
}

// parseHex parses "#rrggbb". An empty string yields opaque white.
func parseHex(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("rgb %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("rgb %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Texture looks up a texture by key.
func (c *Catalog) Texture(key string) (*Texture, bool) {
	t, ok := c.textures[key]
	return t, ok
}

// Sound looks up a sound cue by key.
func (c *Catalog) Sound(key string) (*Sound, bool) {
	s, ok := c.sounds[key]
	return s, ok
}

// SoundKeys returns the keys of all sound cues.
func (c *Catalog) SoundKeys() []string {
	keys := make([]string, 0, len(c.sounds))
	for k := range c.sounds {
		keys = append(keys, k)
	}
	return keys
}
