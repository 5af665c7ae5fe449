package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parse(defaultJumperYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultJumperConfig(), cfg)
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, DefaultJumperConfig().Validate())
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("carrots:\n  enabled: false\nplatforms:\n  count: 7\n"), 0o644))

	cfg, src, err := LoadJumper(path)
	require.NoError(t, err)
	assert.Equal(t, Source(path), src)
	assert.False(t, cfg.Carrots.Enabled)
	assert.Equal(t, 7, cfg.Platforms.Count)
	assert.Equal(t, 480.0, cfg.World.Width)
	assert.Equal(t, -300.0, cfg.Player.JumpVelocity)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadJumper(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("world: [\n"), 0o644))
	_, _, err = LoadJumper(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("platforms:\n  min_x: 400\n  max_x: 80\n"), 0o644))
	_, _, err = LoadJumper(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", configFile), []byte("world:\n  gravity: 321\n"), 0o644))
	t.Chdir(dir)

	cfg, src, err := LoadJumper("")
	require.NoError(t, err)
	assert.Equal(t, 321.0, cfg.World.Gravity)
	assert.NotEqual(t, SourceEmbedded, src)
}

func TestLoadSkipsBrokenLocalFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", configFile), []byte("world:\n  width: -1\n"), 0o644))
	t.Chdir(dir)

	cfg, src, err := LoadJumper("")
	require.NoError(t, err)
	if src == SourceEmbedded {
		assert.Equal(t, DefaultJumperConfig(), cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
	}{
		{"zero width", func(c *JumperConfig) { c.World.Width = 0 }},
		{"negative height", func(c *JumperConfig) { c.World.Height = -5 }},
		{"player scale", func(c *JumperConfig) { c.Player.Scale = 0 }},
		{"no platforms", func(c *JumperConfig) { c.Platforms.Count = 0 }},
		{"platform scale", func(c *JumperConfig) { c.Platforms.Scale = 0 }},
		{"empty x range", func(c *JumperConfig) { c.Platforms.MinX = 100; c.Platforms.MaxX = 100 }},
		{"empty margin range", func(c *JumperConfig) { c.Platforms.MarginMin = 100; c.Platforms.MarginMax = 50 }},
		{"zero margin", func(c *JumperConfig) { c.Platforms.MarginMin = 0 }},
		{"threshold", func(c *JumperConfig) { c.Platforms.RecycleThreshold = 0 }},
		{"carrot scale", func(c *JumperConfig) { c.Carrots.Scale = 0 }},
		{"deadzone", func(c *JumperConfig) { c.Camera.DeadzoneFactor = -1 }},
		{"volume", func(c *JumperConfig) { c.Audio.Volume = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestCarrotScaleIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultJumperConfig()
	cfg.Carrots.Enabled = false
	cfg.Carrots.Scale = 0
	assert.NoError(t, cfg.Validate())
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := Marshal(DefaultJumperConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "recycle_threshold: 700")

	var back JumperConfig
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, DefaultJumperConfig(), back)
}
