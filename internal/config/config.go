// Package config provides YAML-based configuration loading for the jumper.
package config

import (
	"errors"
	"fmt"
)

// JumperConfig contains all tunables of the jumper scene.
type JumperConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Platforms PlatformConfig `yaml:"platforms"`
	Carrots   CarrotConfig   `yaml:"carrots"`
	Camera    CameraConfig   `yaml:"camera"`
	GameOver  GameOverConfig `yaml:"game_over"`
	Audio     AudioConfig    `yaml:"audio"`
}

// WorldConfig defines the game size and gravity.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // units/s^2, positive is down
}

// PlayerConfig defines the bunny.
type PlayerConfig struct {
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	Scale        float64 `yaml:"scale"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative is up
	RunSpeed     float64 `yaml:"run_speed"`
}

// PlatformConfig defines the recycled platform pool.
type PlatformConfig struct {
	Count            int     `yaml:"count"`
	Spacing          float64 `yaml:"spacing"`
	Scale            float64 `yaml:"scale"`
	MinX             int     `yaml:"min_x"` // inclusive
	MaxX             int     `yaml:"max_x"` // exclusive
	RecycleThreshold float64 `yaml:"recycle_threshold"`
	MarginMin        int     `yaml:"margin_min"` // inclusive
	MarginMax        int     `yaml:"margin_max"` // exclusive
}

// CarrotConfig defines the collectibles.
type CarrotConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Scale         float64 `yaml:"scale"`
	CullOffscreen bool    `yaml:"cull_offscreen"`
}

// CameraConfig defines how the camera follows the player.
type CameraConfig struct {
	DeadzoneFactor float64 `yaml:"deadzone_factor"` // dead-zone width as a multiple of world width
}

// GameOverConfig defines the terminal condition.
type GameOverConfig struct {
	FallMargin float64 `yaml:"fall_margin"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Validate checks sizes are positive and ranges are non-empty.
func (c JumperConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.Player.Scale <= 0:
		return fmt.Errorf("%w: player scale must be positive", ErrInvalid)
	case c.Platforms.Count <= 0:
		return fmt.Errorf("%w: platform count must be positive, got %d", ErrInvalid, c.Platforms.Count)
	case c.Platforms.Scale <= 0:
		return fmt.Errorf("%w: platform scale must be positive", ErrInvalid)
	case c.Platforms.MinX >= c.Platforms.MaxX:
		return fmt.Errorf("%w: platform x range [%d,%d) is empty", ErrInvalid, c.Platforms.MinX, c.Platforms.MaxX)
	case c.Platforms.MarginMin >= c.Platforms.MarginMax:
		return fmt.Errorf("%w: recycle margin range [%d,%d) is empty", ErrInvalid, c.Platforms.MarginMin, c.Platforms.MarginMax)
	case c.Platforms.MarginMin <= 0:
		return fmt.Errorf("%w: recycle margin must be positive", ErrInvalid)
	case c.Platforms.RecycleThreshold <= 0:
		return fmt.Errorf("%w: recycle threshold must be positive", ErrInvalid)
	case c.Carrots.Enabled && c.Carrots.Scale <= 0:
		return fmt.Errorf("%w: carrot scale must be positive", ErrInvalid)
	case c.Camera.DeadzoneFactor < 0:
		return fmt.Errorf("%w: camera dead-zone factor must not be negative", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
