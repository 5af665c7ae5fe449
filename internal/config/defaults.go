package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:   480,
			Height:  640,
			Gravity: 200,
		},
		Player: PlayerConfig{
			SpawnX:       240,
			SpawnY:       320,
			Scale:        0.5,
			JumpVelocity: -300,
			RunSpeed:     200,
		},
		Platforms: PlatformConfig{
			Count:            5,
			Spacing:          150,
			Scale:            0.5,
			MinX:             80,
			MaxX:             400,
			RecycleThreshold: 700,
			MarginMin:        50,
			MarginMax:        100,
		},
		Carrots: CarrotConfig{
			Enabled:       true,
			Scale:         0.5,
			CullOffscreen: true,
		},
		Camera: CameraConfig{
			DeadzoneFactor: 1.5,
		},
		GameOver: GameOverConfig{
			FallMargin: 200,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
