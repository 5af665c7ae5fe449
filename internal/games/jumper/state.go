// Package jumper implements Bunny Jump, an endless vertical jumper.
// The bunny bounces off platforms that are recycled above the camera as they
// scroll away below it, collecting carrots that spawn on the way.
package jumper

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/config"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/engine"
)

// Asset keys.
const (
	TextureBackground = "background"
	TexturePlatform   = "platform"
	TextureStand      = "bunny-stand"
	TextureJump       = "bunny-jump"
	TextureCarrot     = "carrot"

	SoundJump   = "jump"
	SoundCarrot = "carrot"
)

// Scene keys.
const (
	SceneGame     = "game"
	SceneGameOver = "game-over"
)

var (
	colorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	scoreStyle = engine.TextStyle{
		Color: core.ColorBrightMagenta,
		RGB:   color.RGBA{R: 0xCC, G: 0x00, B: 0xCC, A: 0xFF},
	}
)

// State is everything the game scene mutates each frame.
type State struct {
	Platforms *engine.Group
	Player    *engine.Sprite
	Pose      Pose
	Carrots   *engine.Group // nil when collectibles are off
	Collected int
	ScoreText *engine.Text

	cfg      config.JumperConfig
	rng      *rand.Rand
	world    *engine.World
	textures map[Pose]*assets.Texture
	play     func(key string)
}

func scoreLabel(n int) string {
	return fmt.Sprintf("Carrots: %d", n)
}

// setPose switches the pose and the texture derived from it.
func (st *State) setPose(p Pose) {
	st.Pose = p
	if tex, ok := st.textures[p]; ok {
		st.Player.SetTexture(tex)
	}
}
