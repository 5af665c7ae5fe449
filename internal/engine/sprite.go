package engine

import (
	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/core"
)

// Sprite is a textured game object positioned by its centre.
type Sprite struct {
	X, Y float64

	// ScrollFactorX and ScrollFactorY scale how much camera scroll moves the
	// sprite on screen. 0 pins it to the viewport on that axis.
	ScrollFactorX, ScrollFactorY float64

	// Body is nil for images without physics.
	Body *Body

	texture *assets.Texture
	scale   float64
	visible bool
	active  bool

	group *Group
	slot  int
}

func newSprite(x, y float64, tex *assets.Texture) *Sprite {
	return &Sprite{
		X:             x,
		Y:             y,
		ScrollFactorX: 1,
		ScrollFactorY: 1,
		texture:       tex,
		scale:         1,
		visible:       true,
		active:        true,
		slot:          -1,
	}
}

// Texture returns the current texture.
func (s *Sprite) Texture() *assets.Texture { return s.texture }

// TextureKey returns the key of the current texture.
func (s *Sprite) TextureKey() string {
	if s.texture == nil {
		return ""
	}
	return s.texture.Key
}

// SetTexture swaps the texture. The body keeps its size.
func (s *Sprite) SetTexture(t *assets.Texture) {
	s.texture = t
}

// Scale returns the uniform display scale.
func (s *Sprite) Scale() float64 { return s.scale }

// SetScale sets the display scale. Dynamic bodies are resized to match;
// static bodies wait for SyncBody.
func (s *Sprite) SetScale(f float64) {
	s.scale = f
	if s.Body != nil && !s.Body.Static {
		s.Body.SetSize(s.DisplayWidth(), s.DisplayHeight())
	}
}

// DisplayWidth is the texture width times the scale.
func (s *Sprite) DisplayWidth() float64 {
	if s.texture == nil {
		return 0
	}
	return s.texture.Width * s.scale
}

// DisplayHeight is the texture height times the scale.
func (s *Sprite) DisplayHeight() float64 {
	if s.texture == nil {
		return 0
	}
	return s.texture.Height * s.scale
}

// Box returns the displayed bounds in world units.
func (s *Sprite) Box() core.Box {
	return core.BoxAround(s.X, s.Y, s.DisplayWidth(), s.DisplayHeight())
}

// Visible reports whether the sprite is drawn.
func (s *Sprite) Visible() bool { return s.visible }

// SetVisible shows or hides the sprite.
func (s *Sprite) SetVisible(v bool) { s.visible = v }

// Active reports whether the sprite takes part in the scene.
func (s *Sprite) Active() bool { return s.active }

// SetActive marks the sprite active or inactive.
func (s *Sprite) SetActive(v bool) { s.active = v }

// SetScrollFactor sets both scroll factors.
func (s *Sprite) SetScrollFactor(x, y float64) {
	s.ScrollFactorX, s.ScrollFactorY = x, y
}

// SyncBody copies position and display size into the body.
// Static bodies must be synced after their sprite is moved or rescaled.
func (s *Sprite) SyncBody() {
	if s.Body != nil {
		s.Body.fromOwner(true)
	}
}

// SetVelocityX sets the body's horizontal velocity.
func (s *Sprite) SetVelocityX(vx float64) {
	if s.Body != nil {
		s.Body.VX = vx
	}
}

// SetVelocityY sets the body's vertical velocity.
func (s *Sprite) SetVelocityY(vy float64) {
	if s.Body != nil {
		s.Body.VY = vy
	}
}

func (s *Sprite) members() []*Sprite { return []*Sprite{s} }
