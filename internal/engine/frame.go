package engine

import (
	"image/color"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/core"
)

// SpriteView is a visible sprite in viewport coordinates.
type SpriteView struct {
	Box     core.Box
	Texture *assets.Texture
}

// TextView is a visible label in viewport coordinates.
type TextView struct {
	X, Y    float64
	OriginX float64
	Content string
	Color   core.Color
	RGB     color.RGBA
}

// Frame is a read-only snapshot of what the camera sees, in draw order.
type Frame struct {
	Width, Height    float64
	ScrollX, ScrollY float64
	Sprites          []SpriteView
	Texts            []TextView
}

// Viewer exposes the current frame to frontends.
type Viewer interface {
	Frame() Frame
}

// Frame snapshots the running scene. It is empty before the first start.
func (m *Manager) Frame() Frame {
	f := Frame{Width: m.width, Height: m.height}
	if m.ctx == nil {
		return f
	}
	cam := m.ctx.Camera
	f.ScrollX, f.ScrollY = cam.ScrollX, cam.ScrollY

	for _, s := range m.ctx.sprites {
		if !s.visible || s.texture == nil {
			continue
		}
		box := s.Box()
		dx := cam.ScrollX * s.ScrollFactorX
		dy := cam.ScrollY * s.ScrollFactorY
		box.MinX -= dx
		box.MaxX -= dx
		box.MinY -= dy
		box.MaxY -= dy
		f.Sprites = append(f.Sprites, SpriteView{Box: box, Texture: s.texture})
	}

	for _, t := range m.ctx.texts {
		if !t.visible {
			continue
		}
		f.Texts = append(f.Texts, TextView{
			X:       t.X,
			Y:       t.Y,
			OriginX: t.OriginX,
			Content: t.content,
			Color:   t.Style.Color,
			RGB:     t.Style.RGB,
		})
	}
	return f
}
