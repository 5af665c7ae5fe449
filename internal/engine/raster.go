package engine

import (
	"math"

	"github.com/vovakirdan/carrot-jump/internal/core"
)

const (
	// cellAspect is how many times taller than wide a terminal cell is.
	cellAspect = 2.0
	fitEpsilon = 1e-9
)

// Viewport maps world units onto a character grid.
type Viewport struct {
	Cols, Rows       int // cells used by the world
	OffsetX, OffsetY int // top-left cell of the world on screen
	UnitX, UnitY     float64
}

// FitViewport scales a world of w x h units into a cols x rows screen,
// keeping the aspect ratio and centring it.
func FitViewport(w, h float64, cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 || w <= 0 || h <= 0 {
		return Viewport{UnitX: 1, UnitY: 1}
	}

	unitY := h / float64(rows)
	unitX := unitY / cellAspect
	viewCols := int(w/unitX + fitEpsilon)
	viewRows := rows
	if viewCols > cols {
		unitX = w / float64(cols)
		unitY = unitX * cellAspect
		viewCols = cols
		viewRows = int(h/unitY + fitEpsilon)
	}

	return Viewport{
		Cols:    viewCols,
		Rows:    viewRows,
		OffsetX: (cols - viewCols) / 2,
		OffsetY: (rows - viewRows) / 2,
		UnitX:   unitX,
		UnitY:   unitY,
	}
}

// Rasterize draws the frame into dst. Sprites are sampled at cell centres;
// spaces in their art are transparent.
func Rasterize(f Frame, dst *core.Screen) Viewport {
	vp := FitViewport(f.Width, f.Height, dst.Width(), dst.Height())
	if vp.Cols == 0 || vp.Rows == 0 {
		return vp
	}

	if vp.OffsetX > 0 {
		dst.DrawVLine(vp.OffsetX-1, vp.OffsetY, vp.Rows, '│', core.ColorGray)
		dst.DrawVLine(vp.OffsetX+vp.Cols, vp.OffsetY, vp.Rows, '│', core.ColorGray)
	}

	for _, s := range f.Sprites {
		vp.drawSprite(s, dst)
	}

	for _, t := range f.Texts {
		runes := []rune(t.Content)
		col := int(math.Floor(t.X/vp.UnitX)) - int(math.Round(t.OriginX*float64(len(runes))))
		row := int(math.Floor(t.Y / vp.UnitY))
		if row < 0 || row >= vp.Rows {
			continue
		}
		for i, r := range runes {
			c := col + i
			if c < 0 || c >= vp.Cols {
				continue
			}
			dst.SetColor(vp.OffsetX+c, vp.OffsetY+row, r, t.Color)
		}
	}
	return vp
}

func (vp Viewport) drawSprite(s SpriteView, dst *core.Screen) {
	tex := s.Texture
	w, h := s.Box.Width(), s.Box.Height()
	if w <= 0 || h <= 0 {
		return
	}

	c0 := max(int(math.Floor(s.Box.MinX/vp.UnitX)), 0)
	c1 := min(int(math.Ceil(s.Box.MaxX/vp.UnitX)), vp.Cols)
	r0 := max(int(math.Floor(s.Box.MinY/vp.UnitY)), 0)
	r1 := min(int(math.Ceil(s.Box.MaxY/vp.UnitY)), vp.Rows)

	drawn := false
	for r := r0; r < r1; r++ {
		wy := (float64(r) + 0.5) * vp.UnitY
		v := (wy - s.Box.MinY) / h
		if v < 0 || v >= 1 {
			continue
		}
		for c := c0; c < c1; c++ {
			wx := (float64(c) + 0.5) * vp.UnitX
			u := (wx - s.Box.MinX) / w
			if u < 0 || u >= 1 {
				continue
			}
			drawn = true
			g := tex.Glyph(u, v)
			if g == ' ' {
				continue
			}
			dst.SetColor(vp.OffsetX+c, vp.OffsetY+r, g, tex.CellColor())
		}
	}

	// Sprites smaller than a cell still show up as one glyph.
	if !drawn {
		cx := int(math.Floor((s.Box.MinX + w/2) / vp.UnitX))
		cy := int(math.Floor((s.Box.MinY + h/2) / vp.UnitY))
		if cx >= 0 && cx < vp.Cols && cy >= 0 && cy < vp.Rows {
			dst.SetColor(vp.OffsetX+cx, vp.OffsetY+cy, tex.Glyph(0.5, 0.5), tex.CellColor())
		}
	}
}
