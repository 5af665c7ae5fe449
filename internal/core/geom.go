// Package core provides fundamental types shared by the engine, the games and
// the frontends. It has no external dependencies (no Bubble Tea, no Ebiten) so
// game logic stays pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
// Y grows downwards, matching the screen.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround returns the box of size w x h centred on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.MinX >= o.MaxX || o.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= o.MaxY || o.MinY >= b.MaxY {
		return false
	}
	return true
}

// OverlapsX reports whether the horizontal spans of two boxes overlap.
func (b Box) OverlapsX(o Box) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
