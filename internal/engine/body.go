package engine

import "github.com/vovakirdan/carrot-jump/internal/core"

// Sides is a set of flags, one per box side.
type Sides struct {
	Up, Down, Left, Right bool
}

// AllSides has every flag set.
var AllSides = Sides{Up: true, Down: true, Left: true, Right: true}

// Body is an axis-aligned physics body. Position is the box centre.
//
// Dynamic bodies copy their owner's position at the start of every step and
// write it back afterwards, so moving the sprite moves the body. Static bodies
// only follow their sprite when SyncBody is called.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	Static       bool
	Enabled      bool
	AllowGravity bool

	CheckCollision Sides
	Touching       Sides

	owner      *Sprite
	prevBottom float64
}

func newBody(owner *Sprite, static bool) *Body {
	b := &Body{
		Static:         static,
		Enabled:        true,
		AllowGravity:   !static,
		CheckCollision: AllSides,
		owner:          owner,
	}
	b.fromOwner(true)
	return b
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.W, b.H)
}

// Top returns the y of the upper edge.
func (b *Body) Top() float64 { return b.Y - b.H/2 }

// Bottom returns the y of the lower edge.
func (b *Body) Bottom() float64 { return b.Y + b.H/2 }

// SetSize changes the body size, keeping its centre.
func (b *Body) SetSize(w, h float64) {
	b.W, b.H = w, h
}

func (b *Body) fromOwner(withSize bool) {
	if b.owner == nil {
		return
	}
	b.X, b.Y = b.owner.X, b.owner.Y
	if withSize {
		b.W, b.H = b.owner.DisplayWidth(), b.owner.DisplayHeight()
	}
}

func (b *Body) toOwner() {
	if b.owner == nil {
		return
	}
	b.owner.X, b.owner.Y = b.X, b.Y
}
