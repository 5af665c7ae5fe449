package engine

// landingBias absorbs float drift when a body resting on a platform is
// snapped back to the platform top every step.
const landingBias = 1e-6

// Collidable is a sprite or a group taking part in collision checks.
type Collidable interface {
	members() []*Sprite
}

// OverlapFunc is called for every intersecting pair.
type OverlapFunc func(a, b *Sprite)

type collider struct {
	a, b Collidable
}

type overlap struct {
	a, b Collidable
	fn   OverlapFunc
}

// World integrates bodies and resolves colliders and overlaps.
type World struct {
	Gravity float64

	bodies    []*Body
	colliders []collider
	overlaps  []overlap
}

// NewWorld creates a world with downward gravity in units/s^2.
func NewWorld(gravity float64) *World {
	return &World{Gravity: gravity}
}

func (w *World) add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// AddCollider registers a solid pair. Dynamic bodies land on static ones.
func (w *World) AddCollider(a, b Collidable) {
	w.colliders = append(w.colliders, collider{a: a, b: b})
}

// AddOverlap registers a pair whose intersections call fn.
func (w *World) AddOverlap(a, b Collidable, fn OverlapFunc) {
	w.overlaps = append(w.overlaps, overlap{a: a, b: b, fn: fn})
}

// Enable turns the sprite's body on.
func (w *World) Enable(s *Sprite) {
	if s.Body != nil {
		s.Body.Enabled = true
		s.Body.fromOwner(false)
	}
}

// Disable turns the sprite's body off. Disabled bodies neither move nor collide.
func (w *World) Disable(s *Sprite) {
	if s.Body != nil {
		s.Body.Enabled = false
		s.Body.Touching = Sides{}
	}
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.Touching = Sides{}
		if !b.Enabled || b.Static {
			continue
		}
		b.fromOwner(false)
		b.prevBottom = b.Bottom()
		if b.AllowGravity {
			b.VY += w.Gravity * dt
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}

	for _, c := range w.colliders {
		for _, a := range c.a.members() {
			for _, b := range c.b.members() {
				separate(a.Body, b.Body)
			}
		}
	}

	for _, b := range w.bodies {
		if b.Enabled && !b.Static {
			b.toOwner()
		}
	}

	for _, o := range w.overlaps {
		for _, a := range o.a.members() {
			for _, b := range o.b.members() {
				if a == b || !overlapping(a, b) {
					continue
				}
				o.fn(a, b)
			}
		}
	}
}

func overlapping(a, b *Sprite) bool {
	if !a.active || !b.active || a.Body == nil || b.Body == nil {
		return false
	}
	if !a.Body.Enabled || !b.Body.Enabled {
		return false
	}
	return a.Body.Box().Intersects(b.Body.Box())
}

// separate lands a falling dynamic body on top of a static one.
// Every other contact passes through, which makes platforms one-way.
func separate(a, b *Body) {
	if a == nil || b == nil || !a.Enabled || !b.Enabled || a.Static == b.Static {
		return
	}
	mover, ground := a, b
	if a.Static {
		mover, ground = b, a
	}

	if mover.VY < 0 || !mover.CheckCollision.Down || !ground.CheckCollision.Up {
		return
	}
	top := ground.Top()
	if mover.prevBottom > top+landingBias || mover.Bottom() <= top {
		return
	}
	if !mover.Box().OverlapsX(ground.Box()) {
		return
	}

	mover.Y = top - mover.H/2
	mover.VY = 0
	mover.Touching.Down = true
	ground.Touching.Up = true
}
