package engine

import (
	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/pool"
)

// BodyKind selects what physics a group gives its members.
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyDynamic
	BodyStatic
)

// Group is a pooled collection of sprites sharing one texture.
// Killed members stay allocated and are revived by Get before the pool grows.
type Group struct {
	kind    BodyKind
	texture *assets.Texture
	items   *pool.Pool[*Sprite]
	world   *World
}

func newGroup(ctx *Context, tex *assets.Texture, kind BodyKind) *Group {
	g := &Group{kind: kind, texture: tex, world: ctx.World}
	g.items = pool.New(func() *Sprite {
		s := newSprite(0, 0, g.texture)
		if g.kind != BodyNone {
			s.Body = newBody(s, g.kind == BodyStatic)
			g.world.add(s.Body)
		}
		s.group = g
		ctx.sprites = append(ctx.sprites, s)
		return s
	})
	return g
}

// Create adds a new member at (x, y).
func (g *Group) Create(x, y float64) *Sprite {
	return g.Get(x, y)
}

// Get revives a killed member at (x, y), allocating one when none is free.
// The member comes back active with its body resynced; visibility and body
// enablement are left to the caller.
func (g *Group) Get(x, y float64) *Sprite {
	slot, s, revived := g.items.Acquire()
	s.slot = slot
	s.X, s.Y = x, y
	s.active = true
	if revived {
		s.texture = g.texture
	}
	if s.Body != nil {
		s.Body.fromOwner(false)
		s.Body.VX, s.Body.VY = 0, 0
	}
	return s
}

// KillAndHide deactivates and hides a member and returns it to the pool.
// The body stays enabled until the world disables it.
func (g *Group) KillAndHide(s *Sprite) {
	if s.group != g {
		return
	}
	if g.items.Release(s.slot) {
		s.active = false
		s.visible = false
	}
}

// Children returns the active members in slot order.
func (g *Group) Children() []*Sprite {
	out := make([]*Sprite, 0, g.items.ActiveCount())
	g.items.Each(func(_ int, s *Sprite) {
		out = append(out, s)
	})
	return out
}

// CountActive returns the number of active members.
func (g *Group) CountActive() int { return g.items.ActiveCount() }

// Len returns the number of allocated members, dead or alive.
func (g *Group) Len() int { return g.items.Len() }

func (g *Group) members() []*Sprite { return g.Children() }
