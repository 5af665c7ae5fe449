package jumper

import (
	"math/rand"

	"github.com/vovakirdan/carrot-jump/internal/engine"
)

// randomBetween returns an integer in [lo, hi).
func randomBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// makePlatforms lays out the platform pool top to bottom.
func makePlatforms(ctx *engine.Context, st *State) error {
	g, err := ctx.AddGroup(TexturePlatform, engine.BodyStatic)
	if err != nil {
		return err
	}
	pc := st.cfg.Platforms
	for i := 0; i < pc.Count; i++ {
		x := randomBetween(st.rng, pc.MinX, pc.MaxX)
		p := g.Create(float64(x), pc.Spacing*float64(i))
		p.SetScale(pc.Scale)
		p.SyncBody()
	}
	st.Platforms = g
	return nil
}

// recyclePlatforms moves every platform that fell below the recycle line to
// just above the camera and spawns a carrot on it. It returns the recycled
// platforms. Each platform is visited once, so none recycles twice a frame.
func recyclePlatforms(st *State, scrollY float64) []*engine.Sprite {
	pc := st.cfg.Platforms
	var recycled []*engine.Sprite
	for _, p := range st.Platforms.Children() {
		if p.Y < scrollY+pc.RecycleThreshold {
			continue
		}
		p.Y = scrollY - float64(randomBetween(st.rng, pc.MarginMin, pc.MarginMax))
		p.SyncBody()
		if st.Carrots != nil {
			addCarrotAbove(st, p)
		}
		recycled = append(recycled, p)
	}
	return recycled
}

// bottomMostPlatform returns the platform with the largest y. The first one
// wins ties. It returns nil for an empty slice.
func bottomMostPlatform(platforms []*engine.Sprite) *engine.Sprite {
	if len(platforms) == 0 {
		return nil
	}
	bottom := platforms[0]
	for _, p := range platforms[1:] {
		if p.Y > bottom.Y {
			bottom = p
		}
	}
	return bottom
}

// fellOff reports whether the player dropped past the lowest platform.
func fellOff(st *State) bool {
	bottom := bottomMostPlatform(st.Platforms.Children())
	if bottom == nil {
		return false
	}
	return st.Player.Y > bottom.Y+st.cfg.GameOver.FallMargin
}
