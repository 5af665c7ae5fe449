package jumper

import "math"

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	Scene     string
	Runs      int
	Score     int
	Pose      int
	PlayerX   float64
	PlayerY   float64
	PlayerVX  float64
	PlayerVY  float64
	ScrollY   float64
	Platforms []float64 // x, y pairs in pool order
	Carrots   []float64 // x, y pairs of active carrots
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.ticks, Scene: g.Scene()}
	if g.session == nil || g.session.state == nil {
		return snap
	}
	snap.Runs = g.session.runs

	st := g.session.state
	snap.Score = st.Collected
	snap.Pose = int(st.Pose)
	if st.Player != nil {
		snap.PlayerX, snap.PlayerY = st.Player.X, st.Player.Y
		snap.PlayerVX, snap.PlayerVY = st.Player.Body.VX, st.Player.Body.VY
	}
	if g.manager != nil && g.Scene() == SceneGame {
		snap.ScrollY = g.manager.Context().Camera.ScrollY
	}
	if st.Platforms != nil {
		for _, p := range st.Platforms.Children() {
			snap.Platforms = append(snap.Platforms, p.X, p.Y)
		}
	}
	if st.Carrots != nil {
		for _, c := range st.Carrots.Children() {
			snap.Carrots = append(snap.Carrots, c.X, c.Y)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Scene {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Runs)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pose)  //#nosec G115 -- hash computation

	for _, v := range []float64{snap.PlayerX, snap.PlayerY, snap.PlayerVX, snap.PlayerVY, snap.ScrollY} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Platforms {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Carrots {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
