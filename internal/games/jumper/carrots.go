package jumper

import "github.com/vovakirdan/carrot-jump/internal/engine"

// addCarrotAbove revives or creates a carrot one platform-width above p.
func addCarrotAbove(st *State, p *engine.Sprite) *engine.Sprite {
	c := st.Carrots.Get(p.X, p.Y-p.DisplayWidth())
	c.SetScale(st.cfg.Carrots.Scale)
	c.SetActive(true)
	c.SetVisible(true)
	c.Body.SetSize(c.DisplayWidth(), c.DisplayHeight())
	st.world.Enable(c)
	return c
}

// collectCarrot hides the carrot and scores it. Carrots already collected
// are ignored, so a carrot scores at most once.
func collectCarrot(st *State, c *engine.Sprite) bool {
	if !c.Active() {
		return false
	}
	st.Carrots.KillAndHide(c)
	st.world.Disable(c)

	st.Collected++
	st.ScoreText.SetText(scoreLabel(st.Collected))
	st.play(SoundCarrot)
	return true
}

// cullCarrots returns carrots below the recycle line to the pool unscored.
func cullCarrots(st *State, scrollY float64) int {
	line := scrollY + st.cfg.Platforms.RecycleThreshold
	n := 0
	for _, c := range st.Carrots.Children() {
		if c.Y < line {
			continue
		}
		st.Carrots.KillAndHide(c)
		st.world.Disable(c)
		n++
	}
	return n
}
