package jumper

import (
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/engine"
)

// updatePlayer runs the bounce, pose and steering rules for one frame.
func updatePlayer(st *State, kb *engine.Keyboard) {
	p := st.Player
	touchingDown := p.Body.Touching.Down

	if touchingDown {
		p.SetVelocityY(st.cfg.Player.JumpVelocity)
		st.setPose(PoseAscending)
		st.play(SoundJump)
	}

	if p.Body.VY > 0 && st.Pose == PoseAscending {
		st.setPose(PoseDescending)
	}

	// Steering only works in the air; with no key the bunny keeps drifting.
	switch {
	case touchingDown:
		p.SetVelocityX(0)
	case kb.IsDown(core.ActionLeft):
		p.SetVelocityX(-st.cfg.Player.RunSpeed)
	case kb.IsDown(core.ActionRight):
		p.SetVelocityX(st.cfg.Player.RunSpeed)
	}

	horizontalWrap(st.Player, st.cfg.World.Width)
}

// horizontalWrap moves a sprite that left the world sideways to the other
// edge. Both edges sit half a sprite outside the world, and the shift is the
// distance between them, so wrapping out and back lands on the same x.
func horizontalWrap(s *engine.Sprite, gameWidth float64) {
	half := s.DisplayWidth() / 2
	span := gameWidth + 2*half
	if s.X < -half {
		s.X += span
	} else if s.X > gameWidth+half {
		s.X -= span
	}
}
