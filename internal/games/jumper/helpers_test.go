package jumper

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/audio"
	"github.com/vovakirdan/carrot-jump/internal/config"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/engine"
)

const dt = 1.0 / 60.0

const jumpKey = core.ActionJump

type harness struct {
	m   *engine.Manager
	s   *session
	rec *audio.Recorder
}

func (h *harness) state() *State { return h.s.state }

func (h *harness) ctx() *engine.Context { return h.m.Context() }

func (h *harness) step(t *testing.T, actions ...core.Action) {
	t.Helper()
	require.NoError(t, h.m.Step(frame(actions...), dt))
}

func startScene(t *testing.T, cfg config.JumperConfig, seed int64) *harness {
	t.Helper()
	catalog, err := assets.Default()
	require.NoError(t, err)

	s := &session{cfg: cfg, rng: rand.New(rand.NewSource(seed)), carrots: cfg.Carrots.Enabled}
	m := engine.NewManager(catalog, cfg.World.Width, cfg.World.Height, cfg.World.Gravity)
	m.Register(&GameScene{s: s})
	m.Register(&GameOverScene{s: s})
	rec := &audio.Recorder{}
	m.SetAudio(rec)
	require.NoError(t, m.Start(SceneGame))
	return &harness{m: m, s: s, rec: rec}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func keyboard(actions ...core.Action) *engine.Keyboard {
	kb := engine.NewKeyboard()
	kb.Update(frame(actions...))
	return kb
}

// unreachableConfig puts every platform out of the bunny's reach.
func unreachableConfig() config.JumperConfig {
	cfg := config.DefaultJumperConfig()
	cfg.Platforms.MinX = 0
	cfg.Platforms.MaxX = 1
	cfg.Audio.Enabled = false
	return cfg
}
