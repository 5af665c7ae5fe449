package jumper

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/audio"
	"github.com/vovakirdan/carrot-jump/internal/config"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/engine"
	"github.com/vovakirdan/carrot-jump/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("jumper", func() registry.Game { return New() })
	registry.Register("jumper-classic", func() registry.Game { return NewClassic() })
}

// Game adapts the scene manager to the arcade Game interface.
type Game struct {
	id      string
	title   string
	carrots bool

	runtime core.RuntimeConfig
	cfg     *config.JumperConfig // overrides configPath when set
	session *session
	manager *engine.Manager
	audio   audio.Player
	paused  bool
	ticks   uint64
	err     error
}

// New creates the full game with carrots.
func New() *Game {
	return &Game{id: "jumper", title: "Bunny Jump", carrots: true, audio: audio.Silent{}}
}

// NewClassic creates the game without collectibles.
func NewClassic() *Game {
	return &Game{id: "jumper-classic", title: "Bunny Jump (Classic)", audio: audio.Silent{}}
}

// NewWithConfig creates the full game with an explicit configuration.
func NewWithConfig(cfg config.JumperConfig) *Game {
	g := New()
	g.cfg = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// SetAudio sets the sound output. It applies to the running and future sessions.
func (g *Game) SetAudio(p audio.Player) {
	if p == nil {
		p = audio.Silent{}
	}
	g.audio = p
	if g.manager != nil {
		g.manager.SetAudio(p)
	}
}

// Reset starts a new session: fresh rng, fresh scenes, score 0.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.ticks = 0
	g.err = nil
	g.session = nil
	g.manager = nil

	cfg := g.loadConfig()
	if !g.carrots {
		cfg.Carrots.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		log.Error("rejecting config", "game", g.id, "err", err)
		g.err = fmt.Errorf("jumper: %w", err)
		return
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	catalog, err := assets.Default()
	if err != nil {
		g.err = err
		return
	}

	g.session = &session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		carrots: cfg.Carrots.Enabled,
	}

	m := engine.NewManager(catalog, cfg.World.Width, cfg.World.Height, cfg.World.Gravity)
	m.Register(&GameScene{s: g.session})
	m.Register(&GameOverScene{s: g.session})
	m.SetAudio(g.audio)
	g.manager = m

	if err := m.Start(SceneGame); err != nil {
		log.Error("cannot start game scene", "game", g.id, "err", err)
		g.err = err
	}
}

func (g *Game) loadConfig() config.JumperConfig {
	if g.cfg != nil {
		return *g.cfg
	}
	cfg, _, err := config.LoadJumper(configPath)
	if err != nil {
		log.Warn("using default config", "path", configPath, "err", err)
		return config.DefaultJumperConfig()
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.manager == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionPause) && !g.gameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	if err := g.manager.Step(in, g.runtime.DeltaTime()); err != nil {
		log.Error("scene transition failed", "game", g.id, "err", err)
		g.err = err
	}
	return core.StepResult{State: g.State(), Err: g.err}
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.manager == nil {
		return
	}
	vp := engine.Rasterize(g.manager.Frame(), dst)
	if g.paused {
		dst.DrawTextCentered(vp.OffsetY+vp.Rows/2, "PAUSED", core.ColorBrightWhite)
	}
}

// Frame exposes the camera view to pixel frontends.
func (g *Game) Frame() engine.Frame {
	if g.manager == nil {
		return engine.Frame{}
	}
	return g.manager.Frame()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver(),
		Paused:   g.paused,
	}
	if g.session != nil && g.session.state != nil {
		st.Score = g.session.state.Collected
	}
	return st
}

// Scene returns the key of the running scene.
func (g *Game) Scene() string {
	if g.manager == nil {
		return ""
	}
	return g.manager.ActiveKey()
}

func (g *Game) gameOver() bool {
	return g.manager != nil && g.manager.ActiveKey() == SceneGameOver
}

var (
	_ registry.Game  = (*Game)(nil)
	_ engine.Viewer  = (*Game)(nil)
	_ audio.Receiver = (*Game)(nil)
)
