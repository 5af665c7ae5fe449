package jumper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/config"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/engine"
)

// session is shared by both scenes for the lifetime of a Game.
// The rng runs across restarts so one seed replays a whole session.
type session struct {
	cfg     config.JumperConfig
	rng     *rand.Rand
	carrots bool
	state   *State
	runs    int
}

// GameScene is the playing scene.
type GameScene struct {
	s *session
}

// Key returns the scene key.
func (*GameScene) Key() string { return SceneGame }

// Init resets the score for a fresh run.
func (g *GameScene) Init(ctx *engine.Context) {
	g.s.state = &State{
		cfg:   g.s.cfg,
		rng:   g.s.rng,
		world: ctx.World,
		play:  ctx.PlaySound,
	}
}

// LoadAssets registers textures and sound cues.
func (g *GameScene) LoadAssets(ctx *engine.Context) error {
	for _, key := range []string{TextureBackground, TexturePlatform, TextureStand, TextureJump, TextureCarrot} {
		if err := ctx.LoadTexture(key); err != nil {
			return err
		}
	}
	for _, key := range []string{SoundJump, SoundCarrot} {
		if err := ctx.LoadSound(key); err != nil {
			return err
		}
	}
	return nil
}

// Start builds the world: background, platforms, bunny, carrots, camera, HUD.
func (g *GameScene) Start(ctx *engine.Context) error {
	st := g.s.state
	cfg := g.s.cfg

	bg, err := ctx.AddImage(cfg.World.Width/2, cfg.World.Height/2, TextureBackground)
	if err != nil {
		return err
	}
	bg.SetScrollFactor(1, 0)

	if err := makePlatforms(ctx, st); err != nil {
		return err
	}

	st.textures = make(map[Pose]*assets.Texture, 3)
	for _, p := range []Pose{PoseIdle, PoseAscending, PoseDescending} {
		tex, err := ctx.Texture(p.TextureKey())
		if err != nil {
			return err
		}
		st.textures[p] = tex
	}

	player, err := ctx.AddSprite(cfg.Player.SpawnX, cfg.Player.SpawnY, TextureStand)
	if err != nil {
		return err
	}
	player.SetScale(cfg.Player.Scale)
	player.Body.CheckCollision.Up = false
	player.Body.CheckCollision.Left = false
	player.Body.CheckCollision.Right = false
	st.Player = player
	st.Pose = PoseIdle

	ctx.World.AddCollider(st.Platforms, player)

	if g.s.carrots {
		carrots, err := ctx.AddGroup(TextureCarrot, engine.BodyDynamic)
		if err != nil {
			return err
		}
		st.Carrots = carrots
		ctx.World.AddCollider(carrots, st.Platforms)
		ctx.World.AddOverlap(player, carrots, func(_, c *engine.Sprite) {
			collectCarrot(st, c)
		})
	}

	ctx.Camera.StartFollow(player)
	ctx.Camera.SetDeadzone(cfg.World.Width*cfg.Camera.DeadzoneFactor, 0)

	st.ScoreText = ctx.AddText(cfg.World.Width/2, 10, scoreLabel(0), scoreStyle).SetOrigin(0.5)
	g.s.runs++
	return nil
}

// Update runs the player, then recycling, then the fall check.
func (g *GameScene) Update(ctx *engine.Context) {
	st := g.s.state
	scrollY := ctx.Camera.ScrollY

	updatePlayer(st, ctx.Input)
	recyclePlatforms(st, scrollY)
	if st.Carrots != nil && g.s.cfg.Carrots.CullOffscreen {
		cullCarrots(st, scrollY)
	}

	if fellOff(st) {
		ctx.StartScene(SceneGameOver)
	}
}

// GameOverScene shows the final score and waits for SPACE.
type GameOverScene struct {
	s *session
}

// Key returns the scene key.
func (*GameOverScene) Key() string { return SceneGameOver }

// Init does nothing.
func (*GameOverScene) Init(*engine.Context) {}

// LoadAssets does nothing; the scene is text only.
func (*GameOverScene) LoadAssets(*engine.Context) error { return nil }

// Start shows the result and arms the restart key.
func (g *GameOverScene) Start(ctx *engine.Context) error {
	w, h := ctx.Width, ctx.Height
	white := engine.TextStyle{Color: core.ColorBrightWhite, RGB: colorWhite}

	ctx.AddText(w/2, h/2, "Game Over", white).SetOrigin(0.5)
	collected := 0
	if g.s.state != nil {
		collected = g.s.state.Collected
	}
	ctx.AddText(w/2, h/2+40, fmt.Sprintf("Carrots collected: %d", collected), scoreStyle).SetOrigin(0.5)
	ctx.AddText(w/2, h/2+120, "Press SPACE to play again", white).SetOrigin(0.5)

	ctx.Input.Once(core.ActionJump, func() {
		ctx.StartScene(SceneGame)
	})
	return nil
}

// Update does nothing; the restart listener drives the transition.
func (*GameOverScene) Update(*engine.Context) {}
