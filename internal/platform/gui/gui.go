// Package gui runs a game in a desktop window with Ebiten.
// Unlike a terminal, the window reports held keys, so movement keys are
// sent on every tick they are down.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/audio"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/engine"
	"github.com/vovakirdan/carrot-jump/internal/registry"
	"github.com/vovakirdan/carrot-jump/internal/storage"
)

// debugGlyphWidth is the advance of ebitenutil's debug font.
const debugGlyphWidth = 6

// ErrNoFrame is returned for games that cannot expose an engine frame.
var ErrNoFrame = errors.New("gui: game does not expose frames")

// Game is a registry game that can also hand out engine frames.
type Game interface {
	registry.Game
	engine.Viewer
}

// Options configure a window session.
type Options struct {
	Player    string
	SessionID string
	Audio     audio.Player
	Scale     float64 // window size relative to the world, default 1
}

var (
	held = map[core.Action][]ebiten.Key{
		core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		core.ActionJump:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	}
	pressed = map[core.Action][]ebiten.Key{
		core.ActionPause:   {ebiten.KeyP},
		core.ActionRestart: {ebiten.KeyR},
		core.ActionQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
	}
	pausedTint = color.RGBA{A: 0x80}
)

// App adapts a Game to ebiten.Game.
type App struct {
	game     Game
	runtime  core.RuntimeConfig
	recorder *storage.Recorder
	input    core.InputFrame
	state    core.GameState
	frame    engine.Frame
	err      error
}

// NewApp wraps game; store may be nil.
func NewApp(game Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) *App {
	if r, ok := game.(audio.Receiver); ok {
		r.SetAudio(opts.Audio)
	}
	return &App{
		game:     game,
		runtime:  runtime,
		recorder: storage.NewRecorder(store, game.ID(), opts.Player, opts.SessionID),
		input:    core.NewInputFrame(),
	}
}

func (a *App) poll() {
	a.input.Clear()
	for action, keys := range held {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				a.input.Set(action)
			}
		}
	}
	for action, keys := range pressed {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				a.input.Set(action)
			}
		}
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	a.poll()
	if a.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if a.input.Has(core.ActionRestart) && a.state.GameOver {
		a.runtime.Seed = time.Now().UnixNano()
		a.game.Reset(a.runtime)
		a.recorder.Reset()
		a.state = a.game.State()
		return nil
	}

	res := a.game.Step(a.input)
	if res.Err != nil {
		a.err = res.Err
		return res.Err
	}
	a.state = res.State

	if ok, err := a.recorder.Observe(a.state); err != nil {
		log.Error("cannot save score", "game", a.game.ID(), "err", err)
	} else if ok {
		log.Info("score saved", "game", a.game.ID(), "score", a.state.Score)
	}
	return nil
}

// Draw paints the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.frame = a.game.Frame()
	screen.Fill(color.Black)

	for _, sv := range a.frame.Sprites {
		drawSprite(screen, sv)
	}
	for _, tv := range a.frame.Texts {
		w := float64(utf8.RuneCountInString(tv.Content) * debugGlyphWidth)
		ebitenutil.DebugPrintAt(screen, tv.Content, int(tv.X-tv.OriginX*w), int(tv.Y))
	}

	if a.state.Paused {
		vector.DrawFilledRect(screen, 0, 0, float32(a.frame.Width), float32(a.frame.Height), pausedTint, false)
		msg := "PAUSED"
		x := (int(a.frame.Width) - len(msg)*debugGlyphWidth) / 2
		ebitenutil.DebugPrintAt(screen, msg, x, int(a.frame.Height)/2)
	}
}

// drawSprite fills one rectangle per non-blank art cell.
func drawSprite(dst *ebiten.Image, sv engine.SpriteView) {
	tex := sv.Texture
	clr := tex.RGBA()
	b := sv.Box
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY

	rows, cols := artSize(tex)
	if rows == 0 {
		vector.DrawFilledRect(dst, float32(b.MinX), float32(b.MinY), float32(w), float32(h), clr, false)
		return
	}

	cw, ch := w/float64(cols), h/float64(rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if tex.Glyph((float64(c)+0.5)/float64(cols), (float64(r)+0.5)/float64(rows)) == ' ' {
				continue
			}
			x := b.MinX + float64(c)*cw
			y := b.MinY + float64(r)*ch
			vector.DrawFilledRect(dst, float32(x), float32(y), float32(cw), float32(ch), clr, false)
		}
	}
}

func artSize(t *assets.Texture) (rows, cols int) {
	for _, line := range t.Art {
		cols = max(cols, utf8.RuneCountInString(line))
	}
	if cols == 0 {
		return 0, 0
	}
	return len(t.Art), cols
}

// Layout keeps the world resolution; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	f := a.frame
	if f.Width == 0 {
		f = a.game.Frame()
	}
	return int(f.Width), int(f.Height)
}

// Err returns the error that stopped the game, if any.
func (a *App) Err() error { return a.err }

// Run opens a window and plays game until it is closed or Q is pressed.
func Run(game registry.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) error {
	g, ok := game.(Game)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoFrame, game.ID())
	}

	game.Reset(runtime)
	app := NewApp(g, store, runtime, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
