// Package tui runs games in a terminal with Bubble Tea: it paces ticks, maps
// keys to actions, renders screens and records finished runs.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carrot-jump/internal/audio"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/registry"
	"github.com/vovakirdan/carrot-jump/internal/storage"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options identify who is playing and how the game sounds.
type Options struct {
	Player    string       // stored with each score
	SessionID string       // groups the runs of one sitting
	Audio     audio.Player // nil means silent

	// CopyText receives the screen on ctrl+y. nil disables copying, as over SSH.
	CopyText func(text string) error
}

// Model is the Bubble Tea model for one running game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	recorder   *storage.Recorder
	err        error
}

// NewModel creates a model for game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if r, ok := game.(audio.Receiver); ok {
		r.SetAudio(opts.Audio)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		recorder:   storage.NewRecorder(store, game.ID(), opts.Player, opts.SessionID),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game rasterises to any size, so a resize keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyScreen()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorder.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	if result.Err != nil {
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}
	m.gameState = result.State

	// SPACE on the game-over screen starts a new run inside the game, so
	// the recorder re-arms whenever the state leaves game over.
	if ok, err := m.recorder.Observe(m.gameState); err != nil {
		log.Error("cannot save score", "game", m.game.ID(), "score", m.gameState.Score, "err", err)
	} else if ok {
		log.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "player", m.opts.Player)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text under the XDG state dir.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	name := fmt.Sprintf("carrot-jump/screenshots/%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.StateFile(name)
	if err != nil {
		log.Warn("cannot create screenshot directory", "err", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	log.Info("screenshot saved", "path", path)
}

// copyScreen hands the current screen as plain text to CopyText.
func (m *Model) copyScreen() {
	if m.opts.CopyText == nil {
		return
	}
	m.game.Render(m.screen)
	if err := m.opts.CopyText(m.screen.String()); err != nil {
		log.Warn("cannot copy screen", "err", err)
		return
	}
	log.Info("screen copied to clipboard", "game", m.game.ID())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Err returns the error that stopped the game, if any.
func (m Model) Err() error { return m.err }

// State returns the last state reported by the game.
func (m Model) State() core.GameState { return m.gameState }

// Run plays game in the alternate screen until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, store, cfg, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("tui: %s stopped: %w", game.ID(), fm.Err())
	}
	return nil
}
