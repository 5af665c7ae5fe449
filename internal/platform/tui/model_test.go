package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-jump/internal/audio"
	"github.com/vovakirdan/carrot-jump/internal/core"
	"github.com/vovakirdan/carrot-jump/internal/storage"
)

// scriptedGame replays a fixed sequence of states, one per Step.
type scriptedGame struct {
	states []core.GameState
	err    error
	step   int
	resets int
	inputs []core.InputFrame
	player audio.Player
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++; g.step = 0 }
func (g *scriptedGame) SetAudio(p audio.Player)  { g.player = p }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "bunny") }

func (g *scriptedGame) State() core.GameState {
	if g.step == 0 {
		return core.GameState{}
	}
	return g.states[min(g.step, len(g.states))-1]
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if g.step < len(g.states) {
		g.step++
	}
	return core.StepResult{State: g.State(), Err: g.err}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(g *scriptedGame, store *storage.Store) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	m := NewModel(g, store, cfg, Options{Player: "ann", SessionID: "s-1"})
	m.Init()
	return m
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelInjectsAudio(t *testing.T) {
	g := &scriptedGame{}
	newTestModel(g, nil)
	if g.player != nil {
		t.Errorf("nil Options.Audio should be passed through, got %T", g.player)
	}
	if g.resets != 1 {
		t.Errorf("Init should reset the game once, got %d", g.resets)
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{states: []core.GameState{
		{Score: 1},
		{Score: 2, GameOver: true},
		{Score: 2, GameOver: true},
		{Score: 0},
		{Score: 3, GameOver: true},
	}}
	m := newTestModel(g, store)

	for range g.states {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2 (one per game over)", len(scores))
	}
	if scores[0].Score != 3 || scores[1].Score != 2 {
		t.Errorf("saved scores = %v, want 3 and 2", scores)
	}
	if scores[0].Player != "ann" || scores[0].SessionID != "s-1" {
		t.Errorf("score owner = %q/%q, want ann/s-1", scores[0].Player, scores[0].SessionID)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{states: []core.GameState{{GameOver: true}}}
	m := newTestModel(g, store)
	tick(t, m)

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 0 {
		t.Errorf("a zero score should not be stored, got %v", scores)
	}
}

func TestModelPassesKeysForOneTick(t *testing.T) {
	g := &scriptedGame{states: []core.GameState{{}, {}}}
	m := newTestModel(g, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	tick(t, m)

	if len(g.inputs) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first tick should carry Left")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("input must be cleared after the tick")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &scriptedGame{states: []core.GameState{{}, {GameOver: true}}}
	m := newTestModel(g, nil)

	m = tick(t, m)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Esc during play must not leave the game")
	}

	m = tick(t, m)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("Esc on game over should return to the menu")
	}

	m, cmd = press(t, newTestModel(&scriptedGame{}, nil), runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelRestartResetsGame(t *testing.T) {
	g := &scriptedGame{states: []core.GameState{{Score: 1, GameOver: true}}}
	m := newTestModel(g, nil)
	m = tick(t, m)

	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m)

	if g.resets != 2 {
		t.Errorf("R on game over should reset the game, resets = %d", g.resets)
	}
	if m.State().GameOver {
		t.Error("state after restart should not be game over")
	}
}

func TestModelStopsOnGameError(t *testing.T) {
	boom := errors.New("scene failed")
	g := &scriptedGame{states: []core.GameState{{}}, err: boom}
	m := tick(t, newTestModel(g, nil))

	if !m.IsQuitting() {
		t.Error("a step error should stop the program")
	}
	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err() = %v, want %v", m.Err(), boom)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{states: []core.GameState{{Score: 1}}}
	m := tick(t, newTestModel(g, nil))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resize must not reset the game, resets = %d", g.resets)
	}
	if !strings.Contains(m.View(), "bunny") {
		t.Error("View should render the game")
	}
}

func TestRenderScreenColours(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColor(0, 0, 'a', core.ColorGreen)
	s.SetColor(1, 0, 'b', core.ColorGreen)
	s.Set(2, 0, 'c')

	out := RenderScreen(s)
	if !strings.Contains(out, "c") || !strings.Contains(out, "ab") {
		t.Errorf("RenderScreen() = %q, want runs ab and c", out)
	}
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colour %d has no style", c)
		}
	}
}

func TestModelCopiesScreen(t *testing.T) {
	g := &scriptedGame{states: []core.GameState{{}}}
	var copied []string
	cfg := core.RuntimeConfig{ScreenW: 10, ScreenH: 2, TickRate: 60, Seed: 1}
	m := NewModel(g, nil, cfg, Options{CopyText: func(s string) error {
		copied = append(copied, s)
		return nil
	}})
	m.Init()

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd != nil {
		t.Error("copying should not quit or tick")
	}
	if len(copied) != 1 || !strings.HasPrefix(copied[0], "bunny") {
		t.Fatalf("copied = %q, want the rendered screen", copied)
	}
	if len(g.inputs) != 0 {
		t.Error("copying must not step the game")
	}

	// Without a copier the key is ignored.
	m = newTestModel(g, nil)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if len(copied) != 1 {
		t.Error("nil CopyText should not copy")
	}
}
