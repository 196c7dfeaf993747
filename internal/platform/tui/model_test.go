package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// scriptedGame finishes a run on a chosen tick and records its inputs.
type scriptedGame struct {
	ticks    int
	finishAt int
	result   core.RunResult
	inputs   []core.InputFrame
	resets   int
	playing  bool
	status   string
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++; g.status = "" }
func (g *scriptedGame) State() core.GameState { return core.GameState{Playing: g.playing} }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted "+g.status) }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.inputs = append(g.inputs, in)
	res := core.StepResult{State: g.State()}
	if g.ticks == g.finishAt {
		r := g.result
		res.Finished = &r
		g.status = "DEAD!!!"
	}
	return res
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{finishAt: 2, result: core.RunResult{Steps: 7, Success: true}}
	m := NewGameModel(game, store, nil, testConfig())

	m = update(t, m, TickMsg{})
	if m.LastRun() != nil {
		t.Fatal("run finished too early")
	}
	m = update(t, m, TickMsg{})
	if m.LastRun() == nil || m.LastRun().Steps != 7 {
		t.Fatalf("LastRun() = %v", m.LastRun())
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Steps != 7 || !runs[0].Success {
		t.Errorf("stored runs = %+v", runs)
	}
}

func TestGameModelInputReachesNextTick(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, nil, nil, testConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.inputs))
	}
	first := game.inputs[0]
	if !first.Has(core.ActionStart) || !first.Has(core.ActionSecondary) {
		t.Error("first tick missing queued actions")
	}
	if game.inputs[1].Has(core.ActionStart) {
		t.Error("input frame not cleared between ticks")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&scriptedGame{}, nil, nil, testConfig())

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !next.(GameModel).IsQuitting() {
		t.Error("model not quitting")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelBackOnlyBetweenRuns(t *testing.T) {
	game := &scriptedGame{playing: true}
	m := NewGameModel(game, nil, nil, testConfig())
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back accepted during a run")
	}

	game.playing = false
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back ignored between runs")
	}
}

func TestGameModelViewIncludesHelp(t *testing.T) {
	m := NewGameModel(&scriptedGame{}, nil, nil, testConfig())

	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Error("game frame missing from view")
	}
	if !strings.Contains(view, "jump 1") {
		t.Error("help bar missing from view")
	}
	if m.screen.Height() != testConfig().ScreenH-helpHeight {
		t.Errorf("screen height = %d, want %d", m.screen.Height(), testConfig().ScreenH-helpHeight)
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{finishAt: 1}
	m := NewGameModel(game, nil, nil, testConfig())
	resets := game.resets

	m = update(t, m, TickMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if game.resets != resets {
		t.Errorf("resets = %d, want %d", game.resets, resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.help.Width != 60 {
		t.Errorf("help width = %d, want 60", m.help.Width)
	}
	if view := m.View(); !strings.Contains(view, "DEAD!!!") {
		t.Errorf("status lost after resize:\n%s", view)
	}

	game.playing = true
	m = update(t, m, TickMsg{})
	update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if game.resets != resets {
		t.Error("resize reset a game in progress")
	}
}
