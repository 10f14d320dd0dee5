package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/storage"
)

// stubGame finishes after a fixed number of steps.
type stubGame struct {
	steps      int
	finishAt   int
	resets     int
	difficulty string
}

func (g *stubGame) ID() string {
	return "aaa_stub"
}

func (g *stubGame) Title() string {
	return "Stub"
}

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) SetDifficulty(p string) {
	g.difficulty = p
}

func (g *stubGame) Summary() core.RunSummary {
	return core.RunSummary{Width: 3, Height: 2, Seed: 9, Ticks: g.steps}
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	over := g.finishAt > 0 && g.steps >= g.finishAt
	s := core.GameState{GameOver: over}
	if over {
		s.Score = 42
	}
	return s
}

func init() {
	registry.Register("aaa_stub", func() registry.Game { return &stubGame{} })
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func TestKeyMapperDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
		quit bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionForward}, false},
		{"wasd", keyRunes("a"), []core.Action{core.ActionLeft}, false},
		{"shift arrow", tea.KeyMsg{Type: tea.KeyShiftRight}, []core.Action{core.ActionRight, core.ActionRun}, false},
		{"uppercase", keyRunes("S"), []core.Action{core.ActionBackward, core.ActionRun}, false},
		{"pause", keyRunes("p"), []core.Action{core.ActionPause}, false},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}, true},
		{"unbound", keyRunes("z"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("actions = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("actions[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(keyRunes("d")); got != MenuActionRight {
		t.Errorf("d = %v, want right", got)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.gen = 3
	m.Init()

	next, cmd := m.Update(TickMsg{Gen: 2})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if g.steps != 0 {
		t.Errorf("steps = %d after stale tick, want 0", g.steps)
	}

	_, cmd = next.(Model).Update(TickMsg{Gen: 3})
	if cmd == nil {
		t.Error("current tick should schedule the next one")
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, want 1", g.steps)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{finishAt: 2}
	var model tea.Model = NewModel(g, store, testConfig())
	model.Init()
	for range 5 {
		model, _ = model.Update(TickMsg{})
	}

	runs, err := store.TopRuns("aaa_stub", 0, 0, 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Score != 42 || r.Width != 3 || r.Height != 2 || r.Seed != 9 || r.Ticks != 2 {
		t.Errorf("run = %+v", r)
	}
}

func TestModelRestartAfterFinish(t *testing.T) {
	g := &stubGame{finishAt: 1}
	var model tea.Model = NewModel(g, nil, testConfig())
	model.Init()
	model, _ = model.Update(TickMsg{})
	if !model.(Model).gameState.GameOver {
		t.Fatal("expected finished run")
	}

	model, _ = model.Update(keyRunes("r"))
	model, _ = model.Update(TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if model.(Model).gameState.GameOver {
		t.Error("restart should clear the finished state")
	}
}

func TestModelBackStandaloneQuits(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("esc outside a session should quit")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	if !strings.Contains(m.View(), "stub") {
		t.Error("view should contain the rendered game")
	}
}

func TestSessionFlow(t *testing.T) {
	var model tea.Model = NewSessionModel(nil, testConfig(), "alice")

	// Pick the hard difficulty, then the first mode
	model, _ = model.Update(keyRunes("d"))
	model, _ = model.Update(keyRunes("d"))
	model, _ = model.Update(keyRunes("d"))
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := model.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	if cmd == nil {
		t.Error("starting a game should start ticking")
	}
	stub, ok := s.game.game.(*stubGame)
	if !ok {
		t.Fatalf("game = %T, want *stubGame", s.game.game)
	}
	if stub.difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard", stub.difficulty)
	}

	// Esc leaves a finished game for the menu without quitting
	stub.finishAt = 1
	model, _ = model.Update(TickMsg{Gen: s.gen})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = model.(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Fatalf("screen = %v quitting = %v, want menu", s.screen, s.quitting)
	}
	if s.menu.Difficulty() != "hard" {
		t.Errorf("menu difficulty = %q, want hard kept", s.menu.Difficulty())
	}

	// A leftover tick is ignored by the menu
	model, cmd = model.Update(TickMsg{Gen: s.gen})
	if cmd != nil {
		t.Error("menu should ignore ticks")
	}

	// Tab opens best runs and esc comes back
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if model.(SessionModel).screen != screenScoreboard {
		t.Fatal("tab should open best runs")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = model.(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Error("esc on best runs should return to the menu")
	}
}

func TestFormatTicks(t *testing.T) {
	if got := formatTicks(60*75+30, 60); got != "1:15.5" {
		t.Errorf("formatTicks = %q, want 1:15.5", got)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	if got, want := RenderScreen(s), "ab \n   "; got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestRenderScreenColoredKeepsText(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColor(0, 0, "@", core.ColorBrightYellow)
	s.DrawText(1, 0, "xyz")
	if got := RenderScreen(s); !strings.Contains(got, "@") || !strings.HasSuffix(got, "xyz") {
		t.Errorf("RenderScreen = %q", got)
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if view := NewMenuModel(store, testConfig()).View(); strings.Contains(view, "Best score") {
		t.Error("no runs should mean no best score line")
	}

	for _, score := range []int{17, 42} {
		if _, err := store.SaveRun(storage.Run{GameID: "aaa_stub", Score: score}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}
	if view := NewMenuModel(store, testConfig()).View(); !strings.Contains(view, "Best score: 42") {
		t.Errorf("view should show the best score:\n%s", view)
	}
}
