package maze

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/world"
)

func corridorConfig() config.MazeConfig {
	cfg := config.DefaultMazeConfig()
	cfg.Grid.Width = 2
	cfg.Grid.Height = 1
	cfg.Difficulty.Enabled = false
	return cfg
}

func newCorridor(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, corridorConfig())
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Grid.Width, cfg.Grid.Height = 6, 6
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	g1, g2 := New(), New()
	g1.ResetWith(rc, cfg)
	g2.ResetWith(rc, cfg)

	script := []core.Action{core.ActionRight, core.ActionBackward, core.ActionLeft, core.ActionForward}
	for i := 0; i < 400; i++ {
		in := press(script[(i/50)%len(script)])
		if i%7 == 0 {
			in.Set(core.ActionRun)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	if g1.Maze().String() != g2.Maze().String() {
		t.Error("Mazes differ for the same seed")
	}
}

func TestWallBlocksPlayer(t *testing.T) {
	g := newCorridor(t)

	for i := 0; i < 120; i++ {
		g.Step(press(core.ActionForward))
	}

	snap := g.Snapshot()
	want := -g.cfg.Grid.Scale/2 + world.WallThickness/2 + g.cfg.Player.Radius
	if math.Abs(snap.PosZ-want) > 1e-6 {
		t.Errorf("PosZ = %v, want %v (stopped by north wall)", snap.PosZ, want)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s, want playing", snap.State)
	}
}

func TestReachExit(t *testing.T) {
	g := newCorridor(t)

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(press(core.ActionRight))
	}

	state := g.State()
	if !state.GameOver {
		t.Fatalf("Exit not reached, pos %+v", g.Snapshot())
	}
	// 2 cells * 100 points, under a second elapsed.
	if state.Score != 200 {
		t.Errorf("Score = %d, want 200", state.Score)
	}
	if g.Snapshot().Visited != 2 {
		t.Errorf("Visited = %d, want 2", g.Snapshot().Visited)
	}

	// Finished runs ignore input.
	tick := g.Snapshot().Tick
	g.Step(press(core.ActionLeft))
	if g.Snapshot().Tick != tick {
		t.Error("Game advanced after escaping")
	}
}

func TestScorePenalty(t *testing.T) {
	g := newCorridor(t)
	g.ticks = 60 * 25
	if got := g.computeScore(); got != 1 {
		t.Errorf("computeScore() = %d, want floor of 1", got)
	}
	g.ticks = 60 * 5
	if got := g.computeScore(); got != 150 {
		t.Errorf("computeScore() = %d, want 150", got)
	}
}

func TestRunIsFaster(t *testing.T) {
	walk, run := newCorridor(t), newCorridor(t)
	for i := 0; i < 10; i++ {
		walk.Step(press(core.ActionRight))
		run.Step(press(core.ActionRight, core.ActionRun))
	}
	if math.Abs(walk.Snapshot().PosX-10*8.0/60) > 1e-6 {
		t.Errorf("walk PosX = %v", walk.Snapshot().PosX)
	}
	if math.Abs(run.Snapshot().PosX-10*16.0/60) > 1e-6 {
		t.Errorf("run PosX = %v", run.Snapshot().PosX)
	}
}

func TestMoveHoldsBetweenKeyPresses(t *testing.T) {
	g := newCorridor(t)
	g.Step(press(core.ActionRight))
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	want := float64(g.cfg.Player.HoldTicks) * 8.0 / 60
	if math.Abs(g.Snapshot().PosX-want) > 1e-6 {
		t.Errorf("PosX = %v, want %v", g.Snapshot().PosX, want)
	}
}

func TestPause(t *testing.T) {
	g := newCorridor(t)
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected paused")
	}
	g.Step(press(core.ActionRight))
	if g.Snapshot().PosX != 0 || g.Snapshot().State != StatePaused {
		t.Errorf("Moved while paused: %+v", g.Snapshot())
	}
	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("Expected unpaused")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1}, corridorConfig())
	g.Step(press(core.ActionRight))
	if snap := g.Snapshot(); snap.State != StatePausedSmall || snap.PosX != 0 {
		t.Errorf("Snapshot = %+v", snap)
	}
}

func TestResizeKeepsMaze(t *testing.T) {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1}, corridorConfig())
	before := g.Maze()

	g.Resize(40, 12)
	if g.Maze() != before {
		t.Error("Resize should keep the maze")
	}
	if snap := g.Snapshot(); snap.State != StatePlaying {
		t.Errorf("State = %q after resize, want playing", snap.State)
	}
}

func TestRenderTopDown(t *testing.T) {
	g := newCorridor(t)
	dst := core.NewScreen(40, 12)
	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Maze 2x1") {
		t.Errorf("HUD = %q", dst.Row(0))
	}
	if dst.Get(20, 7) != glyphPlayer {
		t.Errorf("player glyph = %q", dst.Get(20, 7))
	}
	if dst.Get(20, 6) != '█' {
		t.Errorf("north wall glyph = %q\n%s", dst.Get(20, 6), dst.String())
	}
	if dst.Get(24, 7) != glyphExit {
		t.Errorf("exit glyph = %q\n%s", dst.Get(24, 7), dst.String())
	}
}

func TestRenderDarkHidesFarWalls(t *testing.T) {
	cfg := corridorConfig()
	cfg.Lighting.Dark = true
	cfg.Lighting.FlashlightRadius = 2

	g := NewDark()
	g.ResetWith(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, cfg)
	dst := core.NewScreen(40, 12)
	g.Render(dst)
	if dst.Get(20, 6) == '█' {
		t.Error("wall outside flashlight radius was drawn")
	}
	if dst.Get(24, 7) == glyphExit {
		t.Error("exit outside flashlight radius was drawn")
	}

	cfg.Lighting.FlashlightRadius = 10
	g.ResetWith(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, cfg)
	g.Render(dst)
	if dst.Get(20, 6) != '█' {
		t.Errorf("wall inside flashlight radius = %q", dst.Get(20, 6))
	}
}

func TestRenderEscapedOverlay(t *testing.T) {
	g := newCorridor(t)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(press(core.ActionRight))
	}
	dst := core.NewScreen(40, 12)
	g.Render(dst)
	if !strings.Contains(dst.String(), "You escaped!") {
		t.Errorf("missing overlay:\n%s", dst.String())
	}
}

func TestSummary(t *testing.T) {
	g := newCorridor(t)
	g.Step(press(core.ActionRight))
	s := g.Summary()
	if s.Width != 2 || s.Height != 1 || s.Seed != 1 || s.Ticks != 1 {
		t.Errorf("Summary = %+v", s)
	}
	var _ registry.Recorder = g
}

func TestConfigSeedOverridesRuntime(t *testing.T) {
	cfg := corridorConfig()
	cfg.Grid.Seed = 77
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 5}, cfg)
	if g.Snapshot().Seed != 77 {
		t.Errorf("Seed = %d, want 77", g.Snapshot().Seed)
	}
}

func TestResetLoadsConfigAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 3\n  height: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	rc := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 3}
	g := NewDark()
	g.Reset(rc)
	if snap := g.Snapshot(); snap.Width != 3 || snap.Height != 4 {
		t.Errorf("size = %dx%d, want 3x4", snap.Width, snap.Height)
	}
	if !g.cfg.Lighting.Dark {
		t.Error("dark mode not applied")
	}

	SetDifficultyPreset("hard")
	g.Reset(rc)
	if snap := g.Snapshot(); snap.Width != 18 || snap.Height != 18 {
		t.Errorf("size = %dx%d, want 18x18", snap.Width, snap.Height)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"maze", "maze_dark"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestPerGamePresetWins(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.SetDifficulty("easy")
	cfg := g.loadConfig()
	if cfg.Grid.Width != 6 || cfg.Grid.Height != 6 {
		t.Errorf("size = %dx%d, want 6x6", cfg.Grid.Width, cfg.Grid.Height)
	}
	var _ registry.Tunable = g
}
