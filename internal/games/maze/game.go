// Package maze implements the walkable maze game on top of the maze
// generator and the world scene.
package maze

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/core"
	mazegen "github.com/vovakirdan/mazewalk/internal/maze"
	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/world"
)

// Mode selects how much of the maze the player can see.
type Mode int

const (
	ModeLit  Mode = iota // Every wall visible
	ModeDark             // Only what the flashlight reaches
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// logger receives generation events; nil keeps the generator quiet.
var logger *log.Logger

// SetLogger sets the logger passed to the maze generator.
func SetLogger(l *log.Logger) {
	logger = l
}

// Minimum screen size for the top-down view.
const (
	minScreenW = 20
	minScreenH = 8
	hudHeight  = 2
)

// Game implements the maze walk.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset // Overrides the package-level preset

	runtime    core.RuntimeConfig
	cfg        config.MazeConfig
	difficulty *config.DifficultyManager

	maze   *mazegen.Maze
	layout mazegen.Layout
	scene  *world.Scene
	seed   int64

	// Player state
	pos     core.Vec3
	heading core.Vec3
	hold    int // Ticks left on the last move command
	running bool
	visited mapset.Set[mazegen.Cell]
	exit    mazegen.Cell

	ticks    int
	score    int
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a lit maze game.
func New() *Game {
	return &Game{mode: ModeLit}
}

// NewDark creates a maze game lit only by the player's flashlight.
func NewDark() *Game {
	return &Game{mode: ModeDark}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
	registry.Register("maze_dark", func() registry.Game {
		return NewDark()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDark {
		return "maze_dark"
	}
	return "maze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDark {
		return "Maze (Dark)"
	}
	return "Maze"
}

// SetDifficulty sets the preset for this game only.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// loadConfig resolves the game config: file, environment, preset, mode.
// Anything unusable falls back to the defaults.
func (g *Game) loadConfig() config.MazeConfig {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		cfg = config.DefaultMazeConfig()
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		cfg = config.DefaultMazeConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyMazePreset(&cfg, preset)
	}
	if g.mode == ModeDark {
		cfg.Lighting.Dark = true
	}
	if err := cfg.Validate(); err != nil {
		cfg = config.DefaultMazeConfig()
		cfg.Lighting.Dark = g.mode == ModeDark
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWith(runtime, g.loadConfig())
}

// ResetWith restarts the game with an explicit config instead of loading one.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.MazeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.seed = cfg.Grid.Seed
	if g.seed == 0 {
		g.seed = g.runtime.Seed
	}

	opts := []mazegen.Option{mazegen.WithSeed(g.seed), mazegen.WithLogger(logger)}
	m, err := mazegen.Generate(cfg.Grid.Width, cfg.Grid.Height, opts...)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to default grid", "width", cfg.Grid.Width, "height", cfg.Grid.Height, "error", err)
		}
		def := config.DefaultMazeConfig()
		g.cfg.Grid = def.Grid
		m, _ = mazegen.Generate(def.Grid.Width, def.Grid.Height, opts...)
	}
	g.maze = m
	g.layout = mazegen.NewLayout(g.cfg.Grid.Scale)
	g.scene = world.NewScene(g.layout.Build(m), g.layout.Lights(m), world.DefaultMaterials())

	g.pos = g.layout.CellCenter(mazegen.Cell{})
	g.heading = core.Vec3{}
	g.hold = 0
	g.running = false
	g.visited = mapset.New[mazegen.Cell]()
	g.visited.Put(mazegen.Cell{})
	g.exit = mazegen.Cell{X: m.Width() - 1, Y: m.Height() - 1}

	g.ticks = 0
	g.score = 0
	g.won = false
	g.paused = false
	g.tooSmall = g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH
}

// Resize adapts the view to a new terminal size without regenerating the
// maze.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall || g.scene == nil {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.processInput(in)

	if g.hold > 0 {
		g.hold--
		speed := g.cfg.Player.WalkSpeed
		if g.running {
			speed = g.cfg.Player.RunSpeed
		}
		delta := g.heading.Scale(speed / float64(g.runtime.TickRate))
		g.pos = g.scene.Move(g.pos, delta, g.cfg.Player.Radius)
	}

	cell := g.layout.CellAt(g.pos)
	if cell.X >= 0 && cell.X < g.maze.Width() && cell.Y >= 0 && cell.Y < g.maze.Height() {
		g.visited.Put(cell)
	}
	if cell == g.exit {
		g.won = true
		g.score = g.computeScore()
	}

	return core.StepResult{State: g.State()}
}

// processInput turns direction actions into a heading. X is east, Z is
// south, matching the grid.
func (g *Game) processInput(in core.InputFrame) {
	var dir core.Vec3
	if in.Has(core.ActionForward) {
		dir.Z--
	}
	if in.Has(core.ActionBackward) {
		dir.Z++
	}
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}

	l := dir.LenXZ()
	if l == 0 {
		return
	}
	g.heading = dir.Scale(1 / l)
	g.hold = max(1, g.cfg.Player.HoldTicks)
	g.running = in.Has(core.ActionRun)
}

// Seconds returns the elapsed run time.
func (g *Game) Seconds() float64 {
	return float64(g.ticks) / float64(g.runtime.TickRate)
}

func (g *Game) computeScore() int {
	cells := g.maze.Width() * g.maze.Height()
	seconds := int(math.Floor(g.Seconds()))
	return max(1, cells*g.cfg.Scoring.CellPoints-seconds*g.cfg.Scoring.PenaltyPerSecond)
}

// lightRadius is the flashlight reach, or +Inf when the maze is lit.
func (g *Game) lightRadius() float64 {
	if !g.cfg.Lighting.Dark {
		return math.Inf(1)
	}
	return g.difficulty.LightRadius(g.cfg.Lighting.FlashlightRadius, g.ticks)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
	}
}

// Summary describes the run for storage.
func (g *Game) Summary() core.RunSummary {
	s := core.RunSummary{Seed: g.seed, Ticks: g.ticks}
	if g.maze != nil {
		s.Width, s.Height = g.maze.Width(), g.maze.Height()
	}
	return s
}

// Maze returns the current maze.
func (g *Game) Maze() *mazegen.Maze { return g.maze }

// Scene returns the current world scene.
func (g *Game) Scene() *world.Scene { return g.scene }
