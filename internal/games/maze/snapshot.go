package maze

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateEscaped     GameStateType = "escaped"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Mode    string
	Seed    int64
	Width   int
	Height  int
	Tick    int
	PosX    float64
	PosZ    float64
	Visited int
	Score   int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateEscaped
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Mode:  g.ID(),
		Seed:  g.seed,
		Tick:  g.ticks,
		PosX:  g.pos.X,
		PosZ:  g.pos.Z,
		Score: g.score,
		State: state,
	}
	if g.maze != nil {
		snap.Width, snap.Height = g.maze.Width(), g.maze.Height()
		snap.Visited = g.visited.Size()
	}
	return snap
}
