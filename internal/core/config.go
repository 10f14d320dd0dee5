package core

// RuntimeConfig is passed to games at Reset.
// Games use it to fit the screen and to seed their generators.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Score of a finished run, 0 while playing
	GameOver bool // Run finished (exit reached)
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished run for persistence.
type RunSummary struct {
	Width  int
	Height int
	Seed   int64
	Ticks  int
}
