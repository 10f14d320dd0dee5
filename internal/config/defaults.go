package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: MazeGrid{
			Width:  10,
			Height: 10,
			Scale:  6,
		},
		Player: MazePlayer{
			WalkSpeed: 8,
			RunSpeed:  16,
			Radius:    0.2,
			HoldTicks: 6,
		},
		Lighting: MazeLighting{
			FlashlightRadius: 9,
		},
		Scoring: MazeScoring{
			CellPoints:       100,
			PenaltyPerSecond: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 5400, // 3 minutes at 30fps
			},
			Scaling: ScalingConfig{
				LightReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze", "maze_dark":
		return defaultMazeYAML
	default:
		return nil
	}
}
