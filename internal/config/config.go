// Package config provides YAML-based maze configuration loading,
// environment overrides and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Grid       MazeGrid         `yaml:"grid"`
	Player     MazePlayer       `yaml:"player"`
	Lighting   MazeLighting     `yaml:"lighting"`
	Scoring    MazeScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeGrid defines the maze size and world scale.
type MazeGrid struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // World units per cell
	Seed   int64   `yaml:"seed"`  // 0 = use the runtime seed
}

// MazePlayer defines player movement parameters in world units.
type MazePlayer struct {
	WalkSpeed float64 `yaml:"walk_speed"` // Units per second
	RunSpeed  float64 `yaml:"run_speed"`
	Radius    float64 `yaml:"radius"`
	HoldTicks int     `yaml:"hold_ticks"` // Ticks a key press keeps the player moving
}

// MazeLighting defines what the player can see.
type MazeLighting struct {
	Dark             bool    `yaml:"dark"`
	FlashlightRadius float64 `yaml:"flashlight_radius"` // World units, dark mode only
}

// MazeScoring defines how a finished run is scored.
type MazeScoring struct {
	CellPoints       int `yaml:"cell_points"`
	PenaltyPerSecond int `yaml:"penalty_per_second"`
}

// DifficultyConfig defines flashlight battery drain in dark mode.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = full battery, 1.0 = empty
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	LightReduction float64 `yaml:"light_reduction"` // Fraction of the flashlight radius lost at max difficulty
}

// Validate reports the first unusable value.
func (c MazeConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Grid.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Grid.Scale)
	case c.Player.Radius <= 0 || c.Player.Radius*2 >= c.Grid.Scale:
		return fmt.Errorf("%w: player radius %v for scale %v", ErrInvalidConfig, c.Player.Radius, c.Grid.Scale)
	case c.Player.WalkSpeed <= 0 || c.Player.RunSpeed < c.Player.WalkSpeed:
		return fmt.Errorf("%w: speeds walk=%v run=%v", ErrInvalidConfig, c.Player.WalkSpeed, c.Player.RunSpeed)
	case c.Lighting.Dark && c.Lighting.FlashlightRadius <= 0:
		return fmt.Errorf("%w: flashlight radius %v", ErrInvalidConfig, c.Lighting.FlashlightRadius)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// ApplyMazePreset sets the grid size and battery drain for a preset.
// DifficultyFixed keeps the configured size and disables drain.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Width, cfg.Grid.Height = 6, 6
		cfg.Difficulty.InitialLevel = 0.0
	case DifficultyNormal:
		cfg.Grid.Width, cfg.Grid.Height = 10, 10
		cfg.Difficulty.InitialLevel = 0.1
	case DifficultyHard:
		cfg.Grid.Width, cfg.Grid.Height = 18, 18
		cfg.Difficulty.InitialLevel = 0.3
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
