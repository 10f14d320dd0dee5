package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the loaded grid settings.
const (
	EnvWidth  = "MAZEWALK_WIDTH"
	EnvHeight = "MAZEWALK_HEIGHT"
	EnvScale  = "MAZEWALK_SCALE"
	EnvSeed   = "MAZEWALK_SEED"
)

// LoadMaze loads maze configuration.
// Search order: customPath -> ~/.mazewalk/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	// Unset keys keep their defaults.
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMazeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/maze.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMazeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overwriting existing ones. With no files it reads
// ./.env. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides grid settings from MAZEWALK_* variables.
func ApplyEnv(cfg *MazeConfig) error {
	if v, ok := os.LookupEnv(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWidth, v, err)
		}
		cfg.Grid.Width = n
	}
	if v, ok := os.LookupEnv(EnvHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvHeight, v, err)
		}
		cfg.Grid.Height = n
	}
	if v, ok := os.LookupEnv(EnvScale); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvScale, v, err)
		}
		cfg.Grid.Scale = f
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Grid.Seed = n
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazewalk", "configs", filename)
}
