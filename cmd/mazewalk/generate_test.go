package main

import (
	"errors"
	"os"
	"testing"

	"github.com/vovakirdan/mazewalk/internal/config"
)

// isolate hides user configs and MAZEWALK_* variables from the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{config.EnvWidth, config.EnvHeight, config.EnvScale, config.EnvSeed} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestGenerateConfigZeroKeepsConfig(t *testing.T) {
	isolate(t)
	def := config.DefaultMazeConfig()

	cfg, err := generateConfig(0, 0, 0, 0)
	if err != nil {
		t.Fatalf("generateConfig failed: %v", err)
	}
	if cfg.Grid.Width != def.Grid.Width || cfg.Grid.Height != def.Grid.Height || cfg.Grid.Scale != def.Grid.Scale {
		t.Errorf("grid = %+v, want config grid %+v", cfg.Grid, def.Grid)
	}
}

func TestGenerateConfigOverrides(t *testing.T) {
	isolate(t)

	cfg, err := generateConfig(2, 1, 3, 7)
	if err != nil {
		t.Fatalf("generateConfig failed: %v", err)
	}
	if cfg.Grid.Width != 2 || cfg.Grid.Height != 1 || cfg.Grid.Scale != 3 || cfg.Grid.Seed != 7 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
}

func TestGenerateConfigRejectsBadInput(t *testing.T) {
	isolate(t)

	tests := []struct {
		name          string
		width, height int
		scale         float64
	}{
		{"negative scale", 2, 1, -4},
		{"negative width", -2, 1, 0},
		{"negative height", 2, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generateConfig(tt.width, tt.height, tt.scale, 3)
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGenerateConfigRejectsZeroScaleFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvScale, "0")

	if _, err := generateConfig(2, 1, 0, 3); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
