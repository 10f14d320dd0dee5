package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MazeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("maze"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("embedded defaults differ:\n got %+v\nwant %+v", cfg, DefaultMazeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default yaml")
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("grid:\n  width: 4\n  height: 3\nlighting:\n  dark: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Grid.Width != 4 || cfg.Grid.Height != 3 {
		t.Errorf("grid = %dx%d, want 4x3", cfg.Grid.Width, cfg.Grid.Height)
	}
	if !cfg.Lighting.Dark {
		t.Error("dark not applied")
	}
	// Keys missing from the file keep their defaults.
	if cfg.Grid.Scale != 6 || cfg.Player.RunSpeed != 16 {
		t.Errorf("defaults lost: scale=%v run=%v", cfg.Grid.Scale, cfg.Player.RunSpeed)
	}
}

func TestLoadMazeErrors(t *testing.T) {
	if _, err := LoadMaze(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
	}{
		{"zero width", func(c *MazeConfig) { c.Grid.Width = 0 }},
		{"negative height", func(c *MazeConfig) { c.Grid.Height = -2 }},
		{"zero scale", func(c *MazeConfig) { c.Grid.Scale = 0 }},
		{"radius too big", func(c *MazeConfig) { c.Player.Radius = 3 }},
		{"run slower than walk", func(c *MazeConfig) { c.Player.RunSpeed = 1 }},
		{"dark without light", func(c *MazeConfig) { c.Lighting.Dark = true; c.Lighting.FlashlightRadius = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvWidth, "7")
	t.Setenv(EnvHeight, "5")
	t.Setenv(EnvScale, "2.5")
	t.Setenv(EnvSeed, "99")

	cfg := DefaultMazeConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.Grid.Width != 7 || cfg.Grid.Height != 5 || cfg.Grid.Scale != 2.5 || cfg.Grid.Seed != 99 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv(EnvWidth, "wide")
	cfg := DefaultMazeConfig()
	if err := ApplyEnv(&cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ApplyEnv() = %v, want ErrInvalidConfig", err)
	}
	if cfg.Grid.Width != 10 {
		t.Errorf("width changed to %d", cfg.Grid.Width)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "MAZEWALK_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, want from-file", key, got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		w, h   int
	}{
		{DifficultyEasy, 6, 6},
		{DifficultyNormal, 10, 10},
		{DifficultyHard, 18, 18},
		{DifficultyFixed, 4, 9},
	}
	for _, tt := range tests {
		cfg := DefaultMazeConfig()
		cfg.Grid.Width, cfg.Grid.Height = 4, 9
		ApplyMazePreset(&cfg, tt.preset)
		if cfg.Grid.Width != tt.w || cfg.Grid.Height != tt.h {
			t.Errorf("%s: grid %dx%d, want %dx%d", tt.preset, cfg.Grid.Width, cfg.Grid.Height, tt.w, tt.h)
		}
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("insane") != "" {
		t.Error("ParsePreset mismatch")
	}
}

func TestLightRadiusDrains(t *testing.T) {
	cfg := DefaultMazeConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if r := d.LightRadius(8, 0); r != 8 {
		t.Errorf("start radius = %v, want 8", r)
	}
	if r := d.LightRadius(8, cfg.Progression.MaxAt); r != 4 {
		t.Errorf("drained radius = %v, want 4", r)
	}
	if r := d.LightRadius(8, cfg.Progression.MaxAt*10); r != 4 {
		t.Errorf("radius past max = %v, want 4", r)
	}

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if r := d.LightRadius(8, cfg.Progression.MaxAt); r != 8 {
		t.Errorf("disabled radius = %v, want 8", r)
	}
}
