package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/games/maze"
	"github.com/vovakirdan/mazewalk/internal/platform/tui"
	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDark       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Walk a maze",
	Long: `Walk a maze from a top-down view. Start in the top-left cell and
find the exit (E) in the bottom-right one. Without a mode, a menu lets you
pick the mode and difficulty.

Controls:
  Arrows/WASD        - Move
  Shift+Arrows/WASD  - Run
  P                  - Pause
  R                  - New maze (after reaching the exit)
  Esc/B              - Back
  Ctrl+S             - Screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - 6x6 maze, full flashlight battery
  normal - 10x10 maze
  hard   - 18x18 maze, flashlight starts drained
  fixed  - Config's maze size, flashlight never drains

Examples:
  mazewalk play
  mazewalk play maze --difficulty easy
  mazewalk play --dark --difficulty hard
  mazewalk play maze --seed 42
  mazewalk play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDark, "dark", false, "Play with only a flashlight")
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	maze.SetConfigPath(flagConfig)
	maze.SetDifficultyPreset(flagDifficulty)

	gameID := ""
	switch {
	case len(args) == 1:
		gameID = args[0]
	case flagDark:
		gameID = "maze_dark"
	}
	if gameID != "" && !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'mazewalk list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	if gameID != "" {
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		return tui.Run(game, store, cfg, logger)
	}

	return runMenu(store, cfg)
}

// runMenu loops between the menu, the runs screen and games until the
// player quits.
func runMenu(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("could not create game", "game", result.GameID, "error", err)
			continue
		}
		if t, ok := game.(registry.Tunable); ok && result.Difficulty != "" {
			t.SetDifficulty(string(result.Difficulty))
		}

		// A fresh maze each time unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			return err
		}
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
