// mazewalk generates perfect mazes and lets you walk them in the terminal.
//
// Usage:
//
//	mazewalk list              - List available modes
//	mazewalk generate          - Print a maze or its wall placements
//	mazewalk play [mode]       - Walk a maze (menu if no mode given)
//	mazewalk serve             - Start SSH server for remote play
//	mazewalk runs [mode]       - Show the fastest finished runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible mazes
//	--db <path>          - Set database path (default: ~/.mazewalk/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/games/maze"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "mazewalk",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazewalk",
	Short: "Mazewalk - Generate perfect mazes and walk them in your terminal",
	Long: `Mazewalk carves perfect mazes with randomized Kruskal and lets you
walk them from a top-down view in the terminal.

Available commands:
  list      - Show all available modes
  generate  - Print a maze as ASCII, placements or YAML
  play      - Walk a maze
  serve     - Start SSH server for remote play
  runs      - View the fastest finished runs

Examples:
  mazewalk generate --width 8 --height 5 --seed 42
  mazewalk play --difficulty hard
  mazewalk play maze_dark
  mazewalk serve --ssh :2222
  mazewalk runs maze --width 10 --height 10`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazewalk/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup applies the log level and loads .env before a command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("could not load .env", "error", err)
	}

	maze.SetLogger(logger)
	return nil
}
