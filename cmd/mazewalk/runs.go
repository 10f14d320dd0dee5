package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/storage"
)

var (
	flagRunsWidth  int
	flagRunsHeight int
	flagRunsLimit  int
	flagRunsScore  bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show the fastest finished runs",
	Long: `Display the fastest finished runs for a mode, optionally for one maze
size only. The seed column regenerates the exact maze with --seed.

Examples:
  mazewalk runs
  mazewalk runs maze_dark
  mazewalk runs maze --width 10 --height 10 --limit 5
  mazewalk runs maze_dark --by-score
  mazewalk runs maze --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsWidth, "width", 0, "Only runs on mazes this wide (0 = any)")
	runsCmd.Flags().IntVar(&flagRunsHeight, "height", 0, "Only runs on mazes this tall (0 = any)")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsScore, "by-score", false, "Rank by score instead of time")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run for the mode")
}

var (
	runsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	runsCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runRuns(_ *cobra.Command, args []string) error {
	gameID := "maze"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'mazewalk list' to see available modes", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", game.Title())
		return nil
	}

	if flagRunsScore {
		return printTopScores(store, gameID, game.Title())
	}

	runs, err := store.TopRuns(gameID, flagRunsWidth, flagRunsHeight, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Fastest Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazewalk play %s' to set the first time!\n", gameID)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Time", "Size", "Score", "Seed", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return runsHeaderStyle
			}
			return runsCellStyle
		})
	for i, r := range runs {
		t.Row(
			fmt.Sprintf("#%d", i+1),
			runDuration(r.Ticks).String(),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best score: %d  Average score: %.0f\n", stats.RunsCount, stats.HighScore, stats.AvgScore)
	}
	if flagRunsWidth > 0 && flagRunsHeight > 0 {
		best, err := store.BestRun(gameID, flagRunsWidth, flagRunsHeight)
		if err == nil && best != nil {
			fmt.Printf("Best %dx%d: %s (seed %d)\n", best.Width, best.Height, runDuration(best.Ticks), best.Seed)
		}
	}
	return nil
}

// printTopScores lists the best scores regardless of maze size.
func printTopScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return runsHeaderStyle
			}
			return runsCellStyle
		})
	for i, e := range scores {
		t.Row(fmt.Sprintf("#%d", i+1), fmt.Sprintf("%d", e.Score), e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t.Render())
	return nil
}

// runDuration converts stored ticks at the current --fps to wall time.
func runDuration(ticks int) time.Duration {
	fps := max(1, flagFPS)
	return (time.Duration(ticks) * time.Second / time.Duration(fps)).Round(100 * time.Millisecond)
}
