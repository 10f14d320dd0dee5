package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/maze"
)

var (
	flagGenWidth  int
	flagGenHeight int
	flagGenScale  float64
	flagGenFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a maze and print it",
	Long: `Carve a perfect maze and print it.

Formats:
  ascii       - Box drawing with +---+ corners (default)
  placements  - One line per wall panel in world space
  yaml        - Grid walls, panels and lights as YAML

Size and scale default to the maze config, so MAZEWALK_* environment
variables and .env apply here too. The seed is printed to stderr so any
maze can be regenerated.

Examples:
  mazewalk generate
  mazewalk generate --width 20 --height 8 --seed 7
  mazewalk generate --format placements --scale 2
  mazewalk generate --format yaml > maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagGenWidth, "width", 0, "Cells across (0 = from config)")
	generateCmd.Flags().IntVar(&flagGenHeight, "height", 0, "Cells down (0 = from config)")
	generateCmd.Flags().Float64Var(&flagGenScale, "scale", 0, "World size of one cell (0 = from config)")
	generateCmd.Flags().StringVar(&flagGenFormat, "format", "ascii", "Output format: ascii, placements, yaml")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	switch flagGenFormat {
	case "ascii", "placements", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want ascii, placements or yaml)", flagGenFormat)
	}

	cfg, err := generateConfig(flagGenWidth, flagGenHeight, flagGenScale, flagSeed)
	if err != nil {
		return err
	}

	opts := []maze.Option{maze.WithLogger(logger)}
	if cfg.Grid.Seed != 0 {
		opts = append(opts, maze.WithSeed(cfg.Grid.Seed))
	}
	m, err := maze.Generate(cfg.Grid.Width, cfg.Grid.Height, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%dx%d seed=%d\n", m.Width(), m.Height(), m.Seed())

	switch flagGenFormat {
	case "placements":
		printPlacements(m, cfg.Grid.Scale)
	case "yaml":
		return printYAML(m, cfg.Grid.Scale)
	default:
		printASCII(m)
	}
	return nil
}

// generateConfig loads the maze config and applies non-zero overrides on
// top of it. The result is validated, so a bad size or scale from flags,
// environment or file is an error.
func generateConfig(width, height int, scale float64, seed int64) (config.MazeConfig, error) {
	cfg, err := config.LoadMaze("")
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if width != 0 {
		cfg.Grid.Width = width
	}
	if height != 0 {
		cfg.Grid.Height = height
	}
	if scale != 0 {
		cfg.Grid.Scale = scale
	}
	if seed != 0 {
		cfg.Grid.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var wallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

func printASCII(m *maze.Maze) {
	out := m.String()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(out)
		return
	}
	for _, line := range strings.SplitAfter(out, "\n") {
		if line == "" {
			continue
		}
		fmt.Println(wallStyle.Render(strings.TrimSuffix(line, "\n")))
	}
}

func printPlacements(m *maze.Maze, scale float64) {
	fmt.Printf("%-10s %9s %9s %9s %6s %s\n", "wall", "x", "y", "z", "yaw", "edge")
	for _, p := range maze.NewLayout(scale).Build(m) {
		name := p.Wall.String()
		if !p.Wall.Face.Canonical() {
			name = "cap"
		}
		fmt.Printf("%-10s %9.3f %9.3f %9.3f %6.1f %v\n",
			name, p.Position.X, p.Position.Y, p.Position.Z, p.Yaw*180/math.Pi, p.Boundary)
	}
}

type vecDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type panelDoc struct {
	Position vecDoc  `yaml:"position"`
	Yaw      float64 `yaml:"yaw"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Boundary bool    `yaml:"boundary,omitempty"`
}

type mazeDoc struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Seed   int64      `yaml:"seed"`
	Scale  float64    `yaml:"scale"`
	Walls  []string   `yaml:"walls"`
	Panels []panelDoc `yaml:"panels"`
	Lights []vecDoc   `yaml:"lights"`
}

func printYAML(m *maze.Maze, scale float64) error {
	layout := maze.NewLayout(scale)
	doc := mazeDoc{
		Width:  m.Width(),
		Height: m.Height(),
		Seed:   m.Seed(),
		Scale:  scale,
	}
	for _, w := range m.Walls() {
		doc.Walls = append(doc.Walls, w.String())
	}
	for _, p := range layout.Build(m) {
		doc.Panels = append(doc.Panels, panelDoc{
			Position: vecDoc{p.Position.X, p.Position.Y, p.Position.Z},
			Yaw:      p.Yaw,
			Width:    p.Width,
			Height:   p.Height,
			Boundary: p.Boundary,
		})
	}
	for _, l := range layout.Lights(m) {
		doc.Lights = append(doc.Lights, vecDoc{l.X, l.Y, l.Z})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode maze: %w", err)
	}
	return enc.Close()
}
