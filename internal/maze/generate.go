// Package maze builds perfect mazes on a rectangular grid with randomized
// Kruskal and lays their walls out in world space.
//
// A generated maze is a spanning tree of the cell-adjacency graph: every
// cell is reachable from every other and exactly width*height-1 walls are
// cleared.
package maze

import (
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	// ErrNotPerfect is returned by Validate when a maze is disconnected or
	// has loops.
	ErrNotPerfect = errors.New("maze is not perfect")
)

// Option configures Generate.
type Option func(*options)

type options struct {
	seed         int64
	seeded       bool
	newPartition func(n int) Partition
	logger       *log.Logger
}

// WithSeed makes generation reproducible. Without it the seed comes from
// the clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithPartition swaps the disjoint-set implementation.
func WithPartition(newPartition func(n int) Partition) Option {
	return func(o *options) {
		o.newPartition = newPartition
	}
}

// WithLogger reports each generation at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Generate carves a perfect width×height maze.
func Generate(width, height int, opts ...Option) (*Maze, error) {
	o := options{
		newPartition: func(n int) Partition { return NewDisjointSet(n) },
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(o.seed))
	sets := o.newPartition(grid.Cells())

	candidates := slices.Collect(grid.AllWallPositions())
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	cleared := 0
	for _, wall := range candidates {
		a, b := Incident(wall)
		if !grid.InBounds(b) {
			continue
		}
		if sets.Union(grid.index(a), grid.index(b)) {
			grid.setWall(wall, false)
			cleared++
		}
	}

	if o.logger != nil {
		o.logger.Debug("maze generated",
			"width", width,
			"height", height,
			"seed", o.seed,
			"cleared", cleared,
			"partitions", sets.Count(),
		)
	}

	return &Maze{grid: grid, seed: o.seed, cleared: cleared, partitions: sets.Count()}, nil
}
