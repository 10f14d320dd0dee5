package maze

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Maze is a generated grid. It is read-only once Generate returns.
type Maze struct {
	grid       *Grid
	seed       int64
	cleared    int
	partitions int
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.height }

// Seed returns the seed the maze was generated from.
func (m *Maze) Seed() int64 { return m.seed }

// Cleared returns how many walls generation removed.
func (m *Maze) Cleared() int { return m.cleared }

// Partitions returns the number of disjoint cell sets left after
// generation. It is 1 for every generated maze.
func (m *Maze) Partitions() int { return m.partitions }

// WallValue reports whether a wall stands on face f of cell c.
func (m *Maze) WallValue(c Cell, f Face, policy BoundaryPolicy) bool {
	return m.grid.WallValue(c, f, policy)
}

// IsPerimeter reports whether a canonical wall is on the east or south edge.
func (m *Maze) IsPerimeter(pos WallPos) bool {
	return m.grid.IsPerimeter(pos)
}

// Walls returns every standing canonical wall, perimeter included, in
// AllWallPositions order.
func (m *Maze) Walls() []WallPos {
	return m.grid.TrueWalls()
}

// InteriorWalls returns the standing walls between two cells.
func (m *Maze) InteriorWalls() []WallPos {
	var walls []WallPos
	for _, w := range m.grid.TrueWalls() {
		if !m.grid.IsPerimeter(w) {
			walls = append(walls, w)
		}
	}
	return walls
}

// Reachable returns every cell connected to from through cleared walls.
func (m *Maze) Reachable(from Cell) mapset.Set[Cell] {
	seen := mapset.New[Cell]()
	if !m.grid.InBounds(from) {
		return seen
	}

	queue := []Cell{from}
	seen.Put(from)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, f := range []Face{Top, Bottom, Left, Right} {
			if m.grid.WallValue(c, f, EdgesWalled) {
				continue
			}
			n := Neighbor(c, f)
			if !m.grid.InBounds(n) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

// Validate checks that the maze is a spanning tree: width*height-1 cleared
// walls and a single connected component.
func (m *Maze) Validate() error {
	cells := m.grid.Cells()
	if m.cleared != cells-1 {
		return fmt.Errorf("%w: %d walls cleared, want %d", ErrNotPerfect, m.cleared, cells-1)
	}
	if n := m.Reachable(Cell{}).Size(); n != cells {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, n, cells)
	}
	return nil
}

// String draws the maze as ASCII art.
func (m *Maze) String() string {
	var sb strings.Builder

	sb.WriteString("+" + strings.Repeat("---+", m.Width()) + "\n")
	for y := 0; y < m.Height(); y++ {
		sb.WriteString("|")
		for x := 0; x < m.Width(); x++ {
			if m.WallValue(Cell{X: x, Y: y}, Right, EdgesWalled) {
				sb.WriteString("   |")
			} else {
				sb.WriteString("    ")
			}
		}
		sb.WriteString("\n+")
		for x := 0; x < m.Width(); x++ {
			if m.WallValue(Cell{X: x, Y: y}, Bottom, EdgesWalled) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
