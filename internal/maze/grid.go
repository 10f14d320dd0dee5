package maze

import (
	"fmt"
	"iter"
)

// Cell addresses one grid square. X grows east, Y grows south.
type Cell struct {
	X, Y int
}

// WallPos names one wall by the cell that owns it and the face it sits on.
type WallPos struct {
	Cell
	Face Face
}

func (p WallPos) String() string {
	return fmt.Sprintf("(%d,%d,%s)", p.X, p.Y, p.Face)
}

// CellWalls is the wall state on every face of one cell.
type CellWalls struct {
	Top, Bottom, Left, Right bool
}

// Grid is a width×height cell grid with the wall state between cells.
// Walls are stored only under Bottom and Right faces; the last column's
// Right walls and the last row's Bottom walls close the east and south
// perimeter.
type Grid struct {
	width  int
	height int
	walls  map[WallPos]bool
}

// NewGrid returns a fully walled grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("maze: %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	g := &Grid{
		width:  width,
		height: height,
		walls:  make(map[WallPos]bool, 2*width*height),
	}
	for pos := range g.AllWallPositions() {
		g.setWall(pos, true)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells returns width*height.
func (g *Grid) Cells() int { return g.width * g.height }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index is the cell's linear index, x-major to match AllWallPositions.
func (g *Grid) index(c Cell) int {
	return c.X*g.height + c.Y
}

// setWall writes a canonical wall flag. Top and Left are read-only aliases.
func (g *Grid) setWall(pos WallPos, present bool) {
	if !pos.Face.Canonical() {
		panic(fmt.Sprintf("maze: setWall on non-canonical face %s", pos))
	}
	g.walls[pos] = present
}

// WallValue reports whether a wall stands on face f of cell c. Cells off the
// grid never have walls. Top on the first row and Left on the first column
// answer with policy.
func (g *Grid) WallValue(c Cell, f Face, policy BoundaryPolicy) bool {
	if !g.InBounds(c) {
		return false
	}

	switch f {
	case Bottom, Right:
		return g.walls[WallPos{Cell: c, Face: f}]
	case Top:
		if c.Y == 0 {
			return bool(policy)
		}
		return g.walls[WallPos{Cell: Cell{X: c.X, Y: c.Y - 1}, Face: Bottom}]
	case Left:
		if c.X == 0 {
			return bool(policy)
		}
		return g.walls[WallPos{Cell: Cell{X: c.X - 1, Y: c.Y}, Face: Right}]
	default:
		return false
	}
}

// CellWalls returns all four faces of c under the given policy.
func (g *Grid) CellWalls(c Cell, policy BoundaryPolicy) CellWalls {
	return CellWalls{
		Top:    g.WallValue(c, Top, policy),
		Bottom: g.WallValue(c, Bottom, policy),
		Left:   g.WallValue(c, Left, policy),
		Right:  g.WallValue(c, Right, policy),
	}
}

// AllWallPositions yields every canonical wall exactly once: x-major, then
// y, Right before Bottom. The sequence can be ranged over repeatedly.
func (g *Grid) AllWallPositions() iter.Seq[WallPos] {
	return func(yield func(WallPos) bool) {
		for x := 0; x < g.width; x++ {
			for y := 0; y < g.height; y++ {
				c := Cell{X: x, Y: y}
				if !yield(WallPos{Cell: c, Face: Right}) {
					return
				}
				if !yield(WallPos{Cell: c, Face: Bottom}) {
					return
				}
			}
		}
	}
}

// TrueWalls returns the walls still standing, in AllWallPositions order.
func (g *Grid) TrueWalls() []WallPos {
	var walls []WallPos
	for pos := range g.AllWallPositions() {
		if g.walls[pos] {
			walls = append(walls, pos)
		}
	}
	return walls
}

// IsPerimeter reports whether a canonical wall lies on the east or south
// edge of the grid. Such walls have no second cell and are never cleared.
func (g *Grid) IsPerimeter(pos WallPos) bool {
	switch pos.Face {
	case Right:
		return pos.X == g.width-1
	case Bottom:
		return pos.Y == g.height-1
	default:
		return false
	}
}

// Incident returns the two cells a canonical wall separates. The second
// cell is off the grid for perimeter walls.
func Incident(pos WallPos) (Cell, Cell) {
	if pos.Face == Right {
		return pos.Cell, Cell{X: pos.X + 1, Y: pos.Y}
	}
	return pos.Cell, Cell{X: pos.X, Y: pos.Y + 1}
}

// Neighbor returns the cell across face f from c.
func Neighbor(c Cell, f Face) Cell {
	switch f {
	case Top:
		return Cell{X: c.X, Y: c.Y - 1}
	case Bottom:
		return Cell{X: c.X, Y: c.Y + 1}
	case Left:
		return Cell{X: c.X - 1, Y: c.Y}
	default:
		return Cell{X: c.X + 1, Y: c.Y}
	}
}
