package maze

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// Placement is one wall panel in world space. Width and Height are the
// panel's horizontal and vertical extent; Yaw rotates it about the Y axis.
type Placement struct {
	Position core.Vec3
	Yaw      float64
	Width    float64
	Height   float64
	// Boundary is set for walls on the outer edge of the maze.
	Boundary bool
	// Wall is the canonical wall this panel stands for. Zero for north and
	// west caps.
	Wall WallPos
}

// Layout maps grid walls to world space with a uniform cell size.
type Layout struct {
	Scale  float64
	Origin core.Vec3
}

// NewLayout returns a layout whose walls stand on the XZ plane with their
// centres at half a cell above the floor.
func NewLayout(scale float64) Layout {
	return Layout{
		Scale:  scale,
		Origin: core.V3(0, scale/2, 0),
	}
}

// Place positions one canonical wall.
func (l Layout) Place(pos WallPos) Placement {
	s := l.Scale
	p := Placement{Width: s, Height: s, Wall: pos}
	x, z := float64(pos.X)*s, float64(pos.Y)*s
	switch pos.Face {
	case Right:
		p.Position = l.Origin.Add(core.V3(x+s/2, 0, z))
		p.Yaw = math.Pi / 2
	default:
		p.Position = l.Origin.Add(core.V3(x, 0, z+s/2))
	}
	return p
}

// Build lays out every standing wall of m, then closes the north and west
// edges. East and south edges come from the perimeter walls generation
// never clears.
func (l Layout) Build(m *Maze) []Placement {
	s := l.Scale
	walls := m.Walls()
	out := make([]Placement, 0, len(walls)+m.Width()+m.Height())

	for _, w := range walls {
		p := l.Place(w)
		p.Boundary = m.IsPerimeter(w)
		out = append(out, p)
	}
	for x := 0; x < m.Width(); x++ {
		out = append(out, Placement{
			Position: l.Origin.Add(core.V3(float64(x)*s, 0, -s/2)),
			Width:    s,
			Height:   s,
			Boundary: true,
		})
	}
	for y := 0; y < m.Height(); y++ {
		out = append(out, Placement{
			Position: l.Origin.Add(core.V3(-s/2, 0, float64(y)*s)),
			Yaw:      math.Pi / 2,
			Width:    s,
			Height:   s,
			Boundary: true,
		})
	}
	return out
}

// Lights returns one ceiling light per cell, a fifth of a cell below the
// top of the walls.
func (l Layout) Lights(m *Maze) []core.Vec3 {
	s := l.Scale
	lights := make([]core.Vec3, 0, m.Width()*m.Height())
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			c := l.CellCenter(Cell{X: x, Y: y})
			c.Y = s - s/5
			lights = append(lights, c)
		}
	}
	return lights
}

// CellCenter returns the floor-level centre of c.
func (l Layout) CellCenter(c Cell) core.Vec3 {
	return core.V3(float64(c.X)*l.Scale, 0, float64(c.Y)*l.Scale)
}

// CellAt returns the cell containing a floor position. The result may be
// off the grid.
func (l Layout) CellAt(p core.Vec3) Cell {
	return Cell{
		X: int(math.Floor(p.X/l.Scale + 0.5)),
		Y: int(math.Floor(p.Z/l.Scale + 0.5)),
	}
}

// WallPlacements is shorthand for NewLayout(scale).Build(m).
func (m *Maze) WallPlacements(scale float64) []Placement {
	return NewLayout(scale).Build(m)
}
