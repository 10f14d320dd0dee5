package world

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// WallThickness is the depth of every wall panel.
const WallThickness = 0.2

// AABB is an axis-aligned box on the floor plane.
type AABB struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Contains reports whether the floor point (x, z) is inside or on b.
func (b AABB) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Intersects reports whether b and o overlap with positive area.
func (b AABB) Intersects(o AABB) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinZ < o.MaxZ && o.MinZ < b.MaxZ
}

// Union returns the smallest box enclosing b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		MinX: min(b.MinX, o.MinX),
		MinZ: min(b.MinZ, o.MinZ),
		MaxX: max(b.MaxX, o.MaxX),
		MaxZ: max(b.MaxZ, o.MaxZ),
	}
}

// StaticBody is an immovable collider. It never moves and never responds
// to contact.
type StaticBody struct {
	Position core.Vec3
	Yaw      float64
	// HalfExtents of the unrotated box: width, height, thickness.
	HalfExtents core.Vec3
	footprint   AABB
}

func newStaticBody(pos core.Vec3, yaw float64, half core.Vec3) StaticBody {
	c, s := math.Abs(math.Cos(yaw)), math.Abs(math.Sin(yaw))
	hx := c*half.X + s*half.Z
	hz := s*half.X + c*half.Z
	return StaticBody{
		Position:    pos,
		Yaw:         yaw,
		HalfExtents: half,
		footprint: AABB{
			MinX: pos.X - hx, MaxX: pos.X + hx,
			MinZ: pos.Z - hz, MaxZ: pos.Z + hz,
		},
	}
}

// Mass is always zero: static bodies have infinite inertia.
func (b StaticBody) Mass() float64 { return 0 }

// Footprint is the body's floor-plane bounding box.
func (b StaticBody) Footprint() AABB { return b.footprint }

// Mesh is the visible box of a wall.
type Mesh struct {
	Position core.Vec3
	Yaw      float64
	// Size is width, height and thickness.
	Size     core.Vec3
	Material *Material
}
