// Package world turns wall placements into colliders and meshes and
// answers spatial queries against them.
package world

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/maze"
)

// Wall pairs a static collider with its mesh.
type Wall struct {
	Body     StaticBody
	Mesh     Mesh
	Boundary bool
}

// NewWall builds a wall from one placement.
func NewWall(p maze.Placement, mat *Material) Wall {
	half := core.V3(p.Width/2, p.Height/2, WallThickness/2)
	return Wall{
		Body: newStaticBody(p.Position, p.Yaw, half),
		Mesh: Mesh{
			Position: p.Position,
			Yaw:      p.Yaw,
			Size:     core.V3(p.Width, p.Height, WallThickness),
			Material: mat,
		},
		Boundary: p.Boundary,
	}
}

// Scene is the static world of one maze.
type Scene struct {
	walls     []Wall
	lights    []core.Vec3
	materials MaterialSet
	bounds    AABB

	bucket  float64
	buckets map[[2]int][]int
}

// NewScene creates one wall per placement. Boundary placements get the
// boundary material.
func NewScene(placements []maze.Placement, lights []core.Vec3, mats MaterialSet) *Scene {
	mats = mats.withDefaults()
	s := &Scene{
		walls:     make([]Wall, 0, len(placements)),
		lights:    lights,
		materials: mats,
		buckets:   make(map[[2]int][]int),
		bucket:    1,
	}

	for _, p := range placements {
		s.bucket = max(s.bucket, p.Width)
		mat := mats.Wall
		if p.Boundary {
			mat = mats.Boundary
		}
		s.walls = append(s.walls, NewWall(p, mat))
	}

	for i, w := range s.walls {
		fp := w.Body.Footprint()
		if i == 0 {
			s.bounds = fp
		} else {
			s.bounds = s.bounds.Union(fp)
		}
		x0, z0 := s.key(fp.MinX, fp.MinZ)
		x1, z1 := s.key(fp.MaxX, fp.MaxZ)
		for bx := x0; bx <= x1; bx++ {
			for bz := z0; bz <= z1; bz++ {
				k := [2]int{bx, bz}
				s.buckets[k] = append(s.buckets[k], i)
			}
		}
	}
	return s
}

func (s *Scene) key(x, z float64) (int, int) {
	return int(math.Floor(x / s.bucket)), int(math.Floor(z / s.bucket))
}

// Walls returns all walls in placement order.
func (s *Scene) Walls() []Wall { return s.walls }

// Lights returns the ceiling light positions.
func (s *Scene) Lights() []core.Vec3 { return s.lights }

// Materials returns the scene's material set.
func (s *Scene) Materials() MaterialSet { return s.materials }

// Bounds encloses every wall footprint.
func (s *Scene) Bounds() AABB { return s.bounds }

// candidates returns wall indices whose buckets touch box. Indices may
// repeat.
func (s *Scene) candidates(box AABB) []int {
	x0, z0 := s.key(box.MinX, box.MinZ)
	x1, z1 := s.key(box.MaxX, box.MaxZ)
	var out []int
	for bx := x0; bx <= x1; bx++ {
		for bz := z0; bz <= z1; bz++ {
			out = append(out, s.buckets[[2]int{bx, bz}]...)
		}
	}
	return out
}

// WallAt returns the wall covering the floor point (x, z).
func (s *Scene) WallAt(x, z float64) (Wall, bool) {
	for _, i := range s.candidates(AABB{MinX: x, MinZ: z, MaxX: x, MaxZ: z}) {
		if s.walls[i].Body.Footprint().Contains(x, z) {
			return s.walls[i], true
		}
	}
	return Wall{}, false
}

// Blocked reports whether the floor point (x, z) is inside a wall.
func (s *Scene) Blocked(x, z float64) bool {
	_, ok := s.WallAt(x, z)
	return ok
}

// Overlaps returns the first wall whose footprint overlaps box.
func (s *Scene) Overlaps(box AABB) (Wall, bool) {
	for _, i := range s.candidates(box) {
		if s.walls[i].Body.Footprint().Intersects(box) {
			return s.walls[i], true
		}
	}
	return Wall{}, false
}

const resolvePasses = 4

// Resolve pushes a circle of the given radius, centred at pos on the floor
// plane, out of every wall. Y is left unchanged.
func (s *Scene) Resolve(pos core.Vec3, radius float64) core.Vec3 {
	for range resolvePasses {
		moved := false
		box := AABB{MinX: pos.X - radius, MinZ: pos.Z - radius, MaxX: pos.X + radius, MaxZ: pos.Z + radius}
		for _, i := range s.candidates(box) {
			if p, ok := pushOut(s.walls[i].Body.Footprint(), pos, radius); ok {
				pos = p
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return pos
}

// Move advances a circle by delta, resolving collisions in steps no longer
// than half the radius so thin walls cannot be skipped.
func (s *Scene) Move(pos, delta core.Vec3, radius float64) core.Vec3 {
	dist := delta.LenXZ()
	if dist == 0 {
		return s.Resolve(pos, radius)
	}
	steps := max(1, int(math.Ceil(dist/(radius/2))))
	step := delta.Scale(1 / float64(steps))
	for range steps {
		pos = s.Resolve(pos.Add(step), radius)
	}
	return pos
}

// pushOut moves pos the minimum distance that separates the circle from b.
func pushOut(b AABB, pos core.Vec3, radius float64) (core.Vec3, bool) {
	cx := core.ClampF(pos.X, b.MinX, b.MaxX)
	cz := core.ClampF(pos.Z, b.MinZ, b.MaxZ)
	dx, dz := pos.X-cx, pos.Z-cz
	d2 := dx*dx + dz*dz
	if d2 >= radius*radius {
		return pos, false
	}

	if d2 > 0 {
		d := math.Sqrt(d2)
		k := (radius - d) / d
		pos.X += dx * k
		pos.Z += dz * k
		return pos, true
	}

	// Centre inside the box: leave through the nearest face.
	left := pos.X - b.MinX
	right := b.MaxX - pos.X
	top := pos.Z - b.MinZ
	bottom := b.MaxZ - pos.Z
	switch min(left, right, top, bottom) {
	case left:
		pos.X = b.MinX - radius
	case right:
		pos.X = b.MaxX + radius
	case top:
		pos.Z = b.MinZ - radius
	default:
		pos.Z = b.MaxZ + radius
	}
	return pos, true
}
