package maze

import "fmt"

// Face is one of the four wall-bearing sides of a cell.
type Face uint8

const (
	Top Face = iota
	Bottom
	Left
	Right
)

// Canonical reports whether walls on this face are stored directly.
// Top and Left are always answered by the neighbouring cell.
func (f Face) Canonical() bool {
	return f == Bottom || f == Right
}

func (f Face) String() string {
	switch f {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("face(%d)", uint8(f))
	}
}

// BoundaryPolicy decides how Top/Left lookups on the grid edge are answered.
// There is no default: every lookup names its policy.
type BoundaryPolicy bool

const (
	// EdgesOpen treats the north and west grid edges as open. Used for
	// connectivity queries.
	EdgesOpen BoundaryPolicy = false
	// EdgesWalled treats the grid edges as walls. Used for rendering and
	// movement.
	EdgesWalled BoundaryPolicy = true
)
