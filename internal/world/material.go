package world

import "github.com/vovakirdan/mazewalk/internal/core"

// Material is the surface look of a mesh as drawn by the terminal renderer.
type Material struct {
	Name  string
	Color core.Color
	// Glyph fills lit surfaces. Dim is used outside the light radius.
	Glyph rune
	Dim   rune
}

// MaterialSet is every material a scene needs. Scene setup builds one and
// hands it to NewScene; walls keep pointers into it.
type MaterialSet struct {
	Wall     *Material
	Boundary *Material
	Floor    *Material
	Ceiling  *Material
	Light    *Material
}

// DefaultMaterials returns wallpaper walls, carpet floor and office tile
// ceiling lights.
func DefaultMaterials() MaterialSet {
	return MaterialSet{
		Wall:     &Material{Name: "wallpaper", Color: core.ColorYellow, Glyph: '█', Dim: '▓'},
		Boundary: &Material{Name: "wallpaper-edge", Color: core.ColorOrange, Glyph: '█', Dim: '▒'},
		Floor:    &Material{Name: "carpet", Color: core.ColorDarkGray, Glyph: '·', Dim: ' '},
		Ceiling:  &Material{Name: "office-tile", Color: core.ColorGray, Glyph: ' ', Dim: ' '},
		Light:    &Material{Name: "panel-light", Color: core.ColorBrightWhite, Glyph: '∘', Dim: ' '},
	}
}

// withDefaults fills nil entries from DefaultMaterials.
func (m MaterialSet) withDefaults() MaterialSet {
	d := DefaultMaterials()
	if m.Wall == nil {
		m.Wall = d.Wall
	}
	if m.Boundary == nil {
		m.Boundary = m.Wall
	}
	if m.Floor == nil {
		m.Floor = d.Floor
	}
	if m.Ceiling == nil {
		m.Ceiling = d.Ceiling
	}
	if m.Light == nil {
		m.Light = d.Light
	}
	return m
}
