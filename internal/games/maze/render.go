package maze

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/world"
)

const (
	glyphPlayer = '@'
	glyphExit   = 'E'
)

// view maps screen cells to floor coordinates around the player. One
// column is a quarter cell and one row half a cell, which keeps cells
// roughly square in a terminal.
type view struct {
	cx, cy     int
	colW, rowH float64
	origin     core.Vec3
	top        int
}

func (g *Game) view(dst *core.Screen) view {
	s := g.cfg.Grid.Scale
	return view{
		cx:     dst.Width() / 2,
		cy:     hudHeight + (dst.Height()-hudHeight)/2,
		colW:   s / 4,
		rowH:   s / 2,
		origin: g.pos,
		top:    hudHeight,
	}
}

func (v view) world(col, row int) (float64, float64) {
	return v.origin.X + float64(col-v.cx)*v.colW, v.origin.Z + float64(row-v.cy)*v.rowH
}

func (v view) screen(p core.Vec3) (int, int) {
	col := v.cx + int(math.Round((p.X-v.origin.X)/v.colW))
	row := v.cy + int(math.Round((p.Z-v.origin.Z)/v.rowH))
	return col, row
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.scene == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	v := g.view(dst)
	radius := g.lightRadius()
	mats := g.scene.Materials()

	visible := func(x, z float64) (lit, seen bool) {
		d := math.Hypot(x-g.pos.X, z-g.pos.Z)
		return d <= radius*0.6, d <= radius
	}

	for row := v.top; row < dst.Height(); row++ {
		for col := range dst.Width() {
			x, z := v.world(col, row)
			lit, seen := visible(x, z)
			if !seen {
				continue
			}
			box := world.AABB{
				MinX: x - v.colW/2, MaxX: x + v.colW/2,
				MinZ: z - v.rowH/2, MaxZ: z + v.rowH/2,
			}
			if w, ok := g.scene.Overlaps(box); ok {
				drawMaterial(dst, col, row, w.Mesh.Material, lit)
			} else if g.cfg.Lighting.Dark {
				drawMaterial(dst, col, row, mats.Floor, lit)
			}
		}
	}

	for _, l := range g.scene.Lights() {
		col, row := v.screen(l)
		if row < v.top {
			continue
		}
		if lit, _ := visible(l.X, l.Z); lit {
			drawMaterial(dst, col, row, mats.Light, true)
		}
	}

	exit := g.layout.CellCenter(g.exit)
	if col, row := v.screen(exit); row >= v.top {
		if _, seen := visible(exit.X, exit.Z); seen {
			dst.SetColor(col, row, glyphExit, core.ColorGreen)
		}
	}

	dst.SetColor(v.cx, v.cy, glyphPlayer, core.ColorBrightYellow)

	switch {
	case g.won:
		g.renderOverlay(dst, "You escaped!", fmt.Sprintf("Score: %d  Time: %.1fs", g.score, g.Seconds()), "Press R to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func drawMaterial(dst *core.Screen, col, row int, m *world.Material, lit bool) {
	glyph := m.Glyph
	if !lit {
		glyph = m.Dim
	}
	dst.SetColor(col, row, glyph, m.Color)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	cells := g.maze.Width() * g.maze.Height()
	hud := fmt.Sprintf(" %s %dx%d | Time: %.1fs | Explored: %d/%d",
		g.Title(), g.maze.Width(), g.maze.Height(), g.Seconds(), g.visited.Size(), cells)
	if g.running && g.hold > 0 {
		hud += " | RUN"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
