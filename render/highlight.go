package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/isoengine/world"
)

// SelectionDiamond returns the top, right, bottom and left corners, in
// screen pixels, of the diamond drawn for cell (x, y) on layer.
func SelectionDiamond(m *world.Map, x, y, layer int) [4][2]float64 {
	tw, th := m.TileSize()
	cam := m.Camera()
	zoom := cam.Zoom()

	sx, sy := m.GridToScreen(x, y)
	cx := float64(sx)*zoom - cam.PanX
	cy := (float64(sy)+float64(th)/4)*zoom - cam.PanY - float64(layer*th)*zoom/2
	hw := float64(tw) * zoom / 2
	hh := float64(th) * zoom / 4

	return [4][2]float64{
		{cx, cy - hh},
		{cx + hw, cy},
		{cx, cy + hh},
		{cx - hw, cy},
	}
}

// DrawSelection outlines the diamond of cell (x, y) on layer.
func DrawSelection(screen *ebiten.Image, m *world.Map, x, y, layer int, clr color.Color) {
	pts := SelectionDiamond(m, x, y, layer)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 2, clr, true)
	}
}
