package world

import "math"

// SelectedTile returns the cell on layer 0 whose diamond contains the screen
// point (sx, sy), taking the camera into account.
func (m *Map) SelectedTile(sx, sy float64) (int, int, bool) {
	return m.pick(sx, sy, 0)
}

// PickLayer is SelectedTile for tiles drawn on layer, which appear lifted by
// half a tile per layer.
func (m *Map) PickLayer(sx, sy float64, layer int) (int, int, bool) {
	if layer < 0 || layer >= m.layers {
		return 0, 0, false
	}
	return m.pick(sx, sy, layer)
}

// pick inverts the projection to find an approximate cell, then tests the
// diamonds of its 3x3 neighbourhood. The matrix inverse only finds the
// bounding rectangle; a point near a corner may belong to a neighbour. The
// first match in scan order (rows outer, columns inner) wins, which settles
// points on shared edges.
func (m *Map) pick(sx, sy float64, layer int) (int, int, bool) {
	zoom := m.camera.Zoom()
	px := (sx + m.camera.PanX) / zoom
	py := (sy+m.camera.PanY)/zoom + float64(layer*m.tileH)/2

	gx, gy := m.proj.ToGrid(px, py)

	halfW := float64(m.tileW) / 2
	halfH := float64(m.tileH) / 4
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cy := gx+dx, gy+dy
			if !m.InBounds(cx, cy) {
				continue
			}
			centerX, centerY := m.proj.ToScreenF(float64(cx), float64(cy))
			centerY += halfH
			if math.Abs(px-centerX)/halfW+math.Abs(py-centerY)/halfH <= 1 {
				return cx, cy, true
			}
		}
	}
	return 0, 0, false
}
