package world

import "github.com/milk9111/isoengine/tile"

// DrawTarget receives one draw call per visible tile.
type DrawTarget interface {
	DrawTile(tex tile.Texture, dst Rect)
}

// RenderWithCamera pans the camera to (panX, panY) and draws every occupied
// cell, layer by layer, then row by row, then column by column. Higher layers
// are drawn later and lifted by half a tile per layer. Tiles whose type has
// no texture are skipped.
func (m *Map) RenderWithCamera(target DrawTarget, panX, panY float64) {
	m.camera.Set(panX, panY)

	zoom := m.camera.Zoom()
	w := float64(m.tileW) * zoom
	h := float64(m.tileH) * zoom

	i := 0
	for layer := 0; layer < m.layers; layer++ {
		lift := float64(layer) * h / 2
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				t := m.cells[i]
				i++
				if t == nil {
					continue
				}
				tex := t.Texture()
				if tex == nil {
					continue
				}
				target.DrawTile(tex, Rect{
					X:      float64(t.ScreenX())*zoom - w/2 - panX,
					Y:      float64(t.ScreenY())*zoom - panY - lift,
					Width:  w,
					Height: h,
				})
			}
		}
	}
}

// Render draws the map with its own camera.
func (m *Map) Render(target DrawTarget) {
	m.RenderWithCamera(target, m.camera.PanX, m.camera.PanY)
}
