package world

import (
	"fmt"
	"image/color"
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/isoengine/iso"
	"github.com/milk9111/isoengine/tile"
)

// Map is a fixed-size layered grid of optional tiles with its own camera.
// Cells are stored flat, indexed by (layer, row, column).
type Map struct {
	width  int
	height int
	layers int

	tileW int
	tileH int
	proj  *iso.Projection

	cells []*tile.Tile
	types *tile.Registry

	camera     *Camera
	background color.Color
}

// NewMap creates an empty width x height map with the given number of
// layers. Tiles resolve their textures through types.
func NewMap(types *tile.Registry, width, height, layers, tileW, tileH int) (*Map, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, fmt.Errorf("world: new map %dx%dx%d: dimensions must be positive", width, height, layers)
	}
	proj, err := iso.NewProjection(iso.Diamond, tileW, tileH)
	if err != nil {
		return nil, fmt.Errorf("world: new map: %w", err)
	}
	return &Map{
		width:      width,
		height:     height,
		layers:     layers,
		tileW:      tileW,
		tileH:      tileH,
		proj:       proj,
		cells:      make([]*tile.Tile, width*height*layers),
		types:      types,
		camera:     NewCamera(),
		background: color.Black,
	}, nil
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return m.height
}

func (m *Map) LayerCount() int {
	return m.layers
}

func (m *Map) TileSize() (int, int) {
	return m.tileW, m.tileH
}

// Types returns the registry the map's tiles look their textures up in.
func (m *Map) Types() *tile.Registry {
	return m.types
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) index(x, y, layer int) (int, bool) {
	if !m.InBounds(x, y) || layer < 0 || layer >= m.layers {
		return 0, false
	}
	return (layer*m.height+y)*m.width + x, true
}

// SetTile places a new tile of type typeID at (x, y, layer), replacing any
// occupant. Out-of-range cells are logged and ignored.
func (m *Map) SetTile(x, y, layer, typeID int) {
	i, ok := m.index(x, y, layer)
	if !ok {
		log.Printf("world: set tile: cell (%d, %d, layer %d) out of bounds for %dx%dx%d map", x, y, layer, m.width, m.height, m.layers)
		return
	}
	m.cells[i] = tile.New(m.types, typeID, x, y, m.tileW, m.tileH)
}

// RemoveTile clears (x, y, layer). Out-of-range cells are ignored.
func (m *Map) RemoveTile(x, y, layer int) {
	i, ok := m.index(x, y, layer)
	if !ok {
		log.Printf("world: remove tile: cell (%d, %d, layer %d) out of bounds", x, y, layer)
		return
	}
	m.cells[i] = nil
}

// GetTile returns the occupant of (x, y, layer), or nil when the cell is
// empty or out of range.
func (m *Map) GetTile(x, y, layer int) *tile.Tile {
	i, ok := m.index(x, y, layer)
	if !ok {
		return nil
	}
	return m.cells[i]
}

func (m *Map) HasTile(x, y, layer int) bool {
	return m.GetTile(x, y, layer) != nil
}

// Fill places a tile of type typeID in every cell of layer.
func (m *Map) Fill(layer, typeID int) {
	if layer < 0 || layer >= m.layers {
		log.Printf("world: fill: layer %d out of range [0, %d)", layer, m.layers)
		return
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.SetTile(x, y, layer, typeID)
		}
	}
}

// Clear removes every tile on every layer.
func (m *Map) Clear() {
	for i := range m.cells {
		m.cells[i] = nil
	}
}

// Count returns the number of occupied cells on layer.
func (m *Map) Count(layer int) int {
	if layer < 0 || layer >= m.layers {
		return 0
	}
	n := 0
	start := layer * m.width * m.height
	for _, t := range m.cells[start : start+m.width*m.height] {
		if t != nil {
			n++
		}
	}
	return n
}

// GridToScreen returns the unzoomed screen position of cell (x, y).
func (m *Map) GridToScreen(x, y int) (int, int) {
	return m.proj.ToScreen(x, y)
}

// ScreenToGrid returns the cell whose bounding rectangle holds the unzoomed
// screen point (sx, sy). It does not account for the camera.
func (m *Map) ScreenToGrid(sx, sy float64) (int, int) {
	return m.proj.ToGrid(sx, sy)
}

// Camera returns the map's camera.
func (m *Map) Camera() *Camera {
	return m.camera
}

func (m *Map) SetCamera(x, y float64) {
	m.camera.Set(x, y)
}

func (m *Map) MoveCamera(dx, dy float64) {
	m.camera.Move(dx, dy)
}

func (m *Map) ZoomCamera(factor float64) {
	m.camera.ZoomBy(factor)
}

func (m *Map) BackgroundColor() color.Color {
	return m.background
}

func (m *Map) SetBackgroundColor(c color.Color) {
	if c == nil {
		c = color.Black
	}
	m.background = c
}

// Bounds returns the unzoomed screen-space footprint of every cell image,
// including the lift of the top layer. B is the smallest y.
func (m *Map) Bounds() cp.BB {
	leftX, _ := m.proj.ToScreen(0, m.height-1)
	rightX, _ := m.proj.ToScreen(m.width-1, 0)
	_, bottomY := m.proj.ToScreen(m.width-1, m.height-1)
	halfW := float64(m.tileW) / 2
	lift := float64((m.layers-1)*m.tileH) / 2
	return cp.BB{
		L: float64(leftX) - halfW,
		B: -lift,
		R: float64(rightX) + halfW,
		T: float64(bottomY + m.tileH),
	}
}

// CenterIn pans the camera so the map's footprint sits in the middle of a
// w x h viewport.
func (m *Map) CenterIn(w, h int) {
	m.camera.CenterOn(m.Bounds().Center(), w, h)
}
