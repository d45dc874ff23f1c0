// Package tile holds the tile type registry and the per-cell Tile occupant.
package tile

import "github.com/milk9111/isoengine/iso"

// Tile occupies one grid cell. It records its type id and grid position and
// caches the matching screen position; it never owns a texture.
type Tile struct {
	id      int
	gridX   int
	gridY   int
	screenX int
	screenY int
	width   int
	height  int
	types   *Registry
}

// New creates a tile of type id at (gridX, gridY) for tiles of width x height
// pixels. Texture lookups go through types.
func New(types *Registry, id, gridX, gridY, width, height int) *Tile {
	t := &Tile{
		id:     id,
		gridX:  gridX,
		gridY:  gridY,
		width:  width,
		height: height,
		types:  types,
	}
	t.updateScreenPosition()
	return t
}

func (t *Tile) ID() int {
	return t.id
}

func (t *Tile) GridX() int {
	return t.gridX
}

func (t *Tile) GridY() int {
	return t.gridY
}

func (t *Tile) ScreenX() int {
	return t.screenX
}

func (t *Tile) ScreenY() int {
	return t.screenY
}

func (t *Tile) Width() int {
	return t.width
}

func (t *Tile) Height() int {
	return t.height
}

// SetPosition moves the tile and recomputes its cached screen position. It
// is the only way to change the grid coordinates.
func (t *Tile) SetPosition(gridX, gridY int) {
	t.gridX = gridX
	t.gridY = gridY
	t.updateScreenPosition()
}

// SetID changes the tile's type without moving it.
func (t *Tile) SetID(id int) {
	t.id = id
}

// Type looks up the tile's type record.
func (t *Tile) Type() (*TileType, bool) {
	return t.types.Get(t.id)
}

// Texture returns the texture of the tile's type, or nil when the type was
// never registered or its image failed to load.
func (t *Tile) Texture() Texture {
	tt, ok := t.Type()
	if !ok {
		return nil
	}
	return tt.Texture()
}

func (t *Tile) updateScreenPosition() {
	t.screenX, t.screenY = iso.ToScreen(t.width, t.height, t.gridX, t.gridY)
}
