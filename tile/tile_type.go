package tile

// TileType is the shared record every tile of one kind points at. Its name
// and path never change. The texture belongs to the Registry that created the
// record: once the type is replaced, unregistered or the registry closed,
// Texture returns nil, so holders of a stale record draw nothing instead of a
// freed image.
type TileType struct {
	name    string
	path    string
	texture Texture
}

func (t *TileType) Name() string {
	return t.name
}

// Path is the image path the texture was loaded from, if any.
func (t *TileType) Path() string {
	return t.path
}

// Texture returns nil when the image failed to load or the record has been
// released by its Registry.
func (t *TileType) Texture() Texture {
	if t == nil {
		return nil
	}
	return t.texture
}

// release deallocates the texture once; later calls are no-ops.
func (t *TileType) release() {
	if t.texture == nil {
		return
	}
	t.texture.Deallocate()
	t.texture = nil
}
