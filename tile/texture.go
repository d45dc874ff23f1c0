package tile

import "image"

// Texture is a drawable image handle. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
	// Deallocate releases the underlying GPU resource.
	Deallocate()
}

// Loader builds a texture from an image path.
type Loader interface {
	Load(path string) (Texture, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(path string) (Texture, error)

func (f LoaderFunc) Load(path string) (Texture, error) {
	return f(path)
}
