package world

import (
	"image"
	"testing"

	"github.com/milk9111/isoengine/tile"
)

type fakeTexture struct {
	name string
}

func (f *fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 64, 64) }
func (f *fakeTexture) Deallocate()             {}

type drawCall struct {
	tex tile.Texture
	dst Rect
}

type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawTile(tex tile.Texture, dst Rect) {
	r.calls = append(r.calls, drawCall{tex: tex, dst: dst})
}

// newTestRegistry registers one fake texture per name, with ids starting at 1.
func newTestRegistry(names ...string) *tile.Registry {
	reg := tile.NewRegistry(tile.LoaderFunc(func(path string) (tile.Texture, error) {
		return &fakeTexture{name: path}, nil
	}))
	for i, n := range names {
		_ = reg.Register(i+1, n, n)
	}
	return reg
}

func newTestMap(t *testing.T, w, h, layers int) *Map {
	t.Helper()
	m, err := NewMap(newTestRegistry("grass", "water", "stone"), w, h, layers, 64, 64)
	if err != nil {
		t.Fatalf("new map: %v", err)
	}
	return m
}

func textureName(tex tile.Texture) string {
	if f, ok := tex.(*fakeTexture); ok {
		return f.name
	}
	return ""
}
