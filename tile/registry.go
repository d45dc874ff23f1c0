package tile

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoLoader is returned by Register when the registry has no image loader.
var ErrNoLoader = errors.New("tile: registry has no image loader")

// Registry is the flyweight table of tile types keyed by a small integer id.
// It owns every texture it creates: a texture is released exactly once, when
// its id is registered again, unregistered, or the registry is closed.
//
// A Registry is not safe for concurrent use; it is touched only from the frame
// loop.
type Registry struct {
	loader Loader
	types  map[int]*TileType
}

// NewRegistry creates an empty registry that loads textures through loader.
func NewRegistry(loader Loader) *Registry {
	return &Registry{
		loader: loader,
		types:  make(map[int]*TileType),
	}
}

// Register loads the image at path and stores it as type id, replacing and
// releasing any previous type with the same id.
//
// If the image cannot be loaded the type is still registered, with a nil
// texture, and the load error is returned; tiles of that type draw nothing.
func (r *Registry) Register(id int, name, path string) error {
	var (
		tex Texture
		err error
	)
	if r.loader == nil {
		err = ErrNoLoader
	} else {
		tex, err = r.loader.Load(path)
		if err != nil {
			tex = nil
			err = fmt.Errorf("tile: load %s for type %d (%s): %w", path, id, name, err)
		}
	}
	r.store(id, &TileType{name: name, path: path, texture: tex})
	return err
}

// RegisterTexture stores an already built texture as type id. The registry
// takes ownership of tex.
func (r *Registry) RegisterTexture(id int, name string, tex Texture) {
	r.store(id, &TileType{name: name, texture: tex})
}

func (r *Registry) store(id int, t *TileType) {
	if old, ok := r.types[id]; ok {
		// a loader may hand back the same handle for the same path
		if old.texture == t.texture {
			old.texture = nil
		}
		old.release()
	}
	r.types[id] = t
}

// Get returns the type registered under id.
func (r *Registry) Get(id int) (*TileType, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.types[id]
	return t, ok
}

// Unregister releases and removes type id. It reports whether id was present.
func (r *Registry) Unregister(id int) bool {
	t, ok := r.types[id]
	if !ok {
		return false
	}
	t.release()
	delete(r.types, id)
	return true
}

// IDs returns every registered id in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// All returns a snapshot of every registered type, ordered by id.
func (r *Registry) All() []*TileType {
	ids := r.IDs()
	out := make([]*TileType, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.types[id])
	}
	return out
}

// IDFor finds the id a type record is registered under. It compares by
// identity and walks the whole table, so keep it off the hot path.
func (r *Registry) IDFor(t *TileType) (int, bool) {
	if t == nil {
		return 0, false
	}
	for id, candidate := range r.types {
		if candidate == t {
			return id, true
		}
	}
	return 0, false
}

func (r *Registry) Len() int {
	return len(r.types)
}

// Close releases every texture and empties the registry.
func (r *Registry) Close() {
	for id, t := range r.types {
		t.release()
		delete(r.types, id)
	}
}
