package defs

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/isoengine/tile"
)

type TileTypeSpec struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

type TileTypesSpec struct {
	Types []TileTypeSpec `yaml:"types"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("defs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("defs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTileTypes loads and validates a tile-type definition file.
func LoadTileTypes(filename string) (*TileTypesSpec, error) {
	spec, err := LoadSpec[TileTypesSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("defs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *TileTypesSpec) Validate() error {
	seen := make(map[int]string, len(s.Types))
	for _, t := range s.Types {
		if t.ID < 0 {
			return fmt.Errorf("tile type %q: negative id %d", t.Name, t.ID)
		}
		if t.Name == "" {
			return fmt.Errorf("tile type %d: empty name", t.ID)
		}
		if prev, ok := seen[t.ID]; ok {
			return fmt.Errorf("tile types %q and %q share id %d", prev, t.Name, t.ID)
		}
		seen[t.ID] = t.Name
	}
	return nil
}

// Apply registers every type in spec. Types whose image fails to load are
// still registered without a texture; their errors are joined and returned.
func Apply(reg *tile.Registry, spec *TileTypesSpec) error {
	var errs []error
	for _, t := range spec.Types {
		if err := reg.Register(t.ID, t.Name, t.Image); err != nil {
			log.Printf("defs: register %d (%s): %v", t.ID, t.Name, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Sync applies spec and unregisters ids it no longer lists. It returns the
// removed ids, sorted.
func Sync(reg *tile.Registry, spec *TileTypesSpec) ([]int, error) {
	keep := make(map[int]bool, len(spec.Types))
	for _, t := range spec.Types {
		keep[t.ID] = true
	}
	var removed []int
	for _, id := range reg.IDs() {
		if !keep[id] && reg.Unregister(id) {
			removed = append(removed, id)
		}
	}
	sort.Ints(removed)
	return removed, Apply(reg, spec)
}
