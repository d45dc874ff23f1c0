package world

import (
	"errors"
	"log"
)

// ErrEmptyLevel is returned when the map cursor is moved on a level with no
// maps.
var ErrEmptyLevel = errors.New("world: level has no maps")

// Level is an ordered list of maps with a current-map cursor. The level owns
// its maps.
type Level struct {
	name    string
	maps    []*Map
	current int
}

func NewLevel(name string) *Level {
	return &Level{name: name}
}

func (l *Level) Name() string {
	return l.name
}

func (l *Level) SetName(name string) {
	l.name = name
}

func (l *Level) Len() int {
	return len(l.maps)
}

// AddMap appends m. The first map added becomes current.
func (l *Level) AddMap(m *Map) {
	if m == nil {
		return
	}
	l.maps = append(l.maps, m)
}

// CurrentMap returns the map under the cursor, or nil for an empty level.
func (l *Level) CurrentMap() *Map {
	if len(l.maps) == 0 {
		return nil
	}
	return l.maps[l.current]
}

func (l *Level) CurrentIndex() int {
	return l.current
}

// Map returns the i-th map, or nil when i is out of range.
func (l *Level) Map(i int) *Map {
	if i < 0 || i >= len(l.maps) {
		return nil
	}
	return l.maps[i]
}

// NextMap advances the cursor, wrapping after the last map.
func (l *Level) NextMap() (*Map, error) {
	if len(l.maps) == 0 {
		log.Printf("world: level %q: next map: %v", l.name, ErrEmptyLevel)
		return nil, ErrEmptyLevel
	}
	l.current = (l.current + 1) % len(l.maps)
	return l.maps[l.current], nil
}

// Select moves the cursor to map i. It reports false when i is out of range.
func (l *Level) Select(i int) bool {
	if i < 0 || i >= len(l.maps) {
		return false
	}
	l.current = i
	return true
}

// AllMaps returns a snapshot of the level's maps. Changing the returned
// slice does not change the level.
func (l *Level) AllMaps() []*Map {
	out := make([]*Map, len(l.maps))
	copy(out, l.maps)
	return out
}

// Recenter centers every map of the level in a w x h viewport.
func (l *Level) Recenter(w, h int) {
	for _, m := range l.maps {
		m.CenterIn(w, h)
	}
}
