package main

import (
	"log"
	"math"

	"github.com/milk9111/isoengine/config"
	"github.com/milk9111/isoengine/defs"
	"github.com/milk9111/isoengine/tile"
	"github.com/milk9111/isoengine/world"
)

// Selection is the editor state driven by input: the picked cell, the
// layer being edited and the tile type placed on click.
type Selection struct {
	X, Y   int
	Valid  bool
	Layer  int
	TypeID int
}

// Engine applies input to the active level. It holds no ebiten state so it
// runs the same in tests.
type Engine struct {
	cfg   *config.Config
	types *tile.Registry
	level *world.Level
	sel   Selection

	screenW int
	screenH int
}

func NewEngine(cfg *config.Config, types *tile.Registry, level *world.Level) *Engine {
	e := &Engine{cfg: cfg, types: types, level: level}
	if ids := types.IDs(); len(ids) > 0 {
		e.sel.TypeID = ids[0]
	}
	return e
}

func (e *Engine) Level() *world.Level {
	return e.level
}

func (e *Engine) Types() *tile.Registry {
	return e.types
}

func (e *Engine) Selection() Selection {
	return e.sel
}

// Map returns the level's current map.
func (e *Engine) Map() *world.Map {
	return e.level.CurrentMap()
}

// Apply runs one frame of input: camera, then commands, then picking and
// editing.
func (e *Engine) Apply(in *Input) {
	m := e.Map()
	if m == nil {
		return
	}

	if in.Wheel != 0 {
		e.ZoomAt(in.Wheel, float64(in.CursorX), float64(in.CursorY))
	}
	if in.PanX != 0 || in.PanY != 0 {
		m.MoveCamera(in.PanX, in.PanY)
	}

	if in.NextMap {
		e.NextMap()
	}
	if in.NextLayer {
		e.NextLayer()
	}
	if in.ResetCamera {
		e.ResetCamera()
	}
	if in.TypeSlot > 0 {
		ids := e.types.IDs()
		if in.TypeSlot <= len(ids) {
			e.SelectType(ids[in.TypeSlot-1])
		}
	}

	e.Pick(float64(in.CursorX), float64(in.CursorY))
	if !e.sel.Valid {
		return
	}
	m = e.Map()
	switch {
	case in.PlacePressed:
		m.SetTile(e.sel.X, e.sel.Y, e.sel.Layer, e.sel.TypeID)
	case in.RemovePressed:
		m.RemoveTile(e.sel.X, e.sel.Y, e.sel.Layer)
	}
}

// Pick updates the selected cell from a screen point on the current layer.
func (e *Engine) Pick(sx, sy float64) {
	m := e.Map()
	if m == nil {
		e.sel.Valid = false
		return
	}
	e.sel.X, e.sel.Y, e.sel.Valid = m.PickLayer(sx, sy, e.sel.Layer)
}

// ZoomAt zooms by one step per wheel notch, keeping the point under the
// cursor fixed on screen.
func (e *Engine) ZoomAt(notches, cx, cy float64) {
	m := e.Map()
	if m == nil || notches == 0 {
		return
	}
	cam := m.Camera()
	before := cam.Zoom()
	wx := (cx + cam.PanX) / before
	wy := (cy + cam.PanY) / before

	m.ZoomCamera(math.Pow(e.cfg.Camera.ZoomStep, notches))

	after := cam.Zoom()
	m.SetCamera(wx*after-cx, wy*after-cy)
}

// NextMap advances to the next map of the level. The edited layer is kept
// when the new map has it.
func (e *Engine) NextMap() {
	m, err := e.level.NextMap()
	if err != nil {
		return
	}
	if e.sel.Layer >= m.LayerCount() {
		e.sel.Layer = 0
	}
	e.sel.Valid = false
}

// NextLayer cycles the edited layer through the current map's layers.
func (e *Engine) NextLayer() {
	m := e.Map()
	if m == nil {
		return
	}
	e.sel.Layer = (e.sel.Layer + 1) % m.LayerCount()
}

// ResetCamera restores zoom and centers the current map in the window.
func (e *Engine) ResetCamera() {
	m := e.Map()
	if m == nil {
		return
	}
	m.Camera().Reset()
	m.CenterIn(e.screenW, e.screenH)
}

// Resize records the window size and re-centers every map when it changes.
func (e *Engine) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == e.screenW && h == e.screenH) {
		return
	}
	e.screenW, e.screenH = w, h
	e.level.Recenter(w, h)
}

// SelectType sets the type placed on click. Unknown ids are ignored.
func (e *Engine) SelectType(id int) bool {
	if _, ok := e.types.Get(id); !ok {
		return false
	}
	e.sel.TypeID = id
	return true
}

// ReloadTypes re-registers the tile types from spec, releasing replaced
// textures.
func (e *Engine) ReloadTypes(spec *defs.TileTypesSpec) error {
	removed, err := defs.Sync(e.types, spec)
	if len(removed) > 0 {
		log.Printf("engine: reload: removed tile types %v", removed)
	}
	if _, ok := e.types.Get(e.sel.TypeID); !ok {
		if ids := e.types.IDs(); len(ids) > 0 {
			e.sel.TypeID = ids[0]
		}
	}
	return err
}
