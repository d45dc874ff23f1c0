package main

import (
	"image"
	"testing"

	"github.com/milk9111/isoengine/config"
	"github.com/milk9111/isoengine/defs"
	"github.com/milk9111/isoengine/tile"
	"github.com/milk9111/isoengine/world"
)

type stubTexture struct {
	released int
}

func (s *stubTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 64, 64) }
func (s *stubTexture) Deallocate()             { s.released++ }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	types := tile.NewRegistry(tile.LoaderFunc(func(string) (tile.Texture, error) {
		return &stubTexture{}, nil
	}))
	for id, name := range map[int]string{1: "Grass", 2: "Water", 3: "Stone"} {
		_ = types.Register(id, name, name+".png")
	}

	lvl := world.NewLevel("test")
	for _, layers := range []int{3, 1} {
		m, err := world.NewMap(types, 8, 8, layers, 64, 64)
		if err != nil {
			t.Fatal(err)
		}
		lvl.AddMap(m)
	}
	return NewEngine(config.Default(), types, lvl)
}

func TestEnginePlaceAndRemove(t *testing.T) {
	e := newTestEngine(t)
	if e.Selection().TypeID != 1 {
		t.Fatalf("default type = %d, want the lowest id", e.Selection().TypeID)
	}

	in := &Input{CursorX: 0, CursorY: 112, PlacePressed: true, TypeSlot: 2}
	e.Apply(in)

	sel := e.Selection()
	if !sel.Valid || sel.X != 3 || sel.Y != 3 {
		t.Fatalf("selection = %+v, want (3, 3)", sel)
	}
	if tl := e.Map().GetTile(3, 3, 0); tl == nil || tl.ID() != 2 {
		t.Fatalf("expected Water at (3,3), got %v", tl)
	}

	e.Apply(&Input{CursorX: 0, CursorY: 112, RemovePressed: true})
	if e.Map().HasTile(3, 3, 0) {
		t.Fatalf("tile not removed")
	}
}

func TestEngineTypeSlots(t *testing.T) {
	e := newTestEngine(t)
	e.SelectType(3)

	// a zero Input selects nothing
	e.Apply(&Input{CursorX: -10000, CursorY: -10000})
	if e.Selection().TypeID != 3 {
		t.Fatalf("zero input changed the type to %d", e.Selection().TypeID)
	}

	cases := []struct {
		slot int
		want int
	}{
		{1, 1},
		{3, 3},
		{4, 3}, // past the last registered type
		{0, 3},
	}
	for _, c := range cases {
		e.Apply(&Input{CursorX: -10000, CursorY: -10000, TypeSlot: c.slot})
		if e.Selection().TypeID != c.want {
			t.Fatalf("slot %d: type = %d, want %d", c.slot, e.Selection().TypeID, c.want)
		}
	}
}

func TestEngineClickOutsideMap(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(&Input{CursorX: -10000, CursorY: -10000, PlacePressed: true})
	if e.Selection().Valid {
		t.Fatalf("expected no selection")
	}
	if e.Map().Count(0) != 0 {
		t.Fatalf("click outside placed a tile")
	}
}

func TestEngineLayerCycling(t *testing.T) {
	e := newTestEngine(t)
	for _, want := range []int{1, 2, 0, 1} {
		e.NextLayer()
		if e.Selection().Layer != want {
			t.Fatalf("layer = %d, want %d", e.Selection().Layer, want)
		}
	}

	// second map has one layer; the edited layer resets
	e.NextMap()
	if e.Level().CurrentIndex() != 1 || e.Selection().Layer != 0 {
		t.Fatalf("after next map: index=%d layer=%d", e.Level().CurrentIndex(), e.Selection().Layer)
	}
	e.NextLayer()
	if e.Selection().Layer != 0 {
		t.Fatalf("single-layer map should stay on layer 0")
	}
	e.NextMap()
	if e.Level().CurrentIndex() != 0 {
		t.Fatalf("next map should wrap")
	}
}

func TestEnginePlaceOnUpperLayer(t *testing.T) {
	e := newTestEngine(t)
	e.NextLayer()
	// layer 1 lifts (3,3) by half a tile
	e.Apply(&Input{CursorX: 0, CursorY: 80, PlacePressed: true})
	if !e.Map().HasTile(3, 3, 1) || e.Map().HasTile(3, 3, 0) {
		t.Fatalf("expected a tile on layer 1 only")
	}
}

func TestEngineZoomKeepsCursorPoint(t *testing.T) {
	e := newTestEngine(t)
	m := e.Map()
	m.SetCamera(-100, -50)

	e.ZoomAt(3, 400, 300)

	cam := m.Camera()
	if cam.Zoom() <= 1 {
		t.Fatalf("zoom did not increase: %v", cam.Zoom())
	}
	// the world point under the cursor before zooming was (300, 250)
	wx := (400 + cam.PanX) / cam.Zoom()
	wy := (300 + cam.PanY) / cam.Zoom()
	if diff(wx, 300) > 1e-9 || diff(wy, 250) > 1e-9 {
		t.Fatalf("cursor point moved to (%v, %v)", wx, wy)
	}
}

func TestEngineResizeRecentersAllMaps(t *testing.T) {
	e := newTestEngine(t)
	e.Resize(1280, 720)
	for i, m := range e.Level().AllMaps() {
		if m.Camera().PanX != -640 {
			t.Fatalf("map %d pan x = %v, want -640", i, m.Camera().PanX)
		}
	}

	m := e.Map()
	m.MoveCamera(30, 30)
	m.ZoomCamera(2)
	e.ResetCamera()
	if m.Camera().Zoom() != 1 || m.Camera().PanX != -640 {
		t.Fatalf("reset left zoom=%v pan=%v", m.Camera().Zoom(), m.Camera().PanX)
	}
}

func TestEngineReloadTypes(t *testing.T) {
	e := newTestEngine(t)
	e.SelectType(3)
	old, _ := e.Types().Get(2)
	oldTex := old.Texture().(*stubTexture)

	err := e.ReloadTypes(&defs.TileTypesSpec{Types: []defs.TileTypeSpec{
		{ID: 1, Name: "Grass", Image: "grass.png"},
		{ID: 2, Name: "Lava", Image: "lava.png"},
	}})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if oldTex.released != 1 {
		t.Fatalf("replaced texture released %d times", oldTex.released)
	}
	if e.Selection().TypeID != 1 {
		t.Fatalf("selected type should fall back to 1, got %d", e.Selection().TypeID)
	}
	if e.SelectType(3) {
		t.Fatalf("removed type should not be selectable")
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
