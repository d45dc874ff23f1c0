package levels

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/milk9111/isoengine/tile"
	"github.com/milk9111/isoengine/world"
)

type stubTexture struct{}

func (stubTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 64, 64) }
func (stubTexture) Deallocate()             {}

func testRegistry() *tile.Registry {
	reg := tile.NewRegistry(nil)
	for id, name := range map[int]string{1: "Grass", 2: "Water", 3: "Stone", 4: "Sand", 5: "Lava"} {
		reg.RegisterTexture(id, name, stubTexture{})
	}
	return reg
}

var testOpts = Options{TileWidth: 64, TileHeight: 64, MinZoom: 0.5, MaxZoom: 4}

func TestBuildDemo(t *testing.T) {
	lvl, err := Build("demo", testRegistry(), testOpts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if lvl.Name() != "demo" || lvl.Len() != 2 {
		t.Fatalf("level %q with %d maps", lvl.Name(), lvl.Len())
	}

	island := lvl.Map(0)
	if island.Width() != 10 || island.Height() != 10 || island.LayerCount() != 3 {
		t.Fatalf("island is %dx%dx%d", island.Width(), island.Height(), island.LayerCount())
	}
	if island.Count(0) != 99 {
		t.Fatalf("island layer 0 has %d tiles, want 99", island.Count(0))
	}
	if tl := island.GetTile(4, 4, 0); tl == nil || tl.ID() != 1 {
		t.Fatalf("expected grass at (4,4), got %v", tl)
	}
	if tl := island.GetTile(3, 1, 0); tl == nil || tl.ID() != 4 {
		t.Fatalf("expected sand at (3,1), got %v", tl)
	}
	if island.Count(1) != 2 || island.Count(2) != 2 {
		t.Fatalf("tower counts = %d, %d", island.Count(1), island.Count(2))
	}
	if island.BackgroundColor() != colornames.Midnightblue {
		t.Fatalf("background = %v", island.BackgroundColor())
	}

	stripes := lvl.Map(1)
	if tl := stripes.GetTile(1, 0, 0); tl == nil || tl.ID() != 4 {
		t.Fatalf("expected sand at (1,0), got %v", tl)
	}
	if stripes.BackgroundColor() != (color.RGBA{R: 0x20, G: 0x24, B: 0x28, A: 0xff}) {
		t.Fatalf("background = %v", stripes.BackgroundColor())
	}
}

func TestBuildSourceErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"compile", "engine.new_map(", "compile"},
		{"no_maps", "x := 1", world.ErrEmptyLevel.Error()},
		{"bad_map_index", "engine.new_map(2, 2, 1)\nengine.set_tile(3, 0, 0, 0, 1)", "map 3 does not exist"},
		{"wrong_arg_count", "engine.new_map(2, 2)", "wrong number of arguments"},
		{"wrong_arg_type", "engine.new_map(\"a\", 2, 1)", "width"},
		{"bad_dimensions", "engine.new_map(0, 2, 1)", "dimensions must be positive"},
		{"unknown_type", "engine.new_map(2, 2, 1)\nengine.type_id(\"Marble\")", "unknown tile type"},
		{"bad_color", "m := engine.new_map(2, 2, 1)\nengine.background(m, \"plaid\")", "unknown color"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := BuildSource(c.name, []byte(c.src), testRegistry(), testOpts)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestBuildSourceOutOfBoundsIsNotFatal(t *testing.T) {
	src := `
m := engine.new_map(3, 3, 1)
engine.set_tile(m, 5, 5, 0, 1)
engine.set_tile(m, 1, 1, 2, 1)
engine.set_tile(m, 1, 1, 0, 1)
engine.clear(m)
engine.fill(m, 0, engine.type_id("stone"))
`
	lvl, err := BuildSource("oob", []byte(src), testRegistry(), testOpts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if lvl.Name() != "oob" {
		t.Fatalf("name = %q", lvl.Name())
	}
	m := lvl.CurrentMap()
	if m.Count(0) != 9 || m.GetTile(2, 2, 0).ID() != 3 {
		t.Fatalf("unexpected map contents: %d tiles", m.Count(0))
	}
	if lo, hi := m.Camera().ZoomLimits(); lo != 0.5 || hi != 4 {
		t.Fatalf("zoom limits = [%v, %v]", lo, hi)
	}
}

func TestLoadScriptPrefersDisk(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	src := "engine.level_name(\"override\")\nengine.new_map(1, 1, 1)\n"
	if err := os.WriteFile(filepath.Join(Dir, "demo.tengo"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err := Build("levels/demo.tengo", testRegistry(), testOpts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if lvl.Name() != "override" || lvl.Len() != 1 {
		t.Fatalf("disk script not used: %q, %d maps", lvl.Name(), lvl.Len())
	}

	if _, err := Build("nope", testRegistry(), testOpts); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	found := false
	for _, n := range names {
		if n == "demo.tengo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("demo.tengo not embedded: %v", names)
	}
}
