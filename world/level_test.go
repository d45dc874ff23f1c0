package world

import (
	"errors"
	"testing"
)

func TestLevelNextMapWraps(t *testing.T) {
	l := NewLevel("demo")
	maps := []*Map{newTestMap(t, 2, 2, 1), newTestMap(t, 3, 3, 1), newTestMap(t, 4, 4, 1)}
	for _, m := range maps {
		l.AddMap(m)
	}

	if l.CurrentMap() != maps[0] {
		t.Fatalf("first map should be current")
	}
	for i := 1; i <= 4; i++ {
		m, err := l.NextMap()
		if err != nil {
			t.Fatalf("next map: %v", err)
		}
		want := maps[i%3]
		if m != want || l.CurrentMap() != want || l.CurrentIndex() != i%3 {
			t.Fatalf("step %d: cursor at %d", i, l.CurrentIndex())
		}
	}
}

func TestLevelEmpty(t *testing.T) {
	l := NewLevel("empty")
	if l.CurrentMap() != nil {
		t.Fatalf("expected nil current map")
	}
	if _, err := l.NextMap(); !errors.Is(err, ErrEmptyLevel) {
		t.Fatalf("expected ErrEmptyLevel, got %v", err)
	}
	if l.CurrentIndex() != 0 {
		t.Fatalf("cursor moved on empty level")
	}
	if len(l.AllMaps()) != 0 {
		t.Fatalf("expected no maps")
	}
	l.Recenter(800, 600)
}

func TestLevelMapAccess(t *testing.T) {
	l := NewLevel("demo")
	a, b := newTestMap(t, 2, 2, 1), newTestMap(t, 2, 2, 1)
	l.AddMap(a)
	l.AddMap(nil)
	l.AddMap(b)

	if l.Len() != 2 {
		t.Fatalf("nil map should not be added, len=%d", l.Len())
	}
	for _, i := range []int{-1, 2} {
		if l.Map(i) != nil {
			t.Fatalf("Map(%d) should be nil", i)
		}
		if l.Select(i) {
			t.Fatalf("Select(%d) should fail", i)
		}
	}
	if !l.Select(1) || l.CurrentMap() != b {
		t.Fatalf("Select(1) did not move the cursor")
	}

	snap := l.AllMaps()
	snap[0] = nil
	if l.Map(0) != a {
		t.Fatalf("AllMaps returned the level's own slice")
	}
}

func TestLevelRecenterAppliesToAllMaps(t *testing.T) {
	l := NewLevel("demo")
	a, b := newTestMap(t, 8, 8, 1), newTestMap(t, 4, 4, 1)
	l.AddMap(a)
	l.AddMap(b)
	b.ZoomCamera(2)

	l.Recenter(1280, 720)

	for i, m := range l.AllMaps() {
		bb := m.Bounds()
		c := bb.Center()
		zoom := m.Camera().Zoom()
		// the footprint center, zoomed and panned, must land mid-viewport.
		sx := c.X*zoom - m.Camera().PanX
		sy := c.Y*zoom - m.Camera().PanY
		if sx != 640 || sy != 360 {
			t.Fatalf("map %d center drawn at (%v, %v)", i, sx, sy)
		}
	}
}
