package tile

import "testing"

func TestNewTileCachesScreenPosition(t *testing.T) {
	cases := []struct {
		name           string
		gx, gy         int
		wantSX, wantSY int
	}{
		{"origin", 0, 0, 0, 0},
		{"x_axis", 2, 0, 64, 32},
		{"y_axis", 0, 2, -64, 32},
		{"diagonal", 3, 3, 0, 96},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tl := New(nil, 1, c.gx, c.gy, 64, 64)
			if tl.ScreenX() != c.wantSX || tl.ScreenY() != c.wantSY {
				t.Fatalf("screen = (%d, %d), want (%d, %d)", tl.ScreenX(), tl.ScreenY(), c.wantSX, c.wantSY)
			}
		})
	}
}

func TestSetPositionRecomputesScreen(t *testing.T) {
	tl := New(nil, 1, 0, 0, 64, 64)
	tl.SetPosition(4, 1)
	if tl.GridX() != 4 || tl.GridY() != 1 {
		t.Fatalf("grid = (%d, %d), want (4, 1)", tl.GridX(), tl.GridY())
	}
	if tl.ScreenX() != 96 || tl.ScreenY() != 80 {
		t.Fatalf("screen = (%d, %d), want (96, 80)", tl.ScreenX(), tl.ScreenY())
	}
}

func TestTileTextureLookup(t *testing.T) {
	loader := &fakeLoader{}
	reg := NewRegistry(loader)
	tl := New(reg, 9, 1, 1, 64, 64)

	if tl.Texture() != nil {
		t.Fatalf("expected nil texture for an unregistered type")
	}

	_ = reg.Register(9, "Stone", "stone.png")
	if tl.Texture() != loader.loaded[0] {
		t.Fatalf("expected the registered texture")
	}

	_ = reg.Register(9, "Brick", "brick.png")
	if tl.Texture() != loader.loaded[1] {
		t.Fatalf("expected the replacement texture after re-registering")
	}

	tl.SetID(10)
	if tl.ID() != 10 || tl.Texture() != nil {
		t.Fatalf("expected no texture after re-typing to an unknown id")
	}
}
