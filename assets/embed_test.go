package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"tiles/grass.png", "tiles/grass.png"},
		{"assets/tiles/grass.png", "tiles/grass.png"},
		{"/home/me/game/assets/tiles/water.png", "tiles/water.png"},
		{"/tmp/lava.png", "lava.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEmbeddedTilesDecode(t *testing.T) {
	tiles := Tiles()
	if len(tiles) == 0 {
		t.Fatalf("no embedded tiles")
	}
	for _, p := range tiles {
		img, err := DecodeImage(p)
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
			t.Fatalf("%s is %dx%d, want 64x64", p, b.Dx(), b.Dy())
		}
	}
}

func TestDecodeMissing(t *testing.T) {
	if _, err := DecodeImage("tiles/nope.png"); err == nil {
		t.Fatalf("expected error for a missing asset")
	}
}
