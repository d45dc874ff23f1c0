package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/isoengine/tile"
	"github.com/milk9111/isoengine/world"
)

// Screen draws tiles onto an ebiten image.
type Screen struct {
	Target *ebiten.Image
	Filter ebiten.Filter
}

var _ world.DrawTarget = (*Screen)(nil)

func NewScreen(target *ebiten.Image) *Screen {
	return &Screen{Target: target, Filter: ebiten.FilterNearest}
}

// DrawTile stretches tex over dst. Textures that were not created by ebiten,
// and tiles entirely off the target, are skipped.
func (s *Screen) DrawTile(tex tile.Texture, dst world.Rect) {
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil || s.Target == nil {
		return
	}
	b := s.Target.Bounds()
	view := world.Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	if !dst.Intersects(view) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = s.Filter
	op.GeoM = placement(img.Bounds().Dx(), img.Bounds().Dy(), dst)
	s.Target.DrawImage(img, op)
}

// placement maps a srcW x srcH image onto dst.
func placement(srcW, srcH int, dst world.Rect) ebiten.GeoM {
	var g ebiten.GeoM
	if srcW > 0 && srcH > 0 {
		g.Scale(dst.Width/float64(srcW), dst.Height/float64(srcH))
	}
	g.Translate(dst.X, dst.Y)
	return g
}
