package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/isoengine/assets"
	"github.com/milk9111/isoengine/tile"
)

// Loader creates a fresh texture per call: embedded assets first, then the
// filesystem. It never caches, so every texture it returns can be handed to
// a tile.Registry to own and release.
type Loader struct {
	// Dir is searched before the working directory when set.
	Dir string
}

var _ tile.Loader = (*Loader)(nil)

func (l *Loader) Load(path string) (tile.Texture, error) {
	img, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func (l *Loader) decode(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("render: empty image path")
	}
	if img, err := assets.DecodeImage(path); err == nil {
		return img, nil
	}
	for _, p := range l.candidates(path) {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("render: image %s not found", path)
}

func (l *Loader) candidates(path string) []string {
	tried := []string{}
	if l.Dir != "" {
		tried = append(tried, filepath.Join(l.Dir, path))
	}
	return append(tried, path, filepath.Join("assets", path), filepath.Base(path))
}
