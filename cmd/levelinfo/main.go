package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/milk9111/isoengine/assets"
	"github.com/milk9111/isoengine/config"
	"github.com/milk9111/isoengine/defs"
	"github.com/milk9111/isoengine/levels"
	"github.com/milk9111/isoengine/tile"
	"github.com/milk9111/isoengine/world"
)

// decodedTexture is a CPU-side texture, enough to check that every tile image
// decodes without opening a window.
type decodedTexture struct {
	img image.Image
}

func (d *decodedTexture) Bounds() image.Rectangle { return d.img.Bounds() }
func (d *decodedTexture) Deallocate()             { d.img = nil }

func decodeLoader(path string) (tile.Texture, error) {
	img, err := assets.DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return &decodedTexture{img: img}, nil
}

func main() {
	configPath := flag.String("config", "config.yaml", "engine configuration file")
	levelName := flag.String("level", "", "level script (defaults to the configured one)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		cfg.Level.Script = *levelName
	}

	types := tile.NewRegistry(tile.LoaderFunc(decodeLoader))
	defer types.Close()

	spec, err := defs.LoadTileTypes(cfg.Tiles.Types)
	if err != nil {
		log.Fatal(err)
	}
	if err := defs.Apply(types, spec); err != nil {
		log.Printf("levelinfo: %v", err)
	}

	lvl, err := levels.Build(cfg.Level.Script, types, levels.Options{
		TileWidth:  cfg.Tiles.Width,
		TileHeight: cfg.Tiles.Height,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := report(os.Stdout, lvl, types); err != nil {
		log.Fatal(err)
	}
}

// report prints one block per map: size, screen footprint, per-layer
// occupancy and a count per tile type.
func report(w io.Writer, lvl *world.Level, types *tile.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "level %q: %d maps\n", lvl.Name(), lvl.Len())

	for i, m := range lvl.AllMaps() {
		bb := m.Bounds()
		fmt.Fprintf(tw, "\nmap %d\t%dx%d\t%d layers\n", i, m.Width(), m.Height(), m.LayerCount())
		fmt.Fprintf(tw, "footprint\t[%.0f, %.0f] - [%.0f, %.0f]\n", bb.L, bb.B, bb.R, bb.T)

		byType := map[int]int{}
		for layer := 0; layer < m.LayerCount(); layer++ {
			fmt.Fprintf(tw, "layer %d\t%d tiles\n", layer, m.Count(layer))
			for y := 0; y < m.Height(); y++ {
				for x := 0; x < m.Width(); x++ {
					if t := m.GetTile(x, y, layer); t != nil {
						byType[t.ID()]++
					}
				}
			}
		}

		ids := make([]int, 0, len(byType))
		for id := range byType {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			name := "(unregistered)"
			if tt, ok := types.Get(id); ok {
				name = tt.Name()
				if tt.Texture() == nil {
					name += " (no image)"
				}
			}
			fmt.Fprintf(tw, "  type %d\t%s\t%d\n", id, name, byType[id])
		}
	}
	return tw.Flush()
}
