package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/isoengine/config"
	"github.com/milk9111/isoengine/defs"
	"github.com/milk9111/isoengine/levels"
	"github.com/milk9111/isoengine/render"
	"github.com/milk9111/isoengine/tile"
)

func main() {
	configPath := flag.String("config", "config.yaml", "engine configuration file")
	levelName := flag.String("level", "", "level script in levels/ (basename, .tengo optional)")
	debug := flag.Bool("debug", false, "show the debug panel")
	watch := flag.Bool("watch", false, "reload tile definitions when they change on disk")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		cfg.Level.Script = *levelName
	}
	if *debug {
		cfg.Debug.Panel = true
	}
	if *watch {
		cfg.Debug.Watch = true
	}

	types := tile.NewRegistry(&render.Loader{Dir: cfg.Tiles.AssetDir})
	defer types.Close()

	spec, err := defs.LoadTileTypes(cfg.Tiles.Types)
	if err != nil {
		log.Fatal(err)
	}
	if err := defs.Apply(types, spec); err != nil {
		log.Printf("main: some tile images failed to load: %v", err)
	}

	level, err := levels.Build(cfg.Level.Script, types, levels.Options{
		TileWidth:  cfg.Tiles.Width,
		TileHeight: cfg.Tiles.Height,
		MinZoom:    cfg.Camera.MinZoom,
		MaxZoom:    cfg.Camera.MaxZoom,
	})
	if err != nil {
		log.Fatal(err)
	}

	var watcher *defs.Watcher
	if cfg.Debug.Watch {
		if _, err := os.Stat(defs.Dir); err != nil {
			log.Printf("main: not watching %s: %v", defs.Dir, err)
		} else if watcher, err = defs.NewWatcher(defs.Dir); err != nil {
			log.Printf("main: watch %s: %v", defs.Dir, err)
		} else {
			defer watcher.Close()
		}
	}

	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg, NewEngine(cfg, types, level), watcher)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
