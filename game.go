package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/isoengine/config"
	"github.com/milk9111/isoengine/defs"
	"github.com/milk9111/isoengine/render"
)

type Game struct {
	frames int

	cfg     *config.Config
	engine  *Engine
	input   *Input
	panel   *debugPanel
	watcher *defs.Watcher

	showPanel bool
}

func NewGame(cfg *config.Config, engine *Engine, watcher *defs.Watcher) *Game {
	return &Game{
		cfg:       cfg,
		engine:    engine,
		input:     NewInput(cfg.Camera.PanSpeed),
		panel:     newDebugPanel(engine),
		watcher:   watcher,
		showPanel: cfg.Debug.Panel,
	}
}

func (g *Game) Update() error {
	g.input.Update()
	return g.step()
}

// step advances one frame from the input already sampled.
func (g *Game) step() error {
	g.frames++
	if g.input.Quit {
		return ebiten.Termination
	}

	if g.input.TogglePanel {
		g.showPanel = !g.showPanel
	}
	if g.showPanel {
		g.panel.ui.Update()
		if g.panel.contains(g.input.CursorX, g.input.CursorY) {
			g.input.SuppressPointer()
		}
	}

	g.engine.Apply(g.input)

	if g.watcher != nil && g.watcher.Poll() {
		g.reloadTypes()
	}
	if g.showPanel {
		g.panel.refresh(g.engine)
	}
	return nil
}

func (g *Game) reloadTypes() {
	spec, err := defs.LoadTileTypes(g.cfg.Tiles.Types)
	if err != nil {
		log.Printf("game: reload tile types: %v", err)
		return
	}
	if err := g.engine.ReloadTypes(spec); err != nil {
		log.Printf("game: reload tile types: %v", err)
	}
	g.panel = newDebugPanel(g.engine)
	log.Printf("game: reloaded %d tile types", g.engine.Types().Len())
}

func (g *Game) Draw(screen *ebiten.Image) {
	m := g.engine.Map()
	if m == nil {
		return
	}
	screen.Fill(m.BackgroundColor())
	m.Render(render.NewScreen(screen))

	if sel := g.engine.Selection(); sel.Valid {
		render.DrawSelection(screen, m, sel.X, sel.Y, sel.Layer, colornames.Yellow)
	}

	if g.showPanel {
		g.panel.ui.Draw(screen)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  Mouse: %d, %d", ebiten.ActualFPS(), g.input.CursorX, g.input.CursorY), w-220, h-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.engine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
