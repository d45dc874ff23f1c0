package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// debugPanel is the map info and tile palette overlay.
type debugPanel struct {
	ui    *ebitenui.UI
	panel *widget.Container

	mapInfo   *widget.Text
	sizeInfo  *widget.Text
	layerInfo *widget.Text
	zoomInfo  *widget.Text
	cellInfo  *widget.Text
	typeInfo  *widget.Text
}

var (
	panelTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelBtnColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	panelHotColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x77, A: 0xff}
)

// newDebugPanel builds the panel in the top-left corner. The palette holds
// one button per registered tile type.
func newDebugPanel(e *Engine) *debugPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(panelBtnColor),
		Hover:   imageui.NewNineSliceColor(panelHotColor),
		Pressed: imageui.NewNineSliceColor(panelHotColor),
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: panelTextColor}

	d := &debugPanel{}
	label := func() *widget.Text {
		return widget.NewText(widget.TextOpts.Text("", &face, panelTextColor))
	}
	button := func(title string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(title, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	d.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	d.panel.AddChild(widget.NewText(widget.TextOpts.Text("Map Info", &face, panelTextColor)))
	d.mapInfo = label()
	d.sizeInfo = label()
	d.layerInfo = label()
	d.zoomInfo = label()
	d.cellInfo = label()
	d.typeInfo = label()
	for _, t := range []*widget.Text{d.mapInfo, d.sizeInfo, d.layerInfo, d.zoomInfo, d.cellInfo, d.typeInfo} {
		d.panel.AddChild(t)
	}

	d.panel.AddChild(button("Next Map", e.NextMap))
	d.panel.AddChild(button("Change Layer", e.NextLayer))
	d.panel.AddChild(button("Reset Camera", e.ResetCamera))

	d.panel.AddChild(widget.NewText(widget.TextOpts.Text("Tiles", &face, panelTextColor)))
	for i, tt := range e.Types().All() {
		id, _ := e.Types().IDFor(tt)
		title := fmt.Sprintf("%d  %s", id, tt.Name())
		if i < len(slotKeys) {
			title = fmt.Sprintf("[%d] %s", i+1, tt.Name())
		}
		d.panel.AddChild(button(title, func() { e.SelectType(id) }))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(d.panel)

	d.ui = &ebitenui.UI{Container: root}
	return d
}

// refresh copies the engine state into the labels.
func (d *debugPanel) refresh(e *Engine) {
	lvl := e.Level()
	m := e.Map()
	sel := e.Selection()

	d.mapInfo.Label = fmt.Sprintf("Active Map: %d/%d (%s)", lvl.CurrentIndex()+1, lvl.Len(), lvl.Name())
	if m == nil {
		return
	}
	d.sizeInfo.Label = fmt.Sprintf("Map Size: %dx%d, %d layers", m.Width(), m.Height(), m.LayerCount())
	d.layerInfo.Label = fmt.Sprintf("Layer: %d (%d tiles)", sel.Layer, m.Count(sel.Layer))
	d.zoomInfo.Label = fmt.Sprintf("Camera: (%.0f, %.0f) x%.2f", m.Camera().PanX, m.Camera().PanY, m.Camera().Zoom())
	if sel.Valid {
		d.cellInfo.Label = fmt.Sprintf("Selected: (%d, %d)", sel.X, sel.Y)
	} else {
		d.cellInfo.Label = "Selected: none"
	}
	name := "?"
	if tt, ok := e.Types().Get(sel.TypeID); ok {
		name = tt.Name()
	}
	d.typeInfo.Label = fmt.Sprintf("Tile: %d %s", sel.TypeID, name)
}

// contains reports whether the screen point is over the panel.
func (d *debugPanel) contains(x, y int) bool {
	return image.Pt(x, y).In(d.panel.GetWidget().Rect)
}
