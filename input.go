package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the input state for one frame.
type Input struct {
	// CursorX/Y are the pointer position in screen pixels.
	CursorX int
	CursorY int
	// PlacePressed is true on the frame the left button was pressed.
	PlacePressed bool
	// RemovePressed is true on the frame the right button was pressed.
	RemovePressed bool
	// Wheel is the vertical scroll delta; positive zooms in.
	Wheel float64
	// PanX/PanY are the keyboard and drag pan for this frame, in pixels.
	PanX float64
	PanY float64

	NextMap     bool
	NextLayer   bool
	ResetCamera bool
	TogglePanel bool
	// TypeSlot is the 1-based palette slot chosen with the number keys; 0
	// means none.
	TypeSlot int
	// Quit is set on the frame F12 was pressed.
	Quit bool

	panSpeed float64
	dragging bool
	lastX    int
	lastY    int
}

func NewInput(panSpeed float64) *Input {
	return &Input{panSpeed: panSpeed}
}

var slotKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Update polls the keyboard and mouse.
func (i *Input) Update() {
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)

	i.CursorX, i.CursorY = ebiten.CursorPosition()
	i.PlacePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.RemovePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	_, i.Wheel = ebiten.Wheel()

	var px, py float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		px -= i.panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		px += i.panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		py -= i.panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		py += i.panSpeed
	}

	// middle-drag pans with the pointer
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if i.dragging {
			px -= float64(i.CursorX - i.lastX)
			py -= float64(i.CursorY - i.lastY)
		}
		i.dragging = true
		i.lastX, i.lastY = i.CursorX, i.CursorY
	} else {
		i.dragging = false
	}
	i.PanX, i.PanY = px, py

	i.NextMap = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.NextLayer = inpututil.IsKeyJustPressed(ebiten.KeyL)
	i.ResetCamera = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.TogglePanel = inpututil.IsKeyJustPressed(ebiten.KeyF1)

	i.TypeSlot = 0
	for slot, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			i.TypeSlot = slot + 1
		}
	}
}

// SuppressPointer drops this frame's clicks, e.g. when the pointer is over
// the debug panel.
func (i *Input) SuppressPointer() {
	i.PlacePressed = false
	i.RemovePressed = false
	i.Wheel = 0
}
