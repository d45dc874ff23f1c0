package world

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/isoengine/common"
)

// Camera is the pan and uniform zoom applied to one map's rendering and
// picking. Pan is in screen pixels, already multiplied by zoom.
type Camera struct {
	PanX float64
	PanY float64

	zoom    float64
	minZoom float64
	maxZoom float64
}

// NewCamera creates a camera at pan (0, 0), zoom 1, clamped to the default
// zoom range.
func NewCamera() *Camera {
	return &Camera{
		zoom:    1,
		minZoom: common.MinZoom,
		maxZoom: common.MaxZoom,
	}
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// ZoomLimits returns the clamp range applied to every zoom update.
func (c *Camera) ZoomLimits() (float64, float64) {
	return c.minZoom, c.maxZoom
}

// SetZoomLimits changes the clamp range and re-clamps the current zoom.
// Invalid ranges are ignored.
func (c *Camera) SetZoomLimits(lo, hi float64) {
	if lo <= 0 || hi < lo || math.IsNaN(lo) || math.IsNaN(hi) {
		log.Printf("world: camera: ignoring zoom limits [%v, %v]", lo, hi)
		return
	}
	c.minZoom = lo
	c.maxZoom = hi
	c.zoom = common.Clamp(c.zoom, lo, hi)
}

// Set moves the camera to an absolute pan.
func (c *Camera) Set(x, y float64) {
	c.PanX = x
	c.PanY = y
}

// Move pans the camera by (dx, dy).
func (c *Camera) Move(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// ZoomBy multiplies the zoom by factor and clamps the result. Non-positive
// and NaN factors are ignored.
func (c *Camera) ZoomBy(factor float64) {
	if !(factor > 0) {
		log.Printf("world: camera: ignoring zoom factor %v", factor)
		return
	}
	c.zoom = common.Clamp(c.zoom*factor, c.minZoom, c.maxZoom)
}

// CenterOn pans so that the unzoomed screen point p lands at the middle of a
// viewport of size (w, h).
func (c *Camera) CenterOn(p cp.Vector, w, h int) {
	c.PanX = p.X*c.zoom - float64(w)/2
	c.PanY = p.Y*c.zoom - float64(h)/2
}

// Reset restores pan (0, 0) and zoom 1 (clamped), keeping the limits.
func (c *Camera) Reset() {
	c.PanX = 0
	c.PanY = 0
	c.zoom = common.Clamp(1, c.minZoom, c.maxZoom)
}
