package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TileWidth and TileHeight are the default tile image size in pixels.
	TileWidth  = 64
	TileHeight = 64

	MinZoom = 0.5
	MaxZoom = 4.0
)
