// Package iso maps grid cells to screen pixels and back under an isometric
// (diamond) projection.
//
// The forward map is linear: a grid step along x moves by I and a grid step
// along y moves by J, both scaled by half the tile size. The inverse is the
// analytic inverse of the same 2x2 matrix followed by a floor, so negative
// screen positions resolve to negative cells instead of collapsing toward 0.
package iso

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/isoengine/common"
)

// ErrSingular is returned when a basis cannot be inverted.
var ErrSingular = errors.New("iso: basis matrix is singular")

// snap absorbs float error when flooring, so an exact integer grid
// coordinate never lands in the neighbouring cell.
const snap = 1e-9

// Basis holds the screen-space directions of one grid step along x (I) and
// along y (J), in units of half a tile.
type Basis struct {
	IX, IY float64
	JX, JY float64
}

// Diamond is the standard 2:1 isometric basis.
var Diamond = Basis{IX: 1, IY: 0.5, JX: -1, JY: 0.5}

// Matrix is the 2x2 matrix [[A, B], [C, D]].
type Matrix struct {
	A, B, C, D float64
}

// Matrix scales the basis by half the tile size.
func (b Basis) Matrix(w, h int) Matrix {
	return Matrix{
		A: b.IX * 0.5 * float64(w),
		B: b.JX * 0.5 * float64(w),
		C: b.IY * 0.5 * float64(h),
		D: b.JY * 0.5 * float64(h),
	}
}

func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the analytic inverse of m.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, ErrSingular
	}
	inv := 1 / det
	return Matrix{
		A: inv * m.D,
		B: -inv * m.B,
		C: -inv * m.C,
		D: inv * m.A,
	}, nil
}

// Apply multiplies m by the column vector (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y, m.C*x + m.D*y
}

// Projection binds a basis to a tile size and keeps the inverse around for
// repeated screen->grid lookups.
type Projection struct {
	basis Basis
	w, h  int
	fwd   Matrix
	inv   Matrix
}

// ValidTileSize rejects tile sizes whose cell corners fall between pixels.
// Width must be even and height a multiple of 4, so every cell's screen
// position is a whole pixel and maps back to the same cell.
func ValidTileSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("iso: invalid tile size %dx%d", w, h)
	}
	if w%2 != 0 || h%4 != 0 {
		return fmt.Errorf("iso: tile size %dx%d: width must be even and height a multiple of 4", w, h)
	}
	return nil
}

// NewProjection builds a projection for tiles of w x h pixels.
func NewProjection(b Basis, w, h int) (*Projection, error) {
	if err := ValidTileSize(w, h); err != nil {
		return nil, err
	}
	fwd := b.Matrix(w, h)
	inv, err := fwd.Invert()
	if err != nil {
		return nil, err
	}
	return &Projection{basis: b, w: w, h: h, fwd: fwd, inv: inv}, nil
}

// TileSize returns the tile width and height the projection was built for.
func (p *Projection) TileSize() (int, int) {
	return p.w, p.h
}

// ToScreenF maps a (possibly fractional) grid position to screen pixels.
func (p *Projection) ToScreenF(gx, gy float64) (float64, float64) {
	return p.fwd.Apply(gx, gy)
}

// ToScreen maps a grid cell to whole screen pixels.
func (p *Projection) ToScreen(gx, gy int) (int, int) {
	sx, sy := p.ToScreenF(float64(gx), float64(gy))
	return common.FloorInt(sx), common.FloorInt(sy)
}

// ToGridF maps a screen point to continuous grid coordinates.
func (p *Projection) ToGridF(sx, sy float64) (float64, float64) {
	return p.inv.Apply(sx, sy)
}

// ToGrid maps a screen point to the grid cell containing it.
func (p *Projection) ToGrid(sx, sy float64) (int, int) {
	rx, ry := p.ToGridF(sx, sy)
	return common.FloorInt(rx + snap), common.FloorInt(ry + snap)
}

// ToScreen maps a grid cell to screen pixels with the Diamond basis.
func ToScreen(w, h, gx, gy int) (int, int) {
	sx, sy := Diamond.Matrix(w, h).Apply(float64(gx), float64(gy))
	return common.FloorInt(sx), common.FloorInt(sy)
}

// ToGrid maps a screen point to a grid cell with the Diamond basis.
func ToGrid(w, h int, sx, sy float64) (int, int, error) {
	p, err := NewProjection(Diamond, w, h)
	if err != nil {
		return 0, 0, err
	}
	gx, gy := p.ToGrid(sx, sy)
	return gx, gy, nil
}
