// Package layout computes rectangles for stacked widget trees.
//
// Coordinates are 1-based screen cells: X is the column, Y the row. The
// engine is pure and stateless; callers rebuild the Item tree from current
// size hints whenever they need rectangles.
package layout

// Rect is a rectangle in 1-based screen coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (row, col) lies inside r.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Y && row < r.Y+r.Height &&
		col >= r.X && col < r.X+r.Width
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Right returns the first column past r.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past r.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Inset shrinks r by n cells on every side, clamping at zero size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  max(r.Width-2*n, 0),
		Height: max(r.Height-2*n, 0),
	}
}

// Intersect returns the overlap of r and o. Disjoint rectangles yield a
// zero-size rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// SizeHint is a widget's declared sizing preference.
type SizeHint struct {
	MinWidth  int
	MinHeight int
	Flex      int
}
