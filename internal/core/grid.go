package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a caller contract violation. Operations that
// return it leave their receiver unchanged.
var ErrInvalidArgument = errors.New("invalid argument")

// Slit is the inset, in normalized device units, applied to every edge of a
// cell so neighbouring cells are separated by a visible gap. It does not
// scale with the grid size.
const Slit = 2.0 / 500.0

// Rect is an axis-aligned rectangle in normalized device coordinates. The
// window spans [-1, 1] on both axes with +Y pointing up.
type Rect struct {
	X0, X1 float64
	Y0, Y1 float64
}

// Width returns X1-X0. It is negative for an inverted rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1-Y0. It is negative for an inverted rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Layout tracks the next cell to draw into within a rows x cols mosaic.
// Cells are numbered left to right, top to bottom.
type Layout struct {
	rows, cols int
	cursor     int
}

// NewLayout returns a layout with the cursor on the top-left cell.
func NewLayout(rows, cols int) (*Layout, error) {
	l := &Layout{}
	if err := l.SetMultiplot(rows, cols); err != nil {
		return nil, err
	}
	return l, nil
}

// SetMultiplot changes the grid dimensions and resets the cursor to 0.
func (l *Layout) SetMultiplot(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("multiplot %dx%d: %w", rows, cols, ErrInvalidArgument)
	}
	l.rows, l.cols = rows, cols
	l.cursor = 0
	return nil
}

// Rows returns the number of cell rows.
func (l *Layout) Rows() int { return l.rows }

// Cols returns the number of cell columns.
func (l *Layout) Cols() int { return l.cols }

// Cells returns rows*cols.
func (l *Layout) Cells() int { return l.rows * l.cols }

// Cursor returns the index of the cell the next draw targets.
func (l *Layout) Cursor() int { return l.cursor }

// CellRect returns the inset rectangle of cell index. The result may be
// inverted when the cells are narrower than twice the slit.
func (l *Layout) CellRect(index int) Rect {
	row, col := index/l.cols, index%l.cols
	rows, cols := float64(l.rows), float64(l.cols)

	x0 := -1 + 2*float64(col)/cols
	x1 := x0 + 2/cols
	y1 := 1 - 2*float64(row)/rows
	y0 := y1 - 2/rows

	return Rect{X0: x0 + Slit, X1: x1 - Slit, Y0: y0 + Slit, Y1: y1 - Slit}
}

// ActiveCellRect returns the rectangle of the cell under the cursor.
func (l *Layout) ActiveCellRect() Rect { return l.CellRect(l.cursor) }

// Advance moves the cursor to the next cell, wrapping to 0 after the last.
func (l *Layout) Advance() {
	if l.cursor == l.rows*l.cols-1 {
		l.cursor = 0
		return
	}
	l.cursor++
}
