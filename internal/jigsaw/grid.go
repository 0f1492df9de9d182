// Package jigsaw implements the puzzle-piece model: cutting a picture into a
// grid of pieces, moving pieces with a pointer, snapping a released piece onto
// a neighbour and detecting the solved arrangement.
//
// The package has no terminal or Bubble Tea dependencies. The platform layer
// feeds it pointer events and draws Store.Pieces() every frame.
package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// Slot is a piece's (row, col) cell in the solved picture.
type Slot struct {
	Row, Col int
}

// Grid is the immutable row/column layout of a puzzle.
// Piece i lives in slot (i / columns, i % columns).
type Grid struct {
	rows    int
	columns int
}

// NewGrid validates the dimensions and returns the grid.
func NewGrid(rows, columns int) (Grid, error) {
	if rows < 1 {
		return Grid{}, configErrorf("rows", "must be at least 1, got %d", rows)
	}
	if columns < 1 {
		return Grid{}, configErrorf("columns", "must be at least 1, got %d", columns)
	}
	return Grid{rows: rows, columns: columns}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions.
func MustGrid(rows, columns int) Grid {
	g, err := NewGrid(rows, columns)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g Grid) Columns() int { return g.columns }

// Count returns the number of pieces, rows*columns.
func (g Grid) Count() int { return g.rows * g.columns }

// Valid reports whether index names a piece of this grid.
func (g Grid) Valid(index int) bool {
	return index >= 0 && index < g.Count()
}

func (g Grid) mustIndex(index int) {
	if !g.Valid(index) {
		panicOutOfRange(index, g.Count())
	}
}

// SlotOf maps a piece index to its slot.
func (g Grid) SlotOf(index int) Slot {
	g.mustIndex(index)
	return Slot{Row: index / g.columns, Col: index % g.columns}
}

// IndexOf maps a slot back to the piece index.
func (g Grid) IndexOf(s Slot) int {
	if s.Row < 0 || s.Row >= g.rows || s.Col < 0 || s.Col >= g.columns {
		panicOutOfRange(s.Row*g.columns+s.Col, g.Count())
	}
	return s.Row*g.columns + s.Col
}

// AreAdjacent reports whether the two pieces are neighbours in the solved
// picture: their slots differ by exactly one row or exactly one column.
func (g Grid) AreAdjacent(a, b int) bool {
	sa, sb := g.SlotOf(a), g.SlotOf(b)
	return core.Abs(sa.Row-sb.Row)+core.Abs(sa.Col-sb.Col) == 1
}

// Offset returns slot(b) - slot(a) as a (columns, rows) vector.
func (g Grid) Offset(a, b int) core.Point {
	sa, sb := g.SlotOf(a), g.SlotOf(b)
	return core.Pt(sb.Col-sa.Col, sb.Row-sa.Row)
}
