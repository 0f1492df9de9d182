package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// IsSolved reports whether every pair of pieces is displaced from each other
// by their slot difference times the piece size, within tolerance on each
// axis. Only relative placement matters: a solved picture may sit anywhere
// on screen.
//
// The check is O(n²) in the number of pieces, which is fine for the grid
// sizes a terminal can show.
func IsSolved(st *Store, tolerance int) bool {
	pos := st.positions()
	size := st.PieceSize()
	grid := st.Grid()

	for a := range pos {
		for b := a + 1; b < len(pos); b++ {
			off := grid.Offset(a, b)
			expected := core.Pt(off.X*size.W, off.Y*size.H)
			actual := pos[b].Sub(pos[a])
			if core.Abs(actual.X-expected.X) > tolerance ||
				core.Abs(actual.Y-expected.Y) > tolerance {
				return false
			}
		}
	}
	return true
}
