package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// neighbourOffsets are tried in this order: up, right, down, left.
var neighbourOffsets = [...]core.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Snap tries to attach piece s to one of its solved-picture neighbours.
//
// Other pieces are scanned in index order and, for each, the four offsets in
// neighbourOffsets. A candidate needs the two pieces to be adjacent in the
// grid, and s to sit within threshold of the offset position along one axis
// while matching it exactly on the other. The first candidate wins: s is moved
// to exactly p + offset*size and Snap returns true. Otherwise s stays put.
func Snap(st *Store, s int, threshold int) bool {
	st.grid.mustIndex(s)
	st.mu.Lock()
	defer st.mu.Unlock()

	at := st.pieces[s].Position
	for _, p := range st.pieces {
		if p.Index == s || !st.grid.AreAdjacent(s, p.Index) {
			continue
		}
		for _, off := range neighbourOffsets {
			target := core.Pt(
				p.Position.X+off.X*st.size.W,
				p.Position.Y+off.Y*st.size.H,
			)
			dx := core.Abs(at.X - target.X)
			dy := core.Abs(at.Y - target.Y)
			if (dx <= threshold && dy == 0) || (dx == 0 && dy <= threshold) {
				st.pieces[s].Position = target
				return true
			}
		}
	}
	return false
}
