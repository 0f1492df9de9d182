package jigsaw

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// Store owns every piece of one puzzle and their positions.
//
// Pieces are created once and only ever repositioned. The store also keeps a
// draw order (bottom first): HitTest picks from the top of that order so the
// piece under the pointer is the one the player sees, and Raise brings a
// piece to the top.
//
// All position reads and writes go through one RWMutex, so a renderer on
// another goroutine can call Pieces while input is being handled.
type Store struct {
	mu     sync.RWMutex
	grid   Grid
	size   core.Size
	pieces []Piece // indexed by Piece.Index
	order  []int   // draw order, last is on top
}

// New creates a store with every piece at the origin and no image.
func New(grid Grid, size core.Size) (*Store, error) {
	if grid.Count() == 0 {
		return nil, configErrorf("grid", "must have at least one piece")
	}
	if size.Empty() {
		return nil, configErrorf("piece size", "must be positive, got %dx%d", size.W, size.H)
	}

	n := grid.Count()
	st := &Store{
		grid:   grid,
		size:   size,
		pieces: make([]Piece, n),
		order:  make([]int, n),
	}
	for i := range st.pieces {
		st.pieces[i] = Piece{
			Index: i,
			Slot:  grid.SlotOf(i),
			Size:  size,
		}
		st.order[i] = i
	}
	return st, nil
}

// Build cuts src into grid.Count() equal regions in row-major order and
// scatters them uniformly inside bounds. Piece size is the source size
// divided by the grid dimensions, truncated. Pieces may overlap.
func Build(src Source, grid Grid, bounds core.Rect, rng *rand.Rand) (*Store, error) {
	if grid.Count() == 0 {
		return nil, configErrorf("grid", "must have at least one piece")
	}
	full := src.Size()
	size := core.Size{W: full.W / grid.Columns(), H: full.H / grid.Rows()}
	if size.Empty() {
		return nil, configErrorf("picture",
			"%dx%d is too small for a %dx%d grid", full.W, full.H, grid.Rows(), grid.Columns())
	}
	if size.W > bounds.W || size.H > bounds.H {
		return nil, configErrorf("bounds",
			"%dx%d cannot hold a %dx%d piece", bounds.W, bounds.H, size.W, size.H)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	st, err := New(grid, size)
	if err != nil {
		return nil, err
	}

	for i := range st.pieces {
		slot := st.pieces[i].Slot
		cut := core.NewRect(slot.Col*size.W, slot.Row*size.H, size.W, size.H)
		st.pieces[i].Image = src.Crop(cut)
		st.pieces[i].Position = core.Pt(
			bounds.X+rng.Intn(bounds.W-size.W+1),
			bounds.Y+rng.Intn(bounds.H-size.H+1),
		)
	}
	return st, nil
}

// Grid returns the puzzle layout.
func (st *Store) Grid() Grid { return st.grid }

// PieceSize returns the size shared by every piece.
func (st *Store) PieceSize() core.Size { return st.size }

// Len returns the number of pieces.
func (st *Store) Len() int { return len(st.pieces) }

// Get returns a copy of piece index.
func (st *Store) Get(index int) Piece {
	st.grid.mustIndex(index)
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.pieces[index]
}

// SetPosition moves a piece unconditionally. There is no clamping to the screen.
func (st *Store) SetPosition(index int, p core.Point) {
	st.grid.mustIndex(index)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.pieces[index].Position = p
}

// HitTest returns the topmost piece whose rectangle contains p.
// All four edges count as inside, so a piece also claims the column at
// x+w and the row at y+h. On a cell grid those belong to the next piece:
// when two neighbours touch, the shared edge goes to whichever is on top.
func (st *Store) HitTest(p core.Point) (int, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for k := len(st.order) - 1; k >= 0; k-- {
		i := st.order[k]
		if st.pieces[i].Rect().ContainsInclusive(p) {
			return i, true
		}
	}
	return 0, false
}

// Raise moves a piece to the top of the draw order.
func (st *Store) Raise(index int) {
	st.grid.mustIndex(index)
	st.mu.Lock()
	defer st.mu.Unlock()

	k := 0
	for k < len(st.order) && st.order[k] != index {
		k++
	}
	copy(st.order[k:], st.order[k+1:])
	st.order[len(st.order)-1] = index
}

// Pieces returns a snapshot of every piece in draw order, bottom first.
func (st *Store) Pieces() []Piece {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]Piece, len(st.order))
	for k, i := range st.order {
		out[k] = st.pieces[i]
	}
	return out
}

// positions returns every piece position in index order.
func (st *Store) positions() []core.Point {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]core.Point, len(st.pieces))
	for i, p := range st.pieces {
		out[i] = p.Position
	}
	return out
}
