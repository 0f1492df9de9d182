package jigsaw

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func solvedSquare(t *testing.T) *Store {
	t.Helper()
	return newTestStore(t, 2, 2,
		core.Pt(300, 300), core.Pt(400, 300),
		core.Pt(300, 400), core.Pt(400, 400),
	)
}

func TestIsSolved(t *testing.T) {
	st := solvedSquare(t)
	assert.True(t, IsSolved(st, DefaultTolerance))

	st.SetPosition(3, core.Pt(406, 400))
	assert.False(t, IsSolved(st, 5))
	assert.True(t, IsSolved(st, 10))
}

func TestIsSolvedIsTranslationInvariant(t *testing.T) {
	st := solvedSquare(t)
	shift := core.Pt(-250, 37)
	for i := 0; i < st.Len(); i++ {
		st.SetPosition(i, st.Get(i).Position.Add(shift))
	}
	assert.True(t, IsSolved(st, 0))
}

func TestIsSolvedChecksEveryPair(t *testing.T) {
	// Each piece is within tolerance of its predecessor, but the drift adds up
	// between the first and the last piece.
	st := newTestStore(t, 1, 4, core.Pt(0, 0), core.Pt(104, 0), core.Pt(208, 0), core.Pt(312, 0))
	assert.False(t, IsSolved(st, 5))
	assert.True(t, IsSolved(st, 12))
}

func TestIsSolvedSwappedPieces(t *testing.T) {
	// Right shape, wrong pieces: A and B swapped.
	st := newTestStore(t, 1, 2, core.Pt(100, 0), core.Pt(0, 0))
	assert.False(t, IsSolved(st, DefaultTolerance))
}

func TestIsSolvedSinglePiece(t *testing.T) {
	st := newTestStore(t, 1, 1, core.Pt(12, 34))
	assert.True(t, IsSolved(st, 0))
}

func TestIsSolvedIdempotent(t *testing.T) {
	st := newTestStore(t, 2, 2, core.Pt(0, 0), core.Pt(100, 3), core.Pt(0, 100), core.Pt(700, 50))
	first := IsSolved(st, DefaultTolerance)
	second := IsSolved(st, DefaultTolerance)
	assert.Equal(t, first, second)

	st = solvedSquare(t)
	assert.Equal(t, IsSolved(st, DefaultTolerance), IsSolved(st, DefaultTolerance))
}
