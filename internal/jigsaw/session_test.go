package jigsaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// referenceOptions uses the pixel-unit tuning of the reference game.
var referenceOptions = Options{SnapDistance: DefaultSnapDistance, Tolerance: DefaultTolerance}

func TestSessionStartsIdle(t *testing.T) {
	s := NewSession(newTestStore(t, 1, 2), referenceOptions)

	_, dragging := s.Dragging()
	assert.False(t, dragging)
	assert.False(t, s.Solved())
	assert.Zero(t, s.Moves())
}

func TestPointerDownMissStaysIdle(t *testing.T) {
	s := NewSession(newTestStore(t, 1, 2, core.Pt(0, 0), core.Pt(200, 0)), referenceOptions)

	assert.False(t, s.PointerDown(core.Pt(150, 50)))
	_, dragging := s.Dragging()
	assert.False(t, dragging)

	// Moves and releases while idle are ignored.
	assert.False(t, s.PointerMove(core.Pt(10, 10)))
	_, ok := s.PointerUp(core.Pt(10, 10))
	assert.False(t, ok)
	assert.Equal(t, core.Pt(0, 0), s.Store().Get(0).Position)
}

func TestDragMovesTopLeftToPointer(t *testing.T) {
	st := newTestStore(t, 1, 2, core.Pt(0, 0), core.Pt(1000, 1000))
	s := NewSession(st, referenceOptions)

	require.True(t, s.PointerDown(core.Pt(50, 50)))
	i, dragging := s.Dragging()
	require.True(t, dragging)
	assert.Equal(t, 0, i)

	assert.True(t, s.PointerMove(core.Pt(500, 600)))
	assert.Equal(t, core.Pt(500, 600), st.Get(0).Position)

	assert.True(t, s.PointerMove(core.Pt(510, 620)))
	assert.Equal(t, core.Pt(510, 620), st.Get(0).Position)
}

func TestReleaseWithoutNeighbourKeepsPosition(t *testing.T) {
	st := newTestStore(t, 2, 2, core.Pt(0, 0), core.Pt(2000, 0), core.Pt(0, 2000), core.Pt(2000, 2000))
	s := NewSession(st, referenceOptions)

	require.True(t, s.PointerDown(core.Pt(10, 10)))
	s.PointerMove(core.Pt(777, 555))
	r, ok := s.PointerUp(core.Pt(900, 900))
	require.True(t, ok)

	assert.False(t, r.Snapped)
	assert.Equal(t, core.Pt(777, 555), r.Position)
	assert.Equal(t, core.Pt(777, 555), st.Get(0).Position, "release point does not move the piece")

	_, dragging := s.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, 1, s.Moves())
}

func TestReleaseSnapsToNeighbour(t *testing.T) {
	st := newTestStore(t, 2, 2, core.Pt(300, 300), core.Pt(0, 0), far, far)
	s := NewSession(st, referenceOptions)

	require.True(t, s.PointerDown(core.Pt(5, 5)))
	s.PointerMove(core.Pt(402, 300))
	r, ok := s.PointerUp(core.Pt(402, 300))
	require.True(t, ok)

	assert.True(t, r.Snapped)
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, core.Pt(400, 300), st.Get(1).Position)
	assert.False(t, r.Solved)
}

func TestPointerDownWhileDraggingIsIgnored(t *testing.T) {
	st := newTestStore(t, 1, 2, core.Pt(0, 0), core.Pt(300, 0))
	s := NewSession(st, referenceOptions)

	require.True(t, s.PointerDown(core.Pt(10, 10)))
	assert.False(t, s.PointerDown(core.Pt(310, 10)))

	i, _ := s.Dragging()
	assert.Equal(t, 0, i)
}

func TestPointerDownRaisesPiece(t *testing.T) {
	st := newTestStore(t, 1, 2, core.Pt(0, 0), core.Pt(50, 0))
	s := NewSession(st, Options{SnapDistance: 0})

	// Piece 1 is on top where they overlap; grab piece 0 by its free edge.
	require.True(t, s.PointerDown(core.Pt(10, 10)))
	s.PointerUp(core.Pt(10, 10))

	i, ok := st.HitTest(core.Pt(75, 50))
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestSolvedFiresOnTransitionOnly(t *testing.T) {
	st := newTestStore(t, 1, 2, core.Pt(0, 0), core.Pt(500, 500))
	var fired []Release
	s := NewSession(st, Options{
		SnapDistance: 10,
		Tolerance:    0,
		OnSolved:     func(r Release) { fired = append(fired, r) },
	})

	drag := func(from, to core.Point) Release {
		t.Helper()
		require.True(t, s.PointerDown(from))
		s.PointerMove(to)
		r, ok := s.PointerUp(to)
		require.True(t, ok)
		return r
	}

	r := drag(core.Pt(510, 510), core.Pt(104, 0))
	assert.True(t, r.Snapped)
	assert.True(t, r.Solved)
	assert.True(t, r.JustSolved)
	assert.Len(t, fired, 1)
	assert.True(t, s.Solved())

	// Picking the piece up and dropping it back in place stays solved
	// without a second notification.
	r = drag(core.Pt(150, 50), core.Pt(100, 0))
	assert.True(t, r.Solved)
	assert.False(t, r.JustSolved)
	assert.Len(t, fired, 1)

	// Breaking the picture re-arms the notification.
	r = drag(core.Pt(150, 50), core.Pt(800, 800))
	assert.False(t, r.Solved)
	assert.False(t, s.Solved())

	r = drag(core.Pt(810, 810), core.Pt(97, 0))
	assert.True(t, r.JustSolved)
	assert.Len(t, fired, 2)
	assert.Equal(t, 4, s.Moves())
}

func TestOnSolvedSeesDragBeforeItEnds(t *testing.T) {
	st := newTestStore(t, 1, 2, core.Pt(0, 0), core.Pt(500, 500))
	var s *Session
	var draggingDuringCallback bool
	s = NewSession(st, Options{
		SnapDistance: 10,
		OnSolved: func(Release) {
			_, draggingDuringCallback = s.Dragging()
		},
	})

	s.PointerDown(core.Pt(500, 500))
	s.PointerMove(core.Pt(100, 0))
	s.PointerUp(core.Pt(100, 0))

	assert.True(t, draggingDuringCallback)
	_, dragging := s.Dragging()
	assert.False(t, dragging)
}

func TestHandleDispatch(t *testing.T) {
	st := newTestStore(t, 1, 2, core.Pt(0, 0), core.Pt(1000, 0))
	s := NewSession(st, referenceOptions)

	_, ok := s.Handle(core.PointerEvent{Kind: core.PointerDown, At: core.Pt(1, 1)})
	assert.True(t, ok)
	_, ok = s.Handle(core.PointerEvent{Kind: core.PointerMove, At: core.Pt(40, 40)})
	assert.True(t, ok)
	r, ok := s.Handle(core.PointerEvent{Kind: core.PointerUp, At: core.Pt(40, 40)})
	assert.True(t, ok)
	assert.Equal(t, 0, r.Index)
	assert.Equal(t, core.Pt(40, 40), st.Get(0).Position)

	_, ok = s.Handle(core.PointerEvent{Kind: core.PointerNone})
	assert.False(t, ok)
}
