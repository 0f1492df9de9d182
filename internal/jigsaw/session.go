package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// Reference tuning, in source-image pixels.
const (
	DefaultSnapDistance = 100
	DefaultTolerance    = 5
)

// Options tune a Session.
type Options struct {
	// SnapDistance is how far off a released piece may be, along one axis,
	// from an exact fit next to a neighbour and still be pulled into place.
	SnapDistance int

	// Tolerance is the per-axis slack allowed by the solved check.
	Tolerance int

	// OnSolved is called once each time the arrangement becomes solved.
	OnSolved func(Release)
}

// Release describes what happened when a dragged piece was let go.
type Release struct {
	Index      int
	Position   core.Point // final position after any snap
	Snapped    bool
	Solved     bool // the whole arrangement is solved now
	JustSolved bool // Solved, and it was not solved after the previous release
}

// Session is the pointer-driven state machine for one puzzle.
// It is either idle or dragging exactly one piece.
type Session struct {
	store    *Store
	opts     Options
	selected int
	dragging bool
	solved   bool
	moves    int
}

// NewSession starts an idle session over store.
func NewSession(store *Store, opts Options) *Session {
	return &Session{store: store, opts: opts}
}

// Store returns the pieces this session moves.
func (s *Session) Store() *Store { return s.store }

// Options returns the session tuning.
func (s *Session) Options() Options { return s.opts }

// Dragging returns the dragged piece, if any.
func (s *Session) Dragging() (int, bool) {
	return s.selected, s.dragging
}

// Solved returns the result of the last evaluation.
func (s *Session) Solved() bool { return s.solved }

// Moves returns the number of completed drags.
func (s *Session) Moves() int { return s.moves }

// PointerDown picks up the topmost piece under p and raises it.
// It does nothing while a piece is already being dragged or when p misses
// every piece. It reports whether a piece was picked up.
func (s *Session) PointerDown(p core.Point) bool {
	if s.dragging {
		return false
	}
	i, ok := s.store.HitTest(p)
	if !ok {
		return false
	}
	s.store.Raise(i)
	s.selected = i
	s.dragging = true
	return true
}

// PointerMove puts the dragged piece's top-left corner at p.
// It reports whether a piece moved.
func (s *Session) PointerMove(p core.Point) bool {
	if !s.dragging {
		return false
	}
	s.store.SetPosition(s.selected, p)
	return true
}

// PointerUp drops the dragged piece: it snaps the piece to a neighbour if one
// is close enough, re-evaluates the solved state, and returns to idle.
// The release point itself does not move the piece.
// The bool result is false when nothing was being dragged.
func (s *Session) PointerUp(_ core.Point) (Release, bool) {
	if !s.dragging {
		return Release{}, false
	}

	i := s.selected
	snapped := Snap(s.store, i, s.opts.SnapDistance)
	solved := IsSolved(s.store, s.opts.Tolerance)

	r := Release{
		Index:      i,
		Position:   s.store.Get(i).Position,
		Snapped:    snapped,
		Solved:     solved,
		JustSolved: solved && !s.solved,
	}
	s.solved = solved
	s.moves++

	if r.JustSolved && s.opts.OnSolved != nil {
		s.opts.OnSolved(r)
	}

	s.dragging = false
	s.selected = 0
	return r, true
}

// Handle dispatches a pointer event. The Release is only meaningful for
// PointerUp events; ok reports whether the event changed anything.
func (s *Session) Handle(ev core.PointerEvent) (r Release, ok bool) {
	switch ev.Kind {
	case core.PointerDown:
		return Release{}, s.PointerDown(ev.At)
	case core.PointerMove:
		return Release{}, s.PointerMove(ev.At)
	case core.PointerUp:
		return s.PointerUp(ev.At)
	}
	return Release{}, false
}
