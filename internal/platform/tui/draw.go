package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/jigsaw"
	"github.com/vovakirdan/tui-jigsaw/internal/picture"
)

// status is everything the bottom line shows.
type status struct {
	title   string
	rows    int
	cols    int
	moves   int
	elapsed time.Duration
	best    time.Duration
	hasBest bool
	solved  bool
}

var helpLines = []string{
	"drag      move a piece",
	"r         shuffle again",
	"p         peek at the picture",
	"ctrl+s    save a screenshot",
	"?         toggle this help",
	"esc / q   quit",
}

// drawPieces paints every piece bottom to top so the top piece wins overlaps.
func drawPieces(scr *core.Screen, st *jigsaw.Store) {
	for _, p := range st.Pieces() {
		if c, ok := p.Image.(*picture.Canvas); ok {
			c.Draw(scr, p.Position)
			continue
		}
		scr.FillRect(p.Rect(), core.Cell{Rune: '░', FG: core.ColorGray})
	}
}

// drawStatus fills row y with the status line.
func drawStatus(scr *core.Screen, y int, s status) {
	scr.FillRect(core.NewRect(0, y, scr.Width(), 1), core.Cell{Rune: ' ', BG: core.ColorShadow})

	left := fmt.Sprintf(" %s %dx%d  moves %d  %s", s.title, s.rows, s.cols, s.moves, formatDuration(s.elapsed))
	if s.hasBest {
		left += "  best " + formatDuration(s.best)
	}
	fg := core.ColorWhite
	if s.solved {
		fg = core.ColorGreen
	}
	scr.DrawText(0, y, left, fg)

	hint := "? help "
	scr.DrawText(scr.Width()-len(hint), y, hint, core.ColorGray)
}

// drawPeek shows the whole picture framed in the top-right corner.
func drawPeek(scr *core.Screen, preview *picture.Canvas) {
	if preview == nil {
		return
	}
	size := preview.Size()
	frame := core.NewRect(scr.Width()-size.W-2, 0, size.W+2, size.H+2)
	scr.FillRect(frame, core.Cell{Rune: ' ', BG: core.ColorShadow})
	scr.DrawBox(frame, core.ColorYellow)
	preview.Draw(scr, core.Pt(frame.X+1, frame.Y+1))
}

// drawPanel draws centred lines in a framed box.
func drawPanel(scr *core.Screen, lines []string, fg core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	// Oversized panels are pinned to the top-left and clipped on the right.
	frame := core.NewRect(
		max((scr.Width()-width-4)/2, 0),
		max((scr.Height()-len(lines)-2)/2, 0),
		width+4, len(lines)+2,
	)
	scr.FillRect(frame, core.Cell{Rune: ' ', BG: core.ColorShadow})
	scr.DrawBox(frame, fg)
	for i, l := range lines {
		scr.DrawText(frame.X+2, frame.Y+1+i, l, fg)
	}
}

func drawHelp(scr *core.Screen) {
	drawPanel(scr, helpLines, core.ColorWhite)
}

func drawSolved(scr *core.Screen, s status, record bool) {
	lines := []string{
		"SOLVED",
		fmt.Sprintf("%s in %d moves", formatDuration(s.elapsed), s.moves),
	}
	if record {
		lines = append(lines, "new best time!")
	}
	lines = append(lines, "r: new shuffle   q: quit")
	drawPanel(scr, lines, core.ColorGreen)
}

func drawError(scr *core.Screen, err error) {
	drawPanel(scr, []string{
		"cannot build the puzzle",
		err.Error(),
		"resize the terminal or pick a smaller grid",
	}, core.ColorRed)
}

// formatDuration renders mm:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
