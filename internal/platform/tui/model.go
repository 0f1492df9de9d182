package tui

import (
	"fmt"
	"image"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/jigsaw"
	"github.com/vovakirdan/tui-jigsaw/internal/picture"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

// Options configure a puzzle model.
type Options struct {
	Puzzle   config.PuzzleConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store     // nil disables solve records
	Logger   *log.Logger        // nil discards logs
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Player   string             // SSH user, empty for local play

	// ScreenshotDir defaults to ~/.jigsaw/screenshots.
	ScreenshotDir string
	NoScreenshots bool

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Model is the Bubble Tea model for one jigsaw puzzle.
type Model struct {
	opts    Options
	runtime core.RuntimeConfig
	screen  *core.Screen
	keys    *KeyMapper
	logger  *log.Logger
	rng     *rand.Rand
	clock   func() time.Time

	pictureID string
	title     string
	source    image.Image // decoded image file, nil for built-in pictures
	loadErr   error

	preview *picture.Canvas
	session *jigsaw.Session
	err     error

	started  time.Time
	now      time.Time
	finished time.Duration // elapsed time at the first solve
	recorded bool          // the first solve of this shuffle has been handled
	record   bool          // that solve beat the best time
	best     time.Duration
	hasBest  bool

	peek       bool
	help       bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a puzzle model and builds the first shuffle.
// Construction failures do not abort: the model shows the error instead of
// a board, and the player can resize or quit.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	m := Model{
		opts:    opts,
		runtime: opts.Runtime,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    NewKeyMapper(),
		logger:  opts.Logger,
		rng:     rand.New(rand.NewSource(opts.Runtime.Seed)),
		clock:   opts.Clock,
	}

	pc := opts.Puzzle.Picture
	if pc.Path != "" {
		m.pictureID = filepath.Base(pc.Path)
		m.title = m.pictureID
		m.source, m.loadErr = picture.Load(pc.Path)
	} else {
		m.pictureID = pc.Name
		m.title = registry.Title(pc.Name)
	}

	m.rebuild()
	return m
}

// rebuild cuts and scatters a fresh puzzle for the current screen size.
func (m *Model) rebuild() {
	m.session, m.preview, m.err = nil, nil, nil
	m.peek = false
	m.recorded, m.record, m.finished = false, false, 0
	m.started = m.clock()
	m.now = m.started

	if m.loadErr != nil {
		m.err = m.loadErr
		return
	}

	cfg := m.opts.Puzzle
	area := m.runtime.PlayArea()
	size := cfg.CanvasSize(area)

	canvas, err := picture.Resolve(m.source, cfg.Picture.Name, size.W, size.H)
	if err != nil {
		m.fail(err)
		return
	}

	grid, err := jigsaw.NewGrid(cfg.Grid.Rows, cfg.Grid.Columns)
	if err != nil {
		m.fail(err)
		return
	}

	st, err := jigsaw.Build(canvas, grid, area, rand.New(rand.NewSource(m.rng.Int63())))
	if err != nil {
		m.fail(err)
		return
	}

	logger := m.logger
	pictureID := m.pictureID
	m.session = jigsaw.NewSession(st, jigsaw.Options{
		SnapDistance: cfg.Snap.Distance,
		Tolerance:    cfg.Solved.Tolerance,
		OnSolved: func(r jigsaw.Release) {
			logger.Info("puzzle solved", "picture", pictureID, "piece", r.Index)
		},
	})

	// The preview is a convenience; a failure only disables peeking.
	m.preview, _ = picture.Resolve(m.source, cfg.Picture.Name, max(size.W/3, 1), max(size.H/3, 1))

	m.best, m.hasBest = 0, false
	if m.opts.Store != nil {
		best, ok, err := m.opts.Store.BestTime(grid.Rows(), grid.Columns())
		if err != nil {
			m.logger.Warn("could not read best time", "error", err)
		}
		m.best, m.hasBest = best, ok
	}

	m.logger.Debug("puzzle built",
		"picture", m.pictureID,
		"rows", grid.Rows(),
		"cols", grid.Columns(),
		"piece", fmt.Sprintf("%dx%d", st.PieceSize().W, st.PieceSize().H),
		"area", fmt.Sprintf("%dx%d", area.W, area.H),
	)
}

func (m *Model) fail(err error) {
	m.err = err
	m.logger.Error("cannot build puzzle", "picture", m.pictureID, "error", err)
}

// Init starts the status line clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.now = m.clock()
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Esc closes overlays before it leaves the puzzle.
		switch {
		case m.help:
			m.help = false
		case m.peek:
			m.peek = false
		default:
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionShuffle:
		m.rebuild()
		m.logger.Info("reshuffled", "picture", m.pictureID)
	case core.ActionPeek:
		m.peek = !m.peek
	case core.ActionHelp:
		m.help = !m.help
	}

	return m, nil
}

// handleMouse feeds pointer events to the session.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}

	ev := m.keys.MapMouse(msg)
	if ev.Kind == core.PointerNone {
		return m, nil
	}

	r, ok := m.session.Handle(ev)
	if !ok || ev.Kind != core.PointerUp {
		return m, nil
	}

	m.logger.Debug("piece released",
		"piece", r.Index,
		"snapped", r.Snapped,
		"solved", r.Solved,
		"moves", m.session.Moves(),
	)

	if r.JustSolved && !m.recorded {
		m.finishSolve()
	}
	return m, nil
}

// finishSolve stops the clock and records the first solve of a shuffle.
func (m *Model) finishSolve() {
	m.now = m.clock()
	m.finished = m.now.Sub(m.started)
	m.recorded = true

	grid := m.session.Store().Grid()
	moves := m.session.Moves()
	m.logger.Info("solve finished",
		"picture", m.pictureID,
		"moves", moves,
		"elapsed", m.finished.Round(time.Millisecond),
	)

	if m.opts.Store == nil {
		return
	}

	id, err := m.opts.Store.SaveSolve(storage.Solve{
		Picture:  m.pictureID,
		Rows:     grid.Rows(),
		Cols:     grid.Columns(),
		Moves:    moves,
		Duration: m.finished,
		Player:   m.opts.Player,
	})
	if err != nil {
		m.logger.Error("could not save solve", "error", err)
		return
	}
	m.logger.Debug("solve saved", "id", id)

	if !m.hasBest || m.finished < m.best {
		m.record = true
		m.best, m.hasBest = m.finished, true
	}
}

// handleResize rebuilds the puzzle for the new screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.runtime.ScreenW && msg.Height == m.runtime.ScreenH {
		return m, nil
	}

	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Piece size depends on the screen, so a resize starts a new shuffle.
	m.rebuild()
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// elapsed is the running clock, frozen once the puzzle is solved.
func (m Model) elapsed() time.Duration {
	if m.recorded {
		return m.finished
	}
	return m.now.Sub(m.started)
}

func (m Model) status() status {
	s := status{
		title:   m.title,
		rows:    m.opts.Puzzle.Grid.Rows,
		cols:    m.opts.Puzzle.Grid.Columns,
		elapsed: m.elapsed(),
		best:    m.best,
		hasBest: m.hasBest,
	}
	if m.session != nil {
		s.moves = m.session.Moves()
		s.solved = m.session.Solved()
	}
	return s
}

// render draws the current state into the screen buffer.
func (m Model) render() {
	m.screen.Clear()

	if m.err != nil {
		drawError(m.screen, m.err)
	} else if m.session != nil {
		drawPieces(m.screen, m.session.Store())
		if m.peek {
			drawPeek(m.screen, m.preview)
		}
		if m.recorded && m.session.Solved() {
			drawSolved(m.screen, m.status(), m.record)
		}
	}

	if m.screen.Height() > 0 {
		drawStatus(m.screen, m.screen.Height()-1, m.status())
	}
	if m.help {
		drawHelp(m.screen)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	if m.opts.NoScreenshots {
		return
	}
	m.render()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("no home directory for screenshots", "error", err)
			return
		}
		dir = filepath.Join(home, ".jigsaw", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("jigsaw_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.render()
	return RenderScreen(m.opts.Renderer, m.screen)
}

// Session returns the running puzzle, or nil if it could not be built.
func (m Model) Session() *jigsaw.Session {
	return m.session
}

// Err returns the construction error shown instead of the board.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player left the puzzle with esc.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one puzzle.
// Returns true if the player left with esc rather than quitting.
func Run(opts Options) (backToMenu bool, err error) {
	m, err := RunModel(NewModel(opts))
	if err != nil {
		return false, err
	}
	return m.BackToMenu(), nil
}

// RunModel runs an already built puzzle and returns its final state.
// Extra program options are appended to the alt-screen and mouse settings.
func RunModel(m Model, extra ...tea.ProgramOption) (Model, error) {
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report drags while a button is held
	}, extra...)

	finalModel, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}

	final, ok := finalModel.(Model)
	if !ok {
		return m, nil
	}
	return final, nil
}
