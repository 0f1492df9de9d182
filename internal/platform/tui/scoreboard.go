package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show grid list sidebar
	sidebarWidth       = 20  // Width of grid list sidebar
	maxSolves          = 100 // Max solves to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGrid key.Binding
	PrevGrid key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGrid, k.PrevGrid, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGrid, k.PrevGrid},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev grid"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next grid"),
		),
		NextGrid: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next grid"),
		),
		PrevGrid: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev grid"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gridTab is one grid size on the scoreboard.
type gridTab struct {
	Rows int
	Cols int
}

func (g gridTab) Title() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}

// scoreboardGrids lists the preset grids plus any grid with recorded solves,
// fewest pieces first.
func scoreboardGrids(store *storage.Store, start config.GridConfig) []gridTab {
	seen := make(map[gridTab]bool)
	var grids []gridTab
	add := func(g gridTab) {
		if g.Rows > 0 && g.Cols > 0 && !seen[g] {
			seen[g] = true
			grids = append(grids, g)
		}
	}

	for _, p := range config.Presets {
		g, _ := config.GridForPreset(p)
		add(gridTab{Rows: g.Rows, Cols: g.Columns})
	}
	add(gridTab{Rows: start.Rows, Cols: start.Columns})
	if store != nil {
		if all, err := store.GetAllGridStats(); err == nil {
			for _, st := range all {
				add(gridTab{Rows: st.Rows, Cols: st.Cols})
			}
		}
	}

	sort.SliceStable(grids, func(i, j int) bool {
		pi, pj := grids[i].Rows*grids[i].Cols, grids[j].Rows*grids[j].Cols
		if pi != pj {
			return pi < pj
		}
		return grids[i].Rows < grids[j].Rows
	})
	return grids
}

// ScoreboardModel is the Bubble Tea model for the best-times screen.
type ScoreboardModel struct {
	grids       []gridTab
	gridCursor  int
	store       *storage.Store
	solves      []storage.Solve
	stats       *storage.GridStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show grid list sidebar
}

// NewScoreboardModel creates a new scoreboard model opened on the given grid.
func NewScoreboardModel(store *storage.Store, width, height int, start config.GridConfig) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		grids:       scoreboardGrids(store, start),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	for i, g := range m.grids {
		if g.Rows == start.Rows && g.Cols == start.Columns {
			m.gridCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.grids) > 0 {
		m.loadSolves(m.grids[m.gridCursor])
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 9},
		{Title: "Moves", Width: 7},
		{Title: "Picture", Width: 12},
		{Title: "Date", Width: 13},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Give spare width to the picture column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[3].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorAccent).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSolves loads the best solves and stats for a grid.
func (m *ScoreboardModel) loadSolves(g gridTab) {
	m.solves, m.stats = nil, nil
	if m.store != nil {
		if solves, err := m.store.BestSolves(g.Rows, g.Cols, maxSolves); err == nil {
			m.solves = solves
		}
		if stats, err := m.store.GetGridStats(g.Rows, g.Cols); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current solves.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.solves))
	for i, s := range m.solves {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			formatDuration(s.Duration),
			fmt.Sprintf("%d", s.Moves),
			s.Picture,
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGrid), key.Matches(msg, m.keys.Right):
			if len(m.grids) > 0 {
				m.gridCursor = (m.gridCursor + 1) % len(m.grids)
				m.loadSolves(m.grids[m.gridCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGrid), key.Matches(msg, m.keys.Left):
			if len(m.grids) > 0 {
				m.gridCursor--
				if m.gridCursor < 0 {
					m.gridCursor = len(m.grids) - 1
				}
				m.loadSolves(m.grids[m.gridCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Scoreboard colours, in the 256-colour palette.
var (
	colorBorder    = lipgloss.Color("240")
	colorMuted     = lipgloss.Color("241")
	colorAccent    = lipgloss.Color("229")
	colorHighlight = lipgloss.Color("57")

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	activeTab   = accentStyle.Background(colorHighlight).Padding(0, 1)
	emptyStyle  = mutedStyle.Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "BEST TIMES"
	if len(m.grids) > 0 {
		title += " - " + m.grids[m.gridCursor].Title()
	}

	body := m.renderNarrowLayout()
	if m.showSidebar {
		body = m.renderWideLayout()
	}

	return strings.Join([]string{
		accentStyle.Render(centerText(title, m.width)),
		mutedStyle.Render(centerText(m.statsLine(), m.width)),
		"",
		body,
		mutedStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// statsLine summarises the selected grid.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Solves == 0 {
		return "not solved yet"
	}
	return fmt.Sprintf("%d solves  avg %s  fewest moves %d",
		m.stats.Solves, formatDuration(m.stats.AvgTime), m.stats.FewestMoves)
}

// renderWideLayout puts the grid list in a sidebar left of the table.
func (m ScoreboardModel) renderWideLayout() string {
	lines := []string{"Grids", strings.Repeat("-", sidebarWidth-4)}
	for i, g := range m.grids {
		label := fmt.Sprintf("%s (%d pcs)", g.Title(), g.Rows*g.Cols)
		if i == m.gridCursor {
			lines = append(lines, accentStyle.Render("> "+label))
			continue
		}
		lines = append(lines, "  "+label)
	}

	sidebar := panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", panelStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout shows the grids as tabs above the table, or just the
// selected grid when the tabs do not fit.
func (m ScoreboardModel) renderNarrowLayout() string {
	tabs := make([]string, len(m.grids))
	for i, g := range m.grids {
		if i == m.gridCursor {
			tabs[i] = activeTab.Render(g.Title())
		} else {
			tabs[i] = mutedStyle.Render(" " + g.Title() + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.grids) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.grids[m.gridCursor].Title())
	}

	return centerText(tabLine, m.width) + "\n\n" + panelStyle.Render(m.renderTableContent())
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.solves) == 0 {
		return emptyStyle.Render("No solves recorded yet.\nFinish a puzzle to set a time!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user pressed back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a single line within width, measuring printable cells.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunScoreboard runs the best-times screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, start config.GridConfig) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, start)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
