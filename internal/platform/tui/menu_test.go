package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return nm
}

func TestMenuPicksPictureAndPreset(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal)

	if m.Preset() != config.DifficultyNormal {
		t.Fatalf("Preset() = %v, expected normal", m.Preset())
	}
	if !strings.Contains(m.View(), "[normal 3x3]") {
		t.Error("View() should bracket the chosen preset")
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight}) // already at hard
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Preset() != config.DifficultyHard {
		t.Errorf("Preset() = %v, expected hard", m.Preset())
	}
	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after enter")
	}
	// Pictures are listed by id: checker, rainbow, rings, sunset.
	if sel.PictureID != "rainbow" {
		t.Errorf("Selected() = %q, expected rainbow", sel.PictureID)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy)

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor != 0 || m.Preset() != config.DifficultyEasy {
		t.Errorf("cursor = %d, preset = %v, expected 0 and easy", m.cursor, m.Preset())
	}

	for range 10 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last item %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal)

	sb := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !sb.WantsScoreboard() || sb.IsQuitting() {
		t.Error("tab should request the scoreboard")
	}

	q := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !q.IsQuitting() || q.View() != "" {
		t.Error("esc should quit the menu")
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal)
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 132, Height: 50})

	if cfg := m.Config(); cfg.ScreenW != 132 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d, expected 132x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardGrids(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSolve(storage.Solve{Picture: "rings", Rows: 5, Cols: 5, Moves: 30, Duration: time.Minute}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	grids := scoreboardGrids(store, config.GridConfig{Rows: 2, Columns: 3})

	want := []string{"2x2", "2x3", "3x3", "4x6", "5x5"}
	if len(grids) != len(want) {
		t.Fatalf("got %d grids, expected %d", len(grids), len(want))
	}
	for i, g := range grids {
		if g.Title() != want[i] {
			t.Errorf("grids[%d] = %s, expected %s", i, g.Title(), want[i])
		}
	}
}

func TestScoreboardShowsSolves(t *testing.T) {
	store := openTestStore(t)
	for _, d := range []time.Duration{90 * time.Second, 45 * time.Second} {
		if _, err := store.SaveSolve(storage.Solve{Picture: "sunset", Rows: 3, Cols: 3, Moves: 12, Duration: d}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30, config.GridConfig{Rows: 3, Columns: 3})
	if len(m.solves) != 2 || m.solves[0].Duration != 45*time.Second {
		t.Fatalf("solves = %+v, expected fastest first", m.solves)
	}

	view := m.View()
	if !strings.Contains(view, "BEST TIMES - 3x3") {
		t.Error("View() should title the selected grid")
	}
	if !strings.Contains(view, "2 solves") {
		t.Error("View() should show grid stats")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "BEST TIMES - 4x6") {
		t.Error("tab should move to the next grid")
	}
	if len(m.solves) != 0 || !strings.Contains(m.View(), "not solved yet") {
		t.Error("4x6 has no solves")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back, not quit")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20, config.GridConfig{Rows: 3, Columns: 3})

	if len(m.grids) != 3 {
		t.Errorf("expected only the preset grids, got %d", len(m.grids))
	}
	if !strings.Contains(m.View(), "not solved yet") {
		t.Error("View() should say nothing is recorded")
	}
}
