package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"r shuffles", runeKey('r'), core.ActionShuffle, false},
		{"p peeks", runeKey('p'), core.ActionPeek, false},
		{"? helps", runeKey('?'), core.ActionHelp, false},
		{"x does nothing", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	at := core.Pt(7, 3)

	tests := []struct {
		name   string
		action tea.MouseAction
		button tea.MouseButton
		kind   core.PointerKind
	}{
		{"left press", tea.MouseActionPress, tea.MouseButtonLeft, core.PointerDown},
		{"right press", tea.MouseActionPress, tea.MouseButtonRight, core.PointerNone},
		{"wheel", tea.MouseActionPress, tea.MouseButtonWheelDown, core.PointerNone},
		{"motion", tea.MouseActionMotion, tea.MouseButtonLeft, core.PointerMove},
		{"release", tea.MouseActionRelease, tea.MouseButtonNone, core.PointerUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := km.MapMouse(mouse(tt.action, tt.button, at))
			if ev.Kind != tt.kind {
				t.Errorf("Kind = %v, expected %v", ev.Kind, tt.kind)
			}
			if ev.At != at {
				t.Errorf("At = %v, expected %v", ev.At, at)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreenPlain(t *testing.T) {
	// A renderer on a non-terminal writer has no colour profile.
	r := lipgloss.NewRenderer(io.Discard)

	scr := core.NewScreen(12, 3)
	scr.DrawText(1, 0, "jigsaw", core.ColorYellow)
	scr.FillRect(core.NewRect(0, 2, 12, 1), core.Cell{Rune: '▀', FG: core.RGB(255, 0, 0), BG: core.RGB(0, 0, 255)})

	got := RenderScreen(r, scr)
	if got != scr.String() {
		t.Errorf("RenderScreen() =\n%q\nexpected\n%q", got, scr.String())
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("expected 3 rows, got %d newlines", n)
	}
}

func TestDrawPanelClipsOnSmallScreens(t *testing.T) {
	scr := core.NewScreen(20, 5)
	drawPanel(scr, []string{"short", strings.Repeat("x", 40)}, core.ColorRed)

	if !strings.Contains(scr.Row(1), "short") {
		t.Errorf("first line should stay visible, row = %q", scr.Row(1))
	}
}
