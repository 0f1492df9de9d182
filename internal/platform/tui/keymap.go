package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to puzzle input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionShuffle, false
	case "p":
		return core.ActionPeek, false
	case "?", "h":
		return core.ActionHelp, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message to a pointer event in cell
// coordinates. Only the left button grabs pieces; wheel and other buttons
// map to PointerNone.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.PointerEvent {
	at := core.Pt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return core.PointerEvent{Kind: core.PointerDown, At: at}
		}
	case tea.MouseActionMotion:
		return core.PointerEvent{Kind: core.PointerMove, At: at}
	case tea.MouseActionRelease:
		return core.PointerEvent{Kind: core.PointerUp, At: at}
	}

	return core.PointerEvent{Kind: core.PointerNone, At: at}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
