package core

// Action represents a semantic key action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionShuffle        // R - scatter the pieces again with a new seed
	ActionPeek           // P - toggle the preview of the solved picture
	ActionHelp           // ? - toggle the key help
	ActionBack           // Esc, B - leave the puzzle
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShuffle:
		return "Shuffle"
	case ActionPeek:
		return "Peek"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the three pointer transitions the puzzle reacts to.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerDown
	PointerMove
	PointerUp
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "none"
	}
}

// PointerEvent is a single mouse transition in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	At   Point
}
