package core

// RuntimeConfig contains configuration passed to a puzzle session at start.
// Sessions use this to adapt to screen size and for deterministic shuffles.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Clock ticks per second for the HUD timer
	Seed     int64 // RNG seed for deterministic shuffles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// PlayArea is the part of the screen pieces may occupy.
// The last row is reserved for the status line.
func (c RuntimeConfig) PlayArea() Rect {
	return NewRect(0, 0, c.ScreenW, Max(c.ScreenH-1, 0))
}
