package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit terminal colour. The zero value means "terminal default".
type Color uint32

const colorSet Color = 1 << 24

// NoColor leaves the terminal's default colour in place.
const NoColor Color = 0

// Palette used by the HUD and overlays.
var (
	ColorWhite  = RGB(0xee, 0xee, 0xee)
	ColorGray   = RGB(0x8a, 0x8a, 0x8a)
	ColorYellow = RGB(0xff, 0xd7, 0x5f)
	ColorGreen  = RGB(0x5f, 0xd7, 0x87)
	ColorRed    = RGB(0xff, 0x5f, 0x5f)
	ColorShadow = RGB(0x26, 0x26, 0x26)
)

// RGB builds a colour from its components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromColor converts any image/color value, ignoring alpha.
func FromColor(c color.Color) Color {
	if c == nil {
		return NoColor
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// IsSet reports whether the colour overrides the terminal default.
func (c Color) IsSet() bool {
	return c&colorSet != 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb", or "" for NoColor.
func (c Color) Hex() string {
	if !c.IsSet() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
