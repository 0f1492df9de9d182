package picture

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

// DefaultPicture is used when no picture is named.
const DefaultPicture = "sunset"

func init() {
	registry.Register("sunset", "Sunset", sunset)
	registry.Register("checker", "Checkerboard", checker)
	registry.Register("rainbow", "Rainbow", rainbow)
	registry.Register("rings", "Rings", rings)
}

// hsv converts hue [0,360), saturation and value [0,1] to RGBA.
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{R: lerp(a.R, b.R, t), G: lerp(a.G, b.G, t), B: lerp(a.B, b.B, t), A: 0xff}
}

// sunset paints a sky gradient, a sun and striped water below the horizon.
func sunset(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	top := color.RGBA{R: 0x1a, G: 0x1f, B: 0x5c, A: 0xff}
	glow := color.RGBA{R: 0xff, G: 0x8c, B: 0x42, A: 0xff}
	sea := color.RGBA{R: 0x12, G: 0x3b, B: 0x6b, A: 0xff}
	sun := color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}

	horizon := h * 3 / 5
	cx, cy := float64(w)/2, float64(horizon)
	radius := float64(min(w, h)) / 4

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.RGBA
			if y < horizon {
				c = mix(top, glow, float64(y)/float64(max(horizon, 1)))
				dx, dy := float64(x)-cx, (float64(y)-cy)*1.2
				if math.Hypot(dx, dy) <= radius {
					c = sun
				}
			} else {
				depth := float64(y-horizon) / float64(max(h-horizon, 1))
				c = mix(glow, sea, math.Min(1, depth*2))
				if (y-horizon)%3 == 1 && math.Abs(float64(x)-cx) < radius*(1-depth) {
					c = mix(c, sun, 0.6)
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// checker paints an 8x8 board with a hue sweep so every square is distinct.
func checker(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	const squares = 8
	for y := 0; y < h; y++ {
		row := y * squares / max(h, 1)
		for x := 0; x < w; x++ {
			col := x * squares / max(w, 1)
			hue := float64(row*squares+col) * 360 / (squares * squares)
			v := 0.95
			if (row+col)%2 == 1 {
				v = 0.45
			}
			img.SetRGBA(x, y, hsv(hue, 0.7, v))
		}
	}
	return img
}

// rainbow sweeps hue left to right and darkens top to bottom.
func rainbow(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := 1 - 0.7*float64(y)/float64(max(h-1, 1))
		for x := 0; x < w; x++ {
			hue := 360 * float64(x) / float64(max(w, 1))
			img.SetRGBA(x, y, hsv(hue, 0.85, v))
		}
	}
	return img
}

// rings paints concentric bands around the centre.
func rings(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	band := math.Max(2, float64(min(w, h))/10)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			n := int(d / band)
			angle := math.Atan2(float64(y)-cy, float64(x)-cx) * 180 / math.Pi
			v := 0.9
			if n%2 == 1 {
				v = 0.55
			}
			img.SetRGBA(x, y, hsv(float64(n)*40+angle/4, 0.75, v))
		}
	}
	return img
}
