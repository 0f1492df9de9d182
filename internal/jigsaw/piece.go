package jigsaw

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// Region is an opaque handle to the pixels of one piece. The puzzle never
// looks inside it; the renderer that produced the Source knows its type.
type Region any

// Source is the already-scaled picture a puzzle is cut from.
type Source interface {
	// Size returns the picture dimensions in screen units.
	Size() core.Size
	// Crop returns the pixels under r, in the Source's own coordinates.
	Crop(r core.Rect) Region
}

// Piece is one fragment of the picture.
type Piece struct {
	Index    int
	Slot     Slot
	Image    Region
	Size     core.Size
	Position core.Point // top-left corner on screen
}

// Rect returns the piece's current bounding rectangle.
func (p Piece) Rect() core.Rect {
	return core.RectAt(p.Position, p.Size)
}

// ImageSource adapts an image.Image so that one screen unit is one pixel.
type ImageSource struct {
	Image image.Image
}

// Size returns the image dimensions.
func (s ImageSource) Size() core.Size {
	b := s.Image.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Crop returns an image.Image covering r.
func (s ImageSource) Crop(r core.Rect) Region {
	min := s.Image.Bounds().Min
	rect := image.Rect(min.X+r.X, min.Y+r.Y, min.X+r.Right(), min.Y+r.Bottom())
	if sub, ok := s.Image.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(rect)
	}
	return croppedImage{src: s.Image, rect: rect}
}

// croppedImage is a window onto an image that has no SubImage method.
type croppedImage struct {
	src  image.Image
	rect image.Rectangle
}

func (c croppedImage) ColorModel() color.Model { return c.src.ColorModel() }
func (c croppedImage) Bounds() image.Rectangle { return c.rect }

func (c croppedImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(c.rect)) {
		return color.Transparent
	}
	return c.src.At(x, y)
}
