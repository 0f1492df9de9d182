// Package picture turns images into terminal rasters the puzzle can cut up.
//
// A terminal cell is roughly twice as tall as it is wide, so each cell shows
// two vertically stacked pixels with the upper half block '▀': the foreground
// colour paints the upper pixel and the background the lower one.
package picture

import (
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/jigsaw"
)

// HalfBlock is the rune every picture cell is drawn with.
const HalfBlock = '▀'

// Canvas is a cell raster. Crops share the backing pixels with their parent.
type Canvas struct {
	stride int          // pixels per backing row
	pix    []core.Color // stride x 2*rows pixels
	view   core.Rect    // visible cells within the backing store
}

var _ jigsaw.Source = (*Canvas)(nil)

// NewCanvas returns a black canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	pix := make([]core.Color, cols*rows*2)
	black := core.RGB(0, 0, 0)
	for i := range pix {
		pix[i] = black
	}
	return &Canvas{
		stride: cols,
		pix:    pix,
		view:   core.NewRect(0, 0, cols, rows),
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() core.Size {
	return c.view.Size()
}

// Crop returns a view of the cells under r, clipped to the canvas.
func (c *Canvas) Crop(r core.Rect) jigsaw.Region {
	x0 := core.Clamp(r.X, 0, c.view.W)
	y0 := core.Clamp(r.Y, 0, c.view.H)
	x1 := core.Clamp(r.Right(), x0, c.view.W)
	y1 := core.Clamp(r.Bottom(), y0, c.view.H)

	return &Canvas{
		stride: c.stride,
		pix:    c.pix,
		view:   core.NewRect(c.view.X+x0, c.view.Y+y0, x1-x0, y1-y0),
	}
}

// index maps a local cell column and pixel row to the backing slice.
func (c *Canvas) index(x, py int) (int, bool) {
	if x < 0 || x >= c.view.W || py < 0 || py >= c.view.H*2 {
		return 0, false
	}
	return (c.view.Y*2+py)*c.stride + c.view.X + x, true
}

// Pixel returns the colour at cell column x, pixel row py.
// Out-of-range coordinates return NoColor.
func (c *Canvas) Pixel(x, py int) core.Color {
	if i, ok := c.index(x, py); ok {
		return c.pix[i]
	}
	return core.NoColor
}

// SetPixel paints the pixel at cell column x, pixel row py.
func (c *Canvas) SetPixel(x, py int, col core.Color) {
	if i, ok := c.index(x, py); ok {
		c.pix[i] = col
	}
}

// Cell returns the screen cell for local cell (x, y).
func (c *Canvas) Cell(x, y int) core.Cell {
	return core.Cell{
		Rune: HalfBlock,
		FG:   c.Pixel(x, y*2),
		BG:   c.Pixel(x, y*2+1),
	}
}

// Draw paints the canvas onto dst with its top-left cell at p.
func (c *Canvas) Draw(dst *core.Screen, p core.Point) {
	for y := 0; y < c.view.H; y++ {
		for x := 0; x < c.view.W; x++ {
			dst.SetCell(p.X+x, p.Y+y, c.Cell(x, y))
		}
	}
}
