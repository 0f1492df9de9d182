package picture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/jigsaw"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCanvasCellsUseHalfBlocks(t *testing.T) {
	c := NewCanvas(2, 1)
	red, blue := core.RGB(255, 0, 0), core.RGB(0, 0, 255)
	c.SetPixel(1, 0, red)
	c.SetPixel(1, 1, blue)

	cell := c.Cell(1, 0)
	assert.Equal(t, HalfBlock, cell.Rune)
	assert.Equal(t, red, cell.FG)
	assert.Equal(t, blue, cell.BG)

	assert.Equal(t, core.RGB(0, 0, 0), c.Cell(0, 0).FG, "new canvas is black")
	assert.Equal(t, core.NoColor, c.Pixel(5, 0), "out of range")
}

func TestCanvasCropSharesPixels(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetPixel(2, 5, core.RGB(1, 2, 3)) // cell (2, 2), lower half

	sub, ok := c.Crop(core.NewRect(2, 2, 2, 2)).(*Canvas)
	require.True(t, ok)
	assert.Equal(t, core.Size{W: 2, H: 2}, sub.Size())
	assert.Equal(t, core.RGB(1, 2, 3), sub.Cell(0, 0).BG)

	sub.SetPixel(1, 3, core.RGB(9, 9, 9))
	assert.Equal(t, core.RGB(9, 9, 9), c.Pixel(3, 7))

	// A crop of a crop is still relative to its parent.
	inner := sub.Crop(core.NewRect(1, 1, 1, 1)).(*Canvas)
	assert.Equal(t, core.RGB(9, 9, 9), inner.Cell(0, 0).BG)
}

func TestCanvasCropClips(t *testing.T) {
	c := NewCanvas(4, 3)
	sub := c.Crop(core.NewRect(3, 1, 10, 10)).(*Canvas)
	assert.Equal(t, core.Size{W: 1, H: 2}, sub.Size())

	empty := c.Crop(core.NewRect(8, 8, 2, 2)).(*Canvas)
	assert.True(t, empty.Size().Empty())
}

func TestCanvasDraw(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetPixel(0, 0, core.RGB(10, 20, 30))

	scr := core.NewScreen(5, 5)
	c.Draw(scr, core.Pt(1, 2))

	cell := scr.GetCell(1, 2)
	assert.Equal(t, HalfBlock, cell.Rune)
	assert.Equal(t, core.RGB(10, 20, 30), cell.FG)
	assert.Equal(t, ' ', scr.GetCell(0, 2).Rune)
}

func TestFitScalesToCells(t *testing.T) {
	img := uniform(37, 11, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	c, err := Fit(img, 8, 3)
	require.NoError(t, err)

	assert.Equal(t, core.Size{W: 8, H: 3}, c.Size())
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			cell := c.Cell(x, y)
			assert.Equal(t, core.RGB(200, 100, 50), cell.FG)
			assert.Equal(t, core.RGB(200, 100, 50), cell.BG)
		}
	}
}

func TestFitKeepsHalves(t *testing.T) {
	// Top half white, bottom half black: one cell row, two pixels.
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.White)
		img.Set(x, 1, color.Black)
	}
	c, err := Fit(img, 4, 1)
	require.NoError(t, err)

	cell := c.Cell(2, 0)
	assert.Equal(t, core.RGB(255, 255, 255), cell.FG)
	assert.Equal(t, core.RGB(0, 0, 0), cell.BG)
}

func TestFitRejectsEmpty(t *testing.T) {
	_, err := Fit(uniform(4, 4, color.White), 0, 3)
	assert.Error(t, err)

	_, err = Fit(image.NewRGBA(image.Rect(0, 0, 0, 0)), 3, 3)
	assert.Error(t, err)
}

func TestDecodeAndLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, uniform(6, 4, color.RGBA{G: 255, A: 255})))

	img, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())

	path := filepath.Join(t.TempDir(), "green.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	img, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())

	_, err = Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestBuiltinPicturesRegistered(t *testing.T) {
	for _, id := range []string{"sunset", "checker", "rainbow", "rings"} {
		assert.True(t, registry.Exists(id), id)
	}
	assert.True(t, registry.Exists(DefaultPicture))
}

func TestBuiltinPicturesRender(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			img, err := registry.Create(info.ID, 40, 30)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

			// A picture with a single colour cannot be reassembled by eye.
			first := img.At(0, 0)
			varied := false
			for y := 0; y < 30 && !varied; y++ {
				for x := 0; x < 40; x++ {
					if img.At(x, y) != first {
						varied = true
						break
					}
				}
			}
			assert.True(t, varied)
		})
	}
}

func TestResolve(t *testing.T) {
	c, err := Resolve(nil, "rainbow", 20, 6)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 20, H: 6}, c.Size())

	_, err = Resolve(nil, "no-such-picture", 20, 6)
	assert.Error(t, err)

	c, err = Resolve(uniform(3, 3, color.White), "no-such-picture", 5, 2)
	require.NoError(t, err, "a decoded image wins over the picture name")
	assert.Equal(t, core.RGB(255, 255, 255), c.Cell(4, 1).BG)
}

func TestCanvasAsPuzzleSource(t *testing.T) {
	c, err := Resolve(nil, "checker", 24, 12)
	require.NoError(t, err)

	grid := jigsaw.MustGrid(3, 4)
	st, err := jigsaw.Build(c, grid, core.NewRect(0, 0, 80, 23), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, core.Size{W: 6, H: 4}, st.PieceSize())
	for _, p := range st.Pieces() {
		region, ok := p.Image.(*Canvas)
		require.True(t, ok)
		assert.Equal(t, p.Size, region.Size())

		// The piece shows the cells of its slot.
		origin := core.Pt(p.Slot.Col*6, p.Slot.Row*4)
		assert.Equal(t, c.Cell(origin.X, origin.Y), region.Cell(0, 0))
	}
}
