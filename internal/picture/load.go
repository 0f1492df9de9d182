package picture

import (
	"fmt"
	"image"
	"io"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

// Decode reads any supported image format (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("picture: cannot decode image: %w", err)
	}
	return img, nil
}

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("picture: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return img, nil
}

// Fit scales img to cols x rows cells (cols x 2*rows pixels).
// The aspect ratio is not preserved; the picture fills the canvas.
func Fit(img image.Image, cols, rows int) (*Canvas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("picture: cannot fit image into %dx%d cells", cols, rows)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("picture: image is empty")
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	c := NewCanvas(cols, rows)
	for py := 0; py < rows*2; py++ {
		for x := 0; x < cols; x++ {
			c.SetPixel(x, py, core.FromColor(dst.RGBAAt(x, py)))
		}
	}
	return c, nil
}

// Resolve produces the canvas for a puzzle. A decoded image wins when img is
// set; otherwise the built-in picture called name is rendered at the canvas
// resolution.
func Resolve(img image.Image, name string, cols, rows int) (*Canvas, error) {
	if img == nil {
		var err error
		if img, err = registry.Create(name, cols, rows*2); err != nil {
			return nil, err
		}
	}
	return Fit(img, cols, rows)
}
