package genart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Buffer is the result of a render: a width x height raster stored row by
// row, 4 bytes per pixel in R, G, B, A order, 8 bits per channel.
//
// Alpha is straight (not premultiplied). Every scene paints an opaque
// background, so rendered buffers have A = 255 throughout.
//
// A Buffer belongs to the caller once Render returns; genart never touches
// it again.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// newBuffer copies img into a straight-alpha Buffer.
func newBuffer(img image.Image) *Buffer {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return &Buffer{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    dst.Pix,
	}
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.width * 4
}

// Data returns the raw pixel data (straight RGBA, row-major).
func (b *Buffer) Data() []uint8 {
	return b.pix
}

// PixelAt returns the pixel at (x, y), or transparent black outside the
// buffer.
func (b *Buffer) PixelAt(x, y int) color.NRGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}
	}
	i := y*b.Stride() + x*4
	return color.NRGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Equal reports whether b and o have the same size and bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.width == o.width && b.height == o.height && bytes.Equal(b.pix, o.pix)
}

// Image returns a copy of the buffer as an *image.NRGBA, ready for
// texture upload or further processing.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// Resize returns a copy of the buffer resampled to width x height with a
// Catmull-Rom kernel, for previews and thumbnails of a large export.
func (b *Buffer) Resize(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", ErrInvalidConfig, width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), b, b.Bounds(), draw.Src, nil)
	return &Buffer{width: width, height: height, pix: dst.Pix}, nil
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// EncodePNG writes the buffer as PNG to w.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.Image())
}

// SavePNG writes the buffer to a PNG file at path, creating or truncating
// it. Errors are returned as is; a partially written file is not removed.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("genart: save png: %w", err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("genart: encode png %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("genart: close %s: %w", path, err)
	}
	Logger().Info("genart: saved png", "path", path, "width", b.width, "height", b.height)
	return nil
}
