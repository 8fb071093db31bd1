package genart

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewBufferStraightAlpha(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 64, G: 0, B: 0, A: 128})

	buf := newBuffer(src)
	if buf.Width() != 2 || buf.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", buf.Width(), buf.Height())
	}
	if got := buf.PixelAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("opaque pixel = %v, want unchanged", got)
	}
	// Premultiplied 64/128 becomes straight 127/128.
	if got := buf.PixelAt(1, 0); got != (color.NRGBA{127, 0, 0, 128}) {
		t.Errorf("translucent pixel = %v, want {127 0 0 128}", got)
	}
}

func TestNewBufferOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	src.SetNRGBA(10, 20, color.NRGBA{1, 2, 3, 255})
	src.SetNRGBA(12, 21, color.NRGBA{4, 5, 6, 255})

	buf := newBuffer(src)
	if buf.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds() = %v, want origin-based 3x2", buf.Bounds())
	}
	if got := buf.PixelAt(0, 0); got != (color.NRGBA{1, 2, 3, 255}) {
		t.Errorf("PixelAt(0,0) = %v", got)
	}
	if got := buf.PixelAt(2, 1); got != (color.NRGBA{4, 5, 6, 255}) {
		t.Errorf("PixelAt(2,1) = %v", got)
	}
}

func TestBufferPixelAtOutOfBounds(t *testing.T) {
	buf := newBuffer(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 4, 0},
		{"y at height", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buf.PixelAt(tt.x, tt.y); got != (color.NRGBA{}) {
				t.Errorf("PixelAt(%d, %d) = %v, want transparent", tt.x, tt.y, got)
			}
		})
	}
}

func TestBufferLayout(t *testing.T) {
	buf := newBuffer(image.NewNRGBA(image.Rect(0, 0, 5, 3)))
	if buf.Stride() != 20 {
		t.Errorf("Stride() = %d, want 20", buf.Stride())
	}
	if len(buf.Data()) != 60 {
		t.Errorf("len(Data()) = %d, want 60", len(buf.Data()))
	}
	if buf.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() should be NRGBAModel")
	}
}

func TestBufferEqual(t *testing.T) {
	a := newBuffer(image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	b := newBuffer(image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	c := newBuffer(image.NewNRGBA(image.Rect(0, 0, 4, 1)))

	if !a.Equal(b) {
		t.Error("equal buffers reported different")
	}
	if a.Equal(c) {
		t.Error("buffers of different shape reported equal")
	}
	b.Data()[5] = 1
	if a.Equal(b) {
		t.Error("buffers with different bytes reported equal")
	}
	if a.Equal(nil) {
		t.Error("buffer equal to nil")
	}
	var n *Buffer
	if !n.Equal(nil) {
		t.Error("nil buffers should be equal")
	}
}

func TestBufferImageIsCopy(t *testing.T) {
	buf := newBuffer(image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	img := buf.Image()
	img.Pix[0] = 200
	if buf.Data()[0] != 0 {
		t.Error("modifying Image() changed the buffer")
	}
}

func TestBufferEncodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}
	buf := newBuffer(src)

	var w bytes.Buffer
	if err := buf.EncodePNG(&w); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&w)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	got := newBuffer(img)
	if !got.Equal(buf) {
		t.Error("PNG round trip changed the pixels")
	}
}

func TestBufferResize(t *testing.T) {
	src, err := Render(120, 40, 1, DefaultWheelParams())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		width, height int
	}{
		{"half", 60, 20},
		{"thumbnail", 32, 8},
		{"upscale", 240, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Resize(tt.width, tt.height)
			if err != nil {
				t.Fatalf("Resize() = %v", err)
			}
			if got.Width() != tt.width || got.Height() != tt.height || len(got.Data()) != tt.width*tt.height*4 {
				t.Fatalf("Resize() = %dx%d (%d bytes)", got.Width(), got.Height(), len(got.Data()))
			}
			for y := 0; y < got.Height(); y++ {
				for x := 0; x < got.Width(); x++ {
					if a := got.PixelAt(x, y).A; a != 255 {
						t.Fatalf("pixel (%d,%d) alpha = %d, want opaque", x, y, a)
					}
				}
			}
		})
	}
}

func TestBufferResizeSolid(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []uint8{30, 120, 210, 255})
	}
	got, err := newBuffer(src).Resize(13, 7)
	if err != nil {
		t.Fatal(err)
	}
	near := func(a, b uint8) bool { return a+1 >= b && b+1 >= a }
	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			c := got.PixelAt(x, y)
			if !near(c.R, 30) || !near(c.G, 120) || !near(c.B, 210) || c.A != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want about {30 120 210 255}", x, y, c)
			}
		}
	}
}

func TestBufferResizeInvalid(t *testing.T) {
	buf := newBuffer(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	for _, size := range [][2]int{{0, 4}, {4, 0}, {-1, -1}} {
		if _, err := buf.Resize(size[0], size[1]); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Resize(%d, %d) = %v, want ErrInvalidConfig", size[0], size[1], err)
		}
	}
}

func TestBufferSavePNG(t *testing.T) {
	buf := newBuffer(image.NewNRGBA(image.Rect(0, 0, 8, 4)))
	path := filepath.Join(t.TempDir(), "out.png")

	if err := buf.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() = %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 4 {
		t.Errorf("saved size = %dx%d, want 8x4", cfg.Width, cfg.Height)
	}

	if err := buf.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}
