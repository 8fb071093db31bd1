package genart

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gg"
)

// Render draws p on a canvas of width x height logical pixels supersampled
// by scale, and returns the resulting buffer of int(width*scale) x
// int(height*scale) device pixels.
//
// Layout happens in logical pixels and is scaled at draw time, so a render
// at a larger scale is a sharper copy of the same composition. Render is
// synchronous and deterministic: identical arguments give byte-identical
// buffers. Each call owns all of its state, so concurrent calls are safe.
//
// Configuration problems are reported before anything is drawn, as errors
// wrapping ErrInvalidConfig.
func Render(width, height int, scale float64, p Params, opts ...Option) (*Buffer, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil params", ErrInvalidConfig)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, width, height)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale %v", ErrInvalidConfig, scale)
	}
	devW := int(float64(width) * scale)
	devH := int(float64(height) * scale)
	if devW < 1 || devH < 1 {
		return nil, fmt.Errorf("%w: scale %v leaves an empty %dx%d canvas", ErrInvalidConfig, scale, devW, devH)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	start := time.Now()
	dc := gg.NewContext(devW, devH)
	defer func() {
		_ = dc.Close()
	}()

	c := &canvas{
		dc:   dc,
		w:    float64(width),
		h:    float64(height),
		sx:   float64(devW) / float64(width),
		sy:   float64(devH) / float64(height),
		devW: devW,
		devH: devH,
		opts: options,
	}
	if err := p.draw(c); err != nil {
		return nil, fmt.Errorf("genart: draw %s: %w", p.Name(), err)
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("genart: flush %s: %w", p.Name(), err)
	}
	buf := newBuffer(dc.Image())
	Logger().Debug("genart: render",
		"scene", p.Name(),
		"width", devW,
		"height", devH,
		"elapsed", time.Since(start))
	return buf, nil
}

// Export renders p and writes the result to a PNG file at path.
func Export(width, height int, scale float64, p Params, path string, opts ...Option) error {
	buf, err := Render(width, height, scale, p, opts...)
	if err != nil {
		return err
	}
	return buf.SavePNG(path)
}

// canvas is the drawing surface handed to a scene. Scenes lay out in
// logical pixels (w x h); sx and sy convert to device pixels.
type canvas struct {
	dc         *gg.Context
	w, h       float64
	sx, sy     float64
	devW, devH int
	opts       renderOptions
}

// fillRect paints the logical rectangle (x, y, w, h) by sampling b at the
// centre of every covered device pixel. Axis-aligned fills are exact this
// way and do not depend on rasterizer coverage.
func (c *canvas) fillRect(b gg.Brush, x, y, w, h float64) {
	x0, x1 := c.devSpan(x, w, c.sx, c.devW)
	y0, y1 := c.devSpan(y, h, c.sy, c.devH)
	for py := y0; py < y1; py++ {
		ly := (float64(py) + 0.5) / c.sy
		for px := x0; px < x1; px++ {
			lx := (float64(px) + 0.5) / c.sx
			c.dc.SetPixel(px, py, b.ColorAt(lx, ly))
		}
	}
}

// fillColumn paints device column px with col over the full height.
func (c *canvas) fillColumn(px int, col gg.RGBA) {
	for py := 0; py < c.devH; py++ {
		c.dc.SetPixel(px, py, col)
	}
}

func (c *canvas) devSpan(pos, size, s float64, limit int) (int, int) {
	lo := int(math.Round(pos * s))
	hi := int(math.Round((pos + size) * s))
	return max(lo, 0), min(hi, limit)
}

// moveTo, lineTo and circle take logical coordinates.
func (c *canvas) moveTo(x, y float64) { c.dc.MoveTo(x*c.sx, y*c.sy) }
func (c *canvas) lineTo(x, y float64) { c.dc.LineTo(x*c.sx, y*c.sy) }
func (c *canvas) circle(x, y, r float64) {
	c.dc.DrawCircle(x*c.sx, y*c.sy, r*math.Min(c.sx, c.sy))
}

// strokeRect outlines the logical rectangle (x, y, w, h).
func (c *canvas) strokeRect(col gg.RGBA, weight, x, y, w, h float64) error {
	c.dc.SetStrokeBrush(gg.Solid(col))
	c.dc.SetLineWidth(weight * math.Min(c.sx, c.sy))
	c.dc.DrawRectangle(x*c.sx, y*c.sy, w*c.sx, h*c.sy)
	return c.dc.Stroke()
}
