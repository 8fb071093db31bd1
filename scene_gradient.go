package genart

import (
	"math"

	"github.com/gogpu/gg"
)

// The frame composition is designed on a 1000px square and scaled to the
// shorter side of the actual canvas.
const (
	frameRef     = 1000.0
	frameEdge    = 250.0
	framePad     = 100.0
	frameRadius  = 700.0
	frameOutline = 4.0
)

var (
	frameMaroon = gg.Hex("#800000")
	frameOrange = gg.Hex("#FFA500")
	frameBlue   = gg.Hex("#0000FF")
)

// draw paints a white-to-black vertical background, then a centered square
// with a black outline and four corner squares, all filled with one radial
// gradient centred on the canvas.
func (p GradientParams) draw(c *canvas) error {
	// The background runs between the centres of the first and last device
	// rows, so the top row is exactly white and the bottom row exactly black.
	bg := gg.NewLinearGradientBrush(0, 0.5/c.sy, 0, (float64(c.devH)-0.5)/c.sy).
		AddColorStop(0, gg.White).
		AddColorStop(1, gg.Black)
	c.fillRect(bg, 0, 0, c.w, c.h)

	u := math.Min(c.w, c.h) / frameRef
	edge := frameEdge * u
	pad := framePad * u

	radial := gg.NewRadialGradientBrush(c.w/2, c.h/2, 0, frameRadius*u).
		AddColorStop(0, frameMaroon).
		AddColorStop(p.RadialMiddleStop, frameOrange).
		AddColorStop(1, frameBlue)

	cx, cy := c.w/2-edge/2, c.h/2-edge/2
	c.fillRect(radial, cx, cy, edge, edge)
	if err := c.strokeRect(gg.Black, frameOutline*u, cx, cy, edge, edge); err != nil {
		return err
	}

	for _, corner := range [][2]float64{
		{pad, pad},
		{c.w - edge - pad, pad},
		{pad, c.h - edge - pad},
		{c.w - edge - pad, c.h - edge - pad},
	} {
		c.fillRect(radial, corner[0], corner[1], edge, edge)
	}
	return nil
}
