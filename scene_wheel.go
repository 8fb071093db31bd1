package genart

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/genart/internal/palette"
)

// draw sweeps x across the canvas one device column at a time. Each column
// gets a single HSLuv color: hue from the circular hue bands, saturation
// and lightness from the linear bands shifted by their offsets.
func (p WheelParams) draw(c *canvas) error {
	for px := 0; px < c.devW; px++ {
		x := float64(px) / float64(c.devW)
		c.fillColumn(px, p.ColorAt(x))
	}
	return nil
}

// HSLuvAt returns the wheel's hue (in turns), saturation and lightness at
// x in [0, 1), each in [0, 1].
func (p WheelParams) HSLuvAt(x float64) (h, s, l float64) {
	h = palette.MapCircular(p.Hues[:], p.HueSpread, x)
	s = palette.MapLinear(p.Sats[:], p.SatSpread, phase(x+p.SatOffset))
	l = palette.MapLinear(p.Lights[:], p.LightSpread, phase(x+p.LightOffset))
	return h, s, l
}

// ColorAt returns the sRGB color of the wheel at x in [0, 1).
func (p WheelParams) ColorAt(x float64) gg.RGBA {
	h, s, l := p.HSLuvAt(x)
	rgb := colorful.HSLuv(h*360, s, l).Clamped()
	return gg.RGB(rgb.R, rgb.G, rgb.B)
}

// phase wraps x into [0, 1).
func phase(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
