package genart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gogpu/genart/internal/flow"
	"github.com/gogpu/genart/internal/noise"
	"github.com/gogpu/genart/internal/sample"
)

// Curves with this many vertices or fewer are noise and are not drawn.
const minCurvePoints = 2

// Point is a position in logical canvas pixels.
type Point = flow.Point

// Curve is the polyline traced from one seed.
type Curve = flow.Curve

// FlowStats summarizes one flow render.
type FlowStats struct {
	Seeds      int // seed points tried
	Drawn      int // curves stroked
	Discarded  int // curves with too few vertices
	Collisions int // curves cut short by another curve
}

// draw fills the background, then traces one curve per Halton seed in
// sequence order. Curves that survive the length filter are stroked and get
// a pearl at each end.
func (p FlowParams) draw(c *canvas) error {
	c.dc.ClearWithColor(c.opts.background)
	stats, err := p.trace(c.w, c.h, c.opts, func(curve Curve, pearls [2]float64) error {
		return c.drawCurve(curve, pearls, p.StrokeWeight)
	})
	if err != nil {
		return err
	}
	Logger().Debug("genart: flow traced",
		"seeds", stats.Seeds,
		"drawn", stats.Drawn,
		"discarded", stats.Discarded,
		"collisions", stats.Collisions)
	return nil
}

// Trace runs the flow tracing stage alone on a width x height canvas and
// returns the curves that would be drawn, in drawing order, together with
// the render statistics.
func (p FlowParams) Trace(width, height float64, opts ...Option) ([]Curve, FlowStats, error) {
	if err := p.Validate(); err != nil {
		return nil, FlowStats{}, err
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	var curves []Curve
	stats, err := p.trace(width, height, options, func(c Curve, _ [2]float64) error {
		curves = append(curves, c)
		return nil
	})
	return curves, stats, err
}

// trace runs the seeds through the tracer in Halton order and hands every
// curve worth drawing to emit, with the radii of its two pearls.
func (p FlowParams) trace(w, h float64, opts renderOptions, emit func(Curve, [2]float64) error) (FlowStats, error) {
	field, err := noise.New(p.noiseConfig())
	if err != nil {
		return FlowStats{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	grid := flow.NewGrid(w, h, p.Separation)
	tracer := &flow.Tracer{
		Field:     field,
		Width:     w,
		Height:    h,
		Step:      p.Step,
		MaxLength: p.Length,
	}
	pearls := distuv.Normal{
		Mu:    p.PearlSize,
		Sigma: p.PearlSize / 4,
		Src:   rand.NewSource(opts.pearlSeed),
	}

	var stats FlowStats
	for _, s := range sample.Halton(w, h, p.Starts, opts.sampleSeed) {
		stats.Seeds++
		curve, stop := tracer.Trace(grid, flow.Point(s))
		if stop == flow.StopCollision {
			stats.Collisions++
		}
		if len(curve) <= minCurvePoints {
			stats.Discarded++
			continue
		}
		radii := [2]float64{math.Abs(pearls.Rand()), math.Abs(pearls.Rand())}
		if err := emit(curve, radii); err != nil {
			return stats, err
		}
		stats.Drawn++
	}
	return stats, nil
}

// drawCurve strokes curve with the ink color and fills a pearl of the given
// radius at its first and last vertex.
func (c *canvas) drawCurve(curve Curve, pearls [2]float64, weight float64) error {
	if weight > 0 {
		c.dc.SetLineCap(gg.LineCapRound)
		c.dc.SetLineJoin(gg.LineJoinRound)
		c.dc.SetLineWidth(weight * math.Min(c.sx, c.sy))
		c.dc.SetStrokeBrush(gg.Solid(c.opts.ink))
		c.moveTo(curve[0].X, curve[0].Y)
		for _, pt := range curve[1:] {
			c.lineTo(pt.X, pt.Y)
		}
		if err := c.dc.Stroke(); err != nil {
			return fmt.Errorf("stroke curve: %w", err)
		}
	}

	c.dc.SetFillBrush(gg.Solid(c.opts.pearl))
	for i, end := range [2]Point{curve[0], curve[len(curve)-1]} {
		if pearls[i] <= 0 {
			continue
		}
		c.circle(end.X, end.Y, pearls[i])
		if err := c.dc.Fill(); err != nil {
			return fmt.Errorf("fill pearl: %w", err)
		}
	}
	return nil
}
