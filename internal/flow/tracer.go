package flow

import "math"

// AngleField returns the direction of travel, in radians, at a point.
type AngleField interface {
	AngleAt(x, y float64) float64
}

// Stop says why a trace ended.
type Stop int

const (
	// StopLength means the curve reached MaxLength vertices.
	StopLength Stop = iota
	// StopBounds means the next step would leave the canvas.
	StopBounds
	// StopCollision means the next step landed too close to another curve.
	StopCollision
	// StopSeed means the seed itself was unusable; the curve is empty.
	StopSeed
)

// String returns the stop reason name.
func (s Stop) String() string {
	switch s {
	case StopLength:
		return "length"
	case StopBounds:
		return "bounds"
	case StopCollision:
		return "collision"
	case StopSeed:
		return "seed"
	default:
		return "unknown"
	}
}

// Curves usually stop at an edge or another curve long before MaxLength,
// so capacity grows on demand past this.
const initialCurveCap = 256

// Tracer steps through an AngleField on a Width x Height canvas.
type Tracer struct {
	Field     AngleField
	Width     float64
	Height    float64
	Step      float64 // distance between consecutive vertices
	MaxLength int     // maximum number of vertices per curve
}

// Trace follows the field from seed until the curve reaches MaxLength
// vertices, leaves the canvas, or collides with a curve already recorded
// in g. The vertices gathered so far are kept in every case and committed
// to g, so the order of successive Trace calls matters.
func (t *Tracer) Trace(g *Grid, seed Point) (Curve, Stop) {
	if t.MaxLength < 1 || !t.inBounds(seed) || g.Collides(seed) {
		return nil, StopSeed
	}

	c := make(Curve, 1, min(t.MaxLength, initialCurveCap))
	c[0] = seed
	stop := StopLength
	p := seed
	for len(c) < t.MaxLength {
		next := t.next(p)
		if !t.inBounds(next) {
			stop = StopBounds
			break
		}
		if g.Collides(next) {
			stop = StopCollision
			break
		}
		c = append(c, next)
		p = next
	}

	g.Commit(c)
	return c, stop
}

func (t *Tracer) next(p Point) Point {
	a := t.Field.AngleAt(p.X, p.Y)
	sin, cos := math.Sincos(a)
	return Point{X: p.X + t.Step*cos, Y: p.Y + t.Step*sin}
}

func (t *Tracer) inBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < t.Width && p.Y < t.Height
}
