// Package palette maps a position on the unit interval onto banded color
// components.
//
// A set of anchors splits [0, 1] into zones, one per anchor, whose
// boundaries are the midpoints between neighbouring anchors. Inside a zone
// the position is remapped linearly onto [anchor-halfWidth, anchor+halfWidth],
// so every anchor gets a "pure" band and the width parameter controls how
// far each band drifts towards its neighbours.
//
// MapCircular treats the anchors as points on a cycle of length 1 (hue);
// MapLinear treats them as points on a segment pinned at 0 and 1
// (saturation, lightness).
package palette

import (
	"errors"
	"fmt"
	"math"
)

// Anchor validation errors.
var (
	ErrTooFewAnchors = errors.New("palette: at least two anchors required")
	ErrAnchorRange   = errors.New("palette: anchor outside [0, 1]")
	ErrAnchorOrder   = errors.New("palette: anchors must be non-decreasing")
)

// CheckAnchors reports whether anchors can be used with MapCircular and
// MapLinear.
func CheckAnchors(anchors []float64) error {
	if len(anchors) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewAnchors, len(anchors))
	}
	for i, a := range anchors {
		if math.IsNaN(a) || a < 0 || a > 1 {
			return fmt.Errorf("%w: anchors[%d] = %v", ErrAnchorRange, i, a)
		}
		if i > 0 && a < anchors[i-1] {
			return fmt.Errorf("%w: anchors[%d] = %v < anchors[%d] = %v",
				ErrAnchorOrder, i, a, i-1, anchors[i-1])
		}
	}
	return nil
}

// MapCircular maps x in [0, 1) to a value in [0, 1) using anchors spaced
// around a cycle. The result wraps modulo 1.
//
// The anchors must satisfy CheckAnchors. MapCircular panics if x cannot be
// placed in any zone, which only happens for anchors that do not.
func MapCircular(anchors []float64, halfWidth, x float64) float64 {
	n := len(anchors)
	if n < 2 {
		panic(ErrTooFewAnchors)
	}

	// Two wrapped copies close the cycle: the zone of anchors[0]+1 ends at
	// the midpoint between anchors[0]+1 and anchors[1]+1.
	ext := make([]float64, n+2)
	copy(ext, anchors)
	ext[n] = anchors[0] + 1
	ext[n+1] = anchors[1] + 1

	mids := make([]float64, n+1)
	for k := range mids {
		mids[k] = (ext[k] + ext[k+1]) / 2
	}

	for x < mids[0] {
		x++
	}
	for x > mids[n] {
		x--
	}

	for j := 0; j < n; j++ {
		lo, hi := mids[j], mids[j+1]
		if x >= lo && x <= hi {
			a := ext[j+1]
			return frac(remap(x, lo, hi, a-halfWidth, a+halfWidth))
		}
	}
	panic(fmt.Sprintf("palette: %v not in any circular zone of %v", x, anchors))
}

// MapLinear maps x in [0, 1] to a value clamped to [0, 1] using anchors on
// a segment whose outer boundaries are fixed at 0 and 1.
//
// The anchors must satisfy CheckAnchors. MapLinear panics if x cannot be
// placed in any zone, which only happens for anchors that do not.
func MapLinear(anchors []float64, halfWidth, x float64) float64 {
	n := len(anchors)
	if n < 2 {
		panic(ErrTooFewAnchors)
	}

	bounds := make([]float64, 0, n+1)
	bounds = append(bounds, 0)
	for k := 0; k < n-1; k++ {
		bounds = append(bounds, (anchors[k]+anchors[k+1])/2)
	}
	bounds = append(bounds, 1)

	for j := 0; j < len(bounds)-1; j++ {
		lo, hi := bounds[j], bounds[j+1]
		if x >= lo && x <= hi {
			a := anchors[j%n]
			return clamp01(remap(x, lo, hi, a-halfWidth, a+halfWidth))
		}
	}
	panic(fmt.Sprintf("palette: %v not in any linear zone of %v", x, anchors))
}

// remap maps x from [lo, hi] onto [outLo, outHi]. A collapsed source range
// maps to the centre of the target.
func remap(x, lo, hi, outLo, outHi float64) float64 {
	if hi == lo {
		return (outLo + outHi) / 2
	}
	t := (x - lo) / (hi - lo)
	return outLo + t*(outHi-outLo)
}

func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
