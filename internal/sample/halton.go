// Package sample generates well-distributed seed points for tracing.
//
// gonum's samplemv.Halton only offers the Owen-scrambled sequence and
// always starts at index 0, so the plain radical inverse is computed here.
package sample

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Halton returns count points of the base-2/base-3 Halton sequence scaled
// into [0, width) x [0, height).
//
// The sequence is read starting at index seed, so changing the seed picks a
// different segment of the same sequence without changing its distribution.
// The result is deterministic and its order is significant: callers trace
// curves in this order.
func Halton(width, height float64, count int, seed uint64) []Point {
	if count <= 0 {
		return nil
	}
	pts := make([]Point, count)
	for i := range pts {
		idx := seed + uint64(i)
		pts[i] = Point{
			X: width * RadicalInverse(idx, 2),
			Y: height * RadicalInverse(idx, 3),
		}
	}
	return pts
}

// RadicalInverse mirrors the base-b digits of i around the radix point,
// giving a value in [0, 1).
func RadicalInverse(i uint64, base uint64) float64 {
	inv := 1 / float64(base)
	f := inv
	r := 0.0
	for i > 0 {
		r += f * float64(i%base)
		i /= base
		f *= inv
	}
	return r
}
