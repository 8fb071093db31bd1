// Package flow traces polylines through an angle field while keeping
// distinct curves at least a minimum distance apart.
package flow

import "math"

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Curve is the ordered list of vertices produced by one trace.
type Curve []Point

// Grid buckets visited points into square cells of side Separation so a
// trace only compares a candidate point with the occupants of its own cell.
//
// A Grid built with a non-positive separation has no cells and never
// reports a collision. A Grid is owned by a single render and is not safe
// for concurrent use.
type Grid struct {
	sep        float64
	cols, rows int
	cells      [][]Point
	n          int
}

// NewGrid partitions a width x height canvas into cells of side separation.
func NewGrid(width, height, separation float64) *Grid {
	if separation <= 0 || width <= 0 || height <= 0 {
		return &Grid{}
	}
	cols := int(math.Ceil(width / separation))
	rows := int(math.Ceil(height / separation))
	return &Grid{
		sep:   separation,
		cols:  cols,
		rows:  rows,
		cells: make([][]Point, cols*rows),
	}
}

// Enabled reports whether the grid performs collision checks.
func (g *Grid) Enabled() bool {
	return len(g.cells) > 0
}

// Separation returns the cell side, which is also the minimum distance.
func (g *Grid) Separation() float64 {
	return g.sep
}

// Len returns the number of recorded points.
func (g *Grid) Len() int {
	return g.n
}

// Cell returns the index of the cell containing p, or -1 if p lies outside
// the grid or the grid is disabled.
func (g *Grid) Cell(p Point) int {
	if !g.Enabled() || p.X < 0 || p.Y < 0 {
		return -1
	}
	cx := int(p.X / g.sep)
	cy := int(p.Y / g.sep)
	if cx >= g.cols || cy >= g.rows {
		return -1
	}
	return cy*g.cols + cx
}

// Collides reports whether p lies closer than the separation to any point
// already recorded in its cell.
func (g *Grid) Collides(p Point) bool {
	i := g.Cell(p)
	if i < 0 {
		return false
	}
	for _, q := range g.cells[i] {
		if p.Dist(q) < g.sep {
			return true
		}
	}
	return false
}

// Add records p in its cell.
func (g *Grid) Add(p Point) {
	i := g.Cell(p)
	if i < 0 {
		return
	}
	g.cells[i] = append(g.cells[i], p)
	g.n++
}

// Commit records every vertex of c.
func (g *Grid) Commit(c Curve) {
	if !g.Enabled() {
		return
	}
	for _, p := range c {
		g.Add(p)
	}
}
