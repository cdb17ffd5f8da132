package geom

import (
	"fmt"
	"math"
)

// Point is an immutable 2-D coordinate.
//
// Equality is exact: two Points are equal iff both ordinates are bitwise
// equal. Tolerance-based comparisons are always explicit (Distance).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Equals reports exact 2-D equality with q.
func (p Point) Equals(q Point) bool { return p.X == q.X && p.Y == q.Y }

// String renders the point as "(x, y)" for diagnostics and errors.
func (p Point) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }

// DistancePointToSegment returns the distance from p to the segment a-b.
// Degenerate segments (a == b) reduce to point distance.
func DistancePointToSegment(p, a, b Point) float64 {
	if a.Equals(b) {
		return p.Distance(a)
	}
	// projection factor of p onto a->b
	dx := b.X - a.X
	dy := b.Y - a.Y
	r := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if r <= 0 {
		return p.Distance(a)
	}
	if r >= 1 {
		return p.Distance(b)
	}
	// perpendicular distance
	s := ((a.Y-p.Y)*dx - (a.X-p.X)*dy) / (dx*dx + dy*dy)
	return math.Abs(s) * math.Sqrt(dx*dx+dy*dy)
}

// CopyPoints returns an independent copy of pts.
func CopyPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// RemoveRepeatedPoints drops consecutive duplicate vertices, preserving
// order. The result shares no storage with the input.
func RemoveRepeatedPoints(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p.Equals(out[len(out)-1]) {
			continue
		}
		out = append(out, p)
	}
	return out
}
