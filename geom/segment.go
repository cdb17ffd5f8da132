package geom

import "math"

// LineSegment is an ordered pair of points. Unlike Point it is mutable, so
// hot loops (the offset generator) can reuse one instance per pass.
type LineSegment struct {
	P0, P1 Point
}

// SetPoints assigns both endpoints at once.
func (s *LineSegment) SetPoints(p0, p1 Point) {
	s.P0 = p0
	s.P1 = p1
}

// Reverse swaps the segment's endpoints in place.
func (s *LineSegment) Reverse() {
	s.P0, s.P1 = s.P1, s.P0
}

// Length returns the Euclidean length of the segment.
func (s *LineSegment) Length() float64 { return s.P0.Distance(s.P1) }

// MinX returns the smaller x ordinate of the two endpoints.
func (s *LineSegment) MinX() float64 { return math.Min(s.P0.X, s.P1.X) }

// MaxX returns the larger x ordinate of the two endpoints.
func (s *LineSegment) MaxX() float64 { return math.Max(s.P0.X, s.P1.X) }

// IsHorizontal reports whether both endpoints share the same y ordinate.
func (s *LineSegment) IsHorizontal() bool { return s.P0.Y == s.P1.Y }

// PointAlong returns the point at parametric position t along the segment
// (t=0 → P0, t=1 → P1; values outside [0,1] extrapolate).
func (s *LineSegment) PointAlong(t float64) Point {
	return Point{
		X: s.P0.X + t*(s.P1.X-s.P0.X),
		Y: s.P0.Y + t*(s.P1.Y-s.P0.Y),
	}
}

// PointAlongOffset returns the point at parametric position t along the
// segment, displaced perpendicularly by d (positive d is to the left of the
// P0→P1 direction).
func (s *LineSegment) PointAlongOffset(t, d float64) Point {
	segX := s.P0.X + t*(s.P1.X-s.P0.X)
	segY := s.P0.Y + t*(s.P1.Y-s.P0.Y)
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	var ux, uy float64
	if d != 0 {
		// length == 0 would make the offset direction undefined
		ux = d * dx / length
		uy = d * dy / length
	}
	return Point{X: segX - uy, Y: segY + ux}
}

// ProjectionFactor returns the parametric position of the projection of p
// onto the (infinite) line through the segment.
func (s *LineSegment) ProjectionFactor(p Point) float64 {
	if p.Equals(s.P0) {
		return 0
	}
	if p.Equals(s.P1) {
		return 1
	}
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y
	length2 := dx*dx + dy*dy
	if length2 <= 0 {
		return math.NaN()
	}
	return ((p.X-s.P0.X)*dx + (p.Y-s.P0.Y)*dy) / length2
}

// OrientationIndexOf returns the orientation of other relative to this
// segment: +1 if other lies entirely to the left, -1 entirely to the right,
// 0 if it crosses or is collinear.
func (s *LineSegment) OrientationIndexOf(other *LineSegment) int {
	o0 := OrientationIndex(s.P0, s.P1, other.P0)
	o1 := OrientationIndex(s.P0, s.P1, other.P1)
	if o0 >= 0 && o1 >= 0 {
		return maxInt(o0, o1)
	}
	if o0 <= 0 && o1 <= 0 {
		return minInt(o0, o1)
	}
	return 0
}

// CompareTo orders segments lexicographically by (P0, P1); used only as a
// deterministic tiebreaker.
func (s *LineSegment) CompareTo(other *LineSegment) int {
	if c := comparePoints(s.P0, other.P0); c != 0 {
		return c
	}
	return comparePoints(s.P1, other.P1)
}

func comparePoints(a, b Point) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
