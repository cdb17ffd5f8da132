package geom

import "math"

// Intersection classification reported by LineIntersector.
const (
	// NoIntersection: the segments do not meet.
	NoIntersection = 0
	// PointIntersection: the segments meet in exactly one point.
	PointIntersection = 1
	// CollinearIntersection: the segments overlap along a shared line.
	CollinearIntersection = 2
)

// LineIntersector computes the intersection of two line segments, robustly
// classifying the result as empty, a single point, or a collinear overlap.
//
// One instance may be reused across many ComputeIntersection calls; it is
// not safe for concurrent use.
type LineIntersector struct {
	// PM optionally rounds computed (non-vertex) intersection points.
	PM *PrecisionModel

	result int
	proper bool
	intPt  [2]Point
}

// ComputeIntersection computes the intersection of segments p1-p2 and q1-q2
// and stores the classification for the accessor methods.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 Point) {
	li.proper = false
	li.result = li.computeIntersect(p1, p2, q1, q2)
}

// HasIntersection reports whether the last computed pair intersects at all.
func (li *LineIntersector) HasIntersection() bool { return li.result != NoIntersection }

// IntersectionNum returns the number of intersection points (0, 1 or 2).
func (li *LineIntersector) IntersectionNum() int { return li.result }

// Intersection returns the i-th intersection point of the last computation.
func (li *LineIntersector) Intersection(i int) Point { return li.intPt[i] }

// IsProper reports whether the single intersection point lies strictly in
// the interior of both segments.
func (li *LineIntersector) IsProper() bool { return li.HasIntersection() && li.proper }

func (li *LineIntersector) computeIntersect(p1, p2, q1, q2 Point) int {
	// cheap envelope rejection
	if !envelopesOverlap(p1, p2, q1, q2) {
		return NoIntersection
	}

	pq1 := OrientationIndex(p1, p2, q1)
	pq2 := OrientationIndex(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return NoIntersection
	}
	qp1 := OrientationIndex(q1, q2, p1)
	qp2 := OrientationIndex(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return NoIntersection
	}

	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		return li.computeCollinearIntersection(p1, p2, q1, q2)
	}

	if pq1 == 0 || pq2 == 0 || qp1 == 0 || qp2 == 0 {
		// the intersection is at a vertex of at least one segment
		li.proper = false
		switch {
		case p1.Equals(q1) || p1.Equals(q2):
			li.intPt[0] = p1
		case p2.Equals(q1) || p2.Equals(q2):
			li.intPt[0] = p2
		case pq1 == 0:
			li.intPt[0] = q1
		case pq2 == 0:
			li.intPt[0] = q2
		case qp1 == 0:
			li.intPt[0] = p1
		default:
			li.intPt[0] = p2
		}
	} else {
		li.proper = true
		li.intPt[0] = li.interiorIntersection(p1, p2, q1, q2)
	}
	return PointIntersection
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 Point) int {
	q1inP := pointInEnvelope(q1, p1, p2)
	q2inP := pointInEnvelope(q2, p1, p2)
	p1inQ := pointInEnvelope(p1, q1, q2)
	p2inQ := pointInEnvelope(p2, q1, q2)

	switch {
	case q1inP && q2inP:
		li.intPt[0], li.intPt[1] = q1, q2
		return CollinearIntersection
	case p1inQ && p2inQ:
		li.intPt[0], li.intPt[1] = p1, p2
		return CollinearIntersection
	case q1inP && p1inQ:
		li.intPt[0], li.intPt[1] = q1, p1
		if q1.Equals(p1) && !q2inP && !p2inQ {
			return PointIntersection
		}
		return CollinearIntersection
	case q1inP && p2inQ:
		li.intPt[0], li.intPt[1] = q1, p2
		if q1.Equals(p2) && !q2inP && !p1inQ {
			return PointIntersection
		}
		return CollinearIntersection
	case q2inP && p1inQ:
		li.intPt[0], li.intPt[1] = q2, p1
		if q2.Equals(p1) && !q1inP && !p2inQ {
			return PointIntersection
		}
		return CollinearIntersection
	case q2inP && p2inQ:
		li.intPt[0], li.intPt[1] = q2, p2
		if q2.Equals(p2) && !q1inP && !p1inQ {
			return PointIntersection
		}
		return CollinearIntersection
	}
	return NoIntersection
}

// interiorIntersection computes the proper intersection point, conditioning
// the computation by translating both segments towards the origin. If the
// computed point escapes both envelopes (extreme ill-conditioning) it is
// replaced by the nearest segment endpoint.
func (li *LineIntersector) interiorIntersection(p1, p2, q1, q2 Point) Point {
	pt, ok := LineLineIntersection(p1, p2, q1, q2)
	if !ok || !(pointInEnvelope(pt, p1, p2) || pointInEnvelope(pt, q1, q2)) {
		pt = nearestEndpoint(p1, p2, q1, q2)
	}
	if li.PM != nil {
		pt = li.PM.MakePrecise(pt)
	}
	return pt
}

// LineLineIntersection returns the intersection point of the infinite lines
// through p1-p2 and q1-q2, or ok=false if the lines are parallel.
func LineLineIntersection(p1, p2, q1, q2 Point) (Point, bool) {
	// translate to the collective midpoint for numerical conditioning
	midX := (p1.X + p2.X + q1.X + q2.X) / 4
	midY := (p1.Y + p2.Y + q1.Y + q2.Y) / 4
	p1x, p1y := p1.X-midX, p1.Y-midY
	p2x, p2y := p2.X-midX, p2.Y-midY
	q1x, q1y := q1.X-midX, q1.Y-midY
	q2x, q2y := q2.X-midX, q2.Y-midY

	// homogeneous line coordinates
	px := p1y - p2y
	py := p2x - p1x
	pw := p1x*p2y - p2x*p1y
	qx := q1y - q2y
	qy := q2x - q1x
	qw := q1x*q2y - q2x*q1y

	w := px*qy - qx*py
	if w == 0 {
		return Point{}, false
	}
	x := py*qw - qy*pw
	y := qx*pw - px*qw

	xInt := x/w + midX
	yInt := y/w + midY
	if math.IsNaN(xInt) || math.IsInf(xInt, 0) || math.IsNaN(yInt) || math.IsInf(yInt, 0) {
		return Point{}, false
	}
	return Point{X: xInt, Y: yInt}, true
}

// nearestEndpoint returns the endpoint of either segment nearest to the
// other segment.
func nearestEndpoint(p1, p2, q1, q2 Point) Point {
	nearest := p1
	minDist := DistancePointToSegment(p1, q1, q2)
	if d := DistancePointToSegment(p2, q1, q2); d < minDist {
		minDist = d
		nearest = p2
	}
	if d := DistancePointToSegment(q1, p1, p2); d < minDist {
		minDist = d
		nearest = q1
	}
	if d := DistancePointToSegment(q2, p1, p2); d < minDist {
		nearest = q2
	}
	return nearest
}

func pointInEnvelope(p, a, b Point) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

func envelopesOverlap(p1, p2, q1, q2 Point) bool {
	if math.Min(q1.X, q2.X) > math.Max(p1.X, p2.X) ||
		math.Max(q1.X, q2.X) < math.Min(p1.X, p2.X) ||
		math.Min(q1.Y, q2.Y) > math.Max(p1.Y, p2.Y) ||
		math.Max(q1.Y, q2.Y) < math.Min(p1.Y, p2.Y) {
		return false
	}
	return true
}
