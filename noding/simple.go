package noding

import "github.com/katalvlaran/lvlgeo/geom"

// Noder computes a non-crossing arrangement of segment strings. Payloads
// attached to input strings must survive onto their substrings unchanged.
type Noder interface {
	// ComputeNodes finds all intersections among the input strings and
	// records split points on them.
	ComputeNodes(strings []*SegmentString) error

	// NodedSubstrings returns the non-crossing substrings produced by the
	// last ComputeNodes call.
	NodedSubstrings() []*SegmentString
}

// SimpleNoder nodes by testing every segment pair with a robust line
// intersector, short-circuiting on segment envelopes.
//
// Time: O(n²) in the total segment count. For buffer inputs the curves are
// short enough that the quadratic bound is acceptable; callers needing a
// fixed grid use SnapRoundingNoder instead.
type SimpleNoder struct {
	// PM optionally rounds computed intersection points onto a grid.
	PM *geom.PrecisionModel

	noded []*SegmentString
}

// ComputeNodes records intersections between (and within) all strings.
func (n *SimpleNoder) ComputeNodes(strings []*SegmentString) error {
	li := geom.LineIntersector{PM: n.PM}
	for i, ssA := range strings {
		for j := i; j < len(strings); j++ {
			intersectStrings(&li, ssA, strings[j], i == j)
		}
	}
	n.noded = n.noded[:0]
	for _, ss := range strings {
		n.noded = append(n.noded, ss.splitSubstrings()...)
		ss.nodes = nil
	}
	return nil
}

// NodedSubstrings returns the split results of the last ComputeNodes call.
func (n *SimpleNoder) NodedSubstrings() []*SegmentString { return n.noded }

// intersectStrings adds intersection nodes between every segment of a and
// every segment of b. When self is true (a == b), adjacent and identical
// segment pairs are skipped unless they properly cross.
func intersectStrings(li *geom.LineIntersector, a, b *SegmentString, self bool) {
	aPts := a.Coordinates()
	bPts := b.Coordinates()
	for i := 0; i < len(aPts)-1; i++ {
		jStart := 0
		if self {
			jStart = i
		}
		for j := jStart; j < len(bPts)-1; j++ {
			if self && i == j {
				continue
			}
			li.ComputeIntersection(aPts[i], aPts[i+1], bPts[j], bPts[j+1])
			if self && isTrivialSelfIntersection(li, i, j, aPts) {
				// adjacent segments of one string meeting only at their
				// shared vertex carry no information
				continue
			}
			switch li.IntersectionNum() {
			case geom.PointIntersection:
				pt := li.Intersection(0)
				a.AddIntersection(pt, i)
				b.AddIntersection(pt, j)
			case geom.CollinearIntersection:
				for k := 0; k < 2; k++ {
					pt := li.Intersection(k)
					a.AddIntersection(pt, i)
					b.AddIntersection(pt, j)
				}
			}
		}
	}
}

// isTrivialSelfIntersection reports whether the last computed intersection
// is the shared vertex of two consecutive segments (including the closing
// vertex of a ring).
func isTrivialSelfIntersection(li *geom.LineIntersector, i, j int, pts []geom.Point) bool {
	if li.IntersectionNum() != geom.PointIntersection || li.IsProper() {
		return false
	}
	if j == i+1 || i == j+1 {
		return true
	}
	if pts[0].Equals(pts[len(pts)-1]) {
		// ring wraparound: first and last segments share the closing vertex
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo == 0 && hi == len(pts)-2 {
			return true
		}
	}
	return false
}
