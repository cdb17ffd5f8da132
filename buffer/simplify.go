package buffer

import (
	"math"

	"github.com/katalvlaran/lvlgeo/geom"
)

// simplifyLine removes vertices forming concavities so shallow that they
// cannot materially change the offset curve at the given tolerance. The
// sign of tol selects which side's concavities are eligible: positive
// smooths the left side, negative the right — matching the offset side
// about to be built. Convex corners, the first segment, and the last vertex
// are never removed, so end caps stay faithful to the true line ends.
//
// The scan repeats until a full pass deletes nothing, so the result is a
// fixpoint: simplifying twice equals simplifying once.
//
// Time: O(k·n) for k deletion passes.
func simplifyLine(pts []geom.Point, tol float64) []geom.Point {
	s := &lineSimplifier{
		pts:     pts,
		tol:     math.Abs(tol),
		deleted: make([]bool, len(pts)),
		// deletable concavities turn towards the side being smoothed
		concaveOrient: geom.CounterClockwise,
	}
	if tol < 0 {
		s.concaveOrient = geom.Clockwise
	}
	for s.deletePass() {
	}
	return s.collapse()
}

// sampleCount is the number of intermediate points checked (evenly sampled)
// when verifying that a whole deleted run stays within tolerance of its
// chord. Sampling guards against "walking over" a real feature one shallow
// step at a time.
const sampleCount = 10

type lineSimplifier struct {
	pts           []geom.Point
	tol           float64
	deleted       []bool
	concaveOrient int
}

// deletePass runs one full sliding-window sweep, returning whether any
// vertex was deleted.
func (s *lineSimplifier) deletePass() bool {
	changed := false
	// starting at the second vertex keeps the first segment intact
	index := 1
	midIndex := s.nextLive(index)
	lastIndex := s.nextLive(midIndex)
	for lastIndex < len(s.pts) {
		if s.isDeletable(index, midIndex, lastIndex) {
			s.deleted[midIndex] = true
			changed = true
			index = lastIndex
		} else {
			index = midIndex
		}
		midIndex = s.nextLive(index)
		lastIndex = s.nextLive(midIndex)
	}
	return changed
}

func (s *lineSimplifier) nextLive(index int) int {
	next := index + 1
	for next < len(s.pts) && s.deleted[next] {
		next++
	}
	return next
}

func (s *lineSimplifier) isDeletable(i0, i1, i2 int) bool {
	p0, p1, p2 := s.pts[i0], s.pts[i1], s.pts[i2]
	if !s.isConcave(p0, p1, p2) {
		return false
	}
	if !s.isShallow(p0, p1, p2) {
		return false
	}
	return s.isShallowSampled(p0, p2, i0, i2)
}

func (s *lineSimplifier) isConcave(p0, p1, p2 geom.Point) bool {
	return geom.OrientationIndex(p0, p1, p2) == s.concaveOrient
}

func (s *lineSimplifier) isShallow(p0, p1, p2 geom.Point) bool {
	return geom.DistancePointToSegment(p1, p0, p2) < s.tol
}

// isShallowSampled checks every (run/sampleCount)-th original point of the
// run i0..i2 against the chord p0-p2.
func (s *lineSimplifier) isShallowSampled(p0, p2 geom.Point, i0, i2 int) bool {
	inc := (i2 - i0) / sampleCount
	if inc <= 0 {
		inc = 1
	}
	for i := i0; i < i2; i += inc {
		if !s.isShallow(p0, s.pts[i], p2) {
			return false
		}
	}
	return true
}

func (s *lineSimplifier) collapse() []geom.Point {
	out := make([]geom.Point, 0, len(s.pts))
	for i, p := range s.pts {
		if !s.deleted[i] {
			out = append(out, p)
		}
	}
	return out
}
