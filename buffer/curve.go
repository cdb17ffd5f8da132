package buffer

import (
	"math"

	"github.com/katalvlaran/lvlgeo/geom"
)

// offsetCurveBuilder computes the raw offset curve for a single line or
// ring at a fixed distance. "Raw" means the curve may self-intersect;
// noding and depth labelling resolve that downstream.
type offsetCurveBuilder struct {
	params   Params
	pm       *geom.PrecisionModel
	distance float64
}

func newOffsetCurveBuilder(pm *geom.PrecisionModel, params Params, distance float64) *offsetCurveBuilder {
	return &offsetCurveBuilder{params: params, pm: pm, distance: distance}
}

// simplifyTolerance returns the simplification tolerance for a buffer
// distance: a fixed fraction of the distance.
func (b *offsetCurveBuilder) simplifyTolerance(bufDistance float64) float64 {
	return bufDistance * b.params.SimplifyFactor
}

// lineCurve returns the offset curve ring for a line input, or nil when the
// offset is empty (zero distance, or negative distance on a double-sided
// buffer).
func (b *offsetCurveBuilder) lineCurve(pts []geom.Point) []geom.Point {
	if b.isLineOffsetEmpty() {
		return nil
	}
	posDistance := math.Abs(b.distance)

	if len(pts) <= 1 {
		return b.pointCurve(pts[0], posDistance)
	}
	if b.params.SingleSided {
		isRightSide := b.distance < 0
		return b.singleSidedLineCurve(pts, posDistance, isRightSide)
	}
	return b.lineBufferCurve(pts, posDistance)
}

// isLineOffsetEmpty reports whether a line's offset curve is degenerate at
// the configured distance.
func (b *offsetCurveBuilder) isLineOffsetEmpty() bool {
	if b.distance == 0 {
		return true
	}
	// a negative distance erodes a line completely, unless single-sided
	if b.distance < 0 && !b.params.SingleSided {
		return true
	}
	return false
}

// pointCurve returns the cap curve around a single point.
func (b *offsetCurveBuilder) pointCurve(p geom.Point, distance float64) []geom.Point {
	g := newOffsetSegmentGenerator(b.pm, b.params, distance)
	switch b.params.EndCapStyle {
	case EndCapRound:
		g.createCircle(p)
	case EndCapSquare:
		g.createSquare(p)
	default:
		// a flat cap leaves nothing around a point
	}
	return g.coordinates()
}

// lineBufferCurve builds the double-sided offset ring of an open line:
// the left offset forward, an end cap, the right offset backward, and the
// cap at the start.
func (b *offsetCurveBuilder) lineBufferCurve(pts []geom.Point, distance float64) []geom.Point {
	g := newOffsetSegmentGenerator(b.pm, b.params, distance)
	distTol := b.simplifyTolerance(distance)

	// forward pass over the left-simplified line
	simp1 := simplifyLine(pts, distTol)
	n1 := len(simp1) - 1
	g.initSideSegments(simp1[0], simp1[1], sideLeft)
	for i := 2; i <= n1; i++ {
		g.addNextSegment(simp1[i], true)
	}
	g.addLastSegment()
	g.addLineEndCap(simp1[n1-1], simp1[n1])

	// backward pass over the right-simplified line
	simp2 := simplifyLine(pts, -distTol)
	n2 := len(simp2) - 1
	g.initSideSegments(simp2[n2], simp2[n2-1], sideLeft)
	for i := n2 - 2; i >= 0; i-- {
		g.addNextSegment(simp2[i], true)
	}
	g.addLastSegment()
	g.addLineEndCap(simp2[1], simp2[0])

	g.closeRing()
	return g.coordinates()
}

// singleSidedLineCurve builds the one-sided offset ring of an open line:
// the raw input on the flat side, the offset on the buffered side, joined
// by flat ends.
func (b *offsetCurveBuilder) singleSidedLineCurve(pts []geom.Point, distance float64, isRightSide bool) []geom.Point {
	g := newOffsetSegmentGenerator(b.pm, b.params, distance)
	distTol := b.simplifyTolerance(distance)

	// the input line itself closes the unbuffered side
	g.addSegments(pts, isRightSide)

	if isRightSide {
		simp := simplifyLine(pts, -distTol)
		n := len(simp) - 1
		g.initSideSegments(simp[n], simp[n-1], sideLeft)
		g.addFirstSegment()
		for i := n - 2; i >= 0; i-- {
			g.addNextSegment(simp[i], true)
		}
	} else {
		simp := simplifyLine(pts, distTol)
		n := len(simp) - 1
		g.initSideSegments(simp[0], simp[1], sideLeft)
		g.addFirstSegment()
		for i := 2; i <= n; i++ {
			g.addNextSegment(simp[i], true)
		}
	}
	g.addLastSegment()
	g.closeRing()
	return g.coordinates()
}

// ringCurve returns the offset curve for one side of a closed ring. Rings
// too short to enclose area degrade to line curves; a zero distance copies
// the ring unchanged.
func (b *offsetCurveBuilder) ringCurve(pts []geom.Point, side offsetSide) []geom.Point {
	if len(pts) <= 2 {
		return b.lineCurve(pts)
	}
	if b.distance == 0 {
		return geom.CopyPoints(pts)
	}

	g := newOffsetSegmentGenerator(b.pm, b.params, b.distance)
	distTol := b.simplifyTolerance(b.distance)
	// simplification must not cross to the offset side
	if side == sideRight {
		distTol = -distTol
	}
	simp := simplifyLine(pts, distTol)
	n := len(simp) - 1

	g.initSideSegments(simp[n-1], simp[0], side)
	for i := 1; i <= n; i++ {
		addStartPoint := i != 1
		g.addNextSegment(simp[i], addStartPoint)
	}
	g.closeRing()
	return g.coordinates()
}
