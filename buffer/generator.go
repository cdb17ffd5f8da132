package buffer

import (
	"math"

	"github.com/katalvlaran/lvlgeo/geom"
)

// Empirically tuned robustness constants. Their values are preserved
// exactly for output compatibility; see DESIGN.md.
const (
	// offsetSegmentSeparationFactor scales the buffer distance into the
	// threshold below which two offset segment endpoints at an outside turn
	// are snapped to a single point.
	offsetSegmentSeparationFactor = 1.0e-3

	// insideTurnVertexSnapDistanceFactor scales the buffer distance into
	// the threshold below which the endpoints at a non-intersecting inside
	// turn are considered coincident.
	insideTurnVertexSnapDistanceFactor = 1.0e-3

	// curveVertexSnapDistanceFactor scales the buffer distance into the
	// minimum spacing of emitted curve vertices.
	curveVertexSnapDistanceFactor = 1.0e-6

	// maxClosingSegLenFactor positions closing-segment points very close to
	// the offset endpoints for fine round joins: shorter closing segments
	// reduce downstream noding cost.
	maxClosingSegLenFactor = 80
)

// offsetSide distinguishes which side of the input line is being offset.
type offsetSide int8

const (
	sideLeft  offsetSide = 1
	sideRight offsetSide = 2
)

// offsetSegmentString accumulates the vertices of one raw offset curve,
// rounding them onto the working precision model and dropping vertices
// closer together than a minimum spacing.
type offsetSegmentString struct {
	pts        []geom.Point
	pm         *geom.PrecisionModel
	minSpacing float64
}

func (o *offsetSegmentString) addPt(p geom.Point) {
	p = o.pm.MakePrecise(p)
	if o.isRedundant(p) {
		return
	}
	o.pts = append(o.pts, p)
}

func (o *offsetSegmentString) addPts(pts []geom.Point, forward bool) {
	if forward {
		for _, p := range pts {
			o.addPt(p)
		}
		return
	}
	for i := len(pts) - 1; i >= 0; i-- {
		o.addPt(pts[i])
	}
}

// isRedundant reports whether p is within the minimum spacing of the last
// emitted vertex.
func (o *offsetSegmentString) isRedundant(p geom.Point) bool {
	if len(o.pts) < 1 {
		return false
	}
	return o.pts[len(o.pts)-1].Distance(p) < o.minSpacing
}

func (o *offsetSegmentString) closeRing() {
	if len(o.pts) < 1 {
		return
	}
	start := o.pts[0]
	if o.pts[len(o.pts)-1].Equals(start) {
		return
	}
	o.pts = append(o.pts, start)
}

func (o *offsetSegmentString) coordinates() []geom.Point { return o.pts }

// offsetSegmentGenerator emits the raw offset polyline for one side of one
// ring or line, fed one vertex at a time. One generator serves exactly one
// offset pass; it is created per ring/line per side and discarded after its
// coordinates are read.
type offsetSegmentGenerator struct {
	params   Params
	distance float64
	pm       *geom.PrecisionModel

	// maximum deviation of a fillet chord from the true arc
	maxCurveSegmentError float64

	// angular spacing of round fillet points
	filletAngleQuantum float64

	// weight placed on the offset endpoint when positioning closing-segment
	// points at narrow inside turns; 0 falls back to the true corner vertex
	closingSegLengthFactor int

	segList offsetSegmentString
	li      geom.LineIntersector

	// sliding vertex window and the offsets of its two segments
	s0, s1, s2     geom.Point
	seg0, seg1     geom.LineSegment
	offset0        geom.LineSegment
	offset1        geom.LineSegment
	side           offsetSide
	hasNarrowAngle bool
}

func newOffsetSegmentGenerator(pm *geom.PrecisionModel, params Params, distance float64) *offsetSegmentGenerator {
	g := &offsetSegmentGenerator{
		params:                 params,
		distance:               distance,
		pm:                     pm,
		filletAngleQuantum:     math.Pi / 2 / float64(params.QuadrantSegments),
		closingSegLengthFactor: 1,
	}
	// non-round joins at high fineness would interact badly with the quantum
	if params.QuadrantSegments >= 8 && params.JoinStyle == JoinRound {
		g.closingSegLengthFactor = maxClosingSegLenFactor
	}
	g.maxCurveSegmentError = distance * (1 - math.Cos(g.filletAngleQuantum/2))
	g.segList = offsetSegmentString{
		pm:         pm,
		minSpacing: distance * curveVertexSnapDistanceFactor,
	}
	return g
}

// narrowConcaveAngle reports whether any inside turn was too acute for the
// offset segments to intersect, requiring closing segments.
func (g *offsetSegmentGenerator) narrowConcaveAngle() bool { return g.hasNarrowAngle }

// coordinates returns the emitted curve.
func (g *offsetSegmentGenerator) coordinates() []geom.Point { return g.segList.coordinates() }

// initSideSegments seeds the vertex window with the first segment of the
// side being offset.
func (g *offsetSegmentGenerator) initSideSegments(s1, s2 geom.Point, side offsetSide) {
	g.s1 = s1
	g.s2 = s2
	g.side = side
	g.seg1.SetPoints(s1, s2)
	computeOffsetSegment(&g.seg1, side, g.distance, &g.offset1)
}

// addFirstSegment emits the start of the current offset segment.
func (g *offsetSegmentGenerator) addFirstSegment() { g.segList.addPt(g.offset1.P0) }

// addLastSegment emits the end of the current offset segment.
func (g *offsetSegmentGenerator) addLastSegment() { g.segList.addPt(g.offset1.P1) }

// addSegments feeds a whole chain of raw input points through the
// accumulator (used for the flat side of single-sided buffers).
func (g *offsetSegmentGenerator) addSegments(pts []geom.Point, forward bool) {
	g.segList.addPts(pts, forward)
}

// closeRing closes the emitted curve into a ring.
func (g *offsetSegmentGenerator) closeRing() { g.segList.closeRing() }

// addNextSegment advances the window to p and emits the join geometry for
// the corner at the shared vertex.
func (g *offsetSegmentGenerator) addNextSegment(p geom.Point, addStartPoint bool) {
	// shift the window
	g.s0 = g.s1
	g.s1 = g.s2
	g.s2 = p
	g.seg0.SetPoints(g.s0, g.s1)
	computeOffsetSegment(&g.seg0, g.side, g.distance, &g.offset0)
	g.seg1.SetPoints(g.s1, g.s2)
	computeOffsetSegment(&g.seg1, g.side, g.distance, &g.offset1)

	if g.s1.Equals(g.s2) {
		return
	}

	orientation := geom.OrientationIndex(g.s0, g.s1, g.s2)
	outsideTurn := (orientation == geom.Clockwise && g.side == sideLeft) ||
		(orientation == geom.CounterClockwise && g.side == sideRight)

	switch {
	case orientation == geom.Collinear:
		g.addCollinear(addStartPoint)
	case outsideTurn:
		g.addOutsideTurn(orientation, addStartPoint)
	default:
		g.addInsideTurn()
	}
}

func (g *offsetSegmentGenerator) addCollinear(addStartPoint bool) {
	g.li.ComputeIntersection(g.s0, g.s1, g.s1, g.s2)
	// two intersections means the segments are collinear and reversed:
	// the line doubles back on itself
	if g.li.IntersectionNum() < geom.CollinearIntersection {
		return
	}
	if g.params.JoinStyle == JoinBevel || g.params.JoinStyle == JoinMitre {
		if addStartPoint {
			g.segList.addPt(g.offset0.P1)
		}
		g.segList.addPt(g.offset1.P0)
		return
	}
	g.addCornerFillet(g.s1, g.offset0.P1, g.offset1.P0, geom.Clockwise, g.distance)
}

func (g *offsetSegmentGenerator) addOutsideTurn(orientation int, addStartPoint bool) {
	// near-coincident offset endpoints: snap to one point for robustness
	if g.offset0.P1.Distance(g.offset1.P0) < g.distance*offsetSegmentSeparationFactor {
		g.segList.addPt(g.offset0.P1)
		return
	}
	switch g.params.JoinStyle {
	case JoinMitre:
		g.addMitreJoin(g.s1)
	case JoinBevel:
		g.addBevelJoin()
	default:
		if addStartPoint {
			g.segList.addPt(g.offset0.P1)
		}
		g.addCornerFillet(g.s1, g.offset0.P1, g.offset1.P0, orientation, g.distance)
		g.segList.addPt(g.offset1.P0)
	}
}

func (g *offsetSegmentGenerator) addInsideTurn() {
	g.li.ComputeIntersection(g.offset0.P0, g.offset0.P1, g.offset1.P0, g.offset1.P1)
	if g.li.HasIntersection() {
		g.segList.addPt(g.li.Intersection(0))
		return
	}

	// The offset segments do not intersect: the angle is too narrow for
	// the offset distance. Connect them with closing segments placed a
	// fraction of the way back towards the true corner vertex; the small
	// geometric deviation buys guaranteed termination.
	g.hasNarrowAngle = true
	if g.offset0.P1.Distance(g.offset1.P0) < g.distance*insideTurnVertexSnapDistanceFactor {
		g.segList.addPt(g.offset0.P1)
		return
	}
	g.segList.addPt(g.offset0.P1)
	if g.closingSegLengthFactor > 0 {
		f := float64(g.closingSegLengthFactor)
		mid0 := geom.Point{
			X: (f*g.offset0.P1.X + g.s1.X) / (f + 1),
			Y: (f*g.offset0.P1.Y + g.s1.Y) / (f + 1),
		}
		g.segList.addPt(mid0)
		mid1 := geom.Point{
			X: (f*g.offset1.P0.X + g.s1.X) / (f + 1),
			Y: (f*g.offset1.P0.Y + g.s1.Y) / (f + 1),
		}
		g.segList.addPt(mid1)
	} else {
		g.segList.addPt(g.s1)
	}
	g.segList.addPt(g.offset1.P0)
}

// addMitreJoin emits a mitred corner at the true vertex p, falling back to
// a limited mitre (bevel at the mitre-limit distance) when the offset
// segments are parallel or the mitre tip exceeds the limit.
func (g *offsetSegmentGenerator) addMitreJoin(p geom.Point) {
	intPt, ok := geom.LineLineIntersection(g.offset0.P0, g.offset0.P1, g.offset1.P0, g.offset1.P1)
	if ok {
		mitreRatio := 1.0
		if g.distance > 0 {
			mitreRatio = intPt.Distance(p) / math.Abs(g.distance)
		}
		if mitreRatio <= g.params.MitreLimit {
			g.segList.addPt(intPt)
			return
		}
	}
	g.addLimitedMitreJoin(g.distance, g.params.MitreLimit)
}

// addLimitedMitreJoin emits a bevel positioned at the mitre-limit distance
// along the bisector of the corner's reflex angle.
func (g *offsetSegmentGenerator) addLimitedMitreJoin(distance, mitreLimit float64) {
	basePt := g.seg0.P1 // the true corner vertex

	ang0 := geom.Angle(basePt, g.seg0.P0)
	// oriented angle between the two segments at the corner
	angDiffHalf := geom.AngleBetweenOriented(g.seg0.P0, basePt, g.seg1.P1) / 2
	// bisector of the interior angle, rotated by pi to the reflex side
	midAng := geom.NormalizeAngle(ang0 + angDiffHalf)
	mitreMidAng := geom.NormalizeAngle(midAng + math.Pi)

	// the mitre limit fixes the distance of the bevel from the corner
	mitreDist := mitreLimit * distance
	// the bevel ends lie on the offset lines, half a bevel length either
	// side of the bisector
	bevelDelta := mitreDist * math.Abs(math.Sin(angDiffHalf))
	bevelHalfLen := distance - bevelDelta

	bevelMid := geom.Point{
		X: basePt.X + mitreDist*math.Cos(mitreMidAng),
		Y: basePt.Y + mitreDist*math.Sin(mitreMidAng),
	}
	mitreMidLine := geom.LineSegment{P0: basePt, P1: bevelMid}
	bevelEndLeft := mitreMidLine.PointAlongOffset(1, bevelHalfLen)
	bevelEndRight := mitreMidLine.PointAlongOffset(1, -bevelHalfLen)

	if g.side == sideLeft {
		g.segList.addPt(bevelEndLeft)
		g.segList.addPt(bevelEndRight)
	} else {
		g.segList.addPt(bevelEndRight)
		g.segList.addPt(bevelEndLeft)
	}
}

// addBevelJoin connects the two offset endpoints directly.
func (g *offsetSegmentGenerator) addBevelJoin() {
	g.segList.addPt(g.offset0.P1)
	g.segList.addPt(g.offset1.P0)
}

// addLineEndCap emits the cap geometry closing the offset at the line end
// p0→p1.
func (g *offsetSegmentGenerator) addLineEndCap(p0, p1 geom.Point) {
	seg := geom.LineSegment{P0: p0, P1: p1}
	var offsetL, offsetR geom.LineSegment
	computeOffsetSegment(&seg, sideLeft, g.distance, &offsetL)
	computeOffsetSegment(&seg, sideRight, g.distance, &offsetR)

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	angle := math.Atan2(dy, dx)

	switch g.params.EndCapStyle {
	case EndCapRound:
		// semicircle from the left offset around to the right offset
		g.segList.addPt(offsetL.P1)
		g.addDirectedFillet(p1, angle+math.Pi/2, angle-math.Pi/2, geom.Clockwise, g.distance)
		g.segList.addPt(offsetR.P1)
	case EndCapFlat:
		g.segList.addPt(offsetL.P1)
		g.segList.addPt(offsetR.P1)
	case EndCapSquare:
		sideOffset := geom.Point{
			X: math.Abs(g.distance) * math.Cos(angle),
			Y: math.Abs(g.distance) * math.Sin(angle),
		}
		g.segList.addPt(geom.Point{X: offsetL.P1.X + sideOffset.X, Y: offsetL.P1.Y + sideOffset.Y})
		g.segList.addPt(geom.Point{X: offsetR.P1.X + sideOffset.X, Y: offsetR.P1.Y + sideOffset.Y})
	}
}

// addCornerFillet emits a circular fillet of radius radius about p, from
// point pt0 to point pt1, turning in the given direction.
func (g *offsetSegmentGenerator) addCornerFillet(p, pt0, pt1 geom.Point, direction int, radius float64) {
	startAngle := math.Atan2(pt0.Y-p.Y, pt0.X-p.X)
	endAngle := math.Atan2(pt1.Y-p.Y, pt1.X-p.X)
	if direction == geom.Clockwise {
		if startAngle <= endAngle {
			startAngle += 2 * math.Pi
		}
	} else {
		if startAngle >= endAngle {
			startAngle -= 2 * math.Pi
		}
	}
	g.segList.addPt(pt0)
	g.addDirectedFillet(p, startAngle, endAngle, direction, radius)
	g.segList.addPt(pt1)
}

// addDirectedFillet emits the interior points of a fillet about p between
// the two angles, at increments of the fillet angle quantum.
func (g *offsetSegmentGenerator) addDirectedFillet(p geom.Point, startAngle, endAngle float64, direction int, radius float64) {
	directionFactor := 1.0
	if direction == geom.Clockwise {
		directionFactor = -1
	}
	totalAngle := math.Abs(startAngle - endAngle)
	nSegs := int(totalAngle/g.filletAngleQuantum + 0.5)
	if nSegs < 1 {
		return // angle is smaller than one increment
	}
	angleInc := totalAngle / float64(nSegs)
	for i := 0; i < nSegs; i++ {
		angle := startAngle + directionFactor*float64(i)*angleInc
		g.segList.addPt(geom.Point{
			X: p.X + radius*math.Cos(angle),
			Y: p.Y + radius*math.Sin(angle),
		})
	}
}

// createCircle emits a full circle about p (round cap of a point input),
// wound clockwise so the interior lies on its right.
func (g *offsetSegmentGenerator) createCircle(p geom.Point) {
	g.segList.addPt(geom.Point{X: p.X + g.distance, Y: p.Y})
	g.addDirectedFillet(p, 0, 2*math.Pi, geom.Clockwise, g.distance)
	g.segList.closeRing()
}

// createSquare emits an axis-aligned square of half-width distance about p
// (square cap of a point input).
func (g *offsetSegmentGenerator) createSquare(p geom.Point) {
	g.segList.addPt(geom.Point{X: p.X + g.distance, Y: p.Y + g.distance})
	g.segList.addPt(geom.Point{X: p.X + g.distance, Y: p.Y - g.distance})
	g.segList.addPt(geom.Point{X: p.X - g.distance, Y: p.Y - g.distance})
	g.segList.addPt(geom.Point{X: p.X - g.distance, Y: p.Y + g.distance})
	g.segList.closeRing()
}

// computeOffsetSegment fills offset with seg translated perpendicularly by
// distance on the given side.
func computeOffsetSegment(seg *geom.LineSegment, side offsetSide, distance float64, offset *geom.LineSegment) {
	sideSign := 1.0
	if side == sideRight {
		sideSign = -1
	}
	dx := seg.P1.X - seg.P0.X
	dy := seg.P1.Y - seg.P0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	// u is the perpendicular offset vector
	ux := sideSign * distance * dx / length
	uy := sideSign * distance * dy / length
	offset.P0.X = seg.P0.X - uy
	offset.P0.Y = seg.P0.Y + ux
	offset.P1.X = seg.P1.X - uy
	offset.P1.Y = seg.P1.Y + ux
}
