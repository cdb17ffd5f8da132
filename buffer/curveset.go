package buffer

import (
	"math"

	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/noding"
	"github.com/katalvlaran/lvlgeo/topo"
)

// curveSetBuilder converts an input geometry into the set of labelled raw
// offset curves feeding the noder. Each curve carries the left/right
// topographic locations of the buffer interior relative to travel along the
// curve, which downstream depth labelling consumes.
type curveSetBuilder struct {
	input    geom.Geometry
	distance float64
	pm       *geom.PrecisionModel
	params   Params

	curves []*noding.SegmentString
}

func newCurveSetBuilder(input geom.Geometry, distance float64, pm *geom.PrecisionModel, params Params) *curveSetBuilder {
	return &curveSetBuilder{
		input:    input,
		distance: distance,
		pm:       pm,
		params:   params,
	}
}

// Curves returns the labelled raw offset curves of the input.
func (c *curveSetBuilder) Curves() ([]*noding.SegmentString, error) {
	if err := c.add(c.input); err != nil {
		return nil, err
	}
	return c.curves, nil
}

func (c *curveSetBuilder) add(g geom.Geometry) error {
	if g.IsEmpty() {
		return nil
	}
	switch g.Kind {
	case geom.KindPoint, geom.KindMultiPoint:
		for _, p := range g.Pts {
			c.addPoint(p)
		}
	case geom.KindLineString:
		c.addLineString(g.Pts)
	case geom.KindMultiLineString:
		for _, line := range g.Lines {
			c.addLineString(line)
		}
	case geom.KindPolygon, geom.KindMultiPolygon:
		for _, poly := range g.Polys {
			if err := c.addPolygon(poly); err != nil {
				return err
			}
		}
	case geom.KindCollection:
		for _, sub := range g.Geoms {
			if err := c.add(sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// addCurve records one raw offset curve with the locations of the buffer
// interior on its left and right.
func (c *curveSetBuilder) addCurve(pts []geom.Point, leftLoc, rightLoc topo.Location) {
	if len(pts) < 2 {
		return
	}
	label := topo.NewLabel(topo.LocBoundary, leftLoc, rightLoc)
	ss, err := noding.NewSegmentString(pts, label)
	if err != nil {
		return
	}
	c.curves = append(c.curves, ss)
}

// addPoint emits the cap ring around a point. Points vanish at
// non-positive distances.
func (c *curveSetBuilder) addPoint(p geom.Point) {
	if c.distance <= 0 {
		return
	}
	ocb := newOffsetCurveBuilder(c.pm, c.params, c.distance)
	curve := ocb.lineCurve([]geom.Point{p})
	c.addCurve(curve, topo.LocExterior, topo.LocInterior)
}

// addLineString emits the offset ring of an open line. Travel along the
// curve keeps the buffer interior on the right.
func (c *curveSetBuilder) addLineString(line []geom.Point) {
	if c.distance <= 0 && !c.params.SingleSided {
		return
	}
	pts := geom.RemoveRepeatedPoints(line)
	if len(pts) < 2 {
		// a degenerate line buffers like a point
		if c.distance > 0 && len(pts) == 1 {
			c.addPoint(pts[0])
		}
		return
	}
	ocb := newOffsetCurveBuilder(c.pm, c.params, c.distance)
	curve := ocb.lineCurve(pts)
	c.addCurve(curve, topo.LocExterior, topo.LocInterior)
}

// addPolygon emits the offset rings of a polygon's shell and holes. A
// negative distance offsets inward: rings eroded completely are skipped, and
// the remaining curves still keep the result interior on their right.
func (c *curveSetBuilder) addPolygon(p geom.Polygon) error {
	offsetDistance := c.distance
	offsetSide := sideLeft
	if c.distance < 0 {
		offsetDistance = -c.distance
		offsetSide = sideRight
	}

	shell := geom.RemoveRepeatedPoints(p.Shell)
	if c.distance < 0 && c.isErodedCompletely(shell, c.distance) {
		return nil
	}
	// a very small negative distance can still leave a sliver; only skip
	// shells proven to vanish
	if err := c.addRingSide(shell, offsetDistance, offsetSide, topo.LocExterior, topo.LocInterior); err != nil {
		return err
	}

	for _, hole := range p.Holes {
		holePts := geom.RemoveRepeatedPoints(hole)
		// a positive distance erodes holes, so the test sign flips
		if c.distance > 0 && c.isErodedCompletely(holePts, -c.distance) {
			continue
		}
		// holes wind opposite to the shell, so the side flips
		if err := c.addRingSide(holePts, offsetDistance, oppositeSide(offsetSide), topo.LocInterior, topo.LocExterior); err != nil {
			return err
		}
	}
	return nil
}

// addRingSide emits one side's offset curve of a ring, normalizing for ring
// orientation: curves are always generated as if the ring were clockwise.
func (c *curveSetBuilder) addRingSide(pts []geom.Point, offsetDistance float64, side offsetSide, leftLoc, rightLoc topo.Location) error {
	// zero-distance rings of zero width contribute nothing
	if offsetDistance == 0 && len(pts) < geom.MinRingSize {
		return nil
	}
	if len(pts) >= geom.MinRingSize && geom.IsCCW(pts) {
		leftLoc, rightLoc = rightLoc, leftLoc
		side = oppositeSide(side)
	}
	ocb := newOffsetCurveBuilder(c.pm, c.params, offsetDistance)
	curve := ocb.ringCurve(pts, side)
	c.addCurve(curve, leftLoc, rightLoc)
	return nil
}

// isErodedCompletely reports whether an inward offset at bufferDistance
// (negative for erosion) is certain to erase the ring. The test is
// conservative: rings it cannot prove eroded are kept, and downstream
// topology removes them.
func (c *curveSetBuilder) isErodedCompletely(ring []geom.Point, bufferDistance float64) bool {
	// degenerate rings enclose nothing, so any inward offset erases them
	if len(ring) < geom.MinRingSize {
		return bufferDistance < 0
	}
	if len(ring) == geom.MinRingSize {
		return isTriangleErodedCompletely(ring, bufferDistance)
	}
	// a ring narrower than twice the distance in either extent must vanish
	env := geom.NewEnvelope(ring...)
	minExtent := math.Min(env.Width(), env.Height())
	return bufferDistance < 0 && 2*math.Abs(bufferDistance) > minExtent
}

// isTriangleErodedCompletely checks a triangle against its incircle: erosion
// is complete when the offset distance exceeds the inradius.
func isTriangleErodedCompletely(ring []geom.Point, bufferDistance float64) bool {
	inCentre := geom.TriangleInCentre(ring[0], ring[1], ring[2])
	distToCentre := geom.DistancePointToSegment(inCentre, ring[0], ring[1])
	return distToCentre < math.Abs(bufferDistance)
}

func oppositeSide(s offsetSide) offsetSide {
	if s == sideLeft {
		return sideRight
	}
	return sideLeft
}
