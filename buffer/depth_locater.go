package buffer

import (
	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/topo"
)

// subgraphDepthLocater finds the overlap depth just outside a point by
// casting a horizontal ray rightward from it through already depth-labelled
// components and reading the depth on the point's side of the nearest
// stabbed segment.
type subgraphDepthLocater struct {
	subgraphs []*subgraph
}

// depthAt returns the depth at p, or 0 when no processed component's
// segment crosses the rightward ray from p.
func (dl *subgraphDepthLocater) depthAt(p geom.Point) int {
	stabbed := dl.findStabbedSegments(p)
	if len(stabbed) == 0 {
		return 0
	}
	min := stabbed[0]
	for _, ds := range stabbed[1:] {
		if ds.compareTo(&min) < 0 {
			min = ds
		}
	}
	return min.leftDepth
}

// depthSegment pairs an upward-oriented stabbed segment with the depth on
// its left (the side facing the stabbing point).
type depthSegment struct {
	upwardSeg geom.LineSegment
	leftDepth int
}

// compareTo orders stabbed segments by proximity to the stabbing point:
// x-range separation first, then mutual orientation, then lexicographic.
func (ds *depthSegment) compareTo(other *depthSegment) int {
	if ds.upwardSeg.MinX() >= other.upwardSeg.MaxX() {
		return 1
	}
	if ds.upwardSeg.MaxX() <= other.upwardSeg.MinX() {
		return -1
	}
	if orient := ds.upwardSeg.OrientationIndexOf(&other.upwardSeg); orient != 0 {
		return orient
	}
	if orient := other.upwardSeg.OrientationIndexOf(&ds.upwardSeg); orient != 0 {
		return -orient
	}
	return ds.upwardSeg.CompareTo(&other.upwardSeg)
}

// findStabbedSegments collects every component segment crossed by the
// horizontal ray extending rightward from p.
func (dl *subgraphDepthLocater) findStabbedSegments(p geom.Point) []depthSegment {
	var stabbed []depthSegment
	for _, sg := range dl.subgraphs {
		env := sg.envelope()
		if p.Y < env.MinY() || p.Y > env.MaxY() {
			continue
		}
		for _, de := range sg.dirEdges {
			if !de.IsForward() {
				continue
			}
			stabbed = appendStabbedSegments(stabbed, p, de)
		}
	}
	return stabbed
}

// appendStabbedSegments tests each segment of an edge against the stabbing
// ray, recording crossings with the depth on the side facing the point.
func appendStabbedSegments(stabbed []depthSegment, p geom.Point, de *topo.DirectedEdge) []depthSegment {
	pts := de.Edge().Coordinates()
	for i := 0; i < len(pts)-1; i++ {
		var seg geom.LineSegment
		seg.SetPoints(pts[i], pts[i+1])
		// orient the segment upward for a uniform left-side convention
		flipped := seg.P0.Y > seg.P1.Y
		if flipped {
			seg.Reverse()
		}

		// segments entirely left of the point cannot be stabbed
		if seg.MaxX() < p.X {
			continue
		}
		// horizontal segments never stab the horizontal ray
		if seg.IsHorizontal() {
			continue
		}
		if p.Y < seg.P0.Y || p.Y > seg.P1.Y {
			continue
		}
		// the point must lie on or left of the upward segment
		if geom.OrientationIndex(seg.P0, seg.P1, p) == geom.Clockwise {
			continue
		}

		// the depth left of the upward segment is the edge's left depth,
		// or its right depth when the segment was flipped
		depth := de.Depth(topo.PosLeft)
		if flipped {
			depth = de.Depth(topo.PosRight)
		}
		stabbed = append(stabbed, depthSegment{upwardSeg: seg, leftDepth: depth})
	}
	return stabbed
}
