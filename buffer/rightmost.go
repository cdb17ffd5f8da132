package buffer

import (
	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/topo"
)

// rightmostEdgeFinder locates, within one connected component, the directed
// edge at the component's rightmost (maximum x) coordinate, oriented so its
// right side faces the component's outside. That edge anchors depth
// propagation.
type rightmostEdgeFinder struct {
	coord    geom.Point
	coordSet bool
	minDe    *topo.DirectedEdge
	minIndex int
	edge     *topo.DirectedEdge
}

// findEdge scans forward directed edges only: every edge appears in both
// directions, so the forward copies cover all coordinates.
func (rf *rightmostEdgeFinder) findEdge(dirEdges []*topo.DirectedEdge) error {
	for _, de := range dirEdges {
		if !de.IsForward() {
			continue
		}
		rf.checkForRightmostCoordinate(de)
	}
	if rf.minDe == nil {
		return topo.NewTopologyError("no forward edges found in subgraph", geom.Point{})
	}

	if rf.minIndex == 0 {
		if err := rf.findRightmostEdgeAtNode(); err != nil {
			return err
		}
	} else {
		rf.findRightmostEdgeAtVertex()
	}

	rf.edge = rf.minDe
	if rf.rightmostSide(rf.minDe, rf.minIndex) == topo.PosLeft {
		rf.edge = rf.minDe.Sym()
	}
	return nil
}

// checkForRightmostCoordinate tracks the maximum-x vertex seen so far and
// the edge and vertex index where it occurs.
func (rf *rightmostEdgeFinder) checkForRightmostCoordinate(de *topo.DirectedEdge) {
	pts := de.Edge().Coordinates()
	// the last vertex duplicates the first vertex of an adjacent edge
	for i := 0; i < len(pts)-1; i++ {
		if !rf.coordSet || pts[i].X > rf.coord.X {
			rf.minDe = de
			rf.minIndex = i
			rf.coord = pts[i]
			rf.coordSet = true
		}
	}
}

// findRightmostEdgeAtNode resolves the case where the rightmost vertex is a
// node: query the node's star for its rightmost edge, normalizing to the
// forward direction.
func (rf *rightmostEdgeFinder) findRightmostEdgeAtNode() error {
	node := rf.minDe.Node()
	de, err := rightmostStarEdge(node.Star())
	if err != nil {
		return err
	}
	rf.minDe = de
	if !rf.minDe.IsForward() {
		rf.minDe = rf.minDe.Sym()
		rf.minIndex = len(rf.minDe.Edge().Coordinates()) - 1
	}
	return nil
}

// findRightmostEdgeAtVertex resolves the case where the rightmost vertex is
// interior to an edge: when both neighbours lie on the same vertical side
// and the turn opens away from it, the previous segment is the rightmost.
func (rf *rightmostEdgeFinder) findRightmostEdgeAtVertex() {
	pts := rf.minDe.Edge().Coordinates()
	pPrev := pts[rf.minIndex-1]
	pNext := pts[rf.minIndex+1]
	orientation := geom.OrientationIndex(rf.coord, pNext, pPrev)
	usePrev := false
	if pPrev.Y < rf.coord.Y && pNext.Y < rf.coord.Y && orientation == geom.CounterClockwise {
		usePrev = true
	} else if pPrev.Y > rf.coord.Y && pNext.Y > rf.coord.Y && orientation == geom.Clockwise {
		usePrev = true
	}
	if usePrev {
		rf.minIndex--
	}
}

// rightmostSide reports which side of the edge faces rightward at the
// located vertex, trying the segment after it, then the one before, then
// rescanning the edge when both are horizontal. An entirely horizontal edge
// gives no vertical cue and reports PosOn, which callers treat as not-left,
// keeping the forward direction.
func (rf *rightmostEdgeFinder) rightmostSide(de *topo.DirectedEdge, index int) topo.Position {
	if side, ok := rightmostSideOfSegment(de, index); ok {
		return side
	}
	if side, ok := rightmostSideOfSegment(de, index-1); ok {
		return side
	}
	// horizontal segments on both sides: relocate within this edge alone
	rf.coordSet = false
	rf.checkForRightmostCoordinate(de)
	if side, ok := rightmostSideOfSegment(de, rf.minIndex); ok {
		return side
	}
	if side, ok := rightmostSideOfSegment(de, rf.minIndex-1); ok {
		return side
	}
	return topo.PosOn
}

// rightmostSideOfSegment reports the rightward side of one segment of an
// edge; horizontal segments are undecidable.
func rightmostSideOfSegment(de *topo.DirectedEdge, i int) (topo.Position, bool) {
	pts := de.Edge().Coordinates()
	if i < 0 || i+1 >= len(pts) {
		return topo.PosOn, false
	}
	if pts[i].Y == pts[i+1].Y {
		return topo.PosOn, false
	}
	if pts[i].Y < pts[i+1].Y {
		// ascending segment: the right side faces the rightmost vertex
		return topo.PosRight, true
	}
	return topo.PosLeft, true
}

// rightmostStarEdge returns the edge of a CCW-ordered star whose direction
// is angularly closest below the positive x axis.
func rightmostStarEdge(star *topo.DirectedEdgeStar) (*topo.DirectedEdge, error) {
	edges := star.Edges()
	if len(edges) < 1 {
		return nil, topo.NewTopologyError("empty edge star", geom.Point{})
	}
	de0 := edges[0]
	if len(edges) == 1 {
		return de0, nil
	}
	deLast := edges[len(edges)-1]

	northern := func(de *topo.DirectedEdge) bool {
		return de.DirectedCoordinate().Y >= de.Coordinate().Y
	}
	horizontal := func(de *topo.DirectedEdge) bool {
		return de.DirectedCoordinate().Y == de.Coordinate().Y
	}

	switch {
	case northern(de0) && northern(deLast):
		return de0, nil
	case !northern(de0) && !northern(deLast):
		return deLast, nil
	case !horizontal(de0):
		return de0, nil
	case !horizontal(deLast):
		return deLast, nil
	}
	return nil, topo.NewTopologyError("two horizontal edges incident on node", de0.Coordinate())
}
