package topo

import "github.com/katalvlaran/lvlgeo/geom"

// DirectedEdge is one traversal direction of an Edge. Every Edge owns a
// forward and a symmetric directed edge; both are inserted into the graph,
// each at the node its direction leaves from.
type DirectedEdge struct {
	edge    *Edge
	forward bool

	// p0→p1 is the first segment in traversal direction; it fixes the
	// edge's outgoing angle at its origin node.
	p0, p1   geom.Point
	quadrant int

	node *Node
	sym  *DirectedEdge

	// ring-linking pointers set by DirectedEdgeStar during result extraction
	next        *DirectedEdge
	nextMin     *DirectedEdge
	edgeRing    *EdgeRing
	minEdgeRing *EdgeRing

	depth    [3]int // indexed by Position; PosOn unused
	depthSet [3]bool

	visited  bool
	inResult bool
}

// NewDirectedEdge returns the directed view of e in the given direction.
func NewDirectedEdge(e *Edge, forward bool) *DirectedEdge {
	de := &DirectedEdge{edge: e, forward: forward}
	pts := e.Coordinates()
	if forward {
		de.p0, de.p1 = pts[0], pts[1]
	} else {
		n := len(pts)
		de.p0, de.p1 = pts[n-1], pts[n-2]
	}
	de.quadrant = quadrant(de.p1.X-de.p0.X, de.p1.Y-de.p0.Y)
	return de
}

// Edge returns the underlying undirected edge.
func (de *DirectedEdge) Edge() *Edge { return de.edge }

// IsForward reports whether this is the forward traversal direction.
func (de *DirectedEdge) IsForward() bool { return de.forward }

// Coordinate returns the origin coordinate of the directed edge.
func (de *DirectedEdge) Coordinate() geom.Point { return de.p0 }

// DirectedCoordinate returns the second coordinate in traversal direction.
func (de *DirectedEdge) DirectedCoordinate() geom.Point { return de.p1 }

// Sym returns the directed edge traversing the same Edge the other way.
func (de *DirectedEdge) Sym() *DirectedEdge { return de.sym }

// Node returns the node the directed edge leaves from.
func (de *DirectedEdge) Node() *Node { return de.node }

// Label returns the underlying edge's label, flipped for the reverse
// direction.
func (de *DirectedEdge) Label() Label {
	if de.forward {
		return de.edge.Label()
	}
	return de.edge.Label().Flip()
}

// Next returns the ring-successor assigned by result-edge linking.
func (de *DirectedEdge) Next() *DirectedEdge { return de.next }

// NextMin returns the minimal-ring successor, falling back to Next when no
// minimal link was assigned.
func (de *DirectedEdge) NextMin() *DirectedEdge {
	if de.nextMin == nil {
		return de.next
	}
	return de.nextMin
}

// IsInResult reports whether the edge was selected as a result boundary.
func (de *DirectedEdge) IsInResult() bool { return de.inResult }

// SetInResult marks or unmarks the edge as a result boundary.
func (de *DirectedEdge) SetInResult(in bool) { de.inResult = in }

// IsVisited reports the traversal flag.
func (de *DirectedEdge) IsVisited() bool { return de.visited }

// SetVisited sets the traversal flag.
func (de *DirectedEdge) SetVisited(v bool) { de.visited = v }

// Depth returns the containment depth on the given side (0 if unset).
func (de *DirectedEdge) Depth(pos Position) int { return de.depth[pos] }

// HasDepth reports whether the given side's depth has been assigned.
func (de *DirectedEdge) HasDepth(pos Position) bool { return de.depthSet[pos] }

// SetDepth assigns the containment depth of one side. Assigning a different
// value to an already-labelled side is a topology inconsistency.
func (de *DirectedEdge) SetDepth(pos Position, depth int) error {
	if de.depthSet[pos] && de.depth[pos] != depth {
		return NewTopologyError("assigned depths do not match", de.p0)
	}
	de.depth[pos] = depth
	de.depthSet[pos] = true
	return nil
}

// SetEdgeDepths assigns the depth on one side and derives the opposite side
// from the underlying edge's depth delta (negated for the reverse
// direction).
func (de *DirectedEdge) SetEdgeDepths(pos Position, depth int) error {
	delta := de.edge.DepthDelta()
	if !de.forward {
		delta = -delta
	}
	if pos == PosLeft {
		delta = -delta
	}
	if err := de.SetDepth(pos, depth); err != nil {
		return err
	}
	return de.SetDepth(pos.Opposite(), depth+delta)
}

// ClearDepths resets both side depths to unassigned.
func (de *DirectedEdge) ClearDepths() {
	de.depthSet[PosLeft] = false
	de.depthSet[PosRight] = false
	de.depth[PosLeft] = 0
	de.depth[PosRight] = 0
}

// CompareDirection orders directed edges by outgoing angle, counter-
// clockwise from the positive x-axis: -1 if de points below (CW of) other,
// +1 if above. Equal directions compare 0.
func (de *DirectedEdge) CompareDirection(other *DirectedEdge) int {
	dx0, dy0 := de.p1.X-de.p0.X, de.p1.Y-de.p0.Y
	dx1, dy1 := other.p1.X-other.p0.X, other.p1.Y-other.p0.Y
	if dx0 == dx1 && dy0 == dy1 {
		return 0
	}
	if de.quadrant > other.quadrant {
		return 1
	}
	if de.quadrant < other.quadrant {
		return -1
	}
	// same quadrant: use the robust orientation test
	return geom.OrientationIndex(other.p0, other.p1, de.p1)
}

// quadrant returns the quadrant (0-3, counter-clockwise from +x/+y) of the
// direction vector (dx, dy).
func quadrant(dx, dy float64) int {
	switch {
	case dx >= 0 && dy >= 0:
		return 0
	case dx < 0 && dy >= 0:
		return 1
	case dx < 0:
		return 2
	}
	return 3
}
