package topo

import (
	"sort"

	"github.com/katalvlaran/lvlgeo/geom"
)

// DirectedEdgeStar is the ordered set of directed edges leaving one node,
// sorted counter-clockwise starting from the positive x-axis. The angular
// order is what lets depths propagate around a node: the wedge between two
// consecutive outgoing edges is the left side of the earlier edge and the
// right side of the later one.
type DirectedEdgeStar struct {
	edges  []*DirectedEdge
	sorted bool

	resultAreaEdges []*DirectedEdge
}

// Insert adds de to the star.
func (st *DirectedEdgeStar) Insert(de *DirectedEdge) {
	st.edges = append(st.edges, de)
	st.sorted = false
	st.resultAreaEdges = nil
}

// Degree returns the number of outgoing directed edges.
func (st *DirectedEdgeStar) Degree() int { return len(st.edges) }

// Edges returns the outgoing directed edges in CCW angular order.
func (st *DirectedEdgeStar) Edges() []*DirectedEdge {
	if !st.sorted {
		sort.SliceStable(st.edges, func(i, j int) bool {
			return st.edges[i].CompareDirection(st.edges[j]) < 0
		})
		st.sorted = true
	}
	return st.edges
}

// findIndex returns the position of de in the sorted star, or -1.
func (st *DirectedEdgeStar) findIndex(de *DirectedEdge) int {
	for i, e := range st.Edges() {
		if e == de {
			return i
		}
	}
	return -1
}

// ComputeDepths propagates side depths from one already-labelled directed
// edge to every other edge of the star, walking the angular order. If the
// propagation does not arrive back at the starting edge with a consistent
// depth, the underlying noding was inconsistent.
func (st *DirectedEdgeStar) ComputeDepths(de *DirectedEdge) error {
	idx := st.findIndex(de)
	if idx < 0 {
		return NewTopologyError("edge not found in star", de.Coordinate())
	}
	startDepth := de.Depth(PosLeft)
	targetLastDepth := de.Depth(PosRight)

	// propagate from the seed edge around the star and back
	nextDepth, err := st.computeDepthRange(idx+1, len(st.edges), startDepth)
	if err != nil {
		return err
	}
	lastDepth, err := st.computeDepthRange(0, idx, nextDepth)
	if err != nil {
		return err
	}
	if lastDepth != targetLastDepth {
		return NewTopologyError("depth mismatch", de.Coordinate())
	}
	return nil
}

// computeDepthRange assigns depths to edges [start, end) given the depth of
// the wedge preceding edge start, returning the depth of the wedge after
// the last edge.
func (st *DirectedEdgeStar) computeDepthRange(start, end, startDepth int) (int, error) {
	edges := st.Edges()
	currDepth := startDepth
	for i := start; i < end; i++ {
		de := edges[i]
		if err := de.SetEdgeDepths(PosRight, currDepth); err != nil {
			return 0, err
		}
		currDepth = de.Depth(PosLeft)
	}
	return currDepth, nil
}

// ResultAreaEdges returns the star's edges that participate in the result
// (either direction), in CCW order.
func (st *DirectedEdgeStar) ResultAreaEdges() []*DirectedEdge {
	if st.resultAreaEdges != nil {
		return st.resultAreaEdges
	}
	for _, de := range st.Edges() {
		if de.IsInResult() || de.Sym().IsInResult() {
			st.resultAreaEdges = append(st.resultAreaEdges, de)
		}
	}
	return st.resultAreaEdges
}

// linking scan states
const (
	scanningForIncoming = 1
	linkingToOutgoing   = 2
)

// LinkResultDirectedEdges connects each incoming result edge at this node
// to the next outgoing result edge in CCW order, stitching result edges
// into maximal rings.
func (st *DirectedEdgeStar) LinkResultDirectedEdges() error {
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming

	area := st.ResultAreaEdges()
	for _, nextOut := range area {
		nextIn := nextOut.Sym()
		if !nextOut.Label().IsArea() {
			continue
		}
		if firstOut == nil && nextOut.IsInResult() {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if !nextIn.IsInResult() {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if !nextOut.IsInResult() {
				continue
			}
			incoming.next = nextOut
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing {
		if firstOut == nil {
			return NewTopologyError("no outgoing dirEdge found", st.coordinate())
		}
		incoming.next = firstOut
	}
	return nil
}

// LinkMinimalDirectedEdges connects incoming to outgoing edges of one
// maximal ring in CW order, splitting the maximal ring into minimal rings
// at nodes it visits more than once.
func (st *DirectedEdgeStar) LinkMinimalDirectedEdges(er *EdgeRing) error {
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming

	area := st.ResultAreaEdges()
	for i := len(area) - 1; i >= 0; i-- {
		nextOut := area[i]
		nextIn := nextOut.Sym()
		if firstOut == nil && nextOut.edgeRing == er {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if nextIn.edgeRing != er {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if nextOut.edgeRing != er {
				continue
			}
			incoming.nextMin = nextOut
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing {
		if firstOut == nil || firstOut.edgeRing != er {
			return NewTopologyError("unable to link last incoming dirEdge", st.coordinate())
		}
		incoming.nextMin = firstOut
	}
	return nil
}

// OutgoingDegree returns the number of outgoing edges assigned to er.
func (st *DirectedEdgeStar) OutgoingDegree(er *EdgeRing) int {
	deg := 0
	for _, de := range st.Edges() {
		if de.edgeRing == er {
			deg++
		}
	}
	return deg
}

func (st *DirectedEdgeStar) coordinate() geom.Point {
	if len(st.edges) > 0 {
		return st.edges[0].Coordinate()
	}
	return geom.Point{}
}
