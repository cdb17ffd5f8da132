package buffer

import (
	"sort"

	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/topo"
)

// subgraph is one connected component of the buffer's planar graph. Depth
// labelling runs per component, seeded from the component's rightmost edge,
// whose outside depth is known from the components already processed.
type subgraph struct {
	dirEdges       []*topo.DirectedEdge
	nodes          []*topo.Node
	rightmostCoord geom.Point
	rightmostEdge  *topo.DirectedEdge
	env            geom.Envelope
	envSet         bool
}

// newSubgraph collects the connected component containing node and locates
// its rightmost coordinate and edge. Visited marks on nodes persist, so
// repeated calls over all graph nodes partition the graph.
func newSubgraph(node *topo.Node) (*subgraph, error) {
	sg := &subgraph{}
	sg.addReachable(node)
	rf := &rightmostEdgeFinder{}
	if err := rf.findEdge(sg.dirEdges); err != nil {
		return nil, err
	}
	sg.rightmostCoord = rf.coord
	sg.rightmostEdge = rf.edge
	return sg, nil
}

// addReachable walks the component with an explicit stack, marking nodes
// visited as they are pushed so each is expanded once.
func (sg *subgraph) addReachable(start *topo.Node) {
	stack := []*topo.Node{start}
	start.SetVisited(true)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sg.nodes = append(sg.nodes, node)
		for _, de := range node.Star().Edges() {
			sg.dirEdges = append(sg.dirEdges, de)
			next := de.Sym().Node()
			if next != nil && !next.IsVisited() {
				next.SetVisited(true)
				stack = append(stack, next)
			}
		}
	}
}

// envelope returns (and caches) the bounding box of all component edges.
func (sg *subgraph) envelope() geom.Envelope {
	if !sg.envSet {
		var env geom.Envelope
		for _, de := range sg.dirEdges {
			for _, p := range de.Edge().Coordinates() {
				env.ExpandToInclude(p)
			}
		}
		sg.env = env
		sg.envSet = true
	}
	return sg.env
}

// computeDepth labels every edge side of the component with its overlap
// depth, propagating from the rightmost edge whose outside depth is given.
func (sg *subgraph) computeDepth(outsideDepth int) error {
	sg.clearVisitedEdges()
	de := sg.rightmostEdge
	if err := de.SetEdgeDepths(topo.PosRight, outsideDepth); err != nil {
		return err
	}
	copySymDepths(de)
	return sg.computeDepths(de)
}

func (sg *subgraph) clearVisitedEdges() {
	for _, de := range sg.dirEdges {
		de.SetVisited(false)
	}
}

// computeDepths propagates depths node by node outward from the start
// edge's origin, breadth first. At each node one already-labelled edge
// seeds the star's angular sweep.
func (sg *subgraph) computeDepths(start *topo.DirectedEdge) error {
	visitedNodes := make(map[geom.Point]bool)
	startNode := start.Node()
	queue := []*topo.Node{startNode}
	visitedNodes[startNode.Coordinate()] = true
	start.SetVisited(true)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if err := computeNodeDepth(node); err != nil {
			return err
		}
		for _, de := range node.Star().Edges() {
			if de.Sym().IsVisited() {
				continue
			}
			adjNode := de.Sym().Node()
			if adjNode != nil && !visitedNodes[adjNode.Coordinate()] {
				visitedNodes[adjNode.Coordinate()] = true
				queue = append(queue, adjNode)
			}
		}
	}
	return nil
}

// computeNodeDepth sweeps a node's star from any edge already labelled by a
// previous node, then marks all the node's edges visited with consistent
// symmetric depths.
func computeNodeDepth(node *topo.Node) error {
	var seed *topo.DirectedEdge
	for _, de := range node.Star().Edges() {
		if de.IsVisited() || de.Sym().IsVisited() {
			seed = de
			break
		}
	}
	if seed == nil {
		return topo.NewTopologyError("unable to find edge to compute depths", node.Coordinate())
	}
	if err := node.Star().ComputeDepths(seed); err != nil {
		return err
	}
	for _, de := range node.Star().Edges() {
		de.SetVisited(true)
		copySymDepths(de)
	}
	return nil
}

// copySymDepths mirrors an edge's depths onto its twin: the twin's left is
// this edge's right and vice versa.
func copySymDepths(de *topo.DirectedEdge) {
	sym := de.Sym()
	// direct assignment: the twin's depths derive from this edge, so the
	// consistency check of SetDepth does not apply
	sym.ClearDepths()
	_ = sym.SetDepth(topo.PosLeft, de.Depth(topo.PosRight))
	_ = sym.SetDepth(topo.PosRight, de.Depth(topo.PosLeft))
}

// findResultEdges marks the edges bounding the buffer interior: interior
// (depth >= 1) on the right, exterior (depth <= 0) on the left, and not an
// edge interior to the result area.
func (sg *subgraph) findResultEdges() {
	for _, de := range sg.dirEdges {
		if de.Depth(topo.PosRight) >= 1 &&
			de.Depth(topo.PosLeft) <= 0 &&
			!de.Edge().IsInteriorAreaEdge() {
			de.SetInResult(true)
		}
	}
}

// sortSubgraphsRightmostFirst orders components by descending rightmost
// x so holes are processed after the shells containing them.
func sortSubgraphsRightmostFirst(subgraphs []*subgraph) {
	sort.SliceStable(subgraphs, func(i, j int) bool {
		return subgraphs[i].rightmostCoord.X > subgraphs[j].rightmostCoord.X
	})
}
