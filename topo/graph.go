package topo

// PlanarGraph owns the nodes and directed edges built from a set of noded,
// labelled edges. It exclusively owns everything it creates; nothing
// outlives the computation that built the graph.
type PlanarGraph struct {
	nodes    *NodeMap
	dirEdges []*DirectedEdge
}

// NewPlanarGraph returns an empty graph.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{nodes: NewNodeMap()}
}

// Nodes returns the graph's node map.
func (g *PlanarGraph) Nodes() *NodeMap { return g.nodes }

// DirectedEdges returns every directed edge (both directions of every edge)
// in insertion order.
func (g *PlanarGraph) DirectedEdges() []*DirectedEdge { return g.dirEdges }

// AddEdges creates the forward and symmetric directed edge for every edge
// and inserts each into the star of its origin node.
func (g *PlanarGraph) AddEdges(edges []*Edge) {
	for _, e := range edges {
		fwd := NewDirectedEdge(e, true)
		rev := NewDirectedEdge(e, false)
		fwd.sym = rev
		rev.sym = fwd
		g.add(fwd)
		g.add(rev)
	}
}

func (g *PlanarGraph) add(de *DirectedEdge) {
	node := g.nodes.AddNode(de.Coordinate())
	node.Star().Insert(de)
	de.node = node
	g.dirEdges = append(g.dirEdges, de)
}

// LinkResultDirectedEdges links result edges into rings at every node of
// the given list.
func LinkResultDirectedEdges(nodes []*Node) error {
	for _, n := range nodes {
		if err := n.Star().LinkResultDirectedEdges(); err != nil {
			return err
		}
	}
	return nil
}
