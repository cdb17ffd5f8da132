package buffer

import (
	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/noding"
	"github.com/katalvlaran/lvlgeo/topo"
)

// builder executes one buffer attempt at a fixed precision with a fixed
// noder: raw curves, noding, duplicate-edge merging, depth labelling per
// connected component, and polygon extraction. Robustness failures surface
// as *topo.TopologyError; the caller decides whether to retry at a coarser
// precision.
type builder struct {
	params    Params
	workingPM *geom.PrecisionModel
	noder     noding.Noder
	edgeList  *topo.EdgeList
}

func newBuilder(params Params) *builder {
	return &builder{
		params:   params,
		edgeList: topo.NewEdgeList(),
	}
}

// setWorkingPrecisionModel overrides the precision model used for curve
// generation (instead of the input geometry's own model).
func (b *builder) setWorkingPrecisionModel(pm *geom.PrecisionModel) { b.workingPM = pm }

// setNoder overrides the noder used to split the raw curves.
func (b *builder) setNoder(n noding.Noder) { b.noder = n }

// buffer computes the buffer polygonal geometry of g at the given distance.
func (b *builder) buffer(g geom.Geometry, distance float64) (geom.Geometry, error) {
	pm := b.workingPM
	if pm == nil {
		pm = g.PrecisionModel()
	}

	csb := newCurveSetBuilder(g, distance, pm, b.params)
	curves, err := csb.Curves()
	if err != nil {
		return geom.Geometry{}, err
	}
	// a zero-curve input (e.g. eroded completely) buffers to emptiness
	if len(curves) == 0 {
		return geom.EmptyPolygon(), nil
	}

	if err := b.computeNodedEdges(curves, pm); err != nil {
		return geom.Geometry{}, err
	}

	graph := topo.NewPlanarGraph()
	graph.AddEdges(b.edgeList.Edges())

	subgraphs, err := createSubgraphs(graph)
	if err != nil {
		return geom.Geometry{}, err
	}

	polyBuilder := topo.NewPolygonBuilder()
	if err := buildSubgraphs(subgraphs, polyBuilder); err != nil {
		return geom.Geometry{}, err
	}
	polys, err := polyBuilder.Polygons()
	if err != nil {
		return geom.Geometry{}, err
	}
	if len(polys) == 0 {
		return geom.EmptyPolygon(), nil
	}
	if len(polys) == 1 {
		out, perr := geom.NewPolygon(polys[0].Shell, polys[0].Holes...)
		if perr != nil {
			return geom.Geometry{}, perr
		}
		return out, nil
	}
	return geom.NewMultiPolygon(polys...), nil
}

// computeNodedEdges splits the raw curves at their intersections and folds
// the substrings into the edge list, merging geometrically equal edges.
func (b *builder) computeNodedEdges(curves []*noding.SegmentString, pm *geom.PrecisionModel) error {
	noder := b.noder
	if noder == nil {
		noder = &noding.SimpleNoder{PM: pm}
	}
	if err := noder.ComputeNodes(curves); err != nil {
		return err
	}
	for _, ss := range noder.NodedSubstrings() {
		pts := ss.Coordinates()
		// zero-length substrings carry no topology
		if len(pts) < 2 || (len(pts) == 2 && pts[0].Equals(pts[1])) {
			continue
		}
		label, ok := ss.Data().(topo.Label)
		if !ok {
			return topo.NewTopologyError("curve carries no label", pts[0])
		}
		b.insertUniqueEdge(topo.NewEdge(pts, label))
	}
	return nil
}

// insertUniqueEdge adds an edge to the edge list, merging it into an
// existing geometrically equal edge if one is present. Coincident curves
// combine by summing their depth deltas, so N stacked boundaries raise the
// depth by N.
func (b *builder) insertUniqueEdge(e *topo.Edge) {
	existing := b.edgeList.FindEqualEdge(e)
	if existing == nil {
		b.edgeList.Add(e)
		e.SetDepthDelta(depthDelta(e.Label()))
		return
	}
	labelToMerge := e.Label()
	if !existing.IsPointwiseEqual(e) {
		labelToMerge = labelToMerge.Flip()
	}
	existing.SetLabel(existing.Label().Merge(labelToMerge))
	existing.SetDepthDelta(existing.DepthDelta() + depthDelta(labelToMerge))
}

// depthDelta is the change in interior depth when crossing the edge from
// left to right: +1 entering the interior, -1 leaving it.
func depthDelta(label topo.Label) int {
	switch {
	case label.Left == topo.LocInterior && label.Right == topo.LocExterior:
		return 1
	case label.Left == topo.LocExterior && label.Right == topo.LocInterior:
		return -1
	}
	return 0
}

// createSubgraphs partitions the graph into connected components, ordered
// rightmost first so each hole is processed after its enclosing shell.
func createSubgraphs(graph *topo.PlanarGraph) ([]*subgraph, error) {
	var subgraphs []*subgraph
	for _, node := range graph.Nodes().Nodes() {
		if node.IsVisited() {
			continue
		}
		sg, err := newSubgraph(node)
		if err != nil {
			return nil, err
		}
		subgraphs = append(subgraphs, sg)
	}
	sortSubgraphsRightmostFirst(subgraphs)
	return subgraphs, nil
}

// buildSubgraphs depth-labels each component seeded by the depth found just
// outside its rightmost point among already processed components, marks its
// result edges, and feeds it to the polygon builder.
func buildSubgraphs(subgraphs []*subgraph, polyBuilder *topo.PolygonBuilder) error {
	locater := &subgraphDepthLocater{}
	for _, sg := range subgraphs {
		outsideDepth := locater.depthAt(sg.rightmostCoord)
		if err := sg.computeDepth(outsideDepth); err != nil {
			return err
		}
		sg.findResultEdges()
		locater.subgraphs = append(locater.subgraphs, sg)
		if err := polyBuilder.Add(sg.dirEdges, sg.nodes); err != nil {
			return err
		}
	}
	return nil
}
