package topo

import "github.com/katalvlaran/lvlgeo/geom"

// PolygonBuilder assembles polygons from depth-labelled, result-marked
// directed edges. Subgraphs are added one at a time (shells before the
// holes they contain, which the caller guarantees by processing subgraphs
// in descending rightmost order); Polygons returns the accumulated result.
type PolygonBuilder struct {
	shells    []*EdgeRing
	freeHoles []*EdgeRing
}

// NewPolygonBuilder returns an empty builder.
func NewPolygonBuilder() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Add incorporates one subgraph's directed edges and nodes.
func (pb *PolygonBuilder) Add(dirEdges []*DirectedEdge, nodes []*Node) error {
	if err := LinkResultDirectedEdges(nodes); err != nil {
		return err
	}
	maxRings, err := buildMaximalEdgeRings(dirEdges)
	if err != nil {
		return err
	}
	var freeHoles []*EdgeRing
	ringsOut, err := pb.buildMinimalEdgeRings(maxRings, &freeHoles)
	if err != nil {
		return err
	}
	pb.sortShellsAndHoles(ringsOut, &freeHoles)
	pb.freeHoles = append(pb.freeHoles, freeHoles...)
	return nil
}

// Polygons assigns any remaining free holes to their containing shells and
// returns the assembled polygons.
func (pb *PolygonBuilder) Polygons() ([]geom.Polygon, error) {
	if err := pb.placeFreeHoles(); err != nil {
		return nil, err
	}
	out := make([]geom.Polygon, 0, len(pb.shells))
	for _, shell := range pb.shells {
		out = append(out, shell.ToPolygon())
	}
	return out, nil
}

// buildMaximalEdgeRings traces a maximal ring from every result edge not
// yet assigned to one.
func buildMaximalEdgeRings(dirEdges []*DirectedEdge) ([]*EdgeRing, error) {
	var rings []*EdgeRing
	for _, de := range dirEdges {
		if !de.IsInResult() || !de.Label().IsArea() {
			continue
		}
		if de.edgeRing != nil {
			continue
		}
		er, err := NewMaximalEdgeRing(de)
		if err != nil {
			return nil, err
		}
		rings = append(rings, er)
	}
	return rings, nil
}

// buildMinimalEdgeRings splits self-touching maximal rings into minimal
// rings, keeps each split group's shell with its own holes, and returns the
// simple rings for shell/hole sorting.
func (pb *PolygonBuilder) buildMinimalEdgeRings(maxRings []*EdgeRing, freeHoles *[]*EdgeRing) ([]*EdgeRing, error) {
	var simple []*EdgeRing
	for _, er := range maxRings {
		if er.MaxNodeDegree() <= 2 {
			simple = append(simple, er)
			continue
		}
		if err := er.LinkDirectedEdgesForMinimalEdgeRings(); err != nil {
			return nil, err
		}
		minRings, err := er.BuildMinimalRings()
		if err != nil {
			return nil, err
		}
		shell := findShell(minRings)
		if shell == nil {
			*freeHoles = append(*freeHoles, minRings...)
			continue
		}
		placePolygonHoles(shell, minRings)
		pb.shells = append(pb.shells, shell)
	}
	return simple, nil
}

// findShell returns the unique non-hole ring of a minimal-ring group, or
// nil when the group consists entirely of holes.
func findShell(minRings []*EdgeRing) *EdgeRing {
	var shell *EdgeRing
	for _, er := range minRings {
		if !er.IsHole() {
			shell = er
		}
	}
	return shell
}

// placePolygonHoles attaches the hole rings of a minimal-ring group to the
// group's shell.
func placePolygonHoles(shell *EdgeRing, minRings []*EdgeRing) {
	for _, er := range minRings {
		if er.IsHole() {
			er.SetShell(shell)
		}
	}
}

func (pb *PolygonBuilder) sortShellsAndHoles(rings []*EdgeRing, freeHoles *[]*EdgeRing) {
	for _, er := range rings {
		if er.IsHole() {
			*freeHoles = append(*freeHoles, er)
		} else {
			pb.shells = append(pb.shells, er)
		}
	}
}

// placeFreeHoles assigns every unassigned hole to the smallest shell that
// contains it.
func (pb *PolygonBuilder) placeFreeHoles() error {
	for _, hole := range pb.freeHoles {
		if hole.HasShell() {
			continue
		}
		shell := findEdgeRingContaining(hole, pb.shells)
		if shell == nil {
			return NewTopologyError("unable to assign hole to a shell", firstPoint(hole))
		}
		hole.SetShell(shell)
	}
	return nil
}

// findEdgeRingContaining returns the smallest shell whose ring contains the
// test ring's probe point, or nil.
func findEdgeRingContaining(test *EdgeRing, shells []*EdgeRing) *EdgeRing {
	testEnv := test.Envelope()
	probe := firstPoint(test)

	var best *EdgeRing
	var bestEnv geom.Envelope
	for _, shell := range shells {
		env := shell.Envelope()
		if !env.ContainsEnvelope(testEnv) {
			continue
		}
		pt, ok := pointNotEqual(probe, shell.Points(), test.Points())
		if !ok {
			continue
		}
		if !shell.ContainsPoint(pt) {
			continue
		}
		if best == nil || bestEnv.ContainsEnvelope(env) {
			best = shell
			bestEnv = best.Envelope()
		}
	}
	return best
}

// pointNotEqual picks a vertex of testPts not lying on shellPts, preferring
// the provided probe.
func pointNotEqual(probe geom.Point, shellPts, testPts []geom.Point) (geom.Point, bool) {
	onShell := func(p geom.Point) bool {
		for _, sp := range shellPts {
			if p.Equals(sp) {
				return true
			}
		}
		return false
	}
	if !onShell(probe) {
		return probe, true
	}
	for _, p := range testPts {
		if !onShell(p) {
			return p, true
		}
	}
	return geom.Point{}, false
}

func firstPoint(er *EdgeRing) geom.Point {
	pts := er.Points()
	if len(pts) == 0 {
		return geom.Point{}
	}
	return pts[0]
}
