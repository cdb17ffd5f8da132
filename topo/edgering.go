package topo

import "github.com/katalvlaran/lvlgeo/geom"

// EdgeRing is a closed chain of result directed edges. Maximal rings follow
// the Next links produced by LinkResultDirectedEdges; minimal rings follow
// the NextMin links produced by splitting maximal rings at nodes they visit
// more than once.
type EdgeRing struct {
	startDe *DirectedEdge
	edges   []*DirectedEdge
	pts     []geom.Point

	maximal bool
	shell   *EdgeRing
	holes   []*EdgeRing

	maxNodeDegree int
}

// newEdgeRing traces the ring starting at start, following maximal (Next)
// or minimal (NextMin) links.
func newEdgeRing(start *DirectedEdge, maximal bool) (*EdgeRing, error) {
	er := &EdgeRing{maximal: maximal, maxNodeDegree: -1}
	if err := er.computePoints(start); err != nil {
		return nil, err
	}
	return er, nil
}

// NewMaximalEdgeRing traces a maximal ring from start.
func NewMaximalEdgeRing(start *DirectedEdge) (*EdgeRing, error) {
	return newEdgeRing(start, true)
}

// NewMinimalEdgeRing traces a minimal ring from start.
func NewMinimalEdgeRing(start *DirectedEdge) (*EdgeRing, error) {
	return newEdgeRing(start, false)
}

func (er *EdgeRing) next(de *DirectedEdge) *DirectedEdge {
	if er.maximal {
		return de.Next()
	}
	return de.NextMin()
}

func (er *EdgeRing) setEdgeRing(de *DirectedEdge) {
	if er.maximal {
		de.edgeRing = er
	} else {
		de.minEdgeRing = er
	}
}

func (er *EdgeRing) edgeRingOf(de *DirectedEdge) *EdgeRing {
	if er.maximal {
		return de.edgeRing
	}
	return de.minEdgeRing
}

func (er *EdgeRing) computePoints(start *DirectedEdge) error {
	er.startDe = start
	de := start
	first := true
	for {
		if de == nil {
			return NewTopologyError("found null directed edge in ring", start.Coordinate())
		}
		if er.edgeRingOf(de) == er {
			return NewTopologyError("directed edge visited twice during ring-building", de.Coordinate())
		}
		er.edges = append(er.edges, de)
		er.addPoints(de.Edge(), de.IsForward(), first)
		first = false
		er.setEdgeRing(de)
		de = er.next(de)
		if de == start {
			break
		}
	}
	// close the ring
	if len(er.pts) > 0 && !er.pts[0].Equals(er.pts[len(er.pts)-1]) {
		er.pts = append(er.pts, er.pts[0])
	}
	return nil
}

func (er *EdgeRing) addPoints(e *Edge, forward, includeFirst bool) {
	pts := e.Coordinates()
	if forward {
		start := 1
		if includeFirst {
			start = 0
		}
		for i := start; i < len(pts); i++ {
			er.pts = append(er.pts, pts[i])
		}
		return
	}
	end := len(pts) - 2
	if includeFirst {
		end = len(pts) - 1
	}
	for i := end; i >= 0; i-- {
		er.pts = append(er.pts, pts[i])
	}
}

// Points returns the ring's closed coordinate chain.
func (er *EdgeRing) Points() []geom.Point { return er.pts }

// IsHole reports whether the ring is a hole: result rings are traversed
// with the interior on the right, so shells come out clockwise and holes
// counter-clockwise.
func (er *EdgeRing) IsHole() bool { return geom.IsCCW(er.pts) }

// SetShell records the shell containing this hole ring.
func (er *EdgeRing) SetShell(shell *EdgeRing) {
	er.shell = shell
	if shell != nil {
		shell.holes = append(shell.holes, er)
	}
}

// HasShell reports whether a containing shell has been assigned.
func (er *EdgeRing) HasShell() bool { return er.shell != nil }

// Envelope returns the ring's bounding box.
func (er *EdgeRing) Envelope() geom.Envelope { return geom.NewEnvelope(er.pts...) }

// MaxNodeDegree returns twice the maximum number of this ring's outgoing
// edges at any node it passes through; a value above 2 means the maximal
// ring touches itself and must be split into minimal rings.
func (er *EdgeRing) MaxNodeDegree() int {
	if er.maxNodeDegree < 0 {
		er.maxNodeDegree = 0
		de := er.startDe
		for {
			deg := de.Node().Star().OutgoingDegree(er)
			if deg > er.maxNodeDegree {
				er.maxNodeDegree = deg
			}
			de = er.next(de)
			if de == er.startDe {
				break
			}
		}
		er.maxNodeDegree *= 2
	}
	return er.maxNodeDegree
}

// LinkDirectedEdgesForMinimalEdgeRings prepares NextMin links at every node
// of this maximal ring.
func (er *EdgeRing) LinkDirectedEdgesForMinimalEdgeRings() error {
	de := er.startDe
	for {
		if err := de.Node().Star().LinkMinimalDirectedEdges(er); err != nil {
			return err
		}
		de = er.next(de)
		if de == er.startDe {
			break
		}
	}
	return nil
}

// BuildMinimalRings splits this maximal ring into its minimal rings.
func (er *EdgeRing) BuildMinimalRings() ([]*EdgeRing, error) {
	var minRings []*EdgeRing
	de := er.startDe
	for {
		if de.minEdgeRing == nil {
			minRing, err := NewMinimalEdgeRing(de)
			if err != nil {
				return nil, err
			}
			minRings = append(minRings, minRing)
		}
		de = de.Next()
		if de == er.startDe {
			break
		}
	}
	return minRings, nil
}

// ContainsPoint reports whether p lies inside the ring, by envelope check
// plus ray crossing count. Callers must not probe with boundary points.
func (er *EdgeRing) ContainsPoint(p geom.Point) bool {
	env := er.Envelope()
	if !env.Contains(p) {
		return false
	}
	return pointInRing(p, er.pts)
}

// pointInRing is a crossing-number test against the closed ring.
func pointInRing(p geom.Point, ring []geom.Point) bool {
	crossings := 0
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if xCross > p.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

// ToPolygon renders the ring and its assigned holes as a polygon value.
func (er *EdgeRing) ToPolygon() geom.Polygon {
	poly := geom.Polygon{Shell: geom.CopyPoints(er.pts)}
	for _, h := range er.holes {
		poly.Holes = append(poly.Holes, geom.CopyPoints(h.pts))
	}
	return poly
}
