package topo

import (
	"encoding/binary"
	"math"

	"github.com/katalvlaran/lvlgeo/geom"
)

// Edge is an undirected, labelled, noded coordinate chain. Its DepthDelta
// records how crossing the edge (left to right) changes the containment
// depth; duplicate edges merge by summing deltas.
type Edge struct {
	pts        []geom.Point
	label      Label
	depthDelta int
}

// NewEdge wraps pts (not copied) with the given label.
func NewEdge(pts []geom.Point, label Label) *Edge {
	return &Edge{pts: pts, label: label}
}

// Coordinates returns the edge's vertex chain. Callers must not mutate it.
func (e *Edge) Coordinates() []geom.Point { return e.pts }

// Label returns the edge's current label.
func (e *Edge) Label() Label { return e.label }

// SetLabel replaces the edge's label (used when merging duplicate edges).
func (e *Edge) SetLabel(l Label) { e.label = l }

// DepthDelta returns the containment-depth change across the edge.
func (e *Edge) DepthDelta() int { return e.depthDelta }

// SetDepthDelta assigns the containment-depth change across the edge.
func (e *Edge) SetDepthDelta(d int) { e.depthDelta = d }

// Envelope returns the edge's bounding box.
func (e *Edge) Envelope() geom.Envelope { return geom.NewEnvelope(e.pts...) }

// IsPointwiseEqual reports whether other has exactly the same vertex chain
// in the same direction.
func (e *Edge) IsPointwiseEqual(other *Edge) bool {
	if len(e.pts) != len(other.pts) {
		return false
	}
	for i := range e.pts {
		if !e.pts[i].Equals(other.pts[i]) {
			return false
		}
	}
	return true
}

// IsInteriorAreaEdge reports whether the edge is a zero-width interior
// collapse: an area edge with interior on both sides. Such edges never
// bound the result.
func (e *Edge) IsInteriorAreaEdge() bool {
	return e.label.IsArea() &&
		e.label.Left == LocInterior &&
		e.label.Right == LocInterior
}

// EdgeList collects edges with duplicate detection: two edges are duplicates
// when their vertex chains are pointwise equal in either direction.
type EdgeList struct {
	edges []*Edge
	index map[string]*Edge
}

// NewEdgeList returns an empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{index: make(map[string]*Edge)}
}

// Edges returns the distinct edges added so far, in insertion order.
func (el *EdgeList) Edges() []*Edge { return el.edges }

// FindEqualEdge returns the stored duplicate of e (in either direction),
// or nil.
func (el *EdgeList) FindEqualEdge(e *Edge) *Edge {
	return el.index[orientedKey(e.pts)]
}

// Add stores e. The caller is responsible for duplicate checking.
func (el *EdgeList) Add(e *Edge) {
	el.edges = append(el.edges, e)
	el.index[orientedKey(e.pts)] = e
}

// orientedKey builds a direction-insensitive hash key for a vertex chain:
// the chain is canonicalized to whichever direction compares smaller.
func orientedKey(pts []geom.Point) string {
	forward := forwardIsCanonical(pts)
	buf := make([]byte, 0, 16*len(pts))
	var scratch [16]byte
	n := len(pts)
	for i := 0; i < n; i++ {
		idx := i
		if !forward {
			idx = n - 1 - i
		}
		binary.LittleEndian.PutUint64(scratch[0:8], math.Float64bits(pts[idx].X))
		binary.LittleEndian.PutUint64(scratch[8:16], math.Float64bits(pts[idx].Y))
		buf = append(buf, scratch[:]...)
	}
	return string(buf)
}

// forwardIsCanonical reports whether the forward direction of pts is
// canonical (lexicographically no greater than the reversed direction).
func forwardIsCanonical(pts []geom.Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[n-1-i]
		switch {
		case a.X < b.X:
			return true
		case a.X > b.X:
			return false
		case a.Y < b.Y:
			return true
		case a.Y > b.Y:
			return false
		}
	}
	return true
}
