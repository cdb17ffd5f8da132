package buffer

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/topo"
)

// TestRightmostFinderHorizontalEdge checks a component made of a single
// fully horizontal edge still yields a rightmost edge: with no vertical cue
// the finder keeps the forward direction instead of failing.
func TestRightmostFinderHorizontalEdge(t *testing.T) {
	lbl := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	e := topo.NewEdge([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, lbl)
	g := topo.NewPlanarGraph()
	g.AddEdges([]*topo.Edge{e})

	rf := &rightmostEdgeFinder{}
	if err := rf.findEdge(g.DirectedEdges()); err != nil {
		t.Fatalf("findEdge: %v", err)
	}
	if rf.edge == nil {
		t.Fatal("no rightmost edge located")
	}
	if !rf.edge.IsForward() {
		t.Error("a horizontal edge must keep its forward direction")
	}
}

// TestRightmostFinderAscendingEdge checks the slope rule: the right side of
// an ascending segment faces the rightmost vertex, so the forward edge is
// kept.
func TestRightmostFinderAscendingEdge(t *testing.T) {
	lbl := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	e := topo.NewEdge([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, lbl)
	g := topo.NewPlanarGraph()
	g.AddEdges([]*topo.Edge{e})

	rf := &rightmostEdgeFinder{}
	if err := rf.findEdge(g.DirectedEdges()); err != nil {
		t.Fatalf("findEdge: %v", err)
	}
	if !rf.edge.IsForward() {
		t.Error("ascending edge: right side faces outward, forward edge expected")
	}
	if side := rf.rightmostSide(rf.minDe, rf.minIndex); side != topo.PosRight {
		t.Errorf("rightmostSide = %v, want PosRight for an ascending segment", side)
	}
}
