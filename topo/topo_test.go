package topo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/topo"
)

// TopoSuite exercises labels, edge identity, star ordering, depth
// propagation, and ring extraction.
type TopoSuite struct {
	suite.Suite
}

func (s *TopoSuite) TestLabelFlipAndMerge() {
	l := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	f := l.Flip()
	require.Equal(s.T(), topo.LocInterior, f.Left)
	require.Equal(s.T(), topo.LocExterior, f.Right)
	require.Equal(s.T(), topo.LocBoundary, f.On)

	partial := topo.Label{On: topo.LocBoundary}
	merged := partial.Merge(l)
	require.Equal(s.T(), topo.LocExterior, merged.Left)
	require.Equal(s.T(), topo.LocInterior, merged.Right)
}

func (s *TopoSuite) TestPositionOpposite() {
	require.Equal(s.T(), topo.PosRight, topo.PosLeft.Opposite())
	require.Equal(s.T(), topo.PosLeft, topo.PosRight.Opposite())
	require.Equal(s.T(), topo.PosOn, topo.PosOn.Opposite())
}

func (s *TopoSuite) TestEdgeListFindsReversedDuplicate() {
	lbl := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	fwd := topo.NewEdge([]geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}, lbl)
	rev := topo.NewEdge([]geom.Point{{X: 5, Y: 5}, {X: 5, Y: 0}, {X: 0, Y: 0}}, lbl)

	el := topo.NewEdgeList()
	require.Nil(s.T(), el.FindEqualEdge(fwd))
	el.Add(fwd)
	require.Same(s.T(), fwd, el.FindEqualEdge(fwd))
	require.Same(s.T(), fwd, el.FindEqualEdge(rev), "reversed chain must match")
}

func (s *TopoSuite) TestStarOrdersCCW() {
	lbl := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	origin := geom.Pt(0, 0)
	mk := func(to geom.Point) *topo.DirectedEdge {
		return topo.NewDirectedEdge(topo.NewEdge([]geom.Point{origin, to}, lbl), true)
	}
	east := mk(geom.Pt(1, 0))
	north := mk(geom.Pt(0, 1))
	west := mk(geom.Pt(-1, 0))
	south := mk(geom.Pt(0, -1))

	var star topo.DirectedEdgeStar
	star.Insert(west)
	star.Insert(south)
	star.Insert(east)
	star.Insert(north)

	got := star.Edges()
	require.Equal(s.T(), []*topo.DirectedEdge{east, north, west, south}, got)
}

func (s *TopoSuite) TestSetDepthMismatch() {
	lbl := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	de := topo.NewDirectedEdge(topo.NewEdge([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, lbl), true)

	require.NoError(s.T(), de.SetDepth(topo.PosLeft, 0))
	require.NoError(s.T(), de.SetDepth(topo.PosLeft, 0), "re-assigning the same depth is fine")

	err := de.SetDepth(topo.PosLeft, 2)
	require.Error(s.T(), err)
	var te *topo.TopologyError
	require.ErrorAs(s.T(), err, &te)
}

func (s *TopoSuite) TestSetEdgeDepthsUsesDelta() {
	lbl := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	e := topo.NewEdge([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, lbl)
	e.SetDepthDelta(1)

	fwd := topo.NewDirectedEdge(e, true)
	require.NoError(s.T(), fwd.SetEdgeDepths(topo.PosRight, 0))
	require.Equal(s.T(), 0, fwd.Depth(topo.PosRight))
	require.Equal(s.T(), 1, fwd.Depth(topo.PosLeft), "left = right + delta for forward edges")

	rev := topo.NewDirectedEdge(e, false)
	require.NoError(s.T(), rev.SetEdgeDepths(topo.PosRight, 1))
	require.Equal(s.T(), 0, rev.Depth(topo.PosLeft), "delta negates on the reverse direction")
}

// TestSingleRingPolygon builds the graph of one clockwise square ring,
// marks it as a result boundary, and extracts the polygon.
func (s *TopoSuite) TestSingleRingPolygon() {
	// clockwise: interior on the right of travel
	ringPts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	lbl := topo.NewLabel(topo.LocBoundary, topo.LocExterior, topo.LocInterior)
	e := topo.NewEdge(ringPts, lbl)
	e.SetDepthDelta(-1)

	g := topo.NewPlanarGraph()
	g.AddEdges([]*topo.Edge{e})

	var fwd *topo.DirectedEdge
	for _, de := range g.DirectedEdges() {
		if de.IsForward() {
			fwd = de
		}
	}
	require.NotNil(s.T(), fwd)
	fwd.SetInResult(true)

	pb := topo.NewPolygonBuilder()
	require.NoError(s.T(), pb.Add(g.DirectedEdges(), g.Nodes().Nodes()))
	polys, err := pb.Polygons()
	require.NoError(s.T(), err)
	require.Len(s.T(), polys, 1)
	require.Empty(s.T(), polys[0].Holes)

	env := polys[0].Envelope()
	require.Equal(s.T(), 0.0, env.MinX())
	require.Equal(s.T(), 10.0, env.MaxX())
	require.False(s.T(), geom.IsCCW(polys[0].Shell), "shells are clockwise")
}

func (s *TopoSuite) TestTopologyErrorMessage() {
	err := topo.NewTopologyError("depth mismatch", geom.Pt(1, 2))
	require.Contains(s.T(), err.Error(), "depth mismatch")
	require.Contains(s.T(), err.Error(), "(1, 2)")
}

func TestTopoSuite(t *testing.T) {
	suite.Run(t, new(TopoSuite))
}
