package noding_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/noding"
)

func mustString(t *testing.T, data any, pts ...geom.Point) *noding.SegmentString {
	t.Helper()
	ss, err := noding.NewSegmentString(pts, data)
	if err != nil {
		t.Fatalf("NewSegmentString: %v", err)
	}
	return ss
}

// TestSegmentString_Validation rejects degenerate chains.
func TestSegmentString_Validation(t *testing.T) {
	if _, err := noding.NewSegmentString([]geom.Point{{X: 0, Y: 0}}, nil); err != noding.ErrTooFewPoints {
		t.Errorf("err = %v, want ErrTooFewPoints", err)
	}
}

// TestSimpleNoder_Cross splits two crossing strings into four substrings
// meeting at the shared intersection point.
func TestSimpleNoder_Cross(t *testing.T) {
	a := mustString(t, "a", geom.Pt(0, 0), geom.Pt(10, 10))
	b := mustString(t, "b", geom.Pt(0, 10), geom.Pt(10, 0))

	var n noding.SimpleNoder
	if err := n.ComputeNodes([]*noding.SegmentString{a, b}); err != nil {
		t.Fatal(err)
	}
	out := n.NodedSubstrings()
	if len(out) != 4 {
		t.Fatalf("substrings = %d, want 4", len(out))
	}
	mid := geom.Pt(5, 5)
	for _, ss := range out {
		pts := ss.Coordinates()
		first, last := pts[0], pts[len(pts)-1]
		if !first.Equals(mid) && !last.Equals(mid) {
			t.Errorf("substring %v does not touch the intersection", pts)
		}
		if ss.Data() != "a" && ss.Data() != "b" {
			t.Errorf("payload lost: %v", ss.Data())
		}
	}
}

// TestSimpleNoder_NoIntersections leaves disjoint strings whole.
func TestSimpleNoder_NoIntersections(t *testing.T) {
	a := mustString(t, 1, geom.Pt(0, 0), geom.Pt(1, 0))
	b := mustString(t, 2, geom.Pt(0, 5), geom.Pt(1, 5))

	var n noding.SimpleNoder
	if err := n.ComputeNodes([]*noding.SegmentString{a, b}); err != nil {
		t.Fatal(err)
	}
	out := n.NodedSubstrings()
	if len(out) != 2 {
		t.Fatalf("substrings = %d, want 2", len(out))
	}
	if out[0].Size() != 2 || out[1].Size() != 2 {
		t.Error("disjoint strings must be returned unsplit")
	}
}

// TestSimpleNoder_SelfIntersection splits a self-crossing string.
func TestSimpleNoder_SelfIntersection(t *testing.T) {
	// figure-4 shape crossing itself at (5, 5)
	a := mustString(t, nil,
		geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 10))

	var n noding.SimpleNoder
	if err := n.ComputeNodes([]*noding.SegmentString{a}); err != nil {
		t.Fatal(err)
	}
	out := n.NodedSubstrings()
	if len(out) < 2 {
		t.Fatalf("self-crossing string was not split: %d substrings", len(out))
	}
}

// TestSimpleNoder_AdjacentSegmentsUntouched verifies a simple polyline with
// a corner is not split at its own shared vertex.
func TestSimpleNoder_AdjacentSegmentsUntouched(t *testing.T) {
	a := mustString(t, nil, geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(5, 5))

	var n noding.SimpleNoder
	if err := n.ComputeNodes([]*noding.SegmentString{a}); err != nil {
		t.Fatal(err)
	}
	if out := n.NodedSubstrings(); len(out) != 1 || out[0].Size() != 3 {
		t.Errorf("polyline corner was split: %d substrings", len(out))
	}
}

// TestScaledNoder_SnapRounding checks coordinates are snapped onto the
// fixed grid and payloads survive.
func TestScaledNoder_SnapRounding(t *testing.T) {
	a := mustString(t, "payload", geom.Pt(0.004, 0), geom.Pt(9.996, 10.004))
	b := mustString(t, "other", geom.Pt(0, 10), geom.Pt(10, 0))

	sn := noding.NewScaledNoder(&noding.SnapRoundingNoder{}, 100)
	if err := sn.ComputeNodes([]*noding.SegmentString{a, b}); err != nil {
		t.Fatal(err)
	}
	out := sn.NodedSubstrings()
	if len(out) < 4 {
		t.Fatalf("substrings = %d, want >= 4", len(out))
	}
	for _, ss := range out {
		for _, p := range ss.Coordinates() {
			if math.Abs(p.X*100-math.Round(p.X*100)) > 1e-9 ||
				math.Abs(p.Y*100-math.Round(p.Y*100)) > 1e-9 {
				t.Errorf("coordinate %v is off the 0.01 grid", p)
			}
		}
		if ss.Data() != "payload" && ss.Data() != "other" {
			t.Errorf("payload lost: %v", ss.Data())
		}
	}
}

// TestScaledNoder_NilInner surfaces the sentinel error.
func TestScaledNoder_NilInner(t *testing.T) {
	sn := noding.NewScaledNoder(nil, 10)
	if err := sn.ComputeNodes(nil); err != noding.ErrNoderNil {
		t.Errorf("err = %v, want ErrNoderNil", err)
	}
}
