package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeo/geom"
)

// TestOrientationIndex_Basic checks the three turn classes.
func TestOrientationIndex_Basic(t *testing.T) {
	p0, p1 := geom.Pt(0, 0), geom.Pt(10, 0)
	if got := geom.OrientationIndex(p0, p1, geom.Pt(5, 5)); got != geom.CounterClockwise {
		t.Errorf("left point: got %d, want %d", got, geom.CounterClockwise)
	}
	if got := geom.OrientationIndex(p0, p1, geom.Pt(5, -5)); got != geom.Clockwise {
		t.Errorf("right point: got %d, want %d", got, geom.Clockwise)
	}
	if got := geom.OrientationIndex(p0, p1, geom.Pt(20, 0)); got != geom.Collinear {
		t.Errorf("collinear point: got %d, want %d", got, geom.Collinear)
	}
}

// TestOrientationIndex_NearCollinear exercises the exact fallback: the
// predicate must be antisymmetric even for nearly collinear triples.
func TestOrientationIndex_NearCollinear(t *testing.T) {
	p0 := geom.Pt(0.5080209999999959, 0.5708420000000012)
	p1 := geom.Pt(0.5080210000000033, 0.5708420000000084)
	q := geom.Pt(0.5080210000000011, 0.5708420000000062)

	o1 := geom.OrientationIndex(p0, p1, q)
	o2 := geom.OrientationIndex(p1, p0, q)
	if o1 != -o2 {
		t.Errorf("antisymmetry violated: %d vs %d", o1, o2)
	}
}

// TestIsCCW verifies orientation of simple rings.
func TestIsCCW(t *testing.T) {
	ccw := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	cw := []geom.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	if !geom.IsCCW(ccw) {
		t.Error("ccw ring reported as cw")
	}
	if geom.IsCCW(cw) {
		t.Error("cw ring reported as ccw")
	}
}

// TestLineIntersector_Proper checks an interior crossing.
func TestLineIntersector_Proper(t *testing.T) {
	var li geom.LineIntersector
	li.ComputeIntersection(geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(10, 0))
	if li.IntersectionNum() != geom.PointIntersection {
		t.Fatalf("IntersectionNum = %d, want %d", li.IntersectionNum(), geom.PointIntersection)
	}
	if !li.IsProper() {
		t.Error("crossing should be proper")
	}
	got := li.Intersection(0)
	if math.Abs(got.X-5) > 1e-12 || math.Abs(got.Y-5) > 1e-12 {
		t.Errorf("intersection = %v, want (5, 5)", got)
	}
}

// TestLineIntersector_Endpoint checks a vertex intersection is improper.
func TestLineIntersector_Endpoint(t *testing.T) {
	var li geom.LineIntersector
	li.ComputeIntersection(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 0), geom.Pt(10, 10))
	if li.IntersectionNum() != geom.PointIntersection {
		t.Fatalf("IntersectionNum = %d, want 1", li.IntersectionNum())
	}
	if li.IsProper() {
		t.Error("shared endpoint must not be proper")
	}
	if got := li.Intersection(0); !got.Equals(geom.Pt(10, 0)) {
		t.Errorf("intersection = %v, want (10, 0)", got)
	}
}

// TestLineIntersector_CollinearOverlap checks reversed collinear segments
// produce two intersection points - the condition the offset generator uses
// to detect a reversing spike.
func TestLineIntersector_CollinearOverlap(t *testing.T) {
	var li geom.LineIntersector
	li.ComputeIntersection(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 0), geom.Pt(0, 0))
	if li.IntersectionNum() != geom.CollinearIntersection {
		t.Fatalf("IntersectionNum = %d, want %d", li.IntersectionNum(), geom.CollinearIntersection)
	}
}

// TestLineIntersector_Disjoint checks separated segments report nothing.
func TestLineIntersector_Disjoint(t *testing.T) {
	var li geom.LineIntersector
	li.ComputeIntersection(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 5), geom.Pt(1, 5))
	if li.HasIntersection() {
		t.Error("disjoint segments must not intersect")
	}
}

// TestLineLineIntersection_Parallel checks parallel lines report no point.
func TestLineLineIntersection_Parallel(t *testing.T) {
	if _, ok := geom.LineLineIntersection(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)); ok {
		t.Error("parallel lines must not intersect")
	}
}

// TestEnvelope covers expansion and containment.
func TestEnvelope(t *testing.T) {
	var e geom.Envelope
	if !e.IsNil() {
		t.Fatal("zero envelope must be nil")
	}
	e.ExpandToInclude(geom.Pt(1, 2))
	e.ExpandToInclude(geom.Pt(-3, 7))
	if e.MinX() != -3 || e.MaxX() != 1 || e.MinY() != 2 || e.MaxY() != 7 {
		t.Errorf("bounds = [%v,%v]x[%v,%v]", e.MinX(), e.MaxX(), e.MinY(), e.MaxY())
	}
	if !e.Contains(geom.Pt(0, 5)) {
		t.Error("point inside not contained")
	}
	e.ExpandBy(1)
	if e.MinX() != -4 || e.MaxY() != 8 {
		t.Errorf("ExpandBy: bounds = [%v,%v]x[%v,%v]", e.MinX(), e.MaxX(), e.MinY(), e.MaxY())
	}
}

// TestLineSegment_PointAlongOffset checks the perpendicular-offset helper
// that the entire offset-curve generator rests on.
func TestLineSegment_PointAlongOffset(t *testing.T) {
	seg := geom.LineSegment{P0: geom.Pt(0, 0), P1: geom.Pt(10, 0)}
	left := seg.PointAlongOffset(0.5, 2)
	if math.Abs(left.X-5) > 1e-12 || math.Abs(left.Y-2) > 1e-12 {
		t.Errorf("left offset = %v, want (5, 2)", left)
	}
	right := seg.PointAlongOffset(1.0, -2)
	if math.Abs(right.X-10) > 1e-12 || math.Abs(right.Y+2) > 1e-12 {
		t.Errorf("right offset = %v, want (10, -2)", right)
	}
}

// TestPrecisionModel_MakePrecise checks fixed-grid snapping.
func TestPrecisionModel_MakePrecise(t *testing.T) {
	pm := geom.NewFixedPrecisionModel(10)
	got := pm.MakePrecise(geom.Pt(1.26, -3.44))
	if !got.Equals(geom.Pt(1.3, -3.4)) {
		t.Errorf("MakePrecise = %v, want (1.3, -3.4)", got)
	}
	if geom.Floating.MakePrecise(geom.Pt(1.26, -3.44)) != geom.Pt(1.26, -3.44) {
		t.Error("floating model must not round")
	}
}

// TestGeometryConstructors checks validation of rings and lines.
func TestGeometryConstructors(t *testing.T) {
	if _, err := geom.NewLineString(); err != geom.ErrEmptyLine {
		t.Errorf("empty line: err = %v, want ErrEmptyLine", err)
	}
	if _, err := geom.NewPolygon([]geom.Point{{0, 0}, {1, 0}, {0, 0}}); err != geom.ErrRingTooShort {
		t.Errorf("short ring: err = %v, want ErrRingTooShort", err)
	}
	if _, err := geom.NewPolygon([]geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}); err != geom.ErrRingNotClosed {
		t.Errorf("open ring: err = %v, want ErrRingNotClosed", err)
	}
	g, err := geom.NewPolygon([]geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	if err != nil {
		t.Fatalf("valid ring rejected: %v", err)
	}
	if g.IsEmpty() {
		t.Error("valid polygon reported empty")
	}
	if geom.EmptyPolygon().IsEmpty() != true {
		t.Error("EmptyPolygon must be empty")
	}
}

// TestRemoveRepeatedPoints checks duplicate collapsing.
func TestRemoveRepeatedPoints(t *testing.T) {
	in := []geom.Point{{0, 0}, {0, 0}, {1, 1}, {1, 1}, {2, 2}}
	out := geom.RemoveRepeatedPoints(in)
	want := []geom.Point{{0, 0}, {1, 1}, {2, 2}}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if !out[i].Equals(want[i]) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

// TestDistancePointToSegment covers interior and endpoint projections.
func TestDistancePointToSegment(t *testing.T) {
	a, b := geom.Pt(0, 0), geom.Pt(10, 0)
	if d := geom.DistancePointToSegment(geom.Pt(5, 3), a, b); math.Abs(d-3) > 1e-12 {
		t.Errorf("perpendicular distance = %v, want 3", d)
	}
	if d := geom.DistancePointToSegment(geom.Pt(-4, 3), a, b); math.Abs(d-5) > 1e-12 {
		t.Errorf("endpoint distance = %v, want 5", d)
	}
}

// TestTriangleInCentre checks the incentre is equidistant from all sides.
func TestTriangleInCentre(t *testing.T) {
	a, b, c := geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(0, 3)
	in := geom.TriangleInCentre(a, b, c)
	d0 := geom.DistancePointToSegment(in, a, b)
	d1 := geom.DistancePointToSegment(in, b, c)
	d2 := geom.DistancePointToSegment(in, c, a)
	if math.Abs(d0-d1) > 1e-12 || math.Abs(d1-d2) > 1e-12 {
		t.Errorf("incentre distances differ: %v %v %v", d0, d1, d2)
	}
}
