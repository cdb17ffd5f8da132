package buffer

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/noding"
	"github.com/katalvlaran/lvlgeo/topo"
)

// stubNoder fails every noding attempt with a fixed error, recording the
// grid scale of each attempt.
type stubNoder struct {
	err    error
	scales []float64
}

func (sn *stubNoder) noderFor(pm *geom.PrecisionModel) noding.Noder {
	sn.scales = append(sn.scales, pm.Scale)
	return sn
}

func (sn *stubNoder) ComputeNodes([]*noding.SegmentString) error { return sn.err }

func (sn *stubNoder) NodedSubstrings() []*noding.SegmentString { return nil }

// TestReducedPrecisionLadderBounded drives every rung of the retry ladder:
// one attempt per precision-digit count from 12 down to 0, on strictly
// coarsening grids, with the final failure still unwrapping to a
// TopologyError.
func TestReducedPrecisionLadderBounded(t *testing.T) {
	line, err := geom.NewLineString(geom.Pt(0, 0), geom.Pt(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	sn := &stubNoder{err: topo.NewTopologyError("forced noding failure", geom.Pt(0, 0))}
	op := NewOp(line, DefaultParams())
	op.fixedNoder = sn.noderFor

	_, err = op.bufferReducedPrecision(2, sn.err)
	if err == nil {
		t.Fatal("every attempt fails, an error must surface")
	}
	var topoErr *topo.TopologyError
	if !errors.As(err, &topoErr) {
		t.Fatalf("final error must unwrap to a TopologyError, got %v", err)
	}
	if got, want := len(sn.scales), maxPrecisionDigits+1; got != want {
		t.Fatalf("attempts = %d, want %d", got, want)
	}
	for i := 1; i < len(sn.scales); i++ {
		if sn.scales[i] >= sn.scales[i-1] {
			t.Fatalf("grids must coarsen monotonically: %v", sn.scales)
		}
	}
}

// TestRetryLadderStopsOnNonTopologyError checks only robustness failures
// are retried: any other error aborts the ladder on the first rung and is
// returned unchanged.
func TestRetryLadderStopsOnNonTopologyError(t *testing.T) {
	line, err := geom.NewLineString(geom.Pt(0, 0), geom.Pt(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	cause := errors.New("noder failed for a non-geometric reason")
	sn := &stubNoder{err: cause}
	op := NewOp(line, DefaultParams())
	op.fixedNoder = sn.noderFor

	_, err = op.bufferReducedPrecision(2, topo.NewTopologyError("seed", geom.Pt(0, 0)))
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want the noder's own error", err)
	}
	if len(sn.scales) != 1 {
		t.Fatalf("attempts = %d, want 1: foreign errors must not retry", len(sn.scales))
	}
}

// TestFixedPrecisionInputRetriesOnce checks an input carrying a fixed
// precision model skips the ladder: exactly one retry, on the model's own
// grid.
func TestFixedPrecisionInputRetriesOnce(t *testing.T) {
	g := geom.NewPoint(geom.Pt(0, 0))
	g.PM = geom.NewFixedPrecisionModel(100)

	sn := &stubNoder{err: topo.NewTopologyError("forced noding failure", geom.Pt(0, 0))}
	op := NewOp(g, DefaultParams())
	op.fixedNoder = sn.noderFor

	_, err := op.bufferRetryPrecision(3, sn.err)
	if err == nil {
		t.Fatal("the single fixed attempt fails, an error must surface")
	}
	var topoErr *topo.TopologyError
	if !errors.As(err, &topoErr) {
		t.Fatalf("error type must survive the retry, got %v", err)
	}
	if len(sn.scales) != 1 {
		t.Fatalf("attempts = %d, want exactly 1 for a fixed-precision input", len(sn.scales))
	}
	if sn.scales[0] != 100 {
		t.Fatalf("attempt ran at scale %v, want the input model's scale 100", sn.scales[0])
	}
}
