package buffer

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/noding"
	"github.com/katalvlaran/lvlgeo/topo"
)

// ErrInvalidDistance is returned when the buffer distance is not a number.
var ErrInvalidDistance = errors.New("buffer: distance is NaN")

// maxPrecisionDigits caps the precision of the reduced-precision retry
// ladder; scales are derived so coordinates keep at most this many
// significant digits.
const maxPrecisionDigits = 12

// Buffer computes the polygonal region within the given distance of g,
// configured by opts. Positive distances expand, negative distances erode
// polygonal inputs; lines and points vanish at non-positive distances
// (unless single-sided). The result is always polygonal, possibly empty.
//
// Robustness failures at full floating precision trigger retries on
// successively coarser snap-rounded grids, so a result is produced for any
// well-formed input.
func Buffer(g geom.Geometry, distance float64, opts ...Option) (geom.Geometry, error) {
	params := DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}
	op := NewOp(g, params)
	return op.Result(distance)
}

// Op is a buffer computation bound to one input geometry and one parameter
// set, usable for multiple distances.
type Op struct {
	arg    geom.Geometry
	params Params

	// fixedNoder overrides the noder constructed for fixed-precision
	// attempts; nil selects snap rounding scaled to the model's grid.
	fixedNoder func(pm *geom.PrecisionModel) noding.Noder
}

// NewOp binds a buffer computation to g with the given parameters.
func NewOp(g geom.Geometry, params Params) *Op {
	return &Op{arg: g, params: params}
}

// Result computes the buffer of the bound geometry at the given distance.
func (op *Op) Result(distance float64) (geom.Geometry, error) {
	if err := op.params.Err(); err != nil {
		return geom.Geometry{}, err
	}
	if math.IsNaN(distance) {
		return geom.Geometry{}, ErrInvalidDistance
	}

	// first try at the input's own precision with full floating noding
	result, err := op.bufferOriginalPrecision(distance)
	if err == nil {
		return result, nil
	}
	var topoErr *topo.TopologyError
	if !errors.As(err, &topoErr) {
		return geom.Geometry{}, err
	}
	return op.bufferRetryPrecision(distance, err)
}

// bufferRetryPrecision reruns the computation on a snapping grid after a
// robustness failure: a fixed-precision input prescribes its own grid and
// is retried exactly once, floating inputs walk the reduced-precision
// ladder from fine to coarse.
func (op *Op) bufferRetryPrecision(distance float64, firstErr error) (geom.Geometry, error) {
	if pm := op.arg.PrecisionModel(); !pm.IsFloating() {
		return op.bufferFixedPrecision(distance, pm)
	}
	return op.bufferReducedPrecision(distance, firstErr)
}

func (op *Op) bufferOriginalPrecision(distance float64) (geom.Geometry, error) {
	b := newBuilder(op.params)
	return b.buffer(op.arg, distance)
}

// bufferReducedPrecision walks the retry ladder from fine to coarse grids,
// returning the first success or, failing everything, the last topology
// error wrapped with the attempt context.
func (op *Op) bufferReducedPrecision(distance float64, lastErr error) (geom.Geometry, error) {
	for precDigits := maxPrecisionDigits; precDigits >= 0; precDigits-- {
		scale := precisionScaleFactor(op.arg, distance, precDigits)
		pm := geom.NewFixedPrecisionModel(scale)
		result, err := op.bufferFixedPrecision(distance, pm)
		if err == nil {
			return result, nil
		}
		var topoErr *topo.TopologyError
		if !errors.As(err, &topoErr) {
			return geom.Geometry{}, err
		}
		lastErr = err
	}
	return geom.Geometry{}, fmt.Errorf("buffer: all precision reductions failed: %w", lastErr)
}

// bufferFixedPrecision runs one attempt on the grid of pm, snap-rounding
// the noding on a unit grid scaled to pm's resolution.
func (op *Op) bufferFixedPrecision(distance float64, pm *geom.PrecisionModel) (geom.Geometry, error) {
	var noder noding.Noder
	if op.fixedNoder != nil {
		noder = op.fixedNoder(pm)
	} else {
		noder = noding.NewScaledNoder(&noding.SnapRoundingNoder{}, pm.Scale)
	}
	b := newBuilder(op.params)
	b.setWorkingPrecisionModel(pm)
	b.setNoder(noder)
	return b.buffer(op.arg, distance)
}

// precisionScaleFactor sizes a snapping grid so the buffered result keeps
// precisionDigits significant digits across its whole extent.
func precisionScaleFactor(g geom.Geometry, distance float64, precisionDigits int) float64 {
	env := g.Envelope()
	envMax := env.MaxAbsOrdinate()
	expandByDistance := 0.0
	if distance > 0 {
		expandByDistance = distance
	}
	bufEnvMax := envMax + 2*expandByDistance

	// the number of digits left of the decimal point in the extent
	bufEnvPrecisionDigits := int(math.Log10(bufEnvMax) + 1)
	minUnitLog10 := precisionDigits - bufEnvPrecisionDigits
	return math.Pow(10, float64(minUnitLog10))
}
