package buffer

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for buffer configuration and execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("buffer: invalid option supplied")
)

// EndCapStyle selects how a line's offset is closed at its endpoints.
type EndCapStyle int

// End cap styles.
const (
	// EndCapRound closes line ends with a semicircular fillet.
	EndCapRound EndCapStyle = iota + 1
	// EndCapFlat closes line ends with a straight line across the end.
	EndCapFlat
	// EndCapSquare closes line ends with a square extending past the end.
	EndCapSquare
)

// JoinStyle selects how consecutive offset segments connect at convex
// corners.
type JoinStyle int

// Join styles.
const (
	// JoinRound connects corners with a circular fillet.
	JoinRound JoinStyle = iota + 1
	// JoinMitre connects corners by extending the offset segments to their
	// intersection, subject to the mitre limit.
	JoinMitre
	// JoinBevel connects corners with a direct chord.
	JoinBevel
)

// Defaults for Params.
const (
	// DefaultQuadrantSegments is the default fineness of round joins and caps.
	DefaultQuadrantSegments = 8

	// DefaultMitreLimit is the default ratio of mitre length to buffer
	// distance beyond which mitred corners are beveled.
	DefaultMitreLimit = 5.0

	// DefaultSimplifyFactor is the default fraction of the buffer distance
	// used as the input-simplification tolerance.
	DefaultSimplifyFactor = 0.01
)

// Params configures a buffer computation.
//
// The zero value is not usable; start from DefaultParams (or use the
// package-level Buffer with Options).
type Params struct {
	// QuadrantSegments is the number of fillet segments per quarter circle
	// (>= 1) used for round joins and caps.
	QuadrantSegments int

	// EndCapStyle selects round, flat or square line end caps.
	EndCapStyle EndCapStyle

	// JoinStyle selects round, mitre or bevel corner joins.
	JoinStyle JoinStyle

	// MitreLimit (>= 1) bounds the ratio of mitre tip distance to buffer
	// distance before a mitred corner falls back to a bevel.
	MitreLimit float64

	// SingleSided buffers only one side of line inputs: the left side for a
	// positive distance, the right for a negative one.
	SingleSided bool

	// SimplifyFactor is the fraction of the buffer distance used as the
	// input line simplification tolerance.
	SimplifyFactor float64

	// err records the first option violation for surfacing at call time.
	err error
}

// DefaultParams returns the documented defaults: 8 quadrant segments,
// round caps and joins, mitre limit 5, simplify factor 0.01, double-sided.
func DefaultParams() Params {
	return Params{
		QuadrantSegments: DefaultQuadrantSegments,
		EndCapStyle:      EndCapRound,
		JoinStyle:        JoinRound,
		MitreLimit:       DefaultMitreLimit,
		SimplifyFactor:   DefaultSimplifyFactor,
	}
}

// SetQuadrantSegments assigns the fillet fineness, honouring the legacy
// encoding: a negative value selects a mitre join with |value| as the mitre
// limit, zero selects a bevel join. Non-round join styles always use a
// single fillet segment. This overriding of JoinStyle/MitreLimit is a
// compatibility shim, not independent state.
func (p *Params) SetQuadrantSegments(quadSegs int) {
	p.QuadrantSegments = quadSegs
	if quadSegs == 0 {
		p.JoinStyle = JoinBevel
	}
	if quadSegs < 0 {
		p.JoinStyle = JoinMitre
		p.MitreLimit = math.Abs(float64(quadSegs))
	}
	if quadSegs <= 0 {
		p.QuadrantSegments = 1
	}
	if p.JoinStyle != JoinRound {
		p.QuadrantSegments = 1
	}
}

// Err surfaces the first recorded option violation, if any.
func (p *Params) Err() error { return p.err }

// Option configures Params via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the buffer runs.
type Option func(*Params)

// WithQuadrantSegments sets the fillet fineness (legacy encoding applies,
// see Params.SetQuadrantSegments).
func WithQuadrantSegments(quadSegs int) Option {
	return func(p *Params) { p.SetQuadrantSegments(quadSegs) }
}

// WithEndCapStyle sets the line end cap style.
func WithEndCapStyle(style EndCapStyle) Option {
	return func(p *Params) {
		switch style {
		case EndCapRound, EndCapFlat, EndCapSquare:
			p.EndCapStyle = style
		default:
			p.err = fmt.Errorf("%w: unknown end cap style %d", ErrOptionViolation, style)
		}
	}
}

// WithJoinStyle sets the corner join style.
func WithJoinStyle(style JoinStyle) Option {
	return func(p *Params) {
		switch style {
		case JoinRound, JoinMitre, JoinBevel:
			p.JoinStyle = style
		default:
			p.err = fmt.Errorf("%w: unknown join style %d", ErrOptionViolation, style)
		}
	}
}

// WithMitreLimit sets the mitre limit (must be >= 1).
func WithMitreLimit(limit float64) Option {
	return func(p *Params) {
		if limit < 1 {
			p.err = fmt.Errorf("%w: mitre limit %v < 1", ErrOptionViolation, limit)
			return
		}
		p.MitreLimit = limit
	}
}

// WithSingleSided buffers only one side of line inputs.
func WithSingleSided() Option {
	return func(p *Params) { p.SingleSided = true }
}

// WithSimplifyFactor sets the input simplification tolerance fraction;
// negative values are clamped to 0 (no simplification).
func WithSimplifyFactor(factor float64) Option {
	return func(p *Params) {
		if factor < 0 {
			factor = 0
		}
		p.SimplifyFactor = factor
	}
}

// DistanceError returns the maximum relative error of a round fillet
// approximated with the given number of quadrant segments: the worst-case
// shortfall between the true arc and its chords.
func DistanceError(quadSegs int) float64 {
	alpha := math.Pi / 2 / float64(quadSegs)
	return 1 - math.Cos(alpha/2)
}
