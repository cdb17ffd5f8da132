package geom

import "math"

// PrecisionModel describes the coordinate grid a computation works on.
//
// A nil *PrecisionModel or a zero Scale means full floating-point
// ("floating") precision. A positive Scale means fixed precision: every
// coordinate is snapped to multiples of 1/Scale.
type PrecisionModel struct {
	// Scale is the number of grid cells per unit; 0 selects floating precision.
	Scale float64
}

// Floating is the shared floating-precision model.
var Floating = &PrecisionModel{}

// NewFixedPrecisionModel returns a fixed model with the given scale.
func NewFixedPrecisionModel(scale float64) *PrecisionModel {
	return &PrecisionModel{Scale: math.Abs(scale)}
}

// IsFloating reports whether the model performs no rounding.
func (pm *PrecisionModel) IsFloating() bool { return pm == nil || pm.Scale == 0 }

// MakePrecise snaps p onto the model's grid. Floating models return p
// unchanged.
func (pm *PrecisionModel) MakePrecise(p Point) Point {
	if pm.IsFloating() {
		return p
	}
	return Point{
		X: math.Round(p.X*pm.Scale) / pm.Scale,
		Y: math.Round(p.Y*pm.Scale) / pm.Scale,
	}
}

// MakePreciseAll snaps every point of pts in place and returns pts.
func (pm *PrecisionModel) MakePreciseAll(pts []Point) []Point {
	if pm.IsFloating() {
		return pts
	}
	for i := range pts {
		pts[i] = pm.MakePrecise(pts[i])
	}
	return pts
}
