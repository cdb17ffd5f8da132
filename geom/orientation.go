package geom

import (
	"math"
	"math/big"
)

// Orientation index values returned by OrientationIndex.
const (
	// Clockwise (negative) turn; the point is to the right of the vector.
	Clockwise = -1
	// Collinear: no turn.
	Collinear = 0
	// CounterClockwise (positive) turn; the point is to the left.
	CounterClockwise = 1
)

// OrientationIndex returns the orientation of point q relative to the
// directed line p0→p1: CounterClockwise (+1) if q lies to the left,
// Clockwise (-1) if to the right, Collinear (0) otherwise.
//
// The determinant is evaluated in floating point with a relative error
// filter; only when the filter cannot certify the sign does the predicate
// fall back to exact rational arithmetic, so the common case stays fast
// while degenerate near-collinear cases stay correct.
func OrientationIndex(p0, p1, q Point) int {
	detLeft := (p0.X - q.X) * (p1.Y - q.Y)
	detRight := (p0.Y - q.Y) * (p1.X - q.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return signOf(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return signOf(det)
		}
		detSum = -detLeft - detRight
	default:
		return signOf(det)
	}

	// Shewchuk's orient2d filter bound
	const errBoundFactor = 1e-15
	errBound := errBoundFactor * detSum
	if det >= errBound || -det >= errBound {
		return signOf(det)
	}
	return orientationIndexExact(p0, p1, q)
}

// orientationIndexExact evaluates the orientation determinant with exact
// rational arithmetic.
func orientationIndexExact(p0, p1, q Point) int {
	ax := new(big.Rat).SetFloat64(p0.X - q.X)
	ay := new(big.Rat).SetFloat64(p0.Y - q.Y)
	bx := new(big.Rat).SetFloat64(p1.X - q.X)
	by := new(big.Rat).SetFloat64(p1.Y - q.Y)

	left := new(big.Rat).Mul(ax, by)
	right := new(big.Rat).Mul(ay, bx)

	return left.Cmp(right)
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	}
	return Collinear
}

// IsCCW reports whether the closed ring (first point repeated last) is
// oriented counter-clockwise, using the sign of the shoelace area.
// Rings with fewer than 4 points are reported as false.
func IsCCW(ring []Point) bool {
	return SignedArea(ring) > 0
}

// SignedArea returns the signed shoelace area of a closed ring: positive
// for counter-clockwise orientation, negative for clockwise.
func SignedArea(ring []Point) float64 {
	if len(ring) < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += (ring[i].X - ring[i+1].X) * (ring[i].Y + ring[i+1].Y)
	}
	// a ring that is not explicitly closed still contributes its last edge
	if !ring[0].Equals(ring[len(ring)-1]) {
		n := len(ring) - 1
		sum += (ring[n].X - ring[0].X) * (ring[n].Y + ring[0].Y)
	}
	return sum / 2
}

// Angle returns the angle of the vector p0→p1 in radians, in (-π, π].
func Angle(p0, p1 Point) float64 {
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
}

// NormalizeAngle shifts a into the range (-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AngleBetweenOriented returns the oriented angle from the vector base→p0
// to the vector base→p1, in (-π, π]. Positive values are counter-clockwise.
func AngleBetweenOriented(p0, base, p1 Point) float64 {
	a0 := Angle(base, p0)
	a1 := Angle(base, p1)
	return NormalizeAngle(a1 - a0)
}
