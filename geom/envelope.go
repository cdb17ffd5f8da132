package geom

import "math"

// Envelope is an axis-aligned bounding rectangle.
//
// The zero value is the "nil" (empty) envelope; use NewEnvelope or
// ExpandToInclude to populate it.
type Envelope struct {
	minX, minY float64
	maxX, maxY float64
	set        bool
}

// NewEnvelope returns the smallest envelope containing all pts.
func NewEnvelope(pts ...Point) Envelope {
	var e Envelope
	for _, p := range pts {
		e.ExpandToInclude(p)
	}
	return e
}

// IsNil reports whether the envelope contains no points at all.
func (e *Envelope) IsNil() bool { return !e.set }

// MinX returns the minimum x ordinate (0 for a nil envelope).
func (e *Envelope) MinX() float64 { return e.minX }

// MinY returns the minimum y ordinate (0 for a nil envelope).
func (e *Envelope) MinY() float64 { return e.minY }

// MaxX returns the maximum x ordinate (0 for a nil envelope).
func (e *Envelope) MaxX() float64 { return e.maxX }

// MaxY returns the maximum y ordinate (0 for a nil envelope).
func (e *Envelope) MaxY() float64 { return e.maxY }

// Width returns the x extent (0 for a nil envelope).
func (e *Envelope) Width() float64 {
	if !e.set {
		return 0
	}
	return e.maxX - e.minX
}

// Height returns the y extent (0 for a nil envelope).
func (e *Envelope) Height() float64 {
	if !e.set {
		return 0
	}
	return e.maxY - e.minY
}

// ExpandToInclude grows the envelope to cover p.
func (e *Envelope) ExpandToInclude(p Point) {
	if !e.set {
		e.minX, e.maxX = p.X, p.X
		e.minY, e.maxY = p.Y, p.Y
		e.set = true
		return
	}
	e.minX = math.Min(e.minX, p.X)
	e.maxX = math.Max(e.maxX, p.X)
	e.minY = math.Min(e.minY, p.Y)
	e.maxY = math.Max(e.maxY, p.Y)
}

// ExpandToIncludeEnvelope grows the envelope to cover other.
func (e *Envelope) ExpandToIncludeEnvelope(other Envelope) {
	if other.IsNil() {
		return
	}
	e.ExpandToInclude(Point{X: other.minX, Y: other.minY})
	e.ExpandToInclude(Point{X: other.maxX, Y: other.maxY})
}

// ExpandBy grows the envelope by d on every side. A nil envelope stays nil.
func (e *Envelope) ExpandBy(d float64) {
	if !e.set {
		return
	}
	e.minX -= d
	e.maxX += d
	e.minY -= d
	e.maxY += d
}

// Intersects reports whether e and other share any point.
func (e *Envelope) Intersects(other Envelope) bool {
	if !e.set || !other.set {
		return false
	}
	return !(other.minX > e.maxX || other.maxX < e.minX ||
		other.minY > e.maxY || other.maxY < e.minY)
}

// Contains reports whether p lies inside or on the boundary of e.
func (e *Envelope) Contains(p Point) bool {
	if !e.set {
		return false
	}
	return p.X >= e.minX && p.X <= e.maxX && p.Y >= e.minY && p.Y <= e.maxY
}

// ContainsEnvelope reports whether other lies entirely within e.
func (e *Envelope) ContainsEnvelope(other Envelope) bool {
	if !e.set || !other.set {
		return false
	}
	return other.minX >= e.minX && other.maxX <= e.maxX &&
		other.minY >= e.minY && other.maxY <= e.maxY
}

// MaxAbsOrdinate returns the largest absolute ordinate value touched by the
// envelope. Used to pick size-dependent precision scales.
func (e *Envelope) MaxAbsOrdinate() float64 {
	if !e.set {
		return 0
	}
	m := math.Abs(e.minX)
	m = math.Max(m, math.Abs(e.maxX))
	m = math.Max(m, math.Abs(e.minY))
	m = math.Max(m, math.Abs(e.maxY))
	return m
}
