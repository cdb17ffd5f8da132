package geom

import "errors"

// Sentinel errors for geometry construction.
var (
	// ErrRingTooShort is returned when a linear ring has fewer than 4 points.
	ErrRingTooShort = errors.New("geom: ring must have at least 4 points")

	// ErrRingNotClosed is returned when a ring's first and last points differ.
	ErrRingNotClosed = errors.New("geom: ring is not closed")

	// ErrEmptyLine is returned when a line string has no vertices.
	ErrEmptyLine = errors.New("geom: line string must have at least one point")
)

// MinRingSize is the minimum number of points in a valid closed ring
// (triangle plus the closing point).
const MinRingSize = 4

// Kind discriminates the Geometry variant.
type Kind int

// Geometry kinds.
const (
	KindPoint Kind = iota
	KindMultiPoint
	KindLineString
	KindMultiLineString
	KindPolygon
	KindMultiPolygon
	KindCollection
)

// String names the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindMultiPoint:
		return "MultiPoint"
	case KindLineString:
		return "LineString"
	case KindMultiLineString:
		return "MultiLineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindCollection:
		return "GeometryCollection"
	}
	return "Unknown"
}

// Polygon is a shell ring with zero or more hole rings. All rings are
// closed (first point repeated last). Shells are conventionally clockwise
// and holes counter-clockwise, but constructors do not enforce orientation;
// algorithms that care normalize on input.
type Polygon struct {
	Shell []Point
	Holes [][]Point
}

// IsEmpty reports whether the polygon has no shell.
func (p Polygon) IsEmpty() bool { return len(p.Shell) == 0 }

// Envelope returns the bounding box of the polygon's shell.
func (p Polygon) Envelope() Envelope { return NewEnvelope(p.Shell...) }

// Geometry is a tagged-union variant over the planar geometry types. Exactly
// one payload field is meaningful for a given Kind:
//
//	KindPoint, KindMultiPoint, KindLineString  → Pts
//	KindMultiLineString                        → Lines
//	KindPolygon, KindMultiPolygon              → Polys
//	KindCollection                             → Geoms
//
// A Geometry also carries the precision model its coordinates live on;
// nil means floating precision.
type Geometry struct {
	Kind  Kind
	Pts   []Point
	Lines [][]Point
	Polys []Polygon
	Geoms []Geometry

	PM *PrecisionModel
}

// NewPoint returns a point geometry.
func NewPoint(p Point) Geometry {
	return Geometry{Kind: KindPoint, Pts: []Point{p}}
}

// NewMultiPoint returns a multipoint geometry over pts.
func NewMultiPoint(pts ...Point) Geometry {
	return Geometry{Kind: KindMultiPoint, Pts: CopyPoints(pts)}
}

// NewLineString returns a line-string geometry. At least one vertex is
// required.
func NewLineString(pts ...Point) (Geometry, error) {
	if len(pts) == 0 {
		return Geometry{}, ErrEmptyLine
	}
	return Geometry{Kind: KindLineString, Pts: CopyPoints(pts)}, nil
}

// NewMultiLineString returns a multi-line geometry over the given lines.
func NewMultiLineString(lines ...[]Point) Geometry {
	cp := make([][]Point, len(lines))
	for i, l := range lines {
		cp[i] = CopyPoints(l)
	}
	return Geometry{Kind: KindMultiLineString, Lines: cp}
}

// NewPolygon returns a polygon geometry with the given shell and holes.
// Every ring must be closed and have at least MinRingSize points.
func NewPolygon(shell []Point, holes ...[]Point) (Geometry, error) {
	if err := validateRing(shell); err != nil {
		return Geometry{}, err
	}
	for _, h := range holes {
		if err := validateRing(h); err != nil {
			return Geometry{}, err
		}
	}
	poly := Polygon{Shell: CopyPoints(shell)}
	for _, h := range holes {
		poly.Holes = append(poly.Holes, CopyPoints(h))
	}
	return Geometry{Kind: KindPolygon, Polys: []Polygon{poly}}, nil
}

// NewMultiPolygon returns a multipolygon geometry over polys.
func NewMultiPolygon(polys ...Polygon) Geometry {
	return Geometry{Kind: KindMultiPolygon, Polys: append([]Polygon(nil), polys...)}
}

// NewCollection returns a geometry collection over geoms.
func NewCollection(geoms ...Geometry) Geometry {
	return Geometry{Kind: KindCollection, Geoms: append([]Geometry(nil), geoms...)}
}

// EmptyPolygon returns the canonical empty polygonal geometry.
func EmptyPolygon() Geometry {
	return Geometry{Kind: KindPolygon}
}

func validateRing(ring []Point) error {
	if len(ring) < MinRingSize {
		return ErrRingTooShort
	}
	if !ring[0].Equals(ring[len(ring)-1]) {
		return ErrRingNotClosed
	}
	return nil
}

// IsEmpty reports whether the geometry contains no coordinates at all.
func (g Geometry) IsEmpty() bool {
	switch g.Kind {
	case KindPoint, KindMultiPoint, KindLineString:
		return len(g.Pts) == 0
	case KindMultiLineString:
		for _, l := range g.Lines {
			if len(l) > 0 {
				return false
			}
		}
		return true
	case KindPolygon, KindMultiPolygon:
		for _, p := range g.Polys {
			if !p.IsEmpty() {
				return false
			}
		}
		return true
	case KindCollection:
		for _, sub := range g.Geoms {
			if !sub.IsEmpty() {
				return false
			}
		}
		return true
	}
	return true
}

// Envelope returns the bounding box over every coordinate of the geometry.
func (g Geometry) Envelope() Envelope {
	var env Envelope
	switch g.Kind {
	case KindPoint, KindMultiPoint, KindLineString:
		for _, p := range g.Pts {
			env.ExpandToInclude(p)
		}
	case KindMultiLineString:
		for _, l := range g.Lines {
			for _, p := range l {
				env.ExpandToInclude(p)
			}
		}
	case KindPolygon, KindMultiPolygon:
		for _, poly := range g.Polys {
			for _, p := range poly.Shell {
				env.ExpandToInclude(p)
			}
		}
	case KindCollection:
		for _, sub := range g.Geoms {
			e := sub.Envelope()
			env.ExpandToIncludeEnvelope(e)
		}
	}
	return env
}

// PrecisionModel returns the model the geometry's coordinates live on
// (never nil; floating when unset).
func (g Geometry) PrecisionModel() *PrecisionModel {
	if g.PM == nil {
		return Floating
	}
	return g.PM
}

// TriangleInCentre returns the incentre of the triangle a, b, c: the centre
// of the inscribed circle, weighted by opposite side lengths.
func TriangleInCentre(a, b, c Point) Point {
	la := b.Distance(c)
	lb := a.Distance(c)
	lc := a.Distance(b)
	sum := la + lb + lc
	if sum == 0 {
		return a
	}
	return Point{
		X: (la*a.X + lb*b.X + lc*c.X) / sum,
		Y: (la*a.Y + lb*b.Y + lc*c.Y) / sum,
	}
}
