package topo

// Location classifies a point or edge side relative to the input geometry.
type Location int8

// Location values.
const (
	// LocNone means the location is not yet known.
	LocNone Location = iota
	// LocInterior: inside the geometry.
	LocInterior
	// LocBoundary: on the geometry's boundary.
	LocBoundary
	// LocExterior: outside the geometry.
	LocExterior
)

// String names the location for diagnostics.
func (l Location) String() string {
	switch l {
	case LocInterior:
		return "Interior"
	case LocBoundary:
		return "Boundary"
	case LocExterior:
		return "Exterior"
	}
	return "None"
}

// Position identifies a side of a directed edge.
type Position int8

// Position values.
const (
	// PosOn: on the edge itself.
	PosOn Position = 0
	// PosLeft: to the left of the edge direction.
	PosLeft Position = 1
	// PosRight: to the right of the edge direction.
	PosRight Position = 2
)

// Opposite returns the mirrored side; PosOn maps to itself.
func (p Position) Opposite() Position {
	switch p {
	case PosLeft:
		return PosRight
	case PosRight:
		return PosLeft
	}
	return p
}

// Label carries the topological locations of an edge: on the edge itself
// and on each of its two sides, relative to the single input geometry of a
// buffer computation.
type Label struct {
	On, Left, Right Location
}

// NewLabel returns a fully populated area label.
func NewLabel(on, left, right Location) Label {
	return Label{On: on, Left: left, Right: right}
}

// IsArea reports whether the label carries side information.
func (l Label) IsArea() bool { return l.Left != LocNone || l.Right != LocNone }

// Location returns the location at the given position.
func (l Label) Location(pos Position) Location {
	switch pos {
	case PosLeft:
		return l.Left
	case PosRight:
		return l.Right
	}
	return l.On
}

// Flip returns the label with its sides exchanged, as for an edge traversed
// in the opposite direction.
func (l Label) Flip() Label {
	return Label{On: l.On, Left: l.Right, Right: l.Left}
}

// Merge fills any unknown location of l from other and returns the result.
func (l Label) Merge(other Label) Label {
	if l.On == LocNone {
		l.On = other.On
	}
	if l.Left == LocNone {
		l.Left = other.Left
	}
	if l.Right == LocNone {
		l.Right = other.Right
	}
	return l
}
