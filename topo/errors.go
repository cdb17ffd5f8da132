package topo

import (
	"fmt"

	"github.com/katalvlaran/lvlgeo/geom"
)

// TopologyError reports an inconsistency detected while building or
// labelling a planar graph: failed noding, mismatched depths, or rings that
// cannot be linked. It is the only recoverable error class in the buffer
// pipeline: the orchestrator retries at reduced precision when it sees one.
type TopologyError struct {
	// Msg describes the inconsistency.
	Msg string
	// Coord is the location at which it was detected.
	Coord geom.Point
	// HasCoord distinguishes a meaningful Coord from the zero point.
	HasCoord bool
}

// NewTopologyError returns a TopologyError at the given coordinate.
func NewTopologyError(msg string, at geom.Point) *TopologyError {
	return &TopologyError{Msg: msg, Coord: at, HasCoord: true}
}

// Error implements the error interface.
func (e *TopologyError) Error() string {
	if e.HasCoord {
		return fmt.Sprintf("topo: %s at %s", e.Msg, e.Coord)
	}
	return "topo: " + e.Msg
}
