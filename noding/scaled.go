package noding

import (
	"math"

	"github.com/katalvlaran/lvlgeo/geom"
)

// SnapRoundingNoder nodes segment strings on the unit integer grid: all
// input vertices and every computed intersection point are snapped to the
// grid, and noding is repeated until a round introduces no new crossing.
// Snapping an intersection can slide a segment across a neighbouring
// vertex, which is exactly the case the re-noding rounds repair.
//
// The zero value is ready to use.
type SnapRoundingNoder struct {
	noded []*SegmentString
}

// maxSnapRounds bounds the re-noding iterations; each round only ever snaps
// points onto the same finite grid, so a handful of rounds always suffices.
const maxSnapRounds = 6

// ComputeNodes snap-rounds and nodes the input strings.
func (n *SnapRoundingNoder) ComputeNodes(strings []*SegmentString) error {
	unit := geom.NewFixedPrecisionModel(1)

	cur := make([]*SegmentString, 0, len(strings))
	for _, ss := range strings {
		pts := geom.RemoveRepeatedPoints(unit.MakePreciseAll(geom.CopyPoints(ss.Coordinates())))
		if len(pts) < 2 {
			continue
		}
		snapped, err := NewSegmentString(pts, ss.Data())
		if err != nil {
			return err
		}
		cur = append(cur, snapped)
	}

	for round := 0; round < maxSnapRounds; round++ {
		simple := &SimpleNoder{PM: unit}
		if err := simple.ComputeNodes(cur); err != nil {
			return err
		}
		next := simple.NodedSubstrings()
		if !hasNewVertices(cur, next) {
			cur = next
			break
		}
		cur = next
	}
	n.noded = cur
	return nil
}

// NodedSubstrings returns the snap-rounded substrings.
func (n *SnapRoundingNoder) NodedSubstrings() []*SegmentString { return n.noded }

// hasNewVertices reports whether noding increased the total vertex count,
// i.e. introduced at least one new split point.
func hasNewVertices(before, after []*SegmentString) bool {
	cntBefore, cntAfter := 0, 0
	for _, ss := range before {
		cntBefore += ss.Size()
	}
	for _, ss := range after {
		cntAfter += ss.Size()
	}
	// splitting one string into two duplicates the split vertex
	return cntAfter > cntBefore+len(after)-len(before)
}

// ScaledNoder runs an inner noder in a scaled coordinate space: input
// coordinates are multiplied by Scale (and rounded to integers), noded, and
// the results divided back. Wrapping a SnapRoundingNoder this way performs
// snap rounding on the grid of a fixed precision model with the given
// scale.
type ScaledNoder struct {
	Inner Noder
	Scale float64

	noded []*SegmentString
}

// NewScaledNoder returns a ScaledNoder around inner at the given scale.
// A scale of 0 or 1 passes coordinates through unchanged.
func NewScaledNoder(inner Noder, scale float64) *ScaledNoder {
	return &ScaledNoder{Inner: inner, Scale: scale}
}

func (sn *ScaledNoder) isRescaling() bool { return sn.Scale != 0 && sn.Scale != 1 }

// ComputeNodes scales, nodes, and unscales the input strings.
func (sn *ScaledNoder) ComputeNodes(strings []*SegmentString) error {
	if sn.Inner == nil {
		return ErrNoderNil
	}
	input := strings
	if sn.isRescaling() {
		input = make([]*SegmentString, 0, len(strings))
		for _, ss := range strings {
			scaled := geom.RemoveRepeatedPoints(sn.scalePoints(ss.Coordinates()))
			if len(scaled) < 2 {
				continue
			}
			s, err := NewSegmentString(scaled, ss.Data())
			if err != nil {
				return err
			}
			input = append(input, s)
		}
	}
	if err := sn.Inner.ComputeNodes(input); err != nil {
		return err
	}
	sn.noded = sn.Inner.NodedSubstrings()
	if sn.isRescaling() {
		for _, ss := range sn.noded {
			sn.unscalePoints(ss.Coordinates())
		}
	}
	return nil
}

// NodedSubstrings returns the results of the last ComputeNodes call.
func (sn *ScaledNoder) NodedSubstrings() []*SegmentString { return sn.noded }

func (sn *ScaledNoder) scalePoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.Point{
			X: math.Round(p.X * sn.Scale),
			Y: math.Round(p.Y * sn.Scale),
		}
	}
	return out
}

func (sn *ScaledNoder) unscalePoints(pts []geom.Point) {
	for i := range pts {
		pts[i].X /= sn.Scale
		pts[i].Y /= sn.Scale
	}
}
