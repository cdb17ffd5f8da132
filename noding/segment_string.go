package noding

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lvlgeo/geom"
)

// Sentinel errors for noding.
var (
	// ErrTooFewPoints is returned when a segment string has fewer than 2 points.
	ErrTooFewPoints = errors.New("noding: segment string needs at least 2 points")

	// ErrNoderNil is returned by ScaledNoder when its inner noder is missing.
	ErrNoderNil = errors.New("noding: inner noder is nil")
)

// SegmentString is a chain of coordinates with an opaque payload. The
// payload is carried verbatim onto every substring produced by noding.
type SegmentString struct {
	pts  []geom.Point
	data any

	// intersection nodes recorded during noding, per owning string
	nodes []segmentNode
}

// NewSegmentString wraps pts (not copied) with the given payload.
func NewSegmentString(pts []geom.Point, data any) (*SegmentString, error) {
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	return &SegmentString{pts: pts, data: data}, nil
}

// Coordinates returns the string's vertex chain. Callers must not mutate it.
func (ss *SegmentString) Coordinates() []geom.Point { return ss.pts }

// Data returns the opaque payload attached at construction.
func (ss *SegmentString) Data() any { return ss.data }

// Size returns the number of vertices.
func (ss *SegmentString) Size() int { return len(ss.pts) }

// segmentNode is an intersection point lying on segment segIndex of the
// owning string.
type segmentNode struct {
	pt       geom.Point
	segIndex int
}

// AddIntersection records an intersection point located on segment
// segIndex. Duplicates are tolerated; they collapse during splitting.
func (ss *SegmentString) AddIntersection(pt geom.Point, segIndex int) {
	// an intersection at the far endpoint belongs to the next segment
	normIndex := segIndex
	if next := segIndex + 1; next < len(ss.pts) && pt.Equals(ss.pts[next]) {
		normIndex = next
	}
	ss.nodes = append(ss.nodes, segmentNode{pt: pt, segIndex: normIndex})
}

// splitSubstrings cuts the string at its recorded intersection nodes and
// returns the resulting substrings, each inheriting the payload. Endpoints
// of the whole string always begin and end the first and last substring.
func (ss *SegmentString) splitSubstrings() []*SegmentString {
	if len(ss.nodes) == 0 {
		out, _ := NewSegmentString(geom.CopyPoints(ss.pts), ss.data)
		return []*SegmentString{out}
	}

	// order nodes along the string: by segment, then by distance from the
	// segment start
	nodes := append([]segmentNode(nil), ss.nodes...)
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].segIndex != nodes[j].segIndex {
			return nodes[i].segIndex < nodes[j].segIndex
		}
		p0 := ss.pts[nodes[i].segIndex]
		return p0.Distance(nodes[i].pt) < p0.Distance(nodes[j].pt)
	})

	var result []*SegmentString
	cur := []geom.Point{ss.pts[0]}
	segIdx := 0
	for _, n := range nodes {
		// carry all whole vertices up to the node's segment
		for segIdx < n.segIndex {
			segIdx++
			appendNonRepeated(&cur, ss.pts[segIdx])
		}
		appendNonRepeated(&cur, n.pt)
		if len(cur) >= 2 {
			sub, _ := NewSegmentString(geom.CopyPoints(cur), ss.data)
			result = append(result, sub)
		}
		cur = []geom.Point{n.pt}
	}
	for segIdx < len(ss.pts)-1 {
		segIdx++
		appendNonRepeated(&cur, ss.pts[segIdx])
	}
	if len(cur) >= 2 {
		sub, _ := NewSegmentString(geom.CopyPoints(cur), ss.data)
		result = append(result, sub)
	}
	if len(result) == 0 {
		// every node coincided with both endpoints; keep the original
		out, _ := NewSegmentString(geom.CopyPoints(ss.pts), ss.data)
		result = append(result, out)
	}
	return result
}

func appendNonRepeated(pts *[]geom.Point, p geom.Point) {
	if n := len(*pts); n > 0 && (*pts)[n-1].Equals(p) {
		return
	}
	*pts = append(*pts, p)
}
