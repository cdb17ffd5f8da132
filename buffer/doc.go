// Package buffer computes buffers: the polygonal region within a given
// distance of a geometry. Positive distances expand, negative distances
// erode polygonal inputs, and line or point inputs grow caps and joins
// shaped by configurable styles.
//
// What
//
//   - Buffer / Op: the public entry points. Buffer is the one-shot helper;
//     Op binds an input and parameters for repeated distances.
//   - Params + Options: end cap style (round, flat, square), join style
//     (round, mitre, bevel), quadrant segments, mitre limit, single-sided
//     mode, and the input simplification factor.
//   - Offset curve generation: each input component is simplified at a
//     distance-proportional tolerance and swept into a raw offset curve;
//     joins, caps, and narrow inside turns are emitted point by point.
//   - Graph pipeline: the raw curves are noded (package noding), folded
//     into a labelled planar graph (package topo), depth-labelled per
//     connected component, and the depth-1 boundary is linked back into
//     polygons.
//
// Why
//
//	Raw offset curves self-intersect freely; trying to trim them directly
//	is fragile. Noding plus depth labelling turns the problem into robust
//	integer bookkeeping: an edge bounds the result exactly when the overlap
//	depth is positive on one side and zero on the other.
//
// Robustness
//
//	A first attempt runs at full floating precision. If it fails with a
//	*topo.TopologyError, the computation retries on successively coarser
//	snap-rounded grids (12 significant digits down to 0), so every
//	well-formed input produces a result. Inputs carrying a fixed precision
//	model retry exactly once, on their own grid.
//
// Complexity
//
//	Curve generation is O(n) in input vertices; noding dominates at
//	O(k²) in curve segments for the exhaustive noder.
package buffer
