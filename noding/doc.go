// Package noding splits sets of possibly-crossing segment strings at all
// mutual intersection points, so that no two output segments cross except
// at shared endpoints.
//
// What
//
//   - SegmentString: a coordinate chain plus an opaque Data payload that
//     survives noding unchanged (the buffer pipeline stores side labels
//     there).
//   - Noder: the noding contract — ComputeNodes then NodedSubstrings.
//   - SimpleNoder: brute-force all-pairs noder with per-pair envelope
//     rejection; the default for floating-precision buffering.
//   - SnapRoundingNoder: nodes on a fixed unit grid, snapping every computed
//     intersection point and re-noding until no new crossings appear.
//   - ScaledNoder: wraps another noder, rescaling coordinates into grid
//     units and back — how the buffer retry ladder runs snap rounding at a
//     size-dependent scale.
//
// Why
//
//	Raw offset curves self-intersect by construction. Every downstream
//	graph step (package topo, package buffer) requires a non-crossing
//	segment arrangement as input.
//
// Complexity
//
//   - SimpleNoder: O(n²) segment pair tests for n input segments.
//   - SnapRoundingNoder: O(k·n²) for k snapping rounds (k is small and
//     bounded).
package noding
