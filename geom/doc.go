// Package geom provides the planar value types and numeric predicates that
// the rest of lvlgeo is built on: points, envelopes, line segments, a
// robust orientation index, a segment-segment intersector, precision
// models, and a tagged-union Geometry variant.
//
// What
//
//   - Point: immutable 2-D coordinate with exact (bitwise) equality.
//   - Envelope: axis-aligned bounding box with expansion and containment.
//   - LineSegment: ordered point pair with projection and offset helpers.
//   - OrientationIndex: robust turn predicate (+1 CCW, 0 collinear, -1 CW),
//     filtered float evaluation with an exact big.Rat fallback.
//   - LineIntersector: classifies two segments as disjoint, meeting in one
//     point, or collinearly overlapping (two intersection points).
//   - PrecisionModel: floating or fixed (grid-snapping) coordinate precision.
//   - Geometry: variant type over Point / LineString / Polygon /
//     Multi* / Collection payloads, so callers dispatch with a switch on
//     Kind rather than a type hierarchy.
//
// Why
//
//	Buffering (package buffer) is numerically delicate: every corner case
//	ultimately reduces to orientation and intersection queries. Keeping the
//	predicates in one small, heavily tested package lets the higher layers
//	stay purely combinatorial.
//
// Determinism
//
//	All predicates are deterministic for identical inputs. OrientationIndex
//	falls back to exact rational arithmetic only when the floating-point
//	filter cannot certify a sign, so results never depend on evaluation
//	order.
package geom
