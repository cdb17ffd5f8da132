// Package topo builds and labels planar topology graphs from noded segment
// strings, and extracts polygons from depth-labelled directed edges.
//
// What
//
//   - Location / Position: topological side vocabulary (interior, boundary,
//     exterior / on, left, right).
//   - Label: per-side locations of an edge relative to the input geometry.
//   - Edge + EdgeList: labelled coordinate chains with direction-insensitive
//     duplicate detection and depth-delta merging.
//   - Node, DirectedEdge, DirectedEdgeStar, PlanarGraph: the directed planar
//     graph. Each physical edge owns a forward and a symmetric (reversed)
//     directed edge; every node keeps its incident outgoing edges sorted
//     counter-clockwise so that side depths can be propagated by angular
//     order around the node.
//   - EdgeRing, PolygonBuilder: link result-marked directed edges into
//     maximal rings, split rings that revisit high-degree nodes into minimal
//     rings, classify shells and holes by ring orientation, and assign free
//     holes to their containing shells.
//   - TopologyError: the recoverable failure class for inconsistent noding
//     or depth labelling, carrying the offending coordinate.
//
// Why
//
//	The buffer pipeline (package buffer) reduces curve offsetting to a graph
//	problem: noded offset curves become edges, depth labelling decides which
//	edges bound the result, and ring linking turns those edges back into
//	polygons. This package owns the graph half of that bargain.
//
// Errors
//
//	All inconsistencies surface as *TopologyError values, never panics, so
//	the buffer orchestrator can retry at reduced precision (errors.As).
//
// Complexity (V = nodes, E = directed edges)
//
//   - Graph construction: O(E log E) (star insertion keeps angular order).
//   - Ring linking and polygon extraction: O(V + E).
package topo
