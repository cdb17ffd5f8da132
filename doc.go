// Package lvlgeo is your in-memory toolkit for robust computational
// geometry — from exact orientation predicates to full buffer (offset)
// construction around points, lines and polygons.
//
// 🚀 What is lvlgeo?
//
//	A modern, deterministic geometry library that brings together:
//		• Core primitives: points, segments, envelopes, precision models
//		• Exact predicates: orientation with a rational-arithmetic fallback
//		• Noding: splitting curves at every mutual intersection, with
//		  snap rounding for fixed-precision grids
//		• Planar topology: labelled edges, angular edge stars, depth
//		  propagation and polygon extraction
//		• Buffering: round/flat/square caps, round/mitre/bevel joins,
//		  single-sided offsets and negative (eroding) distances
//
// ✨ Why choose lvlgeo?
//
//   - Robust by construction – topology failures never panic; the buffer
//     retries on coarser snap-rounded grids until a result is produced
//   - Deterministic – the same input yields the same output, bit for bit
//   - Pure Go – no cgo, no hidden deps
//   - Composable – each stage (predicates, noding, topology) is usable on
//     its own
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/   — points, segments, envelopes, precision models & exact predicates
//	noding/ — segment strings, exhaustive noding & snap rounding
//	topo/   — labelled planar graphs, depth labelling & polygon extraction
//	buffer/ — offset curve generation and the buffer operation itself
//
// Quick ASCII example:
//
//	   ┌────────┐          ╭──────────╮
//	   │        │   ⇒      │          │
//	   └────────┘          ╰──────────╯
//
//	buffering a rectangle by a positive distance rounds its corners
//	outward; a negative distance erodes it inward.
//
// Dive into the buffer package docs for cap and join styles, the precision
// retry ladder, and worked examples.
//
//	go get github.com/katalvlaran/lvlgeo
package lvlgeo
