// Package lvlmaze is a maze-generation engine: build a grid in one of four
// topologies, mask cells out, carve a perfect maze with one of six
// algorithms, measure distances and project the result into drawable
// primitives.
//
// 🚀 What is inside?
//
//	• Topologies: rectangular, polar (theta), hexagonal (sigma), triangular (delta)
//	• Masks: exclusion bitmaps from code, text pictures or sampled pixels
//	• Carving: binary tree, sidewinder, Aldous–Broder, Wilson, hunt-and-kill,
//	  recursive backtracker, plus braiding (dead-end removal)
//	• Distances: single-source BFS fields, paths back to the root, longest path
//	• Rendering: walls and distance fills as segments, arcs and polygons;
//	  ASCII and SVG encoders on top
//
// ✨ Why lvlmaze?
//
//   - Algorithms are written once against a small grid contract and run on
//     every topology unchanged
//   - Deterministic: every random choice flows from an explicit seed
//   - All-or-nothing: a failed carve leaves the grid as it was
//
// Packages, leaves first:
//
//	grid/      cells, topologies, passages, connectivity
//	mask/      exclusion bitmaps
//	carve/     generation algorithms and braiding
//	distance/  distance fields and paths
//	render/    primitive projection, ASCII, SVG, color ramp
//	maze/      boundary API and the Maze session
//
// Binaries live in cmd/: mazegen (CLI), mazed (HTTP API) and mazeview
// (terminal viewer).
//
// Quick ASCII example (2×2, distances from the top-left):
//
//	+---+---+
//	| 0   1 |
//	+---+   +
//	| 3   2 |
//	+---+---+
//
//	go get github.com/katalvlaran/lvlmaze/maze
package lvlmaze
