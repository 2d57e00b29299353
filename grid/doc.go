// Package grid treats a maze as a graph of cells laid out by a topology,
// with passages ("links") carved between neighboring cells.
//
// What:
//
//   - Grid owns every cell slot of a topology, the symmetric link set and the
//     per-cell masked flag.
//   - Topology adapters map a logical (row, column) or (ring, position) address
//     onto the generic Grid: Rectangular, Polar, Hexagonal and Triangular.
//   - Neighbors are computed on demand by the topology; only links and mask
//     flags are stored.
//   - Every mutation bumps Version, so derived views (distance fields,
//     primitives) can detect that they are stale.
//
// Why:
//
//   - Carving algorithms are written once against the neighbor/link contract
//     and run unchanged on every topology.
//   - Masks carve non-rectangular shapes out of any topology.
//
// Topologies:
//
//	Rectangular  N, S, E, W                     canonical pair: N, E
//	Polar        Inward, Outward..., CW, CCW    canonical pair: Inward, CW (no wrap)
//	Hexagonal    N, S, NE, NW, SE, SW           canonical pair: N, NE (SE at the top edge)
//	Triangular   W, E and S (upright) / N        canonical pair: N, E
//
// Complexity:
//
//   - New:        O(cells) time and memory.
//   - Neighbors:  O(d), d = topology degree (≤ 6, ring 0 of a polar grid: ring 1 size).
//   - Link:       O(d).
//   - Regions:    O(cells·d).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns below one.
//   - ErrInvalidTopology:   unknown Kind or nil Topology.
//   - ErrInvalidLink:       link between non-neighbors, masked or foreign cells.
//   - ErrCarved:            mask applied to a grid that already has links.
//   - mask.ErrDimensionMismatch (wrapped): mask shape differs from the grid.
//
// A Grid is not safe for concurrent mutation; callers serialize generation.
package grid
