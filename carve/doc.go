// SPDX-License-Identifier: MIT
// Package: lvlmaze/carve
//
// Package carve turns a grid of isolated cells into a perfect maze by
// linking neighbors until the non-masked cells form a spanning tree.
//
// What:
//
//   - BinaryTree:            each cell links to its canonical north or east.
//   - Sidewinder:            row-wise runs closed northward.
//   - AldousBroder:          unbiased random walk; links on first visit.
//   - Wilson:                loop-erased random walks into the growing maze.
//   - HuntAndKill:           random walk, then scan for the next frontier cell.
//   - RecursiveBacktracker:  depth-first search with an explicit stack.
//   - Braid:                 post-pass that removes dead ends (adds cycles).
//
// Every algorithm works on any topology through the Surface capability
// interface; *grid.Grid implements it.
//
// Contract:
//
//   - Run validates before touching the grid: ErrEmptyGrid when no cell is
//     left after masking, ErrDisconnected when the cells do not form one
//     neighbor-connected region.
//   - Run clears existing links, carves, and guarantees a spanning tree
//     (IsSpanningTree holds) on success.
//   - Biased carvers may leave a forest on masked or triangular grids; a
//     stitch pass joins the pieces through random cross-component walls and
//     reports how many it opened in Stats.Stitched.
//   - On failure (ErrStepBudget, link rejection) a Checkpointer surface gets
//     its pre-call links back; other surfaces are left without links.
//
// Determinism:
//
//   - All randomness flows through a Source. WithSeed(0) and the default
//     options use seed 1, so the same seed and grid always yield the same maze.
//
// Uniformity:
//
//   - AldousBroder and Wilson sample uniformly among spanning trees.
//   - BinaryTree and Sidewinder have a strong directional texture.
//   - HuntAndKill and RecursiveBacktracker produce long winding corridors.
//
// Complexity (n = cells, d = degree):
//
//   - BinaryTree, Sidewinder, RecursiveBacktracker: O(n·d).
//   - HuntAndKill: O(n²) worst case for the hunt scans.
//   - AldousBroder: expected O(cover time), O(n³) worst case on grids.
//   - Wilson: expected O(mean hitting time), faster than AldousBroder in practice.
//
// Errors:
//
//   - ErrEmptyGrid, ErrDisconnected: precondition failures, grid unchanged.
//   - ErrStepBudget:       WithStepBudget exhausted, grid restored.
//   - ErrUnknownAlgorithm: value outside the Algorithm enum or unknown name.
//   - ErrOptionViolation:  invalid option value (negative budget, nil source,
//     braid probability outside [0, 1]).
package carve
