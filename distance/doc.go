// Package distance computes single-source distance fields over the passages of
// a carved maze.
//
// What
//
//   - Compute runs a breadth-first search from a root cell, following links
//     only (walls block), and returns a Field holding:
//   - Distance: passage count from the root for every reached cell
//   - Parent:   predecessor in the BFS tree, used by PathTo
//   - Order:    visit sequence
//   - Max:      the farthest cell and its distance
//   - Intensity maps a distance onto [0, 1] for coloring.
//   - LongestPath finds the diameter of a perfect maze with two searches.
//   - A Field remembers the grid version it was computed from; Stale reports
//     whether the grid was mutated since.
//
// Why
//
//   - The field drives distance coloring in render and the "solution" path
//     in the outer surfaces.
//
// Determinism
//
//	Links are followed in insertion order, so the visit sequence and the
//	parent tree are fully reproducible for a given grid.
//
// Complexity (n = cells, l = links)
//
//   - Time:   O(n + l)
//   - Memory: O(n)
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per visited cell.
//   - WithMaxDepth(d):   stop expanding beyond depth d (> 0); 0 = no limit.
//
// Errors
//
//   - ErrUnreachableRoot  if the root is masked or outside the grid.
//   - ErrNotReached       from PathTo when the goal has no distance.
//   - ErrOptionViolation  for invalid options (negative depth).
//   - ctx.Err()           when the context is cancelled.
package distance
