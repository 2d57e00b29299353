// Package maze is the boundary of lvlmaze: the five calls an outer surface
// needs to go from dimensions to drawable primitives, plus a Maze session
// that owns one grid and keeps its derived state coherent.
//
// What:
//
//	CreateGrid        rows, cols, kind          → *grid.Grid
//	ApplyMask         grid, bitmap              → *grid.Grid (links dropped)
//	Generate          grid, algorithm, seed     → *grid.Grid (perfect maze)
//	ComputeDistances  grid, root                → *distance.Field
//	Render            grid, field (optional)    → []render.Primitive
//
// The functions are thin and stateless; every call receives the grid it
// works on. A Maze wraps the same sequence for callers that hold one maze
// at a time (the CLI, the HTTP service, the terminal viewer):
//
//	m, _ := maze.New(12, 12, grid.Hexagonal)
//	_, _ = m.Generate(carve.Wilson, 7)
//	prims, _ := m.Render(true)
//
// Invalidation:
//   - SetTopology rebuilds the grid; the mask and the distance field are
//     discarded since their addresses no longer mean anything.
//   - ApplyMask clears every passage before masking.
//   - Generate and Braid change passages, so the field is recomputed on
//     the next Distances call.
//
// Errors are the sentinels of the underlying packages (grid, mask, carve,
// distance, render), returned unchanged or wrapped with context; test them
// with errors.Is.
//
// A Maze is not safe for concurrent use.
package maze
