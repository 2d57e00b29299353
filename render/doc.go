// Package render projects a carved grid into drawable primitives.
//
// Project walks every unmasked cell and emits:
//
//   - one Polygon fill per cell that has a distance (Fill = intensity), first;
//   - one Segment or Arc per wall, after the fills, each shared wall once.
//
// A wall lies between a cell and a missing or masked neighbor, and between
// two neighbors without a passage. Masked cells never appear in the output.
//
// Geometry, for cell size s:
//
//	rectangular  cell (r, c) spans [c·s, (c+1)·s] × [r·s, (r+1)·s]
//	polar        center (R·s, R·s); ring r spans radii [r·s, (r+1)·s],
//	             cell c spans angles [c·2π/n, (c+1)·2π/n]
//	hexagonal    flat-topped, circumradius s; center (s + 1.5·c·s, b + 2b·r (+b on odd c)),
//	             b = s·√3/2
//	triangular   side s, height h = s·√3/2; center (s/2 + c·s/2, h/2 + r·h),
//	             upright when r+c is even
//
// Angles grow clockwise on screen (y points down).
//
// ASCII renders rectangular mazes as text, WriteSVG encodes primitives as an
// SVG document and Shade maps an intensity onto the blue distance palette.
//
// Project is pure: it reads the grid and field and never mutates them.
package render
