package grid

import "github.com/pkg/errors"

// triangular alternates upright and inverted triangles along each row.
type triangular struct {
	rows, cols int
}

// NewTriangular returns a rows×cols triangle topology.
func NewTriangular(rows, cols int) (Topology, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "triangular %dx%d", rows, cols)
	}
	return triangular{rows: rows, cols: cols}, nil
}

func (t triangular) Kind() Kind { return Triangular }
func (t triangular) Rows() int  { return t.rows }

func (t triangular) RowLen(row int) int {
	if row < 0 || row >= t.rows {
		return 0
	}
	return t.cols
}

// Upright reports whether the triangle at a points up.
func Upright(a Address) bool {
	return (a.Row+a.Col)%2 == 0
}

// Neighbors returns W, E and the base neighbor: S for upright cells, N for
// inverted ones.
func (t triangular) Neighbors(a Address) []Neighbor {
	if !inRange(t, a) {
		return nil
	}
	base := Neighbor{North, Address{a.Row - 1, a.Col}}
	if Upright(a) {
		base = Neighbor{South, Address{a.Row + 1, a.Col}}
	}
	candidates := [...]Neighbor{
		{West, Address{a.Row, a.Col - 1}},
		{East, Address{a.Row, a.Col + 1}},
		base,
	}
	out := make([]Neighbor, 0, len(candidates))
	for _, n := range candidates {
		if inRange(t, n.At) {
			out = append(out, n)
		}
	}
	return out
}

// Canonical pairs N (inverted cells only) with E. Upright cells in the last
// column have neither, so biased carvers leave a forest here.
func (t triangular) Canonical(a Address) (north, east Address, hasNorth, hasEast bool) {
	if !inRange(t, a) {
		return
	}
	north, east = Address{a.Row - 1, a.Col}, Address{a.Row, a.Col + 1}
	return north, east, !Upright(a) && a.Row > 0, a.Col < t.cols-1
}
