package grid

import "github.com/pkg/errors"

// hexagonal lays out flat-topped hexagons in columns; odd columns sit half a
// cell lower than even ones.
type hexagonal struct {
	rows, cols int
}

// NewHexagonal returns a rows×cols flat-topped hex topology.
func NewHexagonal(rows, cols int) (Topology, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "hexagonal %dx%d", rows, cols)
	}
	return hexagonal{rows: rows, cols: cols}, nil
}

func (t hexagonal) Kind() Kind { return Hexagonal }
func (t hexagonal) Rows() int  { return t.rows }

func (t hexagonal) RowLen(row int) int {
	if row < 0 || row >= t.rows {
		return 0
	}
	return t.cols
}

// diagonalRows returns the rows of the north and south diagonal neighbors.
func diagonalRows(a Address) (north, south int) {
	if a.Col%2 == 0 {
		return a.Row - 1, a.Row
	}
	return a.Row, a.Row + 1
}

// Neighbors returns N, S, NE, NW, SE, SW (those in bounds).
func (t hexagonal) Neighbors(a Address) []Neighbor {
	if !inRange(t, a) {
		return nil
	}
	nd, sd := diagonalRows(a)
	candidates := [...]Neighbor{
		{North, Address{a.Row - 1, a.Col}},
		{South, Address{a.Row + 1, a.Col}},
		{NorthEast, Address{nd, a.Col + 1}},
		{NorthWest, Address{nd, a.Col - 1}},
		{SouthEast, Address{sd, a.Col + 1}},
		{SouthWest, Address{sd, a.Col - 1}},
	}
	out := make([]Neighbor, 0, len(candidates))
	for _, n := range candidates {
		if inRange(t, n.At) {
			out = append(out, n)
		}
	}
	return out
}

// Canonical pairs N with NE, falling back to SE along the top edge.
func (t hexagonal) Canonical(a Address) (north, east Address, hasNorth, hasEast bool) {
	if !inRange(t, a) {
		return
	}
	north = Address{a.Row - 1, a.Col}
	hasNorth = a.Row > 0
	if a.Col+1 >= t.cols {
		return north, east, hasNorth, false
	}
	nd, sd := diagonalRows(a)
	if nd >= 0 {
		return north, Address{nd, a.Col + 1}, hasNorth, true
	}
	return north, Address{sd, a.Col + 1}, hasNorth, sd < t.rows
}
