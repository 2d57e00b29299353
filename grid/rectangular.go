package grid

import "github.com/pkg/errors"

// rectangular is the orthogonal row/column adapter.
type rectangular struct {
	rows, cols int
}

// NewRectangular returns a rows×cols orthogonal topology.
func NewRectangular(rows, cols int) (Topology, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "rectangular %dx%d", rows, cols)
	}
	return rectangular{rows: rows, cols: cols}, nil
}

func (t rectangular) Kind() Kind { return Rectangular }
func (t rectangular) Rows() int  { return t.rows }

func (t rectangular) RowLen(row int) int {
	if row < 0 || row >= t.rows {
		return 0
	}
	return t.cols
}

// rectSteps is the fixed neighbor order N, S, E, W.
var rectSteps = [...]struct {
	dir    Direction
	dr, dc int
}{
	{North, -1, 0},
	{South, 1, 0},
	{East, 0, 1},
	{West, 0, -1},
}

func (t rectangular) Neighbors(a Address) []Neighbor {
	if !inRange(t, a) {
		return nil
	}
	out := make([]Neighbor, 0, len(rectSteps))
	for _, s := range rectSteps {
		b := Address{a.Row + s.dr, a.Col + s.dc}
		if inRange(t, b) {
			out = append(out, Neighbor{Dir: s.dir, At: b})
		}
	}
	return out
}

// Canonical: potential row+cols-col decreases along both N and E.
func (t rectangular) Canonical(a Address) (north, east Address, hasNorth, hasEast bool) {
	if !inRange(t, a) {
		return
	}
	north, east = Address{a.Row - 1, a.Col}, Address{a.Row, a.Col + 1}
	return north, east, a.Row > 0, a.Col < t.cols-1
}
