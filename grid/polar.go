package grid

import (
	"math"

	"github.com/pkg/errors"
)

// polar is a disc of concentric rings. Ring 0 is the single center cell;
// every ring holds a whole multiple of the cells of the ring inside it.
type polar struct {
	counts []int
}

// NewPolar returns a polar topology with the given number of rings.
//
// Ring r holds prev·round(w/h) cells, where prev is the size of ring r-1,
// w = 2πr/R/prev is the arc width a cell would have if ring r kept prev cells,
// and h = 1/R is the ring height. Cells are subdivided whenever they would be
// about twice as wide as they are tall.
func NewPolar(rings int) (Topology, error) {
	if rings < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "polar with %d rings", rings)
	}
	counts := make([]int, rings)
	counts[0] = 1
	height := 1 / float64(rings)
	for r := 1; r < rings; r++ {
		prev := counts[r-1]
		radius := float64(r) / float64(rings)
		width := 2 * math.Pi * radius / float64(prev)
		ratio := int(math.Round(width / height))
		if ratio < 1 {
			ratio = 1
		}
		counts[r] = prev * ratio
	}
	return polar{counts: counts}, nil
}

func (t polar) Kind() Kind { return Polar }
func (t polar) Rows() int  { return len(t.counts) }

func (t polar) RowLen(row int) int {
	if row < 0 || row >= len(t.counts) {
		return 0
	}
	return t.counts[row]
}

// ratio is the number of ring r cells sharing one inward parent.
func (t polar) ratio(r int) int {
	return t.counts[r] / t.counts[r-1]
}

// Neighbors returns Inward, Clockwise, CounterClockwise then Outward
// children in increasing column order.
func (t polar) Neighbors(a Address) []Neighbor {
	if !inRange(t, a) {
		return nil
	}
	out := make([]Neighbor, 0, 5)
	if a.Row > 0 {
		n := t.counts[a.Row]
		out = append(out,
			Neighbor{Dir: Inward, At: Address{a.Row - 1, a.Col / t.ratio(a.Row)}},
			Neighbor{Dir: Clockwise, At: Address{a.Row, (a.Col + 1) % n}},
			Neighbor{Dir: CounterClockwise, At: Address{a.Row, (a.Col - 1 + n) % n}},
		)
	}
	for _, c := range t.children(a) {
		out = append(out, Neighbor{Dir: Outward, At: c})
	}
	return out
}

// children lists the outward neighbors of a.
func (t polar) children(a Address) []Address {
	if a.Row+1 >= len(t.counts) {
		return nil
	}
	k := t.ratio(a.Row + 1)
	out := make([]Address, k)
	for i := range out {
		out[i] = Address{a.Row + 1, a.Col*k + i}
	}
	return out
}

// Children exposes the outward neighbors of a polar cell; nil for other
// topologies or the outermost ring.
func Children(t Topology, a Address) []Address {
	p, ok := t.(polar)
	if !ok || !inRange(p, a) {
		return nil
	}
	return p.children(a)
}

// Canonical pairs Inward with Clockwise. Clockwise does not wrap, so the
// potential (ring, -col) strictly decreases along both.
func (t polar) Canonical(a Address) (north, east Address, hasNorth, hasEast bool) {
	if !inRange(t, a) || a.Row == 0 {
		return
	}
	north = Address{a.Row - 1, a.Col / t.ratio(a.Row)}
	east = Address{a.Row, a.Col + 1}
	return north, east, true, a.Col < t.counts[a.Row]-1
}
