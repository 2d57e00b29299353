package grid

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/mask"
)

// Grid stores the mutable state of a maze: link set and mask flags over the
// immutable cell layout of a Topology.
//
// Cells are stored row-major; row r starts at offsets[r]. Polar rings are
// ragged, the other topologies are rectangular.
type Grid struct {
	topo    Topology
	offsets []int
	size    int
	masked  []bool
	nMasked int
	links   [][]int // adjacency by cell index, insertion order
	nLinks  int
	version uint64
}

// New allocates a grid of the given kind. Polar grids treat rows as the ring
// count and ignore cols.
func New(rows, cols int, kind Kind) (*Grid, error) {
	t, err := NewTopology(rows, cols, kind)
	if err != nil {
		return nil, err
	}
	return NewWithTopology(t), nil
}

// NewWithTopology allocates a grid over a prebuilt topology. A nil topology
// yields nil.
func NewWithTopology(t Topology) *Grid {
	if t == nil {
		return nil
	}
	g := &Grid{topo: t, offsets: make([]int, t.Rows())}
	for r := range g.offsets {
		g.offsets[r] = g.size
		g.size += t.RowLen(r)
	}
	g.masked = make([]bool, g.size)
	g.links = make([][]int, g.size)
	return g
}

// Topology returns the layout the grid was built over.
func (g *Grid) Topology() Topology { return g.topo }

// Kind reports the topology kind.
func (g *Grid) Kind() Kind { return g.topo.Kind() }

// Rows is the number of rows (rings for polar grids).
func (g *Grid) Rows() int { return g.topo.Rows() }

// RowLen is the number of cell slots in row.
func (g *Grid) RowLen(row int) int { return g.topo.RowLen(row) }

// Size is the number of cell slots, masked ones included.
func (g *Grid) Size() int { return g.size }

// CellCount is the number of non-masked cells.
func (g *Grid) CellCount() int { return g.size - g.nMasked }

// LinkCount is the number of undirected links.
func (g *Grid) LinkCount() int { return g.nLinks }

// Version increases on every mutation of links or mask flags.
func (g *Grid) Version() uint64 { return g.version }

// index maps a to its row-major slot.
func (g *Grid) index(a Address) (int, bool) {
	if !inRange(g.topo, a) {
		return 0, false
	}
	return g.offsets[a.Row] + a.Col, true
}

// address inverts index.
func (g *Grid) address(i int) Address {
	r, found := slices.BinarySearch(g.offsets, i)
	if !found {
		r--
	}
	return Address{Row: r, Col: i - g.offsets[r]}
}

// Contains reports whether a is inside the topology, masked or not.
func (g *Grid) Contains(a Address) bool {
	_, ok := g.index(a)
	return ok
}

// IsMasked reports whether a is excluded. Out-of-bounds addresses count as
// masked.
func (g *Grid) IsMasked(a Address) bool {
	i, ok := g.index(a)
	return !ok || g.masked[i]
}

// Adjacent returns every in-bounds neighbor of a, masked or not.
func (g *Grid) Adjacent(a Address) []Neighbor {
	return g.topo.Neighbors(a)
}

// Neighbors returns the non-masked neighbors of a. Masked or out-of-bounds
// cells have none.
func (g *Grid) Neighbors(a Address) []Address {
	if g.IsMasked(a) {
		return nil
	}
	adj := g.topo.Neighbors(a)
	out := make([]Address, 0, len(adj))
	for _, n := range adj {
		if !g.IsMasked(n.At) {
			out = append(out, n.At)
		}
	}
	return out
}

// Canonical returns the topology's north/east pair with masked cells removed.
func (g *Grid) Canonical(a Address) (north, east Address, hasNorth, hasEast bool) {
	if g.IsMasked(a) {
		return
	}
	north, east, hasNorth, hasEast = g.topo.Canonical(a)
	hasNorth = hasNorth && !g.IsMasked(north)
	hasEast = hasEast && !g.IsMasked(east)
	return
}

// isNeighbor reports whether b is a topology neighbor of a.
func (g *Grid) isNeighbor(a, b Address) bool {
	for _, n := range g.topo.Neighbors(a) {
		if n.At == b {
			return true
		}
	}
	return false
}

// Link carves a passage between a and b. Linking an existing pair is a no-op.
func (g *Grid) Link(a, b Address) error {
	ia, okA := g.index(a)
	ib, okB := g.index(b)
	switch {
	case !okA || !okB:
		return errors.Wrapf(ErrInvalidLink, "%v-%v: out of bounds", a, b)
	case g.masked[ia] || g.masked[ib]:
		return errors.Wrapf(ErrInvalidLink, "%v-%v: masked cell", a, b)
	case !g.isNeighbor(a, b):
		return errors.Wrapf(ErrInvalidLink, "%v-%v: not neighbors", a, b)
	}
	if slices.Contains(g.links[ia], ib) {
		return nil
	}
	g.links[ia] = append(g.links[ia], ib)
	g.links[ib] = append(g.links[ib], ia)
	g.nLinks++
	g.version++
	return nil
}

// IsLinked reports whether a passage joins a and b.
func (g *Grid) IsLinked(a, b Address) bool {
	ia, okA := g.index(a)
	ib, okB := g.index(b)
	if !okA || !okB {
		return false
	}
	return slices.Contains(g.links[ia], ib)
}

// Links returns the cells linked to a in the order the links were made.
func (g *Grid) Links(a Address) []Address {
	i, ok := g.index(a)
	if !ok {
		return nil
	}
	out := make([]Address, len(g.links[i]))
	for k, j := range g.links[i] {
		out[k] = g.address(j)
	}
	return out
}

// Cells lists the non-masked cells in row-major order.
func (g *Grid) Cells() []Address {
	out := make([]Address, 0, g.CellCount())
	for r := range g.offsets {
		for c := 0; c < g.topo.RowLen(r); c++ {
			if !g.masked[g.offsets[r]+c] {
				out = append(out, Address{r, c})
			}
		}
	}
	return out
}

// RootCandidates lists the cells a distance field may start from.
func (g *Grid) RootCandidates() []Address { return g.Cells() }

// DeadEnds lists the non-masked cells with exactly one link, row-major.
func (g *Grid) DeadEnds() []Address {
	var out []Address
	for i, l := range g.links {
		if len(l) == 1 && !g.masked[i] {
			out = append(out, g.address(i))
		}
	}
	return out
}

// ApplyMask copies the exclusion flags of m onto the grid. A nil mask clears
// all flags. Masks may only be applied to uncarved grids.
func (g *Grid) ApplyMask(m *mask.Mask) error {
	if g.nLinks > 0 {
		return errors.Wrapf(ErrCarved, "%d links present", g.nLinks)
	}
	if m == nil {
		clear(g.masked)
		g.nMasked = 0
		g.version++
		return nil
	}
	if err := m.Fits(g.topo.Rows(), g.topo.RowLen); err != nil {
		return err
	}
	n := 0
	for r := range g.offsets {
		for c := 0; c < g.topo.RowLen(r); c++ {
			v := m.AppliesTo(r, c)
			g.masked[g.offsets[r]+c] = v
			if v {
				n++
			}
		}
	}
	g.nMasked = n
	g.version++
	return nil
}

// Reset removes every link. Mask flags are kept.
func (g *Grid) Reset() {
	if g.nLinks == 0 {
		return
	}
	for i := range g.links {
		g.links[i] = nil
	}
	g.nLinks = 0
	g.version++
}

// LinkSet is an opaque copy of a grid's links.
type LinkSet struct {
	size  int
	pairs [][2]int
}

// Len is the number of links in the set.
func (s LinkSet) Len() int { return len(s.pairs) }

// Snapshot captures the current links in insertion order.
func (g *Grid) Snapshot() LinkSet {
	s := LinkSet{size: g.size, pairs: make([][2]int, 0, g.nLinks)}
	seen := make(map[[2]int]bool, g.nLinks)
	for i, l := range g.links {
		for _, j := range l {
			p := [2]int{min(i, j), max(i, j)}
			if !seen[p] {
				seen[p] = true
				s.pairs = append(s.pairs, p)
			}
		}
	}
	return s
}

// Restore replaces the links with s. It fails without changes when s was
// taken from a grid of another size or touches a cell masked since.
func (g *Grid) Restore(s LinkSet) error {
	if s.size != g.size {
		return errors.Wrapf(ErrInvalidLink, "link set for %d cells restored onto %d", s.size, g.size)
	}
	for _, p := range s.pairs {
		if g.masked[p[0]] || g.masked[p[1]] {
			return errors.Wrapf(ErrInvalidLink, "restore %v-%v: masked cell", g.address(p[0]), g.address(p[1]))
		}
	}
	for i := range g.links {
		g.links[i] = nil
	}
	for _, p := range s.pairs {
		g.links[p[0]] = append(g.links[p[0]], p[1])
		g.links[p[1]] = append(g.links[p[1]], p[0])
	}
	g.nLinks = len(s.pairs)
	g.version++
	return nil
}

// String describes the grid shape and state.
func (g *Grid) String() string {
	shape := fmt.Sprintf("%dx%d", g.topo.Rows(), g.topo.RowLen(0))
	if g.topo.Kind() == Polar {
		shape = fmt.Sprintf("%d rings", g.topo.Rows())
	}
	return fmt.Sprintf("%s grid %s (%d cells, %d masked, %d links)",
		g.topo.Kind(), shape, g.CellCount(), g.nMasked, g.nLinks)
}
