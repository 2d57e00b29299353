// SPDX-License-Identifier: MIT

package carve

import "github.com/katalvlaran/lvlmaze/grid"

// dsu is a disjoint-set forest over addresses with path compression and
// union by rank.
type dsu struct {
	parent map[grid.Address]grid.Address
	rank   map[grid.Address]int
	sets   int
}

func newDSU(cells []grid.Address) *dsu {
	d := &dsu{
		parent: make(map[grid.Address]grid.Address, len(cells)),
		rank:   make(map[grid.Address]int, len(cells)),
		sets:   len(cells),
	}
	for _, a := range cells {
		d.parent[a] = a
	}
	return d
}

// find walks to the root, halving the path on the way.
func (d *dsu) find(u grid.Address) grid.Address {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *dsu) union(u, v grid.Address) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
	d.sets--
	return true
}

// less orders addresses row-major so each undirected pair is seen once.
func less(a, b grid.Address) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
}

// linkForest loads the current links of s into a dsu. It reports false
// when a link closes a cycle.
func linkForest(s Surface, cells []grid.Address) (*dsu, bool) {
	d := newDSU(cells)
	acyclic := true
	for _, a := range cells {
		for _, b := range s.Links(a) {
			if less(a, b) && !d.union(a, b) {
				acyclic = false
			}
		}
	}
	return d, acyclic
}

// IsSpanningTree reports whether the links over the unmasked cells of s
// connect them all without a cycle. A surface with no cells is not a tree.
func IsSpanningTree(s Surface) bool {
	cells := s.Cells()
	if len(cells) == 0 {
		return false
	}
	for _, a := range cells {
		for _, b := range s.Links(a) {
			if s.IsMasked(b) || !s.IsLinked(b, a) {
				return false
			}
		}
	}
	d, acyclic := linkForest(s, cells)
	return acyclic && d.sets == 1
}
