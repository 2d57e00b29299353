// SPDX-License-Identifier: MIT

package carve

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/grid"
)

// carver is the per-run state shared by all algorithms.
type carver struct {
	s      Surface
	rng    Source
	cells  []grid.Address
	budget int
	steps  int
	links  int
}

// step counts one unit of work against the budget.
func (c *carver) step() error {
	c.steps++
	if c.budget > 0 && c.steps > c.budget {
		return errors.Wrapf(ErrStepBudget, "after %d steps", c.budget)
	}
	return nil
}

// link carves a-b and counts it.
func (c *carver) link(a, b grid.Address) error {
	if err := c.s.Link(a, b); err != nil {
		return err
	}
	c.links++
	return nil
}

// pick returns a uniform choice from xs; xs must not be empty.
func (c *carver) pick(xs []grid.Address) grid.Address {
	return xs[c.rng.Intn(len(xs))]
}

// shuffle is an in-place Fisher–Yates shuffle.
func shuffle[T any](rng Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// chance reports true with probability p.
func chance(rng Source, p float64) bool {
	const scale = 1 << 30
	return float64(rng.Intn(scale)) < p*scale
}

var carvers = map[Algorithm]func(*carver) error{
	BinaryTree:           (*carver).binaryTree,
	Sidewinder:           (*carver).sidewinder,
	AldousBroder:         (*carver).aldousBroder,
	Wilson:               (*carver).wilson,
	HuntAndKill:          (*carver).huntAndKill,
	RecursiveBacktracker: (*carver).recursiveBacktracker,
}

// Run carves s with algo.
//
// Steps:
//  1. Validate algo and options.
//  2. Check preconditions: at least one cell, one connected region.
//  3. Snapshot links (Checkpointer only), then Reset.
//  4. Carve, then stitch any forest into a single tree.
//  5. On failure roll back and return the error.
func Run(s Surface, algo Algorithm, opts ...Option) (Stats, error) {
	fn, ok := carvers[algo]
	if !ok {
		return Stats{}, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(algo))
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return Stats{}, err
	}

	cells := s.Cells()
	if len(cells) == 0 {
		return Stats{}, ErrEmptyGrid
	}
	if n := reachable(s, cells[0]); n != len(cells) {
		return Stats{}, errors.Wrapf(ErrDisconnected, "%d of %d cells reachable", n, len(cells))
	}

	cp, canRestore := s.(Checkpointer)
	var snap grid.LinkSet
	if canRestore {
		snap = cp.Snapshot()
	}
	s.Reset()

	c := &carver{s: s, rng: o.Source, cells: cells, budget: o.StepBudget}
	err = fn(c)
	stitched := 0
	if err == nil {
		stitched, err = c.stitch()
	}
	if err != nil {
		s.Reset()
		if canRestore {
			if rerr := cp.Restore(snap); rerr != nil {
				return Stats{}, errors.Wrapf(err, "rollback failed: %v", rerr)
			}
		}
		return Stats{}, errors.WithMessagef(err, "%s", algo)
	}

	return Stats{
		Algorithm: algo,
		Cells:     len(cells),
		Links:     c.links,
		Steps:     c.steps,
		Stitched:  stitched,
	}, nil
}

// BinaryTreeOn carves s with the binary tree algorithm.
func BinaryTreeOn(s Surface, opts ...Option) (Stats, error) { return Run(s, BinaryTree, opts...) }

// SidewinderOn carves s with the sidewinder algorithm.
func SidewinderOn(s Surface, opts ...Option) (Stats, error) { return Run(s, Sidewinder, opts...) }

// AldousBroderOn carves s with the Aldous-Broder random walk.
func AldousBroderOn(s Surface, opts ...Option) (Stats, error) { return Run(s, AldousBroder, opts...) }

// WilsonOn carves s with Wilson's loop-erased random walks.
func WilsonOn(s Surface, opts ...Option) (Stats, error) { return Run(s, Wilson, opts...) }

// HuntAndKillOn carves s with the hunt-and-kill algorithm.
func HuntAndKillOn(s Surface, opts ...Option) (Stats, error) { return Run(s, HuntAndKill, opts...) }

// RecursiveBacktrackerOn carves s with an iterative depth-first search.
func RecursiveBacktrackerOn(s Surface, opts ...Option) (Stats, error) {
	return Run(s, RecursiveBacktracker, opts...)
}

// reachable counts the cells reachable from root through neighbors,
// regardless of links.
func reachable(s Surface, root grid.Address) int {
	seen := map[grid.Address]bool{root: true}
	queue := []grid.Address{root}
	for qi := 0; qi < len(queue); qi++ {
		for _, b := range s.Neighbors(queue[qi]) {
			if !seen[b] {
				seen[b] = true
				queue = append(queue, b)
			}
		}
	}
	return len(queue)
}

// stitch joins a forest into a tree by opening walls between components in
// random order. It returns the number of walls opened.
func (c *carver) stitch() (int, error) {
	d, _ := linkForest(c.s, c.cells)
	if d.sets <= 1 {
		return 0, nil
	}

	var walls [][2]grid.Address
	for _, a := range c.cells {
		for _, b := range c.s.Neighbors(a) {
			if less(a, b) && d.find(a) != d.find(b) {
				walls = append(walls, [2]grid.Address{a, b})
			}
		}
	}
	shuffle(c.rng, walls)

	opened := 0
	for _, w := range walls {
		if d.sets == 1 {
			break
		}
		if d.union(w[0], w[1]) {
			if err := c.link(w[0], w[1]); err != nil {
				return opened, err
			}
			opened++
		}
	}
	return opened, nil
}
