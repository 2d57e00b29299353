// SPDX-License-Identifier: MIT

package carve

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Braid removes dead ends: each dead end, visited in random order, is
// linked with probability p to one of its unlinked neighbors, preferring
// neighbors that are dead ends themselves so one link clears two. Dead ends
// cleared earlier in the pass are skipped.
//
// p = 0 leaves the maze untouched, p = 1 removes every dead end that has an
// unlinked neighbor. The result contains cycles whenever a link is added.
// Braid returns the number of links added.
func Braid(s Surface, p float64, opts ...Option) (int, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, errors.Wrapf(ErrOptionViolation, "braid probability %v", p)
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}

	var deadEnds []grid.Address
	for _, a := range s.Cells() {
		if len(s.Links(a)) == 1 {
			deadEnds = append(deadEnds, a)
		}
	}
	shuffle(o.Source, deadEnds)

	added := 0
	for _, a := range deadEnds {
		if len(s.Links(a)) != 1 || !chance(o.Source, p) {
			continue
		}
		var open, best []grid.Address
		for _, b := range s.Neighbors(a) {
			if s.IsLinked(a, b) {
				continue
			}
			open = append(open, b)
			if len(s.Links(b)) == 1 {
				best = append(best, b)
			}
		}
		if len(best) == 0 {
			best = open
		}
		if len(best) == 0 {
			continue
		}
		if err := s.Link(a, best[o.Source.Intn(len(best))]); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
