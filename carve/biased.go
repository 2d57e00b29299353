// SPDX-License-Identifier: MIT

package carve

import (
	"slices"

	"github.com/katalvlaran/lvlmaze/grid"
)

// binaryTree links every cell to a random pick among its canonical north and
// east. The cell with neither is the root of its tree.
func (c *carver) binaryTree() error {
	var choices []grid.Address
	for _, a := range c.cells {
		if err := c.step(); err != nil {
			return err
		}
		north, east, hasNorth, hasEast := c.s.Canonical(a)
		choices = choices[:0]
		if hasNorth {
			choices = append(choices, north)
		}
		if hasEast {
			choices = append(choices, east)
		}
		if len(choices) == 0 {
			continue
		}
		if err := c.link(a, c.pick(choices)); err != nil {
			return err
		}
	}
	return nil
}

// sidewinder walks each row joining runs of cells eastward. A run closes
// with probability ½ when the current cell has a north, and always when no
// east neighbor continues the row; on close one run member that has a north
// links to it. Rows without any north (the north boundary) become a
// single corridor.
func (c *carver) sidewinder() error {
	var withNorth []grid.Address

	for _, a := range c.cells {
		if err := c.step(); err != nil {
			return err
		}
		north, _, hasNorth, _ := c.s.Canonical(a)
		if hasNorth {
			withNorth = append(withNorth, a)
		}

		east := grid.Address{Row: a.Row, Col: a.Col + 1}
		hasEast := slices.Contains(c.s.Neighbors(a), east)
		closeRun := !hasEast || (hasNorth && c.rng.Intn(2) == 0)

		if !closeRun {
			if err := c.link(a, east); err != nil {
				return err
			}
			continue
		}
		if len(withNorth) > 0 {
			member := c.pick(withNorth)
			if member != a {
				north, _, _, _ = c.s.Canonical(member)
			}
			if err := c.link(member, north); err != nil {
				return err
			}
		}
		withNorth = withNorth[:0]
	}
	return nil
}
