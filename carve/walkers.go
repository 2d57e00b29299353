// SPDX-License-Identifier: MIT

package carve

import "github.com/katalvlaran/lvlmaze/grid"

// aldousBroder performs a random walk from a random cell and links every
// cell to the one it was first entered from.
func (c *carver) aldousBroder() error {
	cur := c.pick(c.cells)
	visited := map[grid.Address]bool{cur: true}
	remaining := len(c.cells) - 1

	for remaining > 0 {
		if err := c.step(); err != nil {
			return err
		}
		next := c.pick(c.s.Neighbors(cur))
		if !visited[next] {
			if err := c.link(cur, next); err != nil {
				return err
			}
			visited[next] = true
			remaining--
		}
		cur = next
	}
	return nil
}

// unvisitedSet supports O(1) random pick and removal.
type unvisitedSet struct {
	items []grid.Address
	pos   map[grid.Address]int
}

func newUnvisitedSet(cells []grid.Address) *unvisitedSet {
	u := &unvisitedSet{
		items: append([]grid.Address(nil), cells...),
		pos:   make(map[grid.Address]int, len(cells)),
	}
	for i, a := range u.items {
		u.pos[a] = i
	}
	return u
}

func (u *unvisitedSet) has(a grid.Address) bool {
	_, ok := u.pos[a]
	return ok
}

func (u *unvisitedSet) remove(a grid.Address) {
	i, ok := u.pos[a]
	if !ok {
		return
	}
	last := u.items[len(u.items)-1]
	u.items[i] = last
	u.pos[last] = i
	u.items = u.items[:len(u.items)-1]
	delete(u.pos, a)
}

// wilson grows the maze from one random cell. Each round starts a walk at a
// random unvisited cell, erases loops as they form, and carves the walk once
// it touches the maze.
func (c *carver) wilson() error {
	unvisited := newUnvisitedSet(c.cells)
	unvisited.remove(c.pick(c.cells))

	for len(unvisited.items) > 0 {
		cell := c.pick(unvisited.items)
		path := []grid.Address{cell}
		index := map[grid.Address]int{cell: 0}

		for unvisited.has(cell) {
			if err := c.step(); err != nil {
				return err
			}
			cell = c.pick(c.s.Neighbors(cell))
			if i, seen := index[cell]; seen {
				for _, erased := range path[i+1:] {
					delete(index, erased)
				}
				path = path[:i+1]
				continue
			}
			index[cell] = len(path)
			path = append(path, cell)
		}

		for i := 0; i+1 < len(path); i++ {
			if err := c.link(path[i], path[i+1]); err != nil {
				return err
			}
			unvisited.remove(path[i])
		}
	}
	return nil
}

// neighborsByVisit filters the neighbors of a by their visited flag.
func (c *carver) neighborsByVisit(a grid.Address, visited map[grid.Address]bool, want bool) []grid.Address {
	var out []grid.Address
	for _, b := range c.s.Neighbors(a) {
		if visited[b] == want {
			out = append(out, b)
		}
	}
	return out
}

// huntAndKill walks randomly through unvisited cells; when stuck it scans
// the cells in order for the first unvisited one next to the maze, links it
// in and resumes the walk there.
func (c *carver) huntAndKill() error {
	cur := c.pick(c.cells)
	visited := map[grid.Address]bool{cur: true}

	for len(visited) < len(c.cells) {
		if err := c.step(); err != nil {
			return err
		}
		if fresh := c.neighborsByVisit(cur, visited, false); len(fresh) > 0 {
			next := c.pick(fresh)
			if err := c.link(cur, next); err != nil {
				return err
			}
			visited[next] = true
			cur = next
			continue
		}
		for _, a := range c.cells {
			if visited[a] {
				continue
			}
			done := c.neighborsByVisit(a, visited, true)
			if len(done) == 0 {
				continue
			}
			if err := c.link(a, c.pick(done)); err != nil {
				return err
			}
			visited[a] = true
			cur = a
			break
		}
	}
	return nil
}

// recursiveBacktracker is a randomized depth-first search with an explicit
// stack.
func (c *carver) recursiveBacktracker() error {
	start := c.pick(c.cells)
	visited := map[grid.Address]bool{start: true}
	stack := []grid.Address{start}

	for len(stack) > 0 {
		if err := c.step(); err != nil {
			return err
		}
		top := stack[len(stack)-1]
		fresh := c.neighborsByVisit(top, visited, false)
		if len(fresh) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := c.pick(fresh)
		if err := c.link(top, next); err != nil {
			return err
		}
		visited[next] = true
		stack = append(stack, next)
	}
	return nil
}
