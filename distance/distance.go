package distance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Field is an immutable distance map rooted at one cell.
type Field struct {
	root    grid.Address
	dist    map[grid.Address]int
	parent  map[grid.Address]grid.Address
	order   []grid.Address
	far     grid.Address
	max     int
	version uint64
}

// walker encapsulates mutable search state.
type walker struct {
	g     Graph
	opts  Options
	ctx   context.Context
	queue []grid.Address
	res   *Field
}

// Compute measures passage distances from root to every reachable cell.
func Compute(g Graph, root grid.Address, opts ...Option) (*Field, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.IsMasked(root) {
		return nil, errors.Wrapf(ErrUnreachableRoot, "root %v", root)
	}

	w := &walker{
		g:    g,
		opts: o,
		ctx:  o.Ctx,
		res: &Field{
			root:    root,
			dist:    make(map[grid.Address]int),
			parent:  make(map[grid.Address]grid.Address),
			far:     root,
			version: g.Version(),
		},
	}
	w.enqueue(root, 0, root)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue records a's distance and parent and schedules it.
func (w *walker) enqueue(a grid.Address, d int, parent grid.Address) {
	w.res.dist[a] = d
	if a != parent {
		w.res.parent[a] = parent
	}
	if d > w.res.max {
		w.res.max, w.res.far = d, a
	}
	w.queue = append(w.queue, a)
}

// loop drains the queue, checking for cancellation once per cell.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		a := w.queue[0]
		w.queue = w.queue[1:]
		w.res.order = append(w.res.order, a)

		next := w.res.dist[a] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, b := range w.g.Links(a) {
			if _, seen := w.res.dist[b]; !seen && !w.g.IsMasked(b) {
				w.enqueue(b, next, a)
			}
		}
	}
	return nil
}

// Root is the cell the field was computed from.
func (f *Field) Root() grid.Address { return f.root }

// Distance reports the passage count from the root to a.
func (f *Field) Distance(a grid.Address) (int, bool) {
	d, ok := f.dist[a]
	return d, ok
}

// Max returns the farthest cell (first reached in visit order) and its
// distance.
func (f *Field) Max() (grid.Address, int) { return f.far, f.max }

// Intensity maps the distance of a onto [0, 1]: 0 at the root, 1 at the
// farthest cell. A field whose maximum is 0 maps every cell to 0.
func (f *Field) Intensity(a grid.Address) (float64, bool) {
	d, ok := f.dist[a]
	if !ok {
		return 0, false
	}
	if f.max == 0 {
		return 0, true
	}
	return min(max(float64(d)/float64(f.max), 0), 1), true
}

// Order returns the visit sequence.
func (f *Field) Order() []grid.Address {
	return append([]grid.Address(nil), f.order...)
}

// Len is the number of reached cells.
func (f *Field) Len() int { return len(f.dist) }

// Version is the grid version the field was computed from.
func (f *Field) Version() uint64 { return f.version }

// Stale reports whether v changed since the field was computed.
func (f *Field) Stale(v Versioned) bool {
	return v.Version() != f.version
}

// PathTo reconstructs the passage path from the root to goal, inclusive.
func (f *Field) PathTo(goal grid.Address) ([]grid.Address, error) {
	d, ok := f.dist[goal]
	if !ok {
		return nil, errors.Wrapf(ErrNotReached, "%v", goal)
	}
	path := make([]grid.Address, d+1)
	cur := goal
	for i := d; i > 0; i-- {
		path[i] = cur
		cur = f.parent[cur]
	}
	path[0] = cur
	return path, nil
}

// LongestPath returns the longest shortest path of the region containing
// start: a search from start finds one end, a search from that end finds
// the other. On a perfect maze this is the maze diameter.
func LongestPath(g Graph, start grid.Address, opts ...Option) ([]grid.Address, error) {
	first, err := Compute(g, start, opts...)
	if err != nil {
		return nil, err
	}
	end, _ := first.Max()
	second, err := Compute(g, end, opts...)
	if err != nil {
		return nil, err
	}
	far, _ := second.Max()
	return second.PathTo(far)
}
