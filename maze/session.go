package maze

import (
	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/distance"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/mask"
	"github.com/katalvlaran/lvlmaze/render"
)

// Maze owns one grid together with its mask, last generation statistics
// and a lazily computed distance field.
type Maze struct {
	rows, cols int
	g          *grid.Grid
	mask       *mask.Mask
	stats      carve.Stats
	field      *distance.Field
}

// New returns a session over a fresh uncarved grid.
func New(rows, cols int, kind grid.Kind) (*Maze, error) {
	g, err := CreateGrid(rows, cols, kind)
	if err != nil {
		return nil, err
	}
	return &Maze{rows: rows, cols: cols, g: g}, nil
}

// Grid exposes the underlying grid. Mutating it directly is allowed; the
// field notices through the grid version.
func (m *Maze) Grid() *grid.Grid { return m.g }

// Kind is the current topology.
func (m *Maze) Kind() grid.Kind { return m.g.Kind() }

// Mask is the applied mask, or nil.
func (m *Maze) Mask() *mask.Mask { return m.mask }

// Stats reports the last successful generation.
func (m *Maze) Stats() carve.Stats { return m.stats }

// SetTopology rebuilds the grid with the same dimensions under kind. The
// mask, the passages and the field are discarded.
func (m *Maze) SetTopology(kind grid.Kind) error {
	g, err := CreateGrid(m.rows, m.cols, kind)
	if err != nil {
		return err
	}
	m.g, m.mask, m.field, m.stats = g, nil, nil, carve.Stats{}
	return nil
}

// ApplyMask clears all passages and masks the cells set in bitmap; nil
// removes the mask.
func (m *Maze) ApplyMask(bitmap [][]bool) error {
	if bitmap == nil {
		return m.SetMask(nil)
	}
	mk, err := mask.New(bitmap)
	if err != nil {
		return err
	}
	return m.SetMask(mk)
}

// SetMask is ApplyMask for an already built mask.
func (m *Maze) SetMask(mk *mask.Mask) error {
	if err := applyMask(m.g, mk); err != nil {
		return err
	}
	m.mask, m.field, m.stats = mk, nil, carve.Stats{}
	return nil
}

// Generate carves a new perfect maze, replacing any previous passages.
func (m *Maze) Generate(algo carve.Algorithm, seed int64, opts ...carve.Option) (carve.Stats, error) {
	stats, err := carve.Run(m.g, algo, append([]carve.Option{carve.WithSeed(seed)}, opts...)...)
	if err != nil {
		return stats, err
	}
	m.stats, m.field = stats, nil
	return stats, nil
}

// Braid removes dead ends with probability p and returns how many
// passages it added.
func (m *Maze) Braid(p float64, seed int64) (int, error) {
	added, err := carve.Braid(m.g, p, carve.WithSeed(seed))
	if err != nil {
		return 0, err
	}
	if added > 0 {
		m.field = nil
	}
	return added, nil
}

// Distances returns the field rooted at DefaultRoot, recomputing it when
// the grid changed since the last call.
func (m *Maze) Distances() (*distance.Field, error) {
	if m.field != nil && !m.field.Stale(m.g) {
		return m.field, nil
	}
	root, err := DefaultRoot(m.g)
	if err != nil {
		return nil, err
	}
	f, err := ComputeDistances(m.g, root)
	if err != nil {
		return nil, err
	}
	m.field = f
	return f, nil
}

// Render projects the maze; colorize adds one distance fill per cell.
func (m *Maze) Render(colorize bool, opts ...render.Option) ([]render.Primitive, error) {
	var f *distance.Field
	if colorize {
		var err error
		if f, err = m.Distances(); err != nil {
			return nil, err
		}
	}
	return Render(m.g, f, opts...)
}

// ASCII draws a rectangular maze as text; numbered prints distances.
func (m *Maze) ASCII(numbered bool) (string, error) {
	var f *distance.Field
	if numbered {
		var err error
		if f, err = m.Distances(); err != nil {
			return "", err
		}
	}
	return render.ASCII(m.g, f)
}
