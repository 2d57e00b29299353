package maze

import (
	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/distance"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/mask"
	"github.com/katalvlaran/lvlmaze/render"
)

// CreateGrid builds an uncarved grid. For polar grids rows is the ring
// count and cols is ignored.
func CreateGrid(rows, cols int, kind grid.Kind) (*grid.Grid, error) {
	return grid.New(rows, cols, kind)
}

// ApplyMask drops every passage of g and masks the cells set in bitmap. A
// nil bitmap unmasks all cells. A bitmap of the wrong shape fails with
// mask.ErrDimensionMismatch and leaves g untouched.
func ApplyMask(g *grid.Grid, bitmap [][]bool) (*grid.Grid, error) {
	if bitmap == nil {
		g.Reset()
		return g, g.ApplyMask(nil)
	}
	m, err := mask.New(bitmap)
	if err != nil {
		return g, err
	}
	return g, applyMask(g, m)
}

func applyMask(g *grid.Grid, m *mask.Mask) error {
	if m != nil {
		if err := m.Fits(g.Rows(), g.RowLen); err != nil {
			return err
		}
	}
	g.Reset()
	return g.ApplyMask(m)
}

// Generate carves g with algo seeded by seed. Extra options (a custom
// source, a step budget) are applied after the seed.
func Generate(g *grid.Grid, algo carve.Algorithm, seed int64, opts ...carve.Option) (*grid.Grid, error) {
	_, err := carve.Run(g, algo, append([]carve.Option{carve.WithSeed(seed)}, opts...)...)
	return g, err
}

// ComputeDistances measures passage distances from root.
func ComputeDistances(g *grid.Grid, root grid.Address) (*distance.Field, error) {
	return distance.Compute(g, root)
}

// Render projects g with unit cells. field may be nil.
func Render(g *grid.Grid, field *distance.Field, opts ...render.Option) ([]render.Primitive, error) {
	return render.Project(g, field, opts...)
}

// DefaultRoot picks the cell distances are measured from: the middle cell
// when it is carvable, otherwise the first carvable cell in row-major
// order. It fails with distance.ErrUnreachableRoot when every cell is
// masked.
func DefaultRoot(g *grid.Grid) (grid.Address, error) {
	row := g.Rows() / 2
	center := grid.Address{Row: row, Col: g.RowLen(row) / 2}
	if !g.IsMasked(center) {
		return center, nil
	}
	if cells := g.RootCandidates(); len(cells) > 0 {
		return cells[0], nil
	}
	return grid.Address{}, distance.ErrUnreachableRoot
}
