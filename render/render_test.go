package render_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/distance"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/mask"
	"github.com/katalvlaran/lvlmaze/render"
)

func at(r, c int) grid.Address { return grid.Address{Row: r, Col: c} }

func carved(t *testing.T, rows, cols int, kind grid.Kind, holes ...grid.Address) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, kind)
	require.NoError(t, err)
	if len(holes) > 0 {
		bitmap := make([][]bool, g.Rows())
		for r := range bitmap {
			bitmap[r] = make([]bool, g.RowLen(r))
		}
		for _, h := range holes {
			bitmap[h.Row][h.Col] = true
		}
		m, err := mask.New(bitmap)
		require.NoError(t, err)
		require.NoError(t, g.ApplyMask(m))
	}
	_, err = carve.Run(g, carve.RecursiveBacktracker, carve.WithSeed(21))
	require.NoError(t, err)
	return g
}

// countWalls counts segments and arcs.
func countWalls(prims []render.Primitive) (walls, fills int) {
	for _, p := range prims {
		if p.Kind == render.Polygon {
			fills++
		} else {
			walls++
		}
	}
	return walls, fills
}

// wallKey identifies a wall independent of the cell that drew it.
func wallKey(p render.Primitive) string {
	r := func(v float64) float64 { return math.Round(v*1e6) / 1e6 }
	if p.Kind == render.Arc {
		return fmt.Sprintf("arc %v %v %v %v %v", r(p.Center.X), r(p.Center.Y), r(p.Radius), r(p.Start), r(p.End))
	}
	a := fmt.Sprintf("%v,%v", r(p.Points[0].X), r(p.Points[0].Y))
	b := fmt.Sprintf("%v,%v", r(p.Points[1].X), r(p.Points[1].Y))
	if a > b {
		a, b = b, a
	}
	return "seg " + a + " " + b
}

func TestProject_RectangularWallCount(t *testing.T) {
	const rows, cols = 5, 7
	g := carved(t, rows, cols, grid.Rectangular)
	prims, err := render.Project(g, nil)
	require.NoError(t, err)

	internal := rows*(cols-1) + cols*(rows-1)
	want := 2*rows + 2*cols + internal - (rows*cols - 1)
	walls, fills := countWalls(prims)
	assert.Equal(t, want, walls)
	assert.Zero(t, fills, "no field, no fills")
}

func TestProject_EachLinkRemovesOneWall(t *testing.T) {
	holes := map[grid.Kind][]grid.Address{
		grid.Rectangular: {at(0, 0), at(3, 3)},
		grid.Polar:       {at(2, 3), at(4, 0), at(1, 2)},
		grid.Hexagonal:   {at(0, 0), at(3, 3)},
		grid.Triangular:  {at(0, 0), at(3, 3)},
	}
	for _, kind := range grid.Kinds() {
		for _, h := range [][]grid.Address{nil, holes[kind]} {
			blank, err := grid.New(6, 6, kind)
			require.NoError(t, err)
			g := carved(t, 6, 6, kind, h...)
			if len(h) > 0 {
				m, err := mask.New(maskOf(g))
				require.NoError(t, err)
				require.NoError(t, blank.ApplyMask(m))
			}

			before, err := render.Project(blank, nil)
			require.NoError(t, err)
			after, err := render.Project(g, nil)
			require.NoError(t, err)
			assert.Equal(t, len(before)-g.LinkCount(), len(after), "%s masked=%v", kind, len(h) > 0)

			seen := make(map[string]bool)
			for _, p := range before {
				k := wallKey(p)
				assert.False(t, seen[k], "%s: wall %s drawn twice", kind, k)
				seen[k] = true
				assert.False(t, g.IsMasked(p.Cell), "%s: masked cell %v leaked", kind, p.Cell)
			}
		}
	}
}

// maskOf recovers the exclusion bitmap of g.
func maskOf(g *grid.Grid) [][]bool {
	out := make([][]bool, g.Rows())
	for r := range out {
		out[r] = make([]bool, g.RowLen(r))
		for c := range out[r] {
			out[r][c] = g.IsMasked(at(r, c))
		}
	}
	return out
}

func TestProject_FillsFirst(t *testing.T) {
	g := carved(t, 4, 0, grid.Polar, at(2, 5))
	f, err := distance.Compute(g, at(0, 0))
	require.NoError(t, err)
	v := g.Version()

	prims, err := render.Project(g, f, render.WithCellSize(10))
	require.NoError(t, err)
	_, fills := countWalls(prims)
	assert.Equal(t, g.CellCount(), fills)
	for i, p := range prims {
		if i < fills {
			require.Equal(t, render.Polygon, p.Kind)
			assert.True(t, p.HasFill)
			assert.GreaterOrEqual(t, p.Fill, 0.0)
			assert.LessOrEqual(t, p.Fill, 1.0)
		} else {
			assert.NotEqual(t, render.Polygon, p.Kind)
		}
	}
	assert.Zero(t, prims[0].Fill, "root fill")

	again, err := render.Project(g, f, render.WithCellSize(10))
	require.NoError(t, err)
	assert.Equal(t, prims, again, "projection is pure")
	assert.Equal(t, v, g.Version())
}

func TestProject_Errors(t *testing.T) {
	g := carved(t, 2, 2, grid.Rectangular)
	_, err := render.Project(g, nil, render.WithCellSize(0))
	assert.ErrorIs(t, err, render.ErrOptionViolation)
	_, err = render.Project(g, nil, render.WithCellSize(math.NaN()))
	assert.ErrorIs(t, err, render.ErrOptionViolation)

	_, err = render.Project(g, nil, nil)
	assert.NoError(t, err, "nil options are skipped")
	_, err = render.Project(oddKind{g}, nil)
	assert.ErrorIs(t, err, render.ErrUnsupportedTopology)
	_, _, err = render.Bounds(oddKind{g})
	assert.ErrorIs(t, err, render.ErrUnsupportedTopology)
}

// oddKind reports a kind no projection knows.
type oddKind struct{ *grid.Grid }

func (oddKind) Kind() grid.Kind { return grid.Kind(99) }

func TestBounds(t *testing.T) {
	g := carved(t, 3, 4, grid.Rectangular)
	w, h, err := render.Bounds(g, render.WithCellSize(2))
	require.NoError(t, err)
	assert.Equal(t, 8.0, w)
	assert.Equal(t, 6.0, h)

	p := carved(t, 5, 0, grid.Polar)
	w, h, err = render.Bounds(p)
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 10.0, h)
}

func TestASCII(t *testing.T) {
	g, err := grid.New(2, 2, grid.Rectangular)
	require.NoError(t, err)
	require.NoError(t, g.Link(at(0, 0), at(0, 1)))
	require.NoError(t, g.Link(at(0, 1), at(1, 1)))
	require.NoError(t, g.Link(at(1, 1), at(1, 0)))

	plain, err := render.ASCII(g, nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+---+---+",
		"|       |",
		"+---+   +",
		"|       |",
		"+---+---+",
	}, "\n"), plain)

	f, err := distance.Compute(g, at(0, 0))
	require.NoError(t, err)
	numbered, err := render.ASCII(g, f)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+---+---+",
		"| 0   1 |",
		"+---+   +",
		"| 3   2 |",
		"+---+---+",
	}, "\n"), numbered)
}

func TestASCII_Masked(t *testing.T) {
	g, err := grid.New(2, 2, grid.Rectangular)
	require.NoError(t, err)
	m, err := mask.FromText("X.\n..")
	require.NoError(t, err)
	require.NoError(t, g.ApplyMask(m))
	require.NoError(t, g.Link(at(0, 1), at(1, 1)))
	require.NoError(t, g.Link(at(1, 1), at(1, 0)))

	out, err := render.ASCII(g, nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"    +---+",
		"    |   |",
		"+---+   +",
		"|       |",
		"+---+---+",
	}, "\n"), out)

	p, err := grid.New(3, 0, grid.Polar)
	require.NoError(t, err)
	_, err = render.ASCII(p, nil)
	assert.ErrorIs(t, err, render.ErrUnsupportedTopology)
}

func TestWriteSVG(t *testing.T) {
	g := carved(t, 4, 0, grid.Polar)
	f, err := distance.Compute(g, at(0, 0))
	require.NoError(t, err)
	prims, err := render.Project(g, f, render.WithCellSize(20))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, prims, render.WithStrokeWidth(2)))
	svg := buf.String()

	segments, arcs := 0, 0
	for _, p := range prims {
		switch p.Kind {
		case render.Segment:
			segments++
		case render.Arc:
			arcs++
		}
	}
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, g.CellCount(), strings.Count(svg, "<polygon "))
	assert.Equal(t, segments, strings.Count(svg, "<line "))
	assert.Equal(t, arcs, strings.Count(svg, "<path ")+strings.Count(svg, "<circle "))
	assert.Contains(t, svg, `stroke-width="2"`)

	assert.NoError(t, render.WriteSVG(&bytes.Buffer{}, prims, nil))
	err = render.WriteSVG(&bytes.Buffer{}, prims, render.WithPadding(-1))
	assert.ErrorIs(t, err, render.ErrOptionViolation)
}

func TestShade(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, render.Shade(0))
	assert.Equal(t, color.RGBA{0, 0, 128, 255}, render.Shade(1))
	assert.Equal(t, color.RGBA{127, 127, 191, 255}, render.Shade(0.5))
	assert.Equal(t, render.Shade(1), render.Shade(7))
	assert.Equal(t, "#7f7fbf", render.Hex(render.Shade(0.5)))
}

func TestPrimitive_JSON(t *testing.T) {
	b, err := json.Marshal(render.Primitive{Kind: render.Arc, Cell: at(1, 2), Radius: 3})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"kind":"arc"`)

	var back render.Primitive
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, render.Arc, back.Kind)
	assert.Equal(t, at(1, 2), back.Cell)
}
