package carve_test

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/mask"
)

func at(r, c int) grid.Address { return grid.Address{Row: r, Col: c} }

// newGrid builds a grid and fails the test on error.
func newGrid(t testing.TB, rows, cols int, kind grid.Kind) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, kind)
	require.NoError(t, err)
	return g
}

// punch masks the given cells of g.
func punch(t testing.TB, g *grid.Grid, holes ...grid.Address) {
	t.Helper()
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

// fingerprint renders the link set of g as an order independent key.
func fingerprint(g *grid.Grid) string {
	var pairs []string
	for _, a := range g.Cells() {
		for _, b := range g.Links(a) {
			if b.Row > a.Row || (b.Row == a.Row && b.Col > a.Col) {
				pairs = append(pairs, a.String()+"-"+b.String())
			}
		}
	}
	slices.Sort(pairs)
	return strings.Join(pairs, ";")
}

func TestRun_SpanningTreeOnEveryTopology(t *testing.T) {
	holes := map[grid.Kind][]grid.Address{
		grid.Rectangular: {at(0, 0), at(2, 3)},
		grid.Polar:       {at(2, 3), at(5, 0)},
		grid.Hexagonal:   {at(0, 0), at(2, 3)},
		grid.Triangular:  {at(0, 0), at(2, 3)},
	}
	for _, kind := range grid.Kinds() {
		for _, algo := range carve.Algorithms() {
			for _, masked := range []bool{false, true} {
				name := fmt.Sprintf("%s/%s/masked=%v", kind, algo, masked)
				t.Run(name, func(t *testing.T) {
					g := newGrid(t, 6, 7, kind)
					if masked {
						punch(t, g, holes[kind]...)
					}
					stats, err := carve.Run(g, algo, carve.WithSeed(7))
					require.NoError(t, err)

					assert.True(t, carve.IsSpanningTree(g))
					assert.Equal(t, g.CellCount(), stats.Cells)
					assert.Equal(t, g.CellCount()-1, stats.Links)
					assert.Equal(t, g.CellCount()-1, g.LinkCount())
					assert.Equal(t, algo, stats.Algorithm)
					for _, h := range holes[kind] {
						if masked {
							assert.Empty(t, g.Links(h), "masked cell %v linked", h)
						}
					}
				})
			}
		}
	}
}

func TestRun_NoStitchOnPlainGrids(t *testing.T) {
	for _, kind := range []grid.Kind{grid.Rectangular, grid.Polar, grid.Hexagonal} {
		for _, algo := range carve.Algorithms() {
			g := newGrid(t, 8, 9, kind)
			stats, err := carve.Run(g, algo, carve.WithSeed(3))
			require.NoError(t, err)
			assert.Zero(t, stats.Stitched, "%s/%s", kind, algo)
		}
	}
}

func TestBinaryTree_TriangularForestIsStitched(t *testing.T) {
	// Upright cells of the last column at rows 0, 2 and 4 have no canonical
	// neighbor, so the bias pass leaves three trees.
	g := newGrid(t, 6, 7, grid.Triangular)
	stats, err := carve.BinaryTreeOn(g, carve.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Stitched)
	assert.True(t, carve.IsSpanningTree(g))
}

func TestBinaryTree_Corridors(t *testing.T) {
	const rows, cols = 8, 10
	for seed := int64(1); seed <= 5; seed++ {
		g := newGrid(t, rows, cols, grid.Rectangular)
		_, err := carve.BinaryTreeOn(g, carve.WithSeed(seed))
		require.NoError(t, err)

		for c := 0; c+1 < cols; c++ {
			assert.True(t, g.IsLinked(at(0, c), at(0, c+1)), "top row must be a corridor")
		}
		for r := 1; r < rows; r++ {
			assert.True(t, g.IsLinked(at(r, cols-1), at(r-1, cols-1)), "east column must be a corridor")
		}
		for _, a := range g.Cells() {
			for _, b := range g.Links(a) {
				// Every link runs north or east from one of its ends.
				vertical := b.Col == a.Col && (b.Row == a.Row-1 || b.Row == a.Row+1)
				horizontal := b.Row == a.Row && (b.Col == a.Col-1 || b.Col == a.Col+1)
				assert.True(t, vertical || horizontal)
			}
		}
	}
}

func TestSidewinder_RunsCloseNorth(t *testing.T) {
	const rows, cols = 8, 10
	for seed := int64(1); seed <= 5; seed++ {
		g := newGrid(t, rows, cols, grid.Rectangular)
		_, err := carve.SidewinderOn(g, carve.WithSeed(seed))
		require.NoError(t, err)

		for c := 0; c+1 < cols; c++ {
			assert.True(t, g.IsLinked(at(0, c), at(0, c+1)), "north boundary row is one run")
		}
		for r := 1; r < rows; r++ {
			east, north := 0, 0
			for c := 0; c < cols; c++ {
				if c+1 < cols && g.IsLinked(at(r, c), at(r, c+1)) {
					east++
				}
				if g.IsLinked(at(r, c), at(r-1, c)) {
					north++
				}
			}
			assert.Equal(t, cols-east, north, "row %d: one north link per run", r)
		}
	}
}

func TestRun_SingleCell(t *testing.T) {
	for _, algo := range carve.Algorithms() {
		g := newGrid(t, 1, 1, grid.Rectangular)
		stats, err := carve.Run(g, algo)
		require.NoError(t, err)
		assert.Zero(t, stats.Links)
		assert.Zero(t, g.LinkCount())
		assert.True(t, carve.IsSpanningTree(g))

		p := newGrid(t, 2, 2, grid.Rectangular)
		punch(t, p, at(0, 0), at(0, 1), at(1, 0))
		_, err = carve.Run(p, algo)
		require.NoError(t, err)
		assert.Zero(t, p.LinkCount())
	}
}

func TestRun_Preconditions(t *testing.T) {
	g := newGrid(t, 1, 2, grid.Rectangular)
	punch(t, g, at(0, 0), at(0, 1))
	_, err := carve.Run(g, carve.Wilson)
	assert.ErrorIs(t, err, carve.ErrEmptyGrid)

	g = newGrid(t, 1, 3, grid.Rectangular)
	punch(t, g, at(0, 1))
	v := g.Version()
	_, err = carve.Run(g, carve.AldousBroder)
	assert.ErrorIs(t, err, carve.ErrDisconnected)
	assert.Equal(t, v, g.Version(), "grid untouched")

	_, err = carve.Run(newGrid(t, 2, 2, grid.Rectangular), carve.Algorithm(99))
	assert.ErrorIs(t, err, carve.ErrUnknownAlgorithm)
}

func TestRun_OptionViolations(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Rectangular)
	_, err := carve.Run(g, carve.BinaryTree, carve.WithStepBudget(-1))
	assert.ErrorIs(t, err, carve.ErrOptionViolation)
	_, err = carve.Run(g, carve.BinaryTree, carve.WithSource(nil))
	assert.ErrorIs(t, err, carve.ErrOptionViolation)
	assert.Zero(t, g.LinkCount())
}

func TestRun_StepBudgetRestoresLinks(t *testing.T) {
	g := newGrid(t, 10, 10, grid.Rectangular)
	_, err := carve.RecursiveBacktrackerOn(g, carve.WithSeed(5))
	require.NoError(t, err)
	before := fingerprint(g)

	for _, algo := range carve.Algorithms() {
		_, err = carve.Run(g, algo, carve.WithStepBudget(5))
		require.ErrorIs(t, err, carve.ErrStepBudget, algo.String())
		assert.Equal(t, before, fingerprint(g), "%s must restore previous links", algo)
	}

	stats, err := carve.Run(g, carve.Wilson, carve.WithStepBudget(1_000_000))
	require.NoError(t, err)
	assert.LessOrEqual(t, stats.Steps, 1_000_000)
	assert.Positive(t, stats.Steps)
}

func TestRun_Deterministic(t *testing.T) {
	for _, algo := range carve.Algorithms() {
		a := newGrid(t, 9, 9, grid.Hexagonal)
		b := newGrid(t, 9, 9, grid.Hexagonal)
		_, err := carve.Run(a, algo, carve.WithSeed(0))
		require.NoError(t, err)
		_, err = carve.Run(b, algo, carve.WithSeed(1))
		require.NoError(t, err)
		assert.Equal(t, fingerprint(a), fingerprint(b), "seed 0 falls back to seed 1 (%s)", algo)

		_, err = carve.Run(b, algo, carve.WithSource(rand.New(rand.NewSource(1))))
		require.NoError(t, err)
		assert.Equal(t, fingerprint(a), fingerprint(b), "explicit source with the same seed (%s)", algo)
	}
}

func TestRun_ReplacesExistingLinks(t *testing.T) {
	g := newGrid(t, 5, 5, grid.Rectangular)
	_, err := carve.Run(g, carve.HuntAndKill, carve.WithSeed(2))
	require.NoError(t, err)
	_, err = carve.Braid(g, 1, carve.WithSeed(2))
	require.NoError(t, err)
	require.False(t, carve.IsSpanningTree(g))

	_, err = carve.Run(g, carve.Sidewinder, carve.WithSeed(2))
	require.NoError(t, err)
	assert.True(t, carve.IsSpanningTree(g))
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range carve.Algorithms() {
		got, err := carve.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	got, err := carve.ParseAlgorithm("Recursive_Backtracker")
	require.NoError(t, err)
	assert.Equal(t, carve.RecursiveBacktracker, got)
	got, err = carve.ParseAlgorithm("dfs")
	require.NoError(t, err)
	assert.Equal(t, carve.RecursiveBacktracker, got)

	_, err = carve.ParseAlgorithm("ellers")
	assert.ErrorIs(t, err, carve.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(42)", carve.Algorithm(42).String())
	assert.True(t, carve.Wilson.Uniform())
	assert.False(t, carve.Sidewinder.Uniform())
}

func TestIsSpanningTree(t *testing.T) {
	g := newGrid(t, 2, 2, grid.Rectangular)
	assert.False(t, carve.IsSpanningTree(g), "no links, four cells")

	require.NoError(t, g.Link(at(0, 0), at(0, 1)))
	require.NoError(t, g.Link(at(0, 1), at(1, 1)))
	require.NoError(t, g.Link(at(1, 1), at(1, 0)))
	assert.True(t, carve.IsSpanningTree(g))

	require.NoError(t, g.Link(at(1, 0), at(0, 0)))
	assert.False(t, carve.IsSpanningTree(g), "cycle")

	empty := newGrid(t, 1, 1, grid.Rectangular)
	punch(t, empty, at(0, 0))
	assert.False(t, carve.IsSpanningTree(empty))
}
