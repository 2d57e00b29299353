package carve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
)

func TestBraid_RemovesEveryDeadEnd(t *testing.T) {
	g := newGrid(t, 10, 10, grid.Rectangular)
	_, err := carve.RecursiveBacktrackerOn(g, carve.WithSeed(9))
	require.NoError(t, err)
	before := len(g.DeadEnds())
	require.Positive(t, before)

	added, err := carve.Braid(g, 1, carve.WithSeed(9))
	require.NoError(t, err)

	assert.Empty(t, g.DeadEnds(), "every cell has an unlinked neighbor to open")
	assert.Positive(t, added)
	assert.LessOrEqual(t, added, before)
	assert.Equal(t, 99+added, g.LinkCount())
	for _, a := range g.Cells() {
		for _, b := range g.Links(a) {
			assert.True(t, g.IsLinked(b, a), "links stay symmetric")
		}
	}
}

func TestBraid_Partial(t *testing.T) {
	g := newGrid(t, 12, 0, grid.Polar)
	_, err := carve.WilsonOn(g, carve.WithSeed(4))
	require.NoError(t, err)
	before := len(g.DeadEnds())

	_, err = carve.Braid(g, 0.5, carve.WithSeed(4))
	require.NoError(t, err)
	assert.Less(t, len(g.DeadEnds()), before)
}

func TestBraid_ZeroIsNoop(t *testing.T) {
	g := newGrid(t, 6, 6, grid.Hexagonal)
	_, err := carve.HuntAndKillOn(g)
	require.NoError(t, err)
	v := g.Version()

	added, err := carve.Braid(g, 0)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, v, g.Version())
	assert.True(t, carve.IsSpanningTree(g))
}

func TestBraid_Probability(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Rectangular)
	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := carve.Braid(g, p)
		assert.ErrorIs(t, err, carve.ErrOptionViolation)
	}
}
