package config_test

import (
	"encoding/json"
	"flag"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/mask"
)

func TestParse(t *testing.T) {
	c, err := config.Parse("rows=8,cols=5,topology=hex,algorithm=wilson,seed=9,braid=0.5,color=false,cell=4,budget=100000,format=svg")
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Rows: 8, Cols: 5,
		Topology:   grid.Hexagonal,
		Algorithm:  carve.Wilson,
		Seed:       9,
		Braid:      0.5,
		Color:      false,
		CellSize:   4,
		StepBudget: 100000,
		Format:     config.SVG,
	}, c)

	d, err := config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), d)
}

func TestParse_Errors(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want error
	}{
		"unknown key":   {"rows=3,sparkle=1", nil},
		"bad int":       {"rows=three", nil},
		"bad topology":  {"topology=cube", grid.ErrInvalidTopology},
		"bad algorithm": {"algorithm=ellers", carve.ErrUnknownAlgorithm},
		"bad format":    {"format=png", config.ErrInvalid},
		"rows range":    {"rows=0", config.ErrInvalid},
		"cols range":    {"cols=1000", config.ErrInvalid},
		"braid range":   {"braid=2", config.ErrInvalid},
		"cell size":     {"cell=0", config.ErrInvalid},
		"budget":        {"budget=-1", config.ErrInvalid},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(tc.in)
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}

	// Polar ignores cols.
	_, err := config.Parse("topology=polar,cols=0")
	assert.NoError(t, err)
}

func TestFromQuery(t *testing.T) {
	base := config.Default()
	c, err := config.FromQuery(url.Values{"Rows": {"3", "9"}, "format": {"json"}}, base)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rows)
	assert.Equal(t, config.JSON, c.Format)

	back, err := config.FromQuery(url.Values{"rows": {"-4"}}, base)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, base, back)
}

func TestConfig_JSON(t *testing.T) {
	b, err := json.Marshal(config.Default())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"topology":"rectangular"`)
	assert.Contains(t, string(b), `"algorithm":"recursive-backtracker"`)

	var c config.Config
	require.NoError(t, json.Unmarshal([]byte(`{"rows":4,"cols":4,"topology":"hex","algorithm":"ab","cell_size":1,"format":"json"}`), &c))
	assert.Equal(t, grid.Hexagonal, c.Topology)
	assert.Equal(t, carve.AldousBroder, c.Algorithm)
	assert.NoError(t, c.Validate())
}

func TestBuild(t *testing.T) {
	c, err := config.Parse("rows=6,cols=6,algorithm=hunt,braid=1")
	require.NoError(t, err)
	m, err := c.Build(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Grid().DeadEnds())
	assert.Equal(t, carve.HuntAndKill, m.Stats().Algorithm)

	c, err = config.Parse("rows=2,cols=2")
	require.NoError(t, err)
	m, err = c.Build([][]bool{{true, false}, {false, false}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Grid().LinkCount())

	_, err = c.Build([][]bool{{true}})
	assert.ErrorIs(t, err, mask.ErrDimensionMismatch)

	c.StepBudget = 1
	c.Algorithm = carve.AldousBroder
	_, err = c.Build(nil)
	assert.ErrorIs(t, err, carve.ErrStepBudget)
}

func TestApplyFlags(t *testing.T) {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.Int("rows", 7, "")
	fs.Int("cols", 7, "")
	fs.Bool("color", true, "")
	fs.String("topology", "rect", "")
	fs.String("out", "", "")
	require.NoError(t, fs.Parse([]string{"-rows=5", "-color=false", "-topology", "delta", "-out", "x.svg"}))

	c := config.Default()
	require.NoError(t, c.ApplyFlags(fs))
	assert.Equal(t, 5, c.Rows)
	assert.Equal(t, 12, c.Cols, "unset flags keep the current value")
	assert.False(t, c.Color)
	assert.Equal(t, grid.Triangular, c.Topology)
}
