package parameters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/internal/parameters"
)

func TestNewFromConfigString(t *testing.T) {
	p := parameters.NewFromConfigString(" Rows=12, cols = 8,,color,expr=a=b")
	assert.Equal(t, parameters.Params{
		"rows":  "12",
		"cols":  "8",
		"color": "",
		"expr":  "a=b",
	}, p)
	assert.Empty(t, parameters.NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	p := parameters.NewFromConfigString("rows=12,braid=0.25,color,name=hex,bad=x,off=false")

	rows, err := parameters.GetParamOr(p, "rows", 3)
	require.NoError(t, err)
	assert.Equal(t, 12, rows)

	missing, err := parameters.GetParamOr(p, "cols", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	braid, err := parameters.GetParamOr(p, "braid", 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, braid)

	color, err := parameters.GetParamOr(p, "color", false)
	require.NoError(t, err)
	assert.True(t, color)

	off, err := parameters.GetParamOr(p, "off", true)
	require.NoError(t, err)
	assert.False(t, off)

	name, err := parameters.GetParamOr(p, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "hex", name)

	_, err = parameters.GetParamOr(p, "bad", 0)
	assert.Error(t, err)
	_, err = parameters.GetParamOr(p, "bad", 0.0)
	assert.Error(t, err)
	_, err = parameters.GetParamOr(p, "bad", false)
	assert.Error(t, err)

	assert.Len(t, p, 6, "GetParamOr does not consume")
}

func TestPopParamOr_Unknown(t *testing.T) {
	p := parameters.NewFromConfigString("rows=4,zeta=1,alpha")
	rows, err := parameters.PopParamOr(p, "rows", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, rows)
	assert.NotContains(t, p, "rows")

	err = parameters.Unknown(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha, zeta")

	_, _ = parameters.PopParamOr(p, "zeta", 0)
	_, _ = parameters.PopParamOr(p, "alpha", false)
	assert.NoError(t, parameters.Unknown(p))
}
