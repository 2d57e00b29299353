// Package config holds the settings shared by the lvlmaze binaries and the
// HTTP service, and builds a maze from them.
package config

import (
	"flag"
	"net/url"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/internal/parameters"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
)

// ErrInvalid is returned for settings out of range.
var ErrInvalid = errors.New("config: invalid setting")

// MaxSide bounds rows and columns, keeping a single request cheap.
const MaxSide = 256

// ServeBudget is the step budget mazed imposes when its base config and a
// request leave it unset. It covers an Aldous-Broder walk over a
// MaxSide×MaxSide grid with wide margin.
const ServeBudget = 256 * MaxSide * MaxSide

// Format selects the output encoding.
type Format string

const (
	ASCII Format = "ascii"
	SVG   Format = "svg"
	JSON  Format = "json"
)

// ParseFormat accepts ascii, text, svg and json in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii", "text", "txt":
		return ASCII, nil
	case "svg":
		return SVG, nil
	case "json":
		return JSON, nil
	}
	return "", errors.Wrapf(ErrInvalid, "unknown format %q", s)
}

// Config describes one maze.
type Config struct {
	Rows       int             `json:"rows"`
	Cols       int             `json:"cols"`
	Topology   grid.Kind       `json:"topology"`
	Algorithm  carve.Algorithm `json:"algorithm"`
	Seed       int64           `json:"seed"`
	Braid      float64         `json:"braid"`
	Color      bool            `json:"color"`
	CellSize   float64         `json:"cell_size"`
	StepBudget int             `json:"step_budget"`
	Format     Format          `json:"format"`
}

// Default is a 12×12 rectangular backtracker maze, colored, rendered as
// text.
func Default() Config {
	return Config{
		Rows:      12,
		Cols:      12,
		Topology:  grid.Rectangular,
		Algorithm: carve.RecursiveBacktracker,
		Seed:      1,
		Color:     true,
		CellSize:  20,
		Format:    ASCII,
	}
}

// Parse applies a "key=value,..." string on top of Default.
func Parse(config string) (Config, error) {
	c := Default()
	if err := c.Apply(parameters.NewFromConfigString(config)); err != nil {
		return c, err
	}
	return c, nil
}

// Apply consumes the known keys of params and fails on any left over.
// Recognized keys: rows, cols, topology, algorithm, seed, braid, color,
// cell, budget, format.
func (c *Config) Apply(params parameters.Params) error {
	var err error
	if c.Rows, err = parameters.PopParamOr(params, "rows", c.Rows); err != nil {
		return err
	}
	if c.Cols, err = parameters.PopParamOr(params, "cols", c.Cols); err != nil {
		return err
	}
	topology, err := parameters.PopParamOr(params, "topology", "")
	if err != nil {
		return err
	}
	if topology != "" {
		if c.Topology, err = grid.ParseKind(topology); err != nil {
			return err
		}
	}
	algorithm, err := parameters.PopParamOr(params, "algorithm", "")
	if err != nil {
		return err
	}
	if algorithm != "" {
		if c.Algorithm, err = carve.ParseAlgorithm(algorithm); err != nil {
			return err
		}
	}
	seed, err := parameters.PopParamOr(params, "seed", int(c.Seed))
	if err != nil {
		return err
	}
	c.Seed = int64(seed)
	if c.Braid, err = parameters.PopParamOr(params, "braid", c.Braid); err != nil {
		return err
	}
	if c.Color, err = parameters.PopParamOr(params, "color", c.Color); err != nil {
		return err
	}
	if c.CellSize, err = parameters.PopParamOr(params, "cell", c.CellSize); err != nil {
		return err
	}
	if c.StepBudget, err = parameters.PopParamOr(params, "budget", c.StepBudget); err != nil {
		return err
	}
	format, err := parameters.PopParamOr(params, "format", "")
	if err != nil {
		return err
	}
	if format != "" {
		if c.Format, err = ParseFormat(format); err != nil {
			return err
		}
	}
	if err := parameters.Unknown(params); err != nil {
		return errors.WithMessage(err, "config")
	}
	return c.Validate()
}

// Keys lists the settings Apply recognizes.
var Keys = []string{"rows", "cols", "topology", "algorithm", "seed", "braid", "color", "cell", "budget", "format"}

// ApplyFlags applies the flags of fs that were set on the command line and
// are named after a setting. Other flags are left alone.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	params := make(parameters.Params)
	fs.Visit(func(f *flag.Flag) {
		if slices.Contains(Keys, f.Name) {
			params[f.Name] = f.Value.String()
		}
	})
	return c.Apply(params)
}

// FromQuery applies URL query values on top of base. Only the first value
// of each key is used.
func FromQuery(values url.Values, base Config) (Config, error) {
	params := make(parameters.Params, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[strings.ToLower(k)] = v[0]
		}
	}
	c := base
	if err := c.Apply(params); err != nil {
		return base, err
	}
	return c, nil
}

// Validate checks ranges. Cols is ignored for polar grids.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Rows > MaxSide {
		return errors.Wrapf(ErrInvalid, "rows=%d, want 1..%d", c.Rows, MaxSide)
	}
	if c.Topology != grid.Polar && (c.Cols < 1 || c.Cols > MaxSide) {
		return errors.Wrapf(ErrInvalid, "cols=%d, want 1..%d", c.Cols, MaxSide)
	}
	if !c.Topology.Valid() {
		return errors.Wrapf(grid.ErrInvalidTopology, "%v", c.Topology)
	}
	if !c.Algorithm.Valid() {
		return errors.Wrapf(carve.ErrUnknownAlgorithm, "%v", c.Algorithm)
	}
	if !(c.Braid >= 0 && c.Braid <= 1) {
		return errors.Wrapf(ErrInvalid, "braid=%v, want 0..1", c.Braid)
	}
	if !(c.CellSize > 0) {
		return errors.Wrapf(ErrInvalid, "cell=%v, want > 0", c.CellSize)
	}
	if c.StepBudget < 0 {
		return errors.Wrapf(ErrInvalid, "budget=%d, want >= 0", c.StepBudget)
	}
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}

// RenderOptions are the projection options implied by c.
func (c Config) RenderOptions() []render.Option {
	return []render.Option{render.WithCellSize(c.CellSize)}
}

// Build creates, masks, carves and optionally braids a maze. bitmap may be
// nil.
func (c Config) Build(bitmap [][]bool) (*maze.Maze, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, err := maze.New(c.Rows, c.Cols, c.Topology)
	if err != nil {
		return nil, err
	}
	if bitmap != nil {
		if err := m.ApplyMask(bitmap); err != nil {
			return nil, err
		}
	}
	var opts []carve.Option
	if c.StepBudget > 0 {
		opts = append(opts, carve.WithStepBudget(c.StepBudget))
	}
	if _, err := m.Generate(c.Algorithm, c.Seed, opts...); err != nil {
		return nil, err
	}
	if c.Braid > 0 {
		if _, err := m.Braid(c.Braid, c.Seed); err != nil {
			return nil, err
		}
	}
	return m, nil
}
