// Package distance provides tunable options and error definitions for
// distance fields.
package distance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors for distance computation.
var (
	// ErrUnreachableRoot is returned when the root is masked or out of bounds.
	ErrUnreachableRoot = errors.New("distance: root is masked or outside the grid")

	// ErrNotReached is returned by PathTo for a cell without a distance.
	ErrNotReached = errors.New("distance: cell not reached from root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Versioned is anything carrying a mutation counter.
type Versioned interface {
	Version() uint64
}

// Graph is the read-only view of a maze the search needs. *grid.Grid
// implements it.
type Graph interface {
	Versioned
	IsMasked(a grid.Address) bool
	Links(a grid.Address) []grid.Address
}

var _ Graph = (*grid.Grid)(nil)

// Option configures Compute.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context
	// MaxDepth, if > 0, stops expanding beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions: background context, no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the search radius.
//
//	d > 0:  cells farther than d get no distance
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}
