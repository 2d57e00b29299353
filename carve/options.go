// SPDX-License-Identifier: MIT
// Package: lvlmaze/carve
//
// options.go: functional options for the carvers.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Invalid values are recorded and reported by Run as ErrOptionViolation;
//     option constructors never panic.
//   • Determinism is explicit: seeding via WithSeed or WithSource.

package carve

import (
	"math/rand"

	"github.com/pkg/errors"
)

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

// Options holds the resolved carving configuration.
type Options struct {
	// Seed feeds the default math/rand source; 0 means defaultSeed.
	Seed int64
	// Source overrides Seed when set.
	Source Source
	// StepBudget caps algorithm steps; 0 means unbounded.
	StepBudget int

	err error
}

// Option mutates Options before a run starts.
type Option func(*Options)

// DefaultOptions returns seed 0 (⇒ 1), no custom source and no budget.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed seeds the default source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSource injects a random source; nil is rejected.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src == nil {
			o.fail(errors.Wrap(ErrOptionViolation, "nil source"))
			return
		}
		o.Source = src
	}
}

// WithStepBudget caps the number of algorithm steps. For the random walk
// carvers a step is one walk move; for the others one cell visit.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(errors.Wrapf(ErrOptionViolation, "step budget %d", n))
			return
		}
		o.StepBudget = n
	}
}

// fail keeps the first recorded error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// resolveOptions applies opts over DefaultOptions.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Source == nil {
		o.Source = sourceFromSeed(o.Seed)
	}
	return o, nil
}

// sourceFromSeed applies the zero-seed policy.
func sourceFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
