// SPDX-License-Identifier: MIT

package carve

import "github.com/pkg/errors"

var (
	// ErrEmptyGrid indicates that no non-masked cell is left to carve.
	ErrEmptyGrid = errors.New("carve: grid has no unmasked cells")
	// ErrDisconnected indicates that the unmasked cells split into several
	// regions, so no spanning tree exists.
	ErrDisconnected = errors.New("carve: unmasked cells are not connected")
	// ErrStepBudget indicates that the configured step budget ran out.
	ErrStepBudget = errors.New("carve: step budget exhausted")
	// ErrUnknownAlgorithm indicates an algorithm outside the enum.
	ErrUnknownAlgorithm = errors.New("carve: unknown algorithm")
	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("carve: invalid option")
)
