package grid

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions indicates a topology with no rows or no columns.
	ErrInvalidDimensions = errors.New("grid: topology must have at least one row and one column")
	// ErrInvalidTopology indicates an unknown topology kind.
	ErrInvalidTopology = errors.New("grid: invalid topology")
	// ErrInvalidLink indicates a link request that violates the topology contract.
	ErrInvalidLink = errors.New("grid: invalid link")
	// ErrCarved indicates a mask applied after links were carved.
	ErrCarved = errors.New("grid: grid already carved, reset it first")
)
