// SPDX-License-Identifier: MIT

package carve

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Surface is the capability set carvers need from a grid.
type Surface interface {
	Cells() []grid.Address
	CellCount() int
	Neighbors(a grid.Address) []grid.Address
	Canonical(a grid.Address) (north, east grid.Address, hasNorth, hasEast bool)
	IsMasked(a grid.Address) bool
	Link(a, b grid.Address) error
	IsLinked(a, b grid.Address) bool
	Links(a grid.Address) []grid.Address
	Reset()
}

// Checkpointer is implemented by surfaces that can roll back their links.
type Checkpointer interface {
	Snapshot() grid.LinkSet
	Restore(grid.LinkSet) error
}

// Source is the random number contract; *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n) for n > 0.
	Intn(n int) int
}

var (
	_ Surface      = (*grid.Grid)(nil)
	_ Checkpointer = (*grid.Grid)(nil)
)

// Algorithm enumerates the carving strategies.
type Algorithm int

const (
	BinaryTree Algorithm = iota
	Sidewinder
	AldousBroder
	Wilson
	HuntAndKill
	RecursiveBacktracker
)

var algorithmNames = [...]string{
	"binary-tree",
	"sidewinder",
	"aldous-broder",
	"wilson",
	"hunt-and-kill",
	"recursive-backtracker",
}

// String returns the kebab-case algorithm name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Valid reports whether a is a member of the enum.
func (a Algorithm) Valid() bool {
	return a >= BinaryTree && a <= RecursiveBacktracker
}

// Uniform reports whether a samples spanning trees uniformly.
func (a Algorithm) Uniform() bool {
	return a == AldousBroder || a == Wilson
}

// MarshalText encodes the algorithm by name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(a))
	}
	return []byte(algorithmNames[a]), nil
}

// UnmarshalText accepts anything ParseAlgorithm does.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Algorithms lists every algorithm in enum order.
func Algorithms() []Algorithm {
	return []Algorithm{BinaryTree, Sidewinder, AldousBroder, Wilson, HuntAndKill, RecursiveBacktracker}
}

// ParseAlgorithm resolves a name, ignoring case, '-', '_' and spaces.
// Short forms "binary", "ab", "wilsons", "hunt", "backtracker" and "dfs"
// are accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	switch key {
	case "binarytree", "binary":
		return BinaryTree, nil
	case "sidewinder":
		return Sidewinder, nil
	case "aldousbroder", "ab":
		return AldousBroder, nil
	case "wilson", "wilsons":
		return Wilson, nil
	case "huntandkill", "hunt":
		return HuntAndKill, nil
	case "recursivebacktracker", "backtracker", "dfs":
		return RecursiveBacktracker, nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Stats summarizes one carving run.
type Stats struct {
	Algorithm Algorithm `json:"algorithm"`
	Cells     int       `json:"cells"`
	Links     int       `json:"links"`
	Steps     int       `json:"steps"`
	Stitched  int       `json:"stitched"`
}
