package grid

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Address identifies a cell. For polar grids Row is the ring and Col the
// position inside the ring.
type Address struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the address as "row,col".
func (a Address) String() string {
	return fmt.Sprintf("%d,%d", a.Row, a.Col)
}

// Kind selects the topology of a grid.
type Kind int

const (
	// Rectangular is the standard row/column grid.
	Rectangular Kind = iota
	// Polar is a disc of concentric rings around a single center cell.
	Polar
	// Hexagonal is a grid of flat-topped hexagons, odd columns shifted down.
	Hexagonal
	// Triangular is a grid of alternating upright and inverted triangles.
	Triangular
)

var kindNames = [...]string{"rectangular", "polar", "hexagonal", "triangular"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Rectangular && k <= Triangular
}

// Kinds lists all known topology kinds.
func Kinds() []Kind {
	return []Kind{Rectangular, Polar, Hexagonal, Triangular}
}

// ParseKind accepts a kind name or one of the short aliases
// "rect", "standard", "theta", "hex", "sigma", "delta", "triangle".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "standard", "orthogonal":
		return Rectangular, nil
	case "polar", "theta", "circle":
		return Polar, nil
	case "hexagonal", "hex", "sigma":
		return Hexagonal, nil
	case "triangular", "triangle", "delta":
		return Triangular, nil
	}
	return 0, errors.Wrapf(ErrInvalidTopology, "unknown topology %q", name)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Wrapf(ErrInvalidTopology, "kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText accepts anything ParseKind does.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Direction names the side of a cell a neighbor lies on.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	Inward
	Outward
	Clockwise
	CounterClockwise
)

var directionNames = [...]string{
	"north", "south", "east", "west",
	"northeast", "northwest", "southeast", "southwest",
	"inward", "outward", "cw", "ccw",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Neighbor pairs a neighboring address with the direction it lies in.
type Neighbor struct {
	Dir Direction
	At  Address
}

// Topology maps addresses onto a neighbor relation. Implementations are
// immutable and mask agnostic: Neighbors returns every in-bounds neighbor.
type Topology interface {
	// Kind reports the topology kind.
	Kind() Kind
	// Rows is the number of rows (rings for polar grids).
	Rows() int
	// RowLen is the number of cells in the given row; 0 when out of range.
	RowLen(row int) int
	// Neighbors lists in-bounds neighbors of a in a fixed direction order.
	Neighbors(a Address) []Neighbor
	// Canonical returns the "north" and "east" neighbors used by biased
	// carvers. Following either strictly decreases a potential, so choosing
	// at most one of them per cell never closes a cycle.
	Canonical(a Address) (north, east Address, hasNorth, hasEast bool)
}

// inRange reports whether a lies inside t.
func inRange(t Topology, a Address) bool {
	return a.Row >= 0 && a.Row < t.Rows() && a.Col >= 0 && a.Col < t.RowLen(a.Row)
}

// NewTopology builds the adapter for kind. Polar grids use rows as the ring
// count and ignore cols.
func NewTopology(rows, cols int, kind Kind) (Topology, error) {
	switch kind {
	case Rectangular:
		return NewRectangular(rows, cols)
	case Polar:
		return NewPolar(rows)
	case Hexagonal:
		return NewHexagonal(rows, cols)
	case Triangular:
		return NewTriangular(rows, cols)
	}
	return nil, errors.Wrapf(ErrInvalidTopology, "kind %d", int(kind))
}
