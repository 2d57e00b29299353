package render

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/grid"
)

var (
	// ErrUnsupportedTopology indicates a grid kind without a projection.
	ErrUnsupportedTopology = errors.New("render: unsupported topology")
	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("render: invalid option")
)

// Source is the read-only view of a grid the projection needs.
type Source interface {
	Kind() grid.Kind
	Rows() int
	RowLen(row int) int
	Cells() []grid.Address
	Adjacent(a grid.Address) []grid.Neighbor
	IsMasked(a grid.Address) bool
	IsLinked(a, b grid.Address) bool
}

var _ Source = (*grid.Grid)(nil)

// Shape is the primitive kind.
type Shape int

const (
	// Segment is a straight wall between Points[0] and Points[1].
	Segment Shape = iota
	// Arc is a circular wall around Center from angle Start to End.
	Arc
	// Polygon is a cell fill through Points.
	Polygon
)

var shapeNames = [...]string{"segment", "arc", "polygon"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// MarshalText encodes the shape by name.
func (s Shape) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(shapeNames) {
		return nil, errors.Errorf("render: bad shape %d", int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText decodes a shape name.
func (s *Shape) UnmarshalText(b []byte) error {
	for i, n := range shapeNames {
		if n == string(b) {
			*s = Shape(i)
			return nil
		}
	}
	return errors.Errorf("render: bad shape %q", b)
}

// Point is a position in drawing units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Primitive is one drawable item.
type Primitive struct {
	Kind   Shape        `json:"kind"`
	Cell   grid.Address `json:"cell"`
	Points []Point      `json:"points,omitempty"`
	Center Point        `json:"center"`
	Radius float64      `json:"radius,omitempty"`
	Start  float64      `json:"start,omitempty"`
	End    float64      `json:"end,omitempty"`
	// Fill is the distance intensity in [0, 1], set when HasFill.
	Fill    float64 `json:"fill,omitempty"`
	HasFill bool    `json:"hasFill,omitempty"`
}

// Options tunes projection and encoding.
type Options struct {
	// CellSize scales the unit geometry; default 1.
	CellSize float64
	// StrokeWidth is the SVG wall width; default CellSize/10.
	StrokeWidth float64
	// Padding surrounds the SVG drawing; default StrokeWidth.
	Padding float64

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns cell size 1 with derived stroke and padding.
func DefaultOptions() Options {
	return Options{CellSize: 1}
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) }

// WithCellSize sets the cell size; it must be positive.
func WithCellSize(s float64) Option {
	return func(o *Options) {
		if !positive(s) {
			o.err = errors.Wrapf(ErrOptionViolation, "cell size %v", s)
			return
		}
		o.CellSize = s
	}
}

// WithStrokeWidth sets the SVG wall width; it must be positive.
func WithStrokeWidth(w float64) Option {
	return func(o *Options) {
		if !positive(w) {
			o.err = errors.Wrapf(ErrOptionViolation, "stroke width %v", w)
			return
		}
		o.StrokeWidth = w
	}
}

// WithPadding sets the SVG margin; it must not be negative.
func WithPadding(p float64) Option {
	return func(o *Options) {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			o.err = errors.Wrapf(ErrOptionViolation, "padding %v", p)
			return
		}
		o.Padding = p
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	o.Padding = -1
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = o.CellSize / 10
	}
	if o.Padding < 0 {
		o.Padding = o.StrokeWidth
	}
	return o, nil
}
