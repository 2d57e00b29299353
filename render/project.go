package render

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/distance"
	"github.com/katalvlaran/lvlmaze/grid"
)

// projector accumulates fills and walls separately so fills come first.
type projector struct {
	g     Source
	field *distance.Field
	s     float64
	fills []Primitive
	walls []Primitive
}

// Project converts g into primitives. field may be nil, in which case no
// fills are emitted.
func Project(g Source, field *distance.Field, opts ...Option) ([]Primitive, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	p := &projector{g: g, field: field, s: o.CellSize}

	var cell func(a grid.Address)
	switch g.Kind() {
	case grid.Rectangular:
		cell = p.rectCell
	case grid.Polar:
		cell = p.polarCell
	case grid.Hexagonal:
		cell = p.hexCell
	case grid.Triangular:
		cell = p.triangleCell
	default:
		return nil, errors.Wrapf(ErrUnsupportedTopology, "%v", g.Kind())
	}
	for _, a := range g.Cells() {
		cell(a)
	}
	return append(p.fills, p.walls...), nil
}

// neighbor finds the in-bounds neighbor of a in direction d.
func (p *projector) neighbor(a grid.Address, d grid.Direction) (grid.Address, bool) {
	for _, n := range p.g.Adjacent(a) {
		if n.Dir == d {
			return n.At, true
		}
	}
	return grid.Address{}, false
}

// boundary reports whether the d side of a faces nothing carvable.
func (p *projector) boundary(a grid.Address, d grid.Direction) bool {
	b, ok := p.neighbor(a, d)
	return !ok || p.g.IsMasked(b)
}

// closed reports whether the d side of a has no passage.
func (p *projector) closed(a grid.Address, d grid.Direction) bool {
	b, ok := p.neighbor(a, d)
	return !ok || !p.g.IsLinked(a, b)
}

func (p *projector) fill(a grid.Address, pts ...Point) {
	if p.field == nil {
		return
	}
	in, ok := p.field.Intensity(a)
	if !ok {
		return
	}
	p.fills = append(p.fills, Primitive{Kind: Polygon, Cell: a, Points: pts, Fill: in, HasFill: true})
}

func (p *projector) segment(a grid.Address, from, to Point) {
	p.walls = append(p.walls, Primitive{Kind: Segment, Cell: a, Points: []Point{from, to}})
}

func (p *projector) arc(a grid.Address, center Point, radius, start, end float64) {
	p.walls = append(p.walls, Primitive{Kind: Arc, Cell: a, Center: center, Radius: radius, Start: start, End: end})
}

// rectCell draws N and W on the boundary, E and S when closed.
func (p *projector) rectCell(a grid.Address) {
	x0, y0 := float64(a.Col)*p.s, float64(a.Row)*p.s
	x1, y1 := x0+p.s, y0+p.s
	nw, ne, se, sw := Point{x0, y0}, Point{x1, y0}, Point{x1, y1}, Point{x0, y1}

	p.fill(a, nw, ne, se, sw)
	if p.boundary(a, grid.North) {
		p.segment(a, nw, ne)
	}
	if p.boundary(a, grid.West) {
		p.segment(a, nw, sw)
	}
	if p.closed(a, grid.East) {
		p.segment(a, ne, se)
	}
	if p.closed(a, grid.South) {
		p.segment(a, sw, se)
	}
}

// polar returns the point at radius r and angle theta around center.
func polar(center Point, r, theta float64) Point {
	return Point{center.X + r*math.Cos(theta), center.Y + r*math.Sin(theta)}
}

// arcPoints approximates an arc with at least one chord per π/16.
func arcPoints(center Point, r, from, to float64) []Point {
	steps := max(1, int(math.Ceil(math.Abs(to-from)/(math.Pi/16))))
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, polar(center, r, from+(to-from)*float64(i)/float64(steps)))
	}
	return pts
}

// circlePoints returns n points evenly spaced on a circle.
func circlePoints(center Point, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = polar(center, r, 2*math.Pi*float64(i)/float64(n))
	}
	return pts
}

// polarCell draws the inward arc and clockwise radial when closed, the
// counter-clockwise radial against masked cells and the outer arc along the
// rim or over masked children. Ring 0 draws only outer arcs.
func (p *projector) polarCell(a grid.Address) {
	rings := p.g.Rows()
	center := Point{float64(rings) * p.s, float64(rings) * p.s}
	inner, outer := float64(a.Row)*p.s, float64(a.Row+1)*p.s
	n := p.g.RowLen(a.Row)
	theta := 2 * math.Pi / float64(n)
	ccw, cw := float64(a.Col)*theta, float64(a.Col+1)*theta

	if a.Row == 0 {
		p.fill(a, circlePoints(center, outer, 32)...)
	} else {
		pts := arcPoints(center, inner, ccw, cw)
		rim := arcPoints(center, outer, cw, ccw)
		p.fill(a, append(pts, rim...)...)

		if p.closed(a, grid.Inward) {
			p.arc(a, center, inner, ccw, cw)
		}
		if p.closed(a, grid.Clockwise) {
			p.segment(a, polar(center, inner, cw), polar(center, outer, cw))
		}
		if p.boundary(a, grid.CounterClockwise) {
			p.segment(a, polar(center, inner, ccw), polar(center, outer, ccw))
		}
	}

	if a.Row == rings-1 {
		p.arc(a, center, outer, ccw, cw)
		return
	}
	var children []grid.Address
	for _, nb := range p.g.Adjacent(a) {
		if nb.Dir == grid.Outward {
			children = append(children, nb.At)
		}
	}
	span := (cw - ccw) / float64(len(children))
	for i, c := range children {
		if p.g.IsMasked(c) {
			p.arc(a, center, outer, ccw+float64(i)*span, ccw+float64(i+1)*span)
		}
	}
}

// hexCell draws SW, NW and N on the boundary, NE, SE and S when closed.
func (p *projector) hexCell(a grid.Address) {
	b := p.s * math.Sqrt(3) / 2
	cx := p.s + 3*float64(a.Col)*p.s/2
	cy := b + float64(a.Row)*2*b
	if a.Col%2 == 1 {
		cy += b
	}
	xFW, xNW, xNE, xFE := cx-p.s, cx-p.s/2, cx+p.s/2, cx+p.s
	yN, yM, yS := cy-b, cy, cy+b

	west, nw, ne := Point{xFW, yM}, Point{xNW, yN}, Point{xNE, yN}
	east, se, sw := Point{xFE, yM}, Point{xNE, yS}, Point{xNW, yS}

	p.fill(a, west, nw, ne, east, se, sw)
	if p.boundary(a, grid.SouthWest) {
		p.segment(a, west, sw)
	}
	if p.boundary(a, grid.NorthWest) {
		p.segment(a, west, nw)
	}
	if p.boundary(a, grid.North) {
		p.segment(a, nw, ne)
	}
	if p.closed(a, grid.NorthEast) {
		p.segment(a, ne, east)
	}
	if p.closed(a, grid.SouthEast) {
		p.segment(a, east, se)
	}
	if p.closed(a, grid.South) {
		p.segment(a, se, sw)
	}
}

// triangleCell draws the west side on the boundary, the east side when
// closed, and the base once: by upright cells on the boundary, by inverted
// cells when closed.
func (p *projector) triangleCell(a grid.Address) {
	h := p.s * math.Sqrt(3) / 2
	cx := p.s/2 + float64(a.Col)*p.s/2
	cy := h/2 + float64(a.Row)*h
	upright := grid.Upright(a)
	apexY, baseY := cy-h/2, cy+h/2
	if !upright {
		apexY, baseY = baseY, apexY
	}
	west, apex, east := Point{cx - p.s/2, baseY}, Point{cx, apexY}, Point{cx + p.s/2, baseY}

	p.fill(a, west, apex, east)
	if p.boundary(a, grid.West) {
		p.segment(a, west, apex)
	}
	if p.closed(a, grid.East) {
		p.segment(a, east, apex)
	}
	if (upright && p.boundary(a, grid.South)) || (!upright && p.closed(a, grid.North)) {
		p.segment(a, east, west)
	}
}

// Bounds returns the drawing extent of g at the given options.
func Bounds(g Source, opts ...Option) (width, height float64, err error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, 0, err
	}
	s, rows, cols := o.CellSize, float64(g.Rows()), float64(g.RowLen(0))
	switch g.Kind() {
	case grid.Rectangular:
		return cols * s, rows * s, nil
	case grid.Polar:
		return 2 * rows * s, 2 * rows * s, nil
	case grid.Hexagonal:
		b := s * math.Sqrt(3) / 2
		return 1.5*s*cols + s/2, 2*b*rows + b, nil
	case grid.Triangular:
		return (cols + 1) * s / 2, rows * s * math.Sqrt(3) / 2, nil
	}
	return 0, 0, errors.Wrapf(ErrUnsupportedTopology, "%v", g.Kind())
}
