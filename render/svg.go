package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// extent returns the bounding box of prims; arcs count their full circle.
func extent(prims []Primitive) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	for _, p := range prims {
		if p.Kind == Arc {
			grow(p.Center.X-p.Radius, p.Center.Y-p.Radius)
			grow(p.Center.X+p.Radius, p.Center.Y+p.Radius)
			continue
		}
		for _, pt := range p.Points {
			grow(pt.X, pt.Y)
		}
	}
	if len(prims) == 0 {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

// WriteSVG encodes prims as a standalone SVG document. Fills are painted
// with Shade, walls as black strokes.
func WriteSVG(w io.Writer, prims []Primitive, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	x0, y0, x1, y1 := extent(prims)
	pad := o.Padding
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(x0-pad), num(y0-pad), num(x1-x0+2*pad), num(y1-y0+2*pad), num(x1-x0+2*pad), num(y1-y0+2*pad))
	fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="white"/>`+"\n",
		num(x0-pad), num(y0-pad), num(x1-x0+2*pad), num(y1-y0+2*pad))

	fmt.Fprintln(bw, `<g stroke="none">`)
	for _, p := range prims {
		if p.Kind == Polygon {
			fmt.Fprintf(bw, `<polygon points="%s" fill="%s"/>`+"\n", points(p.Points), Hex(Shade(p.Fill)))
		}
	}
	fmt.Fprintln(bw, `</g>`)

	fmt.Fprintf(bw, `<g stroke="black" stroke-width="%s" stroke-linecap="round" fill="none">`+"\n", num(o.StrokeWidth))
	for _, p := range prims {
		switch p.Kind {
		case Segment:
			fmt.Fprintf(bw, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
				num(p.Points[0].X), num(p.Points[0].Y), num(p.Points[1].X), num(p.Points[1].Y))
		case Arc:
			writeArc(bw, p)
		}
	}
	fmt.Fprintln(bw, `</g>`)
	fmt.Fprintln(bw, `</svg>`)
	return bw.Flush()
}

// writeArc emits a circle for full turns and an elliptical arc path
// otherwise. Angles grow clockwise, which is SVG's sweep-flag 1.
func writeArc(w io.Writer, p Primitive) {
	sweep := p.End - p.Start
	if sweep >= 2*math.Pi-1e-9 {
		fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s"/>`+"\n", num(p.Center.X), num(p.Center.Y), num(p.Radius))
		return
	}
	from := polar(p.Center, p.Radius, p.Start)
	to := polar(p.Center, p.Radius, p.End)
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	fmt.Fprintf(w, `<path d="M %s %s A %s %s 0 %d 1 %s %s"/>`+"\n",
		num(from.X), num(from.Y), num(p.Radius), num(p.Radius), large, num(to.X), num(to.Y))
}

func points(pts []Point) string {
	parts := make([]string, len(pts))
	for i, pt := range pts {
		parts[i] = num(pt.X) + "," + num(pt.Y)
	}
	return strings.Join(parts, " ")
}

// num prints a coordinate with at most three decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
