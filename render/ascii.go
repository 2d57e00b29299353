package render

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/distance"
	"github.com/katalvlaran/lvlmaze/grid"
)

// ASCII draws a rectangular maze as text: '+' corners, "---" and '|'
// walls, three characters per cell body. With a field, each reached cell
// shows its distance in base 36 (0-9, then a-z; '#' beyond 35). Masked
// cells are left blank. Trailing spaces are trimmed.
//
//	+---+---+
//	| 0   1 |
//	+---+   +
//	| 3   2 |
//	+---+---+
func ASCII(g Source, field *distance.Field) (string, error) {
	if g.Kind() != grid.Rectangular {
		return "", errors.Wrapf(ErrUnsupportedTopology, "ascii needs a rectangular grid, got %v", g.Kind())
	}
	rows, cols := g.Rows(), g.RowLen(0)
	canvas := make([][]byte, 2*rows+1)
	for i := range canvas {
		canvas[i] = []byte(strings.Repeat(" ", 4*cols+1))
	}
	hline := func(line, col int) { copy(canvas[line][4*col+1:], "---") }

	p := &projector{g: g}
	for _, a := range g.Cells() {
		top, mid, bot := 2*a.Row, 2*a.Row+1, 2*a.Row+2
		left, right := 4*a.Col, 4*a.Col+4
		for _, l := range []int{top, bot} {
			canvas[l][left], canvas[l][right] = '+', '+'
		}
		if p.boundary(a, grid.North) {
			hline(top, a.Col)
		}
		if p.boundary(a, grid.West) {
			canvas[mid][left] = '|'
		}
		if p.closed(a, grid.East) {
			canvas[mid][right] = '|'
		}
		if p.closed(a, grid.South) {
			hline(bot, a.Col)
		}
		if field != nil {
			if d, ok := field.Distance(a); ok {
				canvas[mid][left+2] = base36(d)
			}
		}
	}

	var b strings.Builder
	for i, line := range canvas {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(line), " "))
	}
	return b.String(), nil
}

func base36(d int) byte {
	switch {
	case d < 10:
		return byte('0' + d)
	case d < 36:
		return byte('a' + d - 10)
	}
	return '#'
}
