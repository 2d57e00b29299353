// Package mask provides the exclusion layer of a maze: a ragged boolean
// bitmap where true marks a cell that is removed from the maze.
//
// Masks are immutable once built. They are produced from a bitmap, from a
// text picture or by down-sampling a painted pixel canvas, and are applied
// to a grid of matching shape with grid.(*Grid).ApplyMask.
package mask

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrDimensionMismatch indicates a mask whose shape differs from the grid.
	ErrDimensionMismatch = errors.New("mask: dimensions do not match the grid")
	// ErrEmptyBitmap indicates a bitmap with no rows.
	ErrEmptyBitmap = errors.New("mask: bitmap has no rows")
	// ErrBadGlyph indicates a text mask character other than 'X', '.' or ' '.
	ErrBadGlyph = errors.New("mask: unexpected character")
	// ErrBadResolution indicates a non-positive down-sampling resolution.
	ErrBadResolution = errors.New("mask: resolution must be positive")
)

// Mask is an immutable ragged exclusion bitmap.
type Mask struct {
	rows  [][]bool
	count int
}

// New deep-copies bitmap; bitmap[r][c] == true excludes cell (r, c).
func New(bitmap [][]bool) (*Mask, error) {
	if len(bitmap) == 0 {
		return nil, ErrEmptyBitmap
	}
	m := &Mask{rows: make([][]bool, len(bitmap))}
	for r, row := range bitmap {
		m.rows[r] = make([]bool, len(row))
		copy(m.rows[r], row)
		for _, v := range row {
			if v {
				m.count++
			}
		}
	}
	return m, nil
}

// FromText parses a picture where 'X' marks an excluded cell and '.' or ' '
// an included one. Lines may differ in length; a trailing newline is
// ignored.
//
//	X..X
//	....
//	X..X
func FromText(text string) (*Mask, error) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyBitmap
	}
	lines := strings.Split(text, "\n")
	bitmap := make([][]bool, len(lines))
	for r, line := range lines {
		bitmap[r] = make([]bool, 0, len(line))
		for c, ch := range line {
			switch ch {
			case 'X', 'x':
				bitmap[r] = append(bitmap[r], true)
			case '.', ' ':
				bitmap[r] = append(bitmap[r], false)
			default:
				return nil, errors.Wrapf(ErrBadGlyph, "%q at line %d column %d", ch, r+1, c+1)
			}
		}
	}
	return New(bitmap)
}

// FromPixels down-samples a painted canvas (true = painted) by sampling the
// top-left pixel of each resolution×resolution block. Painted pixels become
// masked cells; use Invert when paint marks the cells to keep.
func FromPixels(pix [][]bool, resolution int) (*Mask, error) {
	if resolution < 1 {
		return nil, errors.Wrapf(ErrBadResolution, "got %d", resolution)
	}
	if len(pix) == 0 {
		return nil, ErrEmptyBitmap
	}
	rows := (len(pix) + resolution - 1) / resolution
	bitmap := make([][]bool, rows)
	for r := range bitmap {
		src := pix[r*resolution]
		cols := (len(src) + resolution - 1) / resolution
		bitmap[r] = make([]bool, cols)
		for c := range bitmap[r] {
			bitmap[r][c] = src[c*resolution]
		}
	}
	return New(bitmap)
}

// Invert returns a mask with every flag flipped.
func (m *Mask) Invert() *Mask {
	out := &Mask{rows: make([][]bool, len(m.rows))}
	for r, row := range m.rows {
		out.rows[r] = make([]bool, len(row))
		for c, v := range row {
			out.rows[r][c] = !v
			if !v {
				out.count++
			}
		}
	}
	return out
}

// AppliesTo reports whether cell (row, col) is excluded. Cells outside the
// bitmap are not.
func (m *Mask) AppliesTo(row, col int) bool {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return false
	}
	return m.rows[row][col]
}

// Rows is the number of bitmap rows.
func (m *Mask) Rows() int { return len(m.rows) }

// RowLen is the length of row r; 0 when out of range.
func (m *Mask) RowLen(r int) int {
	if r < 0 || r >= len(m.rows) {
		return 0
	}
	return len(m.rows[r])
}

// Count is the number of excluded cells.
func (m *Mask) Count() int { return m.count }

// Fits checks that the mask has exactly rows rows and that every row length
// matches rowLen.
func (m *Mask) Fits(rows int, rowLen func(int) int) error {
	if len(m.rows) != rows {
		return errors.Wrapf(ErrDimensionMismatch, "mask has %d rows, grid %d", len(m.rows), rows)
	}
	for r, row := range m.rows {
		if want := rowLen(r); len(row) != want {
			return errors.Wrapf(ErrDimensionMismatch, "row %d: mask has %d cells, grid %d", r, len(row), want)
		}
	}
	return nil
}

// Bitmap returns a deep copy of the flags.
func (m *Mask) Bitmap() [][]bool {
	out := make([][]bool, len(m.rows))
	for r, row := range m.rows {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// String renders the mask in the FromText format.
func (m *Mask) String() string {
	var b strings.Builder
	for r, row := range m.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
