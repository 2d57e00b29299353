// Package cli prints mazes and statistics to a terminal with lipgloss.
package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/internal/survey"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

// Printer writes to w, centering blocks when w is a terminal.
type Printer struct {
	w     io.Writer
	color bool
	width int

	wall, mark, title, label, value, fail lipgloss.Style
}

// New returns a Printer. Without color every style is plain.
func New(w io.Writer, color bool) *Printer {
	p := &Printer{w: w, color: color}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.width, _, _ = term.GetSize(int(f.Fd()))
	}
	plain := lipgloss.NewStyle()
	p.wall, p.mark, p.title, p.label, p.value, p.fail = plain, plain, plain, plain, plain, plain
	if color {
		p.wall = plain.Foreground(lipgloss.Color("12"))
		p.mark = plain.Foreground(lipgloss.Color("11")).Bold(true)
		p.title = plain.Background(lipgloss.Color("12")).Foreground(lipgloss.Color("0")).Padding(0, 1).Bold(true)
		p.label = plain.Foreground(lipgloss.Color("8"))
		p.value = plain.Bold(true)
		p.fail = plain.Foreground(lipgloss.Color("9")).Bold(true)
	}
	return p
}

// Width is the terminal width, or 0 when w is not a terminal.
func (p *Printer) Width() int { return p.width }

func (p *Printer) printCentered(block string) {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max(0, (p.width-blockWidth)/2)
	for _, line := range lines {
		if line == "" {
			fmt.Fprintln(p.w)
			continue
		}
		fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// Maze prints an ASCII maze, coloring walls and distance marks.
func (p *Printer) Maze(text string) {
	if !p.color {
		p.printCentered(text)
		return
	}
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range line {
			switch {
			case r == '+' || r == '-' || r == '|':
				b.WriteString(p.wall.Render(string(r)))
			case r != ' ':
				b.WriteString(p.mark.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
	}
	p.printCentered(b.String())
}

// Stats prints a one-line summary of a carving run.
func (p *Printer) Stats(s carve.Stats, deadEnds int) {
	field := func(k string, v any) string {
		return p.label.Render(k+"=") + p.value.Render(fmt.Sprint(v))
	}
	line := strings.Join([]string{
		p.title.Render(s.Algorithm.String()),
		field("cells", s.Cells),
		field("links", s.Links),
		field("dead_ends", deadEnds),
		field("steps", s.Steps),
		field("stitched", s.Stitched),
	}, " ")
	p.printCentered(line)
}

// Survey prints one row per algorithm.
func (p *Printer) Survey(results []survey.Result) {
	header := fmt.Sprintf("%-22s %6s %10s %8s %10s %12s", "algorithm", "mazes", "dead ends", "ratio", "longest", "steps")
	rows := []string{p.title.Render(header)}
	for _, r := range results {
		rows = append(rows, fmt.Sprintf("%-22s %6d %10.1f %7.1f%% %10.1f %12.0f",
			r.Algorithm, r.Mazes, r.DeadEnds, 100*r.DeadEndRatio(), r.Longest, r.Steps))
	}
	p.printCentered(strings.Join(rows, "\n"))
}

// Error prints err in the failure style.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.fail.Render("error:"), err)
}
