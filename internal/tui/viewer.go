// Package tui is an interactive terminal maze viewer built on tcell.
//
// Keys: n new seed, a next algorithm, c toggle colors, b braid, q or Esc
// quit.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
)

// braidRatio is the dead-end removal probability of the b key.
const braidRatio = 0.5

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Viewer owns one screen and one maze.
type Viewer struct {
	screen   tcell.Screen
	cfg      config.Config
	m        *maze.Maze
	colorize bool
	braided  int
	err      error
}

// New builds the first maze from cfg. Only rectangular grids can be shown.
func New(screen tcell.Screen, cfg config.Config) (*Viewer, error) {
	if cfg.Topology != grid.Rectangular {
		return nil, errors.Wrapf(render.ErrUnsupportedTopology, "viewer shows rectangular grids, got %v", cfg.Topology)
	}
	v := &Viewer{screen: screen, cfg: cfg, colorize: cfg.Color}
	if err := v.rebuild(); err != nil {
		return nil, err
	}
	return v, nil
}

// Config is the setting the current maze was built from.
func (v *Viewer) Config() config.Config { return v.cfg }

// Maze is the maze on screen.
func (v *Viewer) Maze() *maze.Maze { return v.m }

// Colorize reports whether distances are painted.
func (v *Viewer) Colorize() bool { return v.colorize }

func (v *Viewer) rebuild() error {
	m, err := v.cfg.Build(nil)
	if err != nil {
		return err
	}
	v.m, v.braided = m, 0
	return nil
}

// Handle applies one event and reports whether the viewer should quit.
// Generation failures are kept for the status line, not returned.
func (v *Viewer) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		v.err = nil
		switch ev.Rune() {
		case 'q':
			return true
		case 'n':
			v.cfg.Seed++
			v.err = v.rebuild()
		case 'a':
			algos := carve.Algorithms()
			v.cfg.Algorithm = algos[(int(v.cfg.Algorithm)+1)%len(algos)]
			v.err = v.rebuild()
		case 'c':
			v.colorize = !v.colorize
		case 'b':
			n, err := v.m.Braid(braidRatio, v.cfg.Seed+int64(v.braided)+1)
			v.braided += n
			v.err = err
		}
	}
	return false
}

// Draw paints the maze and a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	txt, err := v.m.ASCII(false)
	if err != nil {
		v.err = err
	}
	lines := strings.Split(txt, "\n")
	for y, line := range lines {
		for x, r := range line {
			style := tcell.StyleDefault
			if r != ' ' {
				style = wallStyle
			}
			v.screen.SetContent(x, y, r, nil, style)
		}
	}
	if v.colorize {
		v.paintDistances()
	}

	_, h := v.screen.Size()
	status := fmt.Sprintf(" %s seed=%d links=%d dead_ends=%d braided=%d | n a c b q ",
		v.cfg.Algorithm, v.cfg.Seed, v.m.Grid().LinkCount(), len(v.m.Grid().DeadEnds()), v.braided)
	y := min(len(lines)+1, h-1)
	v.text(0, y, status, statusStyle)
	if v.err != nil {
		v.text(0, min(y+1, h-1), v.err.Error(), errorStyle)
	}
	v.screen.Show()
}

// paintDistances shades each cell body with its distance color.
func (v *Viewer) paintDistances() {
	f, err := v.m.Distances()
	if err != nil {
		v.err = err
		return
	}
	for _, a := range v.m.Grid().Cells() {
		in, ok := f.Intensity(a)
		if !ok {
			continue
		}
		c := render.Shade(in)
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		y := 2*a.Row + 1
		for x := 4*a.Col + 1; x <= 4*a.Col+3; x++ {
			v.screen.SetContent(x, y, ' ', nil, style)
		}
		// Open east sides join the two bodies.
		if e := (grid.Address{Row: a.Row, Col: a.Col + 1}); v.m.Grid().IsLinked(a, e) {
			v.screen.SetContent(4*a.Col+4, y, ' ', nil, style)
		}
	}
}

func (v *Viewer) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Run draws and handles events until the user quits.
func (v *Viewer) Run() error {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.Handle(ev) {
			return nil
		}
	}
}
