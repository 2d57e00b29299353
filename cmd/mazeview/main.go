// mazeview browses rectangular mazes in the terminal.
//
// Keys: n new seed, a next algorithm, c toggle colors, b braid, q or Esc
// quit.
package main

import (
	"flag"

	"github.com/gdamore/tcell/v2"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/internal/parameters"
	"github.com/katalvlaran/lvlmaze/internal/tui"
)

var (
	_ = flag.Int("rows", 10, "Rows.")
	_ = flag.Int("cols", 16, "Columns.")
	_ = flag.String("algorithm", "recursive-backtracker", "Initial carving algorithm.")
	_ = flag.Int("seed", 1, "Initial random seed.")
	_ = flag.Bool("color", true, "Start with distance colors.")

	flagConfig = flag.String("config", "", `Settings as "key=value,...".`)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg := config.Default()
	cfg.Rows, cfg.Cols = 10, 16
	if err := cfg.Apply(parameters.NewFromConfigString(*flagConfig)); err != nil {
		klog.Exitf("-config: %v", err)
	}
	if err := cfg.ApplyFlags(flag.CommandLine); err != nil {
		klog.Exitf("flags: %v", err)
	}

	screen := must.M1(tcell.NewScreen())
	must.M(screen.Init())
	viewer, err := tui.New(screen, cfg)
	if err != nil {
		screen.Fini()
		klog.Exitf("%v", err)
	}
	err = viewer.Run()
	screen.Fini()
	if err != nil {
		klog.Exitf("%v", err)
	}
}
