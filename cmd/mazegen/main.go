// mazegen carves one maze and writes it as text, SVG or JSON, or surveys
// every algorithm over many seeds.
//
//	mazegen -rows 16 -cols 24 -algorithm wilson -format svg -out maze.svg
//	mazegen -config "topology=polar,rows=10,braid=0.3" -format json
//	mazegen -survey 200 -rows 20 -cols 20
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvlmaze/internal/cli"
	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/internal/survey"
	"github.com/katalvlaran/lvlmaze/mask"
	"github.com/katalvlaran/lvlmaze/render"
)

// Flags named after a config key override -config.
var (
	_ = flag.Int("rows", 12, "Rows, or rings for polar grids.")
	_ = flag.Int("cols", 12, "Columns; ignored for polar grids.")
	_ = flag.String("topology", "rectangular", "rectangular, polar, hexagonal or triangular.")
	_ = flag.String("algorithm", "recursive-backtracker", "Carving algorithm: binary-tree, sidewinder, aldous-broder, wilson, hunt-and-kill or recursive-backtracker.")
	_ = flag.Int("seed", 1, "Random seed; 0 means 1.")
	_ = flag.Float64("braid", 0, "Probability in [0, 1] of removing each dead end.")
	_ = flag.Bool("color", true, "Color output by distance from the middle cell.")
	_ = flag.Float64("cell", 20, "Cell size in SVG/JSON units.")
	_ = flag.Int("budget", 0, "Carving step budget; 0 means unbounded.")
	_ = flag.String("format", "ascii", "ascii, svg or json.")

	flagConfig      = flag.String("config", "", `Settings as "key=value,...", e.g. "rows=8,topology=hex".`)
	flagMask        = flag.String("mask", "", "File with a text mask: 'X' excludes a cell, '.' keeps it.")
	flagOut         = flag.String("out", "", "Output file; stdout when empty.")
	flagSurvey      = flag.Int("survey", 0, "If > 0, carve this many mazes per algorithm and print statistics.")
	flagParallelism = flag.Int("parallelism", 0, "Survey workers; 0 means GOMAXPROCS.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg, err := config.Parse(*flagConfig)
	if err != nil {
		klog.Exitf("-config: %v", err)
	}
	if err := cfg.ApplyFlags(flag.CommandLine); err != nil {
		klog.Exitf("flags: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	printer := cli.New(os.Stdout, cfg.Color)
	if *flagSurvey > 0 {
		klog.Infof("surveying %d mazes per algorithm on %s %dx%d", *flagSurvey, cfg.Topology, cfg.Rows, cfg.Cols)
		results, err := survey.Run(ctx, cfg, *flagSurvey, *flagParallelism)
		if err != nil {
			klog.Exitf("survey: %v", err)
		}
		printer.Survey(results)
		return
	}

	var bitmap [][]bool
	if *flagMask != "" {
		text := must.M1(os.ReadFile(*flagMask))
		m, err := mask.FromText(string(text))
		if err != nil {
			klog.Exitf("-mask %s: %v", *flagMask, err)
		}
		bitmap = m.Bitmap()
	}

	m, err := cfg.Build(bitmap)
	if err != nil {
		printer.Error(err)
		os.Exit(1)
	}
	klog.V(1).Infof("carved %+v", m.Stats())

	w := io.Writer(os.Stdout)
	if *flagOut != "" {
		f := must.M1(os.Create(*flagOut))
		defer func() { must.M(f.Close()) }()
		w = f
	}

	switch cfg.Format {
	case config.ASCII:
		txt, err := m.ASCII(cfg.Color)
		if err != nil {
			klog.Exitf("%v", err)
		}
		if *flagOut != "" {
			must.M1(fmt.Fprintln(w, txt))
			break
		}
		printer.Maze(txt)
		printer.Stats(m.Stats(), len(m.Grid().DeadEnds()))
	case config.SVG:
		prims := must.M1(m.Render(cfg.Color, cfg.RenderOptions()...))
		must.M(render.WriteSVG(w, prims, cfg.RenderOptions()...))
	case config.JSON:
		prims := must.M1(m.Render(cfg.Color, cfg.RenderOptions()...))
		width, height := must.M2(render.Bounds(m.Grid(), cfg.RenderOptions()...))
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		must.M(enc.Encode(map[string]any{
			"config":     cfg,
			"stats":      m.Stats(),
			"dead_ends":  len(m.Grid().DeadEnds()),
			"width":      width,
			"height":     height,
			"primitives": prims,
		}))
	}
}
