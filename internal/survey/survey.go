// Package survey carves many mazes per algorithm in parallel and reports
// their average texture: dead ends, longest path and carving effort.
package survey

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/distance"
	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/maze"
)

// Result aggregates one algorithm.
type Result struct {
	Algorithm carve.Algorithm `json:"algorithm"`
	Mazes     int             `json:"mazes"`
	Cells     int             `json:"cells"`
	DeadEnds  float64         `json:"dead_ends"`
	Longest   float64         `json:"longest"`
	Steps     float64         `json:"steps"`
}

// DeadEndRatio is the mean share of cells that are dead ends.
func (r Result) DeadEndRatio() float64 {
	if r.Cells == 0 {
		return 0
	}
	return r.DeadEnds / float64(r.Cells)
}

type sums struct {
	mu                       sync.Mutex
	n                        int
	deadEnds, longest, steps int
	cells                    int
}

// Run carves n mazes per algorithm in algos (all when empty) from cfg,
// seeds cfg.Seed .. cfg.Seed+n-1, with at most parallelism workers
// (GOMAXPROCS when <= 0). A cancelled ctx stops scheduling and is
// returned as the error.
func Run(ctx context.Context, cfg config.Config, n, parallelism int, algos ...carve.Algorithm) ([]Result, error) {
	if n < 1 {
		return nil, errors.Wrapf(config.ErrInvalid, "survey size %d", n)
	}
	if len(algos) == 0 {
		algos = carve.Algorithms()
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	acc := make([]sums, len(algos))
	var wg errgroup.Group
	wg.SetLimit(parallelism)
	for ai, algo := range algos {
		for i := range n {
			if ctx.Err() != nil {
				break
			}
			wg.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				c := cfg
				c.Algorithm, c.Seed = algo, cfg.Seed+int64(i)
				return measure(ctx, c, &acc[ai])
			})
		}
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Result, len(algos))
	for i, algo := range algos {
		s := &acc[i]
		k := float64(s.n)
		out[i] = Result{
			Algorithm: algo,
			Mazes:     s.n,
			Cells:     s.cells,
			DeadEnds:  float64(s.deadEnds) / k,
			Longest:   float64(s.longest) / k,
			Steps:     float64(s.steps) / k,
		}
	}
	return out, nil
}

func measure(ctx context.Context, c config.Config, s *sums) error {
	m, err := c.Build(nil)
	if err != nil {
		return errors.WithMessagef(err, "seed %d", c.Seed)
	}
	g := m.Grid()
	root, err := maze.DefaultRoot(g)
	if err != nil {
		return err
	}
	path, err := distance.LongestPath(g, root, distance.WithContext(ctx))
	if err != nil {
		return err
	}
	stats := m.Stats()
	klog.V(2).Infof("survey %s seed=%d: %d dead ends, longest %d", c.Algorithm, c.Seed, len(g.DeadEnds()), len(path)-1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	s.cells = stats.Cells
	s.deadEnds += len(g.DeadEnds())
	s.longest += len(path) - 1
	s.steps += stats.Steps
	return nil
}
