// internal/sweep/sweep.go
package sweep

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"lgsim/core/polymer"
	"lgsim/core/randsrc"
	"lgsim/internal/runutil"
)

// Runner executes one sweep.
type Runner struct {
	Gen    polymer.Config
	Sweep  Config
	Source *randsrc.Source    // nil → time-seeded
	Log    logrus.FieldLogger // nil → discarded
}

// Run visits every length of the sweep. Length i draws from Source.Stream(i),
// so for a given seed the result does not depend on Threads. The first
// failing length cancels the rest and its error is returned; no partial
// result is handed back.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if err := r.Sweep.Validate(); err != nil {
		return Result{}, err
	}
	src := r.Source
	if src == nil {
		src = randsrc.NewTimeSeeded()
	}
	log := r.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	thr := runutil.EffectiveThreads(r.Sweep.Threads)

	lengths := r.Sweep.Lengths()
	points := make([]Point, len(lengths))
	begin := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(thr)
	for i, n := range lengths {
		g.Go(func() error {
			gen := polymer.NewGenerator(r.Gen, src.Stream(uint64(i)))
			b, err := RunBatch(gctx, gen, n, r.Sweep.Trials, nil)
			if err != nil {
				return err
			}
			pt, err := b.Point()
			if err != nil {
				return fmt.Errorf("length %d: %w", n, err)
			}
			points[i] = pt
			log.WithFields(logrus.Fields{
				"length":     n,
				"l_run_mean": pt.LRun.Mean,
				"g_run_mean": pt.GRun.Mean,
			}).Debug("length done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	// errgroup only reports worker errors; a cancel that lands after the last
	// worker finished still aborts the run.
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	log.WithFields(logrus.Fields{
		"points":  len(points),
		"threads": thr,
		"elapsed": time.Since(begin).Round(time.Millisecond).String(),
	}).Info("sweep complete")

	return Result{Gen: r.Gen, Sweep: r.Sweep, Seed: src.Seed(), Points: points}, nil
}
