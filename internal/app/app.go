// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"lgsim/core/randsrc"
	"lgsim/core/stats"
	"lgsim/internal/cli"
	"lgsim/internal/clibase"
	"lgsim/internal/logging"
	"lgsim/internal/runutil"
	"lgsim/internal/sweep"
	"lgsim/internal/version"
	"lgsim/internal/writers"
)

// Exit codes shared by the lgsim tools.
const (
	ExitOK       = 0
	ExitConfig   = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// RunContext parses argv, runs the sweep and writes its artifacts.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("lgsim")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return Flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitConfig
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "lgsim version %s\n", version.Version)
		return Flush(outw, stderr, ExitOK)
	}
	if opts.Examples {
		clibase.PrintExamples(outw, "lgsim", examples)
		return Flush(outw, stderr, ExitOK)
	}

	log, err := logging.New(stderr, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitConfig
	}

	src := Source(opts.Seed)
	sc := opts.Sweep()
	if idle := runutil.IdleWorkers(sc.Threads, len(sc.Lengths())); idle > 0 && sc.Threads > 0 {
		log.Warnf("%d of %d workers have no sweep length to run", idle, sc.Threads)
	}
	log.WithFields(logrus.Fields{
		"g_prob": opts.GProb,
		"fixed":  opts.Fixed,
		"dimers": opts.Dimers,
		"start":  sc.Start,
		"end":    sc.End,
		"step":   sc.Step,
		"trials": sc.Trials,
		"seed":   src.Seed(),
	}).Info("starting sweep")

	r := sweep.Runner{Gen: opts.Gen(), Sweep: sc, Source: src, Log: log}
	res, err := r.Run(parent)
	if err != nil {
		return RunError(stderr, err)
	}

	paths, err := writers.WriteSweep(opts.Format, opts.OutDir, res, writers.Options{
		Precision: opts.Precision,
		Header:    opts.Header,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error: write output:", err)
		return ExitRuntime
	}
	log.WithField("files", len(paths)).Info("output written")

	_, _ = fmt.Fprintln(outw, len(res.Points))
	for _, p := range paths {
		_, _ = fmt.Fprintln(outw, p)
	}
	return Flush(outw, stderr, ExitOK)
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Source builds the run's random source: seed 0 selects a time-based seed.
func Source(seed uint64) *randsrc.Source {
	if seed == 0 {
		return randsrc.NewTimeSeeded()
	}
	return randsrc.New(seed)
}

// RunError reports a failed run and maps it to an exit code.
func RunError(stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, sweep.ErrInvalidConfig):
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitConfig
	case errors.Is(err, stats.ErrDomain):
		_, _ = fmt.Fprintln(stderr, "error: statistics undefined:", err)
		return ExitRuntime
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
}

// Flush drains buffered stdout. A closed downstream pipe is not an error.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return code
}

func examples(w io.Writer) {
	_, _ = fmt.Fprintln(w, "  # reference sweep (40..3000 step 8, 10000 trials) into ./data")
	_, _ = fmt.Fprintln(w, "  lgsim")
	_, _ = fmt.Fprintln(w, "  # fixed-composition ring-opening model, reproducible")
	_, _ = fmt.Fprintln(w, "  lgsim --fixed --dimers --seed 42")
	_, _ = fmt.Fprintln(w, "  # short sweep as a single JSON document")
	_, _ = fmt.Fprintln(w, "  lgsim --start 40 --end 200 --trials 1000 --format json -o out")
}
