// internal/sampleapp/app.go
package sampleapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"lgsim/core/polymer"
	"lgsim/internal/app"
	"lgsim/internal/clibase"
	"lgsim/internal/logging"
	"lgsim/internal/output"
	"lgsim/internal/samplecli"
	"lgsim/internal/sweep"
	"lgsim/internal/version"
)

// RunContext generates many polymers of one length and prints their dimer
// statistics.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := samplecli.NewFlagSet("lgsim-sample")
	fs.SetOutput(io.Discard)

	opts, err := samplecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return app.Flush(outw, stderr, app.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return app.ExitConfig
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "lgsim-sample version %s\n", version.Version)
		return app.Flush(outw, stderr, app.ExitOK)
	}
	if opts.Examples {
		clibase.PrintExamples(outw, "lgsim-sample", examples)
		return app.Flush(outw, stderr, app.ExitOK)
	}

	log, err := logging.New(stderr, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return app.ExitConfig
	}
	src := app.Source(opts.Seed)
	log.WithFields(logrus.Fields{
		"length": opts.Length,
		"trials": opts.Trials,
		"g_prob": opts.GProb,
		"fixed":  opts.Fixed,
		"dimers": opts.Dimers,
		"seed":   src.Seed(),
	}).Info("sampling")

	rep, err := sample(parent, opts, polymer.NewGenerator(opts.Gen(), src.Stream(0)))
	if err != nil {
		return app.RunError(stderr, err)
	}
	rep.Gen, rep.Seed = opts.Gen(), src.Seed()

	if opts.Output == "json" {
		err = output.WriteSampleJSON(outw, rep)
	} else {
		err = output.WriteSampleText(outw, rep)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return app.ExitRuntime
	}
	return app.Flush(outw, stderr, app.ExitOK)
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func sample(ctx context.Context, opts samplecli.Options, gen *polymer.Generator) (output.SampleReport, error) {
	var (
		comp compositionTally
		dump *bufio.Writer
		fh   *os.File
	)
	if opts.Polymers != "" {
		var err error
		if fh, err = os.Create(opts.Polymers); err != nil {
			return output.SampleReport{}, fmt.Errorf("polymers file: %w", err)
		}
		dump = bufio.NewWriter(fh)
	}

	b, err := sweep.RunBatch(ctx, gen, opts.Length, opts.Trials, func(_ int, p polymer.Polymer) error {
		comp.add(p)
		if dump == nil {
			return nil
		}
		if _, err := dump.WriteString(p.String()); err != nil {
			return err
		}
		return dump.WriteByte('\n')
	})
	if fh != nil {
		if err == nil {
			err = dump.Flush()
		}
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(opts.Polymers)
		}
	}
	if err != nil {
		return output.SampleReport{}, err
	}
	return buildReport(b, comp)
}

func examples(w io.Writer) {
	_, _ = fmt.Fprintln(w, "  # 10000 fixed-composition 100-mers, summary to stdout")
	_, _ = fmt.Fprintln(w, "  lgsim-sample")
	_, _ = fmt.Fprintln(w, "  # keep the polymers for inspection")
	_, _ = fmt.Fprintln(w, "  lgsim-sample --length 48 --polymers data/sample_polymers_48.out")
}
