// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lgsim/internal/clibase"
	"lgsim/internal/sweep"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaultsMatchReferenceStudy(t *testing.T) {
	o := mustParse(t)
	if o.GProb != 0.25 || o.Fixed || o.Dimers {
		t.Errorf("bad generation defaults %+v", o.Common)
	}
	if got, want := o.Sweep(), sweep.Default(); got != want {
		t.Errorf("sweep defaults: got %+v want %+v", got, want)
	}
	if o.OutDir != "data" || o.Format != "text" || o.Precision != 6 || !o.Header {
		t.Errorf("bad output defaults %+v", o)
	}
}

func TestModeFlags(t *testing.T) {
	o := mustParse(t, "--g_prob", "0.5", "--fixed", "--dimers=1")
	if o.GProb != 0.5 || !o.Fixed || !o.Dimers {
		t.Errorf("bad mode parse %+v", o.Common)
	}
	o = mustParse(t, "--fixed=false", "--dimers=0")
	if o.Fixed || o.Dimers {
		t.Errorf("explicit false ignored %+v", o.Common)
	}
}

func TestSweepRange(t *testing.T) {
	o := mustParse(t, "--start", "8", "--end", "64", "--step", "4", "-n", "20", "-o", "out", "--format", "json")
	s := o.Sweep()
	if s.Start != 8 || s.End != 64 || s.Step != 4 || s.Trials != 20 {
		t.Errorf("bad sweep %+v", s)
	}
	if o.OutDir != "out" || o.Format != "json" {
		t.Errorf("bad output %+v", o)
	}
}

func TestErrorInvalidInlineBool(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--fixed=maybe"})
	if !errors.Is(err, clibase.ErrConfig) {
		t.Fatalf("want ErrConfig, got %v", err)
	}
}

func TestErrorUnknownOption(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--bogus"})
	if !errors.Is(err, clibase.ErrConfig) {
		t.Fatalf("want ErrConfig, got %v", err)
	}
}

func TestErrorBadRange(t *testing.T) {
	for _, args := range [][]string{
		{"--step", "0"},
		{"--start", "100", "--end", "50"},
		{"--start", "-8"},
		{"--format", "xml"},
		{"--precision", "-2"},
		{"--out-dir", ""},
		{"--end", "9223372036854775807"},
		{"--start", "0", "--end", "16777216", "--step", "1"},
	} {
		_, err := ParseArgs(newFS(), args)
		if !errors.Is(err, clibase.ErrConfig) {
			t.Fatalf("%v: want ErrConfig, got %v", args, err)
		}
	}
}

func TestRangeErrorKeepsSweepSentinel(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--step", "-1"})
	if !errors.Is(err, sweep.ErrInvalidConfig) {
		t.Fatalf("want sweep.ErrInvalidConfig in chain, got %v", err)
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version", "--step", "0"})
	if err != nil || !o.Version {
		t.Fatalf("version should short-circuit: %+v %v", o, err)
	}
}

func TestConfigFileSweepAndOutput(t *testing.T) {
	p := filepath.Join(t.TempDir(), "run.yaml")
	yml := "sweep:\n  start: 16\n  end: 32\n  step: 16\noutput:\n  format: tsv\n  dir: results\n"
	if err := os.WriteFile(p, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, "--config", p, "--end", "48")
	if o.Start != 16 || o.End != 48 || o.Step != 16 {
		t.Errorf("file/flag layering wrong: %+v", o.Sweep())
	}
	if o.Format != "tsv" || o.OutDir != "results" {
		t.Errorf("output section not applied: %+v", o)
	}
}
