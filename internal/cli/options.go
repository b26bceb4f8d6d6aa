// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"lgsim/internal/clibase"
	"lgsim/internal/config"
	"lgsim/internal/output"
	"lgsim/internal/sweep"
	"lgsim/internal/writers"
)

// Options holds all lgsim flags.
type Options struct {
	clibase.Common

	// Sweep
	Start int
	End   int
	Step  int

	// Output
	OutDir    string
	Format    string
	Precision int
	Header    bool // true unless --no-header
}

// Sweep returns the sweep range and work split.
func (o Options) Sweep() sweep.Config {
	return sweep.Config{Start: o.Start, End: o.End, Step: o.Step, Trials: o.Trials, Threads: o.Threads}
}

// NewFlagSet returns a ContinueOnError FlagSet with lgsim's help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "L/G copolymer dimer-statistics sweep", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nSweep:")
		fmt.Fprintf(out, "      --start int             First degree of polymerization [%s]\n", def("start"))
		fmt.Fprintf(out, "      --end int               Last degree of polymerization (inclusive) [%s]\n", def("end"))
		fmt.Fprintf(out, "      --step int              Length step [%s]\n", def("step"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out-dir dir           Output directory [%s]\n", def("out-dir"))
		fmt.Fprintf(out, "      --format string         text | tsv | json [%s]\n", def("format"))
		fmt.Fprintf(out, "      --precision int         Significant digits (-1=shortest) [%s]\n", def("precision"))
		fmt.Fprintf(out, "      --no-header             Suppress TSV header line [%s]\n", def("no-header"))
	})
	return fs
}

// ParseArgs registers and parses all flags and returns validated Options.
// Every rejection wraps clibase.ErrConfig; -h returns flag.ErrHelp.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{
		Common: clibase.Common{
			GProb:    0.25,
			Trials:   sweep.DefaultTrials,
			LogLevel: "info",
		},
	}
	clibase.Register(fs, &opt.Common)

	fs.IntVar(&opt.Start, "start", sweep.DefaultStart, "first length")
	fs.IntVar(&opt.End, "end", sweep.DefaultEnd, "last length (inclusive)")
	fs.IntVar(&opt.Step, "step", sweep.DefaultStep, "length step")
	fs.StringVar(&opt.OutDir, "out-dir", "data", "output directory")
	fs.StringVar(&opt.OutDir, "o", "data", "alias of --out-dir")
	fs.StringVar(&opt.Format, "format", output.FormatText, "output format: text | tsv | json")
	fs.IntVar(&opt.Precision, "precision", output.DefaultPrecision, "significant digits (-1 = shortest)")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress TSV header line")

	file, err := clibase.Finish(fs, &opt.Common, fs.Parse(argv))
	if err != nil {
		return opt, err
	}
	opt.Header = !noHeader
	if opt.Version || opt.Examples {
		return opt, nil
	}
	applyFile(&opt, file, clibase.SetFlags(fs))
	return opt, validate(opt)
}

func applyFile(o *Options, f config.File, isSet func(names ...string) bool) {
	s, out := f.Sweep, f.Output
	if s.Start != nil && !isSet("start") {
		o.Start = *s.Start
	}
	if s.End != nil && !isSet("end") {
		o.End = *s.End
	}
	if s.Step != nil && !isSet("step") {
		o.Step = *s.Step
	}
	if out.Dir != nil && !isSet("out-dir", "o") {
		o.OutDir = *out.Dir
	}
	if out.Format != nil && !isSet("format") {
		o.Format = *out.Format
	}
	if out.Precision != nil && !isSet("precision") {
		o.Precision = *out.Precision
	}
}

func validate(o Options) error {
	if err := o.Sweep().Validate(); err != nil {
		return fmt.Errorf("%w: %w", clibase.ErrConfig, err)
	}
	if _, ok := writers.SweepWriters[o.Format]; !ok {
		return fmt.Errorf("%w: invalid --format %q (want one of %v)", clibase.ErrConfig, o.Format, writers.Formats())
	}
	if o.Precision < -1 {
		return fmt.Errorf("%w: --precision must be ≥ -1", clibase.ErrConfig)
	}
	if o.OutDir == "" {
		return fmt.Errorf("%w: --out-dir must not be empty", clibase.ErrConfig)
	}
	return nil
}
