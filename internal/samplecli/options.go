package samplecli

import (
	"flag"
	"fmt"
	"io"

	"lgsim/internal/clibase"
	"lgsim/internal/sweep"
)

// Options holds lgsim-sample flags.
type Options struct {
	clibase.Common

	Length   int
	Polymers string // optional dump of every generated polymer
	Output   string // text | json
}

// NewFlagSet returns a ContinueOnError FlagSet with lgsim-sample's help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "dimer statistics for one polymer length", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nSample:")
		fmt.Fprintf(out, "  -l, --length int            Degree of polymerization [%s]\n", def("length"))
		fmt.Fprintln(out, "      --polymers file         Write every generated polymer, one per line")
		fmt.Fprintf(out, "      --output string         text | json [%s]\n", def("output"))
	})
	return fs
}

// ParseArgs registers and parses all flags. Fixed mode defaults to on,
// matching the single-length analysis.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{
		Common: clibase.Common{
			GProb:    0.25,
			Fixed:    true,
			Trials:   10000,
			LogLevel: "info",
		},
	}
	clibase.Register(fs, &opt.Common)
	fs.IntVar(&opt.Length, "length", 100, "degree of polymerization")
	fs.IntVar(&opt.Length, "l", 100, "alias of --length")
	fs.StringVar(&opt.Polymers, "polymers", "", "write generated polymers to file")
	fs.StringVar(&opt.Output, "output", "text", "report format: text | json")

	if _, err := clibase.Finish(fs, &opt.Common, fs.Parse(argv)); err != nil {
		return opt, err
	}
	if opt.Version || opt.Examples {
		return opt, nil
	}
	if opt.Length < 0 || opt.Length > sweep.MaxLength {
		return opt, fmt.Errorf("%w: --length must be in [0,%d], got %d", clibase.ErrConfig, sweep.MaxLength, opt.Length)
	}
	switch opt.Output {
	case "text", "json":
	default:
		return opt, fmt.Errorf("%w: invalid --output %q", clibase.ErrConfig, opt.Output)
	}
	return opt, nil
}
