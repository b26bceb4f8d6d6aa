package clibase

import (
	"flag"
	"fmt"
	"io"

	"lgsim/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections before the shared blocks.
func UsageCommon(fs *flag.FlagSet, name, blurb string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, blurb)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags]\n", name)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nGeneration:")
		fmt.Fprintf(out, "  -g, --g-prob float          Probability of G at each position [%s]\n", def("g-prob"))
		fmt.Fprintf(out, "  -f, --fixed[=0|1]           Fixed G count floor(n*p) per polymer [%s]\n", def("fixed"))
		fmt.Fprintf(out, "  -d, --dimers[=0|1]          Build from duplicated dimers (ring-opening) [%s]\n", def("dimers"))

		fmt.Fprintln(out, "\nWork:")
		fmt.Fprintf(out, "  -n, --trials int            Polymers generated per length [%s]\n", def("trials"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --seed uint             Random seed (0=time-based) [%s]\n", def("seed"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           YAML config; explicit flags win")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "  -q, --quiet                 Warnings and errors only [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
