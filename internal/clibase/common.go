// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"lgsim/core/polymer"
	"lgsim/internal/config"
)

// ErrConfig marks every rejected command line or config file. Apps map it to
// exit status 2.
var ErrConfig = errors.New("invalid configuration")

// Common holds CLI fields shared by lgsim and lgsim-sample.
type Common struct {
	// Generation
	GProb  float64
	Fixed  bool
	Dimers bool

	// Work
	Trials  int
	Threads int
	Seed    uint64 // 0 = time-based

	// Misc
	ConfigPath string
	LogLevel   string
	Quiet      bool
	Examples   bool
	Version    bool
}

// Gen returns the generation config selected on the command line.
func (c *Common) Gen() polymer.Config {
	return polymer.Config{GProb: c.GProb, Fixed: c.Fixed, Dimers: c.Dimers}
}

// Register wires shared flags onto fs. Current field values become the flag
// defaults, so callers preset tool-specific defaults before calling.
func Register(fs *flag.FlagSet, c *Common) {
	// Generation
	fs.Float64Var(&c.GProb, "g-prob", c.GProb, "probability of G at each position")
	fs.Float64Var(&c.GProb, "g_prob", c.GProb, "alias of --g-prob")
	fs.Float64Var(&c.GProb, "g", c.GProb, "alias of --g-prob")
	fixed := &optBool{dst: &c.Fixed}
	fs.Var(fixed, "fixed", "fixed G count per polymer (=0|1|false|true)")
	fs.Var(fixed, "f", "alias of --fixed")
	dimers := &optBool{dst: &c.Dimers}
	fs.Var(dimers, "dimers", "build from duplicated dimers (=0|1|false|true)")
	fs.Var(dimers, "d", "alias of --dimers")

	// Work
	fs.IntVar(&c.Trials, "trials", c.Trials, "polymers generated per length")
	fs.IntVar(&c.Trials, "n", c.Trials, "alias of --trials")
	fs.IntVar(&c.Threads, "threads", c.Threads, "worker threads (0=all CPUs)")
	fs.IntVar(&c.Threads, "t", c.Threads, "alias of --threads")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0=time-based)")

	// Misc
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug | info | warn | error")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "warnings and errors only")
	fs.BoolVar(&c.Quiet, "q", c.Quiet, "alias of --quiet")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit")
	fs.BoolVar(&c.Version, "v", false, "print version and exit")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
}

// SetFlags returns a predicate reporting whether any of the given flag names
// was set explicitly on the command line.
func SetFlags(fs *flag.FlagSet) func(names ...string) bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}
}

// ApplyFile copies config-file values into c for every flag the user did not
// set explicitly.
func ApplyFile(c *Common, f config.File, isSet func(names ...string) bool) {
	g, s := f.Generation, f.Sweep
	if g.GProb != nil && !isSet("g-prob", "g_prob", "g") {
		c.GProb = *g.GProb
	}
	if g.Fixed != nil && !isSet("fixed", "f") {
		c.Fixed = *g.Fixed
	}
	if g.Dimers != nil && !isSet("dimers", "d") {
		c.Dimers = *g.Dimers
	}
	if s.Trials != nil && !isSet("trials", "n") {
		c.Trials = *s.Trials
	}
	if s.Threads != nil && !isSet("threads", "t") {
		c.Threads = *s.Threads
	}
	if s.Seed != nil && !isSet("seed") {
		c.Seed = *s.Seed
	}
}

// LoadFile reads c.ConfigPath (if any) and merges it under the flags.
func LoadFile(fs *flag.FlagSet, c *Common) (config.File, error) {
	if c.ConfigPath == "" {
		return config.File{}, nil
	}
	f, err := config.Load(c.ConfigPath)
	if err != nil {
		return config.File{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	ApplyFile(c, f, SetFlags(fs))
	return f, nil
}

// Validate applies shared invariants used by all tools.
func Validate(c *Common) error {
	if math.IsNaN(c.GProb) || c.GProb < 0 || c.GProb > 1 {
		return fmt.Errorf("%w: --g-prob must be in [0,1], got %v", ErrConfig, c.GProb)
	}
	if c.Trials < 2 {
		return fmt.Errorf("%w: --trials must be ≥ 2, got %d", ErrConfig, c.Trials)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: --threads must be ≥ 0", ErrConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: --log-level: %v", ErrConfig, err)
	}
	return nil
}

// Finish turns parse errors into ErrConfig (leaving flag.ErrHelp intact),
// rejects positionals, merges the config file and runs Validate. The loaded
// file is returned so tools can apply their own sections.
func Finish(fs *flag.FlagSet, c *Common, parseErr error) (config.File, error) {
	if parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			return config.File{}, parseErr
		}
		return config.File{}, fmt.Errorf("%w: %v", ErrConfig, parseErr)
	}
	if c.Version || c.Examples {
		return config.File{}, nil
	}
	if fs.NArg() > 0 {
		return config.File{}, fmt.Errorf("%w: unexpected argument %q", ErrConfig, fs.Arg(0))
	}
	f, err := LoadFile(fs, c)
	if err != nil {
		return config.File{}, err
	}
	return f, Validate(c)
}
