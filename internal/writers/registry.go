// internal/writers/registry.go
package writers

import (
	"fmt"
	"os"
	"sort"

	"lgsim/internal/sweep"
)

// Options tune artifact rendering.
type Options struct {
	Precision int  // significant digits; -1 = shortest round-trip
	Header    bool // TSV header row
}

// SweepWriter writes res under dir and returns the paths it created.
type SweepWriter func(dir string, res sweep.Result, opt Options) ([]string, error)

// SweepWriters maps format → handler. Handlers register in init() blocks.
var SweepWriters = map[string]SweepWriter{}

// RegisterSweep adds or replaces a handler (last wins).
func RegisterSweep(format string, fn SweepWriter) { SweepWriters[format] = fn }

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(SweepWriters))
	for f := range SweepWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteSweep dispatches to the registered handler after ensuring dir exists.
func WriteSweep(format, dir string, res sweep.Result, opt Options) ([]string, error) {
	fn, ok := SweepWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown sweep format %q (no writer registered)", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return fn(dir, res, opt)
}
