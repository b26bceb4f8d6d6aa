// internal/sweep/config.go
package sweep

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every sweep parameter rejection.
var ErrInvalidConfig = errors.New("invalid sweep config")

// Reference sweep defaults.
const (
	DefaultStart  = 40
	DefaultEnd    = 3000
	DefaultStep   = 8
	DefaultTrials = 10000
)

// Sweep size bounds. A run outside them cannot finish in memory.
const (
	MaxLength = 1 << 24 // longest polymer
	MaxPoints = 1 << 20 // most lengths per sweep
)

// Config holds the sweep range and per-length work.
type Config struct {
	Start   int // first length
	End     int // last length, inclusive
	Step    int // > 0
	Trials  int // trials per length
	Threads int // workers; <= 0 means all CPUs
}

// Default returns the 40..3000 step 8, 10000-trial sweep.
func Default() Config {
	return Config{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep, Trials: DefaultTrials}
}

// Validate checks the range. Trials == 1 is allowed here and fails later in
// the aggregator with stats.ErrDomain.
func (c Config) Validate() error {
	switch {
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be > 0, got %d", ErrInvalidConfig, c.Step)
	case c.Start < 0:
		return fmt.Errorf("%w: start must be ≥ 0, got %d", ErrInvalidConfig, c.Start)
	case c.End < c.Start:
		return fmt.Errorf("%w: end (%d) is smaller than start (%d)", ErrInvalidConfig, c.End, c.Start)
	case c.End > MaxLength:
		return fmt.Errorf("%w: end must be ≤ %d, got %d", ErrInvalidConfig, MaxLength, c.End)
	case c.points() > MaxPoints:
		return fmt.Errorf("%w: %d..%d step %d visits more than %d lengths", ErrInvalidConfig, c.Start, c.End, c.Step, MaxPoints)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be ≥ 1, got %d", ErrInvalidConfig, c.Trials)
	}
	return nil
}

// points counts the visited lengths. End-Start cannot overflow once
// Start >= 0 and End >= Start.
func (c Config) points() int {
	if c.Step <= 0 || c.Start < 0 || c.End < c.Start {
		return 0
	}
	return (c.End-c.Start)/c.Step + 1
}

// Lengths lists the visited lengths in order, or nil for an empty or
// out-of-bounds range.
func (c Config) Lengths() []int {
	if np := c.points(); np == 0 || np > MaxPoints || c.End > MaxLength {
		return nil
	}
	out := make([]int, 0, c.points())
	for n := c.Start; ; n += c.Step {
		out = append(out, n)
		if n > c.End-c.Step {
			break
		}
	}
	return out
}
