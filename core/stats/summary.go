package stats

import (
	"fmt"
	"math"
)

// Summary reduces one batch of per-trial values.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // population form: divisor N
	StdErr float64 // StdDev / sqrt(N-1)
}

// Summarize returns the mean, population standard deviation and standard
// error of values. The standard error divides by sqrt(N-1) while the
// deviation uses N.
// Fewer than two values return ErrDomain.
func Summarize(values []float64) (Summary, error) {
	n := len(values)
	if n < 2 {
		return Summary{}, fmt.Errorf("%w: standard error needs at least 2 values, got %d", ErrDomain, n)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	sd := math.Sqrt(ss / float64(n))
	return Summary{
		N:      n,
		Mean:   mean,
		StdDev: sd,
		StdErr: sd / math.Sqrt(float64(n-1)),
	}, nil
}
