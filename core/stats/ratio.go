package stats

import "fmt"

// DeriveRatio computes num[i]/den[i] + 1 per trial. A zero denominator is
// replaced by 1, so a trial with no cross pairs yields num[i] + 1.
func DeriveRatio(num, den []int) ([]float64, error) { return Ratio(num, den, 1) }

// CrossRatio is the plain num/den ratio (R_c = GG/GL) with the same guard.
func CrossRatio(num, den []int) ([]float64, error) { return Ratio(num, den, 0) }

// Ratio computes num[i]/max(den[i],1) + offset. Zero is the only denominator
// that is replaced.
func Ratio(num, den []int, offset float64) ([]float64, error) {
	if len(num) != len(den) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(num), len(den))
	}
	out := make([]float64, len(num))
	for i := range num {
		d := den[i]
		if d == 0 {
			d = 1
		}
		out[i] = float64(num[i])/float64(d) + offset
	}
	return out, nil
}

// Floats converts an integer series for Summarize.
func Floats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
