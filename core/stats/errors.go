package stats

import "errors"

var (
	// ErrDomain is returned when a statistic is undefined for its input
	// (fewer than two values for a standard error).
	ErrDomain = errors.New("stats: domain error")

	// ErrLengthMismatch is returned when paired batches differ in length.
	ErrLengthMismatch = errors.New("stats: numerator and denominator lengths differ")
)
