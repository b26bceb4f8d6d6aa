// core/randsrc/randsrc.go
package randsrc

import (
	"math/rand/v2"
	"time"
)

// Source owns the run seed and hands out independent PCG streams.
// A Source is immutable; the *rand.Rand values it returns are not safe for
// concurrent use, so each worker must take its own stream.
type Source struct {
	seed uint64
}

// New returns a Source with a fixed seed (deterministic runs and tests).
func New(seed uint64) *Source { return &Source{seed: seed} }

// NewTimeSeeded seeds from the wall clock, once, at startup.
func NewTimeSeeded() *Source { return New(uint64(time.Now().UnixNano())) }

// Seed reports the seed so a run can be reproduced.
func (s *Source) Seed() uint64 { return s.seed }

// Stream returns the RNG for stream id. The same (seed, id) always yields the
// same sequence; distinct ids yield uncorrelated sequences.
func (s *Source) Stream(id uint64) *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, splitmix64(id^0x9e3779b97f4a7c15)))
}

// splitmix64 spreads small sequential ids over the full 64-bit space.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
