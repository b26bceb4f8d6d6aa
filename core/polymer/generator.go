// core/polymer/generator.go
package polymer

import (
	"math/rand/v2"
	"slices"
)

// Config selects the generation model. It is shared read-only by every trial
// of a run.
type Config struct {
	GProb  float64 // probability weight for G; caller keeps it in [0,1]
	Fixed  bool    // exact floor(n*GProb) Gs placed by permutation
	Dimers bool    // each placed monomer is emitted twice (ring-opening)
}

// Generator draws polymers from one random stream.
type Generator struct {
	cfg  Config
	rnd  *rand.Rand
	perm []int // scratch for fixed mode
}

// NewGenerator binds a config to a stream.
func NewGenerator(cfg Config, rnd *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rnd: rnd}
}

// Config returns the generation config.
func (g *Generator) Config() Config { return g.cfg }

// Generate returns a freshly allocated polymer of requested length n.
// In dimer mode the result has length 2*(n/2).
func (g *Generator) Generate(n int) Polymer { return g.Append(nil, n) }

// Append generates a polymer and appends it to dst, returning the extended
// slice. Passing dst[:0] reuses the backing array across trials.
func (g *Generator) Append(dst Polymer, n int) Polymer {
	work := n
	if g.cfg.Dimers {
		work = n / 2
	}
	if work <= 0 {
		return dst
	}
	total := work
	if g.cfg.Dimers {
		total = 2 * work
	}

	start := len(dst)
	dst = slices.Grow(dst, total)[:start+work]
	base := dst[start:]
	for i := range base {
		base[i] = L
	}

	if g.cfg.Fixed {
		g.placeFixed(base)
	} else {
		g.placeBernoulli(base)
	}

	if !g.cfg.Dimers {
		return dst
	}
	// Expand in place from the back so each source cell is read before it is
	// overwritten.
	dst = dst[:start+total]
	for i := work - 1; i >= 0; i-- {
		m := dst[start+i]
		dst[start+2*i] = m
		dst[start+2*i+1] = m
	}
	return dst
}

func (g *Generator) placeBernoulli(base Polymer) {
	p := g.cfg.GProb
	for i := range base {
		if g.rnd.Float64() < p {
			base[i] = G
		}
	}
}

func (g *Generator) placeFixed(base Polymer) {
	n := len(base)
	target := FixedCount(n, g.cfg.GProb)
	if target == 0 {
		return
	}
	if cap(g.perm) < n {
		g.perm = make([]int, n)
	}
	perm := g.perm[:n]
	for i := range perm {
		perm[i] = i
	}
	g.rnd.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	for _, idx := range perm[:target] {
		base[idx] = G
	}
}

// FixedCount is the exact number of Gs a fixed-mode polymer of working length
// n carries: floor(n*p), clamped to [0, n].
func FixedCount(n int, p float64) int {
	t := int(float64(n) * p)
	if t < 0 {
		return 0
	}
	if t > n {
		return n
	}
	return t
}
