package sweep

import "lgsim/core/polymer"

// Result is the sweep output: one Point per visited length, in order.
type Result struct {
	Gen    polymer.Config
	Sweep  Config
	Seed   uint64
	Points []Point
}

// Lengths returns the visited lengths in sweep order.
func (r Result) Lengths() []int {
	out := make([]int, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Length
	}
	return out
}

// LRunMeans returns the L-run mean per length.
func (r Result) LRunMeans() []float64 { return r.series(func(p Point) float64 { return p.LRun.Mean }) }

// LRunSEMs returns the L-run standard error per length.
func (r Result) LRunSEMs() []float64 { return r.series(func(p Point) float64 { return p.LRun.StdErr }) }

// GRunMeans returns the G-run mean per length.
func (r Result) GRunMeans() []float64 { return r.series(func(p Point) float64 { return p.GRun.Mean }) }

// GRunSEMs returns the G-run standard error per length.
func (r Result) GRunSEMs() []float64 { return r.series(func(p Point) float64 { return p.GRun.StdErr }) }

func (r Result) series(f func(Point) float64) []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = f(p)
	}
	return out
}

// Suffix distinguishes output artifacts by mode: "_f" for fixed, "_d" for
// dimers, both in that order.
func (r Result) Suffix() string { return Suffix(r.Gen) }

// Suffix returns the artifact suffix for a generation config.
func Suffix(c polymer.Config) string {
	s := ""
	if c.Fixed {
		s += "_f"
	}
	if c.Dimers {
		s += "_d"
	}
	return s
}
