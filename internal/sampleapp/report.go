package sampleapp

import (
	"lgsim/core/polymer"
	"lgsim/core/stats"
	"lgsim/internal/output"
	"lgsim/internal/sweep"
)

// compositionTally accumulates #G/#L per trial. Trials without any L have no
// defined ratio and are skipped.
type compositionTally struct {
	sum float64
	n   int
}

func (c *compositionTally) add(p polymer.Polymer) {
	gs, ls := p.Composition()
	if ls == 0 {
		return
	}
	c.sum += float64(gs) / float64(ls)
	c.n++
}

func (c compositionTally) mean() float64 {
	if c.n == 0 {
		return 0
	}
	return c.sum / float64(c.n)
}

// buildReport reduces one batch to the single-length report.
func buildReport(b sweep.Batch, comp compositionTally) (output.SampleReport, error) {
	r := output.SampleReport{
		Length:        b.Length,
		Trials:        len(b.GG),
		GLRatioMean:   comp.mean(),
		GLRatioTrials: comp.n,
	}
	var err error
	for _, f := range []struct {
		dst *stats.Summary
		src []int
	}{{&r.GG, b.GG}, {&r.LL, b.LL}, {&r.GL, b.GL}, {&r.LG, b.LG}} {
		if *f.dst, err = stats.Summarize(stats.Floats(f.src)); err != nil {
			return r, err
		}
	}

	pt, err := b.Point()
	if err != nil {
		return r, err
	}
	r.LRun, r.GRun = pt.LRun, pt.GRun

	rc, err := stats.CrossRatio(b.GG, b.GL)
	if err != nil {
		return r, err
	}
	if r.Cross, err = stats.Summarize(rc); err != nil {
		return r, err
	}
	return r, nil
}
