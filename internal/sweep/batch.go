package sweep

import (
	"context"

	"lgsim/core/polymer"
	"lgsim/core/stats"
)

// ctxCheckEvery bounds how many trials run between cancellation checks.
const ctxCheckEvery = 64

// Batch holds the per-trial dimer counts for one length.
type Batch struct {
	Length         int
	GG, LL, GL, LG []int
}

// Visit sees each generated polymer. The polymer's backing array is reused
// by the next trial, so it must not be retained.
type Visit func(trial int, p polymer.Polymer) error

// RunBatch generates trials polymers of length n and records their counts.
// visit may be nil.
func RunBatch(ctx context.Context, gen *polymer.Generator, n, trials int, visit Visit) (Batch, error) {
	b := Batch{
		Length: n,
		GG:     make([]int, trials),
		LL:     make([]int, trials),
		GL:     make([]int, trials),
		LG:     make([]int, trials),
	}
	var buf polymer.Polymer
	for i := 0; i < trials; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Batch{}, err
			}
		}
		buf = gen.Append(buf[:0], n)
		c := polymer.CountPairs(buf)
		b.GG[i], b.LL[i], b.GL[i], b.LG[i] = c.GG, c.LL, c.GL, c.LG
		if visit != nil {
			if err := visit(i, buf); err != nil {
				return Batch{}, err
			}
		}
	}
	return b, nil
}

// Point is one summarized sweep length.
type Point struct {
	Length int
	LRun   stats.Summary // LL/LG + 1
	GRun   stats.Summary // GG/GL + 1
}

// Point derives the L-run and G-run ratios and summarizes each.
func (b Batch) Point() (Point, error) {
	lr, err := stats.DeriveRatio(b.LL, b.LG)
	if err != nil {
		return Point{}, err
	}
	gr, err := stats.DeriveRatio(b.GG, b.GL)
	if err != nil {
		return Point{}, err
	}
	ls, err := stats.Summarize(lr)
	if err != nil {
		return Point{}, err
	}
	gs, err := stats.Summarize(gr)
	if err != nil {
		return Point{}, err
	}
	return Point{Length: b.Length, LRun: ls, GRun: gs}, nil
}
