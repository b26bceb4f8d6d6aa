package output

import (
	"bufio"
	"fmt"
	"io"

	"lgsim/core/polymer"
	"lgsim/core/stats"
	"lgsim/pkg/api"
)

// SampleReport summarizes many polymers of one length.
type SampleReport struct {
	Length int
	Trials int
	Gen    polymer.Config
	Seed   uint64

	GG, LL, GL, LG    stats.Summary
	LRun, GRun, Cross stats.Summary

	GLRatioMean   float64 // mean of #G/#L over trials with at least one L
	GLRatioTrials int
}

const rule = "--------------------"

// WriteSampleText prints the report as ruled blocks.
func WriteSampleText(w io.Writer, r SampleReport) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "n: %d\n", r.Length)
	fmt.Fprintln(bw, rule)
	for _, row := range []struct {
		name string
		s    stats.Summary
	}{{"G-Gs", r.GG}, {"L-Ls", r.LL}, {"G-Ls", r.GL}, {"L-Gs", r.LG}} {
		fmt.Fprintf(bw, "Mean %s: %.2f\n", row.name, row.s.Mean)
		fmt.Fprintf(bw, "SEM %s:  %.2f\n", row.name, row.s.StdErr)
		fmt.Fprintln(bw, rule)
	}
	fmt.Fprintln(bw, "OTHER METRICS")
	fmt.Fprintf(bw, "L_L (mean)    = %.2f\n", r.LRun.Mean)
	fmt.Fprintf(bw, "L_L (sem)     = %.2f\n\n", r.LRun.StdErr)
	fmt.Fprintf(bw, "L_G (mean)    = %.2f\n", r.GRun.Mean)
	fmt.Fprintf(bw, "L_G (sem)     = %.2f\n\n", r.GRun.StdErr)
	fmt.Fprintf(bw, "R_c (mean)    = %.2f\n", r.Cross.Mean)
	fmt.Fprintf(bw, "R_c (sem)     = %.2f\n\n", r.Cross.StdErr)
	fmt.Fprintf(bw, "Ratio of G/L (mean) = %.2f\n", r.GLRatioMean)
	return bw.Flush()
}

// ToAPISample converts a report to the stable wire schema (v1).
func ToAPISample(r SampleReport) api.SampleV1 {
	return api.SampleV1{
		Schema: api.SampleSchemaV1,
		Length: r.Length,
		Trials: r.Trials,
		GProb:  r.Gen.GProb,
		Fixed:  r.Gen.Fixed,
		Dimers: r.Gen.Dimers,
		Seed:   r.Seed,

		GG: ToAPISummary(r.GG),
		LL: ToAPISummary(r.LL),
		GL: ToAPISummary(r.GL),
		LG: ToAPISummary(r.LG),

		LRun:  ToAPISummary(r.LRun),
		GRun:  ToAPISummary(r.GRun),
		Cross: ToAPISummary(r.Cross),

		GLRatioMean:   r.GLRatioMean,
		GLRatioTrials: r.GLRatioTrials,
	}
}

// WriteSampleJSON writes the report as pretty JSON.
func WriteSampleJSON(w io.Writer, r SampleReport) error {
	return EncodePretty(w, ToAPISample(r))
}
