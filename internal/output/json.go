package output

import (
	"encoding/json"
	"io"

	"lgsim/core/stats"
	"lgsim/internal/sweep"
	"lgsim/pkg/api"
)

// ToAPISummary converts a domain summary to the wire schema.
func ToAPISummary(s stats.Summary) api.SummaryV1 {
	return api.SummaryV1{Mean: s.Mean, SEM: s.StdErr, StdDev: s.StdDev}
}

// ToAPISweep converts a sweep result to the stable wire schema (v1).
func ToAPISweep(res sweep.Result) api.SweepV1 {
	v := api.SweepV1{
		Schema: api.SweepSchemaV1,
		GProb:  res.Gen.GProb,
		Fixed:  res.Gen.Fixed,
		Dimers: res.Gen.Dimers,
		Seed:   res.Seed,
		Trials: res.Sweep.Trials,
		Start:  res.Sweep.Start,
		End:    res.Sweep.End,
		Step:   res.Sweep.Step,
		Points: make([]api.SweepPointV1, 0, len(res.Points)),
	}
	for _, p := range res.Points {
		v.Points = append(v.Points, api.SweepPointV1{
			Length: p.Length,
			LRun:   ToAPISummary(p.LRun),
			GRun:   ToAPISummary(p.GRun),
		})
	}
	return v
}

// WriteJSON writes the sweep as one pretty-indented JSON document.
func WriteJSON(w io.Writer, res sweep.Result) error {
	return EncodePretty(w, ToAPISweep(res))
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
