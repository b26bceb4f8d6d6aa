// pkg/api/sweep_v1.go
package api

// SweepV1 is the stable JSON schema for one length sweep.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SweepV1 struct {
	Schema string         `json:"schema"` // "lgsim.sweep/v1"
	GProb  float64        `json:"g_prob"`
	Fixed  bool           `json:"fixed"`
	Dimers bool           `json:"dimers"`
	Seed   uint64         `json:"seed"`
	Trials int            `json:"trials"`
	Start  int            `json:"start"`
	End    int            `json:"end"`
	Step   int            `json:"step"`
	Points []SweepPointV1 `json:"points"`
}

// SweepPointV1 is one summarized length.
type SweepPointV1 struct {
	Length int       `json:"length"`
	LRun   SummaryV1 `json:"l_run"`
	GRun   SummaryV1 `json:"g_run"`
}

// SummaryV1 mirrors stats.Summary.
type SummaryV1 struct {
	Mean   float64 `json:"mean"`
	SEM    float64 `json:"sem"`
	StdDev float64 `json:"sd"`
}

const SweepSchemaV1 = "lgsim.sweep/v1"
