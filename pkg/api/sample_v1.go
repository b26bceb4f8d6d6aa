package api

// SampleV1 is the stable JSON schema for a single-length sample report.
type SampleV1 struct {
	Schema string  `json:"schema"` // "lgsim.sample/v1"
	Length int     `json:"length"`
	Trials int     `json:"trials"`
	GProb  float64 `json:"g_prob"`
	Fixed  bool    `json:"fixed"`
	Dimers bool    `json:"dimers"`
	Seed   uint64  `json:"seed"`

	GG SummaryV1 `json:"gg"`
	LL SummaryV1 `json:"ll"`
	GL SummaryV1 `json:"gl"`
	LG SummaryV1 `json:"lg"`

	LRun  SummaryV1 `json:"l_run"`
	GRun  SummaryV1 `json:"g_run"`
	Cross SummaryV1 `json:"r_c"`

	GLRatioMean   float64 `json:"g_l_ratio_mean"`
	GLRatioTrials int     `json:"g_l_ratio_trials"`
}

const SampleSchemaV1 = "lgsim.sample/v1"
