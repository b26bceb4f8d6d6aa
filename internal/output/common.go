package output

// Output formats for sweep artifacts.
const (
	FormatText = "text" // four newline-delimited listings
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// TSVHeader is the canonical header row for sweep tables.
const TSVHeader = "length\tl_run_mean\tl_run_sem\tg_run_mean\tg_run_sem"

// DefaultPrecision matches iostream's default of six significant digits.
const DefaultPrecision = 6
