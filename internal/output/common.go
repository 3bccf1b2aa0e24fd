package output

// Format names accepted by the trace writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV trace output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "frame\tt\trest_x\trest_y\trest_phase\tmoving_x\tmoving_y\tmoving_phase\tmirror_x"
