// pkg/api/frames_v1.go
package api

// FrameV1 is the stable JSON/JSONL schema for per-frame kinematic traces.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FrameV1 struct {
	Frame       int     `json:"frame"`
	T           float64 `json:"t"`
	Label       string  `json:"label"`
	RestX       float64 `json:"rest_x"`
	RestY       float64 `json:"rest_y"`
	RestPhase   string  `json:"rest_phase"` // "ascending" | "descending"
	MovingX     float64 `json:"moving_x"`
	MovingY     float64 `json:"moving_y"`
	MovingPhase string  `json:"moving_phase"`
	MirrorX     float64 `json:"mirror_x"`
}
