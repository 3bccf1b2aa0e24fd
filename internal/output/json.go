// internal/output/json.go
package output

import (
	"io"

	"lightclock-core/scene"

	"lightclock/internal/jsonutil"
	"lightclock/pkg/api"
)

// ToAPIFrame converts a scene.Frame to the stable wire schema (v1).
// Trails and mirror segments are renderer state, not trace data; the wire
// frame carries current positions only.
func ToAPIFrame(f scene.Frame) api.FrameV1 {
	return api.FrameV1{
		Frame:       f.Index,
		T:           f.T,
		Label:       f.Label,
		RestX:       f.RestPhoton.X,
		RestY:       f.RestPhoton.Y,
		RestPhase:   f.RestPhase.String(),
		MovingX:     f.MovingPhoton.X,
		MovingY:     f.MovingPhoton.Y,
		MovingPhase: f.MovingPhase.String(),
		MirrorX:     f.MirrorX,
	}
}

func toAPIFrames(list []scene.Frame) []api.FrameV1 {
	out := make([]api.FrameV1, 0, len(list))
	for _, f := range list {
		out = append(out, ToAPIFrame(f))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 frames (pretty-indented).
func WriteJSON(w io.Writer, list []scene.Frame) error {
	return jsonutil.EncodePretty(w, toAPIFrames(list))
}
