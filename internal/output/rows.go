// internal/output/rows.go
package output

import (
	"fmt"

	"lightclock-core/scene"
)

// FormatRowTSV returns the 9 base columns for one frame (no trailing newline).
// Six decimals keeps rows diffable while staying well inside float64 accuracy
// for the closed-form positions.
func FormatRowTSV(f scene.Frame) string {
	return fmt.Sprintf("%d\t%.6f\t%.6f\t%.6f\t%s\t%.6f\t%.6f\t%s\t%.6f",
		f.Index, f.T,
		f.RestPhoton.X, f.RestPhoton.Y, f.RestPhase,
		f.MovingPhoton.X, f.MovingPhoton.Y, f.MovingPhase,
		f.MirrorX,
	)
}
