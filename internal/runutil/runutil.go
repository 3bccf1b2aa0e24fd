// internal/runutil/runutil.go
package runutil

import "fmt"

// frameCap is the point where a trace run stops being a trace and starts
// being a disk filler; past it we warn but still run.
const frameCap = 1_000_000

// CheckTiming inspects a dt/t-max pair that already passed scene validation
// and returns human-readable warnings for the legal-but-surprising cases:
//   - t-max not an integral multiple of dt (the run ends short of t-max)
//   - a frame count large enough to suggest a mistyped dt
func CheckTiming(dt, tMax float64) []string {
	var warns []string
	if dt <= 0 || tMax < 0 {
		return nil // invalid pairs are rejected upstream; nothing useful to say
	}
	ratio := tMax / dt
	frames := int(ratio + 1e-9)
	if rem := ratio - float64(frames); rem > 1e-9 {
		warns = append(warns, fmt.Sprintf(
			"t-max %g is not a multiple of dt %g; the run ends at t=%g", tMax, dt, float64(frames)*dt))
	}
	if frames+1 > frameCap {
		warns = append(warns, fmt.Sprintf(
			"dt %g over %g s yields %d frames; expect a large output", dt, tMax, frames+1))
	}
	return warns
}
