// internal/app/config.go
package app

// All run parameters are compiled in; the renderer takes no flags beyond
// -h/-v. Natural units: lengths in light-seconds, times in seconds, c = 1.
const (
	MirrorGap   = 1.0 // L
	Beta        = 0.6 // v/c; the 3-4-5 case, γ = 1.25
	RestX       = 1.0
	MovingX0    = 3.0
	MirrorWidth = 0.6

	DT   = 0.02 // seconds of lab time per frame
	TMax = 10.0 // 5 rest periods and exactly 4 moving periods

	CanvasWidth  = 900
	CanvasHeight = 360

	OutputPath = "lightclock.html"

	// Rolling diagnostic log; empty keeps the run single-artifact.
	LogFile = ""
)
