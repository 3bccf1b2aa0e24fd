// core/scene/scene.go
//
// The scene owns the mutable per-run state of the animation: the two photon
// trails and the frame cursor. Everything the renderer needs for one frame is
// collected into a Frame value; advancing the scene appends exactly one point
// per trail and moves the cursor. The mutation is the redraw contract with
// the consumer, which calls Next sequentially from a single goroutine.
package scene

import (
	"fmt"
	"math"

	"lightclock-core/geom"
	"lightclock-core/kinematics"
)

// Timing fixes the frame clock for a run: frame i is simulated at t = i·DT,
// up to and including the last frame at or before TMax.
type Timing struct {
	DT   float64 // seconds of lab time per frame
	TMax float64 // last simulated instant
}

// Validate rejects timings the frame loop cannot step over.
func (tm Timing) Validate() error {
	if math.IsNaN(tm.DT) || math.IsInf(tm.DT, 0) || tm.DT <= 0 {
		return fmt.Errorf("scene: frame step must be > 0 (got %g)", tm.DT)
	}
	if math.IsNaN(tm.TMax) || math.IsInf(tm.TMax, 0) || tm.TMax < 0 {
		return fmt.Errorf("scene: t-max must be >= 0 (got %g)", tm.TMax)
	}
	return nil
}

// FrameCount returns the number of frames in one run, frame 0 at t = 0
// included. The epsilon absorbs float error when TMax is an exact multiple
// of DT, so a 10 s run at 0.02 s/frame yields 501 frames, not 500.
func (tm Timing) FrameCount() int {
	return int(math.Floor(tm.TMax/tm.DT+1e-9)) + 1
}

// TimeAt maps a frame index to its simulated instant.
func (tm Timing) TimeAt(i int) float64 { return float64(i) * tm.DT }

// Frame is one renderable snapshot. Trail slices are views into the scene's
// polylines: valid until the next Reset, read-only for consumers.
type Frame struct {
	Index int
	T     float64
	Label string

	RestPhoton   geom.Point
	MovingPhoton geom.Point
	RestPhase    kinematics.Phase
	MovingPhase  kinematics.Phase

	RestTrail   []geom.Point
	MovingTrail []geom.Point

	RestBottom, RestTop     geom.Segment
	MovingBottom, MovingTop geom.Segment

	MirrorX   float64 // shared x of the moving mirror pair
	MirrorGap float64 // guide band height, mirrors sit at y = 0 and y = gap
}

// Scene drives a Model through a timed frame sequence.
type Scene struct {
	model  *kinematics.Model
	timing Timing

	restTrail   geom.Polyline
	movingTrail geom.Polyline
	next        int
}

// New validates the timing and returns a scene positioned before frame 0.
func New(m *kinematics.Model, tm Timing) (*Scene, error) {
	if err := tm.Validate(); err != nil {
		return nil, err
	}
	return &Scene{model: m, timing: tm}, nil
}

// Model returns the kinematic model the scene animates.
func (s *Scene) Model() *kinematics.Model { return s.model }

// Timing returns the frame clock.
func (s *Scene) Timing() Timing { return s.timing }

// FrameCount returns the total frames in one run.
func (s *Scene) FrameCount() int { return s.timing.FrameCount() }

// Reset empties both trails and rewinds the cursor to frame 0. A finished
// run can be replayed from scratch; frames are deterministic, so the replay
// reproduces the original sequence exactly.
func (s *Scene) Reset() {
	s.restTrail.Reset()
	s.movingTrail.Reset()
	s.next = 0
}

// Next computes the upcoming frame, growing each trail by exactly one point.
// It returns ok=false once the run is complete; the scene then stays put
// until Reset.
func (s *Scene) Next() (Frame, bool) {
	i := s.next
	if i >= s.timing.FrameCount() {
		return Frame{}, false
	}
	s.next++

	t := s.timing.TimeAt(i)
	rest := s.model.StationaryPhoton(t)
	moving := s.model.MovingPhoton(t)
	s.restTrail.Append(rest)
	s.movingTrail.Append(moving)

	restBot, restTop := s.model.RestMirrors()
	movBot, movTop := s.model.MovingMirrors(t)

	return Frame{
		Index:        i,
		T:            t,
		Label:        fmt.Sprintf("Time = %.2f s", t),
		RestPhoton:   rest,
		MovingPhoton: moving,
		RestPhase:    s.model.StationaryPhase(t),
		MovingPhase:  s.model.MovingPhase(t),
		RestTrail:    s.restTrail.Points(),
		MovingTrail:  s.movingTrail.Points(),
		RestBottom:   restBot,
		RestTop:      restTop,
		MovingBottom: movBot,
		MovingTop:    movTop,
		MirrorX:      s.model.MirrorX(t),
		MirrorGap:    s.model.Config().MirrorGap,
	}, true
}
