// core/kinematics/kinematics.go
// Closed-form kinematics for the two light clocks.
//
// A light clock is a photon bouncing between two mirrors a vertical distance
// L apart. With c = 1 the rest clock ticks with round-trip period T0 = 2L.
// Seen from the lab, a clock moving at β covers the same mirror gap along a
// zigzag, so one round trip stretches to 2γL: the vertical climb covers L in
// γL of lab time (dy/dt = 1/γ). Every position below is an exact piecewise-
// linear function of t; nothing is integrated numerically.
//
// Phase convention: a round trip splits at its half period into an ascending
// and a descending leg. Classification uses strict `<`, so the instant the
// photon touches the top mirror is the first descending one and the bottom
// touch starts a new ascending leg. The choice only relabels single
// instants; positions stay continuous either way.

package kinematics

import (
	"fmt"
	"math"

	"lightclock-core/geom"
	"lightclock-core/relativity"
)

// Config fixes geometry and speed for one run. Natural units: lengths in
// light-seconds, times in seconds, c = 1.
type Config struct {
	MirrorGap   float64 // L, vertical mirror separation; must be > 0
	Beta        float64 // v/c of the moving clock, in [0, 1)
	RestX       float64 // x of the stationary clock
	MovingX0    float64 // x of the moving clock at t = 0
	MirrorWidth float64 // drawn mirror width; cosmetic, defaults to L/2
}

// Model answers position queries for both clocks. Immutable after New.
type Model struct {
	cfg   Config
	gamma float64
}

// New validates cfg and precomputes γ.
func New(cfg Config) (*Model, error) {
	if math.IsNaN(cfg.MirrorGap) || math.IsInf(cfg.MirrorGap, 0) || cfg.MirrorGap <= 0 {
		return nil, fmt.Errorf("kinematics: mirror gap must be > 0 (got %g)", cfg.MirrorGap)
	}
	gamma, err := relativity.Gamma(cfg.Beta)
	if err != nil {
		return nil, err
	}
	if cfg.MirrorWidth <= 0 {
		cfg.MirrorWidth = cfg.MirrorGap / 2
	}
	return &Model{cfg: cfg, gamma: gamma}, nil
}

// Config returns the validated configuration, defaults applied.
func (m *Model) Config() Config { return m.cfg }

// Gamma returns the precomputed Lorentz factor.
func (m *Model) Gamma() float64 { return m.gamma }

// RestPeriod returns T0 = 2L, the stationary round-trip period.
func (m *Model) RestPeriod() float64 { return 2 * m.cfg.MirrorGap }

// MovingPeriod returns 2γL, the moving round trip in lab time.
// MovingPeriod == Gamma × RestPeriod is the time-dilation identity.
func (m *Model) MovingPeriod() float64 { return 2 * m.gamma * m.cfg.MirrorGap }

// StationaryPhoton returns the rest clock's photon at lab time t.
// y runs 0→L→0 with period T0; x never moves.
func (m *Model) StationaryPhoton(t float64) geom.Point {
	L := m.cfg.MirrorGap
	phase := cyclePhase(t, 2*L)
	y := phase
	if PhaseAt(phase, L) == Descending {
		y = 2*L - phase
	}
	return geom.Point{X: m.cfg.RestX, Y: y}
}

// MovingPhoton returns the moving clock's photon at lab time t. The photon
// rides along with the mirrors horizontally (x = x0 + β·t) while the
// vertical bounce takes γ times longer than the rest clock's.
func (m *Model) MovingPhoton(t float64) geom.Point {
	L := m.cfg.MirrorGap
	half := m.gamma * L
	phase := cyclePhase(t, 2*half)
	var y float64
	if PhaseAt(phase, half) == Ascending {
		y = phase / m.gamma
	} else {
		y = L - (phase-half)/m.gamma
	}
	return geom.Point{X: m.MirrorX(t), Y: y}
}

// StationaryPhase reports which leg of the bounce the rest photon is on.
func (m *Model) StationaryPhase(t float64) Phase {
	L := m.cfg.MirrorGap
	return PhaseAt(cyclePhase(t, 2*L), L)
}

// MovingPhase reports which leg of the bounce the moving photon is on.
func (m *Model) MovingPhase(t float64) Phase {
	half := m.gamma * m.cfg.MirrorGap
	return PhaseAt(cyclePhase(t, 2*half), half)
}

// MirrorX returns the moving pair's shared x at lab time t.
func (m *Model) MirrorX(t float64) float64 { return m.cfg.MovingX0 + m.cfg.Beta*t }

// MovingMirrors returns the moving pair's segments at lab time t.
// Current positions only; mirror history is never kept.
func (m *Model) MovingMirrors(t float64) (bottom, top geom.Segment) {
	x := m.MirrorX(t)
	return geom.HSeg(x, 0, m.cfg.MirrorWidth), geom.HSeg(x, m.cfg.MirrorGap, m.cfg.MirrorWidth)
}

// RestMirrors returns the stationary pair's segments.
func (m *Model) RestMirrors() (bottom, top geom.Segment) {
	return geom.HSeg(m.cfg.RestX, 0, m.cfg.MirrorWidth), geom.HSeg(m.cfg.RestX, m.cfg.MirrorGap, m.cfg.MirrorWidth)
}
