// core/kinematics/phase.go
package kinematics

import "math"

// Phase is the bounce leg a photon is on within one round trip.
type Phase int

const (
	Ascending Phase = iota
	Descending
)

func (p Phase) String() string {
	if p == Ascending {
		return "ascending"
	}
	return "descending"
}

// cyclePhase reduces t to [0, period). math.Mod keeps the sign of t, so
// negative inputs are shifted back into range.
func cyclePhase(t, period float64) float64 {
	p := math.Mod(t, period)
	if p < 0 {
		p += period
	}
	return p
}

// PhaseAt classifies a round-trip phase against its half period.
// Strict `<`: phase == half is the first descending instant.
func PhaseAt(phase, half float64) Phase {
	if phase < half {
		return Ascending
	}
	return Descending
}
