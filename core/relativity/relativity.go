// core/relativity/relativity.go
// Lorentz machinery for the light-clock model.
//
// Natural units throughout: c = 1, so a velocity is the dimensionless
// fraction β = v/c and a length doubles as a light travel time.
// γ = 1/√(1−β²). A clock moving at β has every proper-time interval
// stretched by exactly γ in the lab frame; that factor is the one physical
// relationship the rest of the program must preserve.
//
// This package has no app/output deps; kinematics can import it cleanly.

package relativity

import (
	"errors"
	"fmt"
	"math"
)

// Gamma returns the Lorentz factor 1/√(1−β²) for a speed fraction β.
// β must lie in [0, 1): at or beyond the speed of light γ is undefined,
// and the model fails fast rather than producing ±Inf downstream.
func Gamma(beta float64) (float64, error) {
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0, errors.New("relativity: beta must be finite")
	}
	if beta < 0 {
		return 0, fmt.Errorf("relativity: beta must be >= 0 (got %g)", beta)
	}
	if beta >= 1 {
		return 0, fmt.Errorf("relativity: beta must be < 1, the speed of light (got %g)", beta)
	}
	return 1 / math.Sqrt(1-beta*beta), nil
}

// Dilate maps a proper-time duration aboard a clock moving at β to the
// duration an observer in the lab frame measures: Δt = γ·Δτ.
func Dilate(properTime, beta float64) (float64, error) {
	g, err := Gamma(beta)
	if err != nil {
		return 0, err
	}
	return g * properTime, nil
}
