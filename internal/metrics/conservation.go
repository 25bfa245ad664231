// Package metrics derives conserved-quantity observables from a simulated
// system. The engine itself stays pure; these are read-only views used by
// the CLI report and the conservation tests.
package metrics

import (
	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/astrolab/orbsim/internal/physics"
	"github.com/astrolab/orbsim/internal/sim"
	"github.com/shopspring/decimal"
)

// CenterOfMass returns the mass-weighted mean position of the bodies.
// The second return is false when there are no bodies.
func CenterOfMass(bodies []*physics.Satellite) (decmath.Vector, bool) {
	if len(bodies) == 0 {
		return decmath.Zero, false
	}

	weighted := decmath.Zero
	totalMass := decimal.Zero
	for _, body := range bodies {
		weighted = weighted.Add(body.Position().Mul(body.Mass()))
		totalMass = totalMass.Add(body.Mass())
	}

	return weighted.Div(totalMass), true
}

// RotationalImpulse returns the angular momentum of one body about the
// given reference point: (v * m) x (p - ref).
func RotationalImpulse(body *physics.Satellite, ref decmath.Vector) decmath.Vector {
	impulse := body.Velocity().Mul(body.Mass())
	radius := body.Position().Sub(ref)
	return impulse.Cross(radius)
}

// TotalRotationalImpulse sums the rotational impulse of every body about
// the system's current center of mass. Conserved across steps up to the
// rounding of the precision policy.
func TotalRotationalImpulse(s *sim.System) decmath.Vector {
	com, ok := CenterOfMass(s.Elements())
	if !ok {
		return decmath.Zero
	}

	total := decmath.Zero
	for _, body := range s.Elements() {
		total = total.Add(RotationalImpulse(body, com))
	}
	return total
}

// Separation returns the distance between two bodies.
func Separation(a, b *physics.Satellite) decimal.Decimal {
	return a.Position().Sub(b.Position()).Length()
}
