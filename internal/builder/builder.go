// Package builder assembles satellites from per-body configuration and
// produces a populated, ready-to-step system.
//
// A body is described either by an absolute position (plus optional
// velocity) or by reduced orbital elements resolved against a reference
// body. All validation happens in Build, so specs can be assembled in any
// order and an underspecified body fails fast instead of entering the
// simulation silently zeroed.
package builder

import (
	"fmt"
	"math"

	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/astrolab/orbsim/internal/physics"
	"github.com/astrolab/orbsim/internal/sim"
	"github.com/shopspring/decimal"
)

// OrbitSpec places a body on a circular orbit around its reference body:
// the most massive body declared before it, or the origin at rest if it is
// declared first. Theta is the phase angle along the orbit, measured from
// the +x axis; the inclination tilts the orbital plane about the x axis.
type OrbitSpec struct {
	SemiMajorAxis  decimal.Decimal
	InclinationDeg float64
	ThetaDeg       float64
	StartSpeed     decimal.Decimal
}

// BodySpec is the full configuration of one body. Exactly one of Position
// and Orbit must be set. Velocity is only meaningful together with
// Position; an orbit determines its own velocity.
type BodySpec struct {
	Name     string
	Mass     decimal.Decimal
	Radius   decimal.Decimal
	Position *decmath.Vector
	Velocity *decmath.Vector
	Orbit    *OrbitSpec
}

// SystemBuilder collects body specs in declaration order.
type SystemBuilder struct {
	specs []BodySpec
}

// New returns an empty builder.
func New() *SystemBuilder {
	return &SystemBuilder{}
}

// Add stages a body spec. Validation is deferred to Build.
func (b *SystemBuilder) Add(spec BodySpec) *SystemBuilder {
	b.specs = append(b.specs, spec)
	return b
}

// Build validates every spec, resolves orbital elements to state vectors
// and returns a system populated with the bodies in declaration order.
func (b *SystemBuilder) Build() (*sim.System, error) {
	system := sim.New()

	for i, spec := range b.specs {
		if err := spec.validate(); err != nil {
			return nil, fmt.Errorf("body %d (%q): %w", i, spec.Name, err)
		}

		var position, velocity decmath.Vector
		switch {
		case spec.Position != nil:
			position = *spec.Position
			if spec.Velocity != nil {
				velocity = *spec.Velocity
			}
		default:
			position, velocity = spec.Orbit.resolve(heaviest(system.Elements()))
		}

		system.AddBodies(physics.NewSatellite(spec.Name, spec.Radius, spec.Mass, position, velocity))
	}

	return system, nil
}

func (s BodySpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Mass.Sign() <= 0 {
		return fmt.Errorf("mass must be positive, got %s", s.Mass)
	}
	if s.Radius.Sign() < 0 {
		return fmt.Errorf("radius must not be negative, got %s", s.Radius)
	}
	if s.Position == nil && s.Orbit == nil {
		return fmt.Errorf("either a position or orbital elements are required")
	}
	if s.Position != nil && s.Orbit != nil {
		return fmt.Errorf("position and orbital elements are mutually exclusive")
	}
	if s.Velocity != nil && s.Orbit != nil {
		return fmt.Errorf("an explicit velocity conflicts with orbital elements")
	}
	if s.Orbit != nil {
		if s.Orbit.SemiMajorAxis.Sign() <= 0 {
			return fmt.Errorf("semi-major axis must be positive, got %s", s.Orbit.SemiMajorAxis)
		}
		if s.Orbit.StartSpeed.Sign() < 0 {
			return fmt.Errorf("start speed must not be negative, got %s", s.Orbit.StartSpeed)
		}
	}
	return nil
}

// resolve converts the orbital elements to Cartesian state vectors relative
// to the reference body. The trigonometry runs in float64 before the single
// conversion to decimals; this is the documented precision seam between
// human-friendly angles and the exact arithmetic downstream.
func (o *OrbitSpec) resolve(ref *physics.Satellite) (position, velocity decmath.Vector) {
	theta := o.ThetaDeg * math.Pi / 180
	incl := o.InclinationDeg * math.Pi / 180

	sinT, cosT := math.Sincos(theta)
	sinI, cosI := math.Sincos(incl)

	// Radial unit vector in the inclined orbital plane, and the tangential
	// unit vector a quarter turn ahead of it.
	radial := decmath.NewVectorFromFloats(cosT, sinT*cosI, sinT*sinI)
	tangent := decmath.NewVectorFromFloats(-sinT, cosT*cosI, cosT*sinI)

	position = radial.Mul(o.SemiMajorAxis)
	velocity = tangent.Mul(o.StartSpeed)

	if ref != nil {
		position = position.Add(ref.Position())
		velocity = velocity.Add(ref.Velocity())
	}
	return position, velocity
}

// heaviest picks the orbit reference: the most massive body added so far,
// first wins on a tie. Nil when the system is still empty.
func heaviest(bodies []*physics.Satellite) *physics.Satellite {
	var ref *physics.Satellite
	for _, body := range bodies {
		if ref == nil || body.Mass().GreaterThan(ref.Mass()) {
			ref = body
		}
	}
	return ref
}
