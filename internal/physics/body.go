// Package physics holds the body model and the per-step gravitational
// force accumulation.
package physics

import (
	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/shopspring/decimal"
)

// Satellite is one simulated point mass. Position and velocity are mutated
// by the engine on every step; everything else is fixed at construction.
// Radius is carried for display and bounding only, there is no collision
// physics.
type Satellite struct {
	name   string
	radius decimal.Decimal
	mass   decimal.Decimal

	position decmath.Vector
	velocity decmath.Vector
}

// NewSatellite builds a body. Mass must be positive and radius
// non-negative; the builder package validates this before construction,
// direct callers are expected to do the same.
func NewSatellite(name string, radius, mass decimal.Decimal, position, velocity decmath.Vector) *Satellite {
	return &Satellite{
		name:     name,
		radius:   radius,
		mass:     mass,
		position: position,
		velocity: velocity,
	}
}

func (s *Satellite) Name() string             { return s.name }
func (s *Satellite) Radius() decimal.Decimal  { return s.radius }
func (s *Satellite) Mass() decimal.Decimal    { return s.mass }
func (s *Satellite) Position() decmath.Vector { return s.position }
func (s *Satellite) Velocity() decmath.Vector { return s.velocity }

// SetState writes the post-step position and velocity back onto the body.
// Only the engine's apply phase should call this mid-simulation.
func (s *Satellite) SetState(position, velocity decmath.Vector) {
	s.position = position
	s.velocity = velocity
}
