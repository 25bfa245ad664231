package physics

import (
	"fmt"

	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/shopspring/decimal"
)

// G is the gravitational constant in SI units.
var G = decimal.RequireFromString("6.67428e-11")

// Collector accumulates the gravitational influence of every other body on
// one satellite during a single step. It exists only for the duration of
// that step: the engine materializes one collector per body, feeds it all
// pairings, and discards it after Apply.
type Collector struct {
	target *Satellite
	force  decmath.Vector
}

// NewCollector binds a fresh collector to the body it accumulates for.
func NewCollector(target *Satellite) *Collector {
	return &Collector{target: target, force: decmath.Zero}
}

// Target returns the body this collector applies to.
func (c *Collector) Target() *Satellite { return c.target }

// Force returns the force accumulated so far.
func (c *Collector) Force() decmath.Vector { return c.force }

// Influence adds the gravitational pull of other on the target:
// |F| = G * m1 * m2 / r^2, directed from the target towards other.
// A body exerts no force on itself, so self-pairs are skipped rather than
// fed to the formula (r would be zero). Exact coincidence of two distinct
// bodies has no finite force; it is reported as an error and the
// accumulator is left unchanged.
func (c *Collector) Influence(other *Satellite) error {
	if other == c.target {
		return nil
	}

	direction := other.Position().Sub(c.target.Position())
	distance := direction.Length()
	if distance.IsZero() {
		return fmt.Errorf("bodies %q and %q coincide at %s", c.target.Name(), other.Name(), other.Position())
	}

	// F = direction * (G * m1 * m2 / r^3): the extra power of r
	// normalizes direction to a unit vector.
	numerator := G.Mul(c.target.Mass()).Mul(other.Mass())
	scale := decmath.Div(numerator, distance.Mul(distance).Mul(distance))

	c.force = c.force.Add(direction.Mul(scale))
	return nil
}

// Apply integrates the accumulated force over one unit time step with
// semi-implicit Euler: velocity first, then position from the updated
// velocity. The order matters for long-run stability.
func (c *Collector) Apply() {
	acceleration := c.force.Div(c.target.Mass())
	velocity := c.target.Velocity().Add(acceleration)
	position := c.target.Position().Add(velocity)
	c.target.SetState(position, velocity)
}
