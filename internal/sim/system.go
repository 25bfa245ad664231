// Package sim advances a collection of gravitationally interacting bodies
// through discrete time. The engine is synchronous and single-writer:
// Step runs to completion before returning, and callers must read body
// state only between completed steps.
package sim

import (
	"fmt"

	"github.com/astrolab/orbsim/internal/physics"
)

// System owns the ordered body collection and the step counter. Insertion
// order is preserved for indexed access and deterministic iteration.
type System struct {
	bodies     []*physics.Satellite
	iterations uint64
}

// New returns an empty system.
func New() *System {
	return &System{}
}

// AddBodies appends bodies to the collection. Names are not deduplicated;
// Find returns the first match in insertion order.
func (s *System) AddBodies(bodies ...*physics.Satellite) {
	s.bodies = append(s.bodies, bodies...)
}

// Step advances the whole system by one unit time step.
//
// Phase one walks every ordered pair and accumulates forces into per-body
// collectors so that each body sees a consistent snapshot of all positions;
// nothing is mutated. Phase two applies every collector, integrating
// velocity and position in place. A singularity (two distinct bodies at the
// same position) aborts before the apply phase, leaving all bodies at their
// pre-step state and the counter unchanged.
func (s *System) Step() error {
	collectors := make([]*physics.Collector, 0, len(s.bodies))

	for _, body := range s.bodies {
		collector := physics.NewCollector(body)
		for _, other := range s.bodies {
			if err := collector.Influence(other); err != nil {
				return fmt.Errorf("step %d: %w", s.iterations+1, err)
			}
		}
		collectors = append(collectors, collector)
	}

	for _, collector := range collectors {
		collector.Apply()
	}

	s.iterations++
	return nil
}

// Elements returns the live, ordered body collection. It is not a copy;
// callers must not mutate it while a step is in progress.
func (s *System) Elements() []*physics.Satellite {
	return s.bodies
}

// IterationCount returns the number of completed steps since construction.
func (s *System) IterationCount() uint64 {
	return s.iterations
}

// Find returns the first body with the given name, in insertion order.
// A miss is a normal absent result, not an error.
func (s *System) Find(name string) (*physics.Satellite, bool) {
	for _, body := range s.bodies {
		if body.Name() == name {
			return body, true
		}
	}
	return nil, false
}
