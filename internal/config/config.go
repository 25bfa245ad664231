// Package config loads and saves YAML scenario files and carries the
// built-in presets. Decimal-valued fields are strings in the YAML so that
// arbitrary-precision values survive the round trip unclipped.
package config

import (
	"fmt"
	"os"

	"github.com/astrolab/orbsim/internal/builder"
	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/astrolab/orbsim/internal/sim"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultSteps is the run length used when a scenario does not set one.
const DefaultSteps = 1000

// Config is one simulation scenario.
type Config struct {
	Name   string       `yaml:"name"`
	Steps  int          `yaml:"steps"`
	Bodies []BodyConfig `yaml:"bodies"`
}

// BodyConfig mirrors builder.BodySpec. Exactly one of Position and Orbit
// must be set; the builder enforces this at build time.
type BodyConfig struct {
	Name     string        `yaml:"name"`
	Mass     string        `yaml:"mass"`
	Radius   string        `yaml:"radius"`
	Position *VectorConfig `yaml:"position,omitempty"`
	Velocity *VectorConfig `yaml:"velocity,omitempty"`
	Orbit    *OrbitConfig  `yaml:"orbit,omitempty"`
}

// VectorConfig is a decimal triple.
type VectorConfig struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
	Z string `yaml:"z"`
}

// OrbitConfig carries reduced orbital elements. Angles are plain floats,
// the axis and speed keep full decimal precision.
type OrbitConfig struct {
	SemiMajorAxis  string  `yaml:"semi_major_axis"`
	InclinationDeg float64 `yaml:"inclination_deg"`
	ThetaDeg       float64 `yaml:"theta_deg"`
	StartSpeed     string  `yaml:"start_speed"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Steps: DefaultSteps}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a scenario to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Specs converts the scenario bodies to builder specs, surfacing malformed
// decimals with the body they belong to.
func (c *Config) Specs() ([]builder.BodySpec, error) {
	specs := make([]builder.BodySpec, 0, len(c.Bodies))

	for i, b := range c.Bodies {
		spec := builder.BodySpec{Name: b.Name}

		var err error
		if spec.Mass, err = parseDecimal(b.Mass); err != nil {
			return nil, fmt.Errorf("body %d (%q): mass: %w", i, b.Name, err)
		}
		if spec.Radius, err = parseDecimal(b.Radius); err != nil {
			return nil, fmt.Errorf("body %d (%q): radius: %w", i, b.Name, err)
		}

		if b.Position != nil {
			v, err := b.Position.vector()
			if err != nil {
				return nil, fmt.Errorf("body %d (%q): position: %w", i, b.Name, err)
			}
			spec.Position = &v
		}
		if b.Velocity != nil {
			v, err := b.Velocity.vector()
			if err != nil {
				return nil, fmt.Errorf("body %d (%q): velocity: %w", i, b.Name, err)
			}
			spec.Velocity = &v
		}
		if b.Orbit != nil {
			orbit := builder.OrbitSpec{
				InclinationDeg: b.Orbit.InclinationDeg,
				ThetaDeg:       b.Orbit.ThetaDeg,
			}
			if orbit.SemiMajorAxis, err = parseDecimal(b.Orbit.SemiMajorAxis); err != nil {
				return nil, fmt.Errorf("body %d (%q): semi_major_axis: %w", i, b.Name, err)
			}
			if orbit.StartSpeed, err = parseDecimal(b.Orbit.StartSpeed); err != nil {
				return nil, fmt.Errorf("body %d (%q): start_speed: %w", i, b.Name, err)
			}
			spec.Orbit = &orbit
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// Build assembles the scenario into a populated system.
func (c *Config) Build() (*sim.System, error) {
	specs, err := c.Specs()
	if err != nil {
		return nil, err
	}

	b := builder.New()
	for _, spec := range specs {
		b.Add(spec)
	}
	return b.Build()
}

func (v *VectorConfig) vector() (decmath.Vector, error) {
	x, err := parseDecimal(v.X)
	if err != nil {
		return decmath.Zero, fmt.Errorf("x: %w", err)
	}
	y, err := parseDecimal(v.Y)
	if err != nil {
		return decmath.Zero, fmt.Errorf("y: %w", err)
	}
	z, err := parseDecimal(v.Z)
	if err != nil {
		return decmath.Zero, fmt.Errorf("z: %w", err)
	}
	return decmath.NewVector(x, y, z), nil
}

// parseDecimal treats the empty string as zero so optional fields can be
// omitted from scenario files.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
