package sim

import (
	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/shopspring/decimal"
)

// BoundingBox is the axis-aligned extent of all body positions at the
// moment of query. It is a derived snapshot, never cached.
type BoundingBox struct {
	Min, Max decmath.Vector
}

// Diagonal returns the length of the box diagonal.
func (b BoundingBox) Diagonal() decimal.Decimal {
	return b.Max.Sub(b.Min).Length()
}

// BoundingBox computes the min/max coordinates across all bodies. The
// second return is false for an empty system, where no extent exists.
func (s *System) BoundingBox() (BoundingBox, bool) {
	if len(s.bodies) == 0 {
		return BoundingBox{}, false
	}

	first := s.bodies[0].Position()
	box := BoundingBox{Min: first, Max: first}

	for _, body := range s.bodies[1:] {
		p := body.Position()
		box.Min.X = decimal.Min(box.Min.X, p.X)
		box.Min.Y = decimal.Min(box.Min.Y, p.Y)
		box.Min.Z = decimal.Min(box.Min.Z, p.Z)
		box.Max.X = decimal.Max(box.Max.X, p.X)
		box.Max.Y = decimal.Max(box.Max.Y, p.Y)
		box.Max.Z = decimal.Max(box.Max.Z, p.Z)
	}

	return box, true
}
