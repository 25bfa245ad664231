package decmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Vector is an immutable 3D vector of exact decimals. Every operation
// returns a new Vector and leaves its operands untouched.
type Vector struct {
	X, Y, Z decimal.Decimal
}

// Zero is the additive identity and the default velocity of a body at rest.
var Zero = Vector{}

// NewVector builds a vector from three decimal components.
func NewVector(x, y, z decimal.Decimal) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorFromFloats builds a vector from float64 components. Intended for
// scenario seeding and tests, where the inputs are human-entered values.
func NewVectorFromFloats(x, y, z float64) Vector {
	return Vector{
		X: decimal.NewFromFloat(x),
		Y: decimal.NewFromFloat(y),
		Z: decimal.NewFromFloat(z),
	}
}

// Add returns v + o. Exact.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Sub returns v - o. Exact.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y), Z: v.Z.Sub(o.Z)}
}

// Mul returns v scaled by s. Exact.
func (v Vector) Mul(s decimal.Decimal) Vector {
	return Vector{X: v.X.Mul(s), Y: v.Y.Mul(s), Z: v.Z.Mul(s)}
}

// Div returns v scaled by 1/s, each component rounded to the precision
// policy. Panics if s is zero.
func (v Vector) Div(s decimal.Decimal) Vector {
	return Vector{X: Div(v.X, s), Y: Div(v.Y, s), Z: Div(v.Z, s)}
}

// Cross returns the right-handed cross product v x o. Exact.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		Y: v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		Z: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

// Length returns the Euclidean norm, rounded to the precision policy.
func (v Vector) Length() decimal.Decimal {
	return Sqrt(v.X.Mul(v.X).Add(v.Y.Mul(v.Y)).Add(v.Z.Mul(v.Z)))
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}

// Equal reports component-wise numeric equality.
func (v Vector) Equal(o Vector) bool {
	return v.X.Equal(o.X) && v.Y.Equal(o.Y) && v.Z.Equal(o.Z)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.X, v.Y, v.Z)
}
