// Package decmath provides the exact-decimal scalar and vector arithmetic
// the simulation engine is built on.
//
// Addition, subtraction and multiplication are exact. Division and square
// root cannot be exact in general, so both round to a single fixed policy:
// Precision decimal places. The policy must be applied uniformly or
// conserved-quantity checks drift from inconsistent rounding.
package decmath

import (
	"math"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept by every inexact
// operation (division, square root).
const Precision = 40

var (
	half = decimal.New(5, -1)

	// sqrtTolerance is 10^-Precision, the convergence threshold for Sqrt.
	sqrtTolerance = decimal.New(1, -Precision)
)

// Div divides a by b, rounded to the precision policy.
// Panics on division by zero, like decimal.Decimal.Div.
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, Precision)
}

// Sqrt returns the square root of d rounded to the precision policy.
// It panics if d is negative.
func Sqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		panic("decmath: square root of negative decimal")
	}
	if d.IsZero() {
		return decimal.Zero
	}

	x := initialSqrtGuess(d)

	// Newton's iteration: x <- (x + d/x) / 2. The float64 seed is close
	// enough that a handful of iterations reach full precision.
	for i := 0; i < 64; i++ {
		next := x.Add(d.DivRound(x, Precision+2)).Mul(half)
		if next.Sub(x).Abs().Cmp(sqrtTolerance) <= 0 {
			x = next
			break
		}
		x = next
	}

	return x.Round(Precision)
}

func initialSqrtGuess(d decimal.Decimal) decimal.Decimal {
	f, _ := d.Float64()
	if f > 0 && !math.IsInf(f, 0) {
		if g := math.Sqrt(f); g > 0 && !math.IsInf(g, 0) {
			return decimal.NewFromFloat(g)
		}
	}
	// Out of float64 range: halve the exponent instead.
	return decimal.New(1, d.Exponent()/2+int32(len(d.Coefficient().String()))/2)
}
