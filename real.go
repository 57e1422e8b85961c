// real.go - Tolerant-comparison scalar used throughout the draw pipeline

package gm8run

import "math"

// cmpEpsilon is the tolerance applied to Real comparisons, matching the
// legacy runtime's x87-derived equality semantics.
const cmpEpsilon = 1e-13

// Real wraps a float64. Arithmetic is plain float64 arithmetic; no 80-bit
// extended-precision intermediate is carried between or within
// operations. Equality and ordering are tolerance-based rather than
// bitwise; see Equal/Compare.
type Real float64

// RealFromInt converts an integer to Real.
func RealFromInt(i int) Real {
	return Real(float64(i))
}

// Float64 returns the underlying float64 value.
func (r Real) Float64() float64 {
	return float64(r)
}

func (r Real) Add(other Real) Real {
	return Real(float64(r) + float64(other))
}

func (r Real) Sub(other Real) Real {
	return Real(float64(r) - float64(other))
}

func (r Real) Mul(other Real) Real {
	return Real(float64(r) * float64(other))
}

func (r Real) Div(other Real) Real {
	return Real(float64(r) / float64(other))
}

func (r Real) Neg() Real {
	return Real(-float64(r))
}

func (r Real) Abs() Real {
	return Real(math.Abs(float64(r)))
}

func (r Real) Sin() Real {
	return Real(math.Sin(float64(r)))
}

func (r Real) Cos() Real {
	return Real(math.Cos(float64(r)))
}

func (r Real) Tan() Real {
	return Real(math.Tan(float64(r)))
}

func (r Real) Floor() Real {
	return Real(math.Floor(float64(r)))
}

// Round performs banker's rounding (round-half-to-even) and wraps the
// result to 32 bits, matching the legacy FISTP-based rounding behaviour.
func (r Real) Round() int32 {
	return int32(uint32(r.Round64()))
}

// Round64 performs banker's rounding to a 64-bit result.
func (r Real) Round64() int64 {
	return int64(math.RoundToEven(float64(r)))
}

// Equal reports whether r and other are within cmpEpsilon of each other.
// Not transitive: near-equal chains may not all compare equal pairwise.
func (r Real) Equal(other Real) bool {
	return math.Abs(float64(r)-float64(other)) < cmpEpsilon
}

// Greater reports whether r is greater than other outside tolerance.
func (r Real) Greater(other Real) bool {
	return float64(r)-float64(other) >= cmpEpsilon
}

// Less reports whether r is less than other outside tolerance.
func (r Real) Less(other Real) bool {
	return float64(r)-float64(other) <= -cmpEpsilon
}

// GreaterOrEqual reports r >= other under tolerant comparison.
func (r Real) GreaterOrEqual(other Real) bool {
	return !r.Less(other)
}

// LessOrEqual reports r <= other under tolerant comparison.
func (r Real) LessOrEqual(other Real) bool {
	return !r.Greater(other)
}

// Compare returns -1, 0, or 1 following the tolerant total preorder
// described in spec §4.A: a difference of magnitude >= cmpEpsilon decides
// the order, otherwise the values are treated as equal.
func (r Real) Compare(other Real) int {
	diff := float64(r) - float64(other)
	switch {
	case diff >= cmpEpsilon:
		return 1
	case diff <= -cmpEpsilon:
		return -1
	default:
		return 0
	}
}
