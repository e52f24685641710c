// SPDX-License-Identifier: MIT
// Package update: scalar-field helpers shared by both kernels.
//
// Purpose:
//   - Provide the handful of field primitives the recurrences need beyond
//     native +, −, ×, ÷: conjugation, squared magnitude, real promotion and
//     a native-precision square root.
//   - Keep numeric policy in one place: magnitudes always accumulate in
//     float64; single-precision lanes (float32, complex64) take their square
//     roots through math32 so results stay representable in-field.
//
// Determinism & Performance:
//   - All helpers are pure, branch on the dynamic scalar type only, and
//     allocate nothing.
//
// AI-Hints:
//   - The Scalar constraint is closed (exact types, no ~): the type switches
//     below are exhaustive by construction.
//   - absSq returns float64 for every lane; convert back via fromReal/sqrtAs
//     only at the single point a pivot re-enters the factor.

package update

import (
	"math"
	"math/cmplx"

	"github.com/chewxy/math32"
)

// conjugate returns the complex conjugate of v; real lanes pass through.
// Complexity: O(1).
func conjugate[T Scalar](v T) T {
	switch s := any(v).(type) {
	case complex64:
		return any(complex(real(s), -imag(s))).(T)
	case complex128:
		return any(cmplx.Conj(s)).(T)
	default:
		// float32 / float64: conjugation is the identity.
		return v
	}
}

// absSq returns |v|² accumulated in float64 regardless of the lane.
// Squared magnitudes feed pivot sums; double accumulation keeps the
// recurrence deterministic across lanes.
// Complexity: O(1).
func absSq[T Scalar](v T) float64 {
	switch s := any(v).(type) {
	case float32:
		return float64(s) * float64(s)
	case float64:
		return s * s
	case complex64:
		re, im := float64(real(s)), float64(imag(s))
		return re*re + im*im
	case complex128:
		return real(s)*real(s) + imag(s)*imag(s)
	}
	// Unreachable: Scalar is a closed constraint.
	return 0
}

// fromReal promotes a real value into the scalar field T (imaginary part
// zero for complex lanes, precision narrowing for 32-bit lanes).
// Complexity: O(1).
func fromReal[T Scalar](r float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(r)).(T)
	case float64:
		return any(r).(T)
	case complex64:
		return any(complex(float32(r), 0)).(T)
	case complex128:
		return any(complex(r, 0)).(T)
	}
	// Unreachable: Scalar is a closed constraint.
	return z
}

// sqrtAs returns √r represented in T, taking the root in T's native
// precision: math32.Sqrt on single-precision lanes, math.Sqrt otherwise.
// Callers must pass r ≥ 0; pivot guards run before this point.
// Complexity: O(1).
func sqrtAs[T Scalar](r float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(math32.Sqrt(float32(r))).(T)
	case float64:
		return any(math.Sqrt(r)).(T)
	case complex64:
		return any(complex(math32.Sqrt(float32(r)), 0)).(T)
	case complex128:
		return any(complex(math.Sqrt(r), 0)).(T)
	}
	// Unreachable: Scalar is a closed constraint.
	return z
}

// isFinite reports whether every component of v is finite (no NaN, no ±Inf).
// Single-precision lanes are inspected with math32 to avoid widening
// artifacts; complex lanes check both components.
// Complexity: O(1).
func isFinite[T Scalar](v T) bool {
	switch s := any(v).(type) {
	case float32:
		return !math32.IsNaN(s) && !math32.IsInf(s, 0)
	case float64:
		return !math.IsNaN(s) && !math.IsInf(s, 0)
	case complex64:
		re, im := real(s), imag(s)
		return !math32.IsNaN(re) && !math32.IsInf(re, 0) &&
			!math32.IsNaN(im) && !math32.IsInf(im, 0)
	case complex128:
		return !cmplx.IsNaN(s) && !cmplx.IsInf(s)
	}
	// Unreachable: Scalar is a closed constraint.
	return false
}

// isNonFinite reports NaN or ±Inf for plain float64 policy values
// (tolerances, diagonal pivots).
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
