// SPDX-License-Identifier: MIT
// Package: update
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/structure checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Structure checks run O(n²) on the strict upper triangle only — the same
//    order as the update itself, so fail-fast validation never dominates.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Every validator runs BEFORE the first factor write; a failed validation
//    guarantees L, d, x are untouched.
//  - Use ValidateLowerTriangular/ValidatePositiveDiagonal to pre-flight
//    factors produced by external factorizers before entering an update loop.

package update

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Errors: ErrNonSquare if rows ≠ cols.
// Complexity: O(1).
// AI-Hints: Triangular factors are square by definition; run this before
// any structural scan.
func ValidateSquare[T Scalar](m Matrix[T]) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Scalar](x []T, n int) error {
	// Disallow nil vectors to avoid subtle bugs inside the column loops.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the unified "nil argument" sentinel
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch) // vector length must match the factor order
	}

	return nil
}

// ValidateDiagLen ensures the LDL diagonal d has exactly n entries.
// Time: O(1). Space: O(1).
func ValidateDiagLen(d []float64, n int) error {
	if d == nil {
		return validatorErrorf("ValidateDiagLen", ErrNilMatrix)
	}
	if len(d) != n {
		return validatorErrorf("ValidateDiagLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateLowerTriangular checks that the strict upper triangle of m is
// structurally zero within eps: |m[i,j]| ≤ eps for all j > i.
//
// Implementation:
//   - Stage 1: Guard nil, square, and eps finiteness (negative eps is folded
//     to its absolute value).
//   - Stage 2: Scan the strict upper triangle in fixed i→j order; fail fast
//     on the first violation via the squared-magnitude comparison
//     |m[i,j]|² ≤ eps² (no square roots on the scan path).
//
// Behavior highlights:
//   - Deterministic i→j order, fast-path on *Dense flat storage.
//
// Inputs:
//   - m: square Matrix expected lower-triangular.
//   - eps: non-negative structural tolerance (0 demands exact zeros).
//
// Returns:
//   - error: nil, or the first sentinel violated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad eps),
//     ErrNotLowerTriangular on violation.
//
// Determinism:
//   - Fixed traversal; identical inputs fail at the identical entry.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - Both update facades call this by default; use WithSkipStructureCheck
//     to bypass on hot paths where the factor provenance is trusted.
func ValidateLowerTriangular[T Scalar](m Matrix[T], eps float64) error {
	// Guard nil first.
	if m == nil {
		return validatorErrorf("ValidateLowerTriangular", ErrNilMatrix) // avoid dereferencing nil
	}
	// Triangular factors must be square.
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateLowerTriangular", err)
	}
	// Normalize tolerance to a non-negative finite value.
	if isNonFinite(eps) {
		return validatorErrorf("ValidateLowerTriangular", ErrNaNInf) // invalid tolerance is a numeric policy violation
	}
	if eps < 0 {
		eps = -eps
	}

	// Early return path: a 1×1 matrix has no strict upper triangle.
	n := m.Rows()
	if n <= 1 {
		return nil // nothing to scan
	}

	// Compare against eps² to keep the scan square-root free.
	epsSq := eps * eps

	var i, j int // loop iterators (deterministic order)
	// Fast-path: *Dense flat storage.
	if dm, ok := m.(*Dense[T]); ok {
		var base int
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ { // strict upper triangle only
				if absSq(dm.data[base+j]) > epsSq {
					return validatorErrorf("ValidateLowerTriangular", ErrNotLowerTriangular)
				}
			}
		}
		return nil
	}

	// Fallback: interface path via At (bounds already validated by shape).
	var v T
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateLowerTriangular", err)
			}
			if absSq(v) > epsSq {
				return validatorErrorf("ValidateLowerTriangular", ErrNotLowerTriangular)
			}
		}
	}

	return nil
}

// ValidateNonZeroDiagonal checks |m[i,i]| > eps for every diagonal entry of
// a Cholesky-style factor. Assumes m non-nil and square (caller ensures).
//
// Errors: ErrZeroDiagonal on the first sub-epsilon entry.
// Complexity: O(n), Space O(1).
// AI-Hints: A zero diagonal cannot come from a positive-definite matrix;
// reject before the kernel divides by the rotation radius.
func ValidateNonZeroDiagonal[T Scalar](m Matrix[T], eps float64) error {
	if eps < 0 {
		eps = -eps
	}
	epsSq := eps * eps

	n := m.Rows()
	var i int
	// Fast-path: *Dense flat storage.
	if dm, ok := m.(*Dense[T]); ok {
		for i = 0; i < n; i++ {
			if absSq(dm.data[i*n+i]) <= epsSq {
				return validatorErrorf("ValidateNonZeroDiagonal", ErrZeroDiagonal)
			}
		}
		return nil
	}

	// Fallback: interface path.
	var v T
	var err error
	for i = 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return validatorErrorf("ValidateNonZeroDiagonal", err)
		}
		if absSq(v) <= epsSq {
			return validatorErrorf("ValidateNonZeroDiagonal", ErrZeroDiagonal)
		}
	}

	return nil
}

// ValidatePositiveDiagonal checks every LDL pivot d[i] is strictly positive
// and finite.
//
// Errors: ErrNaNInf on a non-finite pivot, ErrNonPositivePivot on d[i] ≤ 0.
// Complexity: O(n), Space O(1).
func ValidatePositiveDiagonal(d []float64) error {
	for i := 0; i < len(d); i++ {
		if isNonFinite(d[i]) {
			return validatorErrorf("ValidatePositiveDiagonal", ErrNaNInf)
		}
		if d[i] <= 0 {
			return validatorErrorf("ValidatePositiveDiagonal", ErrNonPositivePivot)
		}
	}

	return nil
}

// ValidateFiniteLower scans the on/below-diagonal entries of m for NaN/±Inf.
// Assumes m non-nil and square (caller ensures). The strict upper triangle
// is structural zero territory and is covered by ValidateLowerTriangular.
//
// Errors: ErrNaNInf on the first non-finite entry.
// Complexity: O(n²), Space O(1).
func ValidateFiniteLower[T Scalar](m Matrix[T]) error {
	n := m.Rows()
	var i, j int
	// Fast-path: *Dense flat storage.
	if dm, ok := m.(*Dense[T]); ok {
		var base int
		for i = 0; i < n; i++ {
			base = i * n
			for j = 0; j <= i; j++ { // on/below diagonal only
				if !isFinite(dm.data[base+j]) {
					return validatorErrorf("ValidateFiniteLower", ErrNaNInf)
				}
			}
		}
		return nil
	}

	// Fallback: interface path.
	var v T
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFiniteLower", err)
			}
			if !isFinite(v) {
				return validatorErrorf("ValidateFiniteLower", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteDiag scans an LDL diagonal for NaN/±Inf entries without
// imposing the positivity precondition (that is ValidatePositiveDiagonal's
// job under the structure gate).
//
// Errors: ErrNaNInf on the first non-finite entry.
// Complexity: O(n), Space O(1).
func ValidateFiniteDiag(d []float64) error {
	for i := 0; i < len(d); i++ {
		if isNonFinite(d[i]) {
			return validatorErrorf("ValidateFiniteDiag", ErrNaNInf)
		}
	}

	return nil
}

// ValidateFiniteVec scans x for NaN/±Inf components.
//
// Errors: ErrNaNInf on the first non-finite entry.
// Complexity: O(n), Space O(1).
func ValidateFiniteVec[T Scalar](x []T) error {
	for i := 0; i < len(x); i++ {
		if !isFinite(x[i]) {
			return validatorErrorf("ValidateFiniteVec", ErrNaNInf)
		}
	}

	return nil
}

// ValidateUpdateShapes – Composite: NotNil(L) → Square(L) → N>0 → VecLen(x).
// The shared pre-mutation shape gate for both updaters.
//
// Errors: Combines ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions,
// ErrDimensionMismatch.
// Complexity: O(1).
func ValidateUpdateShapes[T Scalar](l Matrix[T], x []T) error {
	if err := ValidateNotNil(l); err != nil {
		return validatorErrorf("ValidateUpdateShapes", err)
	}
	if err := ValidateSquare(l); err != nil {
		return validatorErrorf("ValidateUpdateShapes", err)
	}
	// An empty factor cannot anchor an update.
	if l.Rows() <= 0 {
		return validatorErrorf("ValidateUpdateShapes", ErrInvalidDimensions)
	}
	if err := ValidateVecLen(x, l.Rows()); err != nil {
		return validatorErrorf("ValidateUpdateShapes", err)
	}

	return nil
}
