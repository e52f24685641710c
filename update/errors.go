// SPDX-License-Identifier: MIT
// Package update: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the update
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package update

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "update: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the facade — callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape -> structural violations -> NaN/Inf ingestion
// -> numerical degeneracy (the only mid-run error).

var (
	// ErrNilMatrix indicates that a nil Matrix (or nil slice argument) was
	// passed where a concrete factor or vector is required.
	ErrNilMatrix = errors.New("update: nil matrix or vector")

	// ErrInvalidDimensions indicates that requested dimensions are
	// non-positive (N must be > 0 for any factor or update vector).
	ErrInvalidDimensions = errors.New("update: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("update: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between the
	// factor L, the diagonal d, and the update vector x.
	ErrDimensionMismatch = errors.New("update: dimension mismatch")

	// ErrNonSquare signals that a square factor was required but the input
	// wasn't. Triangular factors are square by definition.
	ErrNonSquare = errors.New("update: matrix is not square")

	// ErrNotLowerTriangular signals that the strict upper triangle of a
	// factor carries entries above the configured epsilon: the input is not
	// a lower-triangular factor and the update would silently corrupt it.
	ErrNotLowerTriangular = errors.New("update: matrix is not lower-triangular within eps")

	// ErrZeroDiagonal signals that a Cholesky factor carries a zero (or
	// sub-epsilon) diagonal entry on entry; such a factor cannot have come
	// from a positive-definite matrix.
	ErrZeroDiagonal = errors.New("update: zero diagonal entry in triangular factor")

	// ErrNonPositivePivot signals that an LDL diagonal entry is ≤ 0 on
	// entry; the positive-definite precondition requires strictly positive
	// pivots.
	ErrNonPositivePivot = errors.New("update: non-positive diagonal pivot")

	// ErrNaNInf signals a NaN or ±Inf value was encountered during the
	// pre-mutation ingestion scan where finite values are required.
	ErrNaNInf = errors.New("update: NaN or Inf encountered")

	// ErrNumericalDegeneracy signals that a pivot computation produced a
	// non-positive or non-finite value mid-update, where positive
	// definiteness guarantees a strictly positive one. The update aborts at
	// that column: columns already processed stay mutated (partial-failure
	// state). Callers needing atomicity must operate on a copy.
	ErrNumericalDegeneracy = errors.New("update: numerically degenerate pivot")
)
