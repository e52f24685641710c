// SPDX-License-Identifier: MIT
// Package update: rank-one update of a Cholesky factor.
//
// Purpose:
//   - Declare the canonical operation tags and error wrapper shared by the
//     update kernels.
//   - Implement CholeskyUpdate: L·Lᴴ = A → L'·L'ᴴ = A + x·xᴴ in place.
//
// Notes:
//   - The companion LDL kernel lives in impl_ldl.go; reconstruction helpers
//     in impl_reconstruct.go. All kernels use the central validators and
//     return plain sentinels wrapped via updateErrorf at the facade.

package update

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCholeskyUpdate = "CholeskyUpdate"
	opLDLUpdate      = "LDLUpdate"
	opCholProduct    = "CholeskyProduct"
	opLDLProduct     = "LDLProduct"
	opMaxAbsDiff     = "MaxAbsDiff"
)

// updateErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
//
// Determinism:
//   - Fully deterministic formatting; no data-dependent branches.
//
// Complexity:
//   - Time O(1), Space O(1).
func updateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CholeskyUpdate folds the rank-one term x·xᴴ into a lower-triangular
// Cholesky factor in place: on success L satisfies
// L·Lᴴ = (old L)·(old L)ᴴ + x·xᴴ.
//
// Implementation:
//   - Stage 1: Validate shapes (nil, square, N>0, len(x)==N), then the
//     structural preconditions (strict upper triangle ~0, diagonal
//     nonzero) and finiteness policy — all BEFORE the first write.
//   - Stage 2: Walk columns left to right. At column i compute the new
//     pivot r = √(|L[i,i]|²+|x[i]|²), rotate the trailing sub-column into
//     the factor and rotate the trailing part of x to the residual still
//     owed to later columns:
//     L[i,i] := r
//     L[j,i] := (L[i,i]·L[j,i] + conj(x[i])·x[j]) / r   (old L[i,i], L[j,i])
//     x[j]   := (L[i,i]·x[j] − x[i]·L[j,i]) / r          (old values)
//     The last column reduces to the pivot assignment alone.
//
// Behavior highlights:
//   - In-place: L is mutated and returned for chaining; x is DESTROYED —
//     after the call it holds rotation residues, never the original vector
//     and never zeros. Copy x beforehand if you still need it.
//   - Column i depends on column i−1's output; the walk is strictly
//     sequential with a fixed i→j order.
//   - Fast-path on *Dense flat storage; any other Matrix runs the
//     identical recurrence through At/Set.
//   - Diagonal entries are expected real-positive (the standard Hermitian
//     Cholesky convention); the pivot uses |L[i,i]|², so a real factor with
//     negated diagonal entries still updates consistently.
//
// Inputs:
//   - l: N×N lower-triangular factor with nonzero diagonal, caller-owned.
//   - x: length-N update vector; mutable scratch, consumed by the call.
//   - opts: numeric policy (WithEpsilon, WithNoValidateNaNInf,
//     WithSkipStructureCheck).
//
// Returns:
//   - Matrix[T]: the same l, updated, still lower-triangular with real
//     positive diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions,
//     ErrDimensionMismatch (shape gate; operands untouched).
//   - ErrNotLowerTriangular, ErrZeroDiagonal (structure gate; untouched).
//   - ErrNaNInf (ingestion scan; untouched).
//   - ErrNumericalDegeneracy (a pivot came out non-positive/non-finite
//     mid-run; columns before the failing one stay mutated).
//
// Determinism:
//   - Identical inputs (same bit patterns) always produce identical
//     outputs: pure function over its mutable arguments, no hidden state.
//
// Complexity:
//   - Time O(N²) multiply-adds plus N square roots, Space O(1) — versus
//     O(N³) for refactorizing A + x·xᴴ from scratch.
//
// Notes:
//   - Callers must not alias x with l's backing storage and must not run
//     concurrent updates against the same instances (single-writer model).
//   - For atomic failure semantics, update a Clone and swap on success.
//
// AI-Hints:
//   - Keep l as *Dense[T] to stay on the flat-slice fast-path.
//   - Prefer LDLUpdate when square-root cost dominates: its factor path is
//     root-free.
func CholeskyUpdate[T Scalar](l Matrix[T], x []T, opts ...Option) (Matrix[T], error) {
	// Resolve numeric policy against documented defaults.
	opt := gatherOptions(opts...)

	// Shape gate: nil / square / N>0 / length — nothing mutated yet.
	if err := ValidateUpdateShapes(l, x); err != nil {
		return nil, updateErrorf(opCholeskyUpdate, err)
	}
	// Structure gate: triangular zero-pattern and nonzero diagonal.
	if opt.checkStructure {
		if err := ValidateLowerTriangular(l, opt.eps); err != nil {
			return nil, updateErrorf(opCholeskyUpdate, err)
		}
		if err := ValidateNonZeroDiagonal(l, opt.eps); err != nil {
			return nil, updateErrorf(opCholeskyUpdate, err)
		}
	}
	// Finiteness gate: reject NaN/±Inf before the first write.
	if opt.validateNaNInf {
		if err := ValidateFiniteLower(l); err != nil {
			return nil, updateErrorf(opCholeskyUpdate, err)
		}
		if err := ValidateFiniteVec(x); err != nil {
			return nil, updateErrorf(opCholeskyUpdate, err)
		}
	}

	// Run the sequential column recurrence.
	if err := choleskyKernel(l, x); err != nil {
		return nil, updateErrorf(opCholeskyUpdate, err)
	}

	// Return the mutated factor for chaining.
	return l, nil
}

// choleskyKernel runs the column recurrence on a pre-validated factor.
// Column i folds x's leading component into the factor through a
// Givens-style rotation of radius r and leaves the rotated remainder of x
// for later columns. Pre-step values of L[i,i] and L[j,i] feed both
// formulas, so each is captured before its slot is overwritten.
//
// Determinism: fixed i→j loop order on both paths.
// Complexity: Time O(N²), Space O(1).
func choleskyKernel[T Scalar](l Matrix[T], x []T) error {
	n := l.Rows()

	var (
		i, j     int     // loop iterators (deterministic order)
		lii, lji T       // pre-step factor entries
		xi       T       // pre-step leading component of the residual
		rT       T       // new pivot promoted into the scalar field
		pivotSq  float64 // |L[i,i]|² + |x[i]|², accumulated in float64
	)

	// Fast-path: *Dense flat storage, row-major strides.
	if dl, ok := l.(*Dense[T]); ok {
		var base int
		for i = 0; i < n; i++ {
			base = i * n
			lii = dl.data[base+i]
			xi = x[i]

			// New pivot magnitude: rotation radius of the column step.
			pivotSq = absSq(lii) + absSq(xi)
			if pivotSq <= 0 || isNonFinite(pivotSq) {
				return ErrNumericalDegeneracy
			}
			rT = sqrtAs[T](pivotSq) // root taken in T's native precision
			dl.data[base+i] = rT

			// Trailing sub-column rotation; empty for the last column.
			for j = i + 1; j < n; j++ {
				lji = dl.data[j*n+i]
				dl.data[j*n+i] = (lii*lji + conjugate(xi)*x[j]) / rT
				x[j] = (lii*x[j] - xi*lji) / rT
			}
		}

		return nil
	}

	// Fallback: interface path with identical semantics via At/Set.
	var err error
	for i = 0; i < n; i++ {
		lii, err = l.At(i, i)
		if err != nil {
			return fmt.Errorf("At(%d,%d): %w", i, i, err)
		}
		xi = x[i]

		pivotSq = absSq(lii) + absSq(xi)
		if pivotSq <= 0 || isNonFinite(pivotSq) {
			return ErrNumericalDegeneracy
		}
		rT = sqrtAs[T](pivotSq)
		if err = l.Set(i, i, rT); err != nil {
			return fmt.Errorf("Set(%d,%d): %w", i, i, err)
		}

		for j = i + 1; j < n; j++ {
			lji, err = l.At(j, i)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", j, i, err)
			}
			if err = l.Set(j, i, (lii*lji+conjugate(xi)*x[j])/rT); err != nil {
				return fmt.Errorf("Set(%d,%d): %w", j, i, err)
			}
			x[j] = (lii*x[j] - xi*lji) / rT
		}
	}

	return nil
}
