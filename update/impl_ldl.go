// SPDX-License-Identifier: MIT
// Package update: rank-one update of a unit-lower-triangular / diagonal
// (LDL) factorization. Structurally parallel to impl_cholesky.go; the
// distinguishing property is that forming L' and D' needs no square roots
// at all — the single root per column only scales the residual vector.

package update

import "fmt"

// LDLUpdate folds the rank-one term x·xᴴ into an LDL factorization in
// place: on success L, d satisfy
// L·D·Lᴴ = (old L)·(old D)·(old L)ᴴ + x·xᴴ.
//
// Implementation:
//   - Stage 1: Validate shapes (nil, square, N>0, len(x)==len(d)==N), then
//     the structural preconditions (strict upper triangle ~0, pivots
//     strictly positive) and finiteness policy — all BEFORE the first write.
//   - Stage 2: Walk columns left to right. At column i compute the new
//     pivot g = d[i] + |x[i]|², then for rows j>i:
//     L[j,i] := (d[i]·L[j,i] + conj(x[i])·x[j]) / g   (old d[i], L[j,i])
//     x[j]   := √(d[i]/g) · (x[i]·L[j,i] − x[j])       (old values)
//     and finally d[i] := g. The last column reduces to the pivot add.
//
// Behavior highlights:
//   - In-place: L and d are mutated and returned for chaining; x is
//     DESTROYED (rotation residues). L's diagonal is implicitly 1 — it is
//     neither read nor written, so whatever the diagonal slots hold stays.
//   - Square-root free on the factor path: the only root per column scales
//     the residual, making this variant cheaper than CholeskyUpdate where
//     roots dominate cost.
//   - Sequential by column, fixed i→j order; *Dense fast-path plus an
//     identical At/Set fallback.
//
// Inputs:
//   - l: N×N unit-lower-triangular factor (diagonal implicit), caller-owned.
//   - d: N strictly positive real pivots, caller-owned, mutated in place.
//   - x: length-N update vector; mutable scratch, consumed by the call.
//   - opts: numeric policy (WithEpsilon, WithNoValidateNaNInf,
//     WithSkipStructureCheck).
//
// Returns:
//   - Matrix[T]: the same l, updated, still unit-lower-triangular.
//   - []float64: the same d, updated, still strictly positive.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions,
//     ErrDimensionMismatch (shape gate; operands untouched).
//   - ErrNotLowerTriangular, ErrNonPositivePivot (structure gate; untouched).
//   - ErrNaNInf (ingestion scan; untouched).
//   - ErrNumericalDegeneracy (pivot g ≤ 0 or non-finite mid-run — possible
//     only through violated preconditions or underflow; columns before the
//     failing one stay mutated).
//
// Determinism:
//   - Identical inputs always produce identical outputs; pivots accumulate
//     in float64 on every scalar lane.
//
// Complexity:
//   - Time O(N²), Space O(1).
//
// Notes:
//   - d stays []float64 for every lane: Hermitian pivots are real by
//     construction and double accumulation keeps the recurrence stable.
//   - No aliasing between x and l/d storage; single-writer access only.
//
// AI-Hints:
//   - Keep l as *Dense[T] for the flat fast-path.
//   - The unit diagonal is a convention, not data: store 1s or 0s there,
//     the kernel never looks.
func LDLUpdate[T Scalar](l Matrix[T], d []float64, x []T, opts ...Option) (Matrix[T], []float64, error) {
	// Resolve numeric policy against documented defaults.
	opt := gatherOptions(opts...)

	// Shape gate: nil / square / N>0 / lengths — nothing mutated yet.
	if err := ValidateUpdateShapes(l, x); err != nil {
		return nil, nil, updateErrorf(opLDLUpdate, err)
	}
	if err := ValidateDiagLen(d, l.Rows()); err != nil {
		return nil, nil, updateErrorf(opLDLUpdate, err)
	}
	// Structure gate: triangular zero-pattern and strictly positive pivots.
	if opt.checkStructure {
		if err := ValidateLowerTriangular(l, opt.eps); err != nil {
			return nil, nil, updateErrorf(opLDLUpdate, err)
		}
		if err := ValidatePositiveDiagonal(d); err != nil {
			return nil, nil, updateErrorf(opLDLUpdate, err)
		}
	}
	// Finiteness gate: reject NaN/±Inf before the first write.
	if opt.validateNaNInf {
		if err := ValidateFiniteLower(l); err != nil {
			return nil, nil, updateErrorf(opLDLUpdate, err)
		}
		if err := ValidateFiniteDiag(d); err != nil {
			return nil, nil, updateErrorf(opLDLUpdate, err)
		}
		if err := ValidateFiniteVec(x); err != nil {
			return nil, nil, updateErrorf(opLDLUpdate, err)
		}
	}

	// Run the sequential column recurrence.
	if err := ldlKernel(l, d, x); err != nil {
		return nil, nil, updateErrorf(opLDLUpdate, err)
	}

	// Return both mutated factors for chaining.
	return l, d, nil
}

// ldlKernel runs the column recurrence on pre-validated factors. Pre-step
// values of d[i] and L[j,i] feed both formulas, so each is captured before
// its slot is overwritten; d[i] itself is committed last.
//
// Determinism: fixed i→j loop order on both paths.
// Complexity: Time O(N²), Space O(1).
func ldlKernel[T Scalar](l Matrix[T], d []float64, x []T) error {
	n := l.Rows()

	var (
		i, j   int     // loop iterators (deterministic order)
		lji    T       // pre-step sub-column entry
		xi     T       // pre-step leading component of the residual
		di, g  float64 // pre-step pivot and new pivot
		diT    T       // pre-step pivot promoted into the scalar field
		gT     T       // new pivot promoted into the scalar field
		resCoe T       // residual scale √(d[i]/g) in T's native precision
	)

	// Fast-path: *Dense flat storage, row-major strides.
	if dl, ok := l.(*Dense[T]); ok {
		for i = 0; i < n; i++ {
			xi = x[i]
			di = d[i]

			// New diagonal pivot; strictly positive under a valid PD input.
			g = di + absSq(xi)
			if g <= 0 || isNonFinite(g) {
				return ErrNumericalDegeneracy
			}

			// Trailing sub-column and residual; empty for the last column.
			if i < n-1 {
				diT = fromReal[T](di)
				gT = fromReal[T](g)
				resCoe = sqrtAs[T](di / g)
				for j = i + 1; j < n; j++ {
					lji = dl.data[j*n+i]
					dl.data[j*n+i] = (diT*lji + conjugate(xi)*x[j]) / gT
					x[j] = resCoe * (xi*lji - x[j])
				}
			}

			// Commit the pivot after the sub-column consumed the old value.
			d[i] = g
		}

		return nil
	}

	// Fallback: interface path with identical semantics via At/Set.
	var err error
	for i = 0; i < n; i++ {
		xi = x[i]
		di = d[i]

		g = di + absSq(xi)
		if g <= 0 || isNonFinite(g) {
			return ErrNumericalDegeneracy
		}

		if i < n-1 {
			diT = fromReal[T](di)
			gT = fromReal[T](g)
			resCoe = sqrtAs[T](di / g)
			for j = i + 1; j < n; j++ {
				lji, err = l.At(j, i)
				if err != nil {
					return fmt.Errorf("At(%d,%d): %w", j, i, err)
				}
				if err = l.Set(j, i, (diT*lji+conjugate(xi)*x[j])/gT); err != nil {
					return fmt.Errorf("Set(%d,%d): %w", j, i, err)
				}
				x[j] = resCoe * (xi*lji - x[j])
			}
		}

		d[i] = g
	}

	return nil
}
