// SPDX-License-Identifier: MIT
// Package update: reconstruction helpers. The updaters never materialize
// the target matrix A; these kernels reform it from its factors on demand
// so callers (and this package's tests) can verify an update against
// A + x·xᴴ without keeping A around.

package update

import "math"

// CholeskyProduct reforms A = L·Lᴴ as a fresh Dense.
// Implementation:
//   - Stage 1: Validate l non-nil and square; allocate Dense(n×n).
//   - Stage 2: For j ≤ i accumulate A[i,j] = Σ_{k≤j} L[i,k]·conj(L[j,k]) in
//     fixed i→j→k order and mirror A[j,i] = conj(A[i,j]).
//
// Behavior highlights:
//   - Only the stored lower triangle of l is read; the strict upper
//     triangle is treated as structural zeros regardless of content.
//   - Input is never mutated; result is always a freshly allocated Dense.
//
// Inputs:
//   - l: N×N lower-triangular factor.
//
// Returns:
//   - Matrix[T]: new Dense with the Hermitian product L·Lᴴ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed loop orders; stable accumulation.
//
// Complexity:
//   - Time O(N³), Space O(N²). Verification-grade, not an update path.
//
// AI-Hints:
//   - Pair with MaxAbsDiff to bound ‖L'·L'ᴴ − (A + x·xᴴ)‖_max after an
//     update; keep N modest — this is the O(N³) cost the updaters avoid.
func CholeskyProduct[T Scalar](l Matrix[T]) (Matrix[T], error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(l); err != nil {
		return nil, updateErrorf(opCholProduct, err)
	}
	if err := ValidateSquare(l); err != nil {
		return nil, updateErrorf(opCholProduct, err)
	}

	// Allocate result Dense.
	n := l.Rows()
	res, err := NewDense[T](n, n)
	if err != nil {
		return nil, updateErrorf(opCholProduct, err)
	}

	var (
		i, j, k  int // loop iterators (deterministic order)
		acc      T   // Hermitian accumulator for A[i,j]
		lik, ljk T   // factor entries L[i,k], L[j,k]
	)

	// Fast-path: *Dense flat storage.
	if dl, ok := l.(*Dense[T]); ok {
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				acc = 0
				for k = 0; k <= j; k++ { // columns beyond j are structural zeros in row j
					acc += dl.data[i*n+k] * conjugate(dl.data[j*n+k])
				}
				res.data[i*n+j] = acc
				res.data[j*n+i] = conjugate(acc) // Hermitian mirror
			}
		}

		return res, nil
	}

	// Fallback: interface path via At.
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			acc = 0
			for k = 0; k <= j; k++ {
				lik, err = l.At(i, k)
				if err != nil {
					return nil, updateErrorf(opCholProduct, err)
				}
				ljk, err = l.At(j, k)
				if err != nil {
					return nil, updateErrorf(opCholProduct, err)
				}
				acc += lik * conjugate(ljk)
			}
			res.data[i*n+j] = acc
			res.data[j*n+i] = conjugate(acc)
		}
	}

	return res, nil
}

// LDLProduct reforms A = L·D·Lᴴ as a fresh Dense, treating l's diagonal as
// implicitly 1 (unit-lower-triangular convention — stored diagonal slots
// are ignored).
// Implementation:
//   - Stage 1: Validate l non-nil/square and len(d)==N; allocate Dense(n×n).
//   - Stage 2: For j ≤ i accumulate
//     A[i,j] = Σ_{k≤j} u[i,k]·d[k]·conj(u[j,k]), u[i,k] = L[i,k] for k<i,
//     1 for k=i — and mirror the Hermitian counterpart.
//
// Inputs:
//   - l: N×N unit-lower-triangular factor.
//   - d: N real diagonal pivots.
//
// Returns:
//   - Matrix[T]: new Dense with the Hermitian product L·D·Lᴴ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed loop orders; stable accumulation.
//
// Complexity:
//   - Time O(N³), Space O(N²).
//
// AI-Hints:
//   - The k=j term contributes L[i,j]·d[j] (conj(1)=1); the i=j diagonal
//     collects Σ|L[i,k]|²·d[k] + d[i] — all real for valid factors.
func LDLProduct[T Scalar](l Matrix[T], d []float64) (Matrix[T], error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(l); err != nil {
		return nil, updateErrorf(opLDLProduct, err)
	}
	if err := ValidateSquare(l); err != nil {
		return nil, updateErrorf(opLDLProduct, err)
	}
	n := l.Rows()
	if err := ValidateDiagLen(d, n); err != nil {
		return nil, updateErrorf(opLDLProduct, err)
	}

	// Allocate result Dense.
	res, err := NewDense[T](n, n)
	if err != nil {
		return nil, updateErrorf(opLDLProduct, err)
	}

	var (
		i, j, k  int // loop iterators (deterministic order)
		acc      T   // Hermitian accumulator for A[i,j]
		uik, ujk T   // unit-lower entries u[i,k], u[j,k]
	)

	// one is the implicit unit diagonal promoted into the scalar field.
	one := fromReal[T](1)

	// unitAt reads the unit-lower entry u[r,k] from the generic interface.
	unitAt := func(r, k int) (T, error) {
		if r == k {
			return one, nil
		}
		return l.At(r, k)
	}

	// Fast-path: *Dense flat storage.
	if dl, ok := l.(*Dense[T]); ok {
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				acc = 0
				for k = 0; k <= j; k++ { // columns beyond j are structural zeros in row j
					if i == k {
						uik = one
					} else {
						uik = dl.data[i*n+k]
					}
					if j == k {
						ujk = one
					} else {
						ujk = dl.data[j*n+k]
					}
					acc += uik * fromReal[T](d[k]) * conjugate(ujk)
				}
				res.data[i*n+j] = acc
				res.data[j*n+i] = conjugate(acc) // Hermitian mirror
			}
		}

		return res, nil
	}

	// Fallback: interface path via unitAt.
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			acc = 0
			for k = 0; k <= j; k++ {
				uik, err = unitAt(i, k)
				if err != nil {
					return nil, updateErrorf(opLDLProduct, err)
				}
				ujk, err = unitAt(j, k)
				if err != nil {
					return nil, updateErrorf(opLDLProduct, err)
				}
				acc += uik * fromReal[T](d[k]) * conjugate(ujk)
			}
			res.data[i*n+j] = acc
			res.data[j*n+i] = conjugate(acc)
		}
	}

	return res, nil
}

// MaxAbsDiff returns ‖a − b‖_max, the largest entrywise magnitude of the
// difference. Inputs must share a shape; neither is mutated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed i→j scan; the maximum tracks squared magnitudes and
// takes a single root at the end.
// Complexity: Time O(r·c), Space O(1).
func MaxAbsDiff[T Scalar](a, b Matrix[T]) (float64, error) {
	// Validate both operands and their shapes.
	if err := ValidateNotNil(a); err != nil {
		return 0, updateErrorf(opMaxAbsDiff, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, updateErrorf(opMaxAbsDiff, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, updateErrorf(opMaxAbsDiff, ErrDimensionMismatch)
	}

	rows, cols := a.Rows(), a.Cols()

	var (
		i, j   int     // loop iterators
		av, bv T       // element temporaries
		dSq    float64 // squared magnitude of the current difference
		maxSq  float64 // running maximum of squared magnitudes
		err    error
	)

	// Fast-path: both *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			length := rows * cols
			for i = 0; i < length; i++ { // deterministic 0..n-1
				dSq = absSq(da.data[i] - db.data[i])
				if dSq > maxSq {
					maxSq = dSq
				}
			}

			return math.Sqrt(maxSq), nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return 0, updateErrorf(opMaxAbsDiff, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return 0, updateErrorf(opMaxAbsDiff, err)
			}
			dSq = absSq(av - bv)
			if dSq > maxSq {
				maxSq = dSq
			}
		}
	}

	return math.Sqrt(maxSq), nil
}
