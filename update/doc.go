// Package update provides rank-one updates of dense Hermitian
// positive-definite factorizations.
//
// The update package provides:
//
//   - CholeskyUpdate: given L with L·Lᴴ = A and a vector x, rewrite L in
//     place so that L·Lᴴ = A + x·xᴴ, in O(N²) instead of an O(N³)
//     refactorization.
//   - LDLUpdate: the same rank-one update for the unit-lower-triangular /
//     diagonal split L·D·Lᴴ = A, square-root free on the factor path.
//   - Dense, a generic row-major store over float32, float64, complex64
//     and complex128, plus validators and reconstruction helpers.
//
// Both updaters mutate their arguments: L (and d) become the updated
// factor, and x is consumed as rotation scratch — after a call its
// contents are numerically meaningless residues, never the original
// vector and never zeros. Callers needing the original x must copy it.
//
// Computing an initial factorization is out of scope: feed these kernels
// from any Cholesky or symmetric-indefinite factorizer.
//
// See the examples in this package for usage patterns.
package update
