// Package lowrank keeps dense Hermitian positive-definite factorizations
// alive under rank-one modifications — without ever reforming the matrix
// or refactorizing from scratch.
//
// 🚀 What is lowrank?
//
//	A small, deterministic library that turns a known factorization of A
//	into the factorization of A + x·xᴴ in O(N²):
//		• Cholesky updates: L·Lᴴ = A  →  L'·L'ᴴ = A + x·xᴴ
//		• LDL updates: L·D·Lᴴ = A  →  L'·D'·L'ᴴ = A + x·xᴴ
//		  (square-root free on the factor path)
//		• Generic scalars: float32, float64, complex64, complex128
//		  through one implementation
//		• Reconstruction helpers: reform A from its factors for verification
//
// ✨ Why choose lowrank?
//
//   - Predictable – fixed loop orders, no hidden state, identical inputs
//     always produce identical outputs
//   - Fail-fast – every shape and structure check runs before the first
//     write; a rejected call leaves the operands untouched
//   - Pure Go – no cgo, no BLAS binding, a flat row-major store
//
// Everything lives in one subpackage:
//
//	update/ — Dense store, Cholesky/LDL rank-one update kernels, validators
//
// The initial factorization is the caller's business: compute L (and D)
// with any Cholesky or symmetric-indefinite factorizer, then keep it
// current here as observations arrive one vector at a time.
//
//	go get github.com/katalvlaran/lowrank/update
package lowrank
