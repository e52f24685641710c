// SPDX-License-Identifier: MIT

// Package update: domain types shared by the store and the kernels.
// This file intentionally contains ONLY the scalar constraint and the public
// Matrix interface. Errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.
package update

// Scalar enumerates the real- and complex-floating fields the kernels
// operate over. One generic implementation serves all four; the float32
// and complex64 lanes keep their native single precision (see scalar.go).
//
// The list is intentionally closed (no ~ approximations): scalar-field
// helpers dispatch on the exact dynamic type.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Matrix represents a two-dimensional mutable array of Scalar values.
// Kernels accept the interface and fast-path on the concrete *Dense[T];
// any other implementation runs through the At/Set fallback with identical
// semantics.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
