// SPDX-License-Identifier: MIT
// Package update_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for factors, diagonals and vectors.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package update_test

import (
	"errors"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lowrank/update"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed update.Matrix[T] to forward all methods.
//   - Stage 2: Use hide[T]{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents the "*Dense" fast-path via type switch in code under test.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one
//     *Dense to isolate path differences.
type hide[T update.Scalar] struct{ update.Matrix[T] }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense[T update.Scalar](t *testing.T, r, c int) *update.Dense[T] {
	t.Helper()
	m, err := update.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustDenseFrom BUILDS an r×c *Dense from a row-major flat slice or fails.
func MustDenseFrom[T update.Scalar](t *testing.T, r, c int, vals []T) *update.Dense[T] {
	t.Helper()
	m, err := update.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet[T update.Scalar](t *testing.T, m update.Matrix[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T update.Scalar](t *testing.T, m update.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// scalarFrom PROMOTES (re, im) into T; im is dropped on the real lanes.
// Keeps fixture builders generic over all four scalar types.
func scalarFrom[T update.Scalar](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(re)).(T)
	case float64:
		return any(re).(T)
	case complex64:
		return any(complex(float32(re), float32(im))).(T)
	case complex128:
		return any(complex(re, im)).(T)
	}

	return zero
}

// conjOf RETURNS the complex conjugate of v (identity on real lanes).
func conjOf[T update.Scalar](v T) T {
	switch c := any(v).(type) {
	case complex64:
		return any(complex(real(c), -imag(c))).(T)
	case complex128:
		return any(cmplx.Conj(c)).(T)
	}

	return v
}

// RandLowerFactor BUILDS an n×n lower-triangular factor with real diagonal
// in [1,2) and sub-diagonal entries in U(-1,1) (imaginary parts included on
// complex lanes). Any such matrix is a valid Cholesky factor of L·Lᴴ.
//
// Determinism: fixed per seed; fixed i→j fill order.
// Complexity: Time O(n²), Space O(n²).
func RandLowerFactor[T update.Scalar](t *testing.T, n int, seed int64) *update.Dense[T] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense[T](t, n, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			MustSet(t, m, i, j, scalarFrom[T](rng.Float64()*2-1, rng.Float64()*2-1))
		}
		MustSet(t, m, i, i, scalarFrom[T](1+rng.Float64(), 0)) // real positive pivot
	}

	return m
}

// RandUnitLowerFactor BUILDS an n×n unit-lower-triangular factor: explicit 1s
// on the diagonal (the kernels never read them) and sub-diagonal entries in
// U(-0.5,0.5). Pair with RandPositiveDiag for a valid LDL factor pair.
func RandUnitLowerFactor[T update.Scalar](t *testing.T, n int, seed int64) *update.Dense[T] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense[T](t, n, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			MustSet(t, m, i, j, scalarFrom[T](rng.Float64()-0.5, rng.Float64()-0.5))
		}
		MustSet(t, m, i, i, scalarFrom[T](1, 0))
	}

	return m
}

// RandPositiveDiag RETURNS n pivots in [1,2), deterministic per seed.
func RandPositiveDiag(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = 1 + rng.Float64()
	}

	return d
}

// RandVec RETURNS a length-n vector with components in U(-1,1).
func RandVec[T update.Scalar](n int, seed int64) []T {
	rng := rand.New(rand.NewSource(seed))
	x := make([]T, n)
	for i := 0; i < n; i++ {
		x[i] = scalarFrom[T](rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return x
}

// CloneVec RETURNS an independent copy of x (updates destroy their input).
func CloneVec[T update.Scalar](x []T) []T {
	c := make([]T, len(x))
	copy(c, x)

	return c
}

// AddOuter RETURNS a fresh Dense holding a + x·xᴴ; a is not mutated.
// The reference right-hand side for the reconstruction property tests.
func AddOuter[T update.Scalar](t *testing.T, a update.Matrix[T], x []T) *update.Dense[T] {
	t.Helper()
	n := a.Rows()
	res := MustDense[T](t, n, a.Cols())
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < a.Cols(); j++ {
			MustSet(t, res, i, j, MustAt(t, a, i, j)+x[i]*conjOf(x[j]))
		}
	}

	return res
}

// MustMaxAbsDiff RETURNS ‖a−b‖_max or fails the test.
func MustMaxAbsDiff[T update.Scalar](t *testing.T, a, b update.Matrix[T]) float64 {
	t.Helper()
	d, err := update.MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}

	return d
}

// ---------- bench helpers ----------

func benchLowerFactor(b *testing.B, n int, seed int64) *update.Dense[float64] {
	b.Helper()
	m, err := update.NewDense[float64](n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			_ = m.Set(i, j, rng.Float64()*2-1)
		}
		_ = m.Set(i, i, 1+rng.Float64())
	}

	return m
}

func benchUnitLowerFactor(b *testing.B, n int, seed int64) *update.Dense[float64] {
	b.Helper()
	m, err := update.NewDense[float64](n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			_ = m.Set(i, j, rng.Float64()-0.5)
		}
		_ = m.Set(i, i, 1)
	}

	return m
}

func benchVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64()*2 - 1
	}

	return x
}
