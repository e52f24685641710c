// SPDX-License-Identifier: MIT
// Package update_test: unit tests for the Dense storage type.

package update_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lowrank/update"
)

func TestNewDense_DefaultZero(t *testing.T) {
	t.Parallel()

	m := MustDense[float64](t, 3, 2)
	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("shape = %dx%d; want 3x2", m.Rows(), m.Cols())
	}
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 2; j++ {
			if v := MustAt(t, m, i, j); v != 0 {
				t.Fatalf("fresh Dense[%d,%d] = %v; want 0", i, j, v)
			}
		}
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 3}, {3, -1}} {
		if _, err := update.NewDense[float64](tc.r, tc.c); err == nil {
			t.Fatalf("NewDense(%d,%d): expected error", tc.r, tc.c)
		} else {
			AssertErrorIs(t, err, update.ErrInvalidDimensions)
		}
	}
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	vals := []float64{1, 2, 3, 4, 5, 6}
	m := MustDenseFrom[float64](t, 2, 3, vals)

	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			if v := MustAt(t, m, i, j); v != vals[i*3+j] {
				t.Fatalf("m[%d,%d] = %v; want %v", i, j, v, vals[i*3+j])
			}
		}
	}

	// Backing storage is independent: mutating vals must not leak in.
	vals[0] = 99
	if v := MustAt(t, m, 0, 0); v != 1 {
		t.Fatalf("aliased storage: m[0,0] = %v after external write", v)
	}
}

func TestNewDenseFrom_Errors(t *testing.T) {
	t.Parallel()

	_, err := update.NewDenseFrom(0, 2, []float64{})
	AssertErrorIs(t, err, update.ErrInvalidDimensions)

	_, err = update.NewDenseFrom(2, 2, []float64{1, 2, 3})
	AssertErrorIs(t, err, update.ErrDimensionMismatch)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense[float64](t, 2, 2)
	for _, tc := range []struct{ i, j int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := m.At(tc.i, tc.j); err == nil {
			t.Fatalf("At(%d,%d): expected error", tc.i, tc.j)
		} else {
			AssertErrorIs(t, err, update.ErrOutOfRange)
		}
		if err := m.Set(tc.i, tc.j, 1); err == nil {
			t.Fatalf("Set(%d,%d): expected error", tc.i, tc.j)
		} else {
			AssertErrorIs(t, err, update.ErrOutOfRange)
		}
	}
}

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	m := MustDenseFrom[float64](t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()

	MustSet(t, m, 0, 0, 42)
	if v := MustAt(t, c, 0, 0); v != 1 {
		t.Fatalf("clone shares storage: c[0,0] = %v after writing original", v)
	}
	if c.Rows() != 2 || c.Cols() != 2 {
		t.Fatalf("clone shape = %dx%d; want 2x2", c.Rows(), c.Cols())
	}
}

func TestDense_Complex_RoundTrip(t *testing.T) {
	t.Parallel()

	m := MustDense[complex128](t, 2, 2)
	MustSet(t, m, 1, 0, complex(3, -4))
	if v := MustAt(t, m, 1, 0); v != complex(3, -4) {
		t.Fatalf("m[1,0] = %v; want (3-4i)", v)
	}
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustDenseFrom[float64](t, 2, 2, []float64{1, 2, 3, 4})
	s := m.String()
	if !strings.Contains(s, "[1, 2]") || !strings.Contains(s, "[3, 4]") {
		t.Fatalf("String() = %q; want both rows rendered", s)
	}
}
