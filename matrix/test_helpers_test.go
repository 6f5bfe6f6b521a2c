// SPDX-License-Identifier: MIT

// Package matrix_test: shared fixtures and assertion helpers. All data is
// small and exact-valued so integer comparisons stay strict.
package matrix_test

import (
	"testing"

	"github.com/matveil/tensor/matrix"
)

// Sequential builds a rows×cols int matrix filled 1..rows·cols row-major,
// the canonical fixture of the arithmetic tests: Sequential(t, 2, 2) is
// [[1,2],[3,4]].
func Sequential(t *testing.T, rows, cols int) *matrix.Matrix[int] {
	t.Helper()
	data := make([][]int, rows)
	n := 1
	for i := range data {
		data[i] = make([]int, cols)
		for j := range data[i] {
			data[i][j] = n
			n++
		}
	}

	return MustFromRows(t, data, rows, cols)
}

// MustNew allocates via New or fails the test.
func MustNew[T comparable](t *testing.T, rows, cols int, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(rows, cols, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustFromRows builds from nested literals via FromRows or fails the test.
func MustFromRows[T comparable](t *testing.T, data [][]T, rows, cols int, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(data, rows, cols, opts...)
	if err != nil {
		t.Fatalf("FromRows(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustIdentity builds I_n via Identity or fails the test.
func MustIdentity[T matrix.Numeric](t *testing.T, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test with the offending coordinates.
func MustAt[T comparable](t *testing.T, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes through Set or fails the test; returns the fresh matrix.
func MustSet[T comparable](t *testing.T, m *matrix.Matrix[T], i, j int, v T) *matrix.Matrix[T] {
	t.Helper()
	out, err := m.Set(i, j, v)
	if err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}

	return out
}

// ExpectPanic asserts that fn panics with any value.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// ExpectPanicMessage asserts that fn panics with exactly want.
func ExpectPanicMessage(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		got := recover()
		if got == nil {
			t.Fatalf("expected panic %q, got nil", want)
		}
		if s, ok := got.(string); !ok || s != want {
			t.Fatalf("panic message: got %v, want %q", got, want)
		}
	}()
	fn()
}

// ---------- bench helpers ----------

// benchSequential fills an n×n int matrix 1..n² row-major.
func benchSequential(b *testing.B, n int) *matrix.Matrix[int] {
	b.Helper()
	data := make([][]int, n)
	v := 1
	for i := range data {
		data[i] = make([]int, n)
		for j := range data[i] {
			data[i][j] = v
			v++
		}
	}
	m, err := matrix.FromRows(data, n, n)
	if err != nil {
		b.Fatalf("FromRows(%d,%d): %v", n, n, err)
	}

	return m
}

// benchBanded fills only the cells within band of the diagonal, leaving
// the rest at the zero default; the sparse counterpart of benchSequential.
func benchBanded(b *testing.B, n, band int) *matrix.Matrix[int] {
	b.Helper()
	m, err := matrix.New[int](n, n)
	if err != nil {
		b.Fatalf("New(%d,%d): %v", n, n, err)
	}
	for i := 0; i < n; i++ {
		for j := i - band; j <= i+band; j++ {
			if j < 0 || j >= n {
				continue
			}
			if m, err = m.Set(i, j, i+j+1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}
