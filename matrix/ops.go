// SPDX-License-Identifier: MIT

// Package matrix: arithmetic kernels. Every kernel validates, then builds
// a fresh matrix; inputs are never mutated and loop orders are fixed for
// reproducible results.
package matrix

import (
	"fmt"

	"github.com/matveil/tensor/sparse"
)

// Transpose returns a matrix of swapped shape where At(i,j) equals
// m.At(j,i). Only populated cells are remapped; the default carries over,
// so transposing is O(n log n) in the stored cell count, not O(rows·cols).
// Involution: Transpose(Transpose(m)) equals m.
// Returns ErrNilMatrix on nil input.
func Transpose[T comparable](m *Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilMatrix)
	}
	src := m.cells.Cells()
	cells := make([]sparse.Cell[T], 0, len(src))
	for _, c := range src {
		cells = append(cells, sparse.Cell[T]{Row: c.Col, Col: c.Row, Value: c.Value})
	}

	return &Matrix[T]{rows: m.cols, cols: m.rows, cells: sparse.FromCells(m.cells.Default(), cells...)}, nil
}

// AddScalar returns m with every in-range cell shifted by s, previously
// defaulted cells included: the result's default is default+s, so the
// result is exactly as sparse as the input. Commutes with Transpose.
// Returns ErrNilMatrix on nil input. Complexity: O(n log n).
func AddScalar[T Numeric](m *Matrix[T], s T) (*Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("AddScalar: %w", ErrNilMatrix)
	}
	src := m.cells.Cells()
	cells := make([]sparse.Cell[T], 0, len(src))
	for _, c := range src {
		cells = append(cells, sparse.Cell[T]{Row: c.Row, Col: c.Col, Value: c.Value + s})
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, cells: sparse.FromCells(m.cells.Default()+s, cells...)}, nil
}

// Scale returns m with every in-range cell multiplied by factor; the
// default scales too, so scaling by zero collapses storage entirely.
// Returns ErrNilMatrix on nil input. Complexity: O(n log n).
func Scale[T Numeric](m *Matrix[T], factor T) (*Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("Scale: %w", ErrNilMatrix)
	}
	src := m.cells.Cells()
	cells := make([]sparse.Cell[T], 0, len(src))
	for _, c := range src {
		cells = append(cells, sparse.Cell[T]{Row: c.Row, Col: c.Col, Value: c.Value * factor})
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, cells: sparse.FromCells(m.cells.Default()*factor, cells...)}, nil
}

// Add returns the element-wise sum of two same-shaped matrices.
// Returns ErrNilMatrix on nil inputs and a DimensionError (matching
// ErrDimensionMismatch) listing both shapes when they disagree.
// Complexity: O(rows·cols).
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Add: %w", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, newPairError(headlineAdd, a.rows, a.cols, b.rows, b.cols)
	}

	return zipCells(a, b, func(x, y T) T { return x + y }), nil
}

// Sub returns the element-wise difference a − b of two same-shaped
// matrices. Validation mirrors Add. Complexity: O(rows·cols).
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Sub: %w", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, newPairError(headlineSub, a.rows, a.cols, b.rows, b.cols)
	}

	return zipCells(a, b, func(x, y T) T { return x - y }), nil
}

// zipCells combines two same-shaped matrices cell-wise through f. The
// result's default is f over both defaults, so regions untouched in both
// inputs stay sparse in the output.
func zipCells[T comparable](a, b *Matrix[T], f func(T, T) T) *Matrix[T] {
	def := f(a.cells.Default(), b.cells.Default())
	cells := make([]sparse.Cell[T], 0, a.cells.Len()+b.cells.Len())
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			v := f(a.cells.Get(i, j), b.cells.Get(i, j))
			if v == def {
				continue
			}
			cells = append(cells, sparse.Cell[T]{Row: i, Col: j, Value: v})
		}
	}

	return &Matrix[T]{rows: a.rows, cols: a.cols, cells: sparse.FromCells(def, cells...)}
}

// Trace returns the sum of the main diagonal, defined only for square
// matrices. The failure report carries the offending height and width.
// Returns ErrNilMatrix on nil input, a DimensionError when rows != cols.
// Complexity: O(n).
func Trace[T Numeric](m *Matrix[T]) (T, error) {
	var sum T
	if m == nil {
		return sum, fmt.Errorf("Trace: %w", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return sum, newTraceError(m.rows, m.cols)
	}
	for i := 0; i < m.rows; i++ {
		sum += m.cells.Get(i, i)
	}

	return sum, nil
}

// Power returns m raised to a non-negative integer exponent through the
// left-multiplication chain Power(m, k) = Product(m, Power(m, k-1)), with
// Power(m, 0) the identity. The fixed chain keeps results bit-identical to
// the recursive definition for every Numeric type, floats included.
// Returns ErrNilMatrix on nil input, a DimensionError when m is not
// square, ErrNegativeExponent when k < 0. Complexity: O(k·n³).
func Power[T Numeric](m *Matrix[T], k int) (*Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("Power: %w", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, newPowerError(m.rows, m.cols, k)
	}
	if k < 0 {
		return nil, fmt.Errorf("Power(%d): %w", k, ErrNegativeExponent)
	}
	res := identity[T](m.rows)
	for i := 0; i < k; i++ {
		res = mul(m, res)
	}

	return res, nil
}

// Product returns the matrix product of a and b, defined when a.Cols()
// equals b.Rows(); the result is a.Rows()×b.Cols(). The failure report
// carries both shapes.
// Returns ErrNilMatrix on nil inputs, a DimensionError on incompatible
// shapes. Complexity: O(rows·inner·cols).
func Product[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Product: %w", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, newPairError(headlineProduct, a.rows, a.cols, b.rows, b.cols)
	}

	return mul(a, b), nil
}

// mul is the validated-shapes product kernel. Cell (i,j) sums
// a(i,k)·b(k,j) over increasing k; zero-valued left factors are skipped,
// which cannot change a ring sum. Sums equal to zero are pruned, keeping
// the result sparse.
func mul[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	var zero T
	cells := make([]sparse.Cell[T], 0)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			sum := zero
			for k := 0; k < a.cols; k++ {
				av := a.cells.Get(i, k)
				if av == zero {
					continue
				}
				sum += av * b.cells.Get(k, j)
			}
			if sum == zero {
				continue
			}
			cells = append(cells, sparse.Cell[T]{Row: i, Col: j, Value: sum})
		}
	}

	return &Matrix[T]{rows: a.rows, cols: b.cols, cells: sparse.FromCells(zero, cells...)}
}
