// SPDX-License-Identifier: MIT

// Package matrix: the Matrix container — construction, access, equality.
// Arithmetic kernels live in ops.go, rendering in format.go.
package matrix

import (
	"fmt"

	"github.com/matveil/tensor/sparse"
)

// Matrix is an immutable two-dimensional container over a sparse store.
// rows and cols declare the shape; the store holds only cells differing
// from its default value, and every populated coordinate lies inside
// [0,rows)×[0,cols). Once constructed a Matrix never changes: Set and the
// arithmetic kernels return fresh values, so sharing across goroutines
// needs no locking.
type Matrix[T comparable] struct {
	rows, cols int
	cells      *sparse.Store[T]
}

// New returns an empty rows×cols matrix. Every cell reads as the default:
// the zero value of T, or the value given via WithDefault.
// Returns ErrInvalidDimensions on negative counts; zero-sized matrices
// are legal.
func New[T comparable](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	cfg := gatherOptions(opts...)

	return &Matrix[T]{rows: rows, cols: cols, cells: sparse.New(cfg.def)}, nil
}

// FromRows builds a rows×cols matrix from nested row slices, populating
// the store row-major and skipping cells equal to the default, so dense
// literals with a dominant value stay sparse.
// Returns ErrInvalidDimensions on negative counts and ErrShapeMismatch
// when the outer length or any row length disagrees with the declared
// dimensions.
func FromRows[T comparable](data [][]T, rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromRows(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows {
		return nil, fmt.Errorf("FromRows: outer length %d, want %d rows: %w", len(data), rows, ErrShapeMismatch)
	}
	cfg := gatherOptions(opts...)
	cells := make([]sparse.Cell[T], 0, rows*cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d length %d, want %d columns: %w", i, len(row), cols, ErrShapeMismatch)
		}
		for j, v := range row {
			if v == cfg.def {
				continue
			}
			cells = append(cells, sparse.Cell[T]{Row: i, Col: j, Value: v})
		}
	}

	return &Matrix[T]{rows: rows, cols: cols, cells: sparse.FromCells(cfg.def, cells...)}, nil
}

// FromStore adopts a prebuilt sparse store as a rows×cols matrix. The
// store is cloned, so later writes through either side stay invisible to
// the other.
// Returns ErrNilStore, ErrInvalidDimensions, or ErrOutOfRange when a
// populated coordinate lies outside the declared bounds.
func FromStore[T comparable](st *sparse.Store[T], rows, cols int) (*Matrix[T], error) {
	if st == nil {
		return nil, fmt.Errorf("FromStore: %w", ErrNilStore)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromStore(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	for _, c := range st.Cells() {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("FromStore: populated cell (%d,%d) outside %d×%d: %w", c.Row, c.Col, rows, cols, ErrOutOfRange)
		}
	}

	return &Matrix[T]{rows: rows, cols: cols, cells: st.Clone()}, nil
}

// Identity returns the n×n multiplicative unit: ones on the diagonal,
// zeros elsewhere. Returns ErrInvalidDimensions on negative n.
func Identity[T Numeric](n int) (*Matrix[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}

	return identity[T](n), nil
}

// identity is the validated-input identity kernel.
func identity[T Numeric](n int) *Matrix[T] {
	var zero T
	one := T(1)
	cells := make([]sparse.Cell[T], 0, n)
	for i := 0; i < n; i++ {
		cells = append(cells, sparse.Cell[T]{Row: i, Col: i, Value: one})
	}

	return &Matrix[T]{rows: n, cols: n, cells: sparse.FromCells(zero, cells...)}
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the declared column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Default returns the value implied at every unstored coordinate.
func (m *Matrix[T]) Default() T { return m.cells.Default() }

// Stored reports how many cells are physically held, i.e. differ from the
// default. A freshly built identity of size n reports n.
func (m *Matrix[T]) Stored() int { return m.cells.Len() }

// At returns the value at (row, col), default-aware.
// Returns ErrOutOfRange outside [0,rows)×[0,cols). Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		var zero T
		return zero, indexErrorf("At", row, col)
	}

	return m.cells.Get(row, col), nil
}

// Set returns a copy of m with (row, col) holding v; the receiver is
// unchanged. Writing the default prunes the cell in the copy.
// Returns ErrOutOfRange outside the declared bounds.
func (m *Matrix[T]) Set(row, col int, v T) (*Matrix[T], error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return nil, indexErrorf("Set", row, col)
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, cells: m.cells.Set(row, col, v)}, nil
}

// Row returns a dense copy of row i.
// Returns ErrOutOfRange when i is outside [0,rows).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]T, m.cols)
	for j := 0; j < m.cols; j++ {
		out[j] = m.cells.Get(i, j)
	}

	return out, nil
}

// Column returns a dense copy of column j.
// Returns ErrOutOfRange when j is outside [0,cols).
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("Matrix.Column(%d): %w", j, ErrOutOfRange)
	}
	out := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.cells.Get(i, j)
	}

	return out, nil
}

// ToSlices materializes the matrix densely, row-major: defaults and stored
// cells alike. Complexity: O(rows·cols).
func (m *Matrix[T]) ToSlices() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]T, m.cols)
		for j := 0; j < m.cols; j++ {
			out[i][j] = m.cells.Get(i, j)
		}
	}

	return out
}

// Clone returns a structural copy. Matrices are immutable, so this matters
// only when a caller wants a distinct store identity.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, cells: m.cells.Clone()}
}

// Equal reports structural equality: same shape and the same observable
// value at every in-range coordinate. Differing internal defaults or
// stored-versus-defaulted distinctions never break equality — only values
// visible through At do. Complexity: O(rows·cols).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.cells.Get(i, j) != other.cells.Get(i, j) {
				return false
			}
		}
	}

	return true
}

// indexErrorf annotates ErrOutOfRange with the accessor and coordinates.
func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}
