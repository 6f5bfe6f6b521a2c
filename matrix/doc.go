// Package matrix implements immutable two-dimensional containers over the
// sparse store, with dimension-validated arithmetic and a boxed rendering.
//
// What:
//
//   - Matrix[T] declares rows×cols and keeps only cells that differ from a
//     default value (zero unless WithDefault says otherwise).
//   - Construction from dimensions, nested row slices, or a prebuilt
//     sparse.Store; Identity builds the multiplicative unit.
//   - Kernels: Transpose, AddScalar, Add, Sub, Scale, Trace, Power, Product.
//     Every kernel returns a fresh matrix; inputs are never mutated.
//   - Equal compares observable values only — two matrices with different
//     internal defaults are equal whenever every in-range read agrees.
//   - Format/String render the aligned boxed grid with fixed-width cells.
//
// Why:
//
//   - Scalar addition over a sparse matrix stays sparse: the default shifts
//     with the cells, so no dense materialization ever happens.
//   - Dimension failures carry a complete multi-line report (operation,
//     heights, widths), so a mismatched product is diagnosable from the
//     error string alone.
//
// Errors:
//
//   - ErrInvalidDimensions: negative row or column count at construction.
//   - ErrShapeMismatch: nested input disagreeing with the declared shape.
//   - ErrOutOfRange: At/Row/Column/Set index outside the declared bounds.
//   - ErrNilMatrix, ErrNilStore: nil arguments to kernels or FromStore.
//   - ErrDimensionMismatch: class of all DimensionError reports raised by
//     Trace, Power, Product, Add and Sub.
//   - ErrNegativeExponent: Power with a negative exponent.
//
// Complexity:
//
//   - Access O(1); Transpose/AddScalar/Scale O(n log n) over stored cells;
//     Add/Sub/Equal O(r·c); Product O(r·n·c); Power O(k·n³).
//
// Usage:
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}}, 2, 2)
//	sq, _ := matrix.Power(m, 2)
//	fmt.Println(sq.ToSlices()) // [[7 10] [15 22]]
//
// See example_test.go for rendering and error-report walkthroughs.
package matrix
