// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the structured dimension report.
// All operations return these sentinels (or a DimensionError matching
// ErrDimensionMismatch) and tests check them via errors.Is. No operation
// panics on user-triggered conditions; panics are reserved for programmer
// errors in option constructors.

package matrix

import (
	"errors"
	"strconv"
	"strings"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel message is prefixed with "matrix: ..." for consistency and
// to allow easy grepping across logs. When call-site context is essential,
// wrap with fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.
// DimensionError is the one deliberate exception: its Error() text is a
// published multi-line report compared literally by downstream tooling, so
// it carries no prefix and must never be reworded casually.

var (
	// ErrInvalidDimensions indicates a negative row or column count at
	// construction. Zero-sized matrices are legal.
	ErrInvalidDimensions = errors.New("matrix: rows and columns must be non-negative")

	// ErrShapeMismatch indicates nested input whose outer length or row
	// lengths disagree with the declared dimensions.
	ErrShapeMismatch = errors.New("matrix: input shape disagrees with declared dimensions")

	// ErrOutOfRange indicates an index outside [0,rows)×[0,cols).
	// Public indexers (At/Row/Column/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil *Matrix passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilStore indicates a nil *sparse.Store passed to FromStore.
	ErrNilStore = errors.New("matrix: nil store")

	// ErrDimensionMismatch is the class of every DimensionError: failed
	// square or product-compatibility preconditions in Trace, Power,
	// Product, Add and Sub. Match with errors.Is.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeExponent indicates Power called with exponent < 0.
	ErrNegativeExponent = errors.New("matrix: exponent must be non-negative")
)

// Headlines of the DimensionError reports. Each rendered message is part of
// the public contract, so every wording lives in exactly one constant.
const (
	headlineTrace   = "Matrix.trace/1 is not defined for non-square matrices!"
	headlinePower   = "Cannot compute Matrix.power with non-square matrices!"
	headlineProduct = "Cannot compute Matrix.product if the width of matrix `a` does not match the height of matrix `b`!"
	headlineAdd     = "Cannot compute Matrix.add with differently sized matrices!"
	headlineSub     = "Cannot compute Matrix.sub with differently sized matrices!"
)

// Field names of the dimension reports, in report order.
const (
	fieldHeight   = "height"
	fieldWidth    = "width"
	fieldExponent = "exponent"
	fieldHeightA  = "height_a"
	fieldWidthA   = "width_a"
	fieldHeightB  = "height_b"
	fieldWidthB   = "width_b"
)

// dimField is one "name: value" line of a DimensionError report.
type dimField struct {
	name  string
	value int
}

// DimensionError reports a failed shape precondition. Error renders the
// complete report: headline, blank line, one field per line, and a trailing
// newline. The text is generated from the structured payload here and
// nowhere else, keeping wording and validation separate.
type DimensionError struct {
	headline string
	fields   []dimField
}

var _ error = (*DimensionError)(nil)

// Error renders the multi-line report verbatim.
func (e *DimensionError) Error() string {
	var b strings.Builder
	b.WriteString(e.headline)
	b.WriteString("\n\n")
	for _, f := range e.fields {
		b.WriteString(f.name)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(f.value))
		b.WriteString("\n")
	}

	return b.String()
}

// Is lets errors.Is(err, ErrDimensionMismatch) match every DimensionError
// while the message itself stays report-shaped.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// newTraceError reports Trace on a rows×cols non-square matrix.
func newTraceError(rows, cols int) *DimensionError {
	return &DimensionError{
		headline: headlineTrace,
		fields: []dimField{
			{name: fieldHeight, value: rows},
			{name: fieldWidth, value: cols},
		},
	}
}

// newPowerError reports Power on a rows×cols non-square matrix.
func newPowerError(rows, cols, exponent int) *DimensionError {
	return &DimensionError{
		headline: headlinePower,
		fields: []dimField{
			{name: fieldHeight, value: rows},
			{name: fieldWidth, value: cols},
			{name: fieldExponent, value: exponent},
		},
	}
}

// newPairError reports a binary kernel over incompatible shapes; Product,
// Add and Sub share the four-field layout.
func newPairError(headline string, aRows, aCols, bRows, bCols int) *DimensionError {
	return &DimensionError{
		headline: headline,
		fields: []dimField{
			{name: fieldHeightA, value: aRows},
			{name: fieldWidthA, value: aCols},
			{name: fieldHeightB, value: bRows},
			{name: fieldWidthB, value: bCols},
		},
	}
}
