// SPDX-License-Identifier: MIT

// Package matrix: boxed text rendering.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Box-drawing fragments of the rendered grid. The header's dimension
// separator is U+00D7 MULTIPLICATION SIGN, not the letter x.
const (
	fmtHeader    = "#Matrix<(%d×%d)\n"
	fmtCornerTL  = "┌" // ┌
	fmtCornerTR  = "┐" // ┐
	fmtCornerBL  = "└" // └
	fmtCornerBR  = "┘" // ┘
	fmtWall      = "│" // │
	fmtSeparator = ","
	fmtClose     = ">"
	fmtSpace     = " "
	fmtNewline   = "\n"
)

// Format renders m as a boxed grid: a #Matrix<(rows×cols) header, a
// border of box-drawing characters, one line per row with cells
// right-aligned into fixed-width slots and separated by commas, and a
// closing angle bracket. Alignment counts runes, so multi-byte glyphs
// occupy a single slot position; cells longer than the slot are printed
// in full and widen their line. String cells render quoted.
//
// The zero-column (and zero-row) degenerate shapes keep the frame:
// borders collapse to bare corner pairs and the body has no cell lines.
// Rendering a nil matrix yields "<nil>".
// Complexity: O(rows·cols).
func Format[T comparable](m *Matrix[T], opts ...FormatOption) string {
	if m == nil {
		return "<nil>"
	}
	cfg := gatherFormatOptions(opts...)

	interior := cfg.cellWidth*m.cols + (m.cols - 1)
	if interior < 0 {
		interior = 0
	}
	pad := strings.Repeat(fmtSpace, interior)

	var b strings.Builder
	fmt.Fprintf(&b, fmtHeader, m.rows, m.cols)
	b.WriteString(fmtCornerTL + pad + fmtCornerTR + fmtNewline)
	for i := 0; i < m.rows; i++ {
		b.WriteString(fmtWall)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(fmtSeparator)
			}
			fmt.Fprintf(&b, "%*s", cfg.cellWidth, cfg.cellText(m.cells.Get(i, j)))
		}
		b.WriteString(fmtWall + fmtNewline)
	}
	b.WriteString(fmtCornerBL + pad + fmtCornerBR + fmtNewline)
	b.WriteString(fmtClose)

	return b.String()
}

// String renders m with default formatting; it exists so matrices drop
// cleanly into fmt verbs and test diffs.
func (m *Matrix[T]) String() string { return Format(m) }

var _ fmt.Stringer = (*Matrix[int])(nil)

// defaultCellText is the stock cell renderer: strings are quoted the way
// a Go literal would be, everything else goes through fmt.Sprint.
func defaultCellText(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}

	return fmt.Sprint(v)
}
