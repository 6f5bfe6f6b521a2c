// SPDX-License-Identifier: MIT

// Package matrix: scalar constraints shared by the arithmetic kernels.
// Container types stay comparable so rendering-only payloads (glyph grids,
// labels) remain first-class; Numeric narrows to the ring types the
// kernels compute over.
package matrix

import "golang.org/x/exp/constraints"

// Numeric bounds the scalar types accepted by the arithmetic kernels:
// every built-in integer and float type. The container itself only needs
// comparable cells; +, * and the 0/1 literals below require a ring.
type Numeric interface {
	constraints.Integer | constraints.Float
}
