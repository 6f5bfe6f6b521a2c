// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and rendering.
// This file defines:
//   - Option / FormatOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gather helpers (internal) that apply options last-writer-wins.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultCellWidth is the fixed rendering cell width: runes per cell,
// the value's own characters included.
const DefaultCellWidth = 8

// Panic messages of the option constructors.
const (
	panicCellWidthInvalid = "matrix: WithCellWidth: width must be at least 1"
	panicCellTextNil      = "matrix: WithCellText: fn must be non-nil"
)

// ---------- Construction options ----------

// buildOptions carries construction-time settings.
type buildOptions[T comparable] struct {
	def T
}

// Option adjusts construction; pass to New or FromRows.
type Option[T comparable] func(*buildOptions[T])

// WithDefault declares the value implied at every unstored coordinate.
// Input cells equal to it are skipped during construction, which is how a
// dense literal with a dominant value collapses to a sparse matrix.
func WithDefault[T comparable](def T) Option[T] {
	return func(o *buildOptions[T]) { o.def = def }
}

// gatherOptions applies opts over the zero-value default, last writer wins.
func gatherOptions[T comparable](opts ...Option[T]) buildOptions[T] {
	var cfg buildOptions[T] // zero value of T is the documented default
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ---------- Rendering options ----------

// formatOptions carries rendering settings.
type formatOptions struct {
	cellWidth int
	cellText  func(v any) string
}

// FormatOption adjusts rendering; pass to Format.
type FormatOption func(*formatOptions)

// WithCellWidth overrides the fixed cell width. Panics if w < 1: a
// nonpositive width is programmer error, not runtime input.
func WithCellWidth(w int) FormatOption {
	if w < 1 {
		panic(panicCellWidthInvalid)
	}

	return func(o *formatOptions) { o.cellWidth = w }
}

// WithCellText overrides how a single cell value becomes text. The default
// renderer quotes strings and prints every other value in its natural form.
// Panics on nil fn.
func WithCellText(fn func(v any) string) FormatOption {
	if fn == nil {
		panic(panicCellTextNil)
	}

	return func(o *formatOptions) { o.cellText = fn }
}

// gatherFormatOptions applies opts over the contract defaults.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	cfg := formatOptions{cellWidth: DefaultCellWidth, cellText: defaultCellText}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
