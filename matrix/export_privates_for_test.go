// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes gathered option state and panic messages to
// matrix_test without widening the production API. The _test.go suffix
// keeps this file out of production builds.

// Panic message exports to avoid magic strings in tests.
const (
	PanicCellWidthInvalid_TestOnly = panicCellWidthInvalid
	PanicCellTextNil_TestOnly      = panicCellTextNil
)

// FormatSnapshot_TestOnly is a stable test-facing copy of the gathered
// rendering configuration.
type FormatSnapshot_TestOnly struct {
	CellWidth int
	CellText  func(v any) string
}

// GatherFormatSnapshot_TestOnly returns the rendering configuration after
// option application, defaults filled in.
func GatherFormatSnapshot_TestOnly(opts ...FormatOption) FormatSnapshot_TestOnly {
	cfg := gatherFormatOptions(opts...)

	return FormatSnapshot_TestOnly{CellWidth: cfg.cellWidth, CellText: cfg.cellText}
}

// GatherDefault_TestOnly returns the construction default after option
// application.
func GatherDefault_TestOnly[T comparable](opts ...Option[T]) T {
	return gatherOptions(opts...).def
}
