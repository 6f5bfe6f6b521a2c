// Package sparse provides Store, a coordinate-keyed cell store with a
// declared default value, the storage primitive behind matrix.
//
// What:
//
//   - Store[T] maps (row, col) coordinates to values of any comparable type.
//   - Reads of absent coordinates fall back to the store's default value,
//     so a handful of entries can stand in for an arbitrarily large grid.
//   - Writes prune: a value equal to the default is simply not stored, and
//     storing it over an existing entry removes the entry.
//   - Stores are immutable once shared; Set returns a fresh Store.
//
// Why:
//
//   - Dense literals with a dominant value collapse to a few map entries.
//   - Absent and defaulted cells are observationally identical, which keeps
//     equality and rendering independent of storage history.
//   - Value semantics make concurrent reads safe without locking.
//
// Complexity:
//
//   - Get: O(1). Set/Clone: O(n) full copy (n = populated cells).
//   - Cells: O(n log n), sorted row-major for deterministic iteration.
//
// See the matrix package for the two-dimensional arithmetic built on top.
package sparse
