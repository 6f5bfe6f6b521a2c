// Package tensor is an in-memory toolkit for sparse, immutable numeric
// grids — from the coordinate-keyed store primitive to matrix arithmetic
// and boxed terminal rendering.
//
// 🚀 What is tensor?
//
//	A small, thread-friendly library built around one idea:
//		• store only the cells that differ from a declared default value
//		• treat every container as an immutable value
//		• make arithmetic return fresh containers, never mutate inputs
//
// ✨ Why choose tensor?
//
//   - Sparse by construction – dense literals collapse to a handful of entries
//   - Value semantics – share matrices across goroutines without locks
//   - Exact error reports – dimension failures carry full height/width context
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	sparse/ — Store, the coordinate-keyed default-valued cell store
//	matrix/ — two-dimensional specialization: construction, access,
//	          transpose/add/trace/power/product, equality and rendering
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}}, 2, 2)
//	fmt.Println(m)
//	// #Matrix<(2×2)
//	// ┌                 ┐
//	// │       1,       2│
//	// │       3,       4│
//	// └                 ┘
//	// >
//
// Dive into the per-package docs and example tests for the full tour.
//
//	go get github.com/matveil/tensor
package tensor
