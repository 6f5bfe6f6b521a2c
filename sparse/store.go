package sparse

import (
	"maps"
	"sort"
)

// coord addresses a single cell by zero-based row and column indices.
type coord struct {
	row, col int
}

// Cell pairs a coordinate with its stored value. Construction from a full
// enumeration and Cells output both use this shape.
type Cell[T comparable] struct {
	Row, Col int
	Value    T
}

// Store is a coordinate-keyed mapping with a declared default value.
// Get answers absent coordinates with the default, so only cells whose
// value differs from it are ever held in memory.
//
// A Store is immutable once handed to a caller: Set returns a new Store
// and never touches the receiver. The zero Store is not usable; construct
// via New or FromCells.
type Store[T comparable] struct {
	cells map[coord]T
	def   T
}

// New returns an empty Store answering every coordinate with def.
func New[T comparable](def T) *Store[T] {
	return &Store[T]{cells: make(map[coord]T), def: def}
}

// FromCells builds a Store from a full enumeration of cells.
// Cells whose value equals def are skipped; later duplicates of the same
// coordinate win, matching a sequential write of the enumeration.
func FromCells[T comparable](def T, cells ...Cell[T]) *Store[T] {
	s := &Store[T]{cells: make(map[coord]T, len(cells)), def: def}
	for _, c := range cells {
		if c.Value == def {
			delete(s.cells, coord{row: c.Row, col: c.Col})
			continue
		}
		s.cells[coord{row: c.Row, col: c.Col}] = c.Value
	}

	return s
}

// Get returns the value stored at (row, col), or the default when the
// coordinate is absent. The store itself imposes no bounds; range checking
// belongs to the enclosing container.
// Complexity: O(1).
func (s *Store[T]) Get(row, col int) T {
	if v, ok := s.cells[coord{row: row, col: col}]; ok {
		return v
	}

	return s.def
}

// Set returns a new Store reflecting the write; the receiver is unchanged.
// Writing the default value prunes the coordinate instead of storing it.
// Complexity: O(n) — the cell map is copied in full.
func (s *Store[T]) Set(row, col int, v T) *Store[T] {
	next := &Store[T]{cells: maps.Clone(s.cells), def: s.def}
	if v == s.def {
		delete(next.cells, coord{row: row, col: col})
		return next
	}
	next.cells[coord{row: row, col: col}] = v

	return next
}

// Default returns the value implied at every coordinate not explicitly stored.
func (s *Store[T]) Default() T {
	return s.def
}

// Len reports the number of populated (non-default) cells.
func (s *Store[T]) Len() int {
	return len(s.cells)
}

// Cells enumerates the populated cells sorted row-major, so iteration order
// is stable across runs despite the map backing.
// Complexity: O(n log n).
func (s *Store[T]) Cells() []Cell[T] {
	out := make([]Cell[T], 0, len(s.cells))
	for at, v := range s.cells {
		out = append(out, Cell[T]{Row: at.row, Col: at.col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// Clone returns a structural copy sharing nothing with the receiver.
func (s *Store[T]) Clone() *Store[T] {
	return &Store[T]{cells: maps.Clone(s.cells), def: s.def}
}
