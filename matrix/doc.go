// SPDX-License-Identifier: MIT

// Package matrix implements a generic, immutable dense matrix backed by a
// single flat row-major buffer.
//
// The matrix package provides:
//
//   - Matrix[T]: an immutable value type storing rows×cols elements in one
//     contiguous slice (offset = (row-1)*cols + (col-1), 1-based coordinates).
//   - Constructors: Empty, Filled, Init, Identity, FromFlat, FromRows.
//   - Persistent transforms: Map, Map2, Transpose, Dot — every transform
//     allocates a fresh result; inputs are never mutated.
//   - Conversions: Flat, RowSlices, Pretty, plus JSON/YAML codecs.
//
// Matrices are values with no shared mutable state: any number of goroutines
// may use the same Matrix concurrently without locking. Degenerate shapes
// (zero rows or zero columns) normalize to the canonical empty matrix.
//
// All fallible operations return package sentinel errors matched via
// errors.Is; no exported operation panics on user input. Element access
// uses comma-ok absence instead of an error path.
package matrix
