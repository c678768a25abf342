// SPDX-License-Identifier: MIT

// Package matrix - core value type & safe accessors.
//
// Purpose:
//   - Define Matrix[T], an immutable row-major flat-buffer matrix value.
//   - Guarantee safety at the public surface: Get uses comma-ok, never panics.
//   - Keep the structural invariant len(data) == rows*cols in one place.
//
// Complexity quicksheet:
//   - Rows/Cols/Shape: O(1); Get: O(1); Equal: O(r*c); String: O(r*c).

package matrix

import "fmt"

// Number is the constraint for element types with a defined additive
// identity (the zero value) plus + and * operators. Identity and Dot
// require it; storage and the shape-preserving transforms do not.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is an immutable rows×cols matrix of T in row-major flat storage.
//   - rows, cols hold dimensions (>= 0; a zero dimension means the canonical
//     empty matrix with both counts zero).
//   - data is a flat buffer of length rows*cols (offset = (r-1)*cols + (c-1)).
//
// Matrix is a value: constructors and transforms return fresh buffers and no
// operation mutates a previously constructed Matrix. The zero value of
// Matrix[T] is the canonical empty matrix and is ready to use.
type Matrix[T any] struct {
	rows, cols int // dimension counts, both zero for the empty matrix
	data       []T // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertion: Matrix renders via fmt.Stringer.
var _ fmt.Stringer = Matrix[int]{}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// IsEmpty reports whether m is the canonical empty matrix.
// Complexity: O(1).
func (m Matrix[T]) IsEmpty() bool { return m.rows == 0 }

// Get returns the element at 1-based (row, col) with ok=true, or the zero
// value with ok=false when either coordinate is outside [1,rows]/[1,cols].
//
// Implementation:
//   - Stage 1: bounds check both coordinates against the stored shape.
//   - Stage 2: load from the flat buffer at offsetOf(cols, row, col).
//
// Behavior highlights:
//   - Never panics; absence is signaled by ok=false, not by an error.
//
// Complexity: O(1).
func (m Matrix[T]) Get(row, col int) (T, bool) {
	if row < 1 || row > m.rows || col < 1 || col > m.cols {
		var zero T
		return zero, false
	}

	return m.data[offsetOf(m.cols, row, col)], true
}

// String renders the matrix via Pretty for diagnostics and logs.
// Complexity: O(r*c).
func (m Matrix[T]) String() string { return Pretty(m) }

// Equal reports whether a and b have identical shape and pointwise-equal
// elements. Two empty matrices are always equal regardless of how their
// (empty) buffers were allocated.
//
// Determinism: fixed flat scan 0..n-1.
// Complexity: O(r*c).
func Equal[T comparable](a, b Matrix[T]) bool {
	// Shape first: cheap rejection before touching the buffers.
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	// Pointwise compare over the flat storage (lengths match by invariant).
	var i int
	for i = 0; i < len(a.data); i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
