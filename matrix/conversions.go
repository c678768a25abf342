// SPDX-License-Identifier: MIT

// Package matrix - conversions & rendering.
//
// Purpose:
//   - Export the flat row-major storage (Flat) and the nested-rows view
//     (RowSlices) as independent copies.
//   - Render a human-readable dump (Pretty). Display only; the exact text
//     layout is not a wire format.
//
// Round-trip laws (verified in tests):
//   - FromRows(RowSlices(m)) == m for any well-formed m.
//   - FromFlat(m.Rows(), m.Cols(), Flat(m)) == m.

package matrix

import (
	"fmt"
	"strings"
)

// Formatting literals for Pretty.
const (
	_fmtOpen   = "[ "
	_fmtClose  = " ]"
	_fmtSep    = ", "
	_fmtRowSep = "\n, "
)

// Flat returns a copy of the row-major backing storage (row 1 fully, then
// row 2, ...). The copy never aliases the matrix buffer.
// Complexity: O(r*c).
func Flat[T any](m Matrix[T]) []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// RowSlices returns the matrix as freshly allocated nested row slices:
// Rows() slices of Cols() elements each, row-major. The empty matrix yields
// an empty (non-nil) outer slice.
// Complexity: O(r*c).
func RowSlices[T any](m Matrix[T]) [][]T {
	out := make([][]T, m.rows)
	var i int
	for i = 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// Pretty renders m with each row bracketed and rows separated by a
// comma-newline, the whole wrapped in outer brackets:
//
//	[ [ 1, 2 ]
//	, [ 3, 4 ] ]
//
// The empty matrix renders as "[ ]".
//
// Determinism: fixed row-major traversal; %v element formatting.
// Complexity: O(r*c) for string construction.
func Pretty[T any](m Matrix[T]) string {
	if m.rows == 0 {
		return "[ ]"
	}
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep) // rows join with "\n, "
		}
		b.WriteString(_fmtOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", m.data[base+j])
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
