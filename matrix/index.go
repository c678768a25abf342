// SPDX-License-Identifier: MIT

// Package matrix - flat-buffer index mapping.
//
// Purpose:
//   - Provide the bijection between 1-based (row, col) coordinates and the
//     0-based offset into the row-major flat buffer, and its inverse.
//   - Keep both directions unexported: public code reaches elements through
//     Get and the kernels, whose loop bounds are derived from the same
//     dimensions and therefore cannot go out of range.
//
// Invariant (verified in tests):
//   - coordOf(cols, offsetOf(cols, r, c)) == (r, c)
//     for all 1 <= r <= rows, 1 <= c <= cols, cols > 0.

package matrix

// offsetOf maps a 1-based (row, col) coordinate to its row-major offset.
// Requires cols > 0; callers never invoke it for the empty matrix.
// Complexity: O(1).
func offsetOf(cols, row, col int) int {
	return (row-1)*cols + (col - 1)
}

// coordOf is the inverse of offsetOf: it recovers the 1-based coordinate
// addressed by a 0-based flat offset. Requires cols > 0.
// Complexity: O(1).
func coordOf(cols, offset int) (row, col int) {
	return offset/cols + 1, offset%cols + 1
}
