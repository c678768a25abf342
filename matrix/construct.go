// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Purpose:
//   - Build Matrix values from a fill value, a coordinate generator, a flat
//     slice, or nested row slices, preserving len(data) == rows*cols.
//   - Normalize degenerate shapes: any zero (or negative, where the signature
//     has no error path) dimension collapses to the canonical empty matrix.
//   - Fail softly: FromFlat/FromRows return sentinels, never panic.
//
// Determinism:
//   - All fills run in row-major order (row 1 fully, then row 2, ...).

package matrix

// Empty returns the canonical 0×0 matrix.
// Complexity: O(1).
func Empty[T any]() Matrix[T] { return Matrix[T]{} }

// Filled returns a rows×cols matrix with every slot set to v.
// A non-positive dimension yields the canonical empty matrix.
//
// Implementation:
//   - Stage 1: collapse degenerate shapes to Empty.
//   - Stage 2: allocate the flat buffer and fill it in one pass.
//
// Complexity: O(r*c) time and memory.
func Filled[T any](rows, cols int, v T) Matrix[T] {
	if rows <= 0 || cols <= 0 {
		return Empty[T]()
	}
	buf := make([]T, rows*cols) // contiguous row-major storage
	for i := range buf {
		buf[i] = v
	}

	return Matrix[T]{rows: rows, cols: cols, data: buf}
}

// Init returns a rows×cols matrix whose element at 1-based (r, c) is f(r, c).
// The generator is applied in row-major order; f must be a pure function of
// its coordinate for the result to be well-defined. A non-positive dimension
// yields the canonical empty matrix.
//
// Implementation:
//   - Stage 1: collapse degenerate shapes to Empty.
//   - Stage 2: sequential flat fill; the running offset and the (r, c)
//     coordinate advance together, so no index math is repeated per cell.
//
// Complexity: O(r*c) time and memory (plus the cost of f).
func Init[T any](rows, cols int, f func(row, col int) T) Matrix[T] {
	if rows <= 0 || cols <= 0 {
		return Empty[T]()
	}
	buf := make([]T, rows*cols)
	var r, c, off int // 1-based coordinates and running flat offset
	for r = 1; r <= rows; r++ {
		for c = 1; c <= cols; c++ {
			buf[off] = f(r, c) // off == offsetOf(cols, r, c) by construction
			off++
		}
	}

	return Matrix[T]{rows: rows, cols: cols, data: buf}
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Identity(0) is the canonical empty matrix.
//
// Complexity: O(n^2).
func Identity[T Number](n int) Matrix[T] {
	return Init(n, n, func(r, c int) T {
		if r == c {
			return 1
		}

		return 0
	})
}

// FromFlat builds a rows×cols matrix from the first rows*cols elements of
// src, in row-major order. The source is copied; the matrix never aliases it.
//
// Implementation:
//   - Stage 1: validate shape (negative dimensions are a contract violation
//     here because the caller names the shape explicitly).
//   - Stage 2: collapse degenerate shapes to Empty.
//   - Stage 3: require len(src) >= rows*cols; copy exactly that prefix.
//
// Behavior highlights:
//   - Too-short source fails with ErrShortData; excess elements are truncated.
//     The asymmetry is part of the contract, not an accident.
//
// Errors:
//   - ErrInvalidDimensions, ErrShortData.
//
// Complexity: O(r*c) time and memory.
func FromFlat[T any](rows, cols int, src []T) (Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return Empty[T](), matrixErrorf(opFromFlat, err)
	}
	if rows == 0 || cols == 0 {
		return Empty[T](), nil
	}
	need := rows * cols
	if len(src) < need {
		return Empty[T](), matrixErrorf(opFromFlat, ErrShortData)
	}
	buf := make([]T, need)
	copy(buf, src[:need]) // prefix copy; extra source elements are ignored

	return Matrix[T]{rows: rows, cols: cols, data: buf}, nil
}

// FromRows builds a matrix from nested row slices. The column count is fixed
// by the length of the first row; every later row must be at least that long.
// Strictly shorter rows fail, longer rows are truncated to the fixed width.
// An empty list, or rows that fix a zero width, yield the canonical empty
// matrix.
//
// Implementation:
//   - Stage 1: empty input or zero fixed width → Empty.
//   - Stage 2: single scan; each row is length-checked then prefix-copied
//     into the flat buffer at its row-major base offset.
//
// Errors:
//   - ErrRaggedRows when a row is strictly shorter than the fixed width.
//
// Complexity: O(r*c) time and memory.
func FromRows[T any](rows [][]T) (Matrix[T], error) {
	r := len(rows)
	if r == 0 {
		return Empty[T](), nil
	}
	cols := len(rows[0]) // fixed width for the whole matrix
	if cols == 0 {
		return Empty[T](), nil
	}
	buf := make([]T, r*cols)
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) < cols {
			return Empty[T](), matrixErrorf(opFromRows, ErrRaggedRows)
		}
		copy(buf[i*cols:(i+1)*cols], rows[i][:cols]) // truncating prefix copy
	}

	return Matrix[T]{rows: r, cols: cols, data: buf}, nil
}
