// SPDX-License-Identifier: MIT
// Package matrix provides persistent transform kernels over Matrix values:
// element-wise mapping, pairwise mapping, transpose and matrix product.
// All kernels perform strict fail-fast validation, allocate a fresh result
// and never mutate their operands.
//
// Notes:
//   - Kernels operate on the flat data slice directly; loop bounds are
//     derived from the tracked dimensions, so no per-cell bounds checks
//     beyond the slice's own are needed.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMap2     = "Map2"
	opDot      = "Dot"
	opFromFlat = "FromFlat"
	opFromRows = "FromRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting; callers still match the sentinel with errors.Is.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Map applies f to every stored element, preserving the shape.
// The result holds fresh storage; m is untouched.
//
// Determinism: single flat scan 0..n-1 (row-major by the storage invariant).
// Complexity: O(r*c) time and memory.
func Map[T, U any](f func(T) U, m Matrix[T]) Matrix[U] {
	if m.rows == 0 {
		return Empty[U]()
	}
	buf := make([]U, len(m.data))
	var i int
	for i = 0; i < len(m.data); i++ {
		buf[i] = f(m.data[i])
	}

	return Matrix[U]{rows: m.rows, cols: m.cols, data: buf}
}

// Map2 applies f pairwise to elements of a and b, which must have exactly
// equal shapes (both rows and cols). On mismatch it returns ErrDimensionMismatch.
//
// Implementation:
//   - Stage 1: validateSameShape(a, b).
//   - Stage 2: single flat scan; a and b share the same layout, so the
//     offset of a cell is identical in both operands.
//
// Complexity: O(r*c) time and memory.
func Map2[T, U, V any](f func(T, U) V, a Matrix[T], b Matrix[U]) (Matrix[V], error) {
	if err := validateSameShape(a, b); err != nil {
		return Empty[V](), matrixErrorf(opMap2, err)
	}
	if a.rows == 0 {
		return Empty[V](), nil
	}
	buf := make([]V, len(a.data))
	var i int
	for i = 0; i < len(a.data); i++ {
		buf[i] = f(a.data[i], b.data[i])
	}

	return Matrix[V]{rows: a.rows, cols: a.cols, data: buf}, nil
}

// Transpose returns mᵀ: the result has flipped dimensions and
// result[i,j] == m[j,i] for all valid coordinates. Self-inverse.
//
// Implementation:
//   - Stage 1: empty stays empty.
//   - Stage 2: fixed i→j loops over the source; the destination offset is
//     computed directly as (j-ish) flat math: data[i*cols+j] → out[j*rows+i].
//
// Determinism: fixed loop order; no data-dependent branches.
// Complexity: O(r*c) time and memory.
func Transpose[T any](m Matrix[T]) Matrix[T] {
	if m.rows == 0 {
		return Empty[T]()
	}
	rows, cols := m.rows, m.cols
	buf := make([]T, len(m.data))
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			buf[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return Matrix[T]{rows: cols, cols: rows, data: buf}
}

// Dot returns the matrix product a×b. Requires a.Cols() == b.Rows();
// otherwise ErrDimensionMismatch. The result is a.Rows()×b.Cols(), with
// result[i,j] = Σ_k a[i,k]*b[k,j] folded from the additive identity.
//
// Implementation:
//   - Stage 1: validateDotCompatible(a, b).
//   - Stage 2: degenerate outer shape → Empty (Dot(Empty, Empty) == Empty).
//   - Stage 3: naive i→k→j triple loop over the flat buffers.
//     a layout: i*inner + k;  b layout: k*bCols + j;  out layout: i*bCols + j.
//
// Behavior highlights:
//   - Intentionally the plain cubic algorithm: no blocking, no Strassen.
//     Predictability and testability win over throughput here.
//   - Zero entries of a skip the inner j-loop entirely.
//
// Determinism: fixed loop orders; accumulation order is always k ascending.
// Complexity: O(aRows * bCols * inner) time, O(aRows * bCols) memory.
func Dot[T Number](a, b Matrix[T]) (Matrix[T], error) {
	if err := validateDotCompatible(a, b); err != nil {
		return Empty[T](), matrixErrorf(opDot, err)
	}
	aRows, inner, bCols := a.rows, a.cols, b.cols
	if aRows == 0 || bCols == 0 {
		return Empty[T](), nil
	}
	// make() zero-fills: every cell starts at the additive identity.
	buf := make([]T, aRows*bCols)
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * bCols
		for k = 0; k < inner; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // nothing to accumulate for this k
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				buf[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return Matrix[T]{rows: aRows, cols: bCols, data: buf}, nil
}
