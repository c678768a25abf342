// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors/kernels minimal by delegating shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Validators only read the tracked shape; they never scan element data.

package matrix

// validateShape rejects negative dimensions where an explicit shape is part
// of the contract (FromFlat). Zero is legal: it denotes a degenerate matrix.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions // single source of truth for "negative shape"
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions (Map2 contract).
// Complexity: O(1).
func validateSameShape[T, U any](a Matrix[T], b Matrix[U]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateDotCompatible ensures the inner dimensions agree: a.Cols == b.Rows.
// Complexity: O(1).
func validateDotCompatible[T any](a, b Matrix[T]) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}
