// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Map2 over different shapes, or Dot where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShortData is returned by FromFlat when the source slice holds fewer
	// than rows*cols elements. Excess elements are NOT an error (truncated).
	ErrShortData = errors.New("matrix: source slice too short")

	// ErrRaggedRows is returned by FromRows when a row is strictly shorter
	// than the column count fixed by the first row. Longer rows are NOT an
	// error (truncated to the fixed width).
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrInvalidDimensions indicates a negative row or column count was
	// requested where an explicit shape is part of the contract (FromFlat).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrUnknownFormat marks an unrecognized codec document during decoding.
	ErrUnknownFormat = errors.New("matrix: unknown document format")
)
