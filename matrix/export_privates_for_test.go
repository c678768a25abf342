// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Index Helpers
//
// Purpose:
//   - Expose the unexported offsetOf/coordOf bijection to matrix_test ONLY,
//     so the round-trip law can be verified without widening the prod API.
//
// Behavior & Determinism:
//   - Thin pass-through wrappers; no allocations, no side effects.

var (
	// ExportedOffsetOf exposes offsetOf for white-box tests.
	ExportedOffsetOf = offsetOf
	// ExportedCoordOf exposes coordOf for white-box tests.
	ExportedCoordOf = coordOf
)
