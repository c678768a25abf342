// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical kernel.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// Zeros returns a rows×cols matrix of additive identities.
// Thin alias of Filled with an intention-revealing name.
// Complexity: O(r*c).
func Zeros[T Number](rows, cols int) Matrix[T] {
	var zero T
	return Filled(rows, cols, zero)
}

// ZerosLike returns a zero matrix with the same shape as m.
// Handy to stage accumulators for element-wise folds.
// Complexity: O(r*c).
func ZerosLike[T Number](m Matrix[T]) Matrix[T] {
	return Zeros[T](m.Rows(), m.Cols())
}

// Add returns the element-wise sum a + b. Shapes must match exactly.
// Implementation: Map2 over +. Complexity: O(r*c).
func Add[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return Map2(func(x, y T) T { return x + y }, a, b)
}

// Sub returns the element-wise difference a − b. Shapes must match exactly.
// Implementation: Map2 over −. Complexity: O(r*c).
func Sub[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return Map2(func(x, y T) T { return x - y }, a, b)
}

// Hadamard returns the element-wise product a ⊙ b. Shapes must match exactly.
// Implementation: Map2 over *. Complexity: O(r*c).
func Hadamard[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return Map2(func(x, y T) T { return x * y }, a, b)
}

// Scale returns alpha*m.
// Implementation: Map over *. Complexity: O(r*c).
func Scale[T Number](m Matrix[T], alpha T) Matrix[T] {
	return Map(func(v T) T { return alpha * v }, m)
}

// Product is an alias for Dot: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Number](a, b Matrix[T]) (Matrix[T], error) { return Dot(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Good for small helpers and chaining. Complexity: O(r*c).
func T[E any](m Matrix[E]) Matrix[E] { return Transpose(m) }
