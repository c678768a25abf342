// Package flatmat is a generic dense-matrix toolbox built on a single flat,
// contiguous, row-major buffer — predictable, cache-friendly 2D storage with
// the basic linear-algebra operations on top.
//
// 🚀 What is flatmat?
//
//	A small, immutable-by-design library that brings together:
//		• Matrix[T]: one contiguous slice, tracked rows×cols, 1-based coordinates
//		• Constructors: Empty, Filled, Init, Identity, FromFlat, FromRows
//		• Persistent transforms: Map, Map2, Transpose, Dot — always a fresh result
//		• Conversions: flat and nested exports, pretty rendering, JSON/YAML codecs
//
// ✨ Why choose flatmat?
//
//   - Value semantics – no shared mutable state, free concurrent reads
//   - Rock-solid guarantees – sentinel errors, comma-ok access, no panics
//   - Generic – any element type for storage, numeric constraint only where
//     algebra demands it (Identity, Dot)
//
// Everything is organized under two paths:
//
//	matrix/      — the core value type, kernels, validators and codecs
//	cmd/flatmat/ — a small CLI for multiplying, transposing and rendering
//	               matrix files (JSON/YAML in, JSON/YAML/pretty out)
//
// Quick ASCII example:
//
//	    [ [ 1, 2, 3 ]
//	    , [ 4, 5, 6 ] ]
//
//	is a 2×3 matrix whose backing buffer is simply 1 2 3 4 5 6.
//
// Dive into the matrix package docs for the full operation surface and the
// algebraic laws its tests pin down.
//
//	go get github.com/katalvlaran/flatmat
package flatmat
