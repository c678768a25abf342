// SPDX-License-Identifier: MIT

// Package matrix - JSON & YAML codecs.
//
// Purpose:
//   - Serialize matrices through a single document form: nested row slices
//     ([[a, b], [c, d]]; the empty matrix is []).
//   - Funnel every decode through FromRows so codec input obeys the same
//     ragged/short-row rules as the constructor surface.
//
// Notes:
//   - The document form is lossless for all constructible matrices because
//     degenerate shapes normalize to the canonical empty matrix.

package matrix

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Codec interface conformance for Matrix[int] (representative instantiation).
var (
	_ json.Marshaler   = Matrix[int]{}
	_ json.Unmarshaler = (*Matrix[int])(nil)
	_ yaml.Marshaler   = Matrix[int]{}
	_ yaml.Unmarshaler = (*Matrix[int])(nil)
)

// Format identifies a codec document encoding.
type Format string

// Supported codec formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Encode serializes m in the given format.
// Errors: ErrUnknownFormat for an unrecognized format tag.
// Complexity: O(r*c).
func Encode[T any](m Matrix[T], f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.Marshal(m)
	case FormatYAML:
		return yaml.Marshal(m)
	default:
		return nil, matrixErrorf("Encode", ErrUnknownFormat)
	}
}

// Decode parses a matrix document in the given format. All input passes
// through FromRows, so the ragged/short-row rules apply regardless of codec.
// Errors: ErrUnknownFormat, ErrRaggedRows, or the codec's own syntax errors.
// Complexity: O(r*c).
func Decode[T any](data []byte, f Format) (Matrix[T], error) {
	var m Matrix[T]
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &m); err != nil {
			return Empty[T](), err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Empty[T](), err
		}
	default:
		return Empty[T](), matrixErrorf("Decode", ErrUnknownFormat)
	}

	return m, nil
}

// MarshalJSON encodes m as nested row arrays.
// Complexity: O(r*c).
func (m Matrix[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(RowSlices(m))
}

// UnmarshalJSON decodes nested row arrays into m, validating through
// FromRows (ErrRaggedRows on strictly-short rows; longer rows truncate).
// Complexity: O(r*c).
func (m *Matrix[T]) UnmarshalJSON(b []byte) error {
	var rows [][]T
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	built, err := FromRows(rows)
	if err != nil {
		return err
	}
	*m = built

	return nil
}

// MarshalYAML encodes m as nested row sequences.
// Complexity: O(r*c).
func (m Matrix[T]) MarshalYAML() (interface{}, error) {
	return RowSlices(m), nil
}

// UnmarshalYAML decodes nested row sequences into m through FromRows.
// Complexity: O(r*c).
func (m *Matrix[T]) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]T
	if err := value.Decode(&rows); err != nil {
		return err
	}
	built, err := FromRows(rows)
	if err != nil {
		return err
	}
	*m = built

	return nil
}
