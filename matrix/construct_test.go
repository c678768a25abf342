// Package matrix_test contains unit tests for the constructor surface:
// Empty, Filled, Init, Identity, FromFlat and FromRows.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/flatmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestFilledShapeAndContent: size(Filled(r,c,v)) == (r,c) and every slot == v.
func TestFilledShapeAndContent(t *testing.T) {
	for _, tc := range []struct {
		rows, cols int
		v          float64
	}{
		{1, 1, 0.5},
		{2, 3, -4},
		{5, 5, 42},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := matrix.Filled(tc.rows, tc.cols, tc.v)

			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			flat := matrix.Flat(m)
			require.Len(t, flat, tc.rows*tc.cols) // storage length invariant
			for _, got := range flat {
				require.Equal(t, tc.v, got) // every slot holds the fill value
			}
		})
	}
}

// TestDegenerateShapesNormalize ensures any zero or negative dimension
// collapses to the canonical empty matrix.
func TestDegenerateShapesNormalize(t *testing.T) {
	empty := matrix.Empty[int]()

	require.True(t, matrix.Equal(empty, matrix.Filled(0, 5, 9)))  // zero rows
	require.True(t, matrix.Equal(empty, matrix.Filled(5, 0, 9)))  // zero cols
	require.True(t, matrix.Equal(empty, matrix.Filled(-1, 5, 9))) // negative rows
	require.True(t, matrix.Equal(empty, matrix.Init(0, 0, func(r, c int) int { return r + c })))
	require.True(t, matrix.Equal(empty, matrix.Identity[int](0))) // Identity(0) == Empty
}

// TestInitRowMajorGenerator verifies Init visits 1-based coordinates and the
// result reads back through Get.
func TestInitRowMajorGenerator(t *testing.T) {
	m := matrix.Init(3, 2, func(r, c int) int { return 10*r + c })

	require.Equal(t, [][]int{{11, 12}, {21, 22}, {31, 32}}, matrix.RowSlices(m))
}

// TestIdentity checks shape and the diagonal/off-diagonal split.
func TestIdentity(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			id := matrix.Identity[float64](n)

			require.Equal(t, n, id.Rows())
			require.Equal(t, n, id.Cols())
			var r, c int
			for r = 1; r <= n; r++ {
				for c = 1; c <= n; c++ {
					v, ok := id.Get(r, c)
					require.True(t, ok)
					if r == c {
						require.Equal(t, 1.0, v) // diagonal ones
					} else {
						require.Equal(t, 0.0, v) // zeros elsewhere
					}
				}
			}
		})
	}
}

// TestFromFlatTooShortFails: fewer than rows*cols elements is an error.
func TestFromFlatTooShortFails(t *testing.T) {
	_, err := matrix.FromFlat(1, 2, []int{})
	require.ErrorIs(t, err, matrix.ErrShortData) // empty source for a 1×2 shape

	_, err = matrix.FromFlat(3, 3, []int{1, 2, 3, 4, 5, 6, 7, 8})
	require.ErrorIs(t, err, matrix.ErrShortData) // one element missing
}

// TestFromFlatExactAndExcess: exact length succeeds; excess is truncated.
func TestFromFlatExactAndExcess(t *testing.T) {
	got, err := matrix.FromFlat(2, 3, []int{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.True(t, matrix.Equal(matrix.Filled(2, 3, 1), got)) // exact fit

	got, err = matrix.FromFlat(2, 2, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.True(t, matrix.Equal(matrix.Filled(2, 2, 1), got)) // ten ones, first four used
}

// TestFromFlatNegativeShape ensures explicit negative dimensions are rejected
// with the shape sentinel rather than silently normalized.
func TestFromFlatNegativeShape(t *testing.T) {
	_, err := matrix.FromFlat(-1, 2, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromFlatDegenerateShape: a zero dimension succeeds with the canonical
// empty matrix no matter how short the source is.
func TestFromFlatDegenerateShape(t *testing.T) {
	got, err := matrix.FromFlat(0, 7, []int(nil))
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}

// TestFromRowsShortRowFails pins the committed boundary: a row strictly
// shorter than the width fixed by the first row fails.
func TestFromRowsShortRowFails(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2}, {1}, {1, 2}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestFromRowsLongRowTruncates pins the other side of the boundary: a longer
// row is truncated to the fixed width.
func TestFromRowsLongRowTruncates(t *testing.T) {
	got, err := matrix.FromRows([][]int{{1, 2}, {1, 2, 3}, {1, 2}})
	require.NoError(t, err)

	want := matrix.Init(3, 2, func(r, c int) int { return c })
	require.True(t, matrix.Equal(want, got)) // third element of row 2 dropped
}

// TestFromRowsEmptyInputs: an empty list or all-empty rows yield Empty.
func TestFromRowsEmptyInputs(t *testing.T) {
	got, err := matrix.FromRows([][]int{})
	require.NoError(t, err)
	require.True(t, got.IsEmpty()) // no rows at all

	got, err = matrix.FromRows([][]int{{}, {}, {}})
	require.NoError(t, err)
	require.True(t, got.IsEmpty()) // zero width fixed by the first row
}
