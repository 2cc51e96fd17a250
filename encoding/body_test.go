package encoding

import (
	"strings"
	"testing"

	"github.com/geomtools/geomgrid/errs"
	"github.com/geomtools/geomgrid/format"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	t.Run("Plain scalars", func(t *testing.T) {
		vals, err := DecodeBody([]string{"1 2", "3 4", "5 6", "7 8"}, [3]int{2, 2, 2})

		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, vals)
	})

	t.Run("Repeat form", func(t *testing.T) {
		vals, err := DecodeBody([]string{"3 of 7", "1"}, [3]int{4, 1, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{7, 7, 7, 1}, vals)
	})

	t.Run("Ascending range form", func(t *testing.T) {
		vals, err := DecodeBody([]string{"2 to 5"}, [3]int{4, 1, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{2, 3, 4, 5}, vals)
	})

	t.Run("Descending range form", func(t *testing.T) {
		// abs(end-start)+1 values stepping toward end, original behavior.
		vals, err := DecodeBody([]string{"5 to 2"}, [3]int{4, 1, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{5, 4, 3, 2}, vals)
	})

	t.Run("Degenerate range", func(t *testing.T) {
		vals, err := DecodeBody([]string{"4 to 4", "1 1 1"}, [3]int{4, 1, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{4, 1, 1, 1}, vals)
	})

	t.Run("Three plain tokens are not a compact form", func(t *testing.T) {
		vals, err := DecodeBody([]string{"1 2 3"}, [3]int{3, 1, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 3}, vals)
	})

	t.Run("Compact keyword is case-insensitive", func(t *testing.T) {
		vals, err := DecodeBody([]string{"2 OF 9", "2 To 3"}, [3]int{4, 1, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{9, 9, 2, 3}, vals)
	})

	t.Run("Repeat of float value", func(t *testing.T) {
		vals, err := DecodeBody([]string{"2 of 1.5"}, [3]int{2, 1, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{1.5, 1.5}, vals)
	})

	t.Run("Blank lines are ignored", func(t *testing.T) {
		vals, err := DecodeBody([]string{"", "1 2", "", "3 4", ""}, [3]int{2, 2, 1})

		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 3, 4}, vals)
	})

	t.Run("Too few scalars", func(t *testing.T) {
		_, err := DecodeBody([]string{"1 2 3"}, [3]int{2, 2, 1})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
		require.Contains(t, err.Error(), "expected 4")
		require.Contains(t, err.Error(), "found 3")
	})

	t.Run("Too many scalars", func(t *testing.T) {
		_, err := DecodeBody([]string{"1 2 3 4 5"}, [3]int{2, 2, 1})

		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("Unparsable scalar", func(t *testing.T) {
		_, err := DecodeBody([]string{"1 x"}, [3]int{2, 1, 1})

		require.ErrorIs(t, err, errs.ErrBadToken)
	})

	t.Run("Negative repeat count", func(t *testing.T) {
		_, err := DecodeBody([]string{"-2 of 7"}, [3]int{2, 1, 1})

		require.ErrorIs(t, err, errs.ErrFormat)
	})
}

func TestIntegral(t *testing.T) {
	require.True(t, Integral([]float64{1, 2, 3}))
	require.True(t, Integral(nil))
	require.True(t, Integral([]float64{-4, 0, 1e12}))
	require.False(t, Integral([]float64{1, 2.5}))
}

func TestEncodeBody(t *testing.T) {
	t.Run("Integer rows with aligned width", func(t *testing.T) {
		var sb strings.Builder
		vals := []float64{1, 2, 3, 4, 5, 10}

		err := EncodeBody(&sb, vals, [3]int{2, 3, 1}, true, format.Layout3D)

		require.NoError(t, err)
		require.Equal(t, " 1  2\n 3  4\n 5 10\n", sb.String())
	})

	t.Run("Two-dimensional layout joins z-slices", func(t *testing.T) {
		var sb strings.Builder
		vals := []float64{1, 2, 3, 4, 5, 6, 7, 8}

		err := EncodeBody(&sb, vals, [3]int{2, 2, 2}, true, format.Layout2D)

		require.NoError(t, err)
		require.Equal(t, "1 2 3 4\n5 6 7 8\n", sb.String())
	})

	t.Run("Float values use general format", func(t *testing.T) {
		var sb strings.Builder
		vals := []float64{1.5, 2, 0.25, 100}

		err := EncodeBody(&sb, vals, [3]int{2, 2, 1}, false, format.Layout3D)

		require.NoError(t, err)
		require.Equal(t, "1.5 2\n0.25 100\n", sb.String())
	})

	t.Run("Value count mismatch", func(t *testing.T) {
		var sb strings.Builder

		err := EncodeBody(&sb, []float64{1, 2, 3}, [3]int{2, 2, 1}, true, format.Layout3D)

		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("Layout affects line breaks only", func(t *testing.T) {
		vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
		grid := [3]int{2, 3, 2}

		var threeD, twoD strings.Builder
		require.NoError(t, EncodeBody(&threeD, vals, grid, true, format.Layout3D))
		require.NoError(t, EncodeBody(&twoD, vals, grid, true, format.Layout2D))

		require.Equal(t, strings.Fields(threeD.String()), strings.Fields(twoD.String()))
		require.NotEqual(t, threeD.String(), twoD.String())
	})
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	grid := [3]int{3, 2, 2}
	lines := []string{"4 of 2", "5 to 8", "9 10 11 12"}

	vals, err := DecodeBody(lines, grid)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, EncodeBody(&sb, vals, grid, true, format.Layout3D))

	again, err := DecodeBody(strings.Split(sb.String(), "\n"), grid)
	require.NoError(t, err)
	require.Equal(t, vals, again)
}
