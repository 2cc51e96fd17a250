package section

import (
	"strings"
	"testing"

	"github.com/geomtools/geomgrid/errs"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	t.Run("Canonical header", func(t *testing.T) {
		lines := []string{
			"4 header",
			"grid   a 2 b 3 c 4",
			"size   x 1.0 y 1.5 z 2.0",
			"origin x 0.0 y 0.0 z 0.5",
			"homogenization 2",
			"1 2 3",
		}

		header, bodyStart, err := ParseHeader(lines)

		require.NoError(t, err)
		require.Equal(t, [3]int{2, 3, 4}, header.Grid)
		require.Equal(t, [3]float64{1.0, 1.5, 2.0}, header.Size)
		require.Equal(t, [3]float64{0.0, 0.0, 0.5}, header.Origin)
		require.Equal(t, 2, header.Homogenization)
		require.Empty(t, header.Comments)
		require.Equal(t, 5, bodyStart)
	})

	t.Run("Keyword lines in any order with comments", func(t *testing.T) {
		lines := []string{
			"6 head",
			"# produced by test",
			"homogenization 1",
			"size x 1 y 1 z 1",
			"another comment",
			"origin x 0 y 0 z 0",
			"grid a 1 b 1 c 1",
		}

		header, bodyStart, err := ParseHeader(lines)

		require.NoError(t, err)
		require.Equal(t, [3]int{1, 1, 1}, header.Grid)
		require.Equal(t, []string{"# produced by test", "another comment"}, header.Comments)
		require.Equal(t, 7, bodyStart)
	})

	t.Run("Axis letters in any order", func(t *testing.T) {
		lines := []string{
			"4 header",
			"grid c 4 a 2 b 3",
			"size z 3.0 x 1.0 y 2.0",
			"origin y 5 x 4 z 6",
			"homogenization 1",
		}

		header, _, err := ParseHeader(lines)

		require.NoError(t, err)
		require.Equal(t, [3]int{2, 3, 4}, header.Grid)
		require.Equal(t, [3]float64{1.0, 2.0, 3.0}, header.Size)
		require.Equal(t, [3]float64{4, 5, 6}, header.Origin)
	})

	t.Run("Keywords are case-insensitive, comments keep case", func(t *testing.T) {
		lines := []string{
			"4 HEADER",
			"Made By The Test Suite",
			"GRID a 1 b 1 c 2",
			"Size X 1 Y 1 Z 1",
			"Origin x 0 y 0 z 0",
		}

		header, _, err := ParseHeader(lines)

		require.NoError(t, err)
		require.Equal(t, [3]int{1, 1, 2}, header.Grid)
		require.Equal(t, []string{"Made By The Test Suite"}, header.Comments)
	})

	t.Run("Missing homogenization defaults to 1", func(t *testing.T) {
		lines := []string{
			"3 header",
			"grid a 1 b 1 c 1",
			"size x 1 y 1 z 1",
			"origin x 0 y 0 z 0",
		}

		header, _, err := ParseHeader(lines)

		require.NoError(t, err)
		require.Equal(t, 1, header.Homogenization)
	})

	t.Run("Missing marker keyword", func(t *testing.T) {
		_, _, err := ParseHeader([]string{"4 banana", "grid a 1 b 1 c 1"})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrHeaderMarker)
		require.ErrorIs(t, err, errs.ErrFormat)
	})

	t.Run("Marker count below 3", func(t *testing.T) {
		_, _, err := ParseHeader([]string{"2 header", "grid a 1 b 1 c 1", "size x 1 y 1 z 1"})

		require.ErrorIs(t, err, errs.ErrHeaderMarker)
	})

	t.Run("Non-numeric marker count", func(t *testing.T) {
		_, _, err := ParseHeader([]string{"many header"})

		require.ErrorIs(t, err, errs.ErrHeaderMarker)
	})

	t.Run("Empty input", func(t *testing.T) {
		_, _, err := ParseHeader(nil)

		require.ErrorIs(t, err, errs.ErrHeaderMarker)
	})

	t.Run("Declared count exceeds available lines", func(t *testing.T) {
		_, _, err := ParseHeader([]string{"8 header", "grid a 1 b 1 c 1"})

		require.ErrorIs(t, err, errs.ErrFormat)
	})

	t.Run("Missing grid line", func(t *testing.T) {
		lines := []string{
			"3 header",
			"size x 1 y 1 z 1",
			"origin x 0 y 0 z 0",
			"homogenization 1",
		}

		_, _, err := ParseHeader(lines)

		require.ErrorIs(t, err, errs.ErrMissingGeometry)
	})

	t.Run("Missing axis token", func(t *testing.T) {
		lines := []string{
			"4 header",
			"grid a 1 b 1",
			"size x 1 y 1 z 1",
			"origin x 0 y 0 z 0",
			"homogenization 1",
		}

		_, _, err := ParseHeader(lines)

		require.ErrorIs(t, err, errs.ErrFormat)
	})

	t.Run("Unparsable axis value", func(t *testing.T) {
		lines := []string{
			"4 header",
			"grid a one b 1 c 1",
			"size x 1 y 1 z 1",
			"origin x 0 y 0 z 0",
			"homogenization 1",
		}

		_, _, err := ParseHeader(lines)

		require.ErrorIs(t, err, errs.ErrBadToken)
		require.ErrorIs(t, err, errs.ErrFormat)
	})
}

func TestHeaderEncode(t *testing.T) {
	t.Run("Canonical order and declared count", func(t *testing.T) {
		header := &Header{
			Grid:           [3]int{2, 3, 4},
			Size:           [3]float64{1, 1.5, 2},
			Origin:         [3]float64{0, 0, 0.5},
			Homogenization: 2,
			Comments:       []string{"first comment", "second comment"},
		}

		lines := header.Encode()

		require.Equal(t, "6 header", lines[0])
		require.Equal(t, "first comment", lines[1])
		require.Equal(t, "second comment", lines[2])
		require.True(t, strings.HasPrefix(lines[3], "grid   "))
		require.True(t, strings.HasPrefix(lines[4], "size   "))
		require.True(t, strings.HasPrefix(lines[5], "origin "))
		require.Equal(t, "homogenization 2", lines[6])
		require.Len(t, lines, header.LineCount()+1)
	})

	t.Run("Round-trip through parse", func(t *testing.T) {
		original := &Header{
			Grid:           [3]int{5, 6, 7},
			Size:           [3]float64{0.5, 1.25, 3},
			Origin:         [3]float64{-1, 0, 2.5},
			Homogenization: 3,
			Comments:       []string{"note"},
		}

		parsed, bodyStart, err := ParseHeader(original.Encode())

		require.NoError(t, err)
		require.Equal(t, original, parsed)
		require.Equal(t, original.LineCount()+1, bodyStart)
	})
}
