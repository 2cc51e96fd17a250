package encoding

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/geomtools/geomgrid/errs"
	"github.com/geomtools/geomgrid/format"
)

// DecodeBody parses the body lines of a geometry file into a flat value
// buffer in file order, which is column-major order for the given grid:
// flat index i maps to cell (i%a, (i/a)%b, i/(a*b)).
//
// The total scalar count must equal the grid cell count; any mismatch is a
// dimension error carrying the expected and found counts.
func DecodeBody(lines []string, grid [3]int) ([]float64, error) {
	cells := grid[0] * grid[1] * grid[2]
	vals := make([]float64, 0, cells)

	for _, line := range lines {
		items := strings.Fields(line)

		if len(items) == 3 {
			switch strings.ToLower(items[1]) {
			case "of":
				n, err := strconv.Atoi(items[0])
				if err != nil {
					return nil, fmt.Errorf("%w %q in %q", errs.ErrBadToken, items[0], line)
				}
				if n < 0 {
					return nil, fmt.Errorf("%w: negative repeat count in %q", errs.ErrFormat, line)
				}
				v, err := strconv.ParseFloat(items[2], 64)
				if err != nil {
					return nil, fmt.Errorf("%w %q in %q", errs.ErrBadToken, items[2], line)
				}
				for i := 0; i < n; i++ {
					vals = append(vals, v)
				}

				continue
			case "to":
				start, err := strconv.Atoi(items[0])
				if err != nil {
					return nil, fmt.Errorf("%w %q in %q", errs.ErrBadToken, items[0], line)
				}
				end, err := strconv.Atoi(items[2])
				if err != nil {
					return nil, fmt.Errorf("%w %q in %q", errs.ErrBadToken, items[2], line)
				}
				step := 1
				if end < start {
					step = -1
				}
				for v := start; ; v += step {
					vals = append(vals, float64(v))
					if v == end {
						break
					}
				}

				continue
			}
		}

		for _, item := range items {
			v, err := strconv.ParseFloat(item, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q in %q", errs.ErrBadToken, item, line)
			}
			vals = append(vals, v)
		}
	}

	if len(vals) != cells {
		return nil, fmt.Errorf("%w: expected %d entries, found %d", errs.ErrDimensionMismatch, cells, len(vals))
	}

	return vals, nil
}

// Integral reports whether every value in the buffer is a whole number.
// Decode completion uses it to pick the integer field representation.
func Integral(vals []float64) bool {
	for _, v := range vals {
		if v != math.Trunc(v) || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// EncodeBody writes the flat value buffer (column-major file order) as body
// text. Integer fields are right-aligned to the digit count of the maximum
// value; floating fields use the shortest general format.
//
// Layout3D emits one row of grid[0] values per line. Layout2D joins each
// z-slice into a single line of grid[0]*grid[1] values; the layout affects
// line breaking only.
func EncodeBody(w io.Writer, vals []float64, grid [3]int, integer bool, layout format.LayoutType) error {
	cells := grid[0] * grid[1] * grid[2]
	if len(vals) != cells {
		return fmt.Errorf("%w: expected %d entries, found %d", errs.ErrDimensionMismatch, cells, len(vals))
	}

	width := 0
	if integer {
		width = digitWidth(vals)
	}

	perLine := grid[0]
	if layout == format.Layout2D {
		perLine = grid[0] * grid[1]
	}

	bw := bufio.NewWriter(w)
	for i, v := range vals {
		if err := writeValue(bw, v, integer, width); err != nil {
			return err
		}

		sep := byte(' ')
		if (i+1)%perLine == 0 {
			sep = '\n'
		}
		if err := bw.WriteByte(sep); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// digitWidth returns the decimal digit count of the maximum value, at
// least 1.
func digitWidth(vals []float64) int {
	maxVal := 0.0
	for _, v := range vals {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal < 10 {
		return 1
	}

	return int(math.Floor(math.Log10(maxVal))) + 1
}

func writeValue(bw *bufio.Writer, v float64, integer bool, width int) error {
	if integer {
		_, err := fmt.Fprintf(bw, "%*d", width, int64(v))
		return err
	}

	_, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))

	return err
}
