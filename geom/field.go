package geom

import (
	"fmt"
	"math"
	"slices"

	"github.com/geomtools/geomgrid/encoding"
	"github.com/geomtools/geomgrid/errs"
)

// Kind tags the scalar representation of a field. It is decided once, when
// the field is constructed: if every value is a whole number the field is an
// integer field, otherwise a floating-point field.
type Kind uint8

const (
	KindInt   Kind = 0x1 // KindInt represents whole-number microstructure ids.
	KindFloat Kind = 0x2 // KindFloat represents floating-point values.
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Field is a 3-D scalar field over a regular grid. Values are stored flat in
// column-major order: axis 0 varies fastest, so flat index i addresses cell
// (i%a, (i/a)%b, i/(a*b)) for grid (a,b,c). That matches the file order of
// the body section exactly.
type Field struct {
	grid [3]int
	kind Kind
	vals []float64
}

// NewField builds a field from a flat column-major value buffer. The buffer
// is copied. Each grid entry must be at least 1 and the buffer length must
// equal the grid cell count.
//
// The kind is detected here: all-integral buffers become KindInt.
func NewField(grid [3]int, vals []float64) (*Field, error) {
	for _, n := range grid {
		if n < 1 {
			return nil, fmt.Errorf("%w: grid %v has a non-positive entry", errs.ErrInvalidField, grid)
		}
	}
	cells := grid[0] * grid[1] * grid[2]
	if len(vals) != cells {
		return nil, fmt.Errorf("%w: grid %v needs %d values, got %d", errs.ErrDimensionMismatch, grid, cells, len(vals))
	}

	kind := KindFloat
	if encoding.Integral(vals) {
		kind = KindInt
	}

	return &Field{grid: grid, kind: kind, vals: slices.Clone(vals)}, nil
}

// Grid returns the field shape (a, b, c).
func (f *Field) Grid() [3]int {
	return f.grid
}

// Kind returns the scalar representation tag.
func (f *Field) Kind() Kind {
	return f.kind
}

// Len returns the total cell count.
func (f *Field) Len() int {
	return len(f.vals)
}

// Values returns a copy of the flat column-major value buffer.
func (f *Field) Values() []float64 {
	return slices.Clone(f.vals)
}

// Ints returns a copy of the values as integers. The second return is false
// for floating-point fields, in which case the slice is nil.
func (f *Field) Ints() ([]int64, bool) {
	if f.kind != KindInt {
		return nil, false
	}

	out := make([]int64, len(f.vals))
	for i, v := range f.vals {
		out[i] = int64(v)
	}

	return out, true
}

// At returns the value of cell (a, b, c). Indices must be within the grid.
func (f *Field) At(a, b, c int) float64 {
	return f.vals[a+f.grid[0]*(b+f.grid[1]*c)]
}

// Max returns the largest value in the field.
func (f *Field) Max() float64 {
	maxVal := math.Inf(-1)
	for _, v := range f.vals {
		if v > maxVal {
			maxVal = v
		}
	}

	return maxVal
}

// UniqueCount returns the number of distinct values in the field.
func (f *Field) UniqueCount() int {
	seen := make(map[float64]struct{}, 64)
	for _, v := range f.vals {
		seen[v] = struct{}{}
	}

	return len(seen)
}

// Window extracts the sub-volume [offset, offset+shape) per axis into a new
// field. The window must lie entirely inside the grid; anything else is a
// bounds error, there are no periodic or clamping semantics.
func (f *Field) Window(offset, shape [3]int) (*Field, error) {
	for i := 0; i < 3; i++ {
		if shape[i] < 1 {
			return nil, fmt.Errorf("%w: window shape %v has a non-positive entry", errs.ErrInvalidField, shape)
		}
		if offset[i] < 0 || offset[i]+shape[i] > f.grid[i] {
			return nil, fmt.Errorf("%w: window [%d,%d) exceeds grid extent %d on axis %d",
				errs.ErrBounds, offset[i], offset[i]+shape[i], f.grid[i], i)
		}
	}

	vals := make([]float64, 0, shape[0]*shape[1]*shape[2])
	for c := offset[2]; c < offset[2]+shape[2]; c++ {
		for b := offset[1]; b < offset[1]+shape[1]; b++ {
			row := f.rowAt(offset[0], b, c)
			vals = append(vals, row[:shape[0]]...)
		}
	}

	return NewField(shape, vals)
}

// rowAt returns the axis-0 run starting at cell (a, b, c) as a live slice
// into the field storage.
func (f *Field) rowAt(a, b, c int) []float64 {
	start := a + f.grid[0]*(b+f.grid[1]*c)

	return f.vals[start : start-a+f.grid[0]]
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	return &Field{grid: f.grid, kind: f.kind, vals: slices.Clone(f.vals)}
}

// Equal reports whether two fields have the same shape, kind and values.
func (f *Field) Equal(o *Field) bool {
	return f.grid == o.grid && f.kind == o.kind && slices.Equal(f.vals, o.vals)
}
