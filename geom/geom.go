package geom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/geomtools/geomgrid/errs"
	"github.com/geomtools/geomgrid/internal/options"
)

// Geom is a regular-grid geometry description: a microstructure field plus
// the physical metadata of the header section. The grid resolution is always
// derived from the field shape.
type Geom struct {
	field          *Field
	size           [3]float64
	origin         [3]float64
	homogenization int
	comments       []string
}

// Option configures a Geom during construction.
type Option = options.Option[*Geom]

// WithOrigin sets the physical coordinate of the grid's lower corner.
// The default origin is (0, 0, 0).
func WithOrigin(origin [3]float64) Option {
	return options.NoError(func(g *Geom) {
		g.SetOrigin(origin)
	})
}

// WithHomogenization sets the homogenization id. The default is 1.
func WithHomogenization(homogenization int) Option {
	return options.New(func(g *Geom) error {
		return g.SetHomogenization(homogenization)
	})
}

// WithComments sets the header comments.
func WithComments(comments []string) Option {
	return options.NoError(func(g *Geom) {
		g.SetComments(comments)
	})
}

// New builds a geometry from a microstructure field and a physical size.
// Origin defaults to (0, 0, 0), homogenization to 1, comments to none.
func New(field *Field, size [3]float64, opts ...Option) (*Geom, error) {
	g := &Geom{homogenization: 1}
	if err := g.SetSize(size); err != nil {
		return nil, err
	}
	if err := g.SetField(field); err != nil {
		return nil, err
	}
	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// SetSize replaces the physical size. Every entry must be positive.
func (g *Geom) SetSize(size [3]float64) error {
	for _, v := range size {
		if v <= 0 {
			return fmt.Errorf("%w, got %v", errs.ErrInvalidSize, size)
		}
	}
	g.size = size

	return nil
}

// SetOrigin replaces the grid origin.
func (g *Geom) SetOrigin(origin [3]float64) {
	g.origin = origin
}

// SetField replaces the microstructure field. The grid resolution follows
// the new field's shape. The field is copied.
func (g *Geom) SetField(field *Field) error {
	if field == nil {
		return fmt.Errorf("%w: field is nil", errs.ErrInvalidField)
	}
	g.field = field.Clone()

	return nil
}

// SetHomogenization replaces the homogenization id, which must be positive.
func (g *Geom) SetHomogenization(homogenization int) error {
	if homogenization < 1 {
		return fmt.Errorf("%w, got %d", errs.ErrInvalidHomogenization, homogenization)
	}
	g.homogenization = homogenization

	return nil
}

// SetComments replaces the comment list.
func (g *Geom) SetComments(comments []string) {
	g.comments = slices.Clone(comments)
}

// AddComments appends comments, preserving order.
func (g *Geom) AddComments(comments ...string) {
	g.comments = append(g.comments, comments...)
}

// Field returns a copy of the microstructure field.
func (g *Geom) Field() *Field {
	return g.field.Clone()
}

// Grid returns the cell count per axis, derived from the field shape.
func (g *Geom) Grid() [3]int {
	return g.field.Grid()
}

// Size returns the physical extent per axis.
func (g *Geom) Size() [3]float64 {
	return g.size
}

// Origin returns the physical coordinate of the grid's lower corner.
func (g *Geom) Origin() [3]float64 {
	return g.origin
}

// Homogenization returns the homogenization id.
func (g *Geom) Homogenization() int {
	return g.homogenization
}

// Comments returns a copy of the comment list.
func (g *Geom) Comments() []string {
	return slices.Clone(g.comments)
}

// String summarizes the geometry, one attribute per line.
func (g *Geom) String() string {
	grid := g.Grid()
	var sb strings.Builder
	fmt.Fprintf(&sb, "grid     a b c:      %d x %d x %d\n", grid[0], grid[1], grid[2])
	fmt.Fprintf(&sb, "size     x y z:      %g x %g x %g\n", g.size[0], g.size[1], g.size[2])
	fmt.Fprintf(&sb, "origin   x y z:      %g %g %g\n", g.origin[0], g.origin[1], g.origin[2])
	fmt.Fprintf(&sb, "homogenization:      %d\n", g.homogenization)
	fmt.Fprintf(&sb, "# microstructures:   %d\n", g.field.UniqueCount())
	fmt.Fprintf(&sb, "max microstructure:  %g", g.field.Max())

	return sb.String()
}
