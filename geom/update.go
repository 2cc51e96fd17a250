package geom

import (
	"fmt"
	"strings"

	"github.com/geomtools/geomgrid/errs"
)

// SizeMode selects how Update derives the new physical size. The explicit
// and rescale behaviors are mutually exclusive, so they are an enum rather
// than a pair of optional values.
type SizeMode uint8

const (
	// SizeKeep leaves the physical size untouched.
	SizeKeep SizeMode = iota
	// SizeExplicit replaces the size with UpdateSpec.Size.
	SizeExplicit
	// SizeRescale scales the old size by the grid ratio per axis, preserving
	// per-cell physical size: new_grid/old_grid * old_size.
	SizeRescale
)

func (m SizeMode) String() string {
	switch m {
	case SizeKeep:
		return "Keep"
	case SizeExplicit:
		return "Explicit"
	case SizeRescale:
		return "Rescale"
	default:
		return "Unknown"
	}
}

// UpdateSpec describes an atomic replacement of the microstructure field and
// the accompanying size handling. A nil Field keeps the current field.
// Size must be set exactly when Mode is SizeExplicit. Origin, when non-nil,
// replaces the origin.
type UpdateSpec struct {
	Field  *Field
	Mode   SizeMode
	Size   [3]float64
	Origin *[3]float64
}

// UpdateReport captures attribute values before and after an Update, for
// logging only. It carries no correctness contract.
type UpdateReport struct {
	OldGrid, NewGrid     [3]int
	OldSize, NewSize     [3]float64
	OldOrigin, NewOrigin [3]float64
	Homogenization       int
	OldUnique, NewUnique int
	OldMax, NewMax       float64
}

func (r *UpdateReport) GridChanged() bool   { return r.OldGrid != r.NewGrid }
func (r *UpdateReport) SizeChanged() bool   { return r.OldSize != r.NewSize }
func (r *UpdateReport) OriginChanged() bool { return r.OldOrigin != r.NewOrigin }
func (r *UpdateReport) UniqueChanged() bool { return r.OldUnique != r.NewUnique }
func (r *UpdateReport) MaxChanged() bool    { return r.OldMax != r.NewMax }

// String renders the report in the summary layout of Geom.String, showing
// old values struck through by a "was" suffix when they changed.
func (r *UpdateReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grid     a b c:      %d x %d x %d", r.NewGrid[0], r.NewGrid[1], r.NewGrid[2])
	if r.GridChanged() {
		fmt.Fprintf(&sb, " (was %d x %d x %d)", r.OldGrid[0], r.OldGrid[1], r.OldGrid[2])
	}
	fmt.Fprintf(&sb, "\nsize     x y z:      %g x %g x %g", r.NewSize[0], r.NewSize[1], r.NewSize[2])
	if r.SizeChanged() {
		fmt.Fprintf(&sb, " (was %g x %g x %g)", r.OldSize[0], r.OldSize[1], r.OldSize[2])
	}
	fmt.Fprintf(&sb, "\norigin   x y z:      %g %g %g", r.NewOrigin[0], r.NewOrigin[1], r.NewOrigin[2])
	if r.OriginChanged() {
		fmt.Fprintf(&sb, " (was %g %g %g)", r.OldOrigin[0], r.OldOrigin[1], r.OldOrigin[2])
	}
	fmt.Fprintf(&sb, "\nhomogenization:      %d", r.Homogenization)
	fmt.Fprintf(&sb, "\n# microstructures:   %d", r.NewUnique)
	if r.UniqueChanged() {
		fmt.Fprintf(&sb, " (was %d)", r.OldUnique)
	}
	fmt.Fprintf(&sb, "\nmax microstructure:  %g", r.NewMax)
	if r.MaxChanged() {
		fmt.Fprintf(&sb, " (was %g)", r.OldMax)
	}

	return sb.String()
}

// Update atomically replaces the microstructure field and derives the new
// size according to the spec's mode. It validates the spec up front and
// leaves the geometry untouched on any error.
func (g *Geom) Update(spec UpdateSpec) (*UpdateReport, error) {
	if spec.Mode != SizeExplicit && spec.Size != ([3]float64{}) {
		return nil, fmt.Errorf("%w: size given but mode is %s; set size explicitly or rescale, not both",
			errs.ErrValidation, spec.Mode)
	}

	report := &UpdateReport{
		OldGrid:        g.Grid(),
		OldSize:        g.Size(),
		OldOrigin:      g.Origin(),
		Homogenization: g.Homogenization(),
		OldUnique:      g.field.UniqueCount(),
		OldMax:         g.field.Max(),
	}

	field := spec.Field
	if field == nil {
		field = g.field
	}

	newSize := g.size
	switch spec.Mode {
	case SizeKeep:
	case SizeExplicit:
		newSize = spec.Size
	case SizeRescale:
		oldGrid, newGrid := g.Grid(), field.Grid()
		for i := 0; i < 3; i++ {
			newSize[i] = float64(newGrid[i]) / float64(oldGrid[i]) * g.size[i]
		}
	default:
		return nil, fmt.Errorf("%w: unknown size mode %d", errs.ErrValidation, spec.Mode)
	}

	// Validate everything before mutating anything.
	staged := &Geom{homogenization: g.homogenization, origin: g.origin, comments: g.comments}
	if err := staged.SetSize(newSize); err != nil {
		return nil, err
	}
	if err := staged.SetField(field); err != nil {
		return nil, err
	}

	g.field = staged.field
	g.size = staged.size
	if spec.Origin != nil {
		g.SetOrigin(*spec.Origin)
	}

	report.NewGrid = g.Grid()
	report.NewSize = g.Size()
	report.NewOrigin = g.Origin()
	report.NewUnique = g.field.UniqueCount()
	report.NewMax = g.field.Max()

	return report, nil
}
