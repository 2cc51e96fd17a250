package geom

import (
	"fmt"

	"github.com/geomtools/geomgrid/errs"
)

// CropSpec describes a sub-volume extraction. Resolution is the output grid;
// a zero entry keeps the source grid value for that axis. Offset is the
// inclusive lower corner index into the source grid.
type CropSpec struct {
	Resolution [3]int
	Offset     [3]int
}

// Crop extracts the window [offset, offset+resolution) from the source
// geometry. The output size preserves per-cell physical size:
// size[i]/grid[i]*resolution[i]. Origin, homogenization and comments carry
// over unchanged.
//
// Windows reaching outside the source grid are rejected; there are no
// periodic semantics.
func Crop(g *Geom, spec CropSpec) (*Geom, error) {
	grid := g.Grid()
	size := g.Size()

	res := spec.Resolution
	for i := 0; i < 3; i++ {
		if res[i] == 0 {
			res[i] = grid[i]
		}
		if res[i] < 0 {
			return nil, fmt.Errorf("%w: resolution %v has a negative entry", errs.ErrValidation, spec.Resolution)
		}
	}

	field, err := g.Field().Window(spec.Offset, res)
	if err != nil {
		return nil, err
	}

	var newSize [3]float64
	for i := 0; i < 3; i++ {
		newSize[i] = size[i] / float64(grid[i]) * float64(res[i])
	}

	return New(field, newSize,
		WithOrigin(g.Origin()),
		WithHomogenization(g.Homogenization()),
		WithComments(g.Comments()),
	)
}
