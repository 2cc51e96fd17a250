package geom

import (
	"bufio"
	"fmt"
	"io"

	"github.com/geomtools/geomgrid/encoding"
	"github.com/geomtools/geomgrid/format"
	"github.com/geomtools/geomgrid/internal/options"
	"github.com/geomtools/geomgrid/section"
)

// writerConfig holds the encode-time choices. Only the body layout exists
// today; the header is always canonical.
type writerConfig struct {
	layout format.LayoutType
}

// WriterOption configures Write.
type WriterOption = options.Option[*writerConfig]

// WithLayout selects the body line layout. The default is format.Layout3D.
// The layout never changes the encoded values or the header.
func WithLayout(layout format.LayoutType) WriterOption {
	return options.New(func(cfg *writerConfig) error {
		switch layout {
		case format.Layout3D, format.Layout2D:
			cfg.layout = layout
			return nil
		default:
			return fmt.Errorf("invalid layout: %v", layout)
		}
	})
}

// Write encodes the geometry to w in the text format: canonical header
// followed by the body in the configured layout.
func Write(w io.Writer, g *Geom, opts ...WriterOption) error {
	cfg := &writerConfig{layout: format.Layout3D}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	header := &section.Header{
		Grid:           g.Grid(),
		Size:           g.Size(),
		Origin:         g.Origin(),
		Homogenization: g.Homogenization(),
		Comments:       g.Comments(),
	}

	bw := bufio.NewWriter(w)
	for _, line := range header.Encode() {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	field := g.field

	return encoding.EncodeBody(w, field.vals, field.grid, field.kind == KindInt, cfg.layout)
}
