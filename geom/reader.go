package geom

import (
	"fmt"
	"io"
	"strings"

	"github.com/geomtools/geomgrid/encoding"
	"github.com/geomtools/geomgrid/section"
)

// Read decodes a geometry description from r. The entire stream is
// materialized before any parsing begins; decoding either completes or fails
// without partial results.
func Read(r io.Reader) (*Geom, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading geometry: %w", err)
	}

	return Parse(data)
}

// Parse decodes a geometry description from an in-memory byte buffer.
func Parse(data []byte) (*Geom, error) {
	lines := splitLines(string(data))

	header, bodyStart, err := section.ParseHeader(lines)
	if err != nil {
		return nil, err
	}

	vals, err := encoding.DecodeBody(lines[bodyStart:], header.Grid)
	if err != nil {
		return nil, err
	}

	field, err := NewField(header.Grid, vals)
	if err != nil {
		return nil, err
	}

	return New(field, header.Size,
		WithOrigin(header.Origin),
		WithHomogenization(header.Homogenization),
		WithComments(header.Comments),
	)
}

// splitLines splits on newlines and strips carriage returns, so CRLF input
// parses the same as LF input.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
