// Package geomgrid provides reading, writing and transforming of regular-grid
// microstructure geometry descriptions, the plain-text format consumed by
// spectral solvers in materials-simulation pipelines.
//
// A geometry file is a header section (grid resolution, physical size,
// origin, homogenization id, free-form comments) followed by one scalar id
// per grid cell, flattened column-major, with an optional run-length
// shorthand ("3 of 7", "2 to 5").
//
// # Basic Usage
//
// Reading, cropping and writing a geometry:
//
//	g, err := geomgrid.ReadFile("polycrystal.geom")
//	if err != nil {
//	    return err
//	}
//
//	cropped, err := geom.Crop(g, geom.CropSpec{
//	    Resolution: [3]int{16, 16, 16},
//	    Offset:     [3]int{4, 4, 4},
//	})
//	if err != nil {
//	    return err
//	}
//
//	err = geomgrid.WriteFile("cropped.geom", cropped)
//
// Compressed files are handled transparently by extension: "polycrystal.geom.gz"
// is decompressed on read and compressed on write. WriteFile always writes a
// temporary sibling and renames it over the target, so a crash mid-write
// never corrupts an existing file.
//
// # Package Structure
//
// This package provides the file-level entry points. The geom package holds
// the model and transforms, section and encoding the header and body codecs,
// compress the stream compression, and errs the error taxonomy.
package geomgrid

import (
	"fmt"
	"io"
	"os"

	"github.com/geomtools/geomgrid/compress"
	"github.com/geomtools/geomgrid/geom"
	"github.com/geomtools/geomgrid/internal/fsutil"
	"github.com/geomtools/geomgrid/internal/hash"
	"github.com/geomtools/geomgrid/internal/pool"
)

// Read decodes a geometry description from an uncompressed stream.
func Read(r io.Reader) (*geom.Geom, error) {
	return geom.Read(r)
}

// Parse decodes a geometry description from an in-memory byte buffer.
func Parse(data []byte) (*geom.Geom, error) {
	return geom.Parse(data)
}

// Write encodes a geometry description to an uncompressed stream.
func Write(w io.Writer, g *geom.Geom, opts ...geom.WriterOption) error {
	return geom.Write(w, g, opts...)
}

// ReadFile decodes the geometry file at path. Compression is detected from
// the filename extension (.gz, .zst, .zstd, .lz4).
func ReadFile(path string) (*geom.Geom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	codec, _ := compress.ForPath(path)
	rc, err := codec.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer rc.Close()

	g, err := geom.Read(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return g, nil
}

// WriteFile encodes the geometry to the file at path, compressing according
// to the filename extension. The target is replaced atomically: the encoded
// output lands in a temporary sibling first and is renamed over path only on
// success.
func WriteFile(path string, g *geom.Geom, opts ...geom.WriterOption) error {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	codec, _ := compress.ForPath(path)
	wc, err := codec.NewWriter(buf)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := geom.Write(wc, g, opts...); err != nil {
		wc.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return fsutil.AtomicWriteFile(path, buf.Bytes(), 0o644)
}

// Fingerprint returns the xxHash64 of the geometry's canonical encoding
// (3-D layout, no compression). Two geometries with equal grid, size,
// origin, homogenization, comments and field values share a fingerprint, so
// callers can detect change without diffing files.
func Fingerprint(g *geom.Geom) (uint64, error) {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	if err := geom.Write(buf, g); err != nil {
		return 0, err
	}

	return hash.Sum64(buf.Bytes()), nil
}
