package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/geomtools/geomgrid/format"
)

// Codec wraps a byte stream with compression or decompression.
//
// NewReader wraps r so that reads return decompressed bytes. NewWriter wraps
// w so that writes are compressed; the returned writer must be closed to
// flush the compressed stream. Neither wrapper closes the underlying stream.
type Codec interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NoopCodec{},
	format.CompressionGzip: GzipCodec{},
	format.CompressionZstd: ZstdCodec{},
	format.CompressionLZ4:  LZ4Codec{},
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// ForPath selects a codec from the filename extension: .gz for gzip, .zst or
// .zstd for Zstandard, .lz4 for LZ4, anything else for no compression.
func ForPath(name string) (Codec, format.CompressionType) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return GzipCodec{}, format.CompressionGzip
	case ".zst", ".zstd":
		return ZstdCodec{}, format.CompressionZstd
	case ".lz4":
		return LZ4Codec{}, format.CompressionLZ4
	default:
		return NoopCodec{}, format.CompressionNone
	}
}

// nopWriteCloser adds a no-op Close to a plain writer.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// readCloserFunc adds a Close callback to a plain reader.
type readCloserFunc struct {
	io.Reader
	close func() error
}

func (r readCloserFunc) Close() error { return r.close() }
