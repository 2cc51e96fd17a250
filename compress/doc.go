// Package compress provides transparent stream compression for geometry
// files.
//
// Geometry descriptions coming out of HPC pipelines are plain text and
// compress extremely well, so they are routinely stored gzipped or
// zstd-compressed at rest. This package wraps the input and output streams
// so the codec layers above never see the compression.
//
// A Codec pairs a reader and a writer factory:
//
//	type Codec interface {
//	    NewReader(r io.Reader) (io.ReadCloser, error)
//	    NewWriter(w io.Writer) (io.WriteCloser, error)
//	}
//
// Supported algorithms:
//   - None: passthrough (format.CompressionNone)
//   - Gzip: klauspost/compress/gzip (format.CompressionGzip)
//   - Zstd: valyala/gozstd with cgo, klauspost/compress/zstd otherwise
//     (format.CompressionZstd)
//   - LZ4: pierrec/lz4 frame format (format.CompressionLZ4)
//
// ForPath selects a codec from a filename extension (.gz, .zst, .zstd,
// .lz4), which is how the file-level facade picks compression.
//
// Writers must be closed to flush the compressed stream; closing a wrapped
// writer never closes the underlying one.
package compress
