//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr := gozstd.NewReader(r)

	return readCloserFunc{
		Reader: zr,
		close: func() error {
			zr.Release()
			return nil
		},
	}, nil
}

func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw := gozstd.NewWriter(w)

	return &zstdWriter{zw: zw}, nil
}

// zstdWriter finalizes the stream and releases the cgo resources on Close.
type zstdWriter struct {
	zw *gozstd.Writer
}

func (w *zstdWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

func (w *zstdWriter) Close() error {
	defer w.zw.Release()

	return w.zw.Close()
}
