package compress

import "io"

// NoopCodec passes bytes through untouched. It keeps the wrapping contract
// uniform: the returned closers never close the underlying stream.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

func (NoopCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (NoopCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}
