package compress

// ZstdCodec reads and writes Zstandard streams.
//
// Two implementations back this type: the cgo build uses valyala/gozstd
// (libzstd bindings, fastest), the pure-Go build uses
// klauspost/compress/zstd. Both produce interchangeable streams.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
