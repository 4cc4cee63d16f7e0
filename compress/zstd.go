package compress

// ZstdCodec provides Zstandard compression for snapshot payloads.
//
// Zstd trades compression speed for ratio, which suits archived
// containers that are written once and decoded rarely. Two
// implementations exist behind build tags: the cgo build uses
// valyala/gozstd, the pure-Go build uses klauspost/compress/zstd.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
