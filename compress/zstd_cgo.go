//go:build cgo

package compress

import "github.com/valyala/gozstd"

// Compress compresses the payload with Zstandard at the default level.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a Zstandard-compressed payload.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
