package compress

import "github.com/klauspost/compress/s2"

// S2Codec provides S2 compression, a faster snappy variant suited to
// snapshots on the hot path where decode speed matters more than ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress compresses the payload with S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores an S2-compressed payload.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
