package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the compressor keeps
// internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxBufSize caps the adaptive decompression buffer at 128MB.
const lz4MaxBufSize = 128 * 1024 * 1024

// lz4InitialBufSize sizes the first decompression attempt at 4x the
// compressed length, clamped to the cap so large payloads still get one
// full-size attempt.
func lz4InitialBufSize(compressedLen int) int {
	size := compressedLen * 4
	if size > lz4MaxBufSize {
		return lz4MaxBufSize
	}

	return size
}

// LZ4Codec provides LZ4 block compression for snapshot payloads.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// Compress compresses the payload as a single LZ4 block.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress restores an LZ4 block. The decompressed size is not stored
// in the block format, so the buffer starts at 4x the compressed size
// and doubles on short-buffer errors up to a 128MB safety limit.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := lz4InitialBufSize(len(data)); bufSize <= lz4MaxBufSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < lz4MaxBufSize {
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
