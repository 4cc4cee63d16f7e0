// Package compress provides the compression codecs applied to blob
// snapshot payloads.
//
// Snapshot payloads are dense float64 matrices, typically a few KB to a
// few MB. Zstd gives the best ratio for archival, S2 and LZ4 favor
// speed, and NoOp passes data through when the payload is small enough
// that compression overhead is not worth it.
package compress

import (
	"fmt"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/format"
)

// Codec compresses and decompresses one payload.
//
// Implementations return newly allocated slices owned by the caller and
// never modify the input. All built-in codecs are safe for concurrent
// use.
type Codec interface {
	// Compress compresses the input payload.
	Compress(data []byte) ([]byte, error)

	// Decompress restores a payload previously produced by Compress of
	// the same codec. Corrupted or foreign data returns an error.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NoOpCodec{},
	format.CompressionZstd: ZstdCodec{},
	format.CompressionS2:   S2Codec{},
	format.CompressionLZ4:  LZ4Codec{},
}

// GetCodec retrieves the built-in Codec for the given compression type.
// Returns ErrInvalidCompressionType for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	codec, ok := builtinCodecs[compressionType]
	if !ok {
		return nil, fmt.Errorf("compression %s: %w", compressionType, errs.ErrInvalidCompressionType)
	}

	return codec, nil
}
