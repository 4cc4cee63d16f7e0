package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/compress"
	"github.com/arloliu/tsframe/container"
	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/internal/hash"
	"github.com/arloliu/tsframe/matrix"
)

// Decode reconstructs a container from snapshot bytes.
//
// The header is validated (size, magic, flags, compression), the payload
// decompressed and length-checked against the declared shape, and the
// checksum verified before any cell is interpreted. Missing rows come
// back exactly as encoded because sentinel cells round-trip bit-exactly.
func Decode(data []byte) (*container.TimeArray, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	compressed := data[HeaderSize:]
	if len(compressed) != int(header.PayloadSize) {
		return nil, fmt.Errorf("payload is %d bytes, header declares %d: %w",
			len(compressed), header.PayloadSize, errs.ErrInvalidPayloadSize)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	rows := int(header.RowCount)
	width := int(header.Width)
	cells := rows * width
	if len(payload) != 2*cells*8 {
		return nil, fmt.Errorf("decompressed payload is %d bytes, want %d for %dx%d: %w",
			len(payload), 2*cells*8, rows, width, errs.ErrInvalidPayloadSize)
	}

	if sum := hash.Sum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("got 0x%016X, want 0x%016X: %w", sum, header.Checksum, errs.ErrChecksumMismatch)
	}

	engine := header.Engine()
	values := readMatrix(payload[:cells*8], engine, rows, width)
	times := readMatrix(payload[cells*8:], engine, rows, width)

	return container.New(values, times)
}

func readMatrix(buf []byte, engine endianEngine, rows, width int) *matrix.Matrix {
	m := matrix.New(rows, width)
	offset := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < width; c++ {
			m.Set(r, c, math.Float64frombits(engine.Uint64(buf[offset:offset+8])))
			offset += 8
		}
	}

	return m
}
