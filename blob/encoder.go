package blob

import (
	"math"

	"github.com/arloliu/tsframe/compress"
	"github.com/arloliu/tsframe/container"
	"github.com/arloliu/tsframe/format"
	"github.com/arloliu/tsframe/internal/hash"
	"github.com/arloliu/tsframe/matrix"
)

// Blob is one encoded container snapshot.
type Blob struct {
	data   []byte
	header Header
}

// Bytes returns the full snapshot: header plus payload.
func (b Blob) Bytes() []byte { return b.data }

// RowCount returns the number of series rows in the snapshot.
func (b Blob) RowCount() int { return int(b.header.RowCount) }

// Width returns the shared column count of the snapshot.
func (b Blob) Width() int { return int(b.header.Width) }

// Compression returns the compression applied to the payload.
func (b Blob) Compression() format.CompressionType { return b.header.Compression }

// Encoder serializes containers into snapshots. The zero configuration
// (little-endian, no compression) comes from NewEncoder; adjust it with
// options.
type Encoder struct {
	codec  compress.Codec
	header Header
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder) error

// WithLittleEndian selects little-endian byte order (the default).
func WithLittleEndian() EncoderOption {
	return func(e *Encoder) error {
		e.header.Options &^= EndiannessOpt

		return nil
	}
}

// WithBigEndian selects big-endian byte order, for interoperability with
// big-endian consumers.
func WithBigEndian() EncoderOption {
	return func(e *Encoder) error {
		e.header.Options |= EndiannessOpt

		return nil
	}
}

// WithCompression selects the payload compression algorithm.
func WithCompression(ct format.CompressionType) EncoderOption {
	return func(e *Encoder) error {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return err
		}
		e.header.Compression = ct
		e.codec = codec

		return nil
	}
}

// NewEncoder creates a snapshot encoder.
//
// Example:
//
//	encoder, err := blob.NewEncoder(blob.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	snapshot, err := encoder.Encode(arr)
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{header: NewHeader()}
	e.codec, _ = compress.GetCodec(format.CompressionNone)

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Encode serializes one container into a snapshot. The encoder holds no
// per-call state and may be reused.
func (e *Encoder) Encode(a *container.TimeArray) (Blob, error) {
	header := e.header
	header.RowCount = uint32(a.Len())
	header.Width = uint32(a.Width())

	engine := header.Engine()
	payload := make([]byte, 0, 2*a.Len()*a.Width()*8)
	payload = appendMatrix(payload, engine, a.Values())
	payload = appendMatrix(payload, engine, a.Times())

	header.Checksum = hash.Sum(payload)

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return Blob{}, err
	}
	header.PayloadSize = uint32(len(compressed))

	data := make([]byte, 0, HeaderSize+len(compressed))
	data = append(data, header.Bytes()...)
	data = append(data, compressed...)

	return Blob{data: data, header: header}, nil
}

func appendMatrix(buf []byte, engine endianEngine, m *matrix.Matrix) []byte {
	for r := 0; r < m.Rows(); r++ {
		for _, v := range m.Row(r) {
			buf = engine.AppendUint64(buf, math.Float64bits(v))
		}
	}

	return buf
}
