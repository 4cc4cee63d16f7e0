// Package blob implements the binary snapshot format for one container:
// a fixed 32-byte header followed by an optionally compressed payload
// holding the value and time-index matrices as raw float64 bits.
//
// Snapshot layout:
//
//	offset 0-1   option word (always little-endian): magic in bits 4-15,
//	             endianness in bit 1, bits 0/2/3 reserved
//	offset 2     compression type
//	offset 3     reserved
//	offset 4-7   row count
//	offset 8-11  width (column count)
//	offset 12-15 compressed payload size
//	offset 16-23 xxHash64 checksum of the uncompressed payload
//	offset 24-31 reserved
//
// Multi-byte fields after the option word use the byte order the option
// word declares. The payload is the value matrix followed by the
// time-index matrix, row-major, eight bytes per cell. Sentinel (NaN)
// cells are preserved bit-exactly, so the decoder re-derives missing
// rows without a stored flag.
package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/format"
)

const (
	// HeaderSize is the fixed byte length of a snapshot header.
	HeaderSize = 32

	// MagicMask selects the magic number bits of the option word.
	MagicMask = 0xFFF0
	// MagicSnapshotV1 is the version 1 magic number for the snapshot format.
	MagicSnapshotV1 = 0xEC10

	// EndiannessOpt is the option bit for byte order: 0 little, 1 big.
	EndiannessOpt = 0x0002
	// ReservedOptMask selects the option bits that must stay zero.
	ReservedOptMask = 0x000D
)

// endianEngine unifies read and append byte-order operations; satisfied
// by binary.LittleEndian and binary.BigEndian.
type endianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Header is the fixed-size section at the start of a snapshot.
type Header struct {
	Checksum    uint64
	RowCount    uint32
	Width       uint32
	PayloadSize uint32
	Options     uint16
	Compression format.CompressionType
}

// NewHeader creates a header with the version 1 magic, little-endian
// byte order, and no compression. Counts, sizes, and the checksum are
// filled in by the encoder.
func NewHeader() Header {
	return Header{
		Options:     MagicSnapshotV1,
		Compression: format.CompressionNone,
	}
}

// Engine returns the byte-order engine the option word declares.
func (h *Header) Engine() endianEngine {
	if h.Options&EndiannessOpt != 0 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Validate checks the magic number, reserved bits, and compression type.
func (h *Header) Validate() error {
	if h.Options&MagicMask != MagicSnapshotV1 {
		return fmt.Errorf("option word 0x%04X: %w", h.Options, errs.ErrInvalidMagicNumber)
	}
	if h.Options&ReservedOptMask != 0 {
		return fmt.Errorf("reserved bits set in 0x%04X: %w", h.Options, errs.ErrInvalidHeaderFlags)
	}
	if !h.Compression.Valid() {
		return fmt.Errorf("compression byte 0x%02X: %w", uint8(h.Compression), errs.ErrInvalidCompressionType)
	}

	return nil
}

// Bytes serializes the header into a fixed 32-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	// The option word is always little-endian so a reader can discover
	// the byte order of everything else.
	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = byte(h.Compression)

	engine := h.Engine()
	engine.PutUint32(b[4:8], h.RowCount)
	engine.PutUint32(b[8:12], h.Width)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// ParseHeader parses and validates a snapshot header.
//
// Returns ErrInvalidHeaderSize if data holds fewer than HeaderSize
// bytes, plus the Validate errors.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("got %d bytes, need %d: %w", len(data), HeaderSize, errs.ErrInvalidHeaderSize)
	}

	h := Header{
		Options:     uint16(data[0]) | uint16(data[1])<<8,
		Compression: format.CompressionType(data[2]),
	}

	engine := h.Engine()
	h.RowCount = engine.Uint32(data[4:8])
	h.Width = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}
