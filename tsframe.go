// Package tsframe provides an equal-width timeseries container: a
// two-dimensional collection where every row is one series of float64
// values against its own float64 time index, and all rows share the
// same number of observations.
//
// Rows are stored columnar-style as two dense matrices (values and time
// indexes), with not-a-number used as the sentinel for missing cells. A
// row whose cells are all sentinel in both matrices is a missing row.
//
// # Core Features
//
//   - Construction from heterogeneous inputs (series, value/time pairs,
//     raw rows, tables, text lines) with sentinel padding for gaps
//   - Positional selection, assignment, slicing, and take with optional
//     fill, matching columnar-container conventions
//   - Elementwise addition, equality, and time-axis slicing across rows
//     that share a time index
//   - Factorization and uniqueness through xxHash64 row keys
//   - A binary snapshot format with optional compression (None, Zstd,
//     S2, LZ4) and xxHash64 payload checksums
//
// # Basic Usage
//
// Building a container and taking a snapshot:
//
//	import "github.com/arloliu/tsframe"
//
//	arr, _ := tsframe.FromTable([]float64{0, 1, 2}, [][]float64{
//	    {1.0, 2.0, 3.0},
//	    {4.0, 5.0, 6.0},
//	})
//
//	blob, _ := tsframe.EncodeBlob(arr, tsframe.WithCompression(tsframe.CompressionZstd))
//	restored, _ := tsframe.DecodeBlob(blob.Bytes())
//
// Round-tripping through the text form:
//
//	lines := arr.ToTS()
//	back, _ := tsframe.FromTS(lines)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// container and blob packages, simplifying the most common use cases.
// For fine-grained control, use those packages directly:
//
//   - container: the TimeArray type and all of its operations
//   - series: single-row value/time pairs and input normalization
//   - blob: the binary snapshot encoder and decoder
//   - tscodec: the "(t,v),(t,v)" text line format
//   - matrix: dense row-major float64 storage
//   - compress: payload compression codecs
//   - errs: sentinel errors shared by every package
package tsframe

import (
	"github.com/arloliu/tsframe/blob"
	"github.com/arloliu/tsframe/container"
	"github.com/arloliu/tsframe/format"
	"github.com/arloliu/tsframe/internal/hash"
	"github.com/arloliu/tsframe/series"
)

// Compression type aliases, so callers of the top-level API do not need
// to import the format package.
const (
	CompressionNone = format.CompressionNone
	CompressionZstd = format.CompressionZstd
	CompressionS2   = format.CompressionS2
	CompressionLZ4  = format.CompressionLZ4
)

// FromList builds a container from a list of heterogeneous row inputs.
// See container.FromList for the accepted forms.
func FromList(items []any) (*container.TimeArray, error) {
	return container.FromList(items)
}

// FromSeries builds a one-row container from a single series. A nil
// series produces one missing row of width zero.
func FromSeries(s *series.Series) (*container.TimeArray, error) {
	return container.FromSeries(s)
}

// FromTable builds a container from per-row value slices that all share
// the column time labels.
func FromTable(columnTimes []float64, values [][]float64) (*container.TimeArray, error) {
	return container.FromTable(columnTimes, values)
}

// FromTS builds a container from "(t,v),(t,v)" text lines, one row per
// line. Empty lines become missing rows.
func FromTS(lines []string) (*container.TimeArray, error) {
	return container.FromTS(lines)
}

// NewBlobEncoder creates a snapshot encoder. With no options it produces
// little-endian, uncompressed snapshots.
func NewBlobEncoder(opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(opts...)
}

// EncodeBlob serializes one container into a binary snapshot.
func EncodeBlob(a *container.TimeArray, opts ...blob.EncoderOption) (blob.Blob, error) {
	encoder, err := blob.NewEncoder(opts...)
	if err != nil {
		return blob.Blob{}, err
	}

	return encoder.Encode(a)
}

// DecodeBlob reconstructs a container from snapshot bytes.
func DecodeBlob(data []byte) (*container.TimeArray, error) {
	return blob.Decode(data)
}

// WithLittleEndian selects little-endian snapshot byte order (the
// default).
func WithLittleEndian() blob.EncoderOption { return blob.WithLittleEndian() }

// WithBigEndian selects big-endian snapshot byte order.
func WithBigEndian() blob.EncoderOption { return blob.WithBigEndian() }

// WithCompression selects the snapshot payload compression algorithm.
func WithCompression(ct format.CompressionType) blob.EncoderOption {
	return blob.WithCompression(ct)
}

// RowKey returns the xxHash64 key of a row's canonical text form, the
// same key Factorize uses to bucket rows.
func RowKey(text string) uint64 {
	return hash.RowKey(text)
}
