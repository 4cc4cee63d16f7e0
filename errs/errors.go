// Package errs defines the sentinel errors returned by tsframe packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is regardless of the context wrapped around them at the call site.
package errs

import "errors"

// Container construction and mutation errors.
var (
	// ErrShapeMismatch indicates the value matrix and time-index matrix
	// disagree in shape at construction or after a mutation.
	ErrShapeMismatch = errors.New("value and time-index matrices must have identical shape")

	// ErrInvalidShape indicates a constructor was given a non-rectangular
	// value matrix or an explicit time index of a different shape.
	ErrInvalidShape = errors.New("invalid matrix shape")

	// ErrUnsupportedInputType indicates an input item is not one of the
	// accepted series-like forms.
	ErrUnsupportedInputType = errors.New("input must be a valid timeseries object")

	// ErrWidthMismatch indicates non-missing rows within one batch disagree
	// in column count. All non-missing series in one container must share
	// one width.
	ErrWidthMismatch = errors.New("the width of each timeseries must be equal")
)

// Container operation errors.
var (
	// ErrUnsupportedCast indicates an AsType target that is neither the
	// timeseries dtype, string, nor the generic object form.
	ErrUnsupportedCast = errors.New("unsupported cast target")

	// ErrIncompatibleIndex indicates an elementwise addition between
	// containers whose time indices differ.
	ErrIncompatibleIndex = errors.New("time indices of added containers must be identical")

	// ErrIndexOutOfRange indicates a row position outside the container.
	ErrIndexOutOfRange = errors.New("row index out of range")

	// ErrInvalidFillValue indicates a take fill value that is neither nil
	// nor a series.
	ErrInvalidFillValue = errors.New("fill value must be a series or nil")

	// ErrUnsupportedType indicates a concatenation input that is not a
	// container of this kind.
	ErrUnsupportedType = errors.New("only TimeArrays can be concatenated")

	// ErrUnsupportedIndexType indicates an indexer argument that is not an
	// integer, boolean mask, range, or position list.
	ErrUnsupportedIndexType = errors.New("unsupported index type")
)

// Text codec errors.
var (
	// ErrMalformedSeriesText indicates a ts-format line that cannot be
	// parsed into (time,value) points.
	ErrMalformedSeriesText = errors.New("malformed series text")

	// ErrHeaderNotSupported indicates a request for the header-annotated
	// ts format, which is not implemented.
	ErrHeaderNotSupported = errors.New("ts format with headers not supported")
)

// Dtype registry errors.
var (
	// ErrUnknownTypeName indicates a dtype name other than "timeseries".
	ErrUnknownTypeName = errors.New("unknown dtype name")
)

// Blob format errors.
var (
	// ErrInvalidHeaderSize indicates blob data shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid blob header size")

	// ErrInvalidMagicNumber indicates a blob header whose magic bits do not
	// identify a tsframe snapshot.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates reserved header flag bits are set.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidCompressionType indicates an unrecognized compression type
	// byte in the blob header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidPayloadSize indicates a decompressed payload whose size does
	// not match the row count and width declared in the header.
	ErrInvalidPayloadSize = errors.New("invalid payload size")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
