package container

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/matrix"
)

// ExtensionArray is the explicit contract a host columnar framework
// consumes: a fixed set of named operations rather than inherited
// behavior. *TimeArray is the canonical implementation; ConcatSameType
// rejects any other.
type ExtensionArray interface {
	// Len returns the number of rows.
	Len() int
	// Width returns the shared column count.
	Width() int
	// Dtype identifies the element type.
	Dtype() Dtype
	// IsMissing returns the per-row missing flags.
	IsMissing() []bool
	// ValuesForFactorize returns per-row string keys and the marker used
	// for missing rows (nil).
	ValuesForFactorize() ([]string, any)
}

var _ ExtensionArray = (*TimeArray)(nil)

// ConcatSameType vertically stacks containers into one.
//
// Width resolution follows the normalizer: zero-width (all-missing)
// segments are padded with sentinel cells to the single positive width
// present across the inputs; more than one distinct positive width fails
// with ErrWidthMismatch. Inputs that are not *TimeArray fail with
// ErrUnsupportedType.
func ConcatSameType(arrays []ExtensionArray) (*TimeArray, error) {
	parts := make([]*TimeArray, len(arrays))
	width := 0
	for i, arr := range arrays {
		ta, ok := arr.(*TimeArray)
		if !ok || ta == nil {
			return nil, fmt.Errorf("got %T: %w", arr, errs.ErrUnsupportedType)
		}
		parts[i] = ta

		if w := ta.Width(); w > 0 {
			if width > 0 && w != width {
				return nil, fmt.Errorf("widths %d and %d: %w", width, w, errs.ErrWidthMismatch)
			}
			width = w
		}
	}

	values := make([]*matrix.Matrix, len(parts))
	times := make([]*matrix.Matrix, len(parts))
	for i, ta := range parts {
		if ta.Width() == width {
			values[i] = ta.values
			times[i] = ta.times
			continue
		}
		// Zero-width segment padded to the resolved width.
		values[i] = matrix.Full(ta.Len(), width, math.NaN())
		times[i] = matrix.Full(ta.Len(), width, math.NaN())
	}

	stackedValues, err := matrix.VStack(values...)
	if err != nil {
		return nil, err
	}
	stackedTimes, err := matrix.VStack(times...)
	if err != nil {
		return nil, err
	}

	return newChecked(stackedValues, stackedTimes)
}
