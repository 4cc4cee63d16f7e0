package container

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/matrix"
	"github.com/arloliu/tsframe/series"
)

// Take gathers rows by integer position into a new container.
//
// Without fill, negative positions wrap from the end and anything still
// outside [0, Len()) fails with ErrIndexOutOfRange.
//
// With allowFill, out-of-range positions (negatives included) become
// missing rows instead of failing. When fillValue is a non-nil
// *series.Series, rows that gathered as missing at out-of-range positions
// are overwritten with the fill series, which must match the container
// width; the width is only checked when some position actually needs
// the fill. Any other non-nil fillValue fails with ErrInvalidFillValue;
// fillValue is ignored when allowFill is false.
//
// Postcondition: a non-empty gather whose cells are entirely sentinel
// collapses to the zero-column all-missing container of the gathered row
// count, mirroring the normalizer's degenerate form.
func (a *TimeArray) Take(indices []int, allowFill bool, fillValue any) (*TimeArray, error) {
	fill, err := takeFill(allowFill, fillValue)
	if err != nil {
		return nil, err
	}

	n := a.Len()
	w := a.Width()
	values := matrix.New(len(indices), w)
	times := matrix.New(len(indices), w)
	outOfRange := make([]bool, len(indices))

	for i, idx := range indices {
		p := idx
		if !allowFill && p < 0 {
			p += n
		}
		if p >= 0 && p < n {
			values.SetRow(i, a.values.Row(p))
			times.SetRow(i, a.times.Row(p))
			continue
		}
		if !allowFill {
			return nil, fmt.Errorf("row %d of %d: %w", idx, n, errs.ErrIndexOutOfRange)
		}
		values.FillRow(i, math.NaN())
		times.FillRow(i, math.NaN())
		outOfRange[i] = true
	}

	if fill != nil {
		for i := range indices {
			if !outOfRange[i] || !values.IsNaNRow(i) || !times.IsNaNRow(i) {
				continue
			}
			if fill.Width() != w {
				return nil, fmt.Errorf("fill series has width %d, container has %d: %w", fill.Width(), w, errs.ErrWidthMismatch)
			}
			values.SetRow(i, fill.Values())
			times.SetRow(i, fill.Times())
		}
	}

	if values.Rows() != 0 && values.AllNaN() && times.AllNaN() {
		return allMissing(values.Rows()), nil
	}

	return newChecked(values, times)
}

func takeFill(allowFill bool, fillValue any) (*series.Series, error) {
	if !allowFill || fillValue == nil {
		return nil, nil
	}

	switch tv := fillValue.(type) {
	case *series.Series:
		return tv, nil
	case series.Series:
		return &tv, nil
	default:
		return nil, fmt.Errorf("got %T: %w", fillValue, errs.ErrInvalidFillValue)
	}
}
