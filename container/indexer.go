package container

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/matrix"
	"github.com/arloliu/tsframe/series"
)

// Range selects the half-open row interval [Start, Stop). Bounds are
// clamped to the container, matching slice-indexer conventions, so an
// oversized range is not an error.
type Range struct {
	Start int
	Stop  int
}

// positionsOf normalizes an external indexer into concrete row positions.
// This is the validation a host framework is expected to perform before
// indexing: integers (negative wraps from the end), position lists,
// boolean masks, and ranges are accepted; anything else fails with
// ErrUnsupportedIndexType.
func (a *TimeArray) positionsOf(sel any) ([]int, error) {
	n := a.Len()

	switch tv := sel.(type) {
	case int:
		p := tv
		if p < 0 {
			p += n
		}
		if p < 0 || p >= n {
			return nil, fmt.Errorf("row %d of %d: %w", tv, n, errs.ErrIndexOutOfRange)
		}

		return []int{p}, nil
	case []int:
		out := make([]int, len(tv))
		for i, idx := range tv {
			p := idx
			if p < 0 {
				p += n
			}
			if p < 0 || p >= n {
				return nil, fmt.Errorf("row %d of %d: %w", idx, n, errs.ErrIndexOutOfRange)
			}
			out[i] = p
		}

		return out, nil
	case []bool:
		if len(tv) != n {
			return nil, fmt.Errorf("boolean mask has %d entries for %d rows: %w", len(tv), n, errs.ErrUnsupportedIndexType)
		}
		out := make([]int, 0, n)
		for i, keep := range tv {
			if keep {
				out = append(out, i)
			}
		}

		return out, nil
	case Range:
		start, stop := tv.Start, tv.Stop
		if start < 0 {
			start = 0
		}
		if stop > n {
			stop = n
		}
		out := make([]int, 0)
		for p := start; p < stop; p++ {
			out = append(out, p)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("got %T: %w", sel, errs.ErrUnsupportedIndexType)
	}
}

// Select returns a new container holding the rows chosen by sel, sharing
// no storage with the original. See positionsOf for the accepted
// indexer forms.
func (a *TimeArray) Select(sel any) (*TimeArray, error) {
	positions, err := a.positionsOf(sel)
	if err != nil {
		return nil, err
	}

	return a.gather(positions), nil
}

// Set mutates the targeted rows in place. value may be:
//
//   - nil, or an all-missing series/container: every targeted cell in
//     both matrices becomes the sentinel and the rows turn missing.
//   - a *series.Series (or any series-like input accepted by
//     series.ItemOf): broadcast to every targeted row.
//   - a *TimeArray: assigned rowwise when its length matches the number
//     of targeted rows, or broadcast when it has exactly one row.
//
// Assigned rows must match the container width; Set fails with
// ErrWidthMismatch otherwise. The shape invariant is re-checked after
// the mutation.
func (a *TimeArray) Set(sel any, value any) error {
	positions, err := a.positionsOf(sel)
	if err != nil {
		return err
	}

	switch tv := value.(type) {
	case *TimeArray:
		if err := a.setArray(positions, tv); err != nil {
			return err
		}
	default:
		it, err := series.ItemOf(value)
		if err != nil {
			return err
		}
		if it.Missing() || it.Series().IsSentinel() {
			a.clearRows(positions)
			break
		}
		if err := a.setSeries(positions, it.Series()); err != nil {
			return err
		}
	}

	return matrix.CheckPair(a.values, a.times)
}

func (a *TimeArray) setArray(positions []int, src *TimeArray) error {
	if src == nil || allTrue(src.missing) {
		a.clearRows(positions)

		return nil
	}
	if src.Width() != a.Width() {
		return fmt.Errorf("assigned rows have width %d, container has %d: %w", src.Width(), a.Width(), errs.ErrWidthMismatch)
	}

	switch src.Len() {
	case len(positions):
		for i, p := range positions {
			a.assignRow(p, src.values.Row(i), src.times.Row(i))
		}
	case 1:
		for _, p := range positions {
			a.assignRow(p, src.values.Row(0), src.times.Row(0))
		}
	default:
		return fmt.Errorf("cannot assign %d rows to %d positions: %w", src.Len(), len(positions), errs.ErrInvalidShape)
	}

	return nil
}

func (a *TimeArray) setSeries(positions []int, s *series.Series) error {
	if s.Width() != a.Width() {
		return fmt.Errorf("assigned series has width %d, container has %d: %w", s.Width(), a.Width(), errs.ErrWidthMismatch)
	}

	for _, p := range positions {
		a.assignRow(p, s.Values(), s.Times())
	}

	return nil
}

func (a *TimeArray) assignRow(p int, values, times []float64) {
	a.values.SetRow(p, values)
	a.times.SetRow(p, times)
	a.missing[p] = a.values.IsNaNRow(p) && a.times.IsNaNRow(p)
}

func (a *TimeArray) clearRows(positions []int) {
	for _, p := range positions {
		a.values.FillRow(p, math.NaN())
		a.times.FillRow(p, math.NaN())
		a.missing[p] = true
	}
}

func allTrue(flags []bool) bool {
	for _, f := range flags {
		if !f {
			return false
		}
	}

	return true
}
