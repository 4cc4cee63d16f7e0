package container

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/matrix"
	"github.com/arloliu/tsframe/series"
)

// FromList normalizes a sequence of heterogeneous inputs into one
// rectangular container. It is the construct-from-sequence hook a host
// columnar framework calls for scalar sequences.
//
// Each item is decoded through series.ItemOf (see its doc for the
// accepted forms). Missing items have no width of their own: if every
// item is missing the result degenerates to n rows and zero columns,
// otherwise missing rows are padded with sentinel cells to the width of
// the first resolved row. All resolved rows must share one width;
// otherwise FromList fails with ErrWidthMismatch.
func FromList(items []any) (*TimeArray, error) {
	n := len(items)
	rows := make([]*series.Series, n)

	first := -1
	for i, item := range items {
		it, err := series.ItemOf(item)
		if err != nil {
			return nil, err
		}
		if it.Missing() {
			continue
		}
		rows[i] = it.Series()
		if first < 0 {
			first = i
		}
	}

	if first < 0 {
		return allMissing(n), nil
	}

	width := rows[first].Width()
	for i, row := range rows {
		if row != nil && row.Width() != width {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", i, row.Width(), width, errs.ErrWidthMismatch)
		}
	}

	values := matrix.New(n, width)
	times := matrix.New(n, width)
	for i, row := range rows {
		if row == nil {
			values.FillRow(i, math.NaN())
			times.FillRow(i, math.NaN())
			continue
		}
		values.SetRow(i, row.Values())
		times.SetRow(i, row.Times())
	}

	return newChecked(values, times)
}

// FromSeries wraps a single labeled series as a one-row container. A nil
// series produces the one-row all-missing container.
func FromSeries(s *series.Series) (*TimeArray, error) {
	return FromList([]any{s})
}

// FromTable converts an already-rectangular labeled table: columnTimes
// holds the shared time axis (one label per column) and values holds one
// row per series. The time axis is repeated across all rows; no
// missing-row resolution applies since the shape is already rectangular.
//
// Returns ErrInvalidShape if values is ragged or its column count does
// not match len(columnTimes).
func FromTable(columnTimes []float64, values [][]float64) (*TimeArray, error) {
	vm, err := matrix.FromRows(values)
	if err != nil {
		return nil, err
	}
	if vm.Rows() > 0 && vm.Cols() != len(columnTimes) {
		return nil, fmt.Errorf("table has %d columns but %d time labels: %w",
			vm.Cols(), len(columnTimes), errs.ErrInvalidShape)
	}

	times := matrix.New(vm.Rows(), vm.Cols())
	for r := 0; r < vm.Rows(); r++ {
		times.SetRow(r, columnTimes)
	}

	return newChecked(vm, times)
}
