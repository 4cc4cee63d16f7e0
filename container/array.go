// Package container implements TimeArray, a homogeneous equal-width
// collection of time series stored as two parallel dense matrices.
//
// Each row of a TimeArray is one series: the value vector lives in row i
// of the value matrix and its pointwise-aligned time index in row i of
// the time-index matrix. Both matrices always have identical shape; this
// invariant is enforced after every construction and mutation.
//
// Missing rows are stored as all-sentinel (NaN) cells in both matrices,
// the legacy convention, and additionally tracked by an explicit per-row
// flag so "missing" is never confused with "a real row that happens to
// contain sentinels in one matrix only". A container whose every row is
// missing degenerates to zero columns unless a batch operation pads it
// to a resolved width.
package container

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/matrix"
	"github.com/arloliu/tsframe/series"
	"github.com/arloliu/tsframe/tscodec"
)

// printRowLimit caps the number of rows rendered by String.
const printRowLimit = 10

// TimeArray holds multiple equal-width time series as two parallel
// matrices. The zero value is not usable; construct through New, NewFrom,
// FromList, FromTable, or FromSeries.
type TimeArray struct {
	values  *matrix.Matrix
	times   *matrix.Matrix
	missing []bool
}

// New creates a container from a value matrix and an optional time-index
// matrix. The container takes ownership of the passed matrices; callers
// that keep using them must pass clones.
//
// If times is nil, each row receives the default index 0..w-1 (an empty
// index for a zero-width matrix). Returns ErrInvalidShape if values is
// nil or the explicit time index differs in shape.
func New(values, times *matrix.Matrix) (*TimeArray, error) {
	if values == nil {
		return nil, fmt.Errorf("value matrix is required: %w", errs.ErrInvalidShape)
	}

	if times == nil {
		times = defaultIndex(values.Rows(), values.Cols())
	} else if times.Rows() != values.Rows() || times.Cols() != values.Cols() {
		return nil, fmt.Errorf("time index is %dx%d but values are %dx%d: %w",
			times.Rows(), times.Cols(), values.Rows(), values.Cols(), errs.ErrInvalidShape)
	}

	return newChecked(values, times)
}

// NewFrom creates a deep copy of another container.
func NewFrom(other *TimeArray) (*TimeArray, error) {
	if other == nil {
		return nil, fmt.Errorf("source container is required: %w", errs.ErrInvalidShape)
	}

	return newChecked(other.values.Clone(), other.times.Clone())
}

// newChecked finishes every construction path: it enforces the shape
// invariant and derives the per-row missing flags from the all-sentinel
// convention.
func newChecked(values, times *matrix.Matrix) (*TimeArray, error) {
	if err := matrix.CheckPair(values, times); err != nil {
		return nil, err
	}

	a := &TimeArray{values: values, times: times}
	a.missing = make([]bool, values.Rows())
	for r := range a.missing {
		a.missing[r] = values.IsNaNRow(r) && times.IsNaNRow(r)
	}

	return a, nil
}

// gather builds a new container from already-validated row positions.
// The shape invariant is preserved by construction.
func (a *TimeArray) gather(positions []int) *TimeArray {
	out := &TimeArray{
		values:  a.values.TakeRows(positions),
		times:   a.times.TakeRows(positions),
		missing: make([]bool, len(positions)),
	}
	for i, p := range positions {
		out.missing[i] = a.missing[p]
	}

	return out
}

// allMissing builds the degenerate n-row, zero-column container.
func allMissing(rows int) *TimeArray {
	a := &TimeArray{
		values:  matrix.New(rows, 0),
		times:   matrix.New(rows, 0),
		missing: make([]bool, rows),
	}
	for i := range a.missing {
		a.missing[i] = true
	}

	return a
}

func defaultIndex(rows, cols int) *matrix.Matrix {
	m := matrix.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, float64(c))
		}
	}

	return m
}

// Len returns the number of series (rows) in the container.
func (a *TimeArray) Len() int { return a.values.Rows() }

// Width returns the shared column count of the container's matrices.
func (a *TimeArray) Width() int { return a.values.Cols() }

// Values returns the value matrix as a view. Callers must not mutate it.
func (a *TimeArray) Values() *matrix.Matrix { return a.values }

// Times returns the time-index matrix as a view. Callers must not mutate it.
func (a *TimeArray) Times() *matrix.Matrix { return a.times }

// At returns the series at row i, or nil if that row is missing.
// Returns ErrIndexOutOfRange for positions outside [0, Len()).
func (a *TimeArray) At(i int) (*series.Series, error) {
	if i < 0 || i >= a.Len() {
		return nil, fmt.Errorf("row %d of %d: %w", i, a.Len(), errs.ErrIndexOutOfRange)
	}
	if a.missing[i] {
		return nil, nil
	}

	return series.New(a.values.Row(i), a.times.Row(i))
}

// IsMissing returns the per-row missing flags. A row is missing iff every
// value cell AND every time cell is the NaN sentinel; a row with real
// values but sentinel times (or vice versa) is legal to construct and is
// reported as not missing.
func (a *TimeArray) IsMissing() []bool {
	out := make([]bool, len(a.missing))
	copy(out, a.missing)

	return out
}

// Copy returns a deep duplicate of the container.
func (a *TimeArray) Copy() *TimeArray {
	out, _ := newChecked(a.values.Clone(), a.times.Clone())

	return out
}

// Equal reports whether both containers match elementwise in every value
// cell and every time cell. Sentinel cells never compare equal, so
// containers with missing rows are never Equal.
func (a *TimeArray) Equal(other *TimeArray) bool {
	if other == nil {
		return false
	}

	return a.values.Equal(other.values) && a.times.Equal(other.times)
}

// EqualSeries broadcasts one series across every row and reports whether
// all rows match it elementwise in both values and times.
func (a *TimeArray) EqualSeries(s *series.Series) bool {
	if s == nil || s.Width() != a.Width() {
		return false
	}

	vals := s.Values()
	tms := s.Times()
	for r := 0; r < a.Len(); r++ {
		rowVals := a.values.Row(r)
		rowTimes := a.times.Row(r)
		for c := range vals {
			if rowVals[c] != vals[c] || rowTimes[c] != tms[c] {
				return false
			}
		}
	}

	return true
}

// Add performs elementwise value addition and returns a new container
// with the shared time index.
//
// Fails with ErrIncompatibleIndex unless every time-index cell matches
// between the two containers; two cells match when they are equal or
// both the NaN sentinel, so aligned missing rows stay missing in the
// result.
func (a *TimeArray) Add(other *TimeArray) (*TimeArray, error) {
	if other == nil || other.Len() != a.Len() || other.Width() != a.Width() {
		return nil, fmt.Errorf("shapes differ: %w", errs.ErrIncompatibleIndex)
	}

	for r := 0; r < a.Len(); r++ {
		at := a.times.Row(r)
		bt := other.times.Row(r)
		for c := range at {
			if at[c] != bt[c] && !(math.IsNaN(at[c]) && math.IsNaN(bt[c])) {
				return nil, fmt.Errorf("time index differs at row %d, column %d: %w", r, c, errs.ErrIncompatibleIndex)
			}
		}
	}

	sum := matrix.New(a.Len(), a.Width())
	for r := 0; r < a.Len(); r++ {
		av := a.values.Row(r)
		bv := other.values.Row(r)
		dst := sum.Row(r)
		for c := range av {
			dst[c] = av[c] + bv[c]
		}
	}

	return newChecked(sum, a.times.Clone())
}

// SliceTime column-selects using the first row's time index as the
// reference axis: it keeps the columns whose row-0 time value appears in
// targetTimes, applied identically to every row.
//
// This assumes, without checking, that all rows share one time axis; the
// result is unspecified when they disagree. Use EqualTimeIndex to test
// the assumption.
func (a *TimeArray) SliceTime(targetTimes []float64) (*TimeArray, error) {
	if a.Len() == 0 {
		return NewFrom(a)
	}

	want := make(map[float64]struct{}, len(targetTimes))
	for _, t := range targetTimes {
		want[t] = struct{}{}
	}

	axis := a.times.Row(0)
	cols := make([]int, 0, len(axis))
	for c, t := range axis {
		if _, ok := want[t]; ok {
			cols = append(cols, c)
		}
	}

	return newChecked(a.values.SelectColumns(cols), a.times.SelectColumns(cols))
}

// EqualTimeIndex reports whether every row shares row 0's time axis.
// Containers with zero or one row trivially qualify. Rows containing
// sentinel time cells never match the reference axis.
func (a *TimeArray) EqualTimeIndex() bool {
	if a.Len() <= 1 {
		return true
	}

	ref := a.times.Row(0)
	for r := 1; r < a.Len(); r++ {
		row := a.times.Row(r)
		for c := range ref {
			if row[c] != ref[c] {
				return false
			}
		}
	}

	return true
}

// Tabularize returns a column-named rectangular view of the value matrix,
// naming each column "<name>_<t>" from the first row's time index. An
// empty name defaults to "dim". The returned matrix is a copy.
func (a *TimeArray) Tabularize(name string) ([]string, *matrix.Matrix) {
	if name == "" {
		name = "dim"
	}

	names := make([]string, a.Width())
	if a.Len() > 0 {
		for c, t := range a.times.Row(0) {
			names[c] = fmt.Sprintf("%s_%v", name, t)
		}
	} else {
		for c := range names {
			names[c] = fmt.Sprintf("%s_%d", name, c)
		}
	}

	return names, a.values.Clone()
}

// String renders a readable summary: the class name, up to ten rows in
// ts-format text, and the row count with the dtype name.
func (a *TimeArray) String() string {
	var sb strings.Builder
	sb.WriteString("<TimeArray>\n[")

	limit := a.Len()
	if limit > printRowLimit {
		limit = printRowLimit
	}
	for r := 0; r < limit; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		if a.missing[r] {
			sb.WriteString("<missing>")
			continue
		}
		sb.WriteString(a.rowText(r))
	}
	if a.Len() > limit {
		sb.WriteString(", ...")
	}
	fmt.Fprintf(&sb, "]\nLength: %d, dtype: %s", a.Len(), a.Dtype().Name())

	return sb.String()
}

// rowText serializes row r as a ts-format line regardless of missingness.
func (a *TimeArray) rowText(r int) string {
	s, err := series.New(a.values.Row(r), a.times.Row(r))
	if err != nil {
		// Rows of a checked container always have aligned vectors.
		panic(err)
	}

	return tscodec.EncodeSeries(s)
}
