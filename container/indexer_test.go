package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/series"
)

func threeRows(t *testing.T) *TimeArray {
	t.Helper()
	a, err := FromList([]any{
		mustSeries(t, []float64{1, 2}, []float64{0, 1}),
		mustSeries(t, []float64{3, 4}, []float64{0, 1}),
		mustSeries(t, []float64{5, 6}, []float64{0, 1}),
	})
	require.NoError(t, err)

	return a
}

func TestSelect_Int(t *testing.T) {
	a := threeRows(t)

	got, err := a.Select(1)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	require.Equal(t, []float64{3, 4}, got.Values().Row(0))
}

func TestSelect_NegativeIntWraps(t *testing.T) {
	a := threeRows(t)

	got, err := a.Select(-1)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, got.Values().Row(0))
}

func TestSelect_PositionList(t *testing.T) {
	a := threeRows(t)

	got, err := a.Select([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, got.Values().Row(0))
	require.Equal(t, []float64{1, 2}, got.Values().Row(1))
}

func TestSelect_BooleanMask(t *testing.T) {
	a := threeRows(t)

	got, err := a.Select([]bool{true, false, true})
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	require.Equal(t, []float64{5, 6}, got.Values().Row(1))
}

func TestSelect_MaskLengthMismatch(t *testing.T) {
	a := threeRows(t)

	_, err := a.Select([]bool{true, false})
	require.ErrorIs(t, err, errs.ErrUnsupportedIndexType)
}

func TestSelect_Range(t *testing.T) {
	a := threeRows(t)

	got, err := a.Select(Range{Start: 1, Stop: 3})
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	// Range bounds clamp rather than fail.
	got, err = a.Select(Range{Start: -5, Stop: 99})
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
}

func TestSelect_OutOfRange(t *testing.T) {
	a := threeRows(t)

	_, err := a.Select(7)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = a.Select([]int{0, 9})
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestSelect_UnsupportedIndexType(t *testing.T) {
	a := threeRows(t)

	_, err := a.Select("rows")
	require.ErrorIs(t, err, errs.ErrUnsupportedIndexType)
}

func TestSelect_SharesNoStorage(t *testing.T) {
	a := threeRows(t)

	got, err := a.Select([]int{0})
	require.NoError(t, err)

	got.Values().Set(0, 0, 99)
	require.Equal(t, 1.0, a.Values().At(0, 0))
}

func TestSet_SeriesBroadcast(t *testing.T) {
	a := threeRows(t)
	s := mustSeries(t, []float64{8, 9}, []float64{0, 1})

	require.NoError(t, a.Set([]int{0, 2}, s))
	require.Equal(t, []float64{8, 9}, a.Values().Row(0))
	require.Equal(t, []float64{3, 4}, a.Values().Row(1))
	require.Equal(t, []float64{8, 9}, a.Values().Row(2))
}

func TestSet_NilMakesRowsMissing(t *testing.T) {
	a := threeRows(t)

	require.NoError(t, a.Set(1, nil))
	require.Equal(t, []bool{false, true, false}, a.IsMissing())
	require.True(t, a.Values().IsNaNRow(1))
	require.True(t, a.Times().IsNaNRow(1))
}

func TestSet_AllSentinelValueMakesRowsMissing(t *testing.T) {
	a := threeRows(t)

	require.NoError(t, a.Set(0, series.Sentinel(2)))
	require.Equal(t, []bool{true, false, false}, a.IsMissing())
}

func TestSet_ArrayRowwise(t *testing.T) {
	a := threeRows(t)
	src, err := FromList([]any{
		mustSeries(t, []float64{10, 11}, []float64{0, 1}),
		mustSeries(t, []float64{12, 13}, []float64{0, 1}),
	})
	require.NoError(t, err)

	require.NoError(t, a.Set([]int{2, 0}, src))
	require.Equal(t, []float64{10, 11}, a.Values().Row(2))
	require.Equal(t, []float64{12, 13}, a.Values().Row(0))
}

func TestSet_ArrayLengthMismatch(t *testing.T) {
	a := threeRows(t)
	src, err := FromList([]any{
		mustSeries(t, []float64{10, 11}, []float64{0, 1}),
		mustSeries(t, []float64{12, 13}, []float64{0, 1}),
	})
	require.NoError(t, err)

	require.ErrorIs(t, a.Set([]int{0, 1, 2}, src), errs.ErrInvalidShape)
}

func TestSet_WidthMismatch(t *testing.T) {
	a := threeRows(t)

	err := a.Set(0, mustSeries(t, []float64{1, 2, 3}, []float64{0, 1, 2}))
	require.ErrorIs(t, err, errs.ErrWidthMismatch)
}

func TestSet_PairInputNormalized(t *testing.T) {
	a := threeRows(t)

	require.NoError(t, a.Set(0, series.Pair{Values: []float64{7, 7}, Times: []float64{0, 1}}))
	require.Equal(t, []float64{7, 7}, a.Values().Row(0))
}

func TestSet_InvariantHeldAfterMutation(t *testing.T) {
	a := threeRows(t)
	require.NoError(t, a.Set(Range{Start: 0, Stop: 2}, nil))
	require.Equal(t, a.Values().Rows(), a.Times().Rows())
	require.Equal(t, a.Values().Cols(), a.Times().Cols())
}
