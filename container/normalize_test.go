package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/series"
)

func TestFromList_Empty(t *testing.T) {
	a, err := FromList(nil)
	require.NoError(t, err)
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Width())
}

func TestFromList_AllMissing(t *testing.T) {
	a, err := FromList([]any{nil, nil})
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 0, a.Width())
	require.Equal(t, []bool{true, true}, a.IsMissing())
}

func TestFromList_MissingPaddedToResolvedWidth(t *testing.T) {
	a, err := FromList([]any{
		mustSeries(t, []float64{1, 2, 3}, []float64{0, 1, 2}),
		nil,
	})
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 3, a.Width())
	require.Equal(t, []bool{false, true}, a.IsMissing())
	require.True(t, a.Values().IsNaNRow(1))
	require.True(t, a.Times().IsNaNRow(1))
}

func TestFromList_WidthMismatch(t *testing.T) {
	_, err := FromList([]any{
		mustSeries(t, []float64{1, 2, 3}, []float64{0, 1, 2}),
		mustSeries(t, []float64{1, 2, 3, 4}, []float64{0, 1, 2, 3}),
	})
	require.ErrorIs(t, err, errs.ErrWidthMismatch)
}

func TestFromList_HeterogeneousForms(t *testing.T) {
	a, err := FromList([]any{
		mustSeries(t, []float64{1, 2}, []float64{0, 1}),
		series.Pair{Values: []float64{3, 4}, Times: []float64{0, 1}},
		series.Labeled{Index: []float64{0, 1}, Data: []float64{5, 6}},
		[][]float64{{7, 8}, {0, 1}},
	})
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())
	require.Equal(t, []float64{3, 4}, a.Values().Row(1))
	require.Equal(t, []float64{5, 6}, a.Values().Row(2))
	require.Equal(t, []float64{7, 8}, a.Values().Row(3))
	require.Equal(t, []float64{0, 1}, a.Times().Row(3))
}

func TestFromList_UnsupportedItem(t *testing.T) {
	_, err := FromList([]any{"bogus"})
	require.ErrorIs(t, err, errs.ErrUnsupportedInputType)
}

func TestFromList_InvariantAfterConstruction(t *testing.T) {
	a, err := FromList([]any{
		nil,
		mustSeries(t, []float64{1}, []float64{5}),
		nil,
	})
	require.NoError(t, err)
	require.Equal(t, a.Values().Rows(), a.Times().Rows())
	require.Equal(t, a.Values().Cols(), a.Times().Cols())
	require.Equal(t, []bool{true, false, true}, a.IsMissing())
}

func TestFromSeries(t *testing.T) {
	a, err := FromSeries(mustSeries(t, []float64{1, 2}, []float64{0, 1}))
	require.NoError(t, err)
	require.Equal(t, 1, a.Len())
	require.Equal(t, 2, a.Width())
}

func TestFromSeries_Nil(t *testing.T) {
	a, err := FromSeries(nil)
	require.NoError(t, err)
	require.Equal(t, 1, a.Len())
	require.Equal(t, 0, a.Width())
	require.Equal(t, []bool{true}, a.IsMissing())
}

func TestFromTable(t *testing.T) {
	a, err := FromTable([]float64{10, 20, 30}, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 3, a.Width())
	require.Equal(t, []float64{10, 20, 30}, a.Times().Row(0))
	require.Equal(t, []float64{10, 20, 30}, a.Times().Row(1))
}

func TestFromTable_ColumnCountMismatch(t *testing.T) {
	_, err := FromTable([]float64{10, 20}, [][]float64{{1, 2, 3}})
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}

func TestFromTable_Ragged(t *testing.T) {
	_, err := FromTable([]float64{10, 20}, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}
