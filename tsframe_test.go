package tsframe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsframe/series"
)

func TestFromTable_BlobRoundTrip(t *testing.T) {
	arr, err := FromTable([]float64{0, 1, 2}, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	require.Equal(t, 2, arr.Len())
	require.Equal(t, 3, arr.Width())

	blob, err := EncodeBlob(arr, WithCompression(CompressionZstd))
	require.NoError(t, err)

	restored, err := DecodeBlob(blob.Bytes())
	require.NoError(t, err)
	require.True(t, arr.Equal(restored))
}

func TestFromList_TextRoundTrip(t *testing.T) {
	s1, err := series.New([]float64{1.5, 2.5}, []float64{0, 1})
	require.NoError(t, err)

	arr, err := FromList([]any{s1, nil})
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, arr.IsMissing())

	back, err := FromTS(arr.ToTS())
	require.NoError(t, err)
	require.Equal(t, arr.IsMissing(), back.IsMissing())

	got, err := back.At(0)
	require.NoError(t, err)
	require.True(t, s1.Equal(got))
}

func TestFromSeries(t *testing.T) {
	s, err := series.New([]float64{7}, []float64{0})
	require.NoError(t, err)

	arr, err := FromSeries(s)
	require.NoError(t, err)
	require.Equal(t, 1, arr.Len())
	require.Equal(t, 1, arr.Width())
}

func TestRowKey_Deterministic(t *testing.T) {
	require.Equal(t, RowKey("(0,1.5)"), RowKey("(0,1.5)"))
	require.NotEqual(t, RowKey("(0,1.5)"), RowKey("(0,2.5)"))
}
