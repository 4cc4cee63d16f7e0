package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsframe/errs"
)

func TestFromRows_Rectangular(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 5.0, m.At(1, 1))
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}

func TestFromRows_Empty(t *testing.T) {
	m, err := FromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestCheckPair(t *testing.T) {
	t.Run("identical shapes pass", func(t *testing.T) {
		require.NoError(t, CheckPair(New(2, 3), New(2, 3)))
	})

	t.Run("differing shapes fail", func(t *testing.T) {
		require.ErrorIs(t, CheckPair(New(2, 3), New(2, 4)), errs.ErrShapeMismatch)
		require.ErrorIs(t, CheckPair(New(2, 3), New(3, 3)), errs.ErrShapeMismatch)
	})

	t.Run("nil matrix fails", func(t *testing.T) {
		require.ErrorIs(t, CheckPair(New(2, 3), nil), errs.ErrShapeMismatch)
		require.ErrorIs(t, CheckPair(nil, New(2, 3)), errs.ErrShapeMismatch)
	})
}

func TestFull_NaN(t *testing.T) {
	m := Full(2, 2, math.NaN())
	require.True(t, m.AllNaN())
	require.True(t, m.IsNaNRow(0))
	require.True(t, m.IsNaNRow(1))
}

func TestIsNaNRow(t *testing.T) {
	m, err := FromRows([][]float64{{1, math.NaN()}, {math.NaN(), math.NaN()}})
	require.NoError(t, err)
	require.False(t, m.IsNaNRow(0))
	require.True(t, m.IsNaNRow(1))
	require.False(t, m.AllNaN())
}

func TestIsNaNRow_ZeroColumns(t *testing.T) {
	// A zero-column row has no cells, so it counts as fully sentinel.
	m := New(3, 0)
	require.True(t, m.IsNaNRow(0))
	require.True(t, m.AllNaN())
}

func TestClone_Independent(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 2}})
	c := m.Clone()
	c.Set(0, 0, 9)
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 9.0, c.At(0, 0))
}

func TestEqual(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	c, _ := FromRows([][]float64{{1, 2}, {3, 5}})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(New(2, 3)))
	require.False(t, a.Equal(nil))
}

func TestEqual_NaNBreaksEquality(t *testing.T) {
	a, _ := FromRows([][]float64{{math.NaN()}})
	require.False(t, a.Equal(a.Clone()))
}

func TestTakeRows(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	got := m.TakeRows([]int{2, 0})
	require.Equal(t, 2, got.Rows())
	require.Equal(t, []float64{5, 6}, got.Row(0))
	require.Equal(t, []float64{1, 2}, got.Row(1))
}

func TestSelectColumns(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	got := m.SelectColumns([]int{0, 2})
	require.Equal(t, []float64{1, 3}, got.Row(0))
	require.Equal(t, []float64{4, 6}, got.Row(1))
}

func TestVStack(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}})
	b, _ := FromRows([][]float64{{3, 4}, {5, 6}})

	got, err := VStack(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, []float64{5, 6}, got.Row(2))
}

func TestVStack_WidthMismatch(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}})
	b, _ := FromRows([][]float64{{3, 4, 5}})

	_, err := VStack(a, b)
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestSetRowAndFillRow(t *testing.T) {
	m := New(2, 3)
	m.SetRow(0, []float64{7, 8, 9})
	require.Equal(t, []float64{7, 8, 9}, m.Row(0))

	m.FillRow(1, math.NaN())
	require.True(t, m.IsNaNRow(1))
}
