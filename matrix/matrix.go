// Package matrix provides the dense two-dimensional float64 storage that
// backs a timeseries container, along with the shape validation every
// container constructor and mutation relies on.
//
// A Matrix is row-major and rectangular by construction: it cannot
// represent a ragged layout, so shape errors are confined to construction
// from caller-supplied rows and to pairing two matrices of different
// dimensions.
package matrix

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/errs"
)

// Matrix is a dense row-major rectangular grid of float64 cells.
//
// The zero value is an empty 0x0 matrix. Cells use IEEE-754 semantics;
// the not-a-number sentinel marks missing cells.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// New creates a rows x cols matrix with all cells set to zero.
func New(rows, cols int) *Matrix {
	return &Matrix{
		data: make([]float64, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// Full creates a rows x cols matrix with every cell set to value.
// Full(rows, cols, math.NaN()) produces the all-missing layout.
func Full(rows, cols int, value float64) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = value
	}

	return m
}

// FromRows builds a matrix from a slice of equal-length rows.
//
// Returns ErrInvalidShape if the rows are ragged. A nil or empty input
// produces a 0x0 matrix.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}

	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, errs.ErrInvalidShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set assigns the cell at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[r*m.cols+c] = v
}

// Row returns the cells of row r as a view into the matrix storage.
// Mutating the returned slice mutates the matrix.
func (m *Matrix) Row(r int) []float64 {
	return m.data[r*m.cols : (r+1)*m.cols]
}

// SetRow overwrites row r with vals. The caller must pass exactly Cols()
// values; this is enforced by the container layer before mutation.
func (m *Matrix) SetRow(r int, vals []float64) {
	copy(m.data[r*m.cols:(r+1)*m.cols], vals)
}

// FillRow sets every cell of row r to value.
func (m *Matrix) FillRow(r int, value float64) {
	row := m.Row(r)
	for i := range row {
		row[i] = value
	}
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := New(m.rows, m.cols)
	copy(out.data, m.data)

	return out
}

// Equal reports whether both matrices have the same shape and bitwise
// equal cells under ==. NaN cells never compare equal, matching the
// container's rule that missing rows break elementwise equality.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// IsNaNRow reports whether every cell of row r is the NaN sentinel.
// A zero-column matrix has no cells, so every row is vacuously NaN.
func (m *Matrix) IsNaNRow(r int) bool {
	for _, v := range m.Row(r) {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}

// AllNaN reports whether every cell of the matrix is the NaN sentinel.
func (m *Matrix) AllNaN() bool {
	for _, v := range m.data {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}

// TakeRows gathers the given row positions into a new matrix. Positions
// must already be validated to lie in [0, Rows()).
func (m *Matrix) TakeRows(positions []int) *Matrix {
	out := New(len(positions), m.cols)
	for i, p := range positions {
		copy(out.data[i*m.cols:(i+1)*m.cols], m.Row(p))
	}

	return out
}

// SelectColumns gathers the given column positions, in order, from every
// row into a new matrix.
func (m *Matrix) SelectColumns(positions []int) *Matrix {
	out := New(m.rows, len(positions))
	for r := 0; r < m.rows; r++ {
		src := m.Row(r)
		dst := out.Row(r)
		for i, p := range positions {
			dst[i] = src[p]
		}
	}

	return out
}

// VStack vertically stacks the given matrices into a new matrix.
//
// All inputs must share one column count; the caller resolves width
// mismatches (by sentinel padding) before stacking. Returns
// ErrShapeMismatch if the widths still disagree.
func VStack(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return New(0, 0), nil
	}

	cols := ms[0].cols
	rows := 0
	for _, m := range ms {
		if m.cols != cols {
			return nil, fmt.Errorf("cannot stack %d-column matrix onto %d columns: %w", m.cols, cols, errs.ErrShapeMismatch)
		}
		rows += m.rows
	}

	out := New(rows, cols)
	offset := 0
	for _, m := range ms {
		copy(out.data[offset:offset+len(m.data)], m.data)
		offset += len(m.data)
	}

	return out, nil
}

// CheckPair enforces the container invariant: a value matrix and its
// paired time-index matrix must both exist and have identical shape.
//
// Every container constructor and in-place mutation finishes with this
// check. Returns ErrShapeMismatch on violation.
func CheckPair(values, times *Matrix) error {
	if values == nil || times == nil {
		return fmt.Errorf("matrix pair is incomplete: %w", errs.ErrShapeMismatch)
	}
	if values.rows != times.rows || values.cols != times.cols {
		return fmt.Errorf("values are %dx%d but time index is %dx%d: %w",
			values.rows, values.cols, times.rows, times.cols, errs.ErrShapeMismatch)
	}

	return nil
}
