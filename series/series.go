// Package series defines a single timeseries row: an aligned pair of
// value and time-index vectors, plus the boundary decoding that turns
// loosely-typed external inputs into rows.
package series

import (
	"fmt"
	"math"

	"github.com/arloliu/tsframe/errs"
)

// Series is one row's aligned (values, times) pair. The missing row is
// represented by a nil *Series, not by a Series value.
//
// A Series owns its slices; constructors copy caller data.
type Series struct {
	values []float64
	times  []float64
}

// New creates a series from aligned value and time vectors.
//
// Returns ErrShapeMismatch if the vectors differ in length. The input
// slices are copied.
func New(values, times []float64) (*Series, error) {
	if len(values) != len(times) {
		return nil, fmt.Errorf("values have %d points but time index has %d: %w",
			len(values), len(times), errs.ErrShapeMismatch)
	}

	s := &Series{
		values: make([]float64, len(values)),
		times:  make([]float64, len(times)),
	}
	copy(s.values, values)
	copy(s.times, times)

	return s, nil
}

// Sentinel creates a series of the given width with every value and time
// cell set to the NaN sentinel. Used to pad missing rows to a batch's
// resolved width.
func Sentinel(width int) *Series {
	s := &Series{
		values: make([]float64, width),
		times:  make([]float64, width),
	}
	for i := 0; i < width; i++ {
		s.values[i] = math.NaN()
		s.times[i] = math.NaN()
	}

	return s
}

// Width returns the number of points in the series.
func (s *Series) Width() int { return len(s.values) }

// Values returns the value vector as a view. Callers must not mutate it.
func (s *Series) Values() []float64 { return s.values }

// Times returns the time-index vector as a view. Callers must not mutate it.
func (s *Series) Times() []float64 { return s.times }

// IsSentinel reports whether every value and every time cell is the NaN
// sentinel. A zero-width series is vacuously sentinel.
func (s *Series) IsSentinel() bool {
	for _, v := range s.values {
		if !math.IsNaN(v) {
			return false
		}
	}
	for _, t := range s.times {
		if !math.IsNaN(t) {
			return false
		}
	}

	return true
}

// Equal reports whether both series have bitwise equal cells under ==.
// NaN cells never compare equal.
func (s *Series) Equal(other *Series) bool {
	if other == nil || len(s.values) != len(other.values) {
		return false
	}
	for i := range s.values {
		if s.values[i] != other.values[i] || s.times[i] != other.times[i] {
			return false
		}
	}

	return true
}
