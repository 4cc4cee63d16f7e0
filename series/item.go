package series

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"github.com/arloliu/tsframe/errs"
)

// Pair is the external "(values, times)" tuple form of a series. Either
// side may be any numeric slice ([]float64, []int, []any, ...); elements
// are coerced to float64 at the decoding boundary.
type Pair struct {
	Values any
	Times  any
}

// Labeled is the external labeled-sequence form: Index supplies the time
// axis and Data supplies the values.
type Labeled struct {
	Index any
	Data  any
}

type itemKind uint8

const (
	kindMissing itemKind = iota
	kindSeries
	kindPair
	kindLabeled
)

// Item is the tagged variant produced by decoding one external input.
// Each accepted input form maps to exactly one tag, resolved once at the
// API boundary; everything downstream of the normalizer works with the
// decoded series and never re-inspects the original input.
type Item struct {
	series *Series
	kind   itemKind
}

// Missing reports whether the item is the missing-row sentinel with no
// resolved width.
func (it Item) Missing() bool { return it.kind == kindMissing }

// Series returns the decoded row, or nil for a missing item.
func (it Item) Series() *Series { return it.series }

// ItemOf decodes one external input into an Item. Accepted forms, in
// priority order:
//
//  1. *Series or Series: used directly.
//  2. Pair, a two-element [2]any, or a two-element [][]float64: the
//     first element is the value vector, the second the time vector.
//     A bare scalar on either side coerces to a width-1 vector.
//  3. Labeled: index becomes the time vector, data the value vector.
//  4. nil: the missing row, width unresolved.
//
// Anything else fails with ErrUnsupportedInputType naming the offending
// runtime type.
func ItemOf(v any) (Item, error) {
	switch tv := v.(type) {
	case nil:
		return Item{kind: kindMissing}, nil
	case *Series:
		if tv == nil {
			return Item{kind: kindMissing}, nil
		}

		return Item{kind: kindSeries, series: tv}, nil
	case Series:
		return Item{kind: kindSeries, series: &tv}, nil
	case Pair:
		s, err := decodePair(tv.Values, tv.Times)
		if err != nil {
			return Item{}, err
		}

		return Item{kind: kindPair, series: s}, nil
	case [2]any:
		s, err := decodePair(tv[0], tv[1])
		if err != nil {
			return Item{}, err
		}

		return Item{kind: kindPair, series: s}, nil
	case [][]float64:
		if len(tv) != 2 {
			return Item{}, fmt.Errorf("pair form needs exactly 2 vectors, got %d: %w", len(tv), errs.ErrUnsupportedInputType)
		}
		s, err := decodePair(tv[0], tv[1])
		if err != nil {
			return Item{}, err
		}

		return Item{kind: kindPair, series: s}, nil
	case Labeled:
		s, err := decodePair(tv.Data, tv.Index)
		if err != nil {
			return Item{}, err
		}

		return Item{kind: kindLabeled, series: s}, nil
	default:
		return Item{}, fmt.Errorf("got %T: %w", v, errs.ErrUnsupportedInputType)
	}
}

func decodePair(values, times any) (*Series, error) {
	vals, err := toFloatRow(values)
	if err != nil {
		return nil, err
	}
	idx, err := toFloatRow(times)
	if err != nil {
		return nil, err
	}

	return New(vals, idx)
}

// toFloatRow coerces any numeric slice into a float64 vector. A bare
// scalar coerces to a width-1 vector, so a pair of scalars decodes to a
// single-point row.
func toFloatRow(v any) ([]float64, error) {
	if v == nil {
		return nil, fmt.Errorf("pair element is nil: %w", errs.ErrUnsupportedInputType)
	}
	if row, ok := v.([]float64); ok {
		out := make([]float64, len(row))
		copy(out, row)

		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("got %T: %w", v, errs.ErrUnsupportedInputType)
		}

		return []float64{f}, nil
	}

	out := make([]float64, rv.Len())
	for i := range out {
		f, err := cast.ToFloat64E(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d of %T: %w", i, v, errs.ErrUnsupportedInputType)
		}
		out[i] = f
	}

	return out, nil
}
