package container

import (
	"fmt"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/series"
	"github.com/arloliu/tsframe/tscodec"
)

// Kind names an AsType cast target.
type Kind uint8

const (
	// KindTimeArray is the identity cast.
	KindTimeArray Kind = iota + 1
	// KindString casts to one ts-format string per row.
	KindString
	// KindObject casts to a generic []*series.Series with nil entries for
	// missing rows.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindTimeArray:
		return "timearray"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// AsType casts the container to the requested kind.
//
// KindTimeArray returns the container itself, or a deep copy when
// copyData is set. KindString returns []string, KindObject []*series.Series.
// Any other target fails with ErrUnsupportedCast.
func (a *TimeArray) AsType(kind Kind, copyData bool) (any, error) {
	switch kind {
	case KindTimeArray:
		if copyData {
			return a.Copy(), nil
		}

		return a, nil
	case KindString:
		return a.ToTS(), nil
	case KindObject:
		rows := make([]*series.Series, a.Len())
		for r := range rows {
			s, err := a.At(r)
			if err != nil {
				return nil, err
			}
			rows[r] = s
		}

		return rows, nil
	default:
		return nil, fmt.Errorf("target %v: %w", kind, errs.ErrUnsupportedCast)
	}
}

// ToTS serializes every row as a ts-format line, missing rows included
// (their sentinel cells render as NaN points). These strings are the
// container's factorization identity.
func (a *TimeArray) ToTS() []string {
	lines := make([]string, a.Len())
	for r := range lines {
		lines[r] = a.rowText(r)
	}

	return lines
}

// ToTSWithHeader would serialize with a header section. Only the
// no-header form is implemented; this always fails with
// ErrHeaderNotSupported.
func (a *TimeArray) ToTSWithHeader() ([]string, error) {
	return nil, errs.ErrHeaderNotSupported
}

// FromTS parses ts-format lines (one series per line) and normalizes
// them into a container. Empty and "()" lines become missing rows.
// Unparsable lines fail with ErrMalformedSeriesText naming the line.
func FromTS(lines []string) (*TimeArray, error) {
	items := make([]any, len(lines))
	for i, line := range lines {
		s, err := tscodec.DecodeLine(line)
		if err != nil {
			return nil, err
		}
		items[i] = s
	}

	return FromList(items)
}
