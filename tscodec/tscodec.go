// Package tscodec implements the per-row ts-format text codec.
//
// One series row serializes to a single line of parenthesized points:
//
//	(t0,v0),(t1,v1),...,(t{w-1},v{w-1})
//
// The format exists to give rows a stable string identity for
// factorization; it round-trips losslessly for rows of positive width
// whose cells are all finite. Sentinel (NaN) cells parse back to NaN but
// never compare equal, so missing rows are outside the round-trip
// guarantee.
package tscodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/tsframe/errs"
	"github.com/arloliu/tsframe/series"
)

// EncodeSeries renders one row as a ts-format line. Numbers use the
// shortest representation that parses back exactly (strconv 'g', -1).
// A zero-width row renders as "()".
func EncodeSeries(s *series.Series) string {
	times := s.Times()
	values := s.Values()

	var sb strings.Builder
	sb.WriteByte('(')
	for i := range values {
		if i > 0 {
			sb.WriteString("),(")
		}
		sb.WriteString(strconv.FormatFloat(times[i], 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(values[i], 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// DecodeLine parses one ts-format line back into a series row.
//
// An empty line or "()" decodes to the missing row (a nil series). Any
// other line is stripped of its outer parentheses, split on "),(" into
// points, and each point split on "," into (time, value). Returns
// ErrMalformedSeriesText naming the line if any piece fails to parse.
func DecodeLine(line string) (*series.Series, error) {
	if line == "" || line == "()" {
		return nil, nil
	}

	body := strings.TrimPrefix(line, "(")
	body = strings.TrimSuffix(body, ")")
	if body == line {
		return nil, fmt.Errorf("line %q: %w", line, errs.ErrMalformedSeriesText)
	}

	points := strings.Split(body, "),(")
	times := make([]float64, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		ts, val, ok := strings.Cut(p, ",")
		if !ok {
			return nil, fmt.Errorf("line %q: point %q has no separator: %w", line, p, errs.ErrMalformedSeriesText)
		}

		var err error
		if times[i], err = strconv.ParseFloat(ts, 64); err != nil {
			return nil, fmt.Errorf("line %q: bad time %q: %w", line, ts, errs.ErrMalformedSeriesText)
		}
		if values[i], err = strconv.ParseFloat(val, 64); err != nil {
			return nil, fmt.Errorf("line %q: bad value %q: %w", line, val, errs.ErrMalformedSeriesText)
		}
	}

	return series.New(values, times)
}
