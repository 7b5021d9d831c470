package marketstack

import (
	"fmt"
	"strings"
)

// Sort is the ordering token accepted by list endpoints.
//
// The ticker splits endpoint also accepts free-form strings, so any string can
// be converted to a Sort; only SortAsc and SortDesc are Valid.
type Sort string

// Sort tokens.
const (
	SortAsc  Sort = "ASC"
	SortDesc Sort = "DESC"
)

// String returns the literal wire token.
func (s Sort) String() string { return string(s) }

// Valid reports whether s is one of the documented tokens.
func (s Sort) Valid() bool {
	return s == SortAsc || s == SortDesc
}

// ParseSort parses a user supplied sort order. It accepts the wire tokens and
// the words ascending/descending in any case.
func ParseSort(value string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, value)
	}
}

// Interval is a time bucket for intraday prices.
type Interval string

// Interval tokens.
const (
	Interval1Min   Interval = "1min"
	Interval5Min   Interval = "5min"
	Interval10Min  Interval = "10min"
	Interval15Min  Interval = "15min"
	Interval30Min  Interval = "30min"
	Interval1Hour  Interval = "1hour"
	Interval3Hour  Interval = "3hour"
	Interval6Hour  Interval = "6hour"
	Interval12Hour Interval = "12hour"
	Interval24Hour Interval = "24hour"
)

// Intervals lists every documented interval, shortest first.
func Intervals() []Interval {
	return []Interval{
		Interval1Min, Interval5Min, Interval10Min, Interval15Min, Interval30Min,
		Interval1Hour, Interval3Hour, Interval6Hour, Interval12Hour, Interval24Hour,
	}
}

// String returns the literal wire token.
func (i Interval) String() string { return string(i) }

// Valid reports whether i is a documented interval.
func (i Interval) Valid() bool {
	for _, known := range Intervals() {
		if i == known {
			return true
		}
	}

	return false
}

// ParseInterval parses an interval token, ignoring case and surrounding space.
func ParseInterval(value string) (Interval, error) {
	candidate := Interval(strings.ToLower(strings.TrimSpace(value)))
	if !candidate.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidInterval, value)
	}

	return candidate, nil
}
