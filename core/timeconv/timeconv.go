package timeconv

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Basis selects the day counter a timestamp is measured from.
type Basis string

const (
	BasisMonth Basis = "month"
	BasisYear  Basis = "year"
)

var (
	// ErrUnknownBasis is returned for a basis other than month or year.
	ErrUnknownBasis = errors.New("unknown time basis")
	// ErrInvalidTimestamp is returned when a cell cannot be read as a timestamp.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

func hoursOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

// TimeOfMonth returns day*24 + hour + minute/60 + second/3600 using the day
// of the month. Year and month are ignored.
func TimeOfMonth(t time.Time) float64 {
	return float64(t.Day())*24 + hoursOfDay(t)
}

// TimeOfYear returns yday*24 + hour + minute/60 + second/3600 using the day
// of the year (1 for January 1st).
func TimeOfYear(t time.Time) float64 {
	return float64(t.YearDay())*24 + hoursOfDay(t)
}

// ParseBasis validates a configured basis name. The empty string selects the
// month basis.
func ParseBasis(s string) (Basis, error) {
	switch Basis(strings.ToLower(strings.TrimSpace(s))) {
	case "", BasisMonth:
		return BasisMonth, nil
	case BasisYear:
		return BasisYear, nil
	default:
		return "", fmt.Errorf("%w %q: must be %q or %q", ErrUnknownBasis, s, BasisMonth, BasisYear)
	}
}

// Func returns the normalizer for the basis.
func (b Basis) Func() (func(time.Time) float64, error) {
	switch b {
	case BasisMonth, "":
		return TimeOfMonth, nil
	case BasisYear:
		return TimeOfYear, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBasis, string(b))
	}
}

// Normalize maps every timestamp to its hour value under basis b.
func Normalize(b Basis, times []time.Time) ([]float64, error) {
	f, err := b.Func()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(times))
	for i, t := range times {
		if t.IsZero() {
			return nil, fmt.Errorf("%w: row %d has no timestamp", ErrInvalidTimestamp, i)
		}
		out[i] = f(t)
	}
	return out, nil
}

// layouts accepted from the sheet export, most specific first.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// ParseTimestamp reads a sheet cell. Timestamps without a zone are taken as
// UTC; only the wall clock fields feed the normalizers.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// ParseColumn parses every cell of a column.
func ParseColumn(cells []string) ([]time.Time, error) {
	out := make([]time.Time, len(cells))
	for i, c := range cells {
		t, err := ParseTimestamp(c)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}
