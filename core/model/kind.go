package model

import (
	"fmt"
	"strings"
)

// Kind selects which timestamp column a grouping run works on.
type Kind int

const (
	KindArrival Kind = iota
	KindDeparture
)

// Kinds lists every kind in processing order.
var Kinds = []Kind{KindArrival, KindDeparture}

// Column names shared with the participant sheet.
const (
	ColumnName           = "Name"
	ColumnEmail          = "Email"
	ColumnPhone          = "Phone_number"
	ColumnFormTimestamp  = "Timestamp"
	ColumnArrival        = "date_time_of_airport_arrival"
	ColumnDeparture      = "date_time_of_hotel_departure"
	ColumnArrivalGroup   = "arrival_group"
	ColumnDepartureGroup = "departure_group"
)

func (k Kind) String() string {
	switch k {
	case KindArrival:
		return "arrival"
	case KindDeparture:
		return "departure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindArrival || k == KindDeparture
}

// TimeColumn returns the name of the timestamp column holding k's times.
func (k Kind) TimeColumn() string {
	if k == KindDeparture {
		return ColumnDeparture
	}
	return ColumnArrival
}

// GroupColumn returns the name of the column the group ids are written to.
func (k Kind) GroupColumn() string {
	if k == KindDeparture {
		return ColumnDepartureGroup
	}
	return ColumnArrivalGroup
}

// ParseKind converts a user supplied name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arrival":
		return KindArrival, nil
	case "departure":
		return KindDeparture, nil
	default:
		return 0, fmt.Errorf("%w, got %q", ErrInvalidKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
