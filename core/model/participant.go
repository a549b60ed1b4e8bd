package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spaceshare/spaceshare/core/timeconv"
)

// Participant is the typed view of one sheet row.
type Participant struct {
	Index     int
	Name      string
	Email     string
	Phone     string
	Arrival   time.Time
	Departure time.Time
	// Group ids are zero until the corresponding kind has been optimised.
	ArrivalGroup   int
	DepartureGroup int
}

// FirstName is the first whitespace separated word of Name.
func (p Participant) FirstName() string {
	f := strings.Fields(p.Name)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Time returns the timestamp relevant to k.
func (p Participant) Time(k Kind) time.Time {
	if k == KindDeparture {
		return p.Departure
	}
	return p.Arrival
}

// Group returns the group id assigned for k.
func (p Participant) Group(k Kind) int {
	if k == KindDeparture {
		return p.DepartureGroup
	}
	return p.ArrivalGroup
}

// Participants parses every row of t. Both timestamp columns are required;
// group columns are read when present.
func Participants(t *Table) ([]Participant, error) {
	for _, c := range []string{ColumnName, ColumnEmail, ColumnArrival, ColumnDeparture} {
		if !t.Has(c) {
			return nil, fmt.Errorf("%w: column %q not found", ErrInvalidArgument, c)
		}
	}
	out := make([]Participant, t.Len())
	for i := range t.Rows {
		p := Participant{
			Index: i,
			Name:  strings.TrimSpace(t.Cell(i, ColumnName)),
			Email: strings.TrimSpace(t.Cell(i, ColumnEmail)),
			Phone: strings.TrimSpace(t.Cell(i, ColumnPhone)),
		}
		var err error
		if p.Arrival, err = timeconv.ParseTimestamp(t.Cell(i, ColumnArrival)); err != nil {
			return nil, fmt.Errorf("%w: row %d %s: %w", ErrInvalidArgument, i, ColumnArrival, err)
		}
		if p.Departure, err = timeconv.ParseTimestamp(t.Cell(i, ColumnDeparture)); err != nil {
			return nil, fmt.Errorf("%w: row %d %s: %w", ErrInvalidArgument, i, ColumnDeparture, err)
		}
		if p.ArrivalGroup, err = groupCell(t, i, ColumnArrivalGroup); err != nil {
			return nil, err
		}
		if p.DepartureGroup, err = groupCell(t, i, ColumnDepartureGroup); err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func groupCell(t *Table, row int, col string) (int, error) {
	if !t.Has(col) {
		return 0, nil
	}
	s := strings.TrimSpace(t.Cell(row, col))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d %s: %q is not an integer", ErrInvalidArgument, row, col, s)
	}
	return v, nil
}
