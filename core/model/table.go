package model

import (
	"fmt"
	"slices"
	"strconv"
)

// Table is the participant sheet: a header and one row of cells per
// participant. Row order is the participant index used by the grouping code.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable copies header and rows into a new Table. Short rows are padded and
// cells beyond the header are dropped, so that every row has one cell per
// column. Readers that must not lose data check row lengths first.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{Header: slices.Clone(header), Rows: make([][]string, len(rows))}
	for i, r := range rows {
		row := make([]string, len(header))
		copy(row, r)
		t.Rows[i] = row
	}
	return t
}

// Len returns the number of participants.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	return slices.Index(t.Header, name)
}

// Has reports whether the column exists.
func (t *Table) Has(name string) bool { return t.Index(name) >= 0 }

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: column %q not found", ErrInvalidArgument, name)
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out, nil
}

// Cell returns the value of column name in row i, or "" when the column is
// missing.
func (t *Table) Cell(i int, name string) string {
	idx := t.Index(name)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][idx]
}

// SetIntColumn writes values as the named column, appending it when missing
// and overwriting it otherwise.
func (t *Table) SetIntColumn(name string, values []int) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("%w: column %q has %d values for %d rows", ErrInvalidArgument, name, len(values), len(t.Rows))
	}
	idx := t.Index(name)
	if idx < 0 {
		t.Header = append(t.Header, name)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], "")
		}
		idx = len(t.Header) - 1
	}
	for i, v := range values {
		t.Rows[i][idx] = strconv.Itoa(v)
	}
	return nil
}

// IntColumn parses the named column as integers.
func (t *Table) IntColumn(name string) ([]int, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(col))
	for i, s := range col {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %q: %q is not an integer", ErrInvalidArgument, i, name, s)
		}
		out[i] = v
	}
	return out, nil
}

// Drop removes the named column if present.
func (t *Table) Drop(name string) {
	idx := t.Index(name)
	if idx < 0 {
		return
	}
	t.Header = slices.Delete(t.Header, idx, idx+1)
	for i, r := range t.Rows {
		t.Rows[i] = slices.Delete(r, idx, idx+1)
	}
}

// SortBy stably reorders rows by the given columns. Cells that parse as
// numbers compare numerically, everything else lexically. Unknown columns
// are ignored.
func (t *Table) SortBy(columns ...string) {
	var idx []int
	for _, c := range columns {
		if i := t.Index(c); i >= 0 {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return
	}
	slices.SortStableFunc(t.Rows, func(a, b []string) int {
		for _, i := range idx {
			if c := compareCells(a[i], b[i]); c != 0 {
				return c
			}
		}
		return 0
	})
}

func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
