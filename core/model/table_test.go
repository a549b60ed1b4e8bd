package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return NewTable(
		[]string{ColumnName, ColumnEmail, ColumnArrival, ColumnDeparture},
		[][]string{
			{"Ada Lovelace", "ada@example.org", "2023-07-13 15:28:00", "2023-07-17 09:00:00"},
			{"Alan Turing", "alan@example.org", "2023-07-13 15:40:00"},
		},
	)
}

func TestNewTablePadsRows(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 2, tbl.Len())
	assert.Len(t, tbl.Rows[1], 4)
	assert.Equal(t, "", tbl.Cell(1, ColumnDeparture))
}

func TestNewTableDropsExtraCells(t *testing.T) {
	tbl := NewTable([]string{"a", "b"}, [][]string{{"1", "2", "3"}})
	assert.Equal(t, [][]string{{"1", "2"}}, tbl.Rows)
}

func TestSetIntColumnAppendsThenOverwrites(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.SetIntColumn(ColumnArrivalGroup, []int{1, 2}))
	assert.Equal(t, ColumnArrivalGroup, tbl.Header[len(tbl.Header)-1])
	assert.Equal(t, "2", tbl.Cell(1, ColumnArrivalGroup))

	require.NoError(t, tbl.SetIntColumn(ColumnArrivalGroup, []int{5, 5}))
	assert.Len(t, tbl.Header, 5)
	got, err := tbl.IntColumn(ColumnArrivalGroup)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5}, got)
}

func TestSetIntColumnLengthMismatch(t *testing.T) {
	err := sampleTable().SetIntColumn(ColumnArrivalGroup, []int{1})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestColumnMissing(t *testing.T) {
	_, err := sampleTable().Column("nope")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestDrop(t *testing.T) {
	tbl := sampleTable()
	tbl.Drop(ColumnEmail)
	tbl.Drop("missing")
	assert.Equal(t, []string{ColumnName, ColumnArrival, ColumnDeparture}, tbl.Header)
	assert.Len(t, tbl.Rows[0], 3)
	assert.Equal(t, "2023-07-13 15:28:00", tbl.Cell(0, ColumnArrival))
}

func TestSortByNumeric(t *testing.T) {
	tbl := NewTable([]string{"n", "g"}, [][]string{{"a", "10"}, {"b", "2"}, {"c", "2"}, {"d", "1"}})
	tbl.SortBy("g", "unknown")
	var names []string
	for i := range tbl.Rows {
		names = append(names, tbl.Cell(i, "n"))
	}
	assert.Equal(t, []string{"d", "b", "c", "a"}, names)
}

func TestParticipants(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows[1][3] = "2023-07-17 09:10:00"
	require.NoError(t, tbl.SetIntColumn(ColumnArrivalGroup, []int{1, 1}))

	ps, err := Participants(tbl)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Ada", ps[0].FirstName())
	assert.Equal(t, 1, ps[1].Group(KindArrival))
	assert.Equal(t, 0, ps[1].Group(KindDeparture))
	assert.Equal(t, 40, ps[1].Time(KindArrival).Minute())
	assert.Equal(t, 10, ps[1].Time(KindDeparture).Minute())
}

func TestParticipantsBadTimestamp(t *testing.T) {
	_, err := Participants(sampleTable())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "row 1")
}
