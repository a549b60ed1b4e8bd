package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("arrival")
	require.NoError(t, err)
	assert.Equal(t, KindArrival, k)

	k, err = ParseKind(" Departure ")
	require.NoError(t, err)
	assert.Equal(t, KindDeparture, k)
}

func TestParseKindInvalid(t *testing.T) {
	_, err := ParseKind("breakfast")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidKind))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "arrival")
	assert.Contains(t, err.Error(), "departure")
	assert.Contains(t, err.Error(), "breakfast")
}

func TestKindColumns(t *testing.T) {
	assert.Equal(t, "date_time_of_airport_arrival", KindArrival.TimeColumn())
	assert.Equal(t, "arrival_group", KindArrival.GroupColumn())
	assert.Equal(t, "date_time_of_hotel_departure", KindDeparture.TimeColumn())
	assert.Equal(t, "departure_group", KindDeparture.GroupColumn())
}

func TestKindText(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("departure")))
	b, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "departure", string(b))

	_, err = Kind(7).MarshalText()
	assert.Error(t, err)
}
