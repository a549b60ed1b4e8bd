package model

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every input validation failure. Callers
// match it with errors.Is; the wrapped message carries the detail.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidKind is returned for a kind other than arrival or departure.
var ErrInvalidKind = fmt.Errorf("%w: kind must be either 'arrival' or 'departure'", ErrInvalidArgument)

// ErrEmptyInput is returned when there is nothing to group.
var ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInvalidArgument)
