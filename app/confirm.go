package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotConfirmed is returned when the input ends before the user agreed to
// send the messages.
var ErrNotConfirmed = errors.New("sending not confirmed")

// Confirm asks until the answer is y or yes. Any other answer repeats the
// prompt.
func Confirm(r io.Reader, w io.Writer, path string) error {
	sc := bufio.NewScanner(r)
	for {
		_, _ = fmt.Fprintf(w, "The groups have been assigned. Please take a moment to inspect the results in %s\n"+
			"If you want, you can manually make changes to the document.\n"+
			"Do you want to send the emails? (y/n) ", path)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrNotConfirmed, err)
			}
			return ErrNotConfirmed
		}
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "y", "yes":
			return nil
		}
	}
}
