package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotANumber means the submitted text is not a plain decimal number
var ErrNotANumber = errors.New("not a number")

// FormatNumber renders a collection number in its canonical zero-padded form
func FormatNumber(n int) string {
	return fmt.Sprintf("%03d", n)
}

// ParseNumber parses user input as a collection number.
// Only strings consisting entirely of decimal digits are accepted.
func ParseNumber(s string) (int, error) {
	if s == "" {
		return 0, ErrNotANumber
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotANumber
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}
