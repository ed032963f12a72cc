// Package dates normalizes user-supplied dates into the forms the statsapi
// endpoints expect.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InputLayout is the date format accepted from users (MM/DD/YYYY).
	InputLayout = "01/02/2006"
	// APILayout is the date format the schedule endpoint requires (YYYY-MM-DD).
	APILayout = "2006-01-02"
)

// InvalidDateError reports user input that is not a valid MM/DD/YYYY date.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q (expected MM/DD/YYYY)", e.Input)
}

// Resolve parses a user-supplied MM/DD/YYYY date. Empty input means the
// current local date.
func Resolve(input string) (time.Time, error) {
	return ResolveAt(input, time.Now())
}

// ResolveAt is Resolve with an explicit clock, for callers and tests that need
// a fixed "today".
func ResolveAt(input string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	parsed, err := time.ParseInLocation(InputLayout, trimmed, now.Location())
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: input}
	}
	return parsed, nil
}

// FormatAPI renders a date in the YYYY-MM-DD form the schedule endpoint takes.
func FormatAPI(t time.Time) string {
	return t.Format(APILayout)
}
