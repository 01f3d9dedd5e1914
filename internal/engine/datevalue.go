package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// ErrMalformedDate is wrapped by every parsing failure of a DateValue.
var ErrMalformedDate = errors.New(config.ErrDateMalformed)

// Date is the numeric form of a DateValue string.
// It is derived on demand and never stored in place of the string.
type Date struct {
	Month int
	Day   int
	Year  int
}

// Parse splits a "M/D/Y" value into its numeric components.
// Each token may carry surrounding whitespace; tokens past the third are ignored.
// On a non-numeric token the components parsed so far are still returned.
func Parse(value string) (Date, error) {
	var d Date
	tokens := strings.Split(value, config.DateSeparator)
	if len(tokens) < config.DateComponents {
		return d, fmt.Errorf("%w: %s: %q", ErrMalformedDate, config.ErrDateTokens, value)
	}

	fields := []struct {
		dst *int
		msg string
	}{
		{&d.Month, config.ErrDateMonth},
		{&d.Day, config.ErrDateDay},
		{&d.Year, config.ErrDateYear},
	}
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil {
			return d, fmt.Errorf("%w: %s: %q", ErrMalformedDate, f.msg, tokens[i])
		}
		*f.dst = n
	}
	return d, nil
}

// Format renders the DateValue string "M/D/Y " (unpadded, trailing space).
func Format(month, day, year int) string {
	return fmt.Sprintf(config.FormatDateValue, month, day, year)
}

// String implements fmt.Stringer using the DateValue wire format.
func (d Date) String() string {
	return Format(d.Month, d.Day, d.Year)
}

// Valid reports whether the month and day describe a real calendar day.
// Selections never enforce it; it exists for diagnostics.
func (d Date) Valid() bool {
	if !validMonth(d.Month) {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Month, d.Year)
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}

// MonthLabel returns the abbreviated name of month m, or "" when out of range.
func MonthLabel(m int) string {
	if !validMonth(m) {
		return ""
	}
	return config.MonthLabels[m-1]
}

// MonthFromLabel maps a month label such as "Oct" back to its number.
func MonthFromLabel(label string) (int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		// ParseMonth treats the empty string as a prefix of "january".
		return 0, fmt.Errorf("%w: %s", ErrMalformedDate, config.ErrDateMonth)
	}
	m, err := datetime.ParseMonth(label)
	if err != nil {
		return 0, err
	}
	return int(m), nil
}
