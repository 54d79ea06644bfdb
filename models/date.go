package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of date-only fields (task due dates).
const DateLayout = "2006-01-02"

// Date is a date-only value that serializes to/from "YYYY-MM-DD" JSON
// strings. Use *Date for nullable fields; a nil pointer marshals to null.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts "YYYY-MM-DD" strings
// and JSON null (which leaves the receiver zero).
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// String returns the date in wire format. Implements fmt.Stringer.
func (d Date) String() string {
	return d.Format(DateLayout)
}
