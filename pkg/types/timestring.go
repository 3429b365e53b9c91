package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ErrInvalidTimeString is returned when a value cannot be parsed as "HH:MM"
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is comparable as a string and safe to store directly in text columns.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (date part ignored)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String returns the "HH:MM" representation
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero reports whether the value is unset
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Minutes returns the number of minutes since midnight
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse("15:04", string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later in the day than other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// AddMinutes returns the time m minutes later, wrapping past midnight
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	mins, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	mins = (mins + m) % minutesPerDay
	if mins < 0 {
		mins += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", mins/60, mins%60)), nil
}

// Value implements driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return string(ts), nil
}

// Scan implements sql.Scanner
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		return ts.Scan(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}
