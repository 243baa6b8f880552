package types

import (
	"fmt"
	"time"
)

const timeStringLayout = "15:04"

// TimeString is a time-of-day label in 24-hour "HH:MM" format.
// It is the wire and storage representation of slot start times.
type TimeString string

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" label.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("invalid time string %q: expected HH:MM", string(t))
	}
	return nil
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// minutes returns the value as minutes since midnight.
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string %q: expected HH:MM", string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the label m minutes later. It fails if either the
// receiver is malformed or the result would cross midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	mins, err := t.minutes()
	if err != nil {
		return "", err
	}
	mins += m
	if mins < 0 || mins >= 24*60 {
		return "", fmt.Errorf("time %s%+dm is outside the day", string(t), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", mins/60, mins%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Well-formed labels compare chronologically; malformed ones fall back to
// byte order, which keeps sorting stable.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return string(t) < string(other)
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}
