// Package dbtime handles the "HH:MM" wall-clock strings stored on services
// and meetings.
package dbtime

import (
	"fmt"
	"strings"
	"time"
)

const ClockLayout = "15:04"

// ParseClock accepts "HH:MM" or "HH:MM:SS".
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == 5 {
		s += ":00"
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("clock %q: %w", s, err)
	}
	return t, nil
}

func IsClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// NormalizeClock renders s as "HH:MM"; "" stays "".
func NormalizeClock(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

// MinutesBetween returns end - start in minutes. An end before the start is
// read as the next morning (all-night prayer runs 22:00 -> 05:00).
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	d := e.Sub(s)
	if d < 0 {
		d += 24 * time.Hour
	}
	return int(d / time.Minute), nil
}
