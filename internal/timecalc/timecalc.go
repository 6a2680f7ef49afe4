// Package timecalc converts between the hour/minute pairs entered on the log
// form and the single total-minutes unit used everywhere else.
package timecalc

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeInput reports a malformed hour/minute pair: both components
// absent, a negative component, or a minutes component of 60 or more.
var ErrInvalidTimeInput = errors.New("invalid time input")

// ToMinutes converts an hour/minute pair into total minutes. A nil component
// is treated as zero, but at least one of the two must be present. The
// minutes component is a sub-hour remainder and must be below 60.
func ToMinutes(hours, minutes *int) (int, error) {
	if hours == nil && minutes == nil {
		return 0, fmt.Errorf("%w: hours and minutes both missing", ErrInvalidTimeInput)
	}
	h, m := 0, 0
	if hours != nil {
		h = *hours
	}
	if minutes != nil {
		m = *minutes
	}
	if h < 0 || m < 0 {
		return 0, fmt.Errorf("%w: negative component", ErrInvalidTimeInput)
	}
	if m >= 60 {
		return 0, fmt.Errorf("%w: minutes must be below 60", ErrInvalidTimeInput)
	}
	return h*60 + m, nil
}

// FromMinutes splits total minutes back into an hour/minute pair. It is the
// exact inverse of ToMinutes for any non-negative total.
func FromMinutes(total int) (hours, minutes int) {
	return total / 60, total % 60
}

// FormatDuration formats total minutes as a human-readable string like "7h 30m".
func FormatDuration(totalMinutes int) string {
	h, m := FromMinutes(totalMinutes)
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatHHMM formats total minutes as HH:MM.
func FormatHHMM(totalMinutes int) string {
	h, m := FromMinutes(totalMinutes)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// MonthNumber resolves a month given by name ("January"), three-letter
// abbreviation ("jan"), or decimal number ("1", "01"). Matching is
// case-insensitive.
func MonthNumber(name string) (time.Month, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return 0, false
	}
	if n := monthDigits(s); n >= 1 && n <= 12 {
		return time.Month(n), true
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if s == full || s == full[:3] {
			return m, true
		}
	}
	return 0, false
}

func monthDigits(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
		if n > 12 {
			return 0
		}
	}
	return n
}

// ComposeDate builds the ISO YYYY-MM-DD candidate string from separate
// day/month/year components. The result still needs calendar validation;
// composing "2026-02-31" here is not an error.
func ComposeDate(day int, month time.Month, year int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
