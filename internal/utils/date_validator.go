package utils

import (
	"fmt"
	"strings"
	"time"
)

type DateFormat string

const (
	FormatISO8601Date DateFormat = "2006-01-02"
	FormatRFC3339     DateFormat = time.RFC3339
	FormatRFC3339Nano DateFormat = time.RFC3339Nano
	FormatDateTime    DateFormat = "2006-01-02 15:04:05"
	FormatSlashDate   DateFormat = "2006/01/02"

	FormatClock        DateFormat = "15:04"
	FormatClockSeconds DateFormat = "15:04:05.999999999"
)

// Browsers post dates either as plain calendar dates or as full ISO
// timestamps, so both are accepted and reduced to the calendar day.
var dateFormats = []DateFormat{
	FormatISO8601Date,
	FormatRFC3339,
	FormatRFC3339Nano,
	FormatDateTime,
	FormatSlashDate,
}

var clockFormats = []DateFormat{
	FormatClockSeconds,
	FormatClock,
}

// ParseDate returns the calendar day of input at midnight UTC.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range dateFormats {
		if parsed, err := time.Parse(string(format), input); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q, expected YYYY-MM-DD", input)
}

// ParseClock returns the offset since midnight for an HH:MM or HH:MM:SS
// wall-clock value.
func ParseClock(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty time")
	}

	for _, format := range clockFormats {
		if parsed, err := time.Parse(string(format), input); err == nil {
			return time.Duration(parsed.Hour())*time.Hour +
				time.Duration(parsed.Minute())*time.Minute +
				time.Duration(parsed.Second())*time.Second, nil
		}
	}

	return 0, fmt.Errorf("unrecognised time %q, expected HH:MM", input)
}
