package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/itchyny/timefmt-go"
)

const timeFormat = "%d/%m/%Y, %H:%M:%S:%f"

var ErrInvalidTimeFormat = errors.New("invalid time format")

// FormatTime - formats t in the local time zone as "DD/MM/YYYY, HH:MM:SS:ffffff".
func FormatTime(t time.Time) string {
	return timefmt.Format(t.Local(), timeFormat)
}

// ParseTime - parses a time produced by FormatTime in the local time zone.
func ParseTime(value string) (time.Time, error) {
	parsed, err := timefmt.ParseInLocation(value, timeFormat, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidTimeFormat, err)
	}

	return parsed, nil
}
