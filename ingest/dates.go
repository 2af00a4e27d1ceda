package ingest

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrUnparseableDate = errors.New("unparseable date")

// serialEpoch anchors spreadsheet serial day 1 at 1900-01-01.
var serialEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// phantomLeapDay is the serial value the 1900 convention assigns to the
// nonexistent 1900-02-29. Serials beyond it are one day ahead of the real
// calendar and must be pulled back.
const phantomLeapDay = 60

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"2006/01/02",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// NormalizeDate converts a raw cell value into a calendar date. Native
// date values are truncated to their day; strings are tried against the
// known layouts; an all-digit string is read as a spreadsheet serial day
// count. Anything else is unparseable.
func NormalizeDate(value any) (time.Time, error) {
	if native, ok := value.(time.Time); ok {
		return dateOnly(native), nil
	}

	raw := strings.TrimSpace(cellString(value))
	if raw == "" {
		return time.Time{}, ErrUnparseableDate
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return dateOnly(parsed), nil
		}
	}

	if isDigits(raw) {
		serial, err := strconv.Atoi(raw)
		if err == nil && serial >= 1 {
			return SerialToDate(serial), nil
		}
	}

	return time.Time{}, ErrUnparseableDate
}

// SerialToDate converts a spreadsheet serial day count to a calendar date
// under the 1900 epoch convention, compensating for the phantom leap day.
func SerialToDate(serial int) time.Time {
	date := serialEpoch.AddDate(0, 0, serial)
	if serial > phantomLeapDay-1 {
		date = date.AddDate(0, 0, -1)
	}
	return date
}

// DateToSerial is the inverse of SerialToDate for real calendar dates on
// or after 1900-01-01.
func DateToSerial(date time.Time) int {
	days := daysBetween(serialEpoch, dateOnly(date))
	if days >= phantomLeapDay {
		days++
	}
	return days
}

func dateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(value) > 0
}
