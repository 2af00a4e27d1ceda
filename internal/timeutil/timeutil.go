package timeutil

import "time"

const dayLayout = "2006-01-02"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func FormatDay(value time.Time) string {
	return value.Format(dayLayout)
}

func ParseDay(value string) (time.Time, error) {
	return time.Parse(dayLayout, value)
}
