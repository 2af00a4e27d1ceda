package ingest

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeDate_NativeDateDropsTimeOfDay(t *testing.T) {
	t.Parallel()

	native := time.Date(2026, time.August, 31, 14, 30, 15, 0, time.Local)
	got, err := NormalizeDate(native)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeDate_StringFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2026-08-31", time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)},
		{"08/31/2026", time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)},
		{"8/4/2026", time.Date(2026, time.August, 4, 0, 0, 0, 0, time.UTC)},
		{"Aug 31, 2026", time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)},
		{"2026-08-31T09:00:00Z", time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := NormalizeDate(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: unexpected error: %v", tc.raw, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parse %q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestNormalizeDate_SerialDayCount(t *testing.T) {
	t.Parallel()

	got, err := NormalizeDate("45000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != SerialToDate(45000) {
		t.Fatalf("expected serial conversion, got %v", got)
	}
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{"not a date", "", nil, "12a4"} {
		if _, err := NormalizeDate(raw); !errors.Is(err, ErrUnparseableDate) {
			t.Fatalf("expected ErrUnparseableDate for %v, got %v", raw, err)
		}
	}
}

func TestSerialToDate_EpochAndLeapBoundary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		serial int
		want   time.Time
	}{
		{1, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{59, time.Date(1900, time.February, 28, 0, 0, 0, 0, time.UTC)},
		// Serial 60 is the phantom 1900-02-29; the correction lands it
		// on the last real day before the gap.
		{60, time.Date(1900, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{61, time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		if got := SerialToDate(tc.serial); !got.Equal(tc.want) {
			t.Fatalf("serial %d: expected %v, got %v", tc.serial, tc.want, got)
		}
	}
}

func TestSerialRoundTrip(t *testing.T) {
	t.Parallel()

	for serial := 1; serial <= 100000; serial++ {
		if serial == 60 {
			continue // the phantom leap day has no real calendar date
		}
		date := SerialToDate(serial)
		if back := DateToSerial(date); back != serial {
			t.Fatalf("serial %d round-tripped to %d via %v", serial, back, date)
		}
	}
}
