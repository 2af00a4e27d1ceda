package cmd

import "testing"

func TestResolveImportID(t *testing.T) {
	t.Parallel()

	if got := resolveImportID("", "./exports/schedule-week36.xlsx"); got != "schedule-week36" {
		t.Fatalf("expected file stem as import id, got %q", got)
	}
	if got := resolveImportID("nightly", "./exports/schedule-week36.xlsx"); got != "nightly-schedule-week36" {
		t.Fatalf("expected prefixed import id, got %q", got)
	}
	if got := resolveImportID("  nightly  ", "week36.csv"); got != "nightly-week36" {
		t.Fatalf("expected trimmed prefix, got %q", got)
	}
}

func TestDetectExportFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want string
	}{
		{"shifts.xlsx", "excel"},
		{"shifts.XLSM", "excel"},
		{"shifts.csv", "csv"},
		{"shifts", "csv"},
	}

	for _, tc := range cases {
		if got := detectExportFormat(tc.path); got != tc.want {
			t.Fatalf("detect %q: expected %q, got %q", tc.path, tc.want, got)
		}
	}
}
