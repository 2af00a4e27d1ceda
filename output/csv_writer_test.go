package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shiftsync/schedule"
)

func sampleShifts() []schedule.Shift {
	return []schedule.Shift{
		{
			ID:             1,
			StoreNumber:    79,
			Date:           time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			EmployeeName:   "Ada Lovelace",
			ShiftTime:      "9:00 AM - 5:00 PM",
			Role:           "Cashier",
			ScheduledHours: 7.5,
			StartTime:      "9:00 AM",
			EndTime:        "5:00 PM",
			Published:      true,
		},
		{
			ID:           2,
			StoreNumber:  102,
			Date:         time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			EmployeeName: "Grace Hopper",
			ShiftTime:    "12:00 PM",
			StartTime:    "12:00 PM",
		},
	}
}

func TestCSVWriter_Write(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shifts.csv")
	if err := (&CSVWriter{}).Write(path, sampleShifts()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "StoreNumber" {
		t.Fatalf("unexpected header row: %v", records[0])
	}
	if records[1][0] != "79" || records[1][1] != "2026-08-31" || records[1][2] != "Ada Lovelace" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[1][7] != "7.5" {
		t.Fatalf("unexpected hours cell: %q", records[1][7])
	}
	if records[2][12] != "false" {
		t.Fatalf("unexpected published cell: %q", records[2][12])
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	writer, err := WriterForFormat("csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := writer.(*CSVWriter); !ok {
		t.Fatalf("expected CSVWriter, got %T", writer)
	}

	writer, err = WriterForFormat("XLSX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := writer.(*ExcelWriter); !ok {
		t.Fatalf("expected ExcelWriter, got %T", writer)
	}

	if _, err := WriterForFormat("pdf"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
