package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestInferFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path   string
		format string
		want   string
	}{
		{"schedule.csv", "", "csv"},
		{"schedule.xlsx", "", "excel"},
		{"schedule.XLSM", "", "excel"},
		{"schedule.dat", "csv", "csv"},
	}

	for _, tc := range cases {
		got, err := InferFormat(tc.path, tc.format)
		if err != nil {
			t.Fatalf("infer %q/%q: unexpected error: %v", tc.path, tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("infer %q/%q: expected %q, got %q", tc.path, tc.format, tc.want, got)
		}
	}

	if _, err := InferFormat("schedule.pdf", ""); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestReaderForFormat(t *testing.T) {
	t.Parallel()

	reader, err := ReaderForFormat("csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reader.(*CSVReader); !ok {
		t.Fatalf("expected CSVReader, got %T", reader)
	}

	reader, err = ReaderForFormat("Excel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reader.(*ExcelReader); !ok {
		t.Fatalf("expected ExcelReader, got %T", reader)
	}

	if _, err := ReaderForFormat("pdf"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestCSVReader_Read(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "week36.csv")
	content := "Employee Name,Store Number,Date,Start Time,End Time\nAda Lovelace,79,2026-08-31,9:00 AM,5:00 PM\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := (&CSVReader{}).Read(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if table.Sheet != "week36" {
		t.Fatalf("expected sheet from file name, got %q", table.Sheet)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected header plus one data row, got %d", len(table.Rows))
	}
	if table.Rows[1][0] != "Ada Lovelace" {
		t.Fatalf("unexpected first cell: %v", table.Rows[1][0])
	}
}

func TestCSVReader_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := (&CSVReader{}).Read(path); err == nil {
		t.Fatal("expected error for empty csv file")
	}
}

func TestExcelReader_Read(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "week36.xlsx")
	writeExcelFixture(t, path, "Week 36", [][]string{
		{"Employee Name", "Store Number", "Date"},
		{"Ada Lovelace", "79", "2026-08-31"},
	})

	table, err := (&ExcelReader{}).Read(path)
	if err != nil {
		t.Fatalf("read excel: %v", err)
	}
	if table.Sheet != "Week 36" {
		t.Fatalf("expected first sheet, got %q", table.Sheet)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[1][0] != "Ada Lovelace" {
		t.Fatalf("unexpected first cell: %v", table.Rows[1][0])
	}
}

func TestExcelReader_NamedSheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "weeks.xlsx")
	writeExcelFixture(t, path, "Week 36", [][]string{{"Employee Name"}, {"Ada"}})

	reader := &ExcelReader{Sheet: "Week 36"}
	table, err := reader.Read(path)
	if err != nil {
		t.Fatalf("read excel: %v", err)
	}
	if table.Sheet != "Week 36" {
		t.Fatalf("expected named sheet, got %q", table.Sheet)
	}

	reader = &ExcelReader{Sheet: "Week 99"}
	if _, err := reader.Read(path); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func writeExcelFixture(t *testing.T, path, sheet string, rows [][]string) {
	t.Helper()

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
}
