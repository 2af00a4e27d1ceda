package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelReader struct {
	// Sheet selects a sheet by name; empty means the first sheet.
	Sheet string
}

func (r *ExcelReader) Read(path string) (Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := r.Sheet
	if sheetName == "" {
		sheetName = file.GetSheetName(0)
	}
	if sheetName == "" {
		return Table{}, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return Table{}, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("sheet %s is empty", sheetName)
	}

	table := Table{Sheet: sheetName, Rows: make([][]any, 0, len(rows))}
	for _, row := range rows {
		cells := make([]any, len(row))
		for col, value := range row {
			cells[col] = value
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}
