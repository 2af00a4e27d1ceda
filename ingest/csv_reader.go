package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type CSVReader struct{}

func (r *CSVReader) Read(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	sheet := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	table := Table{Sheet: sheet, Rows: make([][]any, 0, 128)}

	rowNumber := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}

		cells := make([]any, len(row))
		for col, value := range row {
			cells[col] = value
		}
		table.Rows = append(table.Rows, cells)
		rowNumber++
	}

	if len(table.Rows) == 0 {
		return Table{}, fmt.Errorf("csv file %s is empty", path)
	}

	return table, nil
}
