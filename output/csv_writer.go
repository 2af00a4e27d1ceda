package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"shiftsync/internal/timeutil"
	"shiftsync/schedule"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, shifts []schedule.Shift) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, shift := range shifts {
		if err := writer.Write(exportRow(shift)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

func exportRow(shift schedule.Shift) []string {
	return []string{
		strconv.Itoa(shift.StoreNumber),
		timeutil.FormatDay(shift.Date),
		shift.EmployeeName,
		shift.ShiftTime,
		shift.EmployeeID,
		shift.Role,
		shift.EmployeeType,
		strconv.FormatFloat(shift.ScheduledHours, 'f', -1, 64),
		shift.Region,
		shift.StartTime,
		shift.EndTime,
		shift.Notes,
		strconv.FormatBool(shift.Published),
	}
}
