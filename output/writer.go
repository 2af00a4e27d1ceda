package output

import (
	"fmt"
	"strings"

	"shiftsync/schedule"
)

type Writer interface {
	Write(path string, shifts []schedule.Shift) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

var exportHeaders = []string{
	"StoreNumber", "Date", "EmployeeName", "ShiftTime", "EmployeeID",
	"Role", "EmployeeType", "ScheduledHours", "Region", "StartTime",
	"EndTime", "Notes", "Published",
}
