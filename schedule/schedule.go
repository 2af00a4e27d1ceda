package schedule

import "time"

// Shift is the canonical schedule record shared by ingestion and storage.
// StoreNumber, Date, EmployeeName and ShiftTime form the natural key; all
// other fields are mutable on re-import.
type Shift struct {
	ID             int64
	StoreNumber    int
	Date           time.Time
	EmployeeName   string
	ShiftTime      string
	EmployeeID     string
	Role           string
	EmployeeType   string
	ScheduledHours float64
	Region         string
	StartTime      string
	EndTime        string
	Notes          string
	Published      bool
}
