package ingest

import (
	"strconv"
	"strings"

	"shiftsync/schedule"
)

// SkipReason explains why a row was excluded before the upsert stage. The
// empty value means the row is valid.
type SkipReason string

const (
	SkipMissingEmployee SkipReason = "missing employee name"
	SkipBadStoreNumber  SkipReason = "missing or unparseable store number"
	SkipBadDate         SkipReason = "missing or unparseable date"
	SkipNoShiftBounds   SkipReason = "missing start and end time"
)

type MapOptions struct {
	Aliases          *AliasSet
	DefaultPublished bool
}

// RowToShift maps one data row onto the canonical schedule record,
// enforcing the required-field preconditions. Rows that fail a
// precondition come back with a non-empty SkipReason, never an error.
func RowToShift(row Row, opts MapOptions) (*schedule.Shift, SkipReason) {
	aliases := opts.Aliases
	if aliases == nil {
		aliases = DefaultAliases()
	}

	name := row.Get(aliases.For(FieldEmployeeName)...)
	if name == "" {
		return nil, SkipMissingEmployee
	}

	storeRaw := row.Get(aliases.For(FieldStoreNumber)...)
	storeNumber, err := ParseStoreNumber(storeRaw)
	if err != nil {
		return nil, SkipBadStoreNumber
	}

	date, err := NormalizeDate(row.Raw(aliases.For(FieldDate)...))
	if err != nil {
		return nil, SkipBadDate
	}

	start := row.Get(aliases.For(FieldStartTime)...)
	end := row.Get(aliases.For(FieldEndTime)...)
	if start == "" && end == "" {
		return nil, SkipNoShiftBounds
	}

	shift := &schedule.Shift{
		StoreNumber:    storeNumber,
		Date:           date,
		EmployeeName:   name,
		ShiftTime:      shiftTime(start, end),
		EmployeeID:     row.Get(aliases.For(FieldEmployeeID)...),
		Role:           row.Get(aliases.For(FieldRole)...),
		EmployeeType:   row.Get(aliases.For(FieldEmployeeType)...),
		ScheduledHours: parseHours(row.Get(aliases.For(FieldScheduledHours)...)),
		Region:         row.Get(aliases.For(FieldRegion)...),
		StartTime:      start,
		EndTime:        end,
		Notes:          row.Get(aliases.For(FieldNotes)...),
		Published:      opts.DefaultPublished,
	}

	if published := row.Get(aliases.For(FieldPublished)...); published != "" {
		shift.Published = parseBoolish(published, opts.DefaultPublished)
	}

	return shift, ""
}

func shiftTime(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}

// parseHours reads an advisory hours value, tolerating comma decimals.
// Unparseable values fall back to zero; negative values pass through so
// the storage constraint can reject them.
func parseHours(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	hours, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return hours
}

func parseBoolish(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y", "1":
		return true
	case "false", "no", "n", "0":
		return false
	default:
		return fallback
	}
}
