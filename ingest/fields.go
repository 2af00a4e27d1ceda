package ingest

import (
	"fmt"
	"strings"
)

// Canonical field names used by the alias rules and the config layer.
const (
	FieldEmployeeName   = "employee_name"
	FieldStoreNumber    = "store_number"
	FieldDate           = "date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldEmployeeID     = "employee_id"
	FieldRole           = "role"
	FieldEmployeeType   = "employee_type"
	FieldScheduledHours = "scheduled_hours"
	FieldRegion         = "region"
	FieldNotes          = "notes"
	FieldPublished      = "published"
)

// defaultAliases lists every canonical field with its header synonyms in
// extraction precedence order. Earlier aliases win when several columns
// carry values for the same field.
var defaultAliases = []struct {
	field   string
	aliases []string
}{
	{FieldEmployeeName, []string{"employee name", "employee", "team member", "name"}},
	{FieldStoreNumber, []string{"store number", "store #", "store", "location"}},
	{FieldDate, []string{"date", "shift date", "work date", "day"}},
	{FieldStartTime, []string{"start time", "shift start", "start", "time in"}},
	{FieldEndTime, []string{"end time", "shift end", "end", "time out"}},
	{FieldEmployeeID, []string{"employee id", "emp id", "associate id"}},
	{FieldRole, []string{"role", "position", "job title", "job"}},
	{FieldEmployeeType, []string{"employee type", "worker type", "status"}},
	{FieldScheduledHours, []string{"scheduled hours", "total hours", "hours"}},
	{FieldRegion, []string{"region", "district", "market"}},
	{FieldNotes, []string{"notes", "comments", "remarks"}},
	{FieldPublished, []string{"published", "visible"}},
}

// AliasSet holds the resolved alias list per canonical field. Extra
// synonyms from configuration are appended after the defaults so built-in
// precedence is never disturbed.
type AliasSet struct {
	byField map[string][]string
}

func DefaultAliases() *AliasSet {
	set := &AliasSet{byField: make(map[string][]string, len(defaultAliases))}
	for _, rule := range defaultAliases {
		set.byField[rule.field] = append([]string(nil), rule.aliases...)
	}
	return set
}

// KnownFields returns the canonical field names in declaration order.
func KnownFields() []string {
	fields := make([]string, 0, len(defaultAliases))
	for _, rule := range defaultAliases {
		fields = append(fields, rule.field)
	}
	return fields
}

// Extend appends extra header synonyms to a canonical field.
func (s *AliasSet) Extend(field string, headers []string) error {
	key := strings.ToLower(strings.TrimSpace(field))
	if _, ok := s.byField[key]; !ok {
		return fmt.Errorf("unknown canonical field %q", field)
	}
	for _, header := range headers {
		if strings.TrimSpace(header) == "" {
			continue
		}
		s.byField[key] = append(s.byField[key], header)
	}
	return nil
}

// For returns the ordered alias list for a canonical field.
func (s *AliasSet) For(field string) []string {
	return s.byField[strings.ToLower(strings.TrimSpace(field))]
}
