package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Table is one decoded tabular payload. Rows[0] is the header row; every
// following row is data. Cells carry whatever the decoder produced: string,
// number, native date, bool, or nil.
type Table struct {
	Sheet string
	Rows  [][]any
}

// HeaderIndex maps a normalized header to its zero-based column position.
// When the same header appears twice, the later occurrence wins.
type HeaderIndex map[string]int

// BuildHeaderIndex resolves the header row into a HeaderIndex. Non-string
// and empty cells do not participate; an all-empty header row yields an
// empty index, which makes every data row unresolvable downstream.
func BuildHeaderIndex(header []any) HeaderIndex {
	index := make(HeaderIndex, len(header))
	for col, cell := range header {
		name, ok := cell.(string)
		if !ok {
			continue
		}
		normalized := normalizeHeader(name)
		if normalized == "" {
			continue
		}
		index[normalized] = col
	}
	return index
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.Trim(trimmed, `"'`)
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

// Row couples one data row with the header index built for its table.
type Row struct {
	Number int
	Cells  []any
	Index  HeaderIndex
}

// Get returns the first value, across aliases in order, whose column is
// present in the index and whose cell is non-empty after trimming. Numeric
// and boolean cells are stringified before the emptiness check. An empty
// string means no alias resolved.
func (r Row) Get(aliases ...string) string {
	for _, alias := range aliases {
		col, ok := r.Index[normalizeHeader(alias)]
		if !ok || col < 0 || col >= len(r.Cells) {
			continue
		}
		value := strings.TrimSpace(cellString(r.Cells[col]))
		if value != "" {
			return value
		}
	}
	return ""
}

// Raw behaves like Get but returns the untouched cell value, so native
// date cells survive for date normalization.
func (r Row) Raw(aliases ...string) any {
	for _, alias := range aliases {
		col, ok := r.Index[normalizeHeader(alias)]
		if !ok || col < 0 || col >= len(r.Cells) {
			continue
		}
		if strings.TrimSpace(cellString(r.Cells[col])) != "" {
			return r.Cells[col]
		}
	}
	return nil
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
