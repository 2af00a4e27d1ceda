package reconcile

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftsync/ingest"
	"shiftsync/storage"
)

// DefaultMaxRows caps the number of data rows considered per import.
const DefaultMaxRows = 5000

const maxErrorMessageLen = 200

var (
	ErrNoSheet    = errors.New("no sheet resolvable")
	ErrNoDataRows = errors.New("payload has no data rows")
)

type Options struct {
	MaxRows          int
	Aliases          *ingest.AliasSet
	DefaultPublished bool
}

// Outcome aggregates per-row classifications for one import. Updated rows
// are the deduplicated ones; no separate dedup counter is kept.
type Outcome struct {
	ImportID string
	Sheet    string
	Inserted int
	Updated  int
	Skipped  int
	Errors   []string
	Duration time.Duration
}

// Total is the number of records that reached the store.
func (o *Outcome) Total() int {
	return o.Inserted + o.Updated
}

// Run drives the per-row pipeline over one decoded table inside a single
// transaction. Row-level failures are recorded and the batch continues;
// only infrastructure failures roll the whole import back.
func Run(store *storage.SQLiteStore, table ingest.Table, importID string, opts Options) (*Outcome, error) {
	started := time.Now()

	if strings.TrimSpace(table.Sheet) == "" {
		return nil, fmt.Errorf("import %s: %w", importID, ErrNoSheet)
	}
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("import %s: %w", importID, ErrNoDataRows)
	}

	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	index := ingest.BuildHeaderIndex(table.Rows[0])
	data := table.Rows[1:]
	if len(data) > maxRows {
		// Rows beyond the cap are ignored outright, not counted.
		data = data[:maxRows]
	}

	mapOpts := ingest.MapOptions{
		Aliases:          opts.Aliases,
		DefaultPublished: opts.DefaultPublished,
	}

	tx, err := store.Begin()
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{ImportID: importID, Sheet: table.Sheet}
	for i, cells := range data {
		row := ingest.Row{Number: i + 2, Cells: cells, Index: index}
		if rowErr := processRow(store, tx, row, mapOpts, outcome); rowErr != nil {
			outcome.Errors = append(outcome.Errors, rowError(row.Number, rowErr))
		}
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("commit import %s: %w", importID, err)
	}

	outcome.Duration = time.Since(started)
	return outcome, nil
}

// processRow runs extraction through upsert for one row. A returned error
// counts as a row error; skips are recorded directly on the outcome. The
// recover boundary keeps a malformed cell from ever aborting the batch.
func processRow(store *storage.SQLiteStore, tx *sql.Tx, row ingest.Row, opts ingest.MapOptions, outcome *Outcome) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row recovered: %v", r)
		}
	}()

	shift, skip := ingest.RowToShift(row, opts)
	if skip != "" {
		outcome.Skipped++
		return nil
	}

	known, err := store.StoreExists(tx, shift.StoreNumber)
	if err != nil {
		return err
	}
	if !known {
		// Imports never create stores implicitly.
		outcome.Skipped++
		return nil
	}

	_, inserted, err := store.UpsertShift(tx, *shift)
	if err != nil {
		return err
	}

	if inserted {
		outcome.Inserted++
	} else {
		outcome.Updated++
	}
	return nil
}

func rowError(rowNumber int, err error) string {
	message := fmt.Sprintf("row %d: %v", rowNumber, err)
	if len(message) > maxErrorMessageLen {
		message = message[:maxErrorMessageLen]
	}
	return message
}
