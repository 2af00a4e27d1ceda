package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftsync/internal/timeutil"
	"shiftsync/schedule"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS stores (
	store_number INTEGER PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	region TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS shifts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	store_number INTEGER NOT NULL,
	shift_date TEXT NOT NULL,
	employee_name TEXT NOT NULL,
	shift_time TEXT NOT NULL,
	employee_id TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT '',
	employee_type TEXT NOT NULL DEFAULT '',
	scheduled_hours REAL NOT NULL DEFAULT 0 CHECK(scheduled_hours >= 0),
	region TEXT NOT NULL DEFAULT '',
	start_time TEXT NOT NULL DEFAULT '',
	end_time TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	published INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(store_number, shift_date, employee_name, shift_time)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Begin opens the transaction that scopes one whole import batch.
func (s *SQLiteStore) Begin() (*sql.Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}

// StoreExists reports whether the store reference set contains the given
// store number. Imports only read this set; it is maintained separately.
func (s *SQLiteStore) StoreExists(tx *sql.Tx, storeNumber int) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM stores WHERE store_number = ?;`, storeNumber).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check store %d: %w", storeNumber, err)
	}
	return true, nil
}

// UpsertShift writes one canonical record inside the given transaction.
// The insert/update classification comes from a pre-write existence check
// on the natural key; the write itself relies on the UNIQUE constraint
// with ON CONFLICT so concurrent imports cannot race past the check.
// Natural-key columns are never touched on update.
func (s *SQLiteStore) UpsertShift(tx *sql.Tx, shift schedule.Shift) (schedule.Shift, bool, error) {
	day := timeutil.FormatDay(shift.Date)

	var existingID int64
	err := tx.QueryRow(
		`SELECT id FROM shifts WHERE store_number = ? AND shift_date = ? AND employee_name = ? AND shift_time = ?;`,
		shift.StoreNumber, day, shift.EmployeeName, shift.ShiftTime,
	).Scan(&existingID)
	exists := true
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return schedule.Shift{}, false, fmt.Errorf("check existing shift: %w", err)
	}

	const upsertStmt = `
INSERT INTO shifts (
	store_number,
	shift_date,
	employee_name,
	shift_time,
	employee_id,
	role,
	employee_type,
	scheduled_hours,
	region,
	start_time,
	end_time,
	notes,
	published
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(store_number, shift_date, employee_name, shift_time) DO UPDATE SET
	employee_id = excluded.employee_id,
	role = excluded.role,
	employee_type = excluded.employee_type,
	scheduled_hours = excluded.scheduled_hours,
	region = excluded.region,
	start_time = excluded.start_time,
	end_time = excluded.end_time,
	notes = excluded.notes,
	published = excluded.published,
	updated_at = CURRENT_TIMESTAMP;`

	result, err := tx.Exec(
		upsertStmt,
		shift.StoreNumber,
		day,
		shift.EmployeeName,
		shift.ShiftTime,
		shift.EmployeeID,
		shift.Role,
		shift.EmployeeType,
		shift.ScheduledHours,
		shift.Region,
		shift.StartTime,
		shift.EndTime,
		shift.Notes,
		boolToInt(shift.Published),
	)
	if err != nil {
		return schedule.Shift{}, false, fmt.Errorf("upsert shift: %w", err)
	}

	if exists {
		shift.ID = existingID
	} else {
		id, err := result.LastInsertId()
		if err != nil {
			return schedule.Shift{}, false, fmt.Errorf("read inserted shift id: %w", err)
		}
		shift.ID = id
	}

	return shift, !exists, nil
}

// AddStore registers a store in the reference set, updating the label on
// re-registration.
func (s *SQLiteStore) AddStore(storeNumber int, name, region string) error {
	if storeNumber <= 0 {
		return fmt.Errorf("store number must be > 0")
	}

	const stmt = `
INSERT INTO stores (store_number, name, region) VALUES (?, ?, ?)
ON CONFLICT(store_number) DO UPDATE SET name = excluded.name, region = excluded.region;`

	if _, err := s.db.Exec(stmt, storeNumber, strings.TrimSpace(name), strings.TrimSpace(region)); err != nil {
		return fmt.Errorf("add store %d: %w", storeNumber, err)
	}
	return nil
}

type StoreInfo struct {
	StoreNumber int    `json:"store_number"`
	Name        string `json:"name"`
	Region      string `json:"region"`
}

func (s *SQLiteStore) ListStores() ([]StoreInfo, error) {
	rows, err := s.db.Query(`SELECT store_number, name, region FROM stores ORDER BY store_number;`)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close()

	stores := make([]StoreInfo, 0, 32)
	for rows.Next() {
		var info StoreInfo
		if err := rows.Scan(&info.StoreNumber, &info.Name, &info.Region); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stores: %w", err)
	}

	return stores, nil
}

// ShiftFilter narrows ListShifts; zero values mean no filtering.
type ShiftFilter struct {
	StoreNumber int
	Day         time.Time
}

func (s *SQLiteStore) ListShifts(filter ShiftFilter) ([]schedule.Shift, error) {
	query := `
SELECT
	id,
	store_number,
	shift_date,
	employee_name,
	shift_time,
	employee_id,
	role,
	employee_type,
	scheduled_hours,
	region,
	start_time,
	end_time,
	notes,
	published
FROM shifts`

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if filter.StoreNumber > 0 {
		conditions = append(conditions, "store_number = ?")
		args = append(args, filter.StoreNumber)
	}
	if !filter.Day.IsZero() {
		conditions = append(conditions, "shift_date = ?")
		args = append(args, timeutil.FormatDay(filter.Day))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY shift_date, store_number, employee_name, shift_time;"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	shifts := make([]schedule.Shift, 0, 128)
	for rows.Next() {
		var (
			shift     schedule.Shift
			dayRaw    string
			published int
		)
		if err := rows.Scan(
			&shift.ID,
			&shift.StoreNumber,
			&dayRaw,
			&shift.EmployeeName,
			&shift.ShiftTime,
			&shift.EmployeeID,
			&shift.Role,
			&shift.EmployeeType,
			&shift.ScheduledHours,
			&shift.Region,
			&shift.StartTime,
			&shift.EndTime,
			&shift.Notes,
			&published,
		); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}

		shift.Date, err = timeutil.ParseDay(dayRaw)
		if err != nil {
			return nil, fmt.Errorf("parse shift date %q: %w", dayRaw, err)
		}
		shift.Published = published != 0
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}

	return shifts, nil
}

func (s *SQLiteStore) CountShifts() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM shifts;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count shifts: %w", err)
	}
	return count, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
