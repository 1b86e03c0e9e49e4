/*
Package sqlite provides a SQLite-backed implementation of schedule.Store.

PURPOSE:
  Production persistence for shifts. The same patterns apply to
  PostgreSQL - only minor SQL dialect differences.

KEY TABLE:
  shifts: One row per scheduled shift. Times are stored as canonical
  minutes-from-midnight integers, the date as a plain YYYY-MM-DD string
  (timezone-naive by design), and derived hours as exact decimal text.

INDEXES:
  idx_shifts_employee_date: The conflict-check hot path - every
  create/update queries all shifts for one (employee, date).

CONCURRENCY:
  Uses sync.RWMutex for thread-safety within the process; the Service
  additionally holds its per-(employee, date) lock across check-plus-
  write, so this store only needs single-statement atomicity.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time, better crash
  recovery.

USAGE:
  store, err := sqlite.New("./data/shifts.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  svc := schedule.NewService(store, schedule.DefaultPolicy())

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - schedule/store.go: Interface definition
  - schedule/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/shift-engine/schedule"
)

// Store implements schedule.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS shifts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT NOT NULL,
		shift_date TEXT NOT NULL,
		start_minutes INTEGER NOT NULL,
		end_minutes INTEGER NOT NULL,
		hours TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Conflict-check hot path: all shifts for one employee on one day
	CREATE INDEX IF NOT EXISTS idx_shifts_employee_date
		ON shifts(employee_id, shift_date);

	-- Date-range listing
	CREATE INDEX IF NOT EXISTS idx_shifts_date
		ON shifts(shift_date);
	`

	_, err := s.db.Exec(schema)
	return err
}

const shiftColumns = "id, employee_id, shift_date, start_minutes, end_minutes, hours, created_at, updated_at"

// Insert persists a new shift. The assigned ID is the SQLite rowid.
func (s *Store) Insert(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (employee_id, shift_date, start_minutes, end_minutes, hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(shift.EmployeeID),
		shift.Date.String(),
		int(shift.Start),
		int(shift.End),
		shift.Hours.String(),
		shift.CreatedAt.UTC().Format(time.RFC3339),
		shift.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to insert shift: %w", err)
	}

	rowID, err := res.LastInsertId()
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to read inserted shift id: %w", err)
	}

	shift.ID = schedule.ShiftID(strconv.FormatInt(rowID, 10))
	return shift, nil
}

// Replace overwrites an existing shift.
func (s *Store) Replace(ctx context.Context, shift schedule.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE shifts
		SET employee_id = ?, shift_date = ?, start_minutes = ?, end_minutes = ?, hours = ?, updated_at = ?
		WHERE id = ?`,
		string(shift.EmployeeID),
		shift.Date.String(),
		int(shift.Start),
		int(shift.End),
		shift.Hours.String(),
		shift.UpdatedAt.UTC().Format(time.RFC3339),
		string(shift.ID),
	)
	if err != nil {
		return fmt.Errorf("failed to replace shift: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return schedule.ErrShiftNotFound
	}
	return nil
}

// Remove deletes a shift by ID.
func (s *Store) Remove(ctx context.Context, id schedule.ShiftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to remove shift: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return schedule.ErrShiftNotFound
	}
	return nil
}

// Get returns a single shift by ID.
func (s *Store) Get(ctx context.Context, id schedule.ShiftID) (*schedule.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE id = ?`, string(id))

	shift, err := scanShift(row)
	if err == sql.ErrNoRows {
		return nil, schedule.ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return shift, nil
}

// FindByEmployeeAndDate returns all shifts for (employee, date), excluding
// excludeID when non-empty, ordered by start time.
func (s *Store) FindByEmployeeAndDate(
	ctx context.Context,
	employeeID schedule.EmployeeID,
	date schedule.Date,
	excludeID schedule.ShiftID,
) ([]schedule.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = ? AND shift_date = ?`
	args := []any{string(employeeID), date.String()}

	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, string(excludeID))
	}
	query += ` ORDER BY start_minutes`

	return s.queryShifts(ctx, query, args)
}

// List returns shifts matching the filter, ordered by (date, start).
func (s *Store) List(ctx context.Context, filter schedule.ShiftFilter) ([]schedule.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE 1=1`
	var args []any

	if filter.EmployeeID != "" {
		query += ` AND employee_id = ?`
		args = append(args, string(filter.EmployeeID))
	}
	if filter.Date != nil {
		query += ` AND shift_date = ?`
		args = append(args, filter.Date.String())
	}
	if filter.From != nil {
		query += ` AND shift_date >= ?`
		args = append(args, filter.From.String())
	}
	if filter.To != nil {
		query += ` AND shift_date <= ?`
		args = append(args, filter.To.String())
	}
	query += ` ORDER BY shift_date, start_minutes`

	return s.queryShifts(ctx, query, args)
}

func (s *Store) queryShifts(ctx context.Context, query string, args []any) ([]schedule.Shift, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, *shift)
	}
	return shifts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (*schedule.Shift, error) {
	var (
		id           int64
		employeeID   string
		dateStr      string
		startMinutes int
		endMinutes   int
		hoursStr     string
		createdAt    string
		updatedAt    string
	)
	if err := row.Scan(&id, &employeeID, &dateStr, &startMinutes, &endMinutes, &hoursStr, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt shift_date %q: %w", dateStr, err)
	}
	hours, err := decimal.NewFromString(hoursStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt hours %q: %w", hoursStr, err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt created_at %q: %w", createdAt, err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt updated_at %q: %w", updatedAt, err)
	}

	return &schedule.Shift{
		ID:         schedule.ShiftID(strconv.FormatInt(id, 10)),
		EmployeeID: schedule.EmployeeID(employeeID),
		Date:       date,
		Start:      schedule.TimeOfDay(startMinutes),
		End:        schedule.TimeOfDay(endMinutes),
		Hours:      hours,
		CreatedAt:  created,
		UpdatedAt:  updated,
	}, nil
}
