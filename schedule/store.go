/*
store.go - Persistence interface for shifts

PURPOSE:
  Defines the interface between the engine and the database. Persistence
  is an injected collaborator, never ambient state. Different
  implementations can use SQLite or in-memory storage.

WRITE DISCIPLINE:
  The Service is the only mutator and always writes under the per-
  (employee, date) scope lock (see service.go). Store implementations
  only need each individual operation to be atomic; they are not
  responsible for the check-then-act guarantee.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: Production SQLite
  - schedule/store/memory.go: In-memory for testing/dev

SEE ALSO:
  - service.go: The lifecycle orchestrator consuming this interface
*/
package schedule

import "context"

// Store handles shift persistence. FindByEmployeeAndDate is the query the
// conflict detector runs; excludeID lets an update skip the shift's own
// prior state.
type Store interface {
	// Insert persists a new shift, assigning its immutable ID.
	Insert(ctx context.Context, shift Shift) (Shift, error)

	// Replace overwrites the shift with the given ID.
	// Returns ErrShiftNotFound if it does not exist.
	Replace(ctx context.Context, shift Shift) error

	// Remove deletes the shift with the given ID.
	// Returns ErrShiftNotFound if it does not exist.
	Remove(ctx context.Context, id ShiftID) error

	// Get returns the shift with the given ID, or ErrShiftNotFound.
	Get(ctx context.Context, id ShiftID) (*Shift, error)

	// FindByEmployeeAndDate returns all shifts for (employee, date),
	// excluding excludeID when non-empty, ordered by start time.
	FindByEmployeeAndDate(ctx context.Context, employeeID EmployeeID, date Date, excludeID ShiftID) ([]Shift, error)

	// List returns shifts matching the filter, ordered by (date, start).
	List(ctx context.Context, filter ShiftFilter) ([]Shift, error)
}
