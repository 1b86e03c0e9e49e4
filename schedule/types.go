/*
Package schedule provides the core shift scheduling engine.

PURPOSE:
  This package contains the types and algorithms for assigning work shifts
  to employees with two hard guarantees: no employee is ever double-booked,
  and every persisted shift respects the organizational duration policy.
  Both guarantees hold under concurrent create/update requests.

KEY CONCEPTS IN THIS FILE (types.go):
  - Shift: One scheduled work period for one employee on one calendar day
  - ShiftInput/ShiftPatch: Raw caller input before validation
  - Employee/Shift IDs: Type-safe identifiers

DESIGN PRINCIPLES:
  1. Validation before persistence: no partial writes, ever
  2. Precision: Uses decimal.Decimal for derived hours (no float drift)
  3. Type Safety: Strong typing for IDs prevents mixing employee/shift IDs
  4. Half-open intervals: [start, end) throughout; adjacency is never overlap

USAGE:
  svc := schedule.NewService(store, schedule.DefaultPolicy())
  shift, err := svc.Create(ctx, schedule.ShiftInput{
      EmployeeID: "emp-123",
      Date:       "2026-03-10",
      StartTime:  "09:00 AM",
      EndTime:    "5:00 PM",
  })

SEE ALSO:
  - time.go: TimeOfDay and Date representations
  - interval.go: Duration and overlap arithmetic
  - policy.go: Duration bounds and field validation
  - service.go: Create/Update/Delete orchestration
*/
package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// EmployeeID is an opaque reference to an employee entity. The engine never
// resolves it; identity is the caller's concern.
type EmployeeID string

// ShiftID is assigned by the persistence layer on insert and immutable
// thereafter.
type ShiftID string

// =============================================================================
// SHIFT - One scheduled work period
// =============================================================================

// Shift is the persisted, validated form of a work period. Hours is derived
// from Start/End at validation time and is never independently settable.
type Shift struct {
	ID         ShiftID
	EmployeeID EmployeeID
	Date       Date
	Start      TimeOfDay
	End        TimeOfDay
	Hours      decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the shift's time-of-day interval.
func (s Shift) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// =============================================================================
// CALLER INPUT
// =============================================================================

// ShiftInput is the raw, unvalidated form of a shift as supplied by the
// caller. Times accept both 24-hour "HH:MM" and 12-hour "HH:MM AM/PM".
type ShiftInput struct {
	EmployeeID EmployeeID
	Date       string
	StartTime  string
	EndTime    string
}

// ShiftPatch carries the fields of an update request. Nil fields default to
// the stored shift's current values before re-validation.
type ShiftPatch struct {
	EmployeeID *EmployeeID
	Date       *string
	StartTime  *string
	EndTime    *string
}

// ShiftFilter narrows List results. Zero-value fields are ignored.
type ShiftFilter struct {
	EmployeeID EmployeeID
	Date       *Date
	From       *Date
	To         *Date
}
