/*
errors.go - Centralized error types for the scheduling engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers classify with errors.Is / the helpers at the bottom; the HTTP
  layer maps classes to status codes.

ERROR CATEGORIES:
  1. Validation errors - Malformed or out-of-policy input
  2. Conflict errors   - Candidate overlaps a persisted shift
  3. Not-found errors  - Update/delete target absent

DETERMINISM:
  Every error here is deterministic and local: resubmitting identical
  input yields the identical error, so no retry is ever appropriate. A
  Conflict produced by losing a concurrent race is indistinguishable from
  one detected synchronously, on purpose.

SEE ALSO:
  - policy.go: Produces the validation errors
  - service.go: Produces conflict and not-found errors
*/
package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidDate is returned when the calendar date does not parse.
	ErrInvalidDate = errors.New("invalid date: use YYYY-MM-DD")

	// ErrInvalidTimeFormat is returned when a time-of-day string is
	// malformed: non-numeric, hour/minute out of range, garbled meridiem.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrZeroDurationShift is returned when start and end are equal.
	ErrZeroDurationShift = errors.New("start time and end time cannot be the same")

	// ErrDurationOutOfRange is returned when the computed duration falls
	// outside the policy bounds.
	ErrDurationOutOfRange = errors.New("shift duration out of range")

	// ErrConflict is returned when a candidate overlaps an existing shift
	// for the same employee and day. The caller must choose another time.
	ErrConflict = errors.New("shift overlaps an existing shift")

	// ErrShiftNotFound is returned when an update/delete target is absent.
	ErrShiftNotFound = errors.New("shift not found")

	// ErrEmployeeNotFound is surfaced unchanged from the identity
	// collaborator; the engine itself never resolves employees.
	ErrEmployeeNotFound = errors.New("employee not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// MissingFieldError names the absent field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// InvalidTimeFormatError carries the offending input.
type InvalidTimeFormatError struct {
	Input string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format %q: use HH:MM or HH:MM AM/PM", e.Input)
}

func (e *InvalidTimeFormatError) Unwrap() error { return ErrInvalidTimeFormat }

// DurationOutOfRangeError reports the computed duration against the bounds.
// Max is nil when the policy has no upper bound.
type DurationOutOfRangeError struct {
	Hours string
	Min   string
	Max   string
}

func (e *DurationOutOfRangeError) Error() string {
	if e.Max == "" {
		return fmt.Sprintf("shift duration %sh below minimum %sh", e.Hours, e.Min)
	}
	return fmt.Sprintf("shift duration %sh outside allowed range [%sh, %sh]", e.Hours, e.Min, e.Max)
}

func (e *DurationOutOfRangeError) Unwrap() error { return ErrDurationOutOfRange }

// ConflictError identifies the scope in which the overlap was found.
type ConflictError struct {
	EmployeeID EmployeeID
	Date       Date
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shift overlaps an existing shift for employee %s on %s", e.EmployeeID, e.Date)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError returns true if the error is due to invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidTimeFormat) ||
		errors.Is(err, ErrZeroDurationShift) ||
		errors.Is(err, ErrDurationOutOfRange)
}

// IsConflict returns true if the candidate lost to an existing shift,
// whether detected synchronously or by losing a concurrent race.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrShiftNotFound) ||
		errors.Is(err, ErrEmployeeNotFound)
}
