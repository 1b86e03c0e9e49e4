/*
policy.go - Field-level validation and duration bounds

PURPOSE:
  The synchronous validation gate every create/update passes before any
  conflict checking or persistence. Validate is a pure function of its
  input: no side effects, no store access.

VALIDATION ORDER (short-circuits on first failure):
  1. Required fields present        -> MissingFieldError
  2. Calendar date parses           -> ErrInvalidDate
  3. Start/end times parse          -> InvalidTimeFormatError
  4. Start != end                   -> ErrZeroDurationShift
  5. Duration within [Min, Max]     -> DurationOutOfRangeError

DURATION BOUNDS:
  The canonical policy is 4-12 hours. The upper bound is configurable and
  may be disabled (nil MaxHours) because source revisions of the rule
  disagree on whether a maximum exists. Derived hours are rounded to one
  decimal place.

USAGE:
  policy := schedule.DefaultPolicy()
  candidate, err := policy.Validate(input)
*/
package schedule

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// POLICY - Organizational duration rules
// =============================================================================

// Policy holds the duration bounds a shift must respect. MaxHours nil
// disables the upper bound.
type Policy struct {
	MinHours decimal.Decimal
	MaxHours *decimal.Decimal
}

// DefaultPolicy returns the canonical 4-12 hour policy.
func DefaultPolicy() Policy {
	max := decimal.NewFromInt(12)
	return Policy{
		MinHours: decimal.NewFromInt(4),
		MaxHours: &max,
	}
}

// Candidate is a fully validated, normalized shift awaiting conflict
// checking and persistence.
type Candidate struct {
	EmployeeID EmployeeID
	Date       Date
	Interval   Interval
	Hours      decimal.Decimal
}

// Validate normalizes and checks raw caller input, short-circuiting on the
// first failure in gate order.
func (p Policy) Validate(input ShiftInput) (*Candidate, error) {
	if input.EmployeeID == "" {
		return nil, &MissingFieldError{Field: "employee_id"}
	}
	if input.Date == "" {
		return nil, &MissingFieldError{Field: "date"}
	}
	if input.StartTime == "" {
		return nil, &MissingFieldError{Field: "start_time"}
	}
	if input.EndTime == "" {
		return nil, &MissingFieldError{Field: "end_time"}
	}

	date, err := ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	start, err := ParseTimeOfDay(input.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeOfDay(input.EndTime)
	if err != nil {
		return nil, err
	}

	if start == end {
		return nil, ErrZeroDurationShift
	}

	iv := Interval{Start: start, End: end}
	hours := decimal.NewFromInt(int64(iv.DurationMinutes())).
		Div(decimal.NewFromInt(minutesPerHour)).
		Round(1)

	if hours.LessThan(p.MinHours) || (p.MaxHours != nil && hours.GreaterThan(*p.MaxHours)) {
		outOfRange := &DurationOutOfRangeError{
			Hours: hours.String(),
			Min:   p.MinHours.String(),
		}
		if p.MaxHours != nil {
			outOfRange.Max = p.MaxHours.String()
		}
		return nil, outOfRange
	}

	return &Candidate{
		EmployeeID: input.EmployeeID,
		Date:       date,
		Interval:   iv,
		Hours:      hours,
	}, nil
}
