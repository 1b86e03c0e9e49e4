/*
service.go - Shift lifecycle orchestration

PURPOSE:
  Orchestrates create/update/delete against the validation gate and the
  conflict detector under a concurrency-safe protocol. This is the only
  mutator of the shift set; everything else in the package is pure or
  read-only.

OPERATION FLOW:
  Received -> Validated -> ConflictChecked -> Committed

  Each gate rejects directly; validation and conflict checking happen
  entirely before the first write, so no partial state is ever persisted.

THE CHECK-THEN-ACT RACE:
  Gate ordering alone is not enough: two concurrent creates for the same
  employee and overlapping intervals could both see "no conflict" and
  both commit. The service closes the gap with a mutex keyed by
  (employee, date), held across conflict-check-plus-write. For any set of
  concurrent requests touching the same scope, at most one request per
  contested minute commits; the rest observe a Conflict exactly as if
  they had arrived after the winner. Requests for different employees or
  different days never block each other.

UPDATE SEMANTICS:
  Omitted patch fields default to the stored shift's values, then the
  merged result is re-validated as if newly created, with the shift's own
  ID excluded from conflict checks. The lock scope is the merged
  (employee, date): that is where the write lands, and vacating the old
  scope can only remove overlap, never create it.

SEE ALSO:
  - policy.go: The validation gate
  - conflict.go: The overlap check
  - lock.go: The scope lock
*/
package schedule

import (
	"context"
	"time"
)

// Service orchestrates the shift lifecycle.
type Service struct {
	store     Store
	policy    Policy
	conflicts *ConflictDetector
	locks     *scopeLock
}

// NewService creates a Service using the given persistence collaborator
// and duration policy.
func NewService(store Store, policy Policy) *Service {
	return &Service{
		store:     store,
		policy:    policy,
		conflicts: &ConflictDetector{Store: store},
		locks:     newScopeLock(),
	}
}

// Create validates the input, checks for conflicts under the scope lock,
// and persists a new shift. The returned Shift carries its assigned ID.
func (s *Service) Create(ctx context.Context, input ShiftInput) (*Shift, error) {
	candidate, err := s.policy.Validate(input)
	if err != nil {
		return nil, err
	}

	key := scopeKey(candidate.EmployeeID, candidate.Date)
	s.locks.acquire(key)
	defer s.locks.release(key)

	return s.commit(ctx, candidate, nil)
}

// Update re-validates the shift as if newly created, with omitted patch
// fields defaulting to the stored values and the shift excluded from its
// own conflict check. The write is a replace, not an insert.
func (s *Service) Update(ctx context.Context, id ShiftID, patch ShiftPatch) (*Shift, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := ShiftInput{
		EmployeeID: existing.EmployeeID,
		Date:       existing.Date.String(),
		StartTime:  existing.Start.String(),
		EndTime:    existing.End.String(),
	}
	if patch.EmployeeID != nil {
		merged.EmployeeID = *patch.EmployeeID
	}
	if patch.Date != nil {
		merged.Date = *patch.Date
	}
	if patch.StartTime != nil {
		merged.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		merged.EndTime = *patch.EndTime
	}

	candidate, err := s.policy.Validate(merged)
	if err != nil {
		return nil, err
	}

	key := scopeKey(candidate.EmployeeID, candidate.Date)
	s.locks.acquire(key)
	defer s.locks.release(key)

	return s.commit(ctx, candidate, existing)
}

// commit runs the conflict gate and the write. The caller holds the scope
// lock for candidate's (employee, date).
func (s *Service) commit(ctx context.Context, candidate *Candidate, prior *Shift) (*Shift, error) {
	var excludeID ShiftID
	if prior != nil {
		excludeID = prior.ID
	}

	conflict, err := s.conflicts.HasConflict(ctx, candidate.EmployeeID, candidate.Date, candidate.Interval, excludeID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, &ConflictError{EmployeeID: candidate.EmployeeID, Date: candidate.Date}
	}

	now := time.Now().UTC()
	shift := Shift{
		EmployeeID: candidate.EmployeeID,
		Date:       candidate.Date,
		Start:      candidate.Interval.Start,
		End:        candidate.Interval.End,
		Hours:      candidate.Hours,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if prior == nil {
		inserted, err := s.store.Insert(ctx, shift)
		if err != nil {
			return nil, err
		}
		return &inserted, nil
	}

	shift.ID = prior.ID
	shift.CreatedAt = prior.CreatedAt
	if err := s.store.Replace(ctx, shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// Delete removes the shift with the given ID. Deleting a nonexistent ID
// yields ErrShiftNotFound, never a silent no-op, so callers can tell
// "already gone" from "succeeded".
func (s *Service) Delete(ctx context.Context, id ShiftID) error {
	return s.store.Remove(ctx, id)
}

// Get returns a single shift by ID.
func (s *Service) Get(ctx context.Context, id ShiftID) (*Shift, error) {
	return s.store.Get(ctx, id)
}

// List returns shifts matching the filter, ordered by (date, start).
// Read-only; no conflict semantics.
func (s *Service) List(ctx context.Context, filter ShiftFilter) ([]Shift, error) {
	return s.store.List(ctx, filter)
}
