package schedule

import "context"

// =============================================================================
// CONFLICT DETECTOR - Overlap checks against persisted shifts
// =============================================================================

// ConflictDetector decides whether a candidate interval collides with an
// employee's existing shifts on one calendar day. Full containment,
// partial overlap at either edge, and identical intervals all conflict;
// adjacency never does.
type ConflictDetector struct {
	Store Store
}

// HasConflict returns true iff the candidate interval overlaps any
// persisted shift for (employeeID, date), excluding excludeID. During an
// update, excludeID is the shift's own ID so it cannot conflict with its
// prior state.
func (cd *ConflictDetector) HasConflict(
	ctx context.Context,
	employeeID EmployeeID,
	date Date,
	candidate Interval,
	excludeID ShiftID,
) (bool, error) {
	existing, err := cd.Store.FindByEmployeeAndDate(ctx, employeeID, date, excludeID)
	if err != nil {
		return false, err
	}
	for _, shift := range existing {
		if candidate.Overlaps(shift.Interval()) {
			return true, nil
		}
	}
	return false, nil
}
