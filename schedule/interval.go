/*
interval.go - Duration and overlap arithmetic over time-of-day intervals

PURPOSE:
  Computes shift duration and the overlap predicate every conflict check
  uses. Intervals are half-open [start, end) in minutes from midnight and
  may wrap past midnight (overnight shifts).

THE DOUBLED TIMELINE:
  Overnight wraparound is handled by projecting each interval onto a
  2880-minute timeline (the calendar day plus a virtual next day) as
  [start, start+duration). Two intervals overlap iff the standard
  half-open check

      startA < endB && startB < endA

  holds for at least one relative day offset in {-1, 0, +1}. This
  replaces per-case overnight conditionals with a single symmetric
  predicate, so [22:00,02:00) against [01:00,05:00) is the same code
  path as [09:00,12:00) against [11:00,15:00).

SEMANTICS:
  - Adjacency is never overlap: [09:00,13:00) and [13:00,17:00) are clear.
  - start == end is a degenerate interval; Policy rejects it before any
    duration or overlap computation, it is never treated as 24 hours.

SEE ALSO:
  - conflict.go: Applies Overlaps against an employee's existing shifts
  - policy.go: Rejects degenerate intervals upstream
*/
package schedule

// Interval is a half-open time-of-day range [Start, End). End at or before
// Start means the interval wraps past midnight.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// DurationMinutes returns the interval length in minutes. Overnight
// intervals (End <= Start) count the wrapped portion.
func (iv Interval) DurationMinutes() int {
	d := int(iv.End) - int(iv.Start)
	if d <= 0 {
		d += MinutesPerDay
	}
	return d
}

// Overlaps reports whether the two intervals share at least one minute.
// It is symmetric, and adjacency (one ending exactly where the other
// starts) does not count.
func (iv Interval) Overlaps(other Interval) bool {
	aStart := int(iv.Start)
	aEnd := aStart + iv.DurationMinutes()
	bStart := int(other.Start)
	bEnd := bStart + other.DurationMinutes()

	for _, offset := range []int{-MinutesPerDay, 0, MinutesPerDay} {
		if aStart < bEnd+offset && bStart+offset < aEnd {
			return true
		}
	}
	return false
}
