package schedule_test

import (
	"testing"

	"github.com/warp/shift-engine/schedule"
)

func interval(t *testing.T, start, end string) schedule.Interval {
	t.Helper()
	return schedule.Interval{
		Start: mustParseTime(t, start),
		End:   mustParseTime(t, end),
	}
}

func TestInterval_DurationMinutes(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"09:00", "17:00", 480},
		{"09:00", "09:01", 1},
		{"00:00", "23:59", 1439},
		{"22:00", "06:00", 480},  // overnight
		{"23:30", "00:15", 45},   // short overnight
		{"17:00", "09:00", 960},  // long overnight
	}

	for _, tc := range cases {
		iv := interval(t, tc.start, tc.end)
		if got := iv.DurationMinutes(); got != tc.want {
			t.Errorf("[%s, %s): duration = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestInterval_Overlaps(t *testing.T) {
	cases := []struct {
		name           string
		aStart, aEnd   string
		bStart, bEnd   string
		want           bool
	}{
		{"identical intervals", "09:00", "17:00", "09:00", "17:00", true},
		{"partial overlap at end", "09:00", "17:00", "16:00", "20:00", true},
		{"partial overlap at start", "09:00", "17:00", "05:00", "10:00", true},
		{"full containment", "09:00", "17:00", "11:00", "13:00", true},
		{"single shared minute", "09:00", "13:00", "12:59", "17:00", true},
		{"adjacent never overlap", "09:00", "13:00", "13:00", "17:00", false},
		{"disjoint same day", "06:00", "10:00", "14:00", "18:00", false},
		{"overnight reaches into next morning", "22:00", "02:00", "01:00", "05:00", true},
		{"overnight clear of next morning", "22:00", "02:00", "03:00", "06:00", false},
		{"overnight adjacent at midnight wrap", "22:00", "02:00", "02:00", "06:00", false},
		{"both overnight", "22:00", "06:00", "23:00", "03:00", true},
		{"overnight vs evening before", "22:00", "02:00", "17:00", "21:00", false},
		{"overnight vs evening touching", "22:00", "02:00", "18:00", "22:00", false},
		{"overnight overlapping evening", "22:00", "02:00", "18:00", "23:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := interval(t, tc.aStart, tc.aEnd)
			b := interval(t, tc.bStart, tc.bEnd)

			if got := a.Overlaps(b); got != tc.want {
				t.Errorf("Overlaps([%s,%s), [%s,%s)) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}

			// Symmetry must hold for every pair
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Errorf("Overlaps is not symmetric for [%s,%s) and [%s,%s)",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			}
		})
	}
}

func TestInterval_Overlaps_Reflexive(t *testing.T) {
	// Any non-degenerate interval overlaps itself
	for _, pair := range [][2]string{{"09:00", "17:00"}, {"22:00", "02:00"}, {"00:00", "00:01"}} {
		iv := interval(t, pair[0], pair[1])
		if !iv.Overlaps(iv) {
			t.Errorf("[%s, %s) should overlap itself", pair[0], pair[1])
		}
	}
}
