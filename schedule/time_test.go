package schedule_test

import (
	"errors"
	"testing"

	"github.com/warp/shift-engine/schedule"
)

func mustParseTime(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): unexpected error: %v", s, err)
	}
	return tod
}

func TestParseTimeOfDay_24Hour(t *testing.T) {
	cases := []struct {
		input string
		want  schedule.TimeOfDay
	}{
		{"00:00", schedule.NewTimeOfDay(0, 0)},
		{"09:00", schedule.NewTimeOfDay(9, 0)},
		{"9:30", schedule.NewTimeOfDay(9, 30)},
		{"12:00", schedule.NewTimeOfDay(12, 0)},
		{"17:45", schedule.NewTimeOfDay(17, 45)},
		{"23:59", schedule.NewTimeOfDay(23, 59)},
	}

	for _, tc := range cases {
		got := mustParseTime(t, tc.input)
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseTimeOfDay_12Hour(t *testing.T) {
	cases := []struct {
		input string
		want  schedule.TimeOfDay
	}{
		{"12:00 AM", schedule.NewTimeOfDay(0, 0)},  // midnight
		{"12:30 am", schedule.NewTimeOfDay(0, 30)}, // case-insensitive
		{"09:00 AM", schedule.NewTimeOfDay(9, 0)},
		{"9:00 AM", schedule.NewTimeOfDay(9, 0)}, // unpadded hour
		{"12:00 PM", schedule.NewTimeOfDay(12, 0)}, // noon
		{"05:00 PM", schedule.NewTimeOfDay(17, 0)},
		{"11:59 PM", schedule.NewTimeOfDay(23, 59)},
	}

	for _, tc := range cases {
		got := mustParseTime(t, tc.input)
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseTimeOfDay_EquivalentForms(t *testing.T) {
	// GIVEN: The same instant written in 12-hour and 24-hour form
	// THEN: They parse to equal values
	if mustParseTime(t, "9:00 AM") != mustParseTime(t, "09:00") {
		t.Error("expected 9:00 AM and 09:00 to be equal")
	}
	if mustParseTime(t, "05:00 PM") != mustParseTime(t, "17:00") {
		t.Error("expected 05:00 PM and 17:00 to be equal")
	}
}

func TestParseTimeOfDay_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"nine o'clock",
		"24:00",
		"-1:00",
		"12:60",
		"09:5",      // minute must be two digits
		"09-00",     // wrong separator
		"09:00 XM",  // garbled meridiem
		"13:00 PM",  // 12-hour clock has no hour 13
		"0:00 AM",   // 12-hour clock has no hour 0
		"09:00 A M", // too many fields
	}

	for _, input := range inputs {
		_, err := schedule.ParseTimeOfDay(input)
		if !errors.Is(err, schedule.ErrInvalidTimeFormat) {
			t.Errorf("ParseTimeOfDay(%q): expected ErrInvalidTimeFormat, got %v", input, err)
		}
	}
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	// GIVEN: Any valid time string
	// THEN: parse(format(parse(s))) == parse(s), for both output forms
	inputs := []string{"00:00", "9:15", "12:00", "23:59", "12:01 AM", "11:30 AM", "12:15 PM", "8:45 PM"}

	for _, input := range inputs {
		parsed := mustParseTime(t, input)

		via24 := mustParseTime(t, parsed.String())
		if via24 != parsed {
			t.Errorf("%q: 24-hour round trip changed %d to %d", input, parsed, via24)
		}

		via12 := mustParseTime(t, parsed.Format12())
		if via12 != parsed {
			t.Errorf("%q: 12-hour round trip changed %d to %d", input, parsed, via12)
		}
	}
}

func TestTimeOfDay_Format12_Boundaries(t *testing.T) {
	cases := []struct {
		tod  schedule.TimeOfDay
		want string
	}{
		{schedule.NewTimeOfDay(0, 0), "12:00 AM"},
		{schedule.NewTimeOfDay(12, 0), "12:00 PM"},
		{schedule.NewTimeOfDay(13, 5), "01:05 PM"},
		{schedule.NewTimeOfDay(23, 59), "11:59 PM"},
	}

	for _, tc := range cases {
		if got := tc.tod.Format12(); got != tc.want {
			t.Errorf("Format12(%s) = %q, want %q", tc.tod, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	date, err := schedule.ParseDate("2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.String() != "2026-03-10" {
		t.Errorf("got %q, want 2026-03-10", date.String())
	}

	for _, bad := range []string{"", "03/10/2026", "2026-13-01", "2026-02-30", "tomorrow"} {
		if _, err := schedule.ParseDate(bad); !errors.Is(err, schedule.ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}
