package schedule

import (
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// TIME OF DAY - Canonical minutes-from-midnight representation
// =============================================================================

// TimeOfDay is a time-of-day normalized to minutes from midnight, in
// [0, 1439]. Equality and ordering are defined on this value, so
// "9:00 AM" and "09:00" compare equal regardless of their string form.
type TimeOfDay int

const (
	minutesPerHour = 60
	MinutesPerDay  = 24 * minutesPerHour
)

// NewTimeOfDay builds a TimeOfDay from a 24-hour clock reading.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*minutesPerHour + minute)
}

// ParseTimeOfDay accepts both 24-hour "HH:MM" and 12-hour "HH:MM AM/PM"
// (meridiem case-insensitive, hour optionally unpadded). Malformed input
// fails with an InvalidTimeFormatError.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := s
	s = strings.TrimSpace(s)

	meridiem := ""
	if fields := strings.Fields(s); len(fields) == 2 {
		switch strings.ToUpper(fields[1]) {
		case "AM", "PM":
			meridiem = strings.ToUpper(fields[1])
			s = fields[0]
		default:
			return 0, &InvalidTimeFormatError{Input: raw}
		}
	} else if len(fields) != 1 {
		return 0, &InvalidTimeFormatError{Input: raw}
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, &InvalidTimeFormatError{Input: raw}
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, &InvalidTimeFormatError{Input: raw}
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 {
		return 0, &InvalidTimeFormatError{Input: raw}
	}
	if minute < 0 || minute > 59 {
		return 0, &InvalidTimeFormatError{Input: raw}
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, &InvalidTimeFormatError{Input: raw}
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, &InvalidTimeFormatError{Input: raw}
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, &InvalidTimeFormatError{Input: raw}
		}
		if hour != 12 {
			hour += 12
		}
	}

	return NewTimeOfDay(hour, minute), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / minutesPerHour }
func (t TimeOfDay) Minute() int { return int(t) % minutesPerHour }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t > other }

// String formats as 24-hour "HH:MM". This is the canonical wire form.
func (t TimeOfDay) String() string {
	return pad2(t.Hour()) + ":" + pad2(t.Minute())
}

// Format12 formats as 12-hour "HH:MM AM/PM", the display form the original
// scheduling UI uses.
func (t TimeOfDay) Format12() string {
	hour := t.Hour()
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return pad2(hour) + ":" + pad2(t.Minute()) + " " + meridiem
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// =============================================================================
// DATE - Timezone-naive calendar day
// =============================================================================

// Date is a plain calendar day with no time-of-day or timezone semantics.
// The engine performs no timezone conversion; internally days are pinned to
// UTC midnight so Date values are comparable.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD". Anything else fails with ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// Today returns the current calendar day.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) String() string { return d.t.Format(dateLayout) }
