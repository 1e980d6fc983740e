// Package dateutil holds the calendar-date helpers shared by the stores and
// the calendar engine. Dates are local calendar days; the canonical string
// form is YYYY-MM-DD.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO is the canonical, zero padded date string layout.
	LayoutISO = "2006-01-02"
	// LayoutMonth is the human readable month label layout.
	LayoutMonth = "January 2006"
)

// Offset names a quick-add distance from today.
type Offset string

const (
	Today    Offset = "today"
	Tomorrow Offset = "tomorrow"
	Week     Offset = "week"
	Month    Offset = "month"
)

// Offsets lists the supported quick-add offsets in display order.
func Offsets() []Offset {
	return []Offset{Today, Tomorrow, Week, Month}
}

// ParseOffset resolves a user supplied offset name.
func ParseOffset(s string) (Offset, error) {
	o := Offset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Offsets() {
		if o == known {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown offset %q", s)
}

// Apply returns the calendar day reached by moving from t by the offset.
// Month offsets use calendar normalisation, so Jan 31 becomes early March.
func (o Offset) Apply(t time.Time) (time.Time, error) {
	d := Day(t)
	switch o {
	case Today:
		return d, nil
	case Tomorrow:
		return d.AddDate(0, 0, 1), nil
	case Week:
		return d.AddDate(0, 0, 7), nil
	case Month:
		return d.AddDate(0, 1, 0), nil
	}
	return time.Time{}, fmt.Errorf("unknown offset %q", string(o))
}

// Format renders t as its local calendar date.
func Format(t time.Time) string {
	return t.Local().Format(LayoutISO)
}

// Parse reads a YYYY-MM-DD string as local midnight of that day.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Valid reports whether s is a real calendar date in canonical form.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay returns the last representable instant of t's local day.
func EndOfDay(t time.Time) time.Time {
	return Day(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

// Compare orders a and b at day granularity: -1, 0 or 1.
func Compare(a, b time.Time) int {
	da, db := Day(a), Day(b)
	switch {
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	}
	return 0
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first day of the given month.
func StartDay(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// MonthLabel renders "January 2006" for the given month.
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(LayoutMonth)
}
