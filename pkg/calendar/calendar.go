// Package calendar computes the per-day view of a month: border
// classification from the completion ledger and the deadline indicators
// that are active on each day.
package calendar

import (
	"time"

	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/deadline"
)

const (
	// MaxLineIndicators is the largest active count drawn as one line per
	// deadline. Above it the day switches to dots.
	MaxLineIndicators = 4
	// MaxDotIndicators caps how many dots a single day draws.
	MaxDotIndicators = 8
)

// Indicator is the drawing style for a day's active deadlines.
type Indicator int

const (
	IndicatorNone Indicator = iota
	IndicatorLines
	IndicatorDots
)

func (i Indicator) String() string {
	switch i {
	case IndicatorLines:
		return "lines"
	case IndicatorDots:
		return "dots"
	}
	return "none"
}

// Completions answers whether any task was completed on a date.
type Completions interface {
	Contains(date string) bool
}

// DayView is the render model for one calendar cell.
type DayView struct {
	// Blank marks a leading cell before the first of the month.
	Blank bool   `json:"blank,omitempty"`
	Day   int    `json:"day,omitempty"`
	Date  string `json:"date,omitempty"`

	IsToday  bool `json:"isToday,omitempty"`
	IsPast   bool `json:"isPast,omitempty"`
	IsFuture bool `json:"isFuture,omitempty"`

	// Border classes. Current and Completed may both be set on today.
	Current   bool `json:"current,omitempty"`
	Completed bool `json:"completed,omitempty"`
	Missed    bool `json:"missed,omitempty"`

	HasCompletedTasks bool `json:"hasCompletedTasks,omitempty"`

	ActiveCount int       `json:"activeCount,omitempty"`
	Indicator   Indicator `json:"indicator,omitempty"`
	// Colors holds one entry per drawn line or dot, in store order.
	Colors []string `json:"colors,omitempty"`
}

// Classes lists the border classes set on the day.
func (d DayView) Classes() []string {
	var out []string
	if d.Current {
		out = append(out, "current")
	}
	if d.Completed {
		out = append(out, "completed")
	}
	if d.Missed {
		out = append(out, "missed")
	}
	return out
}

// MonthView is the render model for a month grid.
type MonthView struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Label  string     `json:"label"`
	Blanks int        `json:"blanks"`
	Days   []DayView  `json:"days"`
}

// ComputeMonthView derives the cells of the given month relative to today.
// deadlines must already be in store order.
func ComputeMonthView(year int, month time.Month, today time.Time, deadlines []deadline.Deadline, completions Completions) MonthView {
	today = dateutil.Day(today)
	blanks := int(dateutil.StartDay(year, month))
	days := dateutil.DaysIn(year, month)

	dues := make([]time.Time, len(deadlines))
	for i, d := range deadlines {
		dues[i] = d.Due()
	}

	mv := MonthView{
		Year:   year,
		Month:  month,
		Label:  dateutil.MonthLabel(year, month),
		Blanks: blanks,
		Days:   make([]DayView, 0, blanks+days),
	}
	for i := 0; i < blanks; i++ {
		mv.Days = append(mv.Days, DayView{Blank: true})
	}
	for day := 1; day <= days; day++ {
		cell := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		mv.Days = append(mv.Days, computeDay(cell, today, deadlines, dues, completions))
	}
	return mv
}

func computeDay(cell, today time.Time, deadlines []deadline.Deadline, dues []time.Time, completions Completions) DayView {
	date := dateutil.Format(cell)
	dv := DayView{
		Day:  cell.Day(),
		Date: date,
	}
	switch dateutil.Compare(cell, today) {
	case 0:
		dv.IsToday = true
	case -1:
		dv.IsPast = true
	default:
		dv.IsFuture = true
	}

	if completions != nil {
		dv.HasCompletedTasks = completions.Contains(date)
	}
	switch {
	case dv.IsToday:
		dv.Current = true
		dv.Completed = dv.HasCompletedTasks
	case dv.IsPast:
		dv.Completed = dv.HasCompletedTasks
		dv.Missed = !dv.HasCompletedTasks
	default:
		dv.Completed = dv.HasCompletedTasks
	}

	if dv.IsPast {
		return dv
	}
	var active []string
	for i, d := range deadlines {
		if dues[i].IsZero() {
			continue
		}
		if !cell.After(dateutil.EndOfDay(dues[i])) {
			active = append(active, d.Color)
		}
	}
	dv.ActiveCount = len(active)
	switch {
	case len(active) == 0:
		dv.Indicator = IndicatorNone
	case len(active) <= MaxLineIndicators:
		dv.Indicator = IndicatorLines
		dv.Colors = active
	default:
		dv.Indicator = IndicatorDots
		if len(active) > MaxDotIndicators {
			active = active[:MaxDotIndicators]
		}
		dv.Colors = active
	}
	return dv
}

// Cell returns the view for day-of-month n, or false when n is outside
// the month.
func (mv MonthView) Cell(n int) (DayView, bool) {
	idx := mv.Blanks + n - 1
	if n < 1 || idx >= len(mv.Days) {
		return DayView{}, false
	}
	return mv.Days[idx], true
}
