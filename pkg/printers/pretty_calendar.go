package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/calendar"
	"tableflip.dev/study/pkg/timeutil"
)

const cellWidth = len("31 : ")

const width = 7 * cellWidth

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// mark is the glyph drawn after a day number for its indicator kind.
func mark(v calendar.DayView) string {
	switch v.Indicator {
	case calendar.IndicatorLines:
		return "|"
	case calendar.IndicatorDots:
		return ":"
	}
	return " "
}

// Month prints the grid for one month. Completed days are green, missed
// days red, today is underlined. Days with live deadlines carry a "|"
// for a few deadlines or ":" for many.
func (pp *PrettyPrint) Month(mv calendar.MonthView) {
	head := pp.style(color.FgWhite, color.Italic)
	mid := (width - len(mv.Label)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = head.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", mid), mv.Label)

	faint := pp.style(color.Faint)
	for _, w := range weekdays {
		_, _ = faint.Fprintf(pp.Out, "%-*s", cellWidth, w)
	}
	_, _ = fmt.Fprintln(pp.Out)

	col := 0
	for _, v := range mv.Days {
		if v.Blank {
			_, _ = fmt.Fprint(pp.Out, strings.Repeat(" ", cellWidth))
		} else {
			_, _ = pp.dayStyle(v).Fprintf(pp.Out, "%2d", v.Day)
			_, _ = fmt.Fprintf(pp.Out, " %s ", mark(v))
		}
		col++
		if col == 7 {
			col = 0
			_, _ = fmt.Fprintln(pp.Out)
		}
	}
	if col != 0 {
		_, _ = fmt.Fprintln(pp.Out)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) dayStyle(v calendar.DayView) *color.Color {
	attrs := []color.Attribute{}
	switch {
	case v.Completed:
		attrs = append(attrs, color.FgGreen)
	case v.Missed:
		attrs = append(attrs, color.FgRed, color.Faint)
	case v.IsPast:
		attrs = append(attrs, color.Faint)
	}
	if v.IsToday {
		attrs = append(attrs, color.Bold, color.Underline)
	}
	return pp.style(attrs...)
}

// MonthDetail lists the days of mv that carry deadlines, with the colors
// of every deadline still open on that day.
func (pp *PrettyPrint) MonthDetail(mv calendar.MonthView) {
	found := false
	for _, v := range mv.Days {
		if v.Indicator == calendar.IndicatorNone {
			continue
		}
		found = true
		day := time.Date(mv.Year, mv.Month, v.Day, 0, 0, 0, 0, time.Local)
		_, _ = pp.dayStyle(v).Fprintf(pp.Out, "%2d %s", v.Day, day.Weekday().String()[0:2])
		_, _ = fmt.Fprintf(pp.Out, "  %-4s %2d open ", v.Indicator, v.ActiveCount)
		for _, c := range v.Colors {
			_, _ = fmt.Fprint(pp.Out, pp.swatch(c))
		}
		_, _ = fmt.Fprintln(pp.Out)
	}
	if !found {
		pp.none()
		return
	}
	pp.NewLine()
}

// Report prints a completion summary for a window of days.
func (pp *PrettyPrint) Report(r app.ReportResult, days int) {
	_, _ = pp.style(color.Bold).Fprintf(pp.Out, "Report · last %s (%s → %s)\n",
		timeutil.FormatWindow(days), r.Since.Format("2006-01-02"), r.Until.Format("2006-01-02"))
	_, _ = fmt.Fprintf(pp.Out, "  completed %d · missed %d · rate %.0f%% · streak %d\n\n",
		r.Completed, r.Missed, r.Rate()*100, r.Streak)

	ok := pp.style(color.FgGreen)
	miss := pp.style(color.FgRed, color.Faint)
	faint := pp.style(color.Faint)
	for _, d := range r.Days {
		switch {
		case d.Completed:
			_, _ = ok.Fprintf(pp.Out, "  ✓ %s", d.Date)
		case d.Missed:
			_, _ = miss.Fprintf(pp.Out, "  ✗ %s", d.Date)
		default:
			_, _ = faint.Fprintf(pp.Out, "  · %s", d.Date)
		}
		for _, dl := range d.Due {
			_, _ = fmt.Fprintf(pp.Out, "  %s %s", pp.swatch(dl.Color), dl.Topic)
		}
		_, _ = fmt.Fprintln(pp.Out)
	}
	pp.NewLine()
}
