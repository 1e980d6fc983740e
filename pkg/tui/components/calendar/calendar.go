// Package calendar renders a month view as a grid of bordered day cells.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	studycal "tableflip.dev/study/pkg/calendar"
)

// CellWidth is the inner width of one day cell.
const CellWidth = 8

// Options controls calendar styling.
type Options struct {
	HeaderStyle    lipgloss.Style
	BlankStyle     lipgloss.Style
	DayStyle       lipgloss.Style
	PastStyle      lipgloss.Style
	TodayStyle     lipgloss.Style
	SelectedStyle  lipgloss.Style
	CompletedColor string
	MissedColor    string
	CurrentColor   string
	IdleColor      string
	ShowHeader     bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		BlankStyle:     lipgloss.NewStyle(),
		DayStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		PastStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		TodayStyle:     lipgloss.NewStyle().Bold(true).Underline(true),
		SelectedStyle:  lipgloss.NewStyle().Reverse(true),
		CompletedColor: "42",
		MissedColor:    "160",
		CurrentColor:   "212",
		IdleColor:      "238",
		ShowHeader:     true,
	}
}

// Render draws mv. selected is the highlighted day of month, 0 for none.
func Render(mv studycal.MonthView, selected int, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(mv.Label))
		var names []string
		for _, w := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
			names = append(names, lipgloss.NewStyle().Width(CellWidth+2).Align(lipgloss.Center).Render(w))
		}
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(names, "")))
	}

	for start := 0; start < len(mv.Days); start += 7 {
		end := start + 7
		if end > len(mv.Days) {
			end = len(mv.Days)
		}
		cells := make([]string, 0, 7)
		for _, v := range mv.Days[start:end] {
			cells = append(cells, renderCell(v, v.Day == selected && selected > 0, opts))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

// Border returns the border color for a day's classes. Missed wins over
// current, which wins over completed.
func Border(v studycal.DayView, opts Options) string {
	switch {
	case v.Missed:
		return opts.MissedColor
	case v.Current:
		return opts.CurrentColor
	case v.Completed:
		return opts.CompletedColor
	}
	return opts.IdleColor
}

func renderCell(v studycal.DayView, selected bool, opts Options) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(CellWidth)

	if v.Blank {
		return frame.BorderForeground(lipgloss.Color(opts.IdleColor)).
			BorderStyle(lipgloss.HiddenBorder()).
			Render(opts.BlankStyle.Render(" \n "))
	}

	text := opts.DayStyle
	if v.IsPast {
		text = opts.PastStyle
	}
	if v.IsToday {
		text = text.Inherit(opts.TodayStyle)
	}
	if selected {
		text = text.Inherit(opts.SelectedStyle)
	}
	day := text.Render(fmt.Sprintf("%2d", v.Day))
	if v.Completed {
		day += lipgloss.NewStyle().Foreground(lipgloss.Color(opts.CompletedColor)).Render(" ✓")
	}

	return frame.BorderForeground(lipgloss.Color(Border(v, opts))).
		Render(day + "\n" + Indicators(v))
}

// Indicators draws one colored bar per active deadline, or one dot each
// when the day is crowded.
func Indicators(v studycal.DayView) string {
	glyph := ""
	switch v.Indicator {
	case studycal.IndicatorLines:
		glyph = "▍"
	case studycal.IndicatorDots:
		glyph = "•"
	default:
		return " "
	}
	var b strings.Builder
	for _, c := range v.Colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(glyph))
	}
	return b.String()
}
