package app

import (
	"time"

	"tableflip.dev/study/pkg/calendar"
	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/deadline"
	"tableflip.dev/study/pkg/subject"
)

// Snapshot is a read-only copy of the state, ready for rendering.
type Snapshot struct {
	Today     time.Time
	Cursor    calendar.Cursor
	Deadlines []deadline.Deadline
	Subjects  []subject.Subject
	Completed []string
	Month     calendar.MonthView
}

// Snapshot copies the current state and computes the displayed month.
func (s *State) Snapshot() Snapshot {
	today := s.Today()
	deadlines := s.deadlines.List()
	return Snapshot{
		Today:     today,
		Cursor:    s.cursor,
		Deadlines: deadlines,
		Subjects:  s.subjects.List(),
		Completed: s.ledger.Dates(),
		Month:     calendar.ComputeMonthView(s.cursor.Year, s.cursor.TimeMonth(), today, deadlines, s.ledger),
	}
}

// MonthView computes the view for an arbitrary month without moving the
// cursor.
func (s *State) MonthView(year int, month time.Month) calendar.MonthView {
	return calendar.ComputeMonthView(year, month, s.Today(), s.deadlines.List(), s.ledger)
}

// Document is the exported form of every persisted store.
type Document struct {
	Deadlines      []deadline.Deadline `json:"deadlines" yaml:"deadlines"`
	Subjects       []subject.Subject   `json:"subjects" yaml:"subjects"`
	CompletedDates []string            `json:"completedDates" yaml:"completedDates"`
}

// Export returns the persisted stores as one document.
func (s *State) Export() Document {
	return Document{
		Deadlines:      s.deadlines.List(),
		Subjects:       s.subjects.List(),
		CompletedDates: s.ledger.Dates(),
	}
}

// Streak counts consecutive completed days ending today, or yesterday when
// today has nothing recorded yet.
func Streak(l calendar.Completions, today time.Time) int {
	day := dateutil.Day(today)
	if !l.Contains(dateutil.Format(day)) {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for l.Contains(dateutil.Format(day)) {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}
