package app

import (
	"time"

	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/deadline"
)

// ReportDay is one calendar day inside a report window.
type ReportDay struct {
	Date      string
	Completed bool
	Missed    bool
	Due       []deadline.Deadline
}

// ReportResult summarizes completion and deadlines for a window of days.
type ReportResult struct {
	Since     time.Time
	Until     time.Time
	Days      []ReportDay
	Completed int
	Missed    int
	Streak    int
}

// Rate is the share of past days in the window that had a completion.
func (r ReportResult) Rate() float64 {
	if r.Completed+r.Missed == 0 {
		return 0
	}
	return float64(r.Completed) / float64(r.Completed+r.Missed)
}

// Report walks every day between since and until inclusive. Days before
// today without a recorded completion count as missed.
func (s *State) Report(since, until time.Time) ReportResult {
	since, until = dateutil.Day(since), dateutil.Day(until)
	if since.After(until) {
		since, until = until, since
	}
	today := s.Today()
	deadlines := s.deadlines.List()

	due := make(map[string][]deadline.Deadline, len(deadlines))
	for _, d := range deadlines {
		due[d.Date] = append(due[d.Date], d)
	}

	result := ReportResult{Since: since, Until: until, Streak: Streak(s.ledger, today)}
	for day := since; !day.After(until); day = day.AddDate(0, 0, 1) {
		key := dateutil.Format(day)
		rd := ReportDay{Date: key, Completed: s.ledger.Contains(key), Due: due[key]}
		rd.Missed = !rd.Completed && day.Before(today)
		if rd.Completed {
			result.Completed++
		}
		if rd.Missed {
			result.Missed++
		}
		result.Days = append(result.Days, rd)
	}
	return result
}
