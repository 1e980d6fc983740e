// Package ledger records the calendar days on which tasks were completed.
//
// The ledger is keyed by date, not by task: it only knows that something
// was completed on a day. Retraction is therefore an approximation decided
// by the caller.
package ledger

import (
	"sort"
	"strings"

	"tableflip.dev/study/pkg/dateutil"
)

// Ledger is a set of YYYY-MM-DD strings.
type Ledger struct {
	dates map[string]struct{}
}

// New builds a ledger from a stored history list. Duplicates and values
// that are not calendar dates are dropped.
func New(dates ...string) *Ledger {
	l := &Ledger{dates: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		d = strings.TrimSpace(d)
		if dateutil.Valid(d) {
			l.dates[d] = struct{}{}
		}
	}
	return l
}

// Record adds date if absent.
func (l *Ledger) Record(date string) {
	if l.dates == nil {
		l.dates = make(map[string]struct{})
	}
	l.dates[date] = struct{}{}
}

// RetractIfUnused removes date unless stillAnyCompleted is set.
func (l *Ledger) RetractIfUnused(date string, stillAnyCompleted bool) {
	if stillAnyCompleted {
		return
	}
	delete(l.dates, date)
}

// Contains reports whether date is in the ledger.
func (l *Ledger) Contains(date string) bool {
	_, ok := l.dates[date]
	return ok
}

// Len returns the number of recorded days.
func (l *Ledger) Len() int {
	return len(l.dates)
}

// Dates returns the recorded days in ascending order.
func (l *Ledger) Dates() []string {
	out := make([]string, 0, len(l.dates))
	for d := range l.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
