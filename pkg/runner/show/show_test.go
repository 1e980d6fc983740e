package show

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/calendar"
	"tableflip.dev/study/pkg/store"
)

func newState(t *testing.T) *app.State {
	t.Helper()
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)
	s, err := app.Load(store.NewMemory(), app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.AddDeadline("Lab report", "2026-10-20"); err != nil {
		t.Fatalf("add deadline: %v", err)
	}
	return s
}

func TestOverview(t *testing.T) {
	var buf bytes.Buffer
	o := Overview{State: newState(t), Out: &buf}
	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("overview: %v", err)
	}
	for _, want := range []string{"Deadlines - 1 deadline", "Lab report - 2026-10-20", "General", "October 2026"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in\n%s", want, buf.String())
		}
	}
}

func TestCalendarMonthsAndDetail(t *testing.T) {
	var buf bytes.Buffer
	c := Calendar{State: newState(t), Months: 2, Detail: true, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("calendar: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"October 2026", "November 2026", "14 We  lines  1 open", "20 Tu  lines  1 open"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "21 We  lines") {
		t.Fatalf("expected no indicator after the due day:\n%s", out)
	}
	if strings.Index(out, "October 2026") > strings.Index(out, "November 2026") {
		t.Fatalf("expected months in order:\n%s", out)
	}
}

func TestCalendarStartMonthJSON(t *testing.T) {
	var buf bytes.Buffer
	start := calendar.Cursor{Year: 2026, Month: int(time.December) - 1}
	c := Calendar{State: newState(t), Month: &start, Months: 2, JSON: true, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("calendar: %v", err)
	}
	var views []struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(buf.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(views) != 2 || views[0].Label != "December 2026" || views[1].Label != "January 2027" {
		t.Fatalf("unexpected months %+v", views)
	}
}
