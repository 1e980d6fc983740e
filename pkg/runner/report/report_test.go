package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/errdefs"
	"tableflip.dev/study/pkg/store"
)

func newState(t *testing.T) *app.State {
	t.Helper()
	gw := store.NewMemory()
	if err := gw.Save(store.CompletedDatesKey, []byte(`["2026-10-13","2026-10-14","2026-09-01"]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := gw.Save(store.DeadlinesKey, []byte(`[{"topic":"Quiz","date":"2026-10-10","color":"#e6194b"}]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)
	s, err := app.Load(gw, app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestReportLastWeek(t *testing.T) {
	var buf bytes.Buffer
	r := Report{State: newState(t), Window: "1w", Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"last 1w (2026-10-08 → 2026-10-14)",
		"completed 2 · missed 5",
		"streak 2",
		"✓ 2026-10-14",
		"✗ 2026-10-08",
		"2026-10-10  ● Quiz",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "2026-09-01") {
		t.Fatalf("expected days outside the window to be left out:\n%s", out)
	}
}

func TestReportDefaultsToOneWeek(t *testing.T) {
	var buf bytes.Buffer
	r := Report{State: newState(t), Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("report: %v", err)
	}
	if got := strings.Count(buf.String(), "2026-10-"); got != 7+2 {
		t.Fatalf("expected seven days plus the range header, got %d\n%s", got, buf.String())
	}
}

func TestReportRejectsBadWindow(t *testing.T) {
	r := Report{State: newState(t), Window: "fortnight", Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); !errdefs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
