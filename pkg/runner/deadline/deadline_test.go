package deadline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/dateutil"
	studydeadline "tableflip.dev/study/pkg/deadline"
	"tableflip.dev/study/pkg/store"
)

func newState(t *testing.T) *app.State {
	t.Helper()
	now := time.Date(2026, time.December, 28, 10, 0, 0, 0, time.Local)
	s, err := app.Load(store.NewMemory(), app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestAddWithOffsetPrintsList(t *testing.T) {
	s := newState(t)
	var buf bytes.Buffer
	a := Add{State: s, Topic: "Project", Offset: dateutil.Week, Out: &buf}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(buf.String(), "Project - 2027-01-04") {
		t.Fatalf("expected listed deadline, got %q", buf.String())
	}
}

func TestAddRequiresTopicAndDate(t *testing.T) {
	a := Add{State: newState(t), Topic: "Essay", Out: &bytes.Buffer{}}
	err := a.Do(context.Background())
	if err == nil || err.Error() != "topic and date required" {
		t.Fatalf("expected required error, got %v", err)
	}
}

func TestColorAndListJSON(t *testing.T) {
	s := newState(t)
	if err := s.AddDeadline("Exam", "2027-01-10"); err != nil {
		t.Fatalf("add: %v", err)
	}
	c := Color{State: s, Index: 0, Color: "#00FF00", Out: &bytes.Buffer{}}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("color: %v", err)
	}

	var buf bytes.Buffer
	l := List{State: s, JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []studydeadline.Deadline
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Color != "#00ff00" {
		t.Fatalf("expected normalized color, got %+v", got)
	}

	r := Remove{State: s, Index: 5, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected index error")
	}
}
