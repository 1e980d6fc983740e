package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/errdefs"
	"tableflip.dev/study/pkg/store"
)

func newState(t *testing.T) *app.State {
	t.Helper()
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)
	s, err := app.Load(store.NewMemory(), app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.AddDeadline("Exam", "2026-10-20"); err != nil {
		t.Fatalf("add deadline: %v", err)
	}
	if err := s.AddTask(0, "revise"); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := s.ToggleTask(0, 0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	return s
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	e := Export{State: newState(t), Out: &buf}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc app.Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(doc.Deadlines) != 1 || doc.Deadlines[0].Topic != "Exam" {
		t.Fatalf("unexpected deadlines %+v", doc.Deadlines)
	}
	if len(doc.CompletedDates) != 1 || doc.CompletedDates[0] != "2026-10-14" {
		t.Fatalf("unexpected completed dates %v", doc.CompletedDates)
	}
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	e := Export{State: newState(t), Format: "YAML", Out: &buf}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), "completedDates:") {
		t.Fatalf("expected camelCase keys, got\n%s", buf.String())
	}
	var doc app.Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Subjects) != 1 || !doc.Subjects[0].Tasks[0].Completed {
		t.Fatalf("unexpected subjects %+v", doc.Subjects)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	e := Export{State: newState(t), Format: "toml", Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); !errdefs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
