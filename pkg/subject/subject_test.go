package subject

import (
	"testing"

	"tableflip.dev/study/pkg/errdefs"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Len() != 1 {
		t.Fatalf("expected one default subject, got %d", s.Len())
	}
	sub, _ := s.At(0)
	if sub.Name != DefaultName || len(sub.Tasks) != 0 {
		t.Fatalf("unexpected default subject %+v", sub)
	}
}

func TestAddSubjectTrims(t *testing.T) {
	s := NewStore()
	if err := s.AddSubject("  Chemistry "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub, _ := s.At(0); sub.Name != "Chemistry" {
		t.Fatalf("expected trimmed name, got %q", sub.Name)
	}
	if err := s.AddSubject("   "); !errdefs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := s.AddSubject("Chemistry"); err != nil {
		t.Fatalf("duplicate names are allowed, got %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 subjects, got %d", s.Len())
	}
}

func TestAddTask(t *testing.T) {
	s := Default()
	if err := s.AddTask(0, " read chapter 3 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AddTask(0, "flashcards"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sub, _ := s.At(0)
	if len(sub.Tasks) != 2 || sub.Tasks[0].Text != "read chapter 3" || sub.Tasks[1].Text != "flashcards" {
		t.Fatalf("unexpected tasks %+v", sub.Tasks)
	}
	if sub.Tasks[0].Completed {
		t.Fatalf("new tasks start incomplete")
	}

	if err := s.AddTask(0, ""); !errdefs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := s.AddTask(3, "x"); !errdefs.IsIndex(err) {
		t.Fatalf("expected index error, got %v", err)
	}
	if err := NewStore().AddTask(0, "x"); !errdefs.IsIndex(err) {
		t.Fatalf("expected index error with no subjects, got %v", err)
	}
}

func TestRemoveTaskAndSubject(t *testing.T) {
	s := Default()
	_ = s.AddTask(0, "a")
	_ = s.AddTask(0, "b")

	if err := s.RemoveTask(0, 5); !errdefs.IsIndex(err) {
		t.Fatalf("expected index error, got %v", err)
	}
	if err := s.RemoveTask(1, 0); !errdefs.IsIndex(err) {
		t.Fatalf("expected index error, got %v", err)
	}
	if err := s.RemoveTask(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub, _ := s.At(0); len(sub.Tasks) != 1 || sub.Tasks[0].Text != "b" {
		t.Fatalf("unexpected tasks after remove: %+v", sub.Tasks)
	}

	if err := s.RemoveSubject(1); !errdefs.IsIndex(err) {
		t.Fatalf("expected index error, got %v", err)
	}
	if err := s.RemoveSubject(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
}

func TestToggle(t *testing.T) {
	s := Default()
	_ = s.AddTask(0, "a")

	done, err := s.Toggle(0, 0)
	if err != nil || !done {
		t.Fatalf("expected completed, got %v (%v)", done, err)
	}
	if !s.AnyCompleted() {
		t.Fatalf("expected a completed task")
	}
	done, err = s.Toggle(0, 0)
	if err != nil || done {
		t.Fatalf("expected incomplete, got %v (%v)", done, err)
	}
	if s.AnyCompleted() {
		t.Fatalf("expected no completed tasks")
	}
	if _, err := s.Toggle(0, 1); !errdefs.IsIndex(err) {
		t.Fatalf("expected index error, got %v", err)
	}
	if _, err := s.Toggle(2, 0); !errdefs.IsIndex(err) {
		t.Fatalf("expected index error, got %v", err)
	}
}

func TestAnyCompletedAcrossSubjects(t *testing.T) {
	s := NewStore(
		Subject{Name: "A", Tasks: []Task{{Text: "x"}}},
		Subject{Name: "B", Tasks: []Task{{Text: "y", Completed: true}}},
	)
	if !s.AnyCompleted() {
		t.Fatalf("expected completion in second subject to count")
	}
	_ = s.RemoveSubject(1)
	if s.AnyCompleted() {
		t.Fatalf("removed subject must not count")
	}
}

func TestListIsDeepCopy(t *testing.T) {
	s := NewStore(Subject{Name: "A", Tasks: []Task{{Text: "x"}}})
	list := s.List()
	list[0].Tasks[0].Text = "changed"
	list[0].Name = "changed"
	sub, _ := s.At(0)
	if sub.Name != "A" || sub.Tasks[0].Text != "x" {
		t.Fatalf("List must not alias store state: %+v", sub)
	}
}

func TestValidate(t *testing.T) {
	good := Subject{Name: "A", Tasks: []Task{{Text: "x"}}}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := Subject{Name: "A", Tasks: []Task{{Text: " "}}}
	if err := bad.Validate(); !errdefs.IsValidation(err) {
		t.Fatalf("expected validation error for blank task, got %v", err)
	}
	if err := (Subject{Name: ""}).Validate(); !errdefs.IsValidation(err) {
		t.Fatalf("expected validation error for blank name")
	}
}
