package errdefs

import (
	"fmt"
	"testing"
)

type record struct {
	Topic string `json:"topic" validate:"notblank"`
	Date  string `json:"date" validate:"isodate"`
}

func TestStructReportsJSONField(t *testing.T) {
	err := Struct(record{Topic: "  ", Date: "2025-01-01"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "topic: required" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	err = Struct(record{Topic: "Math", Date: "2025-02-30"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
	if err.(*ValidationError).Field != "date" {
		t.Fatalf("expected date field, got %q", err.(*ValidationError).Field)
	}

	if err := Struct(record{Topic: "Math", Date: "2025-02-28"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckIndex(t *testing.T) {
	if err := CheckIndex("deadline", 0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, idx := range []int{-1, 1, 5} {
		err := CheckIndex("deadline", idx, 1)
		if !IsIndex(err) {
			t.Fatalf("index %d: expected index error, got %v", idx, err)
		}
	}
	if IsValidation(CheckIndex("deadline", 3, 1)) {
		t.Fatalf("index error must not classify as validation")
	}
}

func TestWrappedPredicates(t *testing.T) {
	wrapped := fmt.Errorf("save: %w", Index("subject", 2, 0))
	if !IsIndex(wrapped) {
		t.Fatalf("expected wrapped index error")
	}
	if wrapped.Error() != "save: no subjects available" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}
}
