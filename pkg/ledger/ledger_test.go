package ledger

import "testing"

func TestNewDeduplicates(t *testing.T) {
	l := New("2025-01-02", "2025-01-01", "2025-01-02", "garbage", "")
	got := l.Dates()
	if len(got) != 2 || got[0] != "2025-01-01" || got[1] != "2025-01-02" {
		t.Fatalf("unexpected dates %v", got)
	}
}

func TestRecordIsIdempotent(t *testing.T) {
	l := New()
	l.Record("2025-04-01")
	l.Record("2025-04-01")
	if l.Len() != 1 || !l.Contains("2025-04-01") {
		t.Fatalf("expected single entry, got %v", l.Dates())
	}
}

func TestRetractIfUnused(t *testing.T) {
	l := New("2025-04-01")
	l.RetractIfUnused("2025-04-01", true)
	if !l.Contains("2025-04-01") {
		t.Fatalf("date must stay while other completions remain")
	}
	l.RetractIfUnused("2025-04-01", false)
	if l.Contains("2025-04-01") {
		t.Fatalf("date must be removed once unused")
	}
	l.RetractIfUnused("2025-04-02", false)
	if l.Len() != 0 {
		t.Fatalf("retracting an absent date is a no-op")
	}
}

func TestZeroValueRecord(t *testing.T) {
	var l Ledger
	if l.Contains("2025-01-01") {
		t.Fatalf("zero ledger must be empty")
	}
	l.Record("2025-01-01")
	if !l.Contains("2025-01-01") {
		t.Fatalf("zero ledger must accept records")
	}
}
