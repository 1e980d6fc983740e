package calendar

import (
	"testing"
	"time"
)

func TestChangeMonthWraps(t *testing.T) {
	tests := []struct {
		start  Cursor
		offset int
		want   Cursor
	}{
		{Cursor{Month: 5, Year: 2026}, 1, Cursor{Month: 6, Year: 2026}},
		{Cursor{Month: 11, Year: 2026}, 1, Cursor{Month: 0, Year: 2027}},
		{Cursor{Month: 0, Year: 2026}, -1, Cursor{Month: 11, Year: 2025}},
		{Cursor{Month: 2, Year: 2026}, 14, Cursor{Month: 4, Year: 2027}},
		{Cursor{Month: 2, Year: 2026}, -15, Cursor{Month: 11, Year: 2024}},
		{Cursor{Month: 7, Year: 2026}, 0, Cursor{Month: 7, Year: 2026}},
	}
	for _, tc := range tests {
		c := tc.start
		c.ChangeMonth(tc.offset)
		if c != tc.want {
			t.Fatalf("%+v by %d: expected %+v, got %+v", tc.start, tc.offset, tc.want, c)
		}
	}
}

func TestCursorAt(t *testing.T) {
	c := CursorAt(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.Local))
	if c.Month != 9 || c.Year != 2026 {
		t.Fatalf("unexpected cursor %+v", c)
	}
	if c.TimeMonth() != time.October || c.Label() != "October 2026" {
		t.Fatalf("unexpected month %s / %s", c.TimeMonth(), c.Label())
	}
}
