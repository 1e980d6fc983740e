package calendar

import (
	"time"

	"tableflip.dev/study/pkg/dateutil"
)

// Cursor is the displayed month. Month is zero based (0 = January).
type Cursor struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// CursorAt returns the cursor for the month containing t.
func CursorAt(t time.Time) Cursor {
	l := t.Local()
	return Cursor{Month: int(l.Month()) - 1, Year: l.Year()}
}

// ChangeMonth moves the cursor by offset months, carrying into the year.
func (c *Cursor) ChangeMonth(offset int) {
	m := c.Month + offset
	c.Year += floorDiv(m, 12)
	c.Month = m - floorDiv(m, 12)*12
}

// TimeMonth returns the cursor month as a time.Month.
func (c Cursor) TimeMonth() time.Month {
	return time.Month(c.Month + 1)
}

// Label renders "January 2006".
func (c Cursor) Label() string {
	return dateutil.MonthLabel(c.Year, c.TimeMonth())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
