// Package show prints the tracker overview and month calendars.
package show

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/calendar"
	"tableflip.dev/study/pkg/printers"
)

// Overview prints deadlines, subjects and the current month.
type Overview struct {
	State *app.State
	Out   io.Writer
}

func (o *Overview) Do(_ context.Context) error {
	snap := o.State.Snapshot()
	pp := printers.New(o.Out)
	pp.NewLine()
	pp.Deadlines(snap.Deadlines, snap.Today)
	pp.Subjects(snap.Subjects)
	pp.Month(snap.Month)
	return nil
}

// Calendar prints Months consecutive months starting at Month, or at the
// current month when Month is nil.
type Calendar struct {
	State  *app.State
	Month  *calendar.Cursor
	Months int
	Detail bool
	JSON   bool
	Out    io.Writer
}

func (c *Calendar) Do(_ context.Context) error {
	cur := c.State.Cursor()
	if c.Month != nil {
		cur = *c.Month
	}
	n := c.Months
	if n < 1 {
		n = 1
	}

	views := make([]calendar.MonthView, 0, n)
	for i := 0; i < n; i++ {
		views = append(views, c.State.MonthView(cur.Year, cur.TimeMonth()))
		cur.ChangeMonth(1)
	}

	pp := printers.New(c.Out)
	if c.JSON {
		var v interface{} = views
		if n == 1 {
			v = views[0]
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(pp.Out, string(b))
		return err
	}
	for _, mv := range views {
		pp.Month(mv)
		if c.Detail {
			pp.MonthDetail(mv)
		}
	}
	return nil
}
