// Package deadline holds the CLI runners for deadline commands.
package deadline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/printers"
)

// Add creates a deadline on Date, or at Offset from today when Offset is set.
type Add struct {
	State  *app.State
	Topic  string
	Date   string
	Offset dateutil.Offset
	Out    io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	var err error
	if a.Offset != "" {
		err = a.State.AddQuickDeadline(a.Topic, a.Offset)
	} else {
		err = a.State.AddDeadline(a.Topic, a.Date)
	}
	if err != nil {
		return err
	}
	return (&List{State: a.State, Out: a.Out}).Do(ctx)
}

// List prints every deadline in date order.
type List struct {
	State *app.State
	JSON  bool
	Out   io.Writer
}

func (l *List) Do(_ context.Context) error {
	snap := l.State.Snapshot()
	pp := printers.New(l.Out)
	if l.JSON {
		b, err := json.MarshalIndent(snap.Deadlines, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(pp.Out, string(b))
		return err
	}
	pp.Deadlines(snap.Deadlines, snap.Today)
	return nil
}

// Remove deletes the deadline at Index.
type Remove struct {
	State *app.State
	Index int
	Out   io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	if err := r.State.DeleteDeadline(r.Index); err != nil {
		return err
	}
	return (&List{State: r.State, Out: r.Out}).Do(ctx)
}

// Color recolors the deadline at Index. Color is a hex value or a palette
// index.
type Color struct {
	State *app.State
	Index int
	Color string
	Out   io.Writer
}

func (c *Color) Do(ctx context.Context) error {
	if err := c.State.SetDeadlineColor(c.Index, c.Color); err != nil {
		return err
	}
	return (&List{State: c.State, Out: c.Out}).Do(ctx)
}
