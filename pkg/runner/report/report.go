// Package report prints completion history for a recent window of days.
package report

import (
	"context"
	"io"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/errdefs"
	"tableflip.dev/study/pkg/printers"
	"tableflip.dev/study/pkg/timeutil"
)

type Report struct {
	State  *app.State
	Window string
	Out    io.Writer
}

func (r *Report) Do(_ context.Context) error {
	days, _, err := timeutil.ParseWindow(r.Window)
	if err != nil {
		return errdefs.Validation("last", err.Error())
	}
	since, until := timeutil.Bounds(r.State.Today(), days)
	printers.New(r.Out).Report(r.State.Report(since, until), days)
	return nil
}
