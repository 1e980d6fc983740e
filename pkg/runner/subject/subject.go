// Package subject holds the CLI runners for subject and task commands.
package subject

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/printers"
)

// List prints every subject and its tasks.
type List struct {
	State *app.State
	JSON  bool
	Out   io.Writer
}

func (l *List) Do(_ context.Context) error {
	subjects := l.State.Snapshot().Subjects
	pp := printers.New(l.Out)
	if l.JSON {
		b, err := json.MarshalIndent(subjects, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(pp.Out, string(b))
		return err
	}
	pp.Subjects(subjects)
	return nil
}

// Add appends a subject.
type Add struct {
	State *app.State
	Name  string
	Out   io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	if err := a.State.AddSubject(a.Name); err != nil {
		return err
	}
	return (&List{State: a.State, Out: a.Out}).Do(ctx)
}

// Remove deletes a subject with all of its tasks.
type Remove struct {
	State *app.State
	Index int
	Out   io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	if err := r.State.DeleteSubject(r.Index); err != nil {
		return err
	}
	return (&List{State: r.State, Out: r.Out}).Do(ctx)
}

// AddTask appends a task to the subject at Subject.
type AddTask struct {
	State   *app.State
	Subject int
	Text    string
	Out     io.Writer
}

func (a *AddTask) Do(ctx context.Context) error {
	if err := a.State.AddTask(a.Subject, a.Text); err != nil {
		return err
	}
	return (&List{State: a.State, Out: a.Out}).Do(ctx)
}

// RemoveTask deletes one task.
type RemoveTask struct {
	State   *app.State
	Subject int
	Task    int
	Out     io.Writer
}

func (r *RemoveTask) Do(ctx context.Context) error {
	if err := r.State.DeleteTask(r.Subject, r.Task); err != nil {
		return err
	}
	return (&List{State: r.State, Out: r.Out}).Do(ctx)
}

// Toggle flips a task between open and completed.
type Toggle struct {
	State   *app.State
	Subject int
	Task    int
	Out     io.Writer
}

func (t *Toggle) Do(ctx context.Context) error {
	done, err := t.State.ToggleTask(t.Subject, t.Task)
	if err != nil {
		return err
	}
	pp := printers.New(t.Out)
	state := "reopened"
	if done {
		state = "completed"
	}
	_, _ = fmt.Fprintf(pp.Out, "task %d.%d %s\n\n", t.Subject, t.Task, state)
	return (&List{State: t.State, Out: t.Out}).Do(ctx)
}
