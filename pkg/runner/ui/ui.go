// Package ui launches the interactive terminal interface.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/store"
	tuiapp "tableflip.dev/study/pkg/tui/app"
)

type UI struct {
	State   *app.State
	Watcher store.Watcher
}

func (u *UI) Do(_ context.Context) error {
	if u.State == nil {
		return errors.New("can not start ui, no state")
	}
	return tuiapp.Run(u.State, u.Watcher)
}
