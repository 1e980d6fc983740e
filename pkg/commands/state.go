package commands

import (
	"tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/store"
)

// session is a loaded state over the configured backend.
type session struct {
	State   *app.State
	Watcher store.Watcher
}

// open loads the configured backend.
func open() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logs.Logger()
	gw, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened store", "backend", cfg.Backend(), "path", cfg.BasePath())

	s, err := app.Load(gw, app.WithLogger(logger), app.WithChangeHook(func(snap app.Snapshot) {
		logger.Debug("state changed", "deadlines", len(snap.Deadlines), "subjects", len(snap.Subjects), "completed", len(snap.Completed))
	}))
	if err != nil {
		_ = gw.Close()
		return nil, err
	}
	w, _ := gw.(store.Watcher)
	return &session{State: s, Watcher: w}, nil
}

func (s *session) Close() {
	if err := s.State.Close(); err != nil {
		logs.Logger().Warn("close store", "err", err)
	}
}
