package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/study/pkg/deadline"
	"tableflip.dev/study/pkg/errdefs"
	"tableflip.dev/study/pkg/ledger"
	"tableflip.dev/study/pkg/store"
	"tableflip.dev/study/pkg/subject"
)

// loadRaw returns the stored JSON array under key. ok is false when the key
// is absent or does not hold an array, in which case the caller uses its
// default. Only gateway failures are returned as errors.
func loadRaw(gw store.Gateway, key string, logger *slog.Logger) ([]json.RawMessage, bool, error) {
	data, err := gw.Load(key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("app: load %s: %w", key, err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		logger.Warn("ignoring malformed stored value", "key", key, "err", err)
		return nil, false, nil
	}
	return items, true, nil
}

func loadDeadlines(gw store.Gateway, logger *slog.Logger) (*deadline.Store, error) {
	raw, ok, err := loadRaw(gw, store.DeadlinesKey, logger)
	if err != nil || !ok {
		return deadline.NewStore(), err
	}
	items := make([]deadline.Deadline, 0, len(raw))
	for i, r := range raw {
		var d deadline.Deadline
		if err := json.Unmarshal(r, &d); err != nil {
			logger.Warn("dropping deadline", "index", i, "err", err)
			continue
		}
		if d.Color == "" {
			d.Color = deadline.PaletteColor(len(items))
		}
		if err := d.Validate(); err != nil {
			logger.Warn("dropping deadline", "index", i, "err", err)
			continue
		}
		items = append(items, d)
	}
	return deadline.NewStore(items...), nil
}

// storedSubject lets tasks be validated one by one instead of losing the
// whole subject to a single bad task.
type storedSubject struct {
	Name  string            `json:"name"`
	Tasks []json.RawMessage `json:"tasks"`
}

func loadSubjects(gw store.Gateway, logger *slog.Logger) (*subject.Store, error) {
	raw, ok, err := loadRaw(gw, store.SubjectsKey, logger)
	if err != nil || !ok {
		return subject.Default(), err
	}
	subjects := make([]subject.Subject, 0, len(raw))
	for i, r := range raw {
		var ss storedSubject
		if err := json.Unmarshal(r, &ss); err != nil {
			logger.Warn("dropping subject", "index", i, "err", err)
			continue
		}
		sub := subject.Subject{Name: ss.Name, Tasks: make([]subject.Task, 0, len(ss.Tasks))}
		for j, rt := range ss.Tasks {
			var t subject.Task
			if err := json.Unmarshal(rt, &t); err != nil {
				logger.Warn("dropping task", "subject", i, "index", j, "err", err)
				continue
			}
			if err := errdefs.Struct(t); err != nil {
				logger.Warn("dropping task", "subject", i, "index", j, "err", err)
				continue
			}
			sub.Tasks = append(sub.Tasks, t)
		}
		if err := sub.Validate(); err != nil {
			logger.Warn("dropping subject", "index", i, "err", err)
			continue
		}
		subjects = append(subjects, sub)
	}
	return subject.NewStore(subjects...), nil
}

func loadLedger(gw store.Gateway, logger *slog.Logger) (*ledger.Ledger, error) {
	raw, ok, err := loadRaw(gw, store.CompletedDatesKey, logger)
	if err != nil || !ok {
		return ledger.New(), err
	}
	dates := make([]string, 0, len(raw))
	for i, r := range raw {
		var d string
		if err := json.Unmarshal(r, &d); err != nil {
			logger.Warn("dropping completed date", "index", i, "err", err)
			continue
		}
		dates = append(dates, d)
	}
	return ledger.New(dates...), nil
}

func encodeStores(d *deadline.Store, s *subject.Store, l *ledger.Ledger) (map[string][]byte, error) {
	out := make(map[string][]byte, 3)
	var err error
	if out[store.DeadlinesKey], err = json.Marshal(d.List()); err != nil {
		return nil, fmt.Errorf("app: encode deadlines: %w", err)
	}
	if out[store.SubjectsKey], err = json.Marshal(s.List()); err != nil {
		return nil, fmt.Errorf("app: encode subjects: %w", err)
	}
	if out[store.CompletedDatesKey], err = json.Marshal(l.Dates()); err != nil {
		return nil, fmt.Errorf("app: encode completed dates: %w", err)
	}
	return out, nil
}
