package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/study/pkg/calendar"
	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/deadline"
	"tableflip.dev/study/pkg/ledger"
	"tableflip.dev/study/pkg/store"
	"tableflip.dev/study/pkg/subject"
)

// State is the whole application session: the three persisted stores, the
// displayed month and the gateway every mutation is written through.
// It is not safe for concurrent use.
type State struct {
	deadlines *deadline.Store
	subjects  *subject.Store
	ledger    *ledger.Ledger
	cursor    calendar.Cursor

	gateway store.Gateway
	now     func() time.Time
	logger  *slog.Logger
	hooks   []func(Snapshot)
}

// Option configures a State.
type Option func(*State)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for load and save diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithChangeHook registers fn to receive a fresh snapshot after every
// successful action.
func WithChangeHook(fn func(Snapshot)) Option {
	return func(s *State) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}

var errNoGateway = errors.New("app: no persistence configured")

// Load reads the three stores from gw, falling back to defaults per field,
// and positions the cursor on the current month.
func Load(gw store.Gateway, opts ...Option) (*State, error) {
	if gw == nil {
		return nil, errNoGateway
	}
	s := &State{
		gateway: gw,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.read(); err != nil {
		return nil, err
	}
	s.cursor = calendar.CursorAt(s.now())
	return s, nil
}

// Reload re-reads every store from the gateway, keeping the cursor, and
// notifies the change hooks.
func (s *State) Reload() error {
	if err := s.read(); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *State) read() error {
	deadlines, err := loadDeadlines(s.gateway, s.logger)
	if err != nil {
		return err
	}
	subjects, err := loadSubjects(s.gateway, s.logger)
	if err != nil {
		return err
	}
	completed, err := loadLedger(s.gateway, s.logger)
	if err != nil {
		return err
	}
	s.deadlines, s.subjects, s.ledger = deadlines, subjects, completed
	return nil
}

// Close releases the gateway. Every action already saved its result.
func (s *State) Close() error {
	return s.gateway.Close()
}

// Today is the current local calendar day.
func (s *State) Today() time.Time {
	return dateutil.Day(s.now())
}

// Cursor returns the displayed month.
func (s *State) Cursor() calendar.Cursor {
	return s.cursor
}

// AddDeadline adds a deadline due on date (YYYY-MM-DD).
func (s *State) AddDeadline(topic, date string) error {
	if err := s.deadlines.Add(topic, date); err != nil {
		return err
	}
	s.logger.Debug("deadline added", "topic", topic, "date", date)
	return s.commit()
}

// AddQuickDeadline adds a deadline at a named offset from today.
func (s *State) AddQuickDeadline(topic string, offset dateutil.Offset) error {
	if err := s.deadlines.AddRelative(topic, offset, s.Today()); err != nil {
		return err
	}
	s.logger.Debug("quick deadline added", "topic", topic, "offset", string(offset))
	return s.commit()
}

// DeleteDeadline removes the deadline at index.
func (s *State) DeleteDeadline(index int) error {
	if err := s.deadlines.Remove(index); err != nil {
		return err
	}
	return s.commit()
}

// SetDeadlineColor recolors a deadline. color may be a hex value or a
// palette index.
func (s *State) SetDeadlineColor(index int, color string) error {
	resolved, err := deadline.ResolveColor(color)
	if err != nil {
		return err
	}
	if err := s.deadlines.SetColor(index, resolved); err != nil {
		return err
	}
	return s.commit()
}

// AddSubject appends a subject.
func (s *State) AddSubject(name string) error {
	if err := s.subjects.AddSubject(name); err != nil {
		return err
	}
	return s.commit()
}

// DeleteSubject removes a subject and its tasks. Ledger days already
// recorded are kept.
func (s *State) DeleteSubject(index int) error {
	if err := s.subjects.RemoveSubject(index); err != nil {
		return err
	}
	return s.commit()
}

// AddTask appends a task to a subject.
func (s *State) AddTask(subjectIndex int, text string) error {
	if err := s.subjects.AddTask(subjectIndex, text); err != nil {
		return err
	}
	return s.commit()
}

// DeleteTask removes a task.
func (s *State) DeleteTask(subjectIndex, taskIndex int) error {
	if err := s.subjects.RemoveTask(subjectIndex, taskIndex); err != nil {
		return err
	}
	return s.commit()
}

// ToggleTask flips a task and updates the completion ledger for today.
// Un-completing only retracts today when no task anywhere is still
// completed while today is recorded.
func (s *State) ToggleTask(subjectIndex, taskIndex int) (bool, error) {
	done, err := s.subjects.Toggle(subjectIndex, taskIndex)
	if err != nil {
		return false, err
	}
	today := dateutil.Format(s.Today())
	if done {
		s.ledger.Record(today)
	} else {
		still := s.subjects.AnyCompleted() && s.ledger.Contains(today)
		s.ledger.RetractIfUnused(today, still)
	}
	s.logger.Debug("task toggled", "subject", subjectIndex, "task", taskIndex, "completed", done)
	return done, s.commit()
}

// ChangeMonth moves the displayed month. Nothing is persisted.
func (s *State) ChangeMonth(offset int) {
	s.cursor.ChangeMonth(offset)
	s.notify()
}

// SetCursor jumps to a month.
func (s *State) SetCursor(c calendar.Cursor) {
	s.cursor = c
	s.cursor.ChangeMonth(0)
	s.notify()
}

// commit saves every store and then notifies the change hooks.
func (s *State) commit() error {
	if err := s.save(); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *State) save() error {
	docs, err := encodeStores(s.deadlines, s.subjects, s.ledger)
	if err != nil {
		return err
	}
	for _, key := range store.Keys() {
		if err := s.gateway.Save(key, docs[key]); err != nil {
			s.logger.Warn("save failed", "key", key, "err", err)
			return fmt.Errorf("app: save %s: %w", key, err)
		}
	}
	return nil
}

func (s *State) notify() {
	if len(s.hooks) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.hooks {
		fn(snap)
	}
}
