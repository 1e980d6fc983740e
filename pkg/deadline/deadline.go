// Package deadline keeps the date ordered list of study deadlines.
package deadline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/errdefs"
)

// Deadline is a topic due on a calendar date, shown in a color.
type Deadline struct {
	Topic string `json:"topic" yaml:"topic" validate:"notblank"`
	Date  string `json:"date" yaml:"date" validate:"isodate"`
	Color string `json:"color" yaml:"color" validate:"notblank"`
}

// String renders the list form "<topic> - <date>".
func (d Deadline) String() string {
	return fmt.Sprintf("%s - %s", d.Topic, d.Date)
}

// Due returns the deadline date as local midnight. The zero time is
// returned for a malformed date.
func (d Deadline) Due() time.Time {
	t, err := dateutil.Parse(d.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Validate checks the record shape.
func (d Deadline) Validate() error {
	return errdefs.Struct(d)
}

// Store is an ordered collection of deadlines, ascending by date.
type Store struct {
	items []Deadline
}

// NewStore builds a Store from existing records and sorts it.
func NewStore(items ...Deadline) *Store {
	s := &Store{items: append([]Deadline(nil), items...)}
	s.Sort()
	return s
}

// Len returns the number of deadlines.
func (s *Store) Len() int {
	return len(s.items)
}

// List returns a copy of the deadlines in store order.
func (s *Store) List() []Deadline {
	out := make([]Deadline, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the deadline at index.
func (s *Store) At(index int) (Deadline, error) {
	if err := errdefs.CheckIndex("deadline", index, len(s.items)); err != nil {
		return Deadline{}, err
	}
	return s.items[index], nil
}

// NextColor is the palette color the next added deadline receives.
func (s *Store) NextColor() string {
	return PaletteColor(len(s.items))
}

// Add appends a deadline and re-sorts the store.
func (s *Store) Add(topic, date string) error {
	topic = strings.TrimSpace(topic)
	date = strings.TrimSpace(date)
	if topic == "" || date == "" {
		return errdefs.Validation("", "topic and date required")
	}
	d := Deadline{Topic: topic, Date: date, Color: s.NextColor()}
	if err := d.Validate(); err != nil {
		return err
	}
	s.items = append(s.items, d)
	s.Sort()
	return nil
}

// AddRelative adds a deadline dated at an offset from today.
func (s *Store) AddRelative(topic string, offset dateutil.Offset, today time.Time) error {
	if strings.TrimSpace(topic) == "" {
		return errdefs.Validation("topic", "enter a topic first")
	}
	due, err := offset.Apply(today)
	if err != nil {
		return errdefs.Validation("offset", err.Error())
	}
	return s.Add(topic, dateutil.Format(due))
}

// SetColor reassigns the color of the deadline at index.
func (s *Store) SetColor(index int, color string) error {
	if err := errdefs.CheckIndex("deadline", index, len(s.items)); err != nil {
		return err
	}
	color = strings.TrimSpace(color)
	if color == "" {
		return errdefs.Validation("color", "required")
	}
	s.items[index].Color = color
	return nil
}

// Remove deletes the deadline at index.
func (s *Store) Remove(index int) error {
	if err := errdefs.CheckIndex("deadline", index, len(s.items)); err != nil {
		return err
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Sort orders the store ascending by date, keeping the relative order of
// deadlines that share a date.
func (s *Store) Sort() {
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Due().Before(s.items[j].Due())
	})
}
