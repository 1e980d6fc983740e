// Package subject keeps subjects and the ordered tasks each one owns.
package subject

import (
	"strings"

	"tableflip.dev/study/pkg/errdefs"
)

// DefaultName is the subject created when nothing has been stored yet.
const DefaultName = "General"

// Task is a single to-do item under a subject.
type Task struct {
	Text      string `json:"text" yaml:"text" validate:"notblank"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Subject is a named group of tasks. Task order is insertion order.
type Subject struct {
	Name  string `json:"name" yaml:"name" validate:"notblank"`
	Tasks []Task `json:"tasks" yaml:"tasks" validate:"dive"`
}

// Validate checks the record shape, including every task.
func (s Subject) Validate() error {
	return errdefs.Struct(s)
}

// Completed counts the completed tasks in the subject.
func (s Subject) Completed() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func (s Subject) clone() Subject {
	tasks := make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	s.Tasks = tasks
	return s
}

// Store is the ordered list of subjects.
type Store struct {
	subjects []Subject
}

// NewStore builds a Store from existing subjects.
func NewStore(subjects ...Subject) *Store {
	s := &Store{subjects: make([]Subject, 0, len(subjects))}
	for _, sub := range subjects {
		s.subjects = append(s.subjects, sub.clone())
	}
	return s
}

// Default returns a store holding the single "General" subject.
func Default() *Store {
	return NewStore(Subject{Name: DefaultName, Tasks: []Task{}})
}

// Len returns the number of subjects.
func (s *Store) Len() int {
	return len(s.subjects)
}

// List returns a deep copy of the subjects.
func (s *Store) List() []Subject {
	out := make([]Subject, len(s.subjects))
	for i, sub := range s.subjects {
		out[i] = sub.clone()
	}
	return out
}

// At returns a copy of the subject at index.
func (s *Store) At(index int) (Subject, error) {
	if err := errdefs.CheckIndex("subject", index, len(s.subjects)); err != nil {
		return Subject{}, err
	}
	return s.subjects[index].clone(), nil
}

// AddSubject appends a subject with no tasks.
func (s *Store) AddSubject(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errdefs.Validation("name", "required")
	}
	s.subjects = append(s.subjects, Subject{Name: name, Tasks: []Task{}})
	return nil
}

// RemoveSubject deletes the subject at index together with its tasks.
func (s *Store) RemoveSubject(index int) error {
	if err := errdefs.CheckIndex("subject", index, len(s.subjects)); err != nil {
		return err
	}
	s.subjects = append(s.subjects[:index], s.subjects[index+1:]...)
	return nil
}

// AddTask appends an incomplete task to the subject at subjectIndex.
func (s *Store) AddTask(subjectIndex int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errdefs.Validation("text", "required")
	}
	if err := errdefs.CheckIndex("subject", subjectIndex, len(s.subjects)); err != nil {
		return err
	}
	sub := &s.subjects[subjectIndex]
	sub.Tasks = append(sub.Tasks, Task{Text: text})
	return nil
}

// RemoveTask deletes one task.
func (s *Store) RemoveTask(subjectIndex, taskIndex int) error {
	sub, err := s.subject(subjectIndex)
	if err != nil {
		return err
	}
	if err := errdefs.CheckIndex("task", taskIndex, len(sub.Tasks)); err != nil {
		return err
	}
	sub.Tasks = append(sub.Tasks[:taskIndex], sub.Tasks[taskIndex+1:]...)
	return nil
}

// Toggle flips the completed flag of a task and returns the new state.
func (s *Store) Toggle(subjectIndex, taskIndex int) (bool, error) {
	sub, err := s.subject(subjectIndex)
	if err != nil {
		return false, err
	}
	if err := errdefs.CheckIndex("task", taskIndex, len(sub.Tasks)); err != nil {
		return false, err
	}
	t := &sub.Tasks[taskIndex]
	t.Completed = !t.Completed
	return t.Completed, nil
}

// AnyCompleted reports whether any task in any subject is completed.
func (s *Store) AnyCompleted() bool {
	for _, sub := range s.subjects {
		if sub.Completed() > 0 {
			return true
		}
	}
	return false
}

func (s *Store) subject(index int) (*Subject, error) {
	if err := errdefs.CheckIndex("subject", index, len(s.subjects)); err != nil {
		return nil, err
	}
	return &s.subjects[index], nil
}
