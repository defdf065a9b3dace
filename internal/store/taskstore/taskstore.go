package taskstore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/locale"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/prompt"
)

// In-memory task collection for one session. Nothing is written to disk.
// Not safe for concurrent use; the UI loop drives it one event at a time.

var (
	ErrEmptyTitle     = errors.New("empty title")
	ErrDuplicateTitle = errors.New("task already registered")
)

// IDFunc returns a fresh task identifier.
type IDFunc func() string

type Option func(*Store)

// WithIDFunc replaces the default uuid-based identifiers.
func WithIDFunc(f IDFunc) Option { return func(s *Store) { s.newID = f } }

func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.log = l } }

// WithMessages sets the prompt texts (English by default).
func WithMessages(m locale.Messages) Option { return func(s *Store) { s.msg = m } }

// Store is the single owner of the ordered task collection.
type Store struct {
	tasks     []model.Task
	presenter prompt.Presenter
	newID     IDFunc
	log       *slog.Logger
	msg       locale.Messages
}

// New returns an empty store. Duplicate notices and removal confirmations
// are shown through p.
func New(p prompt.Presenter, opts ...Option) *Store {
	s := &Store{
		presenter: p,
		newID:     uuid.NewString,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		msg:       locale.English(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AddTask appends a new pending task. A title already used by a current task
// is rejected with ErrDuplicateTitle after a notice has been presented.
func (s *Store) AddTask(title string) (model.Task, error) {
	if title == "" {
		return model.Task{}, fmt.Errorf("add: %w", ErrEmptyTitle)
	}
	if s.indexByTitle(title) >= 0 {
		s.log.Debug("duplicate title rejected", slog.String("title", title))
		s.presenter.Present(prompt.Prompt{
			Title:   s.msg.DuplicateTitle,
			Message: s.msg.DuplicateMessage,
			Choices: []prompt.Choice{
				{Label: s.msg.Acknowledge, Style: prompt.StyleCancel},
			},
		})
		return model.Task{}, fmt.Errorf("add %q: %w", title, ErrDuplicateTitle)
	}

	t := model.Task{ID: s.newID(), Title: title}
	s.tasks = append(s.tasks, t)
	s.log.Debug("task added", slog.String("id", t.ID), slog.String("title", title))
	return t, nil
}

// ToggleTaskDone flips the done flag of one task. Unknown ids are ignored.
func (s *Store) ToggleTaskDone(id string) {
	i := s.indexByID(id)
	if i < 0 {
		s.log.Debug("toggle: unknown task", slog.String("id", id))
		return
	}
	s.tasks[i].Done = !s.tasks[i].Done
	s.log.Debug("task toggled", slog.String("id", id), slog.Bool("done", s.tasks[i].Done))
}

// RemoveTask asks for confirmation; the task is deleted only if the user
// picks "Yes". The id is looked up again at that point.
func (s *Store) RemoveTask(id string) {
	s.presenter.Present(prompt.Prompt{
		Title:   s.msg.RemoveTitle,
		Message: s.msg.RemoveMessage,
		Choices: []prompt.Choice{
			{Label: s.msg.No, Style: prompt.StyleCancel},
			{Label: s.msg.Yes, Style: prompt.StyleDestructive, OnSelect: func() { s.remove(id) }},
		},
	})
}

func (s *Store) remove(id string) {
	i := s.indexByID(id)
	if i < 0 {
		s.log.Debug("remove: unknown task", slog.String("id", id))
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.log.Debug("task removed", slog.String("id", id))
}

// RenameTask replaces a task title as-is. Unlike AddTask it does not check
// for duplicates and accepts an empty title.
func (s *Store) RenameTask(id, title string) {
	i := s.indexByID(id)
	if i < 0 {
		s.log.Debug("rename: unknown task", slog.String("id", id))
		return
	}
	s.tasks[i].Title = title
	s.log.Debug("task renamed", slog.String("id", id), slog.String("title", title))
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Task(id string) (model.Task, bool) {
	i := s.indexByID(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) Len() int { return len(s.tasks) }

// Stats counts done and pending tasks.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) indexByID(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) indexByTitle(title string) int {
	for i, t := range s.tasks {
		if t.Title == title {
			return i
		}
	}
	return -1
}
