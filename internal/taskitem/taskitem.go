// Package taskitem holds the inline-rename state machine of one task row.
//
// An Item starts in Viewing. StartEdit copies the committed title into a
// draft and focuses the text surface; Commit hands the draft to the store,
// Cancel throws it away. Every return to Viewing blurs the surface.
package taskitem

import "github.com/Makepad-fr/tada/internal/model"

type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// Store is the part of the task store an item reports intents to.
type Store interface {
	Task(id string) (model.Task, bool)
	ToggleTaskDone(id string)
	RemoveTask(id string)
	RenameTask(id, title string)
}

// Surface is the text-entry field the title is shown and edited in.
type Surface interface {
	SetValue(s string)
	Focus()
	Blur()
}

type Item struct {
	id      string
	store   Store
	surface Surface
	state   State
	draft   string
}

// New binds an item to a task. The surface starts blurred and shows the
// committed title.
func New(id string, store Store, surface Surface) *Item {
	it := &Item{id: id, store: store, surface: surface}
	it.draft = it.committed()
	it.surface.SetValue(it.draft)
	it.surface.Blur()
	return it
}

func (it *Item) ID() string      { return it.id }
func (it *Item) State() State    { return it.state }
func (it *Item) Editing() bool   { return it.state == Editing }
func (it *Item) Draft() string   { return it.draft }
func (it *Item) CanDelete() bool { return it.state == Viewing }

// Title is what the row shows: the draft while editing, else the stored title.
func (it *Item) Title() string {
	if it.state == Editing {
		return it.draft
	}
	return it.committed()
}

// Task returns the committed task. ok is false once the task is gone.
func (it *Item) Task() (model.Task, bool) { return it.store.Task(it.id) }

func (it *Item) StartEdit() {
	if it.state == Editing {
		return
	}
	it.draft = it.committed()
	it.surface.SetValue(it.draft)
	it.state = Editing
	it.surface.Focus()
}

// SetDraft records a keystroke result. Ignored outside Editing.
func (it *Item) SetDraft(s string) {
	if it.state != Editing {
		return
	}
	it.draft = s
}

// Commit renames the task to the draft, unvalidated, and leaves Editing.
// Used for both explicit submit and loss of focus.
func (it *Item) Commit() {
	if it.state != Editing {
		return
	}
	it.store.RenameTask(it.id, it.draft)
	it.view()
}

// Cancel drops the draft and leaves Editing without renaming.
func (it *Item) Cancel() {
	if it.state != Editing {
		return
	}
	it.draft = it.committed()
	it.surface.SetValue(it.draft)
	it.view()
}

// Toggle works in both states.
func (it *Item) Toggle() { it.store.ToggleTaskDone(it.id) }

// Delete starts the confirmed removal. It is disabled while editing and
// reports whether the request was made.
func (it *Item) Delete() bool {
	if !it.CanDelete() {
		return false
	}
	it.store.RemoveTask(it.id)
	return true
}

func (it *Item) view() {
	it.state = Viewing
	it.surface.Blur()
}

func (it *Item) committed() string {
	t, ok := it.store.Task(it.id)
	if !ok {
		return it.draft
	}
	return t.Title
}
