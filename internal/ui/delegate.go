package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/taskitem"
)

// listItem adapts a task id to bubbles/list.Item. Row state lives in rows.
type listItem struct{ id string }

func (i listItem) FilterValue() string { return i.id }

// row is one task on screen: its edit state machine and the text field it
// edits through.
type row struct {
	item  *taskitem.Item
	input *textinput.Model
}

// inputSurface lets a taskitem.Item drive a textinput.
type inputSurface struct{ ti *textinput.Model }

func (s inputSurface) SetValue(v string) {
	s.ti.SetValue(v)
	s.ti.CursorEnd()
}

func (s inputSurface) Focus() { s.ti.Focus() }
func (s inputSurface) Blur()  { s.ti.Blur() }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	rows  map[string]*row
	theme Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(listItem)
	if !ok {
		return
	}
	r, ok := d.rows[it.id]
	if !ok {
		return
	}
	fmt.Fprint(w, d.renderRow(r, index == m.Index()))
}

func (d itemDelegate) renderRow(r *row, selected bool) string {
	t := d.theme
	task, _ := r.item.Task()

	box := t.Muted.Render(t.BoxUnchecked)
	if task.Done {
		box = t.Success.Render(t.BoxChecked)
	}

	var title string
	switch {
	case r.item.Editing():
		title = r.input.View()
	case task.Done:
		title = t.Done.Render(r.item.Title())
	default:
		title = r.item.Title()
	}

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(">") + " "
	}
	line := fmt.Sprintf("%s%s %s", prefix, box, title)
	if selected {
		line += "  " + d.affordances(r)
	}
	return line
}

// affordances shows edit/cancel and delete; delete is dimmed while editing.
func (d itemDelegate) affordances(r *row) string {
	t := d.theme
	if r.item.Editing() {
		return t.Accent.Render("[esc] cancel") + " " + t.Muted.Faint(true).Render("[d] delete")
	}
	return t.Accent.Render("[e] edit") + " " + t.Error.UnsetBold().Render("[d] delete")
}
