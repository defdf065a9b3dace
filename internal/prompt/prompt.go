// Package prompt describes modal yes/no style prompts without tying them to
// a renderer. The store builds prompts, the UI decides how to draw them.
package prompt

// Style hints how a choice should be rendered.
type Style int

const (
	StyleDefault Style = iota
	StyleCancel
	StyleDestructive
)

func (s Style) String() string {
	switch s {
	case StyleCancel:
		return "cancel"
	case StyleDestructive:
		return "destructive"
	default:
		return "default"
	}
}

// Choice is one button of a prompt. OnSelect may be nil.
type Choice struct {
	Label    string
	Style    Style
	OnSelect func()
}

// Prompt is a title, a message and an ordered list of choices.
type Prompt struct {
	Title   string
	Message string
	Choices []Choice
}

// Presenter shows a prompt modally and eventually invokes at most one of its
// choice callbacks.
type Presenter interface {
	Present(p Prompt)
}

// Dialog tracks the resolution of a single presented prompt.
type Dialog struct {
	Prompt   Prompt
	cursor   int
	resolved bool
}

// NewDialog opens a dialog with the cursor on the cancel-styled choice, if
// there is one.
func NewDialog(p Prompt) *Dialog {
	d := &Dialog{Prompt: p}
	for i, c := range p.Choices {
		if c.Style == StyleCancel {
			d.cursor = i
			break
		}
	}
	return d
}

func (d *Dialog) Cursor() int    { return d.cursor }
func (d *Dialog) Resolved() bool { return d.resolved }

// Next moves the cursor right, wrapping around.
func (d *Dialog) Next() {
	if n := len(d.Prompt.Choices); n > 0 {
		d.cursor = (d.cursor + 1) % n
	}
}

// Prev moves the cursor left, wrapping around.
func (d *Dialog) Prev() {
	if n := len(d.Prompt.Choices); n > 0 {
		d.cursor = (d.cursor - 1 + n) % n
	}
}

// Select resolves the dialog with the choice at the cursor.
func (d *Dialog) Select() bool { return d.Choose(d.cursor) }

// Choose resolves the dialog with choice i and runs its callback.
// It returns false if the dialog was already resolved or i is out of range.
func (d *Dialog) Choose(i int) bool {
	if d.resolved || i < 0 || i >= len(d.Prompt.Choices) {
		return false
	}
	d.resolved = true
	d.cursor = i
	if cb := d.Prompt.Choices[i].OnSelect; cb != nil {
		cb()
	}
	return true
}

// Dismiss resolves the dialog with its cancel-styled choice. A prompt without
// one is closed without running any callback.
func (d *Dialog) Dismiss() bool {
	for i, c := range d.Prompt.Choices {
		if c.Style == StyleCancel {
			return d.Choose(i)
		}
	}
	if d.resolved {
		return false
	}
	d.resolved = true
	return true
}

// Accept resolves the dialog with its first choice that is not cancel-styled.
func (d *Dialog) Accept() bool {
	for i, c := range d.Prompt.Choices {
		if c.Style != StyleCancel {
			return d.Choose(i)
		}
	}
	return false
}

// Queue collects presented prompts in order. It implements Presenter.
type Queue struct {
	pending []*Dialog
}

func (q *Queue) Present(p Prompt) { q.pending = append(q.pending, NewDialog(p)) }

// Current returns the oldest unresolved dialog, or nil.
func (q *Queue) Current() *Dialog {
	for len(q.pending) > 0 && q.pending[0].resolved {
		q.pending = q.pending[1:]
	}
	if len(q.pending) == 0 {
		return nil
	}
	return q.pending[0]
}

func (q *Queue) Len() int {
	q.Current()
	return len(q.pending)
}
