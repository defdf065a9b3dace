package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/locale"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/prompt"
	"github.com/Makepad-fr/tada/internal/store/taskstore"
	"github.com/Makepad-fr/tada/internal/taskitem"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	barWidth      = 28
)

type Options struct {
	Theme     string
	Messages  locale.Messages
	CharLimit int
	Logger    *slog.Logger
	IDFunc    taskstore.IDFunc // nil keeps the store default
}

// Model is the task screen: one store, one row per task, an inline add field
// and a modal dialog queue the store presents into.
type Model struct {
	store   *taskstore.Store
	dialogs *prompt.Queue
	rows    map[string]*row

	list  list.Model
	keys  KeyMap
	help  help.Model
	theme Theme
	msg   locale.Messages
	log   *slog.Logger

	// Inline add
	adding    bool
	input     textinput.Model
	addErr    string
	charLimit int

	width, height int
}

func New(opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = logging.Discard()
	}
	if opt.Messages == (locale.Messages{}) {
		opt.Messages = locale.English()
	}
	if opt.CharLimit <= 0 {
		opt.CharLimit = 200
	}

	dialogs := &prompt.Queue{}
	storeOpts := []taskstore.Option{
		taskstore.WithLogger(opt.Logger),
		taskstore.WithMessages(opt.Messages),
	}
	if opt.IDFunc != nil {
		storeOpts = append(storeOpts, taskstore.WithIDFunc(opt.IDFunc))
	}

	m := Model{
		store:     taskstore.New(dialogs, storeOpts...),
		dialogs:   dialogs,
		rows:      map[string]*row{},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     ThemeFor(opt.Theme),
		msg:       opt.Messages,
		log:       opt.Logger,
		charLimit: opt.CharLimit,
		width:     defaultWidth,
		height:    defaultHeight,
	}

	l := list.New(nil, itemDelegate{rows: m.rows, theme: m.theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.Styles.PaginationStyle = m.theme.Muted
	m.list = l

	// set up text input for inline add
	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = m.msg.AddPlaceholder
	m.input.CharLimit = m.charLimit

	m.resize()
	return m
}

// Store exposes the task store, mainly for callers that inspect the session
// after the program exits.
func (m Model) Store() *taskstore.Store { return m.store }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		// dialogs are modal
		if d := m.dialogs.Current(); d != nil {
			return m.updateDialog(d, msg)
		}
		if m.adding {
			return m.updateAdd(msg)
		}
		if r := m.editingRow(); r != nil {
			return m.updateEdit(r, msg)
		}
		return m.updateBrowse(msg)
	}

	// cursor blink and friends go to whichever field has focus
	var cmd tea.Cmd
	switch {
	case m.adding:
		m.input, cmd = m.input.Update(msg)
	case m.editingRow() != nil:
		r := m.editingRow()
		*r.input, cmd = r.input.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateDialog(d *prompt.Dialog, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		d.Prev()
	case key.Matches(msg, m.keys.Right):
		d.Next()
	case key.Matches(msg, m.keys.Submit):
		d.Select()
	case key.Matches(msg, m.keys.Yes):
		d.Accept()
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Cancel):
		d.Dismiss()
	}
	if d.Resolved() {
		m.log.Debug("dialog resolved", slog.String("title", d.Prompt.Title), slog.Int("choice", d.Cursor()))
		m.sync()
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.addErr = m.msg.EmptyTitle
			return m, nil
		}
		if _, err := m.store.AddTask(title); err != nil {
			// duplicate: the notice is queued, keep the text so it can be fixed
			if !errors.Is(err, taskstore.ErrDuplicateTitle) {
				m.addErr = err.Error()
			}
			return m, nil
		}
		m.closeAdd()
		m.sync()
		m.list.Select(len(m.list.Items()) - 1)
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeAdd()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.addErr = ""
	return m, cmd
}

func (m *Model) closeAdd() {
	m.adding = false
	m.addErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m Model) updateEdit(r *row, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		r.item.Commit()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		r.item.Cancel()
		return m, nil
	case key.Matches(msg, m.keys.ToggleEditing):
		r.item.Toggle()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		// moving away is a focus loss, which commits
		if msg.Type != tea.KeyRunes {
			r.item.Commit()
			m.sync()
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	*r.input, cmd = r.input.Update(msg)
	r.item.SetDraft(r.input.Value())
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.input.SetValue("")
		m.input.Focus()
		m.resize()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Toggle):
		if r := m.selectedRow(); r != nil {
			r.item.Toggle()
			m.sync()
		}
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if r := m.selectedRow(); r != nil {
			r.item.StartEdit()
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if r := m.selectedRow(); r != nil {
			r.item.Delete()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selectedRow() *row {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	return m.rows[li.id]
}

func (m Model) editingRow() *row {
	for _, r := range m.rows {
		if r.item.Editing() {
			return r
		}
	}
	return nil
}

// sync rebuilds the list from the store: new tasks get a row, removed tasks
// lose theirs.
func (m *Model) sync() {
	tasks := m.store.Tasks()
	items := make([]list.Item, 0, len(tasks))
	live := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		live[t.ID] = true
		if _, ok := m.rows[t.ID]; !ok {
			m.rows[t.ID] = m.newRow(t.ID)
		}
		items = append(items, listItem{id: t.ID})
	}
	for id := range m.rows {
		if !live[id] {
			delete(m.rows, id)
		}
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m *Model) newRow(id string) *row {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = m.msg.EditPlaceholder
	ti.CharLimit = m.charLimit
	ti.Width = m.rowWidth()
	return &row{item: taskitem.New(id, m.store, inputSurface{ti: &ti}), input: &ti}
}

func (m *Model) resize() {
	reserved := 8 // header, progress, help, borders
	if m.adding {
		reserved += 4
	}
	m.list.SetSize(m.width-4, max(m.height-reserved, 1))
	m.input.Width = m.width - 10
	m.help.Width = m.width - 4
	for _, r := range m.rows {
		r.input.Width = m.rowWidth()
	}
}

// rowWidth leaves room for the cursor, checkbox and list padding.
func (m *Model) rowWidth() int { return max(m.width-24, 1) }

func (m Model) header() string {
	t := m.theme
	done, pending := m.store.Stats()
	counts := fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render(m.msg.TaskCount(m.store.Len())),
		t.Success.Render(symCheck), done,
		t.Pending.Render("•"), pending,
	)
	return counts + "\n" + t.Muted.Render(ProgressBar(done, done+pending, barWidth))
}

func (m Model) helpView() string {
	var bindings []key.Binding
	switch {
	case m.dialogs.Current() != nil:
		bindings = m.keys.dialogHelp()
	case m.adding:
		bindings = m.keys.addHelp()
	case m.editingRow() != nil:
		bindings = m.keys.editHelp()
	default:
		bindings = m.keys.browseHelp()
	}
	return m.help.ShortHelpView(bindings)
}

func (m Model) View() string {
	if d := m.dialogs.Current(); d != nil {
		box := renderDialog(m.theme, d) + "\n" + m.helpView()
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	if m.store.Len() == 0 {
		b.WriteString(m.theme.Muted.Render(m.msg.EmptyList))
	} else {
		b.WriteString(m.list.View())
	}

	if m.adding {
		title := m.theme.Accent.Render(m.msg.AddPlaceholder)
		if m.addErr != "" {
			title += " " + m.theme.Error.Render(m.addErr)
		}
		b.WriteString("\n")
		b.WriteString(Panel(m.theme, title+"\n"+m.input.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.helpView())
	return Panel(m.theme, b.String())
}
