package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up, Down key.Binding

	Add, Toggle, Edit, Delete, Quit key.Binding

	// while a text field has focus
	Submit, Cancel, ToggleEditing key.Binding

	// dialogs
	Left, Right, Yes, No key.Binding

	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x", "ctrl+t"), key.WithHelp("space", "done")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),

		Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ToggleEditing: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "done")),

		Left:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/→", "choose")),
		Right: key.NewBinding(key.WithKeys("right", "l", "tab")),
		Yes:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n/esc", "no")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k KeyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.Edit, k.Delete, k.Quit}
}

func (k KeyMap) editHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.ToggleEditing}
}

func (k KeyMap) addHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

func (k KeyMap) dialogHelp() []key.Binding {
	return []key.Binding{k.Left, k.Submit, k.Yes, k.No}
}
