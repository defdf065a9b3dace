package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/prompt"
)

func renderDialog(t Theme, d *prompt.Dialog) string {
	buttons := make([]string, 0, len(d.Prompt.Choices))
	for i, c := range d.Prompt.Choices {
		style := t.Button
		switch c.Style {
		case prompt.StyleCancel:
			style = t.Muted.Bold(true)
		case prompt.StyleDestructive:
			style = t.Error
		}
		label := " " + c.Label + " "
		if i == d.Cursor() {
			style = style.Reverse(true)
			label = "[" + c.Label + "]"
		}
		buttons = append(buttons, style.Render(label))
	}

	body := strings.Join([]string{
		t.Title.Render(d.Prompt.Title),
		"",
		d.Prompt.Message,
		"",
		strings.Join(buttons, "  "),
	}, "\n")

	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(1, 2).
		Render(body)
}
