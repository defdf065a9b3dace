package logging

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// The TUI owns stdout, so logs either go to a file or nowhere.

// Setup returns a logger for the session. With debug off it discards
// everything; with debug on it appends to path. The returned close func is
// always safe to call.
func Setup(debug bool, path string) (*slog.Logger, func() error, error) {
	if !debug {
		return Discard(), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "tada")
	if err != nil {
		return nil, nil, err
	}
	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l, f.Close, nil
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
