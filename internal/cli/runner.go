package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/locale"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Run executes the command tree and returns an exit code (0 ok, 1 error).
func Run(args []string) int {
	root := NewRootCommand(os.Stdin, os.Stdout)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		ui.Fail(os.Stderr, ui.ThemeFor(""), err.Error())
		return 1
	}
	return 0
}

type rootFlags struct {
	config string
	theme  string
	locale string
	debug  bool
}

// NewRootCommand wires the task screen behind `tada`. in and out are the
// terminal the program runs on.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "tada",
		Short: "A small interactive task list",
		Long: `tada - a tiny task list for the terminal

Add named tasks, mark them done, rename them in place and remove them after
confirming. Tasks live only for the session.

KEYS:
  a            add a task (enter saves, esc cancels)
  space / x    toggle done
  e / enter    rename the selected task (enter saves, esc cancels,
               moving up/down also saves)
  d            remove the selected task (asks first)
  q            quit

CONFIGURATION:
  Priority: flags > environment > ~/.tada/config.yaml > defaults

  TADA_THEME             classic | neon | mono (default: classic)
  TADA_LOCALE            en | pt-BR (default: en)
  TADA_TITLE_CHAR_LIMIT  max title length (default: 200)
  TADA_ALT_SCREEN        use the alternate screen (default: true)
  TADA_DEBUG             write debug logs (default: false)
  TADA_LOG_FILE          debug log path (default: tada-debug.log)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config, cmd.Flags())
			if err != nil {
				return err
			}
			return runScreen(cfg, in, out)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "config file (default ~/.tada/config.yaml)")
	pf.StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&f.locale, "locale", "", "message language: "+locale.SupportedList())
	pf.BoolVar(&f.debug, "debug", false, "write debug logs to the log file")

	root.AddCommand(newConfigCommand(&f))
	return root
}

func newConfigCommand(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config, cmd.Flags())
			if err != nil {
				return err
			}
			s, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// runScreen starts the Bubble Tea program and reports a summary on exit.
func runScreen(cfg *config.Config, in io.Reader, out io.Writer) error {
	logger, closeLog, err := logging.Setup(cfg.Debug, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()

	m := ui.New(ui.Options{
		Theme:     cfg.Theme,
		Messages:  locale.For(cfg.Locale),
		CharLimit: cfg.TitleCharLimit,
		Logger:    logger,
	})
	logger.Info("session started", "theme", cfg.Theme, "locale", cfg.Locale)

	opts := []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if fm, ok := final.(ui.Model); ok {
		done, pending := fm.Store().Stats()
		logger.Info("session ended", "done", done, "pending", pending)
		ui.OK(out, ui.ThemeFor(cfg.Theme), fmt.Sprintf("%d done, %d pending", done, pending))
	}
	return nil
}
