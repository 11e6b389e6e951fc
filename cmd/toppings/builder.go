package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/toppings/internal/tui"
)

// isTerminal reports whether stdout is attached to a terminal. Tests replace
// it to exercise the static fallback.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runBuilder(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogOutput(cfg.Log.File)
	if err != nil {
		return newCommandError(operationName(cmd), "opening log file", err, "Check that the log file directory exists and is writable.")
	}
	defer closeLog()

	appCtx, err := newAppContext(cmd, cfg, logOut)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Variant:  appCtx.Variant,
		Sizes:    cfg.Sizes,
		Toppings: cfg.Toppings,
		Logger:   appCtx.Logger,
	})

	if !isTerminal() {
		appCtx.Logger.Debug("stdout is not a terminal, rendering static preview")
		_, err := fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return newCommandError(operationName(cmd), "running interactive builder", err, "Retry with --log-file to capture diagnostics.")
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if m.Err() != nil {
		return m.Err()
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), m.View())
	return err
}

// openLogOutput returns where the interactive builder writes its logs. The
// terminal belongs to the TUI, so without a file the logs are discarded.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
