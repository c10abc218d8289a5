package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lilithwittmann/voicepitch/internal/shared"
	"github.com/lilithwittmann/voicepitch/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive recordings browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, logFile, err := shared.NewFileLogger("./tmp/vpa-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer logFile.Close()
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	store, err := r.recordings()
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, store)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
