package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/tui"
)

func runInteractive(cmd *cobra.Command, flags *rootFlags, initial string) error {
	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	controller := lookup.NewController(lookup.Options{
		Parent: cmd.Context(),
		Logger: app.Logger,
	})
	defer controller.Close()

	m := tui.NewModel(tui.Options{
		Fetcher:      app.Client,
		Controller:   controller,
		Theme:        app.Theme,
		Dates:        app.Dates,
		InitialQuery: initial,
	})

	app.Logger.Info("launching interactive search")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "interactive search failed")
		return fmt.Errorf("failed to run interactive search: %w", err)
	}
	app.Logger.Info("interactive search closed")

	return nil
}
