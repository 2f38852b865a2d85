package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/presenter"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
	"github.com/alexisbeaulieu97/devfinder/internal/tui"
)

const lookupCardWidth = 72

func newLookupCmd(flags *rootFlags) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "lookup <username>",
		Short: "Fetch a profile once and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return errors.New("username must not be empty")
			}

			app, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			controller := lookup.NewController(lookup.Options{
				Parent: cmd.Context(),
				Logger: app.Logger,
			})
			defer controller.Close()

			req, ok := controller.Submit(args[0])
			if !ok {
				return errors.New("username must not be empty")
			}
			controller.Resolve(lookup.Execute(req, app.Client))

			state := controller.Snapshot()
			if state.Failed() {
				return fmt.Errorf("%s!", state.Message)
			}

			card := presenter.Present(state.Profile, app.Dates)
			out := cmd.OutOrStdout()
			if plain || !isTerminal(out) {
				_, err = io.WriteString(out, tui.RenderPlain(card))
				return err
			}

			renderer := lipgloss.NewRenderer(out)
			styles := tui.NewStyles(renderer, theme.PaletteFor(app.Theme))
			_, err = fmt.Fprintln(out, tui.RenderCard(card, styles, lookupCardWidth))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without colours or borders")

	return cmd
}
