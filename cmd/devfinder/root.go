package main

import (
	"time"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	baseURL    string
	theme      string
	timeout    time.Duration
	verbose    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "devfinder [username]",
		Short:         "devfinder looks up public GitHub profiles",
		Long:          "Search GitHub users from an interactive terminal UI. Pass a username to look it up on start.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			return runInteractive(cmd, flags, initial)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "Profile API base URL (default https://api.github.com)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Starting theme: light or dark")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Request timeout, 0 waits indefinitely")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newLookupCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
