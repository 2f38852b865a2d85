package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devfinder/internal/config"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// overrides converts explicitly set flags into config overrides.
func (f *rootFlags) overrides(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{
		BaseURL: f.baseURL,
		Theme:   f.theme,
		LogFile: f.logFile,
	}
	if cmd.Flags().Changed("timeout") {
		timeout := f.timeout
		o.RequestTimeout = &timeout
	}
	if f.verbose {
		o.LogLevel = "debug"
	}
	return o
}

// validate rejects flag values before any configuration is loaded.
func (f *rootFlags) validate() error {
	if f.theme != "" {
		if _, err := theme.ParseMode(f.theme); err != nil {
			return err
		}
	}
	return nil
}
