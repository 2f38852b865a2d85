package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/devfinder/internal/config"
	"github.com/alexisbeaulieu97/devfinder/internal/github"
	"github.com/alexisbeaulieu97/devfinder/internal/logger"
	"github.com/alexisbeaulieu97/devfinder/internal/presenter"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Client *github.Client
	Theme  theme.Mode
	Dates  presenter.Options

	closers []io.Closer
}

// newAppContext loads configuration and builds the logger and API client.
// interactive discards logs unless a log file is configured, since the TUI
// owns the terminal.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	if err := flags.validate(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	cfg.Apply(flags.overrides(cmd))
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &AppContext{Config: cfg}

	log, err := app.openLogger(cmd.ErrOrStderr(), interactive)
	if err != nil {
		return nil, err
	}
	app.Logger = log

	app.Theme = theme.Light
	if cfg.DarkMode() {
		app.Theme = theme.Dark
	}

	app.Dates = presenter.DefaultOptions()
	app.Dates.Locale = cfg.Date.Locale
	app.Dates.Layout = cfg.Date.Layout

	client, err := github.NewClient(github.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  log,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("create profile client: %w", err)
	}
	app.Client = client

	log.WithFields(map[string]any{
		"base_url": cfg.BaseURL,
		"theme":    cfg.Theme,
		"timeout":  cfg.RequestTimeout.String(),
	}).Debug("configuration loaded")

	return app, nil
}

func (a *AppContext) openLogger(stderr io.Writer, interactive bool) (*logger.Logger, error) {
	cfg := a.Config.Log

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, file)
		log, err := logger.New(logger.Options{Level: cfg.Level, Writer: file})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("create logger: %w", err)
		}
		return log, nil
	}

	if interactive {
		return logger.Nop(), nil
	}

	log, err := logger.New(logger.Options{Level: cfg.Level, HumanReadable: isTerminal(stderr), Writer: stderr})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// Close releases the log file, if any.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
