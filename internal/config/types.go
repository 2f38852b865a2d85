package config

import (
	"strings"
	"time"
)

const (
	DefaultBaseURL    = "https://api.github.com"
	DefaultTheme      = "light"
	DefaultDateLocale = "en_GB"
	DefaultDateLayout = "02 Jan 2006"
	DefaultLogLevel   = "info"

	// EnvBaseURL overrides base_url when set.
	EnvBaseURL = "DEVFINDER_BASE_URL"
)

// Config represents the devfinder configuration document.
type Config struct {
	BaseURL        string        `yaml:"base_url" validate:"required,http_url"`
	Theme          string        `yaml:"theme" validate:"required,theme_mode"`
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty" validate:"min=0"`
	Date           DateConfig    `yaml:"date"`
	Log            LogConfig     `yaml:"log"`
}

// DateConfig controls how the profile creation date is rendered.
type DateConfig struct {
	Locale string `yaml:"locale" validate:"required,date_locale"`
	Layout string `yaml:"layout" validate:"required"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Overrides carries command-line values that take precedence over the file.
// Zero values leave the loaded configuration untouched.
type Overrides struct {
	BaseURL        string
	Theme          string
	RequestTimeout *time.Duration
	LogLevel       string
	LogFile        string
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Theme:   DefaultTheme,
		Date: DateConfig{
			Locale: DefaultDateLocale,
			Layout: DefaultDateLayout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Apply layers overrides on top of the configuration.
func (c *Config) Apply(o Overrides) {
	if c == nil {
		return
	}
	if v := strings.TrimSpace(o.BaseURL); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(o.Theme); v != "" {
		c.Theme = v
	}
	if o.RequestTimeout != nil {
		c.RequestTimeout = *o.RequestTimeout
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		c.Log.File = v
	}
}

// ApplyEnv reads environment overrides through lookup, normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if c == nil || lookup == nil {
		return
	}
	if v, ok := lookup(EnvBaseURL); ok && strings.TrimSpace(v) != "" {
		c.BaseURL = strings.TrimSpace(v)
	}
}

// DarkMode reports whether the configured starting theme is dark.
func (c *Config) DarkMode() bool {
	return c != nil && strings.EqualFold(c.Theme, "dark")
}
