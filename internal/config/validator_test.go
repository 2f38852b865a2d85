package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	devfindererrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "dark theme", mutate: func(c *Config) { c.Theme = "dark" }},
		{name: "local base url", mutate: func(c *Config) { c.BaseURL = "http://127.0.0.1:8080" }},
		{name: "timeout", mutate: func(c *Config) { c.RequestTimeout = 5 * time.Second }},
		{name: "missing base url", mutate: func(c *Config) { c.BaseURL = "" }, wantField: "base_url"},
		{name: "ftp base url", mutate: func(c *Config) { c.BaseURL = "ftp://example.com" }, wantField: "base_url"},
		{name: "base url without host", mutate: func(c *Config) { c.BaseURL = "https://" }, wantField: "base_url"},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "sepia" }, wantField: "theme"},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }, wantField: "request_timeout"},
		{name: "unknown locale", mutate: func(c *Config) { c.Date.Locale = "xx_XX" }, wantField: "date.locale"},
		{name: "empty layout", mutate: func(c *Config) { c.Date.Layout = "" }, wantField: "date.layout"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantField: "log.level"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *devfindererrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "configuration is nil")
}
