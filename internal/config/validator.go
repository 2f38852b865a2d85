package config

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goodsign/monday"

	devfindererrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeModes = map[string]struct{}{"light": {}, "dark": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, ok := themeModes[strings.ToLower(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("http_url", func(fl validator.FieldLevel) bool {
			raw := strings.TrimSpace(fl.Field().String())
			if raw == "" {
				return false
			}
			parsed, err := url.Parse(raw)
			if err != nil {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			return (scheme == "http" || scheme == "https") && parsed.Host != ""
		})

		_ = v.RegisterValidation("date_locale", func(fl validator.FieldLevel) bool {
			return IsSupportedLocale(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsSupportedLocale reports whether dates can be formatted in the named locale.
func IsSupportedLocale(name string) bool {
	for _, locale := range monday.ListLocales() {
		if string(locale) == name {
			return true
		}
	}
	return false
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return devfindererrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return devfindererrors.NewValidationError(field, msg, err)
	}

	return devfindererrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName maps Config.Date.Locale to date.locale and
// Config.BaseURL to base_url.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
