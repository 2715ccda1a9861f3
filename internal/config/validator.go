package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the loaded values against the struct's validate tags and
// reports every failing field in one error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s (%s)", envNameFor(e.Field()), describe(e)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
}

// ValidateWithWarnings validates and returns warnings for values that are
// legal but probably unintended
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if strings.HasPrefix(c.PlayerInfoURL, "http://") && c.Environment == "prod" {
		warnings = append(warnings, "PLAYER_INFO_URL uses plain http in production")
	}
	if c.PlayerInfoTimeout > DefaultPlayerInfoTimeout {
		warnings = append(warnings, fmt.Sprintf("PLAYER_INFO_TIMEOUT %s is longer than the %s default", c.PlayerInfoTimeout, DefaultPlayerInfoTimeout))
	}
	return warnings, nil
}

var fieldEnvNames = map[string]string{
	"Port":              EnvPort,
	"LogLevel":          EnvLogLevel,
	"LogFormat":         EnvLogFormat,
	"Environment":       EnvEnvironment,
	"ServiceName":       EnvServiceName,
	"PlayerInfoURL":     EnvPlayerInfoURL,
	"PlayerInfoRegion":  EnvPlayerInfoRegion,
	"PlayerInfoTimeout": EnvPlayerInfoTimeout,
	"ShutdownTimeout":   EnvShutdownTimeout,
}

func envNameFor(field string) string {
	if name, ok := fieldEnvNames[field]; ok {
		return name
	}
	return field
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must be set"
	case "oneof":
		return "must be one of: " + e.Param()
	case "url":
		return "must be a valid URL"
	case "alphanum":
		return "must be alphanumeric"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	default:
		return "invalid value"
	}
}
