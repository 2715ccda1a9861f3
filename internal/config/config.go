package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	Version     string
	ServiceName string `validate:"required"`

	// Upstream player info service
	PlayerInfoURL     string        `validate:"required,url"`
	PlayerInfoRegion  string        `validate:"required,alphanum"`
	PlayerInfoTimeout time.Duration `validate:"gt=0s"`

	// Credit string shown on the service description endpoint
	Credit string

	ShutdownTimeout time.Duration `validate:"gt=0s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		Version:          getEnv(EnvVersion, DefaultVersion),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		PlayerInfoURL:    getEnv(EnvPlayerInfoURL, DefaultPlayerInfoURL),
		PlayerInfoRegion: getEnv(EnvPlayerInfoRegion, DefaultPlayerInfoRegion),
		Credit:           getEnv(EnvCredit, DefaultCredit),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.PlayerInfoTimeout, err = getEnvAsDuration(EnvPlayerInfoTimeout, DefaultPlayerInfoTimeout); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses an environment variable as a time.Duration
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
