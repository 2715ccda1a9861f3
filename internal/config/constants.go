package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvVersion           = "VERSION"
	EnvServiceName       = "SERVICE_NAME"
	EnvPlayerInfoURL     = "PLAYER_INFO_URL"
	EnvPlayerInfoRegion  = "PLAYER_INFO_REGION"
	EnvPlayerInfoTimeout = "PLAYER_INFO_TIMEOUT"
	EnvCredit            = "SERVICE_CREDIT"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
)

// Default values
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultServiceName       = "level-info"
	DefaultPlayerInfoURL     = "https://infoooooo-v6v5.vercel.app/info"
	DefaultPlayerInfoRegion  = "IND"
	DefaultPlayerInfoTimeout = 20 * time.Second
	DefaultCredit            = "t.me/danger_ff_like"
	DefaultShutdownTimeout   = 10 * time.Second
)
