package bootstrap

// =============================================================================
// Startup Messages
// =============================================================================

const (
	LogMsgStarting            = "Starting level-info"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShutdownSignal       = "Shutdown signal received"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
