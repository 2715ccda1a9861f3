package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that drains in-flight work before returning
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish
// until ctx expires. The player info client holds no pooled state of its own,
// so the server is the only component to drain.
//
// Errors during shutdown are logged and returned.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
			return err
		}
	}

	slog.Info(LogMsgServerStopped)
	return nil
}

// LogStartup records the effective configuration once logging is initialised
func LogStartup(environment, version, addr, upstream string, warnings []string) {
	slog.Info(LogMsgStarting,
		"environment", environment,
		"version", version)

	slog.Debug(LogMsgConfigurationLoaded,
		"addr", addr,
		"player_info_url", upstream)

	for _, w := range warnings {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
