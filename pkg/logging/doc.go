// Package logging provides structured logging utilities for the collector.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, module/version context on every record, LOG_LEVEL
// environment configuration, and source location tracking for debug logs.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("odcctl", version)
//
// then use slog as normal:
//
//	slog.Info("collected artifact", "package", "P1", "path", dest)
//	slog.Error("registry export failed", "error", err, "key", key)
//
// Supported log levels (case-insensitive): DEBUG, INFO (default), WARN,
// ERROR. The --log-level CLI flag takes precedence over LOG_LEVEL.
package logging
