// Package logging provides structured logging utilities for the cmdline tools.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON output to stderr, module and version attributes on every record, and
// source locations when running at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cmdlined", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Setting explicit log level (e.g. from a --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("cmdlinectl", version, "warn")
//
// Converting to a standard library logger (http.Server.ErrorLog):
//
//	stdLogger := logging.NewLogLogger(slog.LevelError, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug cmdlinectl parse "-n | --name <Value>"
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "cmdlined",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
