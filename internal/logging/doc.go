// Package logging provides structured logging utilities for calbridge.
//
// It centralizes attribute naming so that log lines carry consistent
// operation, tool, and calendar attributes across the codebase, built on
// the standard library's slog package.
//
// Example:
//
//	logger := logging.WithTool(slog.Default(), "list_events_in_time_frame")
//	logger.Info("listing events", logging.Status(logging.StatusSuccess))
package logging
