// Package logging assembles structured slog loggers and formatting helpers used
// across vccd.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so a compile can tag every line with
// its build ID. The package also provides a no-op logger for tests and for
// wiring code that runs without a configured logger.
//
// Logs go to stderr by default so command output on stdout stays clean.
package logging
