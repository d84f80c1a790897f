// Package logging assembles the structured slog loggers used by scriptctl.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and exposes context helpers so every line emitted while processing a file
// carries the run identifier and the file path. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
