// Package logging assembles the structured slog loggers used across marquee.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and provides a no-op logger for tests and wiring code that cannot fail.
// Loggers are constructed once at process start and threaded through component
// constructors; no package mutates global logger state.
package logging
