// Package logging constructs the slog loggers used across saveedit.
//
// Two output formats are supported: a compact console format for
// interactive terminals and line-delimited JSON for everything else. When
// the configuration leaves the format empty, terminal detection picks one.
// All commands share a single logger carrying the session attributes
// (session id, source file) so one invocation's lines correlate.
package logging
