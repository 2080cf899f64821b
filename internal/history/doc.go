// Package history persists a journal of editing sessions in SQLite: which
// host files were opened, which block was selected, and where exports were
// written.
//
// Only file-level metadata is stored, never decoded payload content; parsed
// record state stays transient to the process. The
// journal is an optional convenience: callers degrade gracefully when it is
// disabled or unavailable. Concurrent CLI invocations are serialized with a
// file lock next to the database on top of SQLite's own busy handling.
package history
