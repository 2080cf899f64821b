// Package main hosts the saveedit CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into codec
// core operations: scanning host files for payload blocks, decoding and
// listing records, applying edits, exporting, and inspecting the session
// history journal. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// All file I/O happens here. The internal packages receive already-read
// host text and return text to be written; keep it that way when adding
// commands.
package main
