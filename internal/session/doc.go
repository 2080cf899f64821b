// Package session owns the in-memory editing state for one opened host
// file: the scanned payload blocks, the selected block, and the records
// parsed from its decoded text.
//
// A session performs no file I/O. It receives already-read host text,
// mutates records on explicit calls, and returns the reassembled host text
// on export. Opening a file replaces the whole session state; there is no
// persistence beyond the optional metadata journal kept elsewhere. Only one
// session is active at a time and all mutations are serialized through
// user-triggered calls, so no locking is involved.
package session
