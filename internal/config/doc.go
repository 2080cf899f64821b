// Package config loads, normalizes, and validates saveedit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI and codec core need: the obfuscation mask character, the minimum
// encoded run a quoted literal must reach to count as a payload, export
// suffixes, classification keyword vocabularies, logging, and the history
// journal location.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
