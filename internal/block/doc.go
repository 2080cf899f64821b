// Package block locates embedded payload blocks inside host script text and
// reassembles edited host files.
//
// A payload block is a quoted run of base64-alphabet text, possibly
// interleaved with whitespace and the obfuscation mask character, at least
// 64 encoded characters long once stripped. Scanning is a single
// left-to-right pass that records, for every match, the exact byte span the
// inner content occupies in the original text; splicing replaces only that
// span, leaving every byte outside it untouched. Decoding is attempted
// eagerly for each match so callers can classify and auto-select a block
// immediately after scanning; a failed decode is attached to the block
// rather than aborting the scan.
package block
